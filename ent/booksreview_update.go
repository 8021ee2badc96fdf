// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// BooksReviewUpdate is the builder for updating BooksReview entities.
type BooksReviewUpdate struct {
	config
	hooks     []Hook
	mutation  *BooksReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the BooksReviewUpdate builder.
func (bru *BooksReviewUpdate) Where(ps ...predicate.BooksReview) *BooksReviewUpdate {
	bru.mutation.Where(ps...)
	return bru
}

// SetCreatedAt sets the "created_at" field.
func (bru *BooksReviewUpdate) SetCreatedAt(t time.Time) *BooksReviewUpdate {
	bru.mutation.SetCreatedAt(t)
	return bru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableCreatedAt(t *time.Time) *BooksReviewUpdate {
	if t != nil {
		bru.SetCreatedAt(*t)
	}
	return bru
}

// SetUpdatedAt sets the "updated_at" field.
func (bru *BooksReviewUpdate) SetUpdatedAt(t time.Time) *BooksReviewUpdate {
	bru.mutation.SetUpdatedAt(t)
	return bru
}

// SetUsername sets the "username" field.
func (bru *BooksReviewUpdate) SetUsername(s string) *BooksReviewUpdate {
	bru.mutation.SetUsername(s)
	return bru
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableUsername(s *string) *BooksReviewUpdate {
	if s != nil {
		bru.SetUsername(*s)
	}
	return bru
}

// SetArticleID sets the "article_id" field.
func (bru *BooksReviewUpdate) SetArticleID(u uint) *BooksReviewUpdate {
	bru.mutation.ResetArticleID()
	bru.mutation.SetArticleID(u)
	return bru
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableArticleID(u *uint) *BooksReviewUpdate {
	if u != nil {
		bru.SetArticleID(*u)
	}
	return bru
}

// AddArticleID adds u to the "article_id" field.
func (bru *BooksReviewUpdate) AddArticleID(u int) *BooksReviewUpdate {
	bru.mutation.AddArticleID(u)
	return bru
}

// SetReview sets the "review" field.
func (bru *BooksReviewUpdate) SetReview(s string) *BooksReviewUpdate {
	bru.mutation.SetReview(s)
	return bru
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableReview(s *string) *BooksReviewUpdate {
	if s != nil {
		bru.SetReview(*s)
	}
	return bru
}

// SetReviewHTML sets the "review_html" field.
func (bru *BooksReviewUpdate) SetReviewHTML(s string) *BooksReviewUpdate {
	bru.mutation.SetReviewHTML(s)
	return bru
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableReviewHTML(s *string) *BooksReviewUpdate {
	if s != nil {
		bru.SetReviewHTML(*s)
	}
	return bru
}

// ClearReviewHTML clears the value of the "review_html" field.
func (bru *BooksReviewUpdate) ClearReviewHTML() *BooksReviewUpdate {
	bru.mutation.ClearReviewHTML()
	return bru
}

// SetOverall sets the "overall" field.
func (bru *BooksReviewUpdate) SetOverall(i int) *BooksReviewUpdate {
	bru.mutation.ResetOverall()
	bru.mutation.SetOverall(i)
	return bru
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableOverall(i *int) *BooksReviewUpdate {
	if i != nil {
		bru.SetOverall(*i)
	}
	return bru
}

// AddOverall adds i to the "overall" field.
func (bru *BooksReviewUpdate) AddOverall(i int) *BooksReviewUpdate {
	bru.mutation.AddOverall(i)
	return bru
}

// SetArt sets the "art" field.
func (bru *BooksReviewUpdate) SetArt(i int) *BooksReviewUpdate {
	bru.mutation.ResetArt()
	bru.mutation.SetArt(i)
	return bru
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableArt(i *int) *BooksReviewUpdate {
	if i != nil {
		bru.SetArt(*i)
	}
	return bru
}

// AddArt adds i to the "art" field.
func (bru *BooksReviewUpdate) AddArt(i int) *BooksReviewUpdate {
	bru.mutation.AddArt(i)
	return bru
}

// ClearArt clears the value of the "art" field.
func (bru *BooksReviewUpdate) ClearArt() *BooksReviewUpdate {
	bru.mutation.ClearArt()
	return bru
}

// SetCharacters sets the "characters" field.
func (bru *BooksReviewUpdate) SetCharacters(i int) *BooksReviewUpdate {
	bru.mutation.ResetCharacters()
	bru.mutation.SetCharacters(i)
	return bru
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableCharacters(i *int) *BooksReviewUpdate {
	if i != nil {
		bru.SetCharacters(*i)
	}
	return bru
}

// AddCharacters adds i to the "characters" field.
func (bru *BooksReviewUpdate) AddCharacters(i int) *BooksReviewUpdate {
	bru.mutation.AddCharacters(i)
	return bru
}

// ClearCharacters clears the value of the "characters" field.
func (bru *BooksReviewUpdate) ClearCharacters() *BooksReviewUpdate {
	bru.mutation.ClearCharacters()
	return bru
}

// SetStory sets the "story" field.
func (bru *BooksReviewUpdate) SetStory(i int) *BooksReviewUpdate {
	bru.mutation.ResetStory()
	bru.mutation.SetStory(i)
	return bru
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableStory(i *int) *BooksReviewUpdate {
	if i != nil {
		bru.SetStory(*i)
	}
	return bru
}

// AddStory adds i to the "story" field.
func (bru *BooksReviewUpdate) AddStory(i int) *BooksReviewUpdate {
	bru.mutation.AddStory(i)
	return bru
}

// ClearStory clears the value of the "story" field.
func (bru *BooksReviewUpdate) ClearStory() *BooksReviewUpdate {
	bru.mutation.ClearStory()
	return bru
}

// SetEnjoyment sets the "enjoyment" field.
func (bru *BooksReviewUpdate) SetEnjoyment(i int) *BooksReviewUpdate {
	bru.mutation.ResetEnjoyment()
	bru.mutation.SetEnjoyment(i)
	return bru
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (bru *BooksReviewUpdate) SetNillableEnjoyment(i *int) *BooksReviewUpdate {
	if i != nil {
		bru.SetEnjoyment(*i)
	}
	return bru
}

// AddEnjoyment adds i to the "enjoyment" field.
func (bru *BooksReviewUpdate) AddEnjoyment(i int) *BooksReviewUpdate {
	bru.mutation.AddEnjoyment(i)
	return bru
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (bru *BooksReviewUpdate) ClearEnjoyment() *BooksReviewUpdate {
	bru.mutation.ClearEnjoyment()
	return bru
}

// Mutation returns the BooksReviewMutation object of the builder.
func (bru *BooksReviewUpdate) Mutation() *BooksReviewMutation {
	return bru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bru *BooksReviewUpdate) Save(ctx context.Context) (int, error) {
	bru.defaults()
	return withHooks(ctx, bru.sqlSave, bru.mutation, bru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bru *BooksReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := bru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bru *BooksReviewUpdate) Exec(ctx context.Context) error {
	_, err := bru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bru *BooksReviewUpdate) ExecX(ctx context.Context) {
	if err := bru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bru *BooksReviewUpdate) defaults() {
	if _, ok := bru.mutation.UpdatedAt(); !ok {
		v := booksreview.UpdateDefaultUpdatedAt()
		bru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bru *BooksReviewUpdate) check() error {
	if v, ok := bru.mutation.Username(); ok {
		if err := booksreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "BooksReview.username": %w`, err)}
		}
	}
	if v, ok := bru.mutation.Review(); ok {
		if err := booksreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "BooksReview.review": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bru *BooksReviewUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BooksReviewUpdate {
	bru.modifiers = append(bru.modifiers, modifiers...)
	return bru
}

func (bru *BooksReviewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(booksreview.Table, booksreview.Columns, sqlgraph.NewFieldSpec(booksreview.FieldID, field.TypeUint))
	if ps := bru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bru.mutation.CreatedAt(); ok {
		_spec.SetField(booksreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := bru.mutation.UpdatedAt(); ok {
		_spec.SetField(booksreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := bru.mutation.Username(); ok {
		_spec.SetField(booksreview.FieldUsername, field.TypeString, value)
	}
	if value, ok := bru.mutation.ArticleID(); ok {
		_spec.SetField(booksreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := bru.mutation.AddedArticleID(); ok {
		_spec.AddField(booksreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := bru.mutation.Review(); ok {
		_spec.SetField(booksreview.FieldReview, field.TypeString, value)
	}
	if value, ok := bru.mutation.ReviewHTML(); ok {
		_spec.SetField(booksreview.FieldReviewHTML, field.TypeString, value)
	}
	if bru.mutation.ReviewHTMLCleared() {
		_spec.ClearField(booksreview.FieldReviewHTML, field.TypeString)
	}
	if value, ok := bru.mutation.Overall(); ok {
		_spec.SetField(booksreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := bru.mutation.AddedOverall(); ok {
		_spec.AddField(booksreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := bru.mutation.Art(); ok {
		_spec.SetField(booksreview.FieldArt, field.TypeInt, value)
	}
	if value, ok := bru.mutation.AddedArt(); ok {
		_spec.AddField(booksreview.FieldArt, field.TypeInt, value)
	}
	if bru.mutation.ArtCleared() {
		_spec.ClearField(booksreview.FieldArt, field.TypeInt)
	}
	if value, ok := bru.mutation.Characters(); ok {
		_spec.SetField(booksreview.FieldCharacters, field.TypeInt, value)
	}
	if value, ok := bru.mutation.AddedCharacters(); ok {
		_spec.AddField(booksreview.FieldCharacters, field.TypeInt, value)
	}
	if bru.mutation.CharactersCleared() {
		_spec.ClearField(booksreview.FieldCharacters, field.TypeInt)
	}
	if value, ok := bru.mutation.Story(); ok {
		_spec.SetField(booksreview.FieldStory, field.TypeInt, value)
	}
	if value, ok := bru.mutation.AddedStory(); ok {
		_spec.AddField(booksreview.FieldStory, field.TypeInt, value)
	}
	if bru.mutation.StoryCleared() {
		_spec.ClearField(booksreview.FieldStory, field.TypeInt)
	}
	if value, ok := bru.mutation.Enjoyment(); ok {
		_spec.SetField(booksreview.FieldEnjoyment, field.TypeInt, value)
	}
	if value, ok := bru.mutation.AddedEnjoyment(); ok {
		_spec.AddField(booksreview.FieldEnjoyment, field.TypeInt, value)
	}
	if bru.mutation.EnjoymentCleared() {
		_spec.ClearField(booksreview.FieldEnjoyment, field.TypeInt)
	}
	_spec.AddModifiers(bru.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, bru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booksreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bru.mutation.done = true
	return n, nil
}

// BooksReviewUpdateOne is the builder for updating a single BooksReview entity.
type BooksReviewUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *BooksReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (bruo *BooksReviewUpdateOne) SetCreatedAt(t time.Time) *BooksReviewUpdateOne {
	bruo.mutation.SetCreatedAt(t)
	return bruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableCreatedAt(t *time.Time) *BooksReviewUpdateOne {
	if t != nil {
		bruo.SetCreatedAt(*t)
	}
	return bruo
}

// SetUpdatedAt sets the "updated_at" field.
func (bruo *BooksReviewUpdateOne) SetUpdatedAt(t time.Time) *BooksReviewUpdateOne {
	bruo.mutation.SetUpdatedAt(t)
	return bruo
}

// SetUsername sets the "username" field.
func (bruo *BooksReviewUpdateOne) SetUsername(s string) *BooksReviewUpdateOne {
	bruo.mutation.SetUsername(s)
	return bruo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableUsername(s *string) *BooksReviewUpdateOne {
	if s != nil {
		bruo.SetUsername(*s)
	}
	return bruo
}

// SetArticleID sets the "article_id" field.
func (bruo *BooksReviewUpdateOne) SetArticleID(u uint) *BooksReviewUpdateOne {
	bruo.mutation.ResetArticleID()
	bruo.mutation.SetArticleID(u)
	return bruo
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableArticleID(u *uint) *BooksReviewUpdateOne {
	if u != nil {
		bruo.SetArticleID(*u)
	}
	return bruo
}

// AddArticleID adds u to the "article_id" field.
func (bruo *BooksReviewUpdateOne) AddArticleID(u int) *BooksReviewUpdateOne {
	bruo.mutation.AddArticleID(u)
	return bruo
}

// SetReview sets the "review" field.
func (bruo *BooksReviewUpdateOne) SetReview(s string) *BooksReviewUpdateOne {
	bruo.mutation.SetReview(s)
	return bruo
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableReview(s *string) *BooksReviewUpdateOne {
	if s != nil {
		bruo.SetReview(*s)
	}
	return bruo
}

// SetReviewHTML sets the "review_html" field.
func (bruo *BooksReviewUpdateOne) SetReviewHTML(s string) *BooksReviewUpdateOne {
	bruo.mutation.SetReviewHTML(s)
	return bruo
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableReviewHTML(s *string) *BooksReviewUpdateOne {
	if s != nil {
		bruo.SetReviewHTML(*s)
	}
	return bruo
}

// ClearReviewHTML clears the value of the "review_html" field.
func (bruo *BooksReviewUpdateOne) ClearReviewHTML() *BooksReviewUpdateOne {
	bruo.mutation.ClearReviewHTML()
	return bruo
}

// SetOverall sets the "overall" field.
func (bruo *BooksReviewUpdateOne) SetOverall(i int) *BooksReviewUpdateOne {
	bruo.mutation.ResetOverall()
	bruo.mutation.SetOverall(i)
	return bruo
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableOverall(i *int) *BooksReviewUpdateOne {
	if i != nil {
		bruo.SetOverall(*i)
	}
	return bruo
}

// AddOverall adds i to the "overall" field.
func (bruo *BooksReviewUpdateOne) AddOverall(i int) *BooksReviewUpdateOne {
	bruo.mutation.AddOverall(i)
	return bruo
}

// SetArt sets the "art" field.
func (bruo *BooksReviewUpdateOne) SetArt(i int) *BooksReviewUpdateOne {
	bruo.mutation.ResetArt()
	bruo.mutation.SetArt(i)
	return bruo
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableArt(i *int) *BooksReviewUpdateOne {
	if i != nil {
		bruo.SetArt(*i)
	}
	return bruo
}

// AddArt adds i to the "art" field.
func (bruo *BooksReviewUpdateOne) AddArt(i int) *BooksReviewUpdateOne {
	bruo.mutation.AddArt(i)
	return bruo
}

// ClearArt clears the value of the "art" field.
func (bruo *BooksReviewUpdateOne) ClearArt() *BooksReviewUpdateOne {
	bruo.mutation.ClearArt()
	return bruo
}

// SetCharacters sets the "characters" field.
func (bruo *BooksReviewUpdateOne) SetCharacters(i int) *BooksReviewUpdateOne {
	bruo.mutation.ResetCharacters()
	bruo.mutation.SetCharacters(i)
	return bruo
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableCharacters(i *int) *BooksReviewUpdateOne {
	if i != nil {
		bruo.SetCharacters(*i)
	}
	return bruo
}

// AddCharacters adds i to the "characters" field.
func (bruo *BooksReviewUpdateOne) AddCharacters(i int) *BooksReviewUpdateOne {
	bruo.mutation.AddCharacters(i)
	return bruo
}

// ClearCharacters clears the value of the "characters" field.
func (bruo *BooksReviewUpdateOne) ClearCharacters() *BooksReviewUpdateOne {
	bruo.mutation.ClearCharacters()
	return bruo
}

// SetStory sets the "story" field.
func (bruo *BooksReviewUpdateOne) SetStory(i int) *BooksReviewUpdateOne {
	bruo.mutation.ResetStory()
	bruo.mutation.SetStory(i)
	return bruo
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableStory(i *int) *BooksReviewUpdateOne {
	if i != nil {
		bruo.SetStory(*i)
	}
	return bruo
}

// AddStory adds i to the "story" field.
func (bruo *BooksReviewUpdateOne) AddStory(i int) *BooksReviewUpdateOne {
	bruo.mutation.AddStory(i)
	return bruo
}

// ClearStory clears the value of the "story" field.
func (bruo *BooksReviewUpdateOne) ClearStory() *BooksReviewUpdateOne {
	bruo.mutation.ClearStory()
	return bruo
}

// SetEnjoyment sets the "enjoyment" field.
func (bruo *BooksReviewUpdateOne) SetEnjoyment(i int) *BooksReviewUpdateOne {
	bruo.mutation.ResetEnjoyment()
	bruo.mutation.SetEnjoyment(i)
	return bruo
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (bruo *BooksReviewUpdateOne) SetNillableEnjoyment(i *int) *BooksReviewUpdateOne {
	if i != nil {
		bruo.SetEnjoyment(*i)
	}
	return bruo
}

// AddEnjoyment adds i to the "enjoyment" field.
func (bruo *BooksReviewUpdateOne) AddEnjoyment(i int) *BooksReviewUpdateOne {
	bruo.mutation.AddEnjoyment(i)
	return bruo
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (bruo *BooksReviewUpdateOne) ClearEnjoyment() *BooksReviewUpdateOne {
	bruo.mutation.ClearEnjoyment()
	return bruo
}

// Mutation returns the BooksReviewMutation object of the builder.
func (bruo *BooksReviewUpdateOne) Mutation() *BooksReviewMutation {
	return bruo.mutation
}

// Where appends a list predicates to the BooksReviewUpdate builder.
func (bruo *BooksReviewUpdateOne) Where(ps ...predicate.BooksReview) *BooksReviewUpdateOne {
	bruo.mutation.Where(ps...)
	return bruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bruo *BooksReviewUpdateOne) Select(field string, fields ...string) *BooksReviewUpdateOne {
	bruo.fields = append([]string{field}, fields...)
	return bruo
}

// Save executes the query and returns the updated BooksReview entity.
func (bruo *BooksReviewUpdateOne) Save(ctx context.Context) (*BooksReview, error) {
	bruo.defaults()
	return withHooks(ctx, bruo.sqlSave, bruo.mutation, bruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bruo *BooksReviewUpdateOne) SaveX(ctx context.Context) *BooksReview {
	node, err := bruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bruo *BooksReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := bruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bruo *BooksReviewUpdateOne) ExecX(ctx context.Context) {
	if err := bruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bruo *BooksReviewUpdateOne) defaults() {
	if _, ok := bruo.mutation.UpdatedAt(); !ok {
		v := booksreview.UpdateDefaultUpdatedAt()
		bruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bruo *BooksReviewUpdateOne) check() error {
	if v, ok := bruo.mutation.Username(); ok {
		if err := booksreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "BooksReview.username": %w`, err)}
		}
	}
	if v, ok := bruo.mutation.Review(); ok {
		if err := booksreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "BooksReview.review": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bruo *BooksReviewUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BooksReviewUpdateOne {
	bruo.modifiers = append(bruo.modifiers, modifiers...)
	return bruo
}

func (bruo *BooksReviewUpdateOne) sqlSave(ctx context.Context) (_node *BooksReview, err error) {
	if err := bruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(booksreview.Table, booksreview.Columns, sqlgraph.NewFieldSpec(booksreview.FieldID, field.TypeUint))
	id, ok := bruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BooksReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booksreview.FieldID)
		for _, f := range fields {
			if !booksreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != booksreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bruo.mutation.CreatedAt(); ok {
		_spec.SetField(booksreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := bruo.mutation.UpdatedAt(); ok {
		_spec.SetField(booksreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := bruo.mutation.Username(); ok {
		_spec.SetField(booksreview.FieldUsername, field.TypeString, value)
	}
	if value, ok := bruo.mutation.ArticleID(); ok {
		_spec.SetField(booksreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := bruo.mutation.AddedArticleID(); ok {
		_spec.AddField(booksreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := bruo.mutation.Review(); ok {
		_spec.SetField(booksreview.FieldReview, field.TypeString, value)
	}
	if value, ok := bruo.mutation.ReviewHTML(); ok {
		_spec.SetField(booksreview.FieldReviewHTML, field.TypeString, value)
	}
	if bruo.mutation.ReviewHTMLCleared() {
		_spec.ClearField(booksreview.FieldReviewHTML, field.TypeString)
	}
	if value, ok := bruo.mutation.Overall(); ok {
		_spec.SetField(booksreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := bruo.mutation.AddedOverall(); ok {
		_spec.AddField(booksreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := bruo.mutation.Art(); ok {
		_spec.SetField(booksreview.FieldArt, field.TypeInt, value)
	}
	if value, ok := bruo.mutation.AddedArt(); ok {
		_spec.AddField(booksreview.FieldArt, field.TypeInt, value)
	}
	if bruo.mutation.ArtCleared() {
		_spec.ClearField(booksreview.FieldArt, field.TypeInt)
	}
	if value, ok := bruo.mutation.Characters(); ok {
		_spec.SetField(booksreview.FieldCharacters, field.TypeInt, value)
	}
	if value, ok := bruo.mutation.AddedCharacters(); ok {
		_spec.AddField(booksreview.FieldCharacters, field.TypeInt, value)
	}
	if bruo.mutation.CharactersCleared() {
		_spec.ClearField(booksreview.FieldCharacters, field.TypeInt)
	}
	if value, ok := bruo.mutation.Story(); ok {
		_spec.SetField(booksreview.FieldStory, field.TypeInt, value)
	}
	if value, ok := bruo.mutation.AddedStory(); ok {
		_spec.AddField(booksreview.FieldStory, field.TypeInt, value)
	}
	if bruo.mutation.StoryCleared() {
		_spec.ClearField(booksreview.FieldStory, field.TypeInt)
	}
	if value, ok := bruo.mutation.Enjoyment(); ok {
		_spec.SetField(booksreview.FieldEnjoyment, field.TypeInt, value)
	}
	if value, ok := bruo.mutation.AddedEnjoyment(); ok {
		_spec.AddField(booksreview.FieldEnjoyment, field.TypeInt, value)
	}
	if bruo.mutation.EnjoymentCleared() {
		_spec.ClearField(booksreview.FieldEnjoyment, field.TypeInt)
	}
	_spec.AddModifiers(bruo.modifiers...)
	_node = &BooksReview{config: bruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{booksreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bruo.mutation.done = true
	return _node, nil
}
