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
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ComicsReviewUpdate is the builder for updating ComicsReview entities.
type ComicsReviewUpdate struct {
	config
	hooks     []Hook
	mutation  *ComicsReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ComicsReviewUpdate builder.
func (cru *ComicsReviewUpdate) Where(ps ...predicate.ComicsReview) *ComicsReviewUpdate {
	cru.mutation.Where(ps...)
	return cru
}

// SetCreatedAt sets the "created_at" field.
func (cru *ComicsReviewUpdate) SetCreatedAt(t time.Time) *ComicsReviewUpdate {
	cru.mutation.SetCreatedAt(t)
	return cru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableCreatedAt(t *time.Time) *ComicsReviewUpdate {
	if t != nil {
		cru.SetCreatedAt(*t)
	}
	return cru
}

// SetUpdatedAt sets the "updated_at" field.
func (cru *ComicsReviewUpdate) SetUpdatedAt(t time.Time) *ComicsReviewUpdate {
	cru.mutation.SetUpdatedAt(t)
	return cru
}

// SetUsername sets the "username" field.
func (cru *ComicsReviewUpdate) SetUsername(s string) *ComicsReviewUpdate {
	cru.mutation.SetUsername(s)
	return cru
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableUsername(s *string) *ComicsReviewUpdate {
	if s != nil {
		cru.SetUsername(*s)
	}
	return cru
}

// SetArticleID sets the "article_id" field.
func (cru *ComicsReviewUpdate) SetArticleID(u uint) *ComicsReviewUpdate {
	cru.mutation.ResetArticleID()
	cru.mutation.SetArticleID(u)
	return cru
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableArticleID(u *uint) *ComicsReviewUpdate {
	if u != nil {
		cru.SetArticleID(*u)
	}
	return cru
}

// AddArticleID adds u to the "article_id" field.
func (cru *ComicsReviewUpdate) AddArticleID(u int) *ComicsReviewUpdate {
	cru.mutation.AddArticleID(u)
	return cru
}

// SetReview sets the "review" field.
func (cru *ComicsReviewUpdate) SetReview(s string) *ComicsReviewUpdate {
	cru.mutation.SetReview(s)
	return cru
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableReview(s *string) *ComicsReviewUpdate {
	if s != nil {
		cru.SetReview(*s)
	}
	return cru
}

// SetReviewHTML sets the "review_html" field.
func (cru *ComicsReviewUpdate) SetReviewHTML(s string) *ComicsReviewUpdate {
	cru.mutation.SetReviewHTML(s)
	return cru
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableReviewHTML(s *string) *ComicsReviewUpdate {
	if s != nil {
		cru.SetReviewHTML(*s)
	}
	return cru
}

// ClearReviewHTML clears the value of the "review_html" field.
func (cru *ComicsReviewUpdate) ClearReviewHTML() *ComicsReviewUpdate {
	cru.mutation.ClearReviewHTML()
	return cru
}

// SetOverall sets the "overall" field.
func (cru *ComicsReviewUpdate) SetOverall(i int) *ComicsReviewUpdate {
	cru.mutation.ResetOverall()
	cru.mutation.SetOverall(i)
	return cru
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableOverall(i *int) *ComicsReviewUpdate {
	if i != nil {
		cru.SetOverall(*i)
	}
	return cru
}

// AddOverall adds i to the "overall" field.
func (cru *ComicsReviewUpdate) AddOverall(i int) *ComicsReviewUpdate {
	cru.mutation.AddOverall(i)
	return cru
}

// SetArt sets the "art" field.
func (cru *ComicsReviewUpdate) SetArt(i int) *ComicsReviewUpdate {
	cru.mutation.ResetArt()
	cru.mutation.SetArt(i)
	return cru
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableArt(i *int) *ComicsReviewUpdate {
	if i != nil {
		cru.SetArt(*i)
	}
	return cru
}

// AddArt adds i to the "art" field.
func (cru *ComicsReviewUpdate) AddArt(i int) *ComicsReviewUpdate {
	cru.mutation.AddArt(i)
	return cru
}

// ClearArt clears the value of the "art" field.
func (cru *ComicsReviewUpdate) ClearArt() *ComicsReviewUpdate {
	cru.mutation.ClearArt()
	return cru
}

// SetCharacters sets the "characters" field.
func (cru *ComicsReviewUpdate) SetCharacters(i int) *ComicsReviewUpdate {
	cru.mutation.ResetCharacters()
	cru.mutation.SetCharacters(i)
	return cru
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableCharacters(i *int) *ComicsReviewUpdate {
	if i != nil {
		cru.SetCharacters(*i)
	}
	return cru
}

// AddCharacters adds i to the "characters" field.
func (cru *ComicsReviewUpdate) AddCharacters(i int) *ComicsReviewUpdate {
	cru.mutation.AddCharacters(i)
	return cru
}

// ClearCharacters clears the value of the "characters" field.
func (cru *ComicsReviewUpdate) ClearCharacters() *ComicsReviewUpdate {
	cru.mutation.ClearCharacters()
	return cru
}

// SetStory sets the "story" field.
func (cru *ComicsReviewUpdate) SetStory(i int) *ComicsReviewUpdate {
	cru.mutation.ResetStory()
	cru.mutation.SetStory(i)
	return cru
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableStory(i *int) *ComicsReviewUpdate {
	if i != nil {
		cru.SetStory(*i)
	}
	return cru
}

// AddStory adds i to the "story" field.
func (cru *ComicsReviewUpdate) AddStory(i int) *ComicsReviewUpdate {
	cru.mutation.AddStory(i)
	return cru
}

// ClearStory clears the value of the "story" field.
func (cru *ComicsReviewUpdate) ClearStory() *ComicsReviewUpdate {
	cru.mutation.ClearStory()
	return cru
}

// SetEnjoyment sets the "enjoyment" field.
func (cru *ComicsReviewUpdate) SetEnjoyment(i int) *ComicsReviewUpdate {
	cru.mutation.ResetEnjoyment()
	cru.mutation.SetEnjoyment(i)
	return cru
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (cru *ComicsReviewUpdate) SetNillableEnjoyment(i *int) *ComicsReviewUpdate {
	if i != nil {
		cru.SetEnjoyment(*i)
	}
	return cru
}

// AddEnjoyment adds i to the "enjoyment" field.
func (cru *ComicsReviewUpdate) AddEnjoyment(i int) *ComicsReviewUpdate {
	cru.mutation.AddEnjoyment(i)
	return cru
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (cru *ComicsReviewUpdate) ClearEnjoyment() *ComicsReviewUpdate {
	cru.mutation.ClearEnjoyment()
	return cru
}

// Mutation returns the ComicsReviewMutation object of the builder.
func (cru *ComicsReviewUpdate) Mutation() *ComicsReviewMutation {
	return cru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cru *ComicsReviewUpdate) Save(ctx context.Context) (int, error) {
	cru.defaults()
	return withHooks(ctx, cru.sqlSave, cru.mutation, cru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cru *ComicsReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := cru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cru *ComicsReviewUpdate) Exec(ctx context.Context) error {
	_, err := cru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cru *ComicsReviewUpdate) ExecX(ctx context.Context) {
	if err := cru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cru *ComicsReviewUpdate) defaults() {
	if _, ok := cru.mutation.UpdatedAt(); !ok {
		v := comicsreview.UpdateDefaultUpdatedAt()
		cru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cru *ComicsReviewUpdate) check() error {
	if v, ok := cru.mutation.Username(); ok {
		if err := comicsreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ComicsReview.username": %w`, err)}
		}
	}
	if v, ok := cru.mutation.Review(); ok {
		if err := comicsreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "ComicsReview.review": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cru *ComicsReviewUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ComicsReviewUpdate {
	cru.modifiers = append(cru.modifiers, modifiers...)
	return cru
}

func (cru *ComicsReviewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(comicsreview.Table, comicsreview.Columns, sqlgraph.NewFieldSpec(comicsreview.FieldID, field.TypeUint))
	if ps := cru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cru.mutation.CreatedAt(); ok {
		_spec.SetField(comicsreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := cru.mutation.UpdatedAt(); ok {
		_spec.SetField(comicsreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cru.mutation.Username(); ok {
		_spec.SetField(comicsreview.FieldUsername, field.TypeString, value)
	}
	if value, ok := cru.mutation.ArticleID(); ok {
		_spec.SetField(comicsreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := cru.mutation.AddedArticleID(); ok {
		_spec.AddField(comicsreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := cru.mutation.Review(); ok {
		_spec.SetField(comicsreview.FieldReview, field.TypeString, value)
	}
	if value, ok := cru.mutation.ReviewHTML(); ok {
		_spec.SetField(comicsreview.FieldReviewHTML, field.TypeString, value)
	}
	if cru.mutation.ReviewHTMLCleared() {
		_spec.ClearField(comicsreview.FieldReviewHTML, field.TypeString)
	}
	if value, ok := cru.mutation.Overall(); ok {
		_spec.SetField(comicsreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := cru.mutation.AddedOverall(); ok {
		_spec.AddField(comicsreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := cru.mutation.Art(); ok {
		_spec.SetField(comicsreview.FieldArt, field.TypeInt, value)
	}
	if value, ok := cru.mutation.AddedArt(); ok {
		_spec.AddField(comicsreview.FieldArt, field.TypeInt, value)
	}
	if cru.mutation.ArtCleared() {
		_spec.ClearField(comicsreview.FieldArt, field.TypeInt)
	}
	if value, ok := cru.mutation.Characters(); ok {
		_spec.SetField(comicsreview.FieldCharacters, field.TypeInt, value)
	}
	if value, ok := cru.mutation.AddedCharacters(); ok {
		_spec.AddField(comicsreview.FieldCharacters, field.TypeInt, value)
	}
	if cru.mutation.CharactersCleared() {
		_spec.ClearField(comicsreview.FieldCharacters, field.TypeInt)
	}
	if value, ok := cru.mutation.Story(); ok {
		_spec.SetField(comicsreview.FieldStory, field.TypeInt, value)
	}
	if value, ok := cru.mutation.AddedStory(); ok {
		_spec.AddField(comicsreview.FieldStory, field.TypeInt, value)
	}
	if cru.mutation.StoryCleared() {
		_spec.ClearField(comicsreview.FieldStory, field.TypeInt)
	}
	if value, ok := cru.mutation.Enjoyment(); ok {
		_spec.SetField(comicsreview.FieldEnjoyment, field.TypeInt, value)
	}
	if value, ok := cru.mutation.AddedEnjoyment(); ok {
		_spec.AddField(comicsreview.FieldEnjoyment, field.TypeInt, value)
	}
	if cru.mutation.EnjoymentCleared() {
		_spec.ClearField(comicsreview.FieldEnjoyment, field.TypeInt)
	}
	_spec.AddModifiers(cru.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, cru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comicsreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cru.mutation.done = true
	return n, nil
}

// ComicsReviewUpdateOne is the builder for updating a single ComicsReview entity.
type ComicsReviewUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ComicsReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (cruo *ComicsReviewUpdateOne) SetCreatedAt(t time.Time) *ComicsReviewUpdateOne {
	cruo.mutation.SetCreatedAt(t)
	return cruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableCreatedAt(t *time.Time) *ComicsReviewUpdateOne {
	if t != nil {
		cruo.SetCreatedAt(*t)
	}
	return cruo
}

// SetUpdatedAt sets the "updated_at" field.
func (cruo *ComicsReviewUpdateOne) SetUpdatedAt(t time.Time) *ComicsReviewUpdateOne {
	cruo.mutation.SetUpdatedAt(t)
	return cruo
}

// SetUsername sets the "username" field.
func (cruo *ComicsReviewUpdateOne) SetUsername(s string) *ComicsReviewUpdateOne {
	cruo.mutation.SetUsername(s)
	return cruo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableUsername(s *string) *ComicsReviewUpdateOne {
	if s != nil {
		cruo.SetUsername(*s)
	}
	return cruo
}

// SetArticleID sets the "article_id" field.
func (cruo *ComicsReviewUpdateOne) SetArticleID(u uint) *ComicsReviewUpdateOne {
	cruo.mutation.ResetArticleID()
	cruo.mutation.SetArticleID(u)
	return cruo
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableArticleID(u *uint) *ComicsReviewUpdateOne {
	if u != nil {
		cruo.SetArticleID(*u)
	}
	return cruo
}

// AddArticleID adds u to the "article_id" field.
func (cruo *ComicsReviewUpdateOne) AddArticleID(u int) *ComicsReviewUpdateOne {
	cruo.mutation.AddArticleID(u)
	return cruo
}

// SetReview sets the "review" field.
func (cruo *ComicsReviewUpdateOne) SetReview(s string) *ComicsReviewUpdateOne {
	cruo.mutation.SetReview(s)
	return cruo
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableReview(s *string) *ComicsReviewUpdateOne {
	if s != nil {
		cruo.SetReview(*s)
	}
	return cruo
}

// SetReviewHTML sets the "review_html" field.
func (cruo *ComicsReviewUpdateOne) SetReviewHTML(s string) *ComicsReviewUpdateOne {
	cruo.mutation.SetReviewHTML(s)
	return cruo
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableReviewHTML(s *string) *ComicsReviewUpdateOne {
	if s != nil {
		cruo.SetReviewHTML(*s)
	}
	return cruo
}

// ClearReviewHTML clears the value of the "review_html" field.
func (cruo *ComicsReviewUpdateOne) ClearReviewHTML() *ComicsReviewUpdateOne {
	cruo.mutation.ClearReviewHTML()
	return cruo
}

// SetOverall sets the "overall" field.
func (cruo *ComicsReviewUpdateOne) SetOverall(i int) *ComicsReviewUpdateOne {
	cruo.mutation.ResetOverall()
	cruo.mutation.SetOverall(i)
	return cruo
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableOverall(i *int) *ComicsReviewUpdateOne {
	if i != nil {
		cruo.SetOverall(*i)
	}
	return cruo
}

// AddOverall adds i to the "overall" field.
func (cruo *ComicsReviewUpdateOne) AddOverall(i int) *ComicsReviewUpdateOne {
	cruo.mutation.AddOverall(i)
	return cruo
}

// SetArt sets the "art" field.
func (cruo *ComicsReviewUpdateOne) SetArt(i int) *ComicsReviewUpdateOne {
	cruo.mutation.ResetArt()
	cruo.mutation.SetArt(i)
	return cruo
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableArt(i *int) *ComicsReviewUpdateOne {
	if i != nil {
		cruo.SetArt(*i)
	}
	return cruo
}

// AddArt adds i to the "art" field.
func (cruo *ComicsReviewUpdateOne) AddArt(i int) *ComicsReviewUpdateOne {
	cruo.mutation.AddArt(i)
	return cruo
}

// ClearArt clears the value of the "art" field.
func (cruo *ComicsReviewUpdateOne) ClearArt() *ComicsReviewUpdateOne {
	cruo.mutation.ClearArt()
	return cruo
}

// SetCharacters sets the "characters" field.
func (cruo *ComicsReviewUpdateOne) SetCharacters(i int) *ComicsReviewUpdateOne {
	cruo.mutation.ResetCharacters()
	cruo.mutation.SetCharacters(i)
	return cruo
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableCharacters(i *int) *ComicsReviewUpdateOne {
	if i != nil {
		cruo.SetCharacters(*i)
	}
	return cruo
}

// AddCharacters adds i to the "characters" field.
func (cruo *ComicsReviewUpdateOne) AddCharacters(i int) *ComicsReviewUpdateOne {
	cruo.mutation.AddCharacters(i)
	return cruo
}

// ClearCharacters clears the value of the "characters" field.
func (cruo *ComicsReviewUpdateOne) ClearCharacters() *ComicsReviewUpdateOne {
	cruo.mutation.ClearCharacters()
	return cruo
}

// SetStory sets the "story" field.
func (cruo *ComicsReviewUpdateOne) SetStory(i int) *ComicsReviewUpdateOne {
	cruo.mutation.ResetStory()
	cruo.mutation.SetStory(i)
	return cruo
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableStory(i *int) *ComicsReviewUpdateOne {
	if i != nil {
		cruo.SetStory(*i)
	}
	return cruo
}

// AddStory adds i to the "story" field.
func (cruo *ComicsReviewUpdateOne) AddStory(i int) *ComicsReviewUpdateOne {
	cruo.mutation.AddStory(i)
	return cruo
}

// ClearStory clears the value of the "story" field.
func (cruo *ComicsReviewUpdateOne) ClearStory() *ComicsReviewUpdateOne {
	cruo.mutation.ClearStory()
	return cruo
}

// SetEnjoyment sets the "enjoyment" field.
func (cruo *ComicsReviewUpdateOne) SetEnjoyment(i int) *ComicsReviewUpdateOne {
	cruo.mutation.ResetEnjoyment()
	cruo.mutation.SetEnjoyment(i)
	return cruo
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (cruo *ComicsReviewUpdateOne) SetNillableEnjoyment(i *int) *ComicsReviewUpdateOne {
	if i != nil {
		cruo.SetEnjoyment(*i)
	}
	return cruo
}

// AddEnjoyment adds i to the "enjoyment" field.
func (cruo *ComicsReviewUpdateOne) AddEnjoyment(i int) *ComicsReviewUpdateOne {
	cruo.mutation.AddEnjoyment(i)
	return cruo
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (cruo *ComicsReviewUpdateOne) ClearEnjoyment() *ComicsReviewUpdateOne {
	cruo.mutation.ClearEnjoyment()
	return cruo
}

// Mutation returns the ComicsReviewMutation object of the builder.
func (cruo *ComicsReviewUpdateOne) Mutation() *ComicsReviewMutation {
	return cruo.mutation
}

// Where appends a list predicates to the ComicsReviewUpdate builder.
func (cruo *ComicsReviewUpdateOne) Where(ps ...predicate.ComicsReview) *ComicsReviewUpdateOne {
	cruo.mutation.Where(ps...)
	return cruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cruo *ComicsReviewUpdateOne) Select(field string, fields ...string) *ComicsReviewUpdateOne {
	cruo.fields = append([]string{field}, fields...)
	return cruo
}

// Save executes the query and returns the updated ComicsReview entity.
func (cruo *ComicsReviewUpdateOne) Save(ctx context.Context) (*ComicsReview, error) {
	cruo.defaults()
	return withHooks(ctx, cruo.sqlSave, cruo.mutation, cruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cruo *ComicsReviewUpdateOne) SaveX(ctx context.Context) *ComicsReview {
	node, err := cruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cruo *ComicsReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := cruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cruo *ComicsReviewUpdateOne) ExecX(ctx context.Context) {
	if err := cruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cruo *ComicsReviewUpdateOne) defaults() {
	if _, ok := cruo.mutation.UpdatedAt(); !ok {
		v := comicsreview.UpdateDefaultUpdatedAt()
		cruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cruo *ComicsReviewUpdateOne) check() error {
	if v, ok := cruo.mutation.Username(); ok {
		if err := comicsreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ComicsReview.username": %w`, err)}
		}
	}
	if v, ok := cruo.mutation.Review(); ok {
		if err := comicsreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "ComicsReview.review": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cruo *ComicsReviewUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ComicsReviewUpdateOne {
	cruo.modifiers = append(cruo.modifiers, modifiers...)
	return cruo
}

func (cruo *ComicsReviewUpdateOne) sqlSave(ctx context.Context) (_node *ComicsReview, err error) {
	if err := cruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comicsreview.Table, comicsreview.Columns, sqlgraph.NewFieldSpec(comicsreview.FieldID, field.TypeUint))
	id, ok := cruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ComicsReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comicsreview.FieldID)
		for _, f := range fields {
			if !comicsreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comicsreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cruo.mutation.CreatedAt(); ok {
		_spec.SetField(comicsreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := cruo.mutation.UpdatedAt(); ok {
		_spec.SetField(comicsreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cruo.mutation.Username(); ok {
		_spec.SetField(comicsreview.FieldUsername, field.TypeString, value)
	}
	if value, ok := cruo.mutation.ArticleID(); ok {
		_spec.SetField(comicsreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := cruo.mutation.AddedArticleID(); ok {
		_spec.AddField(comicsreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := cruo.mutation.Review(); ok {
		_spec.SetField(comicsreview.FieldReview, field.TypeString, value)
	}
	if value, ok := cruo.mutation.ReviewHTML(); ok {
		_spec.SetField(comicsreview.FieldReviewHTML, field.TypeString, value)
	}
	if cruo.mutation.ReviewHTMLCleared() {
		_spec.ClearField(comicsreview.FieldReviewHTML, field.TypeString)
	}
	if value, ok := cruo.mutation.Overall(); ok {
		_spec.SetField(comicsreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := cruo.mutation.AddedOverall(); ok {
		_spec.AddField(comicsreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := cruo.mutation.Art(); ok {
		_spec.SetField(comicsreview.FieldArt, field.TypeInt, value)
	}
	if value, ok := cruo.mutation.AddedArt(); ok {
		_spec.AddField(comicsreview.FieldArt, field.TypeInt, value)
	}
	if cruo.mutation.ArtCleared() {
		_spec.ClearField(comicsreview.FieldArt, field.TypeInt)
	}
	if value, ok := cruo.mutation.Characters(); ok {
		_spec.SetField(comicsreview.FieldCharacters, field.TypeInt, value)
	}
	if value, ok := cruo.mutation.AddedCharacters(); ok {
		_spec.AddField(comicsreview.FieldCharacters, field.TypeInt, value)
	}
	if cruo.mutation.CharactersCleared() {
		_spec.ClearField(comicsreview.FieldCharacters, field.TypeInt)
	}
	if value, ok := cruo.mutation.Story(); ok {
		_spec.SetField(comicsreview.FieldStory, field.TypeInt, value)
	}
	if value, ok := cruo.mutation.AddedStory(); ok {
		_spec.AddField(comicsreview.FieldStory, field.TypeInt, value)
	}
	if cruo.mutation.StoryCleared() {
		_spec.ClearField(comicsreview.FieldStory, field.TypeInt)
	}
	if value, ok := cruo.mutation.Enjoyment(); ok {
		_spec.SetField(comicsreview.FieldEnjoyment, field.TypeInt, value)
	}
	if value, ok := cruo.mutation.AddedEnjoyment(); ok {
		_spec.AddField(comicsreview.FieldEnjoyment, field.TypeInt, value)
	}
	if cruo.mutation.EnjoymentCleared() {
		_spec.ClearField(comicsreview.FieldEnjoyment, field.TypeInt)
	}
	_spec.AddModifiers(cruo.modifiers...)
	_node = &ComicsReview{config: cruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comicsreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cruo.mutation.done = true
	return _node, nil
}
