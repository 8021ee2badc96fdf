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
	"github.com/anzhiyu-c/mediawall-app/ent/mangasreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// MangasReviewUpdate is the builder for updating MangasReview entities.
type MangasReviewUpdate struct {
	config
	hooks     []Hook
	mutation  *MangasReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the MangasReviewUpdate builder.
func (mru *MangasReviewUpdate) Where(ps ...predicate.MangasReview) *MangasReviewUpdate {
	mru.mutation.Where(ps...)
	return mru
}

// SetCreatedAt sets the "created_at" field.
func (mru *MangasReviewUpdate) SetCreatedAt(t time.Time) *MangasReviewUpdate {
	mru.mutation.SetCreatedAt(t)
	return mru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableCreatedAt(t *time.Time) *MangasReviewUpdate {
	if t != nil {
		mru.SetCreatedAt(*t)
	}
	return mru
}

// SetUpdatedAt sets the "updated_at" field.
func (mru *MangasReviewUpdate) SetUpdatedAt(t time.Time) *MangasReviewUpdate {
	mru.mutation.SetUpdatedAt(t)
	return mru
}

// SetUsername sets the "username" field.
func (mru *MangasReviewUpdate) SetUsername(s string) *MangasReviewUpdate {
	mru.mutation.SetUsername(s)
	return mru
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableUsername(s *string) *MangasReviewUpdate {
	if s != nil {
		mru.SetUsername(*s)
	}
	return mru
}

// SetArticleID sets the "article_id" field.
func (mru *MangasReviewUpdate) SetArticleID(u uint) *MangasReviewUpdate {
	mru.mutation.ResetArticleID()
	mru.mutation.SetArticleID(u)
	return mru
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableArticleID(u *uint) *MangasReviewUpdate {
	if u != nil {
		mru.SetArticleID(*u)
	}
	return mru
}

// AddArticleID adds u to the "article_id" field.
func (mru *MangasReviewUpdate) AddArticleID(u int) *MangasReviewUpdate {
	mru.mutation.AddArticleID(u)
	return mru
}

// SetReview sets the "review" field.
func (mru *MangasReviewUpdate) SetReview(s string) *MangasReviewUpdate {
	mru.mutation.SetReview(s)
	return mru
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableReview(s *string) *MangasReviewUpdate {
	if s != nil {
		mru.SetReview(*s)
	}
	return mru
}

// SetReviewHTML sets the "review_html" field.
func (mru *MangasReviewUpdate) SetReviewHTML(s string) *MangasReviewUpdate {
	mru.mutation.SetReviewHTML(s)
	return mru
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableReviewHTML(s *string) *MangasReviewUpdate {
	if s != nil {
		mru.SetReviewHTML(*s)
	}
	return mru
}

// ClearReviewHTML clears the value of the "review_html" field.
func (mru *MangasReviewUpdate) ClearReviewHTML() *MangasReviewUpdate {
	mru.mutation.ClearReviewHTML()
	return mru
}

// SetOverall sets the "overall" field.
func (mru *MangasReviewUpdate) SetOverall(i int) *MangasReviewUpdate {
	mru.mutation.ResetOverall()
	mru.mutation.SetOverall(i)
	return mru
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableOverall(i *int) *MangasReviewUpdate {
	if i != nil {
		mru.SetOverall(*i)
	}
	return mru
}

// AddOverall adds i to the "overall" field.
func (mru *MangasReviewUpdate) AddOverall(i int) *MangasReviewUpdate {
	mru.mutation.AddOverall(i)
	return mru
}

// SetArt sets the "art" field.
func (mru *MangasReviewUpdate) SetArt(i int) *MangasReviewUpdate {
	mru.mutation.ResetArt()
	mru.mutation.SetArt(i)
	return mru
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableArt(i *int) *MangasReviewUpdate {
	if i != nil {
		mru.SetArt(*i)
	}
	return mru
}

// AddArt adds i to the "art" field.
func (mru *MangasReviewUpdate) AddArt(i int) *MangasReviewUpdate {
	mru.mutation.AddArt(i)
	return mru
}

// ClearArt clears the value of the "art" field.
func (mru *MangasReviewUpdate) ClearArt() *MangasReviewUpdate {
	mru.mutation.ClearArt()
	return mru
}

// SetCharacters sets the "characters" field.
func (mru *MangasReviewUpdate) SetCharacters(i int) *MangasReviewUpdate {
	mru.mutation.ResetCharacters()
	mru.mutation.SetCharacters(i)
	return mru
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableCharacters(i *int) *MangasReviewUpdate {
	if i != nil {
		mru.SetCharacters(*i)
	}
	return mru
}

// AddCharacters adds i to the "characters" field.
func (mru *MangasReviewUpdate) AddCharacters(i int) *MangasReviewUpdate {
	mru.mutation.AddCharacters(i)
	return mru
}

// ClearCharacters clears the value of the "characters" field.
func (mru *MangasReviewUpdate) ClearCharacters() *MangasReviewUpdate {
	mru.mutation.ClearCharacters()
	return mru
}

// SetStory sets the "story" field.
func (mru *MangasReviewUpdate) SetStory(i int) *MangasReviewUpdate {
	mru.mutation.ResetStory()
	mru.mutation.SetStory(i)
	return mru
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableStory(i *int) *MangasReviewUpdate {
	if i != nil {
		mru.SetStory(*i)
	}
	return mru
}

// AddStory adds i to the "story" field.
func (mru *MangasReviewUpdate) AddStory(i int) *MangasReviewUpdate {
	mru.mutation.AddStory(i)
	return mru
}

// ClearStory clears the value of the "story" field.
func (mru *MangasReviewUpdate) ClearStory() *MangasReviewUpdate {
	mru.mutation.ClearStory()
	return mru
}

// SetEnjoyment sets the "enjoyment" field.
func (mru *MangasReviewUpdate) SetEnjoyment(i int) *MangasReviewUpdate {
	mru.mutation.ResetEnjoyment()
	mru.mutation.SetEnjoyment(i)
	return mru
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (mru *MangasReviewUpdate) SetNillableEnjoyment(i *int) *MangasReviewUpdate {
	if i != nil {
		mru.SetEnjoyment(*i)
	}
	return mru
}

// AddEnjoyment adds i to the "enjoyment" field.
func (mru *MangasReviewUpdate) AddEnjoyment(i int) *MangasReviewUpdate {
	mru.mutation.AddEnjoyment(i)
	return mru
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (mru *MangasReviewUpdate) ClearEnjoyment() *MangasReviewUpdate {
	mru.mutation.ClearEnjoyment()
	return mru
}

// Mutation returns the MangasReviewMutation object of the builder.
func (mru *MangasReviewUpdate) Mutation() *MangasReviewMutation {
	return mru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mru *MangasReviewUpdate) Save(ctx context.Context) (int, error) {
	mru.defaults()
	return withHooks(ctx, mru.sqlSave, mru.mutation, mru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mru *MangasReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := mru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mru *MangasReviewUpdate) Exec(ctx context.Context) error {
	_, err := mru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mru *MangasReviewUpdate) ExecX(ctx context.Context) {
	if err := mru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mru *MangasReviewUpdate) defaults() {
	if _, ok := mru.mutation.UpdatedAt(); !ok {
		v := mangasreview.UpdateDefaultUpdatedAt()
		mru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mru *MangasReviewUpdate) check() error {
	if v, ok := mru.mutation.Username(); ok {
		if err := mangasreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "MangasReview.username": %w`, err)}
		}
	}
	if v, ok := mru.mutation.Review(); ok {
		if err := mangasreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "MangasReview.review": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (mru *MangasReviewUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *MangasReviewUpdate {
	mru.modifiers = append(mru.modifiers, modifiers...)
	return mru
}

func (mru *MangasReviewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(mangasreview.Table, mangasreview.Columns, sqlgraph.NewFieldSpec(mangasreview.FieldID, field.TypeUint))
	if ps := mru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mru.mutation.CreatedAt(); ok {
		_spec.SetField(mangasreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := mru.mutation.UpdatedAt(); ok {
		_spec.SetField(mangasreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := mru.mutation.Username(); ok {
		_spec.SetField(mangasreview.FieldUsername, field.TypeString, value)
	}
	if value, ok := mru.mutation.ArticleID(); ok {
		_spec.SetField(mangasreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := mru.mutation.AddedArticleID(); ok {
		_spec.AddField(mangasreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := mru.mutation.Review(); ok {
		_spec.SetField(mangasreview.FieldReview, field.TypeString, value)
	}
	if value, ok := mru.mutation.ReviewHTML(); ok {
		_spec.SetField(mangasreview.FieldReviewHTML, field.TypeString, value)
	}
	if mru.mutation.ReviewHTMLCleared() {
		_spec.ClearField(mangasreview.FieldReviewHTML, field.TypeString)
	}
	if value, ok := mru.mutation.Overall(); ok {
		_spec.SetField(mangasreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := mru.mutation.AddedOverall(); ok {
		_spec.AddField(mangasreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := mru.mutation.Art(); ok {
		_spec.SetField(mangasreview.FieldArt, field.TypeInt, value)
	}
	if value, ok := mru.mutation.AddedArt(); ok {
		_spec.AddField(mangasreview.FieldArt, field.TypeInt, value)
	}
	if mru.mutation.ArtCleared() {
		_spec.ClearField(mangasreview.FieldArt, field.TypeInt)
	}
	if value, ok := mru.mutation.Characters(); ok {
		_spec.SetField(mangasreview.FieldCharacters, field.TypeInt, value)
	}
	if value, ok := mru.mutation.AddedCharacters(); ok {
		_spec.AddField(mangasreview.FieldCharacters, field.TypeInt, value)
	}
	if mru.mutation.CharactersCleared() {
		_spec.ClearField(mangasreview.FieldCharacters, field.TypeInt)
	}
	if value, ok := mru.mutation.Story(); ok {
		_spec.SetField(mangasreview.FieldStory, field.TypeInt, value)
	}
	if value, ok := mru.mutation.AddedStory(); ok {
		_spec.AddField(mangasreview.FieldStory, field.TypeInt, value)
	}
	if mru.mutation.StoryCleared() {
		_spec.ClearField(mangasreview.FieldStory, field.TypeInt)
	}
	if value, ok := mru.mutation.Enjoyment(); ok {
		_spec.SetField(mangasreview.FieldEnjoyment, field.TypeInt, value)
	}
	if value, ok := mru.mutation.AddedEnjoyment(); ok {
		_spec.AddField(mangasreview.FieldEnjoyment, field.TypeInt, value)
	}
	if mru.mutation.EnjoymentCleared() {
		_spec.ClearField(mangasreview.FieldEnjoyment, field.TypeInt)
	}
	_spec.AddModifiers(mru.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, mru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mangasreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mru.mutation.done = true
	return n, nil
}

// MangasReviewUpdateOne is the builder for updating a single MangasReview entity.
type MangasReviewUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *MangasReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (mruo *MangasReviewUpdateOne) SetCreatedAt(t time.Time) *MangasReviewUpdateOne {
	mruo.mutation.SetCreatedAt(t)
	return mruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableCreatedAt(t *time.Time) *MangasReviewUpdateOne {
	if t != nil {
		mruo.SetCreatedAt(*t)
	}
	return mruo
}

// SetUpdatedAt sets the "updated_at" field.
func (mruo *MangasReviewUpdateOne) SetUpdatedAt(t time.Time) *MangasReviewUpdateOne {
	mruo.mutation.SetUpdatedAt(t)
	return mruo
}

// SetUsername sets the "username" field.
func (mruo *MangasReviewUpdateOne) SetUsername(s string) *MangasReviewUpdateOne {
	mruo.mutation.SetUsername(s)
	return mruo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableUsername(s *string) *MangasReviewUpdateOne {
	if s != nil {
		mruo.SetUsername(*s)
	}
	return mruo
}

// SetArticleID sets the "article_id" field.
func (mruo *MangasReviewUpdateOne) SetArticleID(u uint) *MangasReviewUpdateOne {
	mruo.mutation.ResetArticleID()
	mruo.mutation.SetArticleID(u)
	return mruo
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableArticleID(u *uint) *MangasReviewUpdateOne {
	if u != nil {
		mruo.SetArticleID(*u)
	}
	return mruo
}

// AddArticleID adds u to the "article_id" field.
func (mruo *MangasReviewUpdateOne) AddArticleID(u int) *MangasReviewUpdateOne {
	mruo.mutation.AddArticleID(u)
	return mruo
}

// SetReview sets the "review" field.
func (mruo *MangasReviewUpdateOne) SetReview(s string) *MangasReviewUpdateOne {
	mruo.mutation.SetReview(s)
	return mruo
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableReview(s *string) *MangasReviewUpdateOne {
	if s != nil {
		mruo.SetReview(*s)
	}
	return mruo
}

// SetReviewHTML sets the "review_html" field.
func (mruo *MangasReviewUpdateOne) SetReviewHTML(s string) *MangasReviewUpdateOne {
	mruo.mutation.SetReviewHTML(s)
	return mruo
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableReviewHTML(s *string) *MangasReviewUpdateOne {
	if s != nil {
		mruo.SetReviewHTML(*s)
	}
	return mruo
}

// ClearReviewHTML clears the value of the "review_html" field.
func (mruo *MangasReviewUpdateOne) ClearReviewHTML() *MangasReviewUpdateOne {
	mruo.mutation.ClearReviewHTML()
	return mruo
}

// SetOverall sets the "overall" field.
func (mruo *MangasReviewUpdateOne) SetOverall(i int) *MangasReviewUpdateOne {
	mruo.mutation.ResetOverall()
	mruo.mutation.SetOverall(i)
	return mruo
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableOverall(i *int) *MangasReviewUpdateOne {
	if i != nil {
		mruo.SetOverall(*i)
	}
	return mruo
}

// AddOverall adds i to the "overall" field.
func (mruo *MangasReviewUpdateOne) AddOverall(i int) *MangasReviewUpdateOne {
	mruo.mutation.AddOverall(i)
	return mruo
}

// SetArt sets the "art" field.
func (mruo *MangasReviewUpdateOne) SetArt(i int) *MangasReviewUpdateOne {
	mruo.mutation.ResetArt()
	mruo.mutation.SetArt(i)
	return mruo
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableArt(i *int) *MangasReviewUpdateOne {
	if i != nil {
		mruo.SetArt(*i)
	}
	return mruo
}

// AddArt adds i to the "art" field.
func (mruo *MangasReviewUpdateOne) AddArt(i int) *MangasReviewUpdateOne {
	mruo.mutation.AddArt(i)
	return mruo
}

// ClearArt clears the value of the "art" field.
func (mruo *MangasReviewUpdateOne) ClearArt() *MangasReviewUpdateOne {
	mruo.mutation.ClearArt()
	return mruo
}

// SetCharacters sets the "characters" field.
func (mruo *MangasReviewUpdateOne) SetCharacters(i int) *MangasReviewUpdateOne {
	mruo.mutation.ResetCharacters()
	mruo.mutation.SetCharacters(i)
	return mruo
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableCharacters(i *int) *MangasReviewUpdateOne {
	if i != nil {
		mruo.SetCharacters(*i)
	}
	return mruo
}

// AddCharacters adds i to the "characters" field.
func (mruo *MangasReviewUpdateOne) AddCharacters(i int) *MangasReviewUpdateOne {
	mruo.mutation.AddCharacters(i)
	return mruo
}

// ClearCharacters clears the value of the "characters" field.
func (mruo *MangasReviewUpdateOne) ClearCharacters() *MangasReviewUpdateOne {
	mruo.mutation.ClearCharacters()
	return mruo
}

// SetStory sets the "story" field.
func (mruo *MangasReviewUpdateOne) SetStory(i int) *MangasReviewUpdateOne {
	mruo.mutation.ResetStory()
	mruo.mutation.SetStory(i)
	return mruo
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableStory(i *int) *MangasReviewUpdateOne {
	if i != nil {
		mruo.SetStory(*i)
	}
	return mruo
}

// AddStory adds i to the "story" field.
func (mruo *MangasReviewUpdateOne) AddStory(i int) *MangasReviewUpdateOne {
	mruo.mutation.AddStory(i)
	return mruo
}

// ClearStory clears the value of the "story" field.
func (mruo *MangasReviewUpdateOne) ClearStory() *MangasReviewUpdateOne {
	mruo.mutation.ClearStory()
	return mruo
}

// SetEnjoyment sets the "enjoyment" field.
func (mruo *MangasReviewUpdateOne) SetEnjoyment(i int) *MangasReviewUpdateOne {
	mruo.mutation.ResetEnjoyment()
	mruo.mutation.SetEnjoyment(i)
	return mruo
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (mruo *MangasReviewUpdateOne) SetNillableEnjoyment(i *int) *MangasReviewUpdateOne {
	if i != nil {
		mruo.SetEnjoyment(*i)
	}
	return mruo
}

// AddEnjoyment adds i to the "enjoyment" field.
func (mruo *MangasReviewUpdateOne) AddEnjoyment(i int) *MangasReviewUpdateOne {
	mruo.mutation.AddEnjoyment(i)
	return mruo
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (mruo *MangasReviewUpdateOne) ClearEnjoyment() *MangasReviewUpdateOne {
	mruo.mutation.ClearEnjoyment()
	return mruo
}

// Mutation returns the MangasReviewMutation object of the builder.
func (mruo *MangasReviewUpdateOne) Mutation() *MangasReviewMutation {
	return mruo.mutation
}

// Where appends a list predicates to the MangasReviewUpdate builder.
func (mruo *MangasReviewUpdateOne) Where(ps ...predicate.MangasReview) *MangasReviewUpdateOne {
	mruo.mutation.Where(ps...)
	return mruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (mruo *MangasReviewUpdateOne) Select(field string, fields ...string) *MangasReviewUpdateOne {
	mruo.fields = append([]string{field}, fields...)
	return mruo
}

// Save executes the query and returns the updated MangasReview entity.
func (mruo *MangasReviewUpdateOne) Save(ctx context.Context) (*MangasReview, error) {
	mruo.defaults()
	return withHooks(ctx, mruo.sqlSave, mruo.mutation, mruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mruo *MangasReviewUpdateOne) SaveX(ctx context.Context) *MangasReview {
	node, err := mruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (mruo *MangasReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := mruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mruo *MangasReviewUpdateOne) ExecX(ctx context.Context) {
	if err := mruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mruo *MangasReviewUpdateOne) defaults() {
	if _, ok := mruo.mutation.UpdatedAt(); !ok {
		v := mangasreview.UpdateDefaultUpdatedAt()
		mruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mruo *MangasReviewUpdateOne) check() error {
	if v, ok := mruo.mutation.Username(); ok {
		if err := mangasreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "MangasReview.username": %w`, err)}
		}
	}
	if v, ok := mruo.mutation.Review(); ok {
		if err := mangasreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "MangasReview.review": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (mruo *MangasReviewUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *MangasReviewUpdateOne {
	mruo.modifiers = append(mruo.modifiers, modifiers...)
	return mruo
}

func (mruo *MangasReviewUpdateOne) sqlSave(ctx context.Context) (_node *MangasReview, err error) {
	if err := mruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mangasreview.Table, mangasreview.Columns, sqlgraph.NewFieldSpec(mangasreview.FieldID, field.TypeUint))
	id, ok := mruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MangasReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := mruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mangasreview.FieldID)
		for _, f := range fields {
			if !mangasreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mangasreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := mruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mruo.mutation.CreatedAt(); ok {
		_spec.SetField(mangasreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := mruo.mutation.UpdatedAt(); ok {
		_spec.SetField(mangasreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := mruo.mutation.Username(); ok {
		_spec.SetField(mangasreview.FieldUsername, field.TypeString, value)
	}
	if value, ok := mruo.mutation.ArticleID(); ok {
		_spec.SetField(mangasreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := mruo.mutation.AddedArticleID(); ok {
		_spec.AddField(mangasreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := mruo.mutation.Review(); ok {
		_spec.SetField(mangasreview.FieldReview, field.TypeString, value)
	}
	if value, ok := mruo.mutation.ReviewHTML(); ok {
		_spec.SetField(mangasreview.FieldReviewHTML, field.TypeString, value)
	}
	if mruo.mutation.ReviewHTMLCleared() {
		_spec.ClearField(mangasreview.FieldReviewHTML, field.TypeString)
	}
	if value, ok := mruo.mutation.Overall(); ok {
		_spec.SetField(mangasreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := mruo.mutation.AddedOverall(); ok {
		_spec.AddField(mangasreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := mruo.mutation.Art(); ok {
		_spec.SetField(mangasreview.FieldArt, field.TypeInt, value)
	}
	if value, ok := mruo.mutation.AddedArt(); ok {
		_spec.AddField(mangasreview.FieldArt, field.TypeInt, value)
	}
	if mruo.mutation.ArtCleared() {
		_spec.ClearField(mangasreview.FieldArt, field.TypeInt)
	}
	if value, ok := mruo.mutation.Characters(); ok {
		_spec.SetField(mangasreview.FieldCharacters, field.TypeInt, value)
	}
	if value, ok := mruo.mutation.AddedCharacters(); ok {
		_spec.AddField(mangasreview.FieldCharacters, field.TypeInt, value)
	}
	if mruo.mutation.CharactersCleared() {
		_spec.ClearField(mangasreview.FieldCharacters, field.TypeInt)
	}
	if value, ok := mruo.mutation.Story(); ok {
		_spec.SetField(mangasreview.FieldStory, field.TypeInt, value)
	}
	if value, ok := mruo.mutation.AddedStory(); ok {
		_spec.AddField(mangasreview.FieldStory, field.TypeInt, value)
	}
	if mruo.mutation.StoryCleared() {
		_spec.ClearField(mangasreview.FieldStory, field.TypeInt)
	}
	if value, ok := mruo.mutation.Enjoyment(); ok {
		_spec.SetField(mangasreview.FieldEnjoyment, field.TypeInt, value)
	}
	if value, ok := mruo.mutation.AddedEnjoyment(); ok {
		_spec.AddField(mangasreview.FieldEnjoyment, field.TypeInt, value)
	}
	if mruo.mutation.EnjoymentCleared() {
		_spec.ClearField(mangasreview.FieldEnjoyment, field.TypeInt)
	}
	_spec.AddModifiers(mruo.modifiers...)
	_node = &MangasReview{config: mruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, mruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mangasreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	mruo.mutation.done = true
	return _node, nil
}
