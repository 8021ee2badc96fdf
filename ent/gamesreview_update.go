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
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// GamesReviewUpdate is the builder for updating GamesReview entities.
type GamesReviewUpdate struct {
	config
	hooks     []Hook
	mutation  *GamesReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the GamesReviewUpdate builder.
func (gru *GamesReviewUpdate) Where(ps ...predicate.GamesReview) *GamesReviewUpdate {
	gru.mutation.Where(ps...)
	return gru
}

// SetCreatedAt sets the "created_at" field.
func (gru *GamesReviewUpdate) SetCreatedAt(t time.Time) *GamesReviewUpdate {
	gru.mutation.SetCreatedAt(t)
	return gru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableCreatedAt(t *time.Time) *GamesReviewUpdate {
	if t != nil {
		gru.SetCreatedAt(*t)
	}
	return gru
}

// SetUpdatedAt sets the "updated_at" field.
func (gru *GamesReviewUpdate) SetUpdatedAt(t time.Time) *GamesReviewUpdate {
	gru.mutation.SetUpdatedAt(t)
	return gru
}

// SetUsername sets the "username" field.
func (gru *GamesReviewUpdate) SetUsername(s string) *GamesReviewUpdate {
	gru.mutation.SetUsername(s)
	return gru
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableUsername(s *string) *GamesReviewUpdate {
	if s != nil {
		gru.SetUsername(*s)
	}
	return gru
}

// SetArticleID sets the "article_id" field.
func (gru *GamesReviewUpdate) SetArticleID(u uint) *GamesReviewUpdate {
	gru.mutation.ResetArticleID()
	gru.mutation.SetArticleID(u)
	return gru
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableArticleID(u *uint) *GamesReviewUpdate {
	if u != nil {
		gru.SetArticleID(*u)
	}
	return gru
}

// AddArticleID adds u to the "article_id" field.
func (gru *GamesReviewUpdate) AddArticleID(u int) *GamesReviewUpdate {
	gru.mutation.AddArticleID(u)
	return gru
}

// SetReview sets the "review" field.
func (gru *GamesReviewUpdate) SetReview(s string) *GamesReviewUpdate {
	gru.mutation.SetReview(s)
	return gru
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableReview(s *string) *GamesReviewUpdate {
	if s != nil {
		gru.SetReview(*s)
	}
	return gru
}

// SetReviewHTML sets the "review_html" field.
func (gru *GamesReviewUpdate) SetReviewHTML(s string) *GamesReviewUpdate {
	gru.mutation.SetReviewHTML(s)
	return gru
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableReviewHTML(s *string) *GamesReviewUpdate {
	if s != nil {
		gru.SetReviewHTML(*s)
	}
	return gru
}

// ClearReviewHTML clears the value of the "review_html" field.
func (gru *GamesReviewUpdate) ClearReviewHTML() *GamesReviewUpdate {
	gru.mutation.ClearReviewHTML()
	return gru
}

// SetOverall sets the "overall" field.
func (gru *GamesReviewUpdate) SetOverall(i int) *GamesReviewUpdate {
	gru.mutation.ResetOverall()
	gru.mutation.SetOverall(i)
	return gru
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableOverall(i *int) *GamesReviewUpdate {
	if i != nil {
		gru.SetOverall(*i)
	}
	return gru
}

// AddOverall adds i to the "overall" field.
func (gru *GamesReviewUpdate) AddOverall(i int) *GamesReviewUpdate {
	gru.mutation.AddOverall(i)
	return gru
}

// SetArt sets the "art" field.
func (gru *GamesReviewUpdate) SetArt(i int) *GamesReviewUpdate {
	gru.mutation.ResetArt()
	gru.mutation.SetArt(i)
	return gru
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableArt(i *int) *GamesReviewUpdate {
	if i != nil {
		gru.SetArt(*i)
	}
	return gru
}

// AddArt adds i to the "art" field.
func (gru *GamesReviewUpdate) AddArt(i int) *GamesReviewUpdate {
	gru.mutation.AddArt(i)
	return gru
}

// ClearArt clears the value of the "art" field.
func (gru *GamesReviewUpdate) ClearArt() *GamesReviewUpdate {
	gru.mutation.ClearArt()
	return gru
}

// SetCharacters sets the "characters" field.
func (gru *GamesReviewUpdate) SetCharacters(i int) *GamesReviewUpdate {
	gru.mutation.ResetCharacters()
	gru.mutation.SetCharacters(i)
	return gru
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableCharacters(i *int) *GamesReviewUpdate {
	if i != nil {
		gru.SetCharacters(*i)
	}
	return gru
}

// AddCharacters adds i to the "characters" field.
func (gru *GamesReviewUpdate) AddCharacters(i int) *GamesReviewUpdate {
	gru.mutation.AddCharacters(i)
	return gru
}

// ClearCharacters clears the value of the "characters" field.
func (gru *GamesReviewUpdate) ClearCharacters() *GamesReviewUpdate {
	gru.mutation.ClearCharacters()
	return gru
}

// SetStory sets the "story" field.
func (gru *GamesReviewUpdate) SetStory(i int) *GamesReviewUpdate {
	gru.mutation.ResetStory()
	gru.mutation.SetStory(i)
	return gru
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableStory(i *int) *GamesReviewUpdate {
	if i != nil {
		gru.SetStory(*i)
	}
	return gru
}

// AddStory adds i to the "story" field.
func (gru *GamesReviewUpdate) AddStory(i int) *GamesReviewUpdate {
	gru.mutation.AddStory(i)
	return gru
}

// ClearStory clears the value of the "story" field.
func (gru *GamesReviewUpdate) ClearStory() *GamesReviewUpdate {
	gru.mutation.ClearStory()
	return gru
}

// SetEnjoyment sets the "enjoyment" field.
func (gru *GamesReviewUpdate) SetEnjoyment(i int) *GamesReviewUpdate {
	gru.mutation.ResetEnjoyment()
	gru.mutation.SetEnjoyment(i)
	return gru
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableEnjoyment(i *int) *GamesReviewUpdate {
	if i != nil {
		gru.SetEnjoyment(*i)
	}
	return gru
}

// AddEnjoyment adds i to the "enjoyment" field.
func (gru *GamesReviewUpdate) AddEnjoyment(i int) *GamesReviewUpdate {
	gru.mutation.AddEnjoyment(i)
	return gru
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (gru *GamesReviewUpdate) ClearEnjoyment() *GamesReviewUpdate {
	gru.mutation.ClearEnjoyment()
	return gru
}

// SetGraphics sets the "graphics" field.
func (gru *GamesReviewUpdate) SetGraphics(i int) *GamesReviewUpdate {
	gru.mutation.ResetGraphics()
	gru.mutation.SetGraphics(i)
	return gru
}

// SetNillableGraphics sets the "graphics" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableGraphics(i *int) *GamesReviewUpdate {
	if i != nil {
		gru.SetGraphics(*i)
	}
	return gru
}

// AddGraphics adds i to the "graphics" field.
func (gru *GamesReviewUpdate) AddGraphics(i int) *GamesReviewUpdate {
	gru.mutation.AddGraphics(i)
	return gru
}

// ClearGraphics clears the value of the "graphics" field.
func (gru *GamesReviewUpdate) ClearGraphics() *GamesReviewUpdate {
	gru.mutation.ClearGraphics()
	return gru
}

// SetMusic sets the "music" field.
func (gru *GamesReviewUpdate) SetMusic(i int) *GamesReviewUpdate {
	gru.mutation.ResetMusic()
	gru.mutation.SetMusic(i)
	return gru
}

// SetNillableMusic sets the "music" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableMusic(i *int) *GamesReviewUpdate {
	if i != nil {
		gru.SetMusic(*i)
	}
	return gru
}

// AddMusic adds i to the "music" field.
func (gru *GamesReviewUpdate) AddMusic(i int) *GamesReviewUpdate {
	gru.mutation.AddMusic(i)
	return gru
}

// ClearMusic clears the value of the "music" field.
func (gru *GamesReviewUpdate) ClearMusic() *GamesReviewUpdate {
	gru.mutation.ClearMusic()
	return gru
}

// SetVoicing sets the "voicing" field.
func (gru *GamesReviewUpdate) SetVoicing(i int) *GamesReviewUpdate {
	gru.mutation.ResetVoicing()
	gru.mutation.SetVoicing(i)
	return gru
}

// SetNillableVoicing sets the "voicing" field if the given value is not nil.
func (gru *GamesReviewUpdate) SetNillableVoicing(i *int) *GamesReviewUpdate {
	if i != nil {
		gru.SetVoicing(*i)
	}
	return gru
}

// AddVoicing adds i to the "voicing" field.
func (gru *GamesReviewUpdate) AddVoicing(i int) *GamesReviewUpdate {
	gru.mutation.AddVoicing(i)
	return gru
}

// ClearVoicing clears the value of the "voicing" field.
func (gru *GamesReviewUpdate) ClearVoicing() *GamesReviewUpdate {
	gru.mutation.ClearVoicing()
	return gru
}

// Mutation returns the GamesReviewMutation object of the builder.
func (gru *GamesReviewUpdate) Mutation() *GamesReviewMutation {
	return gru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (gru *GamesReviewUpdate) Save(ctx context.Context) (int, error) {
	gru.defaults()
	return withHooks(ctx, gru.sqlSave, gru.mutation, gru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gru *GamesReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := gru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (gru *GamesReviewUpdate) Exec(ctx context.Context) error {
	_, err := gru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gru *GamesReviewUpdate) ExecX(ctx context.Context) {
	if err := gru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gru *GamesReviewUpdate) defaults() {
	if _, ok := gru.mutation.UpdatedAt(); !ok {
		v := gamesreview.UpdateDefaultUpdatedAt()
		gru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gru *GamesReviewUpdate) check() error {
	if v, ok := gru.mutation.Username(); ok {
		if err := gamesreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "GamesReview.username": %w`, err)}
		}
	}
	if v, ok := gru.mutation.Review(); ok {
		if err := gamesreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "GamesReview.review": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (gru *GamesReviewUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *GamesReviewUpdate {
	gru.modifiers = append(gru.modifiers, modifiers...)
	return gru
}

func (gru *GamesReviewUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := gru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamesreview.Table, gamesreview.Columns, sqlgraph.NewFieldSpec(gamesreview.FieldID, field.TypeUint))
	if ps := gru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gru.mutation.CreatedAt(); ok {
		_spec.SetField(gamesreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := gru.mutation.UpdatedAt(); ok {
		_spec.SetField(gamesreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := gru.mutation.Username(); ok {
		_spec.SetField(gamesreview.FieldUsername, field.TypeString, value)
	}
	if value, ok := gru.mutation.ArticleID(); ok {
		_spec.SetField(gamesreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := gru.mutation.AddedArticleID(); ok {
		_spec.AddField(gamesreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := gru.mutation.Review(); ok {
		_spec.SetField(gamesreview.FieldReview, field.TypeString, value)
	}
	if value, ok := gru.mutation.ReviewHTML(); ok {
		_spec.SetField(gamesreview.FieldReviewHTML, field.TypeString, value)
	}
	if gru.mutation.ReviewHTMLCleared() {
		_spec.ClearField(gamesreview.FieldReviewHTML, field.TypeString)
	}
	if value, ok := gru.mutation.Overall(); ok {
		_spec.SetField(gamesreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := gru.mutation.AddedOverall(); ok {
		_spec.AddField(gamesreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := gru.mutation.Art(); ok {
		_spec.SetField(gamesreview.FieldArt, field.TypeInt, value)
	}
	if value, ok := gru.mutation.AddedArt(); ok {
		_spec.AddField(gamesreview.FieldArt, field.TypeInt, value)
	}
	if gru.mutation.ArtCleared() {
		_spec.ClearField(gamesreview.FieldArt, field.TypeInt)
	}
	if value, ok := gru.mutation.Characters(); ok {
		_spec.SetField(gamesreview.FieldCharacters, field.TypeInt, value)
	}
	if value, ok := gru.mutation.AddedCharacters(); ok {
		_spec.AddField(gamesreview.FieldCharacters, field.TypeInt, value)
	}
	if gru.mutation.CharactersCleared() {
		_spec.ClearField(gamesreview.FieldCharacters, field.TypeInt)
	}
	if value, ok := gru.mutation.Story(); ok {
		_spec.SetField(gamesreview.FieldStory, field.TypeInt, value)
	}
	if value, ok := gru.mutation.AddedStory(); ok {
		_spec.AddField(gamesreview.FieldStory, field.TypeInt, value)
	}
	if gru.mutation.StoryCleared() {
		_spec.ClearField(gamesreview.FieldStory, field.TypeInt)
	}
	if value, ok := gru.mutation.Enjoyment(); ok {
		_spec.SetField(gamesreview.FieldEnjoyment, field.TypeInt, value)
	}
	if value, ok := gru.mutation.AddedEnjoyment(); ok {
		_spec.AddField(gamesreview.FieldEnjoyment, field.TypeInt, value)
	}
	if gru.mutation.EnjoymentCleared() {
		_spec.ClearField(gamesreview.FieldEnjoyment, field.TypeInt)
	}
	if value, ok := gru.mutation.Graphics(); ok {
		_spec.SetField(gamesreview.FieldGraphics, field.TypeInt, value)
	}
	if value, ok := gru.mutation.AddedGraphics(); ok {
		_spec.AddField(gamesreview.FieldGraphics, field.TypeInt, value)
	}
	if gru.mutation.GraphicsCleared() {
		_spec.ClearField(gamesreview.FieldGraphics, field.TypeInt)
	}
	if value, ok := gru.mutation.Music(); ok {
		_spec.SetField(gamesreview.FieldMusic, field.TypeInt, value)
	}
	if value, ok := gru.mutation.AddedMusic(); ok {
		_spec.AddField(gamesreview.FieldMusic, field.TypeInt, value)
	}
	if gru.mutation.MusicCleared() {
		_spec.ClearField(gamesreview.FieldMusic, field.TypeInt)
	}
	if value, ok := gru.mutation.Voicing(); ok {
		_spec.SetField(gamesreview.FieldVoicing, field.TypeInt, value)
	}
	if value, ok := gru.mutation.AddedVoicing(); ok {
		_spec.AddField(gamesreview.FieldVoicing, field.TypeInt, value)
	}
	if gru.mutation.VoicingCleared() {
		_spec.ClearField(gamesreview.FieldVoicing, field.TypeInt)
	}
	_spec.AddModifiers(gru.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, gru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamesreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	gru.mutation.done = true
	return n, nil
}

// GamesReviewUpdateOne is the builder for updating a single GamesReview entity.
type GamesReviewUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *GamesReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (gruo *GamesReviewUpdateOne) SetCreatedAt(t time.Time) *GamesReviewUpdateOne {
	gruo.mutation.SetCreatedAt(t)
	return gruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableCreatedAt(t *time.Time) *GamesReviewUpdateOne {
	if t != nil {
		gruo.SetCreatedAt(*t)
	}
	return gruo
}

// SetUpdatedAt sets the "updated_at" field.
func (gruo *GamesReviewUpdateOne) SetUpdatedAt(t time.Time) *GamesReviewUpdateOne {
	gruo.mutation.SetUpdatedAt(t)
	return gruo
}

// SetUsername sets the "username" field.
func (gruo *GamesReviewUpdateOne) SetUsername(s string) *GamesReviewUpdateOne {
	gruo.mutation.SetUsername(s)
	return gruo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableUsername(s *string) *GamesReviewUpdateOne {
	if s != nil {
		gruo.SetUsername(*s)
	}
	return gruo
}

// SetArticleID sets the "article_id" field.
func (gruo *GamesReviewUpdateOne) SetArticleID(u uint) *GamesReviewUpdateOne {
	gruo.mutation.ResetArticleID()
	gruo.mutation.SetArticleID(u)
	return gruo
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableArticleID(u *uint) *GamesReviewUpdateOne {
	if u != nil {
		gruo.SetArticleID(*u)
	}
	return gruo
}

// AddArticleID adds u to the "article_id" field.
func (gruo *GamesReviewUpdateOne) AddArticleID(u int) *GamesReviewUpdateOne {
	gruo.mutation.AddArticleID(u)
	return gruo
}

// SetReview sets the "review" field.
func (gruo *GamesReviewUpdateOne) SetReview(s string) *GamesReviewUpdateOne {
	gruo.mutation.SetReview(s)
	return gruo
}

// SetNillableReview sets the "review" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableReview(s *string) *GamesReviewUpdateOne {
	if s != nil {
		gruo.SetReview(*s)
	}
	return gruo
}

// SetReviewHTML sets the "review_html" field.
func (gruo *GamesReviewUpdateOne) SetReviewHTML(s string) *GamesReviewUpdateOne {
	gruo.mutation.SetReviewHTML(s)
	return gruo
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableReviewHTML(s *string) *GamesReviewUpdateOne {
	if s != nil {
		gruo.SetReviewHTML(*s)
	}
	return gruo
}

// ClearReviewHTML clears the value of the "review_html" field.
func (gruo *GamesReviewUpdateOne) ClearReviewHTML() *GamesReviewUpdateOne {
	gruo.mutation.ClearReviewHTML()
	return gruo
}

// SetOverall sets the "overall" field.
func (gruo *GamesReviewUpdateOne) SetOverall(i int) *GamesReviewUpdateOne {
	gruo.mutation.ResetOverall()
	gruo.mutation.SetOverall(i)
	return gruo
}

// SetNillableOverall sets the "overall" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableOverall(i *int) *GamesReviewUpdateOne {
	if i != nil {
		gruo.SetOverall(*i)
	}
	return gruo
}

// AddOverall adds i to the "overall" field.
func (gruo *GamesReviewUpdateOne) AddOverall(i int) *GamesReviewUpdateOne {
	gruo.mutation.AddOverall(i)
	return gruo
}

// SetArt sets the "art" field.
func (gruo *GamesReviewUpdateOne) SetArt(i int) *GamesReviewUpdateOne {
	gruo.mutation.ResetArt()
	gruo.mutation.SetArt(i)
	return gruo
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableArt(i *int) *GamesReviewUpdateOne {
	if i != nil {
		gruo.SetArt(*i)
	}
	return gruo
}

// AddArt adds i to the "art" field.
func (gruo *GamesReviewUpdateOne) AddArt(i int) *GamesReviewUpdateOne {
	gruo.mutation.AddArt(i)
	return gruo
}

// ClearArt clears the value of the "art" field.
func (gruo *GamesReviewUpdateOne) ClearArt() *GamesReviewUpdateOne {
	gruo.mutation.ClearArt()
	return gruo
}

// SetCharacters sets the "characters" field.
func (gruo *GamesReviewUpdateOne) SetCharacters(i int) *GamesReviewUpdateOne {
	gruo.mutation.ResetCharacters()
	gruo.mutation.SetCharacters(i)
	return gruo
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableCharacters(i *int) *GamesReviewUpdateOne {
	if i != nil {
		gruo.SetCharacters(*i)
	}
	return gruo
}

// AddCharacters adds i to the "characters" field.
func (gruo *GamesReviewUpdateOne) AddCharacters(i int) *GamesReviewUpdateOne {
	gruo.mutation.AddCharacters(i)
	return gruo
}

// ClearCharacters clears the value of the "characters" field.
func (gruo *GamesReviewUpdateOne) ClearCharacters() *GamesReviewUpdateOne {
	gruo.mutation.ClearCharacters()
	return gruo
}

// SetStory sets the "story" field.
func (gruo *GamesReviewUpdateOne) SetStory(i int) *GamesReviewUpdateOne {
	gruo.mutation.ResetStory()
	gruo.mutation.SetStory(i)
	return gruo
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableStory(i *int) *GamesReviewUpdateOne {
	if i != nil {
		gruo.SetStory(*i)
	}
	return gruo
}

// AddStory adds i to the "story" field.
func (gruo *GamesReviewUpdateOne) AddStory(i int) *GamesReviewUpdateOne {
	gruo.mutation.AddStory(i)
	return gruo
}

// ClearStory clears the value of the "story" field.
func (gruo *GamesReviewUpdateOne) ClearStory() *GamesReviewUpdateOne {
	gruo.mutation.ClearStory()
	return gruo
}

// SetEnjoyment sets the "enjoyment" field.
func (gruo *GamesReviewUpdateOne) SetEnjoyment(i int) *GamesReviewUpdateOne {
	gruo.mutation.ResetEnjoyment()
	gruo.mutation.SetEnjoyment(i)
	return gruo
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableEnjoyment(i *int) *GamesReviewUpdateOne {
	if i != nil {
		gruo.SetEnjoyment(*i)
	}
	return gruo
}

// AddEnjoyment adds i to the "enjoyment" field.
func (gruo *GamesReviewUpdateOne) AddEnjoyment(i int) *GamesReviewUpdateOne {
	gruo.mutation.AddEnjoyment(i)
	return gruo
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (gruo *GamesReviewUpdateOne) ClearEnjoyment() *GamesReviewUpdateOne {
	gruo.mutation.ClearEnjoyment()
	return gruo
}

// SetGraphics sets the "graphics" field.
func (gruo *GamesReviewUpdateOne) SetGraphics(i int) *GamesReviewUpdateOne {
	gruo.mutation.ResetGraphics()
	gruo.mutation.SetGraphics(i)
	return gruo
}

// SetNillableGraphics sets the "graphics" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableGraphics(i *int) *GamesReviewUpdateOne {
	if i != nil {
		gruo.SetGraphics(*i)
	}
	return gruo
}

// AddGraphics adds i to the "graphics" field.
func (gruo *GamesReviewUpdateOne) AddGraphics(i int) *GamesReviewUpdateOne {
	gruo.mutation.AddGraphics(i)
	return gruo
}

// ClearGraphics clears the value of the "graphics" field.
func (gruo *GamesReviewUpdateOne) ClearGraphics() *GamesReviewUpdateOne {
	gruo.mutation.ClearGraphics()
	return gruo
}

// SetMusic sets the "music" field.
func (gruo *GamesReviewUpdateOne) SetMusic(i int) *GamesReviewUpdateOne {
	gruo.mutation.ResetMusic()
	gruo.mutation.SetMusic(i)
	return gruo
}

// SetNillableMusic sets the "music" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableMusic(i *int) *GamesReviewUpdateOne {
	if i != nil {
		gruo.SetMusic(*i)
	}
	return gruo
}

// AddMusic adds i to the "music" field.
func (gruo *GamesReviewUpdateOne) AddMusic(i int) *GamesReviewUpdateOne {
	gruo.mutation.AddMusic(i)
	return gruo
}

// ClearMusic clears the value of the "music" field.
func (gruo *GamesReviewUpdateOne) ClearMusic() *GamesReviewUpdateOne {
	gruo.mutation.ClearMusic()
	return gruo
}

// SetVoicing sets the "voicing" field.
func (gruo *GamesReviewUpdateOne) SetVoicing(i int) *GamesReviewUpdateOne {
	gruo.mutation.ResetVoicing()
	gruo.mutation.SetVoicing(i)
	return gruo
}

// SetNillableVoicing sets the "voicing" field if the given value is not nil.
func (gruo *GamesReviewUpdateOne) SetNillableVoicing(i *int) *GamesReviewUpdateOne {
	if i != nil {
		gruo.SetVoicing(*i)
	}
	return gruo
}

// AddVoicing adds i to the "voicing" field.
func (gruo *GamesReviewUpdateOne) AddVoicing(i int) *GamesReviewUpdateOne {
	gruo.mutation.AddVoicing(i)
	return gruo
}

// ClearVoicing clears the value of the "voicing" field.
func (gruo *GamesReviewUpdateOne) ClearVoicing() *GamesReviewUpdateOne {
	gruo.mutation.ClearVoicing()
	return gruo
}

// Mutation returns the GamesReviewMutation object of the builder.
func (gruo *GamesReviewUpdateOne) Mutation() *GamesReviewMutation {
	return gruo.mutation
}

// Where appends a list predicates to the GamesReviewUpdate builder.
func (gruo *GamesReviewUpdateOne) Where(ps ...predicate.GamesReview) *GamesReviewUpdateOne {
	gruo.mutation.Where(ps...)
	return gruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (gruo *GamesReviewUpdateOne) Select(field string, fields ...string) *GamesReviewUpdateOne {
	gruo.fields = append([]string{field}, fields...)
	return gruo
}

// Save executes the query and returns the updated GamesReview entity.
func (gruo *GamesReviewUpdateOne) Save(ctx context.Context) (*GamesReview, error) {
	gruo.defaults()
	return withHooks(ctx, gruo.sqlSave, gruo.mutation, gruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gruo *GamesReviewUpdateOne) SaveX(ctx context.Context) *GamesReview {
	node, err := gruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (gruo *GamesReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := gruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gruo *GamesReviewUpdateOne) ExecX(ctx context.Context) {
	if err := gruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gruo *GamesReviewUpdateOne) defaults() {
	if _, ok := gruo.mutation.UpdatedAt(); !ok {
		v := gamesreview.UpdateDefaultUpdatedAt()
		gruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gruo *GamesReviewUpdateOne) check() error {
	if v, ok := gruo.mutation.Username(); ok {
		if err := gamesreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "GamesReview.username": %w`, err)}
		}
	}
	if v, ok := gruo.mutation.Review(); ok {
		if err := gamesreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "GamesReview.review": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (gruo *GamesReviewUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *GamesReviewUpdateOne {
	gruo.modifiers = append(gruo.modifiers, modifiers...)
	return gruo
}

func (gruo *GamesReviewUpdateOne) sqlSave(ctx context.Context) (_node *GamesReview, err error) {
	if err := gruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamesreview.Table, gamesreview.Columns, sqlgraph.NewFieldSpec(gamesreview.FieldID, field.TypeUint))
	id, ok := gruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GamesReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := gruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamesreview.FieldID)
		for _, f := range fields {
			if !gamesreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gamesreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := gruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gruo.mutation.CreatedAt(); ok {
		_spec.SetField(gamesreview.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := gruo.mutation.UpdatedAt(); ok {
		_spec.SetField(gamesreview.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := gruo.mutation.Username(); ok {
		_spec.SetField(gamesreview.FieldUsername, field.TypeString, value)
	}
	if value, ok := gruo.mutation.ArticleID(); ok {
		_spec.SetField(gamesreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := gruo.mutation.AddedArticleID(); ok {
		_spec.AddField(gamesreview.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := gruo.mutation.Review(); ok {
		_spec.SetField(gamesreview.FieldReview, field.TypeString, value)
	}
	if value, ok := gruo.mutation.ReviewHTML(); ok {
		_spec.SetField(gamesreview.FieldReviewHTML, field.TypeString, value)
	}
	if gruo.mutation.ReviewHTMLCleared() {
		_spec.ClearField(gamesreview.FieldReviewHTML, field.TypeString)
	}
	if value, ok := gruo.mutation.Overall(); ok {
		_spec.SetField(gamesreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.AddedOverall(); ok {
		_spec.AddField(gamesreview.FieldOverall, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.Art(); ok {
		_spec.SetField(gamesreview.FieldArt, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.AddedArt(); ok {
		_spec.AddField(gamesreview.FieldArt, field.TypeInt, value)
	}
	if gruo.mutation.ArtCleared() {
		_spec.ClearField(gamesreview.FieldArt, field.TypeInt)
	}
	if value, ok := gruo.mutation.Characters(); ok {
		_spec.SetField(gamesreview.FieldCharacters, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.AddedCharacters(); ok {
		_spec.AddField(gamesreview.FieldCharacters, field.TypeInt, value)
	}
	if gruo.mutation.CharactersCleared() {
		_spec.ClearField(gamesreview.FieldCharacters, field.TypeInt)
	}
	if value, ok := gruo.mutation.Story(); ok {
		_spec.SetField(gamesreview.FieldStory, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.AddedStory(); ok {
		_spec.AddField(gamesreview.FieldStory, field.TypeInt, value)
	}
	if gruo.mutation.StoryCleared() {
		_spec.ClearField(gamesreview.FieldStory, field.TypeInt)
	}
	if value, ok := gruo.mutation.Enjoyment(); ok {
		_spec.SetField(gamesreview.FieldEnjoyment, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.AddedEnjoyment(); ok {
		_spec.AddField(gamesreview.FieldEnjoyment, field.TypeInt, value)
	}
	if gruo.mutation.EnjoymentCleared() {
		_spec.ClearField(gamesreview.FieldEnjoyment, field.TypeInt)
	}
	if value, ok := gruo.mutation.Graphics(); ok {
		_spec.SetField(gamesreview.FieldGraphics, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.AddedGraphics(); ok {
		_spec.AddField(gamesreview.FieldGraphics, field.TypeInt, value)
	}
	if gruo.mutation.GraphicsCleared() {
		_spec.ClearField(gamesreview.FieldGraphics, field.TypeInt)
	}
	if value, ok := gruo.mutation.Music(); ok {
		_spec.SetField(gamesreview.FieldMusic, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.AddedMusic(); ok {
		_spec.AddField(gamesreview.FieldMusic, field.TypeInt, value)
	}
	if gruo.mutation.MusicCleared() {
		_spec.ClearField(gamesreview.FieldMusic, field.TypeInt)
	}
	if value, ok := gruo.mutation.Voicing(); ok {
		_spec.SetField(gamesreview.FieldVoicing, field.TypeInt, value)
	}
	if value, ok := gruo.mutation.AddedVoicing(); ok {
		_spec.AddField(gamesreview.FieldVoicing, field.TypeInt, value)
	}
	if gruo.mutation.VoicingCleared() {
		_spec.ClearField(gamesreview.FieldVoicing, field.TypeInt)
	}
	_spec.AddModifiers(gruo.modifiers...)
	_node = &GamesReview{config: gruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, gruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamesreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	gruo.mutation.done = true
	return _node, nil
}
