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
	"github.com/anzhiyu-c/mediawall-app/ent/game"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// GameUpdate is the builder for updating Game entities.
type GameUpdate struct {
	config
	hooks     []Hook
	mutation  *GameMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the GameUpdate builder.
func (gu *GameUpdate) Where(ps ...predicate.Game) *GameUpdate {
	gu.mutation.Where(ps...)
	return gu
}

// SetDeletedAt sets the "deleted_at" field.
func (gu *GameUpdate) SetDeletedAt(t time.Time) *GameUpdate {
	gu.mutation.SetDeletedAt(t)
	return gu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (gu *GameUpdate) SetNillableDeletedAt(t *time.Time) *GameUpdate {
	if t != nil {
		gu.SetDeletedAt(*t)
	}
	return gu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (gu *GameUpdate) ClearDeletedAt() *GameUpdate {
	gu.mutation.ClearDeletedAt()
	return gu
}

// SetCreatedAt sets the "created_at" field.
func (gu *GameUpdate) SetCreatedAt(t time.Time) *GameUpdate {
	gu.mutation.SetCreatedAt(t)
	return gu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (gu *GameUpdate) SetNillableCreatedAt(t *time.Time) *GameUpdate {
	if t != nil {
		gu.SetCreatedAt(*t)
	}
	return gu
}

// SetUpdatedAt sets the "updated_at" field.
func (gu *GameUpdate) SetUpdatedAt(t time.Time) *GameUpdate {
	gu.mutation.SetUpdatedAt(t)
	return gu
}

// SetTitle sets the "title" field.
func (gu *GameUpdate) SetTitle(s string) *GameUpdate {
	gu.mutation.SetTitle(s)
	return gu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (gu *GameUpdate) SetNillableTitle(s *string) *GameUpdate {
	if s != nil {
		gu.SetTitle(*s)
	}
	return gu
}

// SetDescription sets the "description" field.
func (gu *GameUpdate) SetDescription(s string) *GameUpdate {
	gu.mutation.SetDescription(s)
	return gu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (gu *GameUpdate) SetNillableDescription(s *string) *GameUpdate {
	if s != nil {
		gu.SetDescription(*s)
	}
	return gu
}

// ClearDescription clears the value of the "description" field.
func (gu *GameUpdate) ClearDescription() *GameUpdate {
	gu.mutation.ClearDescription()
	return gu
}

// SetCoverURL sets the "cover_url" field.
func (gu *GameUpdate) SetCoverURL(s string) *GameUpdate {
	gu.mutation.SetCoverURL(s)
	return gu
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (gu *GameUpdate) SetNillableCoverURL(s *string) *GameUpdate {
	if s != nil {
		gu.SetCoverURL(*s)
	}
	return gu
}

// ClearCoverURL clears the value of the "cover_url" field.
func (gu *GameUpdate) ClearCoverURL() *GameUpdate {
	gu.mutation.ClearCoverURL()
	return gu
}

// SetAuthors sets the "authors" field.
func (gu *GameUpdate) SetAuthors(s string) *GameUpdate {
	gu.mutation.SetAuthors(s)
	return gu
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (gu *GameUpdate) SetNillableAuthors(s *string) *GameUpdate {
	if s != nil {
		gu.SetAuthors(*s)
	}
	return gu
}

// ClearAuthors clears the value of the "authors" field.
func (gu *GameUpdate) ClearAuthors() *GameUpdate {
	gu.mutation.ClearAuthors()
	return gu
}

// SetPublishers sets the "publishers" field.
func (gu *GameUpdate) SetPublishers(s string) *GameUpdate {
	gu.mutation.SetPublishers(s)
	return gu
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (gu *GameUpdate) SetNillablePublishers(s *string) *GameUpdate {
	if s != nil {
		gu.SetPublishers(*s)
	}
	return gu
}

// ClearPublishers clears the value of the "publishers" field.
func (gu *GameUpdate) ClearPublishers() *GameUpdate {
	gu.mutation.ClearPublishers()
	return gu
}

// SetGenres sets the "genres" field.
func (gu *GameUpdate) SetGenres(s string) *GameUpdate {
	gu.mutation.SetGenres(s)
	return gu
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (gu *GameUpdate) SetNillableGenres(s *string) *GameUpdate {
	if s != nil {
		gu.SetGenres(*s)
	}
	return gu
}

// ClearGenres clears the value of the "genres" field.
func (gu *GameUpdate) ClearGenres() *GameUpdate {
	gu.mutation.ClearGenres()
	return gu
}

// SetPremiered sets the "premiered" field.
func (gu *GameUpdate) SetPremiered(t time.Time) *GameUpdate {
	gu.mutation.SetPremiered(t)
	return gu
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (gu *GameUpdate) SetNillablePremiered(t *time.Time) *GameUpdate {
	if t != nil {
		gu.SetPremiered(*t)
	}
	return gu
}

// ClearPremiered clears the value of the "premiered" field.
func (gu *GameUpdate) ClearPremiered() *GameUpdate {
	gu.mutation.ClearPremiered()
	return gu
}

// SetDraft sets the "draft" field.
func (gu *GameUpdate) SetDraft(b bool) *GameUpdate {
	gu.mutation.SetDraft(b)
	return gu
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (gu *GameUpdate) SetNillableDraft(b *bool) *GameUpdate {
	if b != nil {
		gu.SetDraft(*b)
	}
	return gu
}

// SetAccepted sets the "accepted" field.
func (gu *GameUpdate) SetAccepted(b bool) *GameUpdate {
	gu.mutation.SetAccepted(b)
	return gu
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (gu *GameUpdate) SetNillableAccepted(b *bool) *GameUpdate {
	if b != nil {
		gu.SetAccepted(*b)
	}
	return gu
}

// SetContributor sets the "contributor" field.
func (gu *GameUpdate) SetContributor(s string) *GameUpdate {
	gu.mutation.SetContributor(s)
	return gu
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (gu *GameUpdate) SetNillableContributor(s *string) *GameUpdate {
	if s != nil {
		gu.SetContributor(*s)
	}
	return gu
}

// ClearContributor clears the value of the "contributor" field.
func (gu *GameUpdate) ClearContributor() *GameUpdate {
	gu.mutation.ClearContributor()
	return gu
}

// SetGameMode sets the "game_mode" field.
func (gu *GameUpdate) SetGameMode(s string) *GameUpdate {
	gu.mutation.SetGameMode(s)
	return gu
}

// SetNillableGameMode sets the "game_mode" field if the given value is not nil.
func (gu *GameUpdate) SetNillableGameMode(s *string) *GameUpdate {
	if s != nil {
		gu.SetGameMode(*s)
	}
	return gu
}

// ClearGameMode clears the value of the "game_mode" field.
func (gu *GameUpdate) ClearGameMode() *GameUpdate {
	gu.mutation.ClearGameMode()
	return gu
}

// SetGears sets the "gears" field.
func (gu *GameUpdate) SetGears(s string) *GameUpdate {
	gu.mutation.SetGears(s)
	return gu
}

// SetNillableGears sets the "gears" field if the given value is not nil.
func (gu *GameUpdate) SetNillableGears(s *string) *GameUpdate {
	if s != nil {
		gu.SetGears(*s)
	}
	return gu
}

// ClearGears clears the value of the "gears" field.
func (gu *GameUpdate) ClearGears() *GameUpdate {
	gu.mutation.ClearGears()
	return gu
}

// SetCompleteTime sets the "complete_time" field.
func (gu *GameUpdate) SetCompleteTime(i int) *GameUpdate {
	gu.mutation.ResetCompleteTime()
	gu.mutation.SetCompleteTime(i)
	return gu
}

// SetNillableCompleteTime sets the "complete_time" field if the given value is not nil.
func (gu *GameUpdate) SetNillableCompleteTime(i *int) *GameUpdate {
	if i != nil {
		gu.SetCompleteTime(*i)
	}
	return gu
}

// AddCompleteTime adds i to the "complete_time" field.
func (gu *GameUpdate) AddCompleteTime(i int) *GameUpdate {
	gu.mutation.AddCompleteTime(i)
	return gu
}

// Mutation returns the GameMutation object of the builder.
func (gu *GameUpdate) Mutation() *GameMutation {
	return gu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (gu *GameUpdate) Save(ctx context.Context) (int, error) {
	if err := gu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, gu.sqlSave, gu.mutation, gu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gu *GameUpdate) SaveX(ctx context.Context) int {
	affected, err := gu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (gu *GameUpdate) Exec(ctx context.Context) error {
	_, err := gu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gu *GameUpdate) ExecX(ctx context.Context) {
	if err := gu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gu *GameUpdate) defaults() error {
	if _, ok := gu.mutation.UpdatedAt(); !ok {
		if game.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized game.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := game.UpdateDefaultUpdatedAt()
		gu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (gu *GameUpdate) check() error {
	if v, ok := gu.mutation.Title(); ok {
		if err := game.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Game.title": %w`, err)}
		}
	}
	if v, ok := gu.mutation.CompleteTime(); ok {
		if err := game.CompleteTimeValidator(v); err != nil {
			return &ValidationError{Name: "complete_time", err: fmt.Errorf(`ent: validator failed for field "Game.complete_time": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (gu *GameUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *GameUpdate {
	gu.modifiers = append(gu.modifiers, modifiers...)
	return gu
}

func (gu *GameUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := gu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeUint))
	if ps := gu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gu.mutation.DeletedAt(); ok {
		_spec.SetField(game.FieldDeletedAt, field.TypeTime, value)
	}
	if gu.mutation.DeletedAtCleared() {
		_spec.ClearField(game.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := gu.mutation.CreatedAt(); ok {
		_spec.SetField(game.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := gu.mutation.UpdatedAt(); ok {
		_spec.SetField(game.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := gu.mutation.Title(); ok {
		_spec.SetField(game.FieldTitle, field.TypeString, value)
	}
	if value, ok := gu.mutation.Description(); ok {
		_spec.SetField(game.FieldDescription, field.TypeString, value)
	}
	if gu.mutation.DescriptionCleared() {
		_spec.ClearField(game.FieldDescription, field.TypeString)
	}
	if value, ok := gu.mutation.CoverURL(); ok {
		_spec.SetField(game.FieldCoverURL, field.TypeString, value)
	}
	if gu.mutation.CoverURLCleared() {
		_spec.ClearField(game.FieldCoverURL, field.TypeString)
	}
	if value, ok := gu.mutation.Authors(); ok {
		_spec.SetField(game.FieldAuthors, field.TypeString, value)
	}
	if gu.mutation.AuthorsCleared() {
		_spec.ClearField(game.FieldAuthors, field.TypeString)
	}
	if value, ok := gu.mutation.Publishers(); ok {
		_spec.SetField(game.FieldPublishers, field.TypeString, value)
	}
	if gu.mutation.PublishersCleared() {
		_spec.ClearField(game.FieldPublishers, field.TypeString)
	}
	if value, ok := gu.mutation.Genres(); ok {
		_spec.SetField(game.FieldGenres, field.TypeString, value)
	}
	if gu.mutation.GenresCleared() {
		_spec.ClearField(game.FieldGenres, field.TypeString)
	}
	if value, ok := gu.mutation.Premiered(); ok {
		_spec.SetField(game.FieldPremiered, field.TypeTime, value)
	}
	if gu.mutation.PremieredCleared() {
		_spec.ClearField(game.FieldPremiered, field.TypeTime)
	}
	if value, ok := gu.mutation.Draft(); ok {
		_spec.SetField(game.FieldDraft, field.TypeBool, value)
	}
	if value, ok := gu.mutation.Accepted(); ok {
		_spec.SetField(game.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := gu.mutation.Contributor(); ok {
		_spec.SetField(game.FieldContributor, field.TypeString, value)
	}
	if gu.mutation.ContributorCleared() {
		_spec.ClearField(game.FieldContributor, field.TypeString)
	}
	if value, ok := gu.mutation.GameMode(); ok {
		_spec.SetField(game.FieldGameMode, field.TypeString, value)
	}
	if gu.mutation.GameModeCleared() {
		_spec.ClearField(game.FieldGameMode, field.TypeString)
	}
	if value, ok := gu.mutation.Gears(); ok {
		_spec.SetField(game.FieldGears, field.TypeString, value)
	}
	if gu.mutation.GearsCleared() {
		_spec.ClearField(game.FieldGears, field.TypeString)
	}
	if value, ok := gu.mutation.CompleteTime(); ok {
		_spec.SetField(game.FieldCompleteTime, field.TypeInt, value)
	}
	if value, ok := gu.mutation.AddedCompleteTime(); ok {
		_spec.AddField(game.FieldCompleteTime, field.TypeInt, value)
	}
	_spec.AddModifiers(gu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, gu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	gu.mutation.done = true
	return n, nil
}

// GameUpdateOne is the builder for updating a single Game entity.
type GameUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *GameMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetDeletedAt sets the "deleted_at" field.
func (guo *GameUpdateOne) SetDeletedAt(t time.Time) *GameUpdateOne {
	guo.mutation.SetDeletedAt(t)
	return guo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableDeletedAt(t *time.Time) *GameUpdateOne {
	if t != nil {
		guo.SetDeletedAt(*t)
	}
	return guo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (guo *GameUpdateOne) ClearDeletedAt() *GameUpdateOne {
	guo.mutation.ClearDeletedAt()
	return guo
}

// SetCreatedAt sets the "created_at" field.
func (guo *GameUpdateOne) SetCreatedAt(t time.Time) *GameUpdateOne {
	guo.mutation.SetCreatedAt(t)
	return guo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableCreatedAt(t *time.Time) *GameUpdateOne {
	if t != nil {
		guo.SetCreatedAt(*t)
	}
	return guo
}

// SetUpdatedAt sets the "updated_at" field.
func (guo *GameUpdateOne) SetUpdatedAt(t time.Time) *GameUpdateOne {
	guo.mutation.SetUpdatedAt(t)
	return guo
}

// SetTitle sets the "title" field.
func (guo *GameUpdateOne) SetTitle(s string) *GameUpdateOne {
	guo.mutation.SetTitle(s)
	return guo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableTitle(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetTitle(*s)
	}
	return guo
}

// SetDescription sets the "description" field.
func (guo *GameUpdateOne) SetDescription(s string) *GameUpdateOne {
	guo.mutation.SetDescription(s)
	return guo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableDescription(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetDescription(*s)
	}
	return guo
}

// ClearDescription clears the value of the "description" field.
func (guo *GameUpdateOne) ClearDescription() *GameUpdateOne {
	guo.mutation.ClearDescription()
	return guo
}

// SetCoverURL sets the "cover_url" field.
func (guo *GameUpdateOne) SetCoverURL(s string) *GameUpdateOne {
	guo.mutation.SetCoverURL(s)
	return guo
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableCoverURL(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetCoverURL(*s)
	}
	return guo
}

// ClearCoverURL clears the value of the "cover_url" field.
func (guo *GameUpdateOne) ClearCoverURL() *GameUpdateOne {
	guo.mutation.ClearCoverURL()
	return guo
}

// SetAuthors sets the "authors" field.
func (guo *GameUpdateOne) SetAuthors(s string) *GameUpdateOne {
	guo.mutation.SetAuthors(s)
	return guo
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableAuthors(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetAuthors(*s)
	}
	return guo
}

// ClearAuthors clears the value of the "authors" field.
func (guo *GameUpdateOne) ClearAuthors() *GameUpdateOne {
	guo.mutation.ClearAuthors()
	return guo
}

// SetPublishers sets the "publishers" field.
func (guo *GameUpdateOne) SetPublishers(s string) *GameUpdateOne {
	guo.mutation.SetPublishers(s)
	return guo
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillablePublishers(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetPublishers(*s)
	}
	return guo
}

// ClearPublishers clears the value of the "publishers" field.
func (guo *GameUpdateOne) ClearPublishers() *GameUpdateOne {
	guo.mutation.ClearPublishers()
	return guo
}

// SetGenres sets the "genres" field.
func (guo *GameUpdateOne) SetGenres(s string) *GameUpdateOne {
	guo.mutation.SetGenres(s)
	return guo
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableGenres(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetGenres(*s)
	}
	return guo
}

// ClearGenres clears the value of the "genres" field.
func (guo *GameUpdateOne) ClearGenres() *GameUpdateOne {
	guo.mutation.ClearGenres()
	return guo
}

// SetPremiered sets the "premiered" field.
func (guo *GameUpdateOne) SetPremiered(t time.Time) *GameUpdateOne {
	guo.mutation.SetPremiered(t)
	return guo
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillablePremiered(t *time.Time) *GameUpdateOne {
	if t != nil {
		guo.SetPremiered(*t)
	}
	return guo
}

// ClearPremiered clears the value of the "premiered" field.
func (guo *GameUpdateOne) ClearPremiered() *GameUpdateOne {
	guo.mutation.ClearPremiered()
	return guo
}

// SetDraft sets the "draft" field.
func (guo *GameUpdateOne) SetDraft(b bool) *GameUpdateOne {
	guo.mutation.SetDraft(b)
	return guo
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableDraft(b *bool) *GameUpdateOne {
	if b != nil {
		guo.SetDraft(*b)
	}
	return guo
}

// SetAccepted sets the "accepted" field.
func (guo *GameUpdateOne) SetAccepted(b bool) *GameUpdateOne {
	guo.mutation.SetAccepted(b)
	return guo
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableAccepted(b *bool) *GameUpdateOne {
	if b != nil {
		guo.SetAccepted(*b)
	}
	return guo
}

// SetContributor sets the "contributor" field.
func (guo *GameUpdateOne) SetContributor(s string) *GameUpdateOne {
	guo.mutation.SetContributor(s)
	return guo
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableContributor(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetContributor(*s)
	}
	return guo
}

// ClearContributor clears the value of the "contributor" field.
func (guo *GameUpdateOne) ClearContributor() *GameUpdateOne {
	guo.mutation.ClearContributor()
	return guo
}

// SetGameMode sets the "game_mode" field.
func (guo *GameUpdateOne) SetGameMode(s string) *GameUpdateOne {
	guo.mutation.SetGameMode(s)
	return guo
}

// SetNillableGameMode sets the "game_mode" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableGameMode(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetGameMode(*s)
	}
	return guo
}

// ClearGameMode clears the value of the "game_mode" field.
func (guo *GameUpdateOne) ClearGameMode() *GameUpdateOne {
	guo.mutation.ClearGameMode()
	return guo
}

// SetGears sets the "gears" field.
func (guo *GameUpdateOne) SetGears(s string) *GameUpdateOne {
	guo.mutation.SetGears(s)
	return guo
}

// SetNillableGears sets the "gears" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableGears(s *string) *GameUpdateOne {
	if s != nil {
		guo.SetGears(*s)
	}
	return guo
}

// ClearGears clears the value of the "gears" field.
func (guo *GameUpdateOne) ClearGears() *GameUpdateOne {
	guo.mutation.ClearGears()
	return guo
}

// SetCompleteTime sets the "complete_time" field.
func (guo *GameUpdateOne) SetCompleteTime(i int) *GameUpdateOne {
	guo.mutation.ResetCompleteTime()
	guo.mutation.SetCompleteTime(i)
	return guo
}

// SetNillableCompleteTime sets the "complete_time" field if the given value is not nil.
func (guo *GameUpdateOne) SetNillableCompleteTime(i *int) *GameUpdateOne {
	if i != nil {
		guo.SetCompleteTime(*i)
	}
	return guo
}

// AddCompleteTime adds i to the "complete_time" field.
func (guo *GameUpdateOne) AddCompleteTime(i int) *GameUpdateOne {
	guo.mutation.AddCompleteTime(i)
	return guo
}

// Mutation returns the GameMutation object of the builder.
func (guo *GameUpdateOne) Mutation() *GameMutation {
	return guo.mutation
}

// Where appends a list predicates to the GameUpdate builder.
func (guo *GameUpdateOne) Where(ps ...predicate.Game) *GameUpdateOne {
	guo.mutation.Where(ps...)
	return guo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (guo *GameUpdateOne) Select(field string, fields ...string) *GameUpdateOne {
	guo.fields = append([]string{field}, fields...)
	return guo
}

// Save executes the query and returns the updated Game entity.
func (guo *GameUpdateOne) Save(ctx context.Context) (*Game, error) {
	if err := guo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, guo.sqlSave, guo.mutation, guo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (guo *GameUpdateOne) SaveX(ctx context.Context) *Game {
	node, err := guo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (guo *GameUpdateOne) Exec(ctx context.Context) error {
	_, err := guo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (guo *GameUpdateOne) ExecX(ctx context.Context) {
	if err := guo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (guo *GameUpdateOne) defaults() error {
	if _, ok := guo.mutation.UpdatedAt(); !ok {
		if game.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized game.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := game.UpdateDefaultUpdatedAt()
		guo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (guo *GameUpdateOne) check() error {
	if v, ok := guo.mutation.Title(); ok {
		if err := game.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Game.title": %w`, err)}
		}
	}
	if v, ok := guo.mutation.CompleteTime(); ok {
		if err := game.CompleteTimeValidator(v); err != nil {
			return &ValidationError{Name: "complete_time", err: fmt.Errorf(`ent: validator failed for field "Game.complete_time": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (guo *GameUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *GameUpdateOne {
	guo.modifiers = append(guo.modifiers, modifiers...)
	return guo
}

func (guo *GameUpdateOne) sqlSave(ctx context.Context) (_node *Game, err error) {
	if err := guo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(game.Table, game.Columns, sqlgraph.NewFieldSpec(game.FieldID, field.TypeUint))
	id, ok := guo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Game.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := guo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, game.FieldID)
		for _, f := range fields {
			if !game.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != game.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := guo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := guo.mutation.DeletedAt(); ok {
		_spec.SetField(game.FieldDeletedAt, field.TypeTime, value)
	}
	if guo.mutation.DeletedAtCleared() {
		_spec.ClearField(game.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := guo.mutation.CreatedAt(); ok {
		_spec.SetField(game.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := guo.mutation.UpdatedAt(); ok {
		_spec.SetField(game.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := guo.mutation.Title(); ok {
		_spec.SetField(game.FieldTitle, field.TypeString, value)
	}
	if value, ok := guo.mutation.Description(); ok {
		_spec.SetField(game.FieldDescription, field.TypeString, value)
	}
	if guo.mutation.DescriptionCleared() {
		_spec.ClearField(game.FieldDescription, field.TypeString)
	}
	if value, ok := guo.mutation.CoverURL(); ok {
		_spec.SetField(game.FieldCoverURL, field.TypeString, value)
	}
	if guo.mutation.CoverURLCleared() {
		_spec.ClearField(game.FieldCoverURL, field.TypeString)
	}
	if value, ok := guo.mutation.Authors(); ok {
		_spec.SetField(game.FieldAuthors, field.TypeString, value)
	}
	if guo.mutation.AuthorsCleared() {
		_spec.ClearField(game.FieldAuthors, field.TypeString)
	}
	if value, ok := guo.mutation.Publishers(); ok {
		_spec.SetField(game.FieldPublishers, field.TypeString, value)
	}
	if guo.mutation.PublishersCleared() {
		_spec.ClearField(game.FieldPublishers, field.TypeString)
	}
	if value, ok := guo.mutation.Genres(); ok {
		_spec.SetField(game.FieldGenres, field.TypeString, value)
	}
	if guo.mutation.GenresCleared() {
		_spec.ClearField(game.FieldGenres, field.TypeString)
	}
	if value, ok := guo.mutation.Premiered(); ok {
		_spec.SetField(game.FieldPremiered, field.TypeTime, value)
	}
	if guo.mutation.PremieredCleared() {
		_spec.ClearField(game.FieldPremiered, field.TypeTime)
	}
	if value, ok := guo.mutation.Draft(); ok {
		_spec.SetField(game.FieldDraft, field.TypeBool, value)
	}
	if value, ok := guo.mutation.Accepted(); ok {
		_spec.SetField(game.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := guo.mutation.Contributor(); ok {
		_spec.SetField(game.FieldContributor, field.TypeString, value)
	}
	if guo.mutation.ContributorCleared() {
		_spec.ClearField(game.FieldContributor, field.TypeString)
	}
	if value, ok := guo.mutation.GameMode(); ok {
		_spec.SetField(game.FieldGameMode, field.TypeString, value)
	}
	if guo.mutation.GameModeCleared() {
		_spec.ClearField(game.FieldGameMode, field.TypeString)
	}
	if value, ok := guo.mutation.Gears(); ok {
		_spec.SetField(game.FieldGears, field.TypeString, value)
	}
	if guo.mutation.GearsCleared() {
		_spec.ClearField(game.FieldGears, field.TypeString)
	}
	if value, ok := guo.mutation.CompleteTime(); ok {
		_spec.SetField(game.FieldCompleteTime, field.TypeInt, value)
	}
	if value, ok := guo.mutation.AddedCompleteTime(); ok {
		_spec.AddField(game.FieldCompleteTime, field.TypeInt, value)
	}
	_spec.AddModifiers(guo.modifiers...)
	_node = &Game{config: guo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, guo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{game.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	guo.mutation.done = true
	return _node, nil
}
