// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/game"
)

// GameCreate is the builder for creating a Game entity.
type GameCreate struct {
	config
	mutation *GameMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (gc *GameCreate) SetDeletedAt(t time.Time) *GameCreate {
	gc.mutation.SetDeletedAt(t)
	return gc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (gc *GameCreate) SetNillableDeletedAt(t *time.Time) *GameCreate {
	if t != nil {
		gc.SetDeletedAt(*t)
	}
	return gc
}

// SetCreatedAt sets the "created_at" field.
func (gc *GameCreate) SetCreatedAt(t time.Time) *GameCreate {
	gc.mutation.SetCreatedAt(t)
	return gc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (gc *GameCreate) SetNillableCreatedAt(t *time.Time) *GameCreate {
	if t != nil {
		gc.SetCreatedAt(*t)
	}
	return gc
}

// SetUpdatedAt sets the "updated_at" field.
func (gc *GameCreate) SetUpdatedAt(t time.Time) *GameCreate {
	gc.mutation.SetUpdatedAt(t)
	return gc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (gc *GameCreate) SetNillableUpdatedAt(t *time.Time) *GameCreate {
	if t != nil {
		gc.SetUpdatedAt(*t)
	}
	return gc
}

// SetTitle sets the "title" field.
func (gc *GameCreate) SetTitle(s string) *GameCreate {
	gc.mutation.SetTitle(s)
	return gc
}

// SetSlug sets the "slug" field.
func (gc *GameCreate) SetSlug(s string) *GameCreate {
	gc.mutation.SetSlug(s)
	return gc
}

// SetDescription sets the "description" field.
func (gc *GameCreate) SetDescription(s string) *GameCreate {
	gc.mutation.SetDescription(s)
	return gc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (gc *GameCreate) SetNillableDescription(s *string) *GameCreate {
	if s != nil {
		gc.SetDescription(*s)
	}
	return gc
}

// SetCoverURL sets the "cover_url" field.
func (gc *GameCreate) SetCoverURL(s string) *GameCreate {
	gc.mutation.SetCoverURL(s)
	return gc
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (gc *GameCreate) SetNillableCoverURL(s *string) *GameCreate {
	if s != nil {
		gc.SetCoverURL(*s)
	}
	return gc
}

// SetAuthors sets the "authors" field.
func (gc *GameCreate) SetAuthors(s string) *GameCreate {
	gc.mutation.SetAuthors(s)
	return gc
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (gc *GameCreate) SetNillableAuthors(s *string) *GameCreate {
	if s != nil {
		gc.SetAuthors(*s)
	}
	return gc
}

// SetPublishers sets the "publishers" field.
func (gc *GameCreate) SetPublishers(s string) *GameCreate {
	gc.mutation.SetPublishers(s)
	return gc
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (gc *GameCreate) SetNillablePublishers(s *string) *GameCreate {
	if s != nil {
		gc.SetPublishers(*s)
	}
	return gc
}

// SetGenres sets the "genres" field.
func (gc *GameCreate) SetGenres(s string) *GameCreate {
	gc.mutation.SetGenres(s)
	return gc
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (gc *GameCreate) SetNillableGenres(s *string) *GameCreate {
	if s != nil {
		gc.SetGenres(*s)
	}
	return gc
}

// SetPremiered sets the "premiered" field.
func (gc *GameCreate) SetPremiered(t time.Time) *GameCreate {
	gc.mutation.SetPremiered(t)
	return gc
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (gc *GameCreate) SetNillablePremiered(t *time.Time) *GameCreate {
	if t != nil {
		gc.SetPremiered(*t)
	}
	return gc
}

// SetDraft sets the "draft" field.
func (gc *GameCreate) SetDraft(b bool) *GameCreate {
	gc.mutation.SetDraft(b)
	return gc
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (gc *GameCreate) SetNillableDraft(b *bool) *GameCreate {
	if b != nil {
		gc.SetDraft(*b)
	}
	return gc
}

// SetAccepted sets the "accepted" field.
func (gc *GameCreate) SetAccepted(b bool) *GameCreate {
	gc.mutation.SetAccepted(b)
	return gc
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (gc *GameCreate) SetNillableAccepted(b *bool) *GameCreate {
	if b != nil {
		gc.SetAccepted(*b)
	}
	return gc
}

// SetContributor sets the "contributor" field.
func (gc *GameCreate) SetContributor(s string) *GameCreate {
	gc.mutation.SetContributor(s)
	return gc
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (gc *GameCreate) SetNillableContributor(s *string) *GameCreate {
	if s != nil {
		gc.SetContributor(*s)
	}
	return gc
}

// SetGameMode sets the "game_mode" field.
func (gc *GameCreate) SetGameMode(s string) *GameCreate {
	gc.mutation.SetGameMode(s)
	return gc
}

// SetNillableGameMode sets the "game_mode" field if the given value is not nil.
func (gc *GameCreate) SetNillableGameMode(s *string) *GameCreate {
	if s != nil {
		gc.SetGameMode(*s)
	}
	return gc
}

// SetGears sets the "gears" field.
func (gc *GameCreate) SetGears(s string) *GameCreate {
	gc.mutation.SetGears(s)
	return gc
}

// SetNillableGears sets the "gears" field if the given value is not nil.
func (gc *GameCreate) SetNillableGears(s *string) *GameCreate {
	if s != nil {
		gc.SetGears(*s)
	}
	return gc
}

// SetCompleteTime sets the "complete_time" field.
func (gc *GameCreate) SetCompleteTime(i int) *GameCreate {
	gc.mutation.SetCompleteTime(i)
	return gc
}

// SetNillableCompleteTime sets the "complete_time" field if the given value is not nil.
func (gc *GameCreate) SetNillableCompleteTime(i *int) *GameCreate {
	if i != nil {
		gc.SetCompleteTime(*i)
	}
	return gc
}

// SetID sets the "id" field.
func (gc *GameCreate) SetID(u uint) *GameCreate {
	gc.mutation.SetID(u)
	return gc
}

// Mutation returns the GameMutation object of the builder.
func (gc *GameCreate) Mutation() *GameMutation {
	return gc.mutation
}

// Save creates the Game in the database.
func (gc *GameCreate) Save(ctx context.Context) (*Game, error) {
	if err := gc.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, gc.sqlSave, gc.mutation, gc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (gc *GameCreate) SaveX(ctx context.Context) *Game {
	v, err := gc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gc *GameCreate) Exec(ctx context.Context) error {
	_, err := gc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gc *GameCreate) ExecX(ctx context.Context) {
	if err := gc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gc *GameCreate) defaults() error {
	if _, ok := gc.mutation.CreatedAt(); !ok {
		if game.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized game.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := game.DefaultCreatedAt()
		gc.mutation.SetCreatedAt(v)
	}
	if _, ok := gc.mutation.UpdatedAt(); !ok {
		if game.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized game.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := game.DefaultUpdatedAt()
		gc.mutation.SetUpdatedAt(v)
	}
	if _, ok := gc.mutation.Draft(); !ok {
		v := game.DefaultDraft
		gc.mutation.SetDraft(v)
	}
	if _, ok := gc.mutation.Accepted(); !ok {
		v := game.DefaultAccepted
		gc.mutation.SetAccepted(v)
	}
	if _, ok := gc.mutation.CompleteTime(); !ok {
		v := game.DefaultCompleteTime
		gc.mutation.SetCompleteTime(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (gc *GameCreate) check() error {
	if _, ok := gc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Game.created_at"`)}
	}
	if _, ok := gc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Game.updated_at"`)}
	}
	if _, ok := gc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Game.title"`)}
	}
	if v, ok := gc.mutation.Title(); ok {
		if err := game.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Game.title": %w`, err)}
		}
	}
	if _, ok := gc.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Game.slug"`)}
	}
	if v, ok := gc.mutation.Slug(); ok {
		if err := game.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Game.slug": %w`, err)}
		}
	}
	if _, ok := gc.mutation.Draft(); !ok {
		return &ValidationError{Name: "draft", err: errors.New(`ent: missing required field "Game.draft"`)}
	}
	if _, ok := gc.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "Game.accepted"`)}
	}
	if _, ok := gc.mutation.CompleteTime(); !ok {
		return &ValidationError{Name: "complete_time", err: errors.New(`ent: missing required field "Game.complete_time"`)}
	}
	if v, ok := gc.mutation.CompleteTime(); ok {
		if err := game.CompleteTimeValidator(v); err != nil {
			return &ValidationError{Name: "complete_time", err: fmt.Errorf(`ent: validator failed for field "Game.complete_time": %w`, err)}
		}
	}
	return nil
}

func (gc *GameCreate) sqlSave(ctx context.Context) (*Game, error) {
	if err := gc.check(); err != nil {
		return nil, err
	}
	_node, _spec := gc.createSpec()
	if err := sqlgraph.CreateNode(ctx, gc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	gc.mutation.id = &_node.ID
	gc.mutation.done = true
	return _node, nil
}

func (gc *GameCreate) createSpec() (*Game, *sqlgraph.CreateSpec) {
	var (
		_node = &Game{config: gc.config}
		_spec = sqlgraph.NewCreateSpec(game.Table, sqlgraph.NewFieldSpec(game.FieldID, field.TypeUint))
	)
	if id, ok := gc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := gc.mutation.DeletedAt(); ok {
		_spec.SetField(game.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := gc.mutation.CreatedAt(); ok {
		_spec.SetField(game.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := gc.mutation.UpdatedAt(); ok {
		_spec.SetField(game.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := gc.mutation.Title(); ok {
		_spec.SetField(game.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := gc.mutation.Slug(); ok {
		_spec.SetField(game.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := gc.mutation.Description(); ok {
		_spec.SetField(game.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := gc.mutation.CoverURL(); ok {
		_spec.SetField(game.FieldCoverURL, field.TypeString, value)
		_node.CoverURL = value
	}
	if value, ok := gc.mutation.Authors(); ok {
		_spec.SetField(game.FieldAuthors, field.TypeString, value)
		_node.Authors = value
	}
	if value, ok := gc.mutation.Publishers(); ok {
		_spec.SetField(game.FieldPublishers, field.TypeString, value)
		_node.Publishers = value
	}
	if value, ok := gc.mutation.Genres(); ok {
		_spec.SetField(game.FieldGenres, field.TypeString, value)
		_node.Genres = value
	}
	if value, ok := gc.mutation.Premiered(); ok {
		_spec.SetField(game.FieldPremiered, field.TypeTime, value)
		_node.Premiered = &value
	}
	if value, ok := gc.mutation.Draft(); ok {
		_spec.SetField(game.FieldDraft, field.TypeBool, value)
		_node.Draft = value
	}
	if value, ok := gc.mutation.Accepted(); ok {
		_spec.SetField(game.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	if value, ok := gc.mutation.Contributor(); ok {
		_spec.SetField(game.FieldContributor, field.TypeString, value)
		_node.Contributor = value
	}
	if value, ok := gc.mutation.GameMode(); ok {
		_spec.SetField(game.FieldGameMode, field.TypeString, value)
		_node.GameMode = value
	}
	if value, ok := gc.mutation.Gears(); ok {
		_spec.SetField(game.FieldGears, field.TypeString, value)
		_node.Gears = value
	}
	if value, ok := gc.mutation.CompleteTime(); ok {
		_spec.SetField(game.FieldCompleteTime, field.TypeInt, value)
		_node.CompleteTime = value
	}
	return _node, _spec
}

// GameCreateBulk is the builder for creating many Game entities in bulk.
type GameCreateBulk struct {
	config
	err      error
	builders []*GameCreate
}

// Save creates the Game entities in the database.
func (gcb *GameCreateBulk) Save(ctx context.Context) ([]*Game, error) {
	if gcb.err != nil {
		return nil, gcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(gcb.builders))
	nodes := make([]*Game, len(gcb.builders))
	mutators := make([]Mutator, len(gcb.builders))
	for i := range gcb.builders {
		func(i int, root context.Context) {
			builder := gcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, gcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, gcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, gcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (gcb *GameCreateBulk) SaveX(ctx context.Context) []*Game {
	v, err := gcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gcb *GameCreateBulk) Exec(ctx context.Context) error {
	_, err := gcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gcb *GameCreateBulk) ExecX(ctx context.Context) {
	if err := gcb.Exec(ctx); err != nil {
		panic(err)
	}
}
