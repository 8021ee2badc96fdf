// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
)

// WallsGameCreate is the builder for creating a WallsGame entity.
type WallsGameCreate struct {
	config
	mutation *WallsGameMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (wgc *WallsGameCreate) SetCreatedAt(t time.Time) *WallsGameCreate {
	wgc.mutation.SetCreatedAt(t)
	return wgc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wgc *WallsGameCreate) SetNillableCreatedAt(t *time.Time) *WallsGameCreate {
	if t != nil {
		wgc.SetCreatedAt(*t)
	}
	return wgc
}

// SetUpdatedAt sets the "updated_at" field.
func (wgc *WallsGameCreate) SetUpdatedAt(t time.Time) *WallsGameCreate {
	wgc.mutation.SetUpdatedAt(t)
	return wgc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wgc *WallsGameCreate) SetNillableUpdatedAt(t *time.Time) *WallsGameCreate {
	if t != nil {
		wgc.SetUpdatedAt(*t)
	}
	return wgc
}

// SetUsername sets the "username" field.
func (wgc *WallsGameCreate) SetUsername(s string) *WallsGameCreate {
	wgc.mutation.SetUsername(s)
	return wgc
}

// SetArticleID sets the "article_id" field.
func (wgc *WallsGameCreate) SetArticleID(u uint) *WallsGameCreate {
	wgc.mutation.SetArticleID(u)
	return wgc
}

// SetStatus sets the "status" field.
func (wgc *WallsGameCreate) SetStatus(w wallsgame.Status) *WallsGameCreate {
	wgc.mutation.SetStatus(w)
	return wgc
}

// SetScore sets the "score" field.
func (wgc *WallsGameCreate) SetScore(f float64) *WallsGameCreate {
	wgc.mutation.SetScore(f)
	return wgc
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wgc *WallsGameCreate) SetNillableScore(f *float64) *WallsGameCreate {
	if f != nil {
		wgc.SetScore(*f)
	}
	return wgc
}

// SetStartedAt sets the "started_at" field.
func (wgc *WallsGameCreate) SetStartedAt(t time.Time) *WallsGameCreate {
	wgc.mutation.SetStartedAt(t)
	return wgc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wgc *WallsGameCreate) SetNillableStartedAt(t *time.Time) *WallsGameCreate {
	if t != nil {
		wgc.SetStartedAt(*t)
	}
	return wgc
}

// SetFinishedAt sets the "finished_at" field.
func (wgc *WallsGameCreate) SetFinishedAt(t time.Time) *WallsGameCreate {
	wgc.mutation.SetFinishedAt(t)
	return wgc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wgc *WallsGameCreate) SetNillableFinishedAt(t *time.Time) *WallsGameCreate {
	if t != nil {
		wgc.SetFinishedAt(*t)
	}
	return wgc
}

// SetHoursPlayed sets the "hours_played" field.
func (wgc *WallsGameCreate) SetHoursPlayed(i int) *WallsGameCreate {
	wgc.mutation.SetHoursPlayed(i)
	return wgc
}

// SetNillableHoursPlayed sets the "hours_played" field if the given value is not nil.
func (wgc *WallsGameCreate) SetNillableHoursPlayed(i *int) *WallsGameCreate {
	if i != nil {
		wgc.SetHoursPlayed(*i)
	}
	return wgc
}

// SetID sets the "id" field.
func (wgc *WallsGameCreate) SetID(u uint) *WallsGameCreate {
	wgc.mutation.SetID(u)
	return wgc
}

// Mutation returns the WallsGameMutation object of the builder.
func (wgc *WallsGameCreate) Mutation() *WallsGameMutation {
	return wgc.mutation
}

// Save creates the WallsGame in the database.
func (wgc *WallsGameCreate) Save(ctx context.Context) (*WallsGame, error) {
	wgc.defaults()
	return withHooks(ctx, wgc.sqlSave, wgc.mutation, wgc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wgc *WallsGameCreate) SaveX(ctx context.Context) *WallsGame {
	v, err := wgc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wgc *WallsGameCreate) Exec(ctx context.Context) error {
	_, err := wgc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wgc *WallsGameCreate) ExecX(ctx context.Context) {
	if err := wgc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wgc *WallsGameCreate) defaults() {
	if _, ok := wgc.mutation.CreatedAt(); !ok {
		v := wallsgame.DefaultCreatedAt()
		wgc.mutation.SetCreatedAt(v)
	}
	if _, ok := wgc.mutation.UpdatedAt(); !ok {
		v := wallsgame.DefaultUpdatedAt()
		wgc.mutation.SetUpdatedAt(v)
	}
	if _, ok := wgc.mutation.HoursPlayed(); !ok {
		v := wallsgame.DefaultHoursPlayed
		wgc.mutation.SetHoursPlayed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wgc *WallsGameCreate) check() error {
	if _, ok := wgc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WallsGame.created_at"`)}
	}
	if _, ok := wgc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WallsGame.updated_at"`)}
	}
	if _, ok := wgc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "WallsGame.username"`)}
	}
	if v, ok := wgc.mutation.Username(); ok {
		if err := wallsgame.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsGame.username": %w`, err)}
		}
	}
	if _, ok := wgc.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "WallsGame.article_id"`)}
	}
	if _, ok := wgc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WallsGame.status"`)}
	}
	if v, ok := wgc.mutation.Status(); ok {
		if err := wallsgame.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsGame.status": %w`, err)}
		}
	}
	if _, ok := wgc.mutation.HoursPlayed(); !ok {
		return &ValidationError{Name: "hours_played", err: errors.New(`ent: missing required field "WallsGame.hours_played"`)}
	}
	if v, ok := wgc.mutation.HoursPlayed(); ok {
		if err := wallsgame.HoursPlayedValidator(v); err != nil {
			return &ValidationError{Name: "hours_played", err: fmt.Errorf(`ent: validator failed for field "WallsGame.hours_played": %w`, err)}
		}
	}
	return nil
}

func (wgc *WallsGameCreate) sqlSave(ctx context.Context) (*WallsGame, error) {
	if err := wgc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wgc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wgc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wgc.mutation.id = &_node.ID
	wgc.mutation.done = true
	return _node, nil
}

func (wgc *WallsGameCreate) createSpec() (*WallsGame, *sqlgraph.CreateSpec) {
	var (
		_node = &WallsGame{config: wgc.config}
		_spec = sqlgraph.NewCreateSpec(wallsgame.Table, sqlgraph.NewFieldSpec(wallsgame.FieldID, field.TypeUint))
	)
	if id, ok := wgc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wgc.mutation.CreatedAt(); ok {
		_spec.SetField(wallsgame.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wgc.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsgame.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := wgc.mutation.Username(); ok {
		_spec.SetField(wallsgame.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := wgc.mutation.ArticleID(); ok {
		_spec.SetField(wallsgame.FieldArticleID, field.TypeUint, value)
		_node.ArticleID = value
	}
	if value, ok := wgc.mutation.Status(); ok {
		_spec.SetField(wallsgame.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := wgc.mutation.Score(); ok {
		_spec.SetField(wallsgame.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := wgc.mutation.StartedAt(); ok {
		_spec.SetField(wallsgame.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := wgc.mutation.FinishedAt(); ok {
		_spec.SetField(wallsgame.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := wgc.mutation.HoursPlayed(); ok {
		_spec.SetField(wallsgame.FieldHoursPlayed, field.TypeInt, value)
		_node.HoursPlayed = value
	}
	return _node, _spec
}

// WallsGameCreateBulk is the builder for creating many WallsGame entities in bulk.
type WallsGameCreateBulk struct {
	config
	err      error
	builders []*WallsGameCreate
}

// Save creates the WallsGame entities in the database.
func (wgcb *WallsGameCreateBulk) Save(ctx context.Context) ([]*WallsGame, error) {
	if wgcb.err != nil {
		return nil, wgcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wgcb.builders))
	nodes := make([]*WallsGame, len(wgcb.builders))
	mutators := make([]Mutator, len(wgcb.builders))
	for i := range wgcb.builders {
		func(i int, root context.Context) {
			builder := wgcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WallsGameMutation)
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
					_, err = mutators[i+1].Mutate(root, wgcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wgcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wgcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wgcb *WallsGameCreateBulk) SaveX(ctx context.Context) []*WallsGame {
	v, err := wgcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wgcb *WallsGameCreateBulk) Exec(ctx context.Context) error {
	_, err := wgcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wgcb *WallsGameCreateBulk) ExecX(ctx context.Context) {
	if err := wgcb.Exec(ctx); err != nil {
		panic(err)
	}
}
