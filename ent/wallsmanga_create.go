// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsmanga"
)

// WallsMangaCreate is the builder for creating a WallsManga entity.
type WallsMangaCreate struct {
	config
	mutation *WallsMangaMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (wmc *WallsMangaCreate) SetCreatedAt(t time.Time) *WallsMangaCreate {
	wmc.mutation.SetCreatedAt(t)
	return wmc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wmc *WallsMangaCreate) SetNillableCreatedAt(t *time.Time) *WallsMangaCreate {
	if t != nil {
		wmc.SetCreatedAt(*t)
	}
	return wmc
}

// SetUpdatedAt sets the "updated_at" field.
func (wmc *WallsMangaCreate) SetUpdatedAt(t time.Time) *WallsMangaCreate {
	wmc.mutation.SetUpdatedAt(t)
	return wmc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wmc *WallsMangaCreate) SetNillableUpdatedAt(t *time.Time) *WallsMangaCreate {
	if t != nil {
		wmc.SetUpdatedAt(*t)
	}
	return wmc
}

// SetUsername sets the "username" field.
func (wmc *WallsMangaCreate) SetUsername(s string) *WallsMangaCreate {
	wmc.mutation.SetUsername(s)
	return wmc
}

// SetArticleID sets the "article_id" field.
func (wmc *WallsMangaCreate) SetArticleID(u uint) *WallsMangaCreate {
	wmc.mutation.SetArticleID(u)
	return wmc
}

// SetStatus sets the "status" field.
func (wmc *WallsMangaCreate) SetStatus(w wallsmanga.Status) *WallsMangaCreate {
	wmc.mutation.SetStatus(w)
	return wmc
}

// SetScore sets the "score" field.
func (wmc *WallsMangaCreate) SetScore(f float64) *WallsMangaCreate {
	wmc.mutation.SetScore(f)
	return wmc
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wmc *WallsMangaCreate) SetNillableScore(f *float64) *WallsMangaCreate {
	if f != nil {
		wmc.SetScore(*f)
	}
	return wmc
}

// SetStartedAt sets the "started_at" field.
func (wmc *WallsMangaCreate) SetStartedAt(t time.Time) *WallsMangaCreate {
	wmc.mutation.SetStartedAt(t)
	return wmc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wmc *WallsMangaCreate) SetNillableStartedAt(t *time.Time) *WallsMangaCreate {
	if t != nil {
		wmc.SetStartedAt(*t)
	}
	return wmc
}

// SetFinishedAt sets the "finished_at" field.
func (wmc *WallsMangaCreate) SetFinishedAt(t time.Time) *WallsMangaCreate {
	wmc.mutation.SetFinishedAt(t)
	return wmc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wmc *WallsMangaCreate) SetNillableFinishedAt(t *time.Time) *WallsMangaCreate {
	if t != nil {
		wmc.SetFinishedAt(*t)
	}
	return wmc
}

// SetVolumes sets the "volumes" field.
func (wmc *WallsMangaCreate) SetVolumes(i int) *WallsMangaCreate {
	wmc.mutation.SetVolumes(i)
	return wmc
}

// SetNillableVolumes sets the "volumes" field if the given value is not nil.
func (wmc *WallsMangaCreate) SetNillableVolumes(i *int) *WallsMangaCreate {
	if i != nil {
		wmc.SetVolumes(*i)
	}
	return wmc
}

// SetChapters sets the "chapters" field.
func (wmc *WallsMangaCreate) SetChapters(i int) *WallsMangaCreate {
	wmc.mutation.SetChapters(i)
	return wmc
}

// SetNillableChapters sets the "chapters" field if the given value is not nil.
func (wmc *WallsMangaCreate) SetNillableChapters(i *int) *WallsMangaCreate {
	if i != nil {
		wmc.SetChapters(*i)
	}
	return wmc
}

// SetID sets the "id" field.
func (wmc *WallsMangaCreate) SetID(u uint) *WallsMangaCreate {
	wmc.mutation.SetID(u)
	return wmc
}

// Mutation returns the WallsMangaMutation object of the builder.
func (wmc *WallsMangaCreate) Mutation() *WallsMangaMutation {
	return wmc.mutation
}

// Save creates the WallsManga in the database.
func (wmc *WallsMangaCreate) Save(ctx context.Context) (*WallsManga, error) {
	wmc.defaults()
	return withHooks(ctx, wmc.sqlSave, wmc.mutation, wmc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wmc *WallsMangaCreate) SaveX(ctx context.Context) *WallsManga {
	v, err := wmc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wmc *WallsMangaCreate) Exec(ctx context.Context) error {
	_, err := wmc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wmc *WallsMangaCreate) ExecX(ctx context.Context) {
	if err := wmc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wmc *WallsMangaCreate) defaults() {
	if _, ok := wmc.mutation.CreatedAt(); !ok {
		v := wallsmanga.DefaultCreatedAt()
		wmc.mutation.SetCreatedAt(v)
	}
	if _, ok := wmc.mutation.UpdatedAt(); !ok {
		v := wallsmanga.DefaultUpdatedAt()
		wmc.mutation.SetUpdatedAt(v)
	}
	if _, ok := wmc.mutation.Volumes(); !ok {
		v := wallsmanga.DefaultVolumes
		wmc.mutation.SetVolumes(v)
	}
	if _, ok := wmc.mutation.Chapters(); !ok {
		v := wallsmanga.DefaultChapters
		wmc.mutation.SetChapters(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wmc *WallsMangaCreate) check() error {
	if _, ok := wmc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WallsManga.created_at"`)}
	}
	if _, ok := wmc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WallsManga.updated_at"`)}
	}
	if _, ok := wmc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "WallsManga.username"`)}
	}
	if v, ok := wmc.mutation.Username(); ok {
		if err := wallsmanga.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsManga.username": %w`, err)}
		}
	}
	if _, ok := wmc.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "WallsManga.article_id"`)}
	}
	if _, ok := wmc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WallsManga.status"`)}
	}
	if v, ok := wmc.mutation.Status(); ok {
		if err := wallsmanga.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsManga.status": %w`, err)}
		}
	}
	if _, ok := wmc.mutation.Volumes(); !ok {
		return &ValidationError{Name: "volumes", err: errors.New(`ent: missing required field "WallsManga.volumes"`)}
	}
	if v, ok := wmc.mutation.Volumes(); ok {
		if err := wallsmanga.VolumesValidator(v); err != nil {
			return &ValidationError{Name: "volumes", err: fmt.Errorf(`ent: validator failed for field "WallsManga.volumes": %w`, err)}
		}
	}
	if _, ok := wmc.mutation.Chapters(); !ok {
		return &ValidationError{Name: "chapters", err: errors.New(`ent: missing required field "WallsManga.chapters"`)}
	}
	if v, ok := wmc.mutation.Chapters(); ok {
		if err := wallsmanga.ChaptersValidator(v); err != nil {
			return &ValidationError{Name: "chapters", err: fmt.Errorf(`ent: validator failed for field "WallsManga.chapters": %w`, err)}
		}
	}
	return nil
}

func (wmc *WallsMangaCreate) sqlSave(ctx context.Context) (*WallsManga, error) {
	if err := wmc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wmc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wmc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wmc.mutation.id = &_node.ID
	wmc.mutation.done = true
	return _node, nil
}

func (wmc *WallsMangaCreate) createSpec() (*WallsManga, *sqlgraph.CreateSpec) {
	var (
		_node = &WallsManga{config: wmc.config}
		_spec = sqlgraph.NewCreateSpec(wallsmanga.Table, sqlgraph.NewFieldSpec(wallsmanga.FieldID, field.TypeUint))
	)
	if id, ok := wmc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wmc.mutation.CreatedAt(); ok {
		_spec.SetField(wallsmanga.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wmc.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsmanga.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := wmc.mutation.Username(); ok {
		_spec.SetField(wallsmanga.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := wmc.mutation.ArticleID(); ok {
		_spec.SetField(wallsmanga.FieldArticleID, field.TypeUint, value)
		_node.ArticleID = value
	}
	if value, ok := wmc.mutation.Status(); ok {
		_spec.SetField(wallsmanga.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := wmc.mutation.Score(); ok {
		_spec.SetField(wallsmanga.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := wmc.mutation.StartedAt(); ok {
		_spec.SetField(wallsmanga.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := wmc.mutation.FinishedAt(); ok {
		_spec.SetField(wallsmanga.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := wmc.mutation.Volumes(); ok {
		_spec.SetField(wallsmanga.FieldVolumes, field.TypeInt, value)
		_node.Volumes = value
	}
	if value, ok := wmc.mutation.Chapters(); ok {
		_spec.SetField(wallsmanga.FieldChapters, field.TypeInt, value)
		_node.Chapters = value
	}
	return _node, _spec
}

// WallsMangaCreateBulk is the builder for creating many WallsManga entities in bulk.
type WallsMangaCreateBulk struct {
	config
	err      error
	builders []*WallsMangaCreate
}

// Save creates the WallsManga entities in the database.
func (wmcb *WallsMangaCreateBulk) Save(ctx context.Context) ([]*WallsManga, error) {
	if wmcb.err != nil {
		return nil, wmcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wmcb.builders))
	nodes := make([]*WallsManga, len(wmcb.builders))
	mutators := make([]Mutator, len(wmcb.builders))
	for i := range wmcb.builders {
		func(i int, root context.Context) {
			builder := wmcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WallsMangaMutation)
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
					_, err = mutators[i+1].Mutate(root, wmcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wmcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wmcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wmcb *WallsMangaCreateBulk) SaveX(ctx context.Context) []*WallsManga {
	v, err := wmcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wmcb *WallsMangaCreateBulk) Exec(ctx context.Context) error {
	_, err := wmcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wmcb *WallsMangaCreateBulk) ExecX(ctx context.Context) {
	if err := wmcb.Exec(ctx); err != nil {
		panic(err)
	}
}
