// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/wallscomic"
)

// WallsComicCreate is the builder for creating a WallsComic entity.
type WallsComicCreate struct {
	config
	mutation *WallsComicMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (wcc *WallsComicCreate) SetCreatedAt(t time.Time) *WallsComicCreate {
	wcc.mutation.SetCreatedAt(t)
	return wcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wcc *WallsComicCreate) SetNillableCreatedAt(t *time.Time) *WallsComicCreate {
	if t != nil {
		wcc.SetCreatedAt(*t)
	}
	return wcc
}

// SetUpdatedAt sets the "updated_at" field.
func (wcc *WallsComicCreate) SetUpdatedAt(t time.Time) *WallsComicCreate {
	wcc.mutation.SetUpdatedAt(t)
	return wcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wcc *WallsComicCreate) SetNillableUpdatedAt(t *time.Time) *WallsComicCreate {
	if t != nil {
		wcc.SetUpdatedAt(*t)
	}
	return wcc
}

// SetUsername sets the "username" field.
func (wcc *WallsComicCreate) SetUsername(s string) *WallsComicCreate {
	wcc.mutation.SetUsername(s)
	return wcc
}

// SetArticleID sets the "article_id" field.
func (wcc *WallsComicCreate) SetArticleID(u uint) *WallsComicCreate {
	wcc.mutation.SetArticleID(u)
	return wcc
}

// SetStatus sets the "status" field.
func (wcc *WallsComicCreate) SetStatus(w wallscomic.Status) *WallsComicCreate {
	wcc.mutation.SetStatus(w)
	return wcc
}

// SetScore sets the "score" field.
func (wcc *WallsComicCreate) SetScore(f float64) *WallsComicCreate {
	wcc.mutation.SetScore(f)
	return wcc
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wcc *WallsComicCreate) SetNillableScore(f *float64) *WallsComicCreate {
	if f != nil {
		wcc.SetScore(*f)
	}
	return wcc
}

// SetStartedAt sets the "started_at" field.
func (wcc *WallsComicCreate) SetStartedAt(t time.Time) *WallsComicCreate {
	wcc.mutation.SetStartedAt(t)
	return wcc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wcc *WallsComicCreate) SetNillableStartedAt(t *time.Time) *WallsComicCreate {
	if t != nil {
		wcc.SetStartedAt(*t)
	}
	return wcc
}

// SetFinishedAt sets the "finished_at" field.
func (wcc *WallsComicCreate) SetFinishedAt(t time.Time) *WallsComicCreate {
	wcc.mutation.SetFinishedAt(t)
	return wcc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wcc *WallsComicCreate) SetNillableFinishedAt(t *time.Time) *WallsComicCreate {
	if t != nil {
		wcc.SetFinishedAt(*t)
	}
	return wcc
}

// SetIssues sets the "issues" field.
func (wcc *WallsComicCreate) SetIssues(i int) *WallsComicCreate {
	wcc.mutation.SetIssues(i)
	return wcc
}

// SetNillableIssues sets the "issues" field if the given value is not nil.
func (wcc *WallsComicCreate) SetNillableIssues(i *int) *WallsComicCreate {
	if i != nil {
		wcc.SetIssues(*i)
	}
	return wcc
}

// SetID sets the "id" field.
func (wcc *WallsComicCreate) SetID(u uint) *WallsComicCreate {
	wcc.mutation.SetID(u)
	return wcc
}

// Mutation returns the WallsComicMutation object of the builder.
func (wcc *WallsComicCreate) Mutation() *WallsComicMutation {
	return wcc.mutation
}

// Save creates the WallsComic in the database.
func (wcc *WallsComicCreate) Save(ctx context.Context) (*WallsComic, error) {
	wcc.defaults()
	return withHooks(ctx, wcc.sqlSave, wcc.mutation, wcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wcc *WallsComicCreate) SaveX(ctx context.Context) *WallsComic {
	v, err := wcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wcc *WallsComicCreate) Exec(ctx context.Context) error {
	_, err := wcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wcc *WallsComicCreate) ExecX(ctx context.Context) {
	if err := wcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wcc *WallsComicCreate) defaults() {
	if _, ok := wcc.mutation.CreatedAt(); !ok {
		v := wallscomic.DefaultCreatedAt()
		wcc.mutation.SetCreatedAt(v)
	}
	if _, ok := wcc.mutation.UpdatedAt(); !ok {
		v := wallscomic.DefaultUpdatedAt()
		wcc.mutation.SetUpdatedAt(v)
	}
	if _, ok := wcc.mutation.Issues(); !ok {
		v := wallscomic.DefaultIssues
		wcc.mutation.SetIssues(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wcc *WallsComicCreate) check() error {
	if _, ok := wcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WallsComic.created_at"`)}
	}
	if _, ok := wcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WallsComic.updated_at"`)}
	}
	if _, ok := wcc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "WallsComic.username"`)}
	}
	if v, ok := wcc.mutation.Username(); ok {
		if err := wallscomic.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsComic.username": %w`, err)}
		}
	}
	if _, ok := wcc.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "WallsComic.article_id"`)}
	}
	if _, ok := wcc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WallsComic.status"`)}
	}
	if v, ok := wcc.mutation.Status(); ok {
		if err := wallscomic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsComic.status": %w`, err)}
		}
	}
	if _, ok := wcc.mutation.Issues(); !ok {
		return &ValidationError{Name: "issues", err: errors.New(`ent: missing required field "WallsComic.issues"`)}
	}
	if v, ok := wcc.mutation.Issues(); ok {
		if err := wallscomic.IssuesValidator(v); err != nil {
			return &ValidationError{Name: "issues", err: fmt.Errorf(`ent: validator failed for field "WallsComic.issues": %w`, err)}
		}
	}
	return nil
}

func (wcc *WallsComicCreate) sqlSave(ctx context.Context) (*WallsComic, error) {
	if err := wcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wcc.mutation.id = &_node.ID
	wcc.mutation.done = true
	return _node, nil
}

func (wcc *WallsComicCreate) createSpec() (*WallsComic, *sqlgraph.CreateSpec) {
	var (
		_node = &WallsComic{config: wcc.config}
		_spec = sqlgraph.NewCreateSpec(wallscomic.Table, sqlgraph.NewFieldSpec(wallscomic.FieldID, field.TypeUint))
	)
	if id, ok := wcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wcc.mutation.CreatedAt(); ok {
		_spec.SetField(wallscomic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wcc.mutation.UpdatedAt(); ok {
		_spec.SetField(wallscomic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := wcc.mutation.Username(); ok {
		_spec.SetField(wallscomic.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := wcc.mutation.ArticleID(); ok {
		_spec.SetField(wallscomic.FieldArticleID, field.TypeUint, value)
		_node.ArticleID = value
	}
	if value, ok := wcc.mutation.Status(); ok {
		_spec.SetField(wallscomic.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := wcc.mutation.Score(); ok {
		_spec.SetField(wallscomic.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := wcc.mutation.StartedAt(); ok {
		_spec.SetField(wallscomic.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := wcc.mutation.FinishedAt(); ok {
		_spec.SetField(wallscomic.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := wcc.mutation.Issues(); ok {
		_spec.SetField(wallscomic.FieldIssues, field.TypeInt, value)
		_node.Issues = value
	}
	return _node, _spec
}

// WallsComicCreateBulk is the builder for creating many WallsComic entities in bulk.
type WallsComicCreateBulk struct {
	config
	err      error
	builders []*WallsComicCreate
}

// Save creates the WallsComic entities in the database.
func (wccb *WallsComicCreateBulk) Save(ctx context.Context) ([]*WallsComic, error) {
	if wccb.err != nil {
		return nil, wccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wccb.builders))
	nodes := make([]*WallsComic, len(wccb.builders))
	mutators := make([]Mutator, len(wccb.builders))
	for i := range wccb.builders {
		func(i int, root context.Context) {
			builder := wccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WallsComicMutation)
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
					_, err = mutators[i+1].Mutate(root, wccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wccb *WallsComicCreateBulk) SaveX(ctx context.Context) []*WallsComic {
	v, err := wccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wccb *WallsComicCreateBulk) Exec(ctx context.Context) error {
	_, err := wccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wccb *WallsComicCreateBulk) ExecX(ctx context.Context) {
	if err := wccb.Exec(ctx); err != nil {
		panic(err)
	}
}
