// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
)

// WallsBookCreate is the builder for creating a WallsBook entity.
type WallsBookCreate struct {
	config
	mutation *WallsBookMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (wbc *WallsBookCreate) SetCreatedAt(t time.Time) *WallsBookCreate {
	wbc.mutation.SetCreatedAt(t)
	return wbc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wbc *WallsBookCreate) SetNillableCreatedAt(t *time.Time) *WallsBookCreate {
	if t != nil {
		wbc.SetCreatedAt(*t)
	}
	return wbc
}

// SetUpdatedAt sets the "updated_at" field.
func (wbc *WallsBookCreate) SetUpdatedAt(t time.Time) *WallsBookCreate {
	wbc.mutation.SetUpdatedAt(t)
	return wbc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wbc *WallsBookCreate) SetNillableUpdatedAt(t *time.Time) *WallsBookCreate {
	if t != nil {
		wbc.SetUpdatedAt(*t)
	}
	return wbc
}

// SetUsername sets the "username" field.
func (wbc *WallsBookCreate) SetUsername(s string) *WallsBookCreate {
	wbc.mutation.SetUsername(s)
	return wbc
}

// SetArticleID sets the "article_id" field.
func (wbc *WallsBookCreate) SetArticleID(u uint) *WallsBookCreate {
	wbc.mutation.SetArticleID(u)
	return wbc
}

// SetStatus sets the "status" field.
func (wbc *WallsBookCreate) SetStatus(w wallsbook.Status) *WallsBookCreate {
	wbc.mutation.SetStatus(w)
	return wbc
}

// SetScore sets the "score" field.
func (wbc *WallsBookCreate) SetScore(f float64) *WallsBookCreate {
	wbc.mutation.SetScore(f)
	return wbc
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wbc *WallsBookCreate) SetNillableScore(f *float64) *WallsBookCreate {
	if f != nil {
		wbc.SetScore(*f)
	}
	return wbc
}

// SetStartedAt sets the "started_at" field.
func (wbc *WallsBookCreate) SetStartedAt(t time.Time) *WallsBookCreate {
	wbc.mutation.SetStartedAt(t)
	return wbc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wbc *WallsBookCreate) SetNillableStartedAt(t *time.Time) *WallsBookCreate {
	if t != nil {
		wbc.SetStartedAt(*t)
	}
	return wbc
}

// SetFinishedAt sets the "finished_at" field.
func (wbc *WallsBookCreate) SetFinishedAt(t time.Time) *WallsBookCreate {
	wbc.mutation.SetFinishedAt(t)
	return wbc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wbc *WallsBookCreate) SetNillableFinishedAt(t *time.Time) *WallsBookCreate {
	if t != nil {
		wbc.SetFinishedAt(*t)
	}
	return wbc
}

// SetPages sets the "pages" field.
func (wbc *WallsBookCreate) SetPages(i int) *WallsBookCreate {
	wbc.mutation.SetPages(i)
	return wbc
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (wbc *WallsBookCreate) SetNillablePages(i *int) *WallsBookCreate {
	if i != nil {
		wbc.SetPages(*i)
	}
	return wbc
}

// SetID sets the "id" field.
func (wbc *WallsBookCreate) SetID(u uint) *WallsBookCreate {
	wbc.mutation.SetID(u)
	return wbc
}

// Mutation returns the WallsBookMutation object of the builder.
func (wbc *WallsBookCreate) Mutation() *WallsBookMutation {
	return wbc.mutation
}

// Save creates the WallsBook in the database.
func (wbc *WallsBookCreate) Save(ctx context.Context) (*WallsBook, error) {
	wbc.defaults()
	return withHooks(ctx, wbc.sqlSave, wbc.mutation, wbc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wbc *WallsBookCreate) SaveX(ctx context.Context) *WallsBook {
	v, err := wbc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wbc *WallsBookCreate) Exec(ctx context.Context) error {
	_, err := wbc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wbc *WallsBookCreate) ExecX(ctx context.Context) {
	if err := wbc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wbc *WallsBookCreate) defaults() {
	if _, ok := wbc.mutation.CreatedAt(); !ok {
		v := wallsbook.DefaultCreatedAt()
		wbc.mutation.SetCreatedAt(v)
	}
	if _, ok := wbc.mutation.UpdatedAt(); !ok {
		v := wallsbook.DefaultUpdatedAt()
		wbc.mutation.SetUpdatedAt(v)
	}
	if _, ok := wbc.mutation.Pages(); !ok {
		v := wallsbook.DefaultPages
		wbc.mutation.SetPages(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wbc *WallsBookCreate) check() error {
	if _, ok := wbc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WallsBook.created_at"`)}
	}
	if _, ok := wbc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WallsBook.updated_at"`)}
	}
	if _, ok := wbc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "WallsBook.username"`)}
	}
	if v, ok := wbc.mutation.Username(); ok {
		if err := wallsbook.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsBook.username": %w`, err)}
		}
	}
	if _, ok := wbc.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "WallsBook.article_id"`)}
	}
	if _, ok := wbc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WallsBook.status"`)}
	}
	if v, ok := wbc.mutation.Status(); ok {
		if err := wallsbook.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsBook.status": %w`, err)}
		}
	}
	if _, ok := wbc.mutation.Pages(); !ok {
		return &ValidationError{Name: "pages", err: errors.New(`ent: missing required field "WallsBook.pages"`)}
	}
	if v, ok := wbc.mutation.Pages(); ok {
		if err := wallsbook.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "WallsBook.pages": %w`, err)}
		}
	}
	return nil
}

func (wbc *WallsBookCreate) sqlSave(ctx context.Context) (*WallsBook, error) {
	if err := wbc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wbc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wbc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wbc.mutation.id = &_node.ID
	wbc.mutation.done = true
	return _node, nil
}

func (wbc *WallsBookCreate) createSpec() (*WallsBook, *sqlgraph.CreateSpec) {
	var (
		_node = &WallsBook{config: wbc.config}
		_spec = sqlgraph.NewCreateSpec(wallsbook.Table, sqlgraph.NewFieldSpec(wallsbook.FieldID, field.TypeUint))
	)
	if id, ok := wbc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wbc.mutation.CreatedAt(); ok {
		_spec.SetField(wallsbook.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wbc.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsbook.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := wbc.mutation.Username(); ok {
		_spec.SetField(wallsbook.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := wbc.mutation.ArticleID(); ok {
		_spec.SetField(wallsbook.FieldArticleID, field.TypeUint, value)
		_node.ArticleID = value
	}
	if value, ok := wbc.mutation.Status(); ok {
		_spec.SetField(wallsbook.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := wbc.mutation.Score(); ok {
		_spec.SetField(wallsbook.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := wbc.mutation.StartedAt(); ok {
		_spec.SetField(wallsbook.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := wbc.mutation.FinishedAt(); ok {
		_spec.SetField(wallsbook.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := wbc.mutation.Pages(); ok {
		_spec.SetField(wallsbook.FieldPages, field.TypeInt, value)
		_node.Pages = value
	}
	return _node, _spec
}

// WallsBookCreateBulk is the builder for creating many WallsBook entities in bulk.
type WallsBookCreateBulk struct {
	config
	err      error
	builders []*WallsBookCreate
}

// Save creates the WallsBook entities in the database.
func (wbcb *WallsBookCreateBulk) Save(ctx context.Context) ([]*WallsBook, error) {
	if wbcb.err != nil {
		return nil, wbcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wbcb.builders))
	nodes := make([]*WallsBook, len(wbcb.builders))
	mutators := make([]Mutator, len(wbcb.builders))
	for i := range wbcb.builders {
		func(i int, root context.Context) {
			builder := wbcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WallsBookMutation)
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
					_, err = mutators[i+1].Mutate(root, wbcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wbcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wbcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wbcb *WallsBookCreateBulk) SaveX(ctx context.Context) []*WallsBook {
	v, err := wbcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wbcb *WallsBookCreateBulk) Exec(ctx context.Context) error {
	_, err := wbcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wbcb *WallsBookCreateBulk) ExecX(ctx context.Context) {
	if err := wbcb.Exec(ctx); err != nil {
		panic(err)
	}
}
