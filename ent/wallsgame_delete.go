// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
)

// WallsGameDelete is the builder for deleting a WallsGame entity.
type WallsGameDelete struct {
	config
	hooks    []Hook
	mutation *WallsGameMutation
}

// Where appends a list predicates to the WallsGameDelete builder.
func (wgd *WallsGameDelete) Where(ps ...predicate.WallsGame) *WallsGameDelete {
	wgd.mutation.Where(ps...)
	return wgd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wgd *WallsGameDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wgd.sqlExec, wgd.mutation, wgd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wgd *WallsGameDelete) ExecX(ctx context.Context) int {
	n, err := wgd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wgd *WallsGameDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(wallsgame.Table, sqlgraph.NewFieldSpec(wallsgame.FieldID, field.TypeUint))
	if ps := wgd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wgd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wgd.mutation.done = true
	return affected, err
}

// WallsGameDeleteOne is the builder for deleting a single WallsGame entity.
type WallsGameDeleteOne struct {
	wgd *WallsGameDelete
}

// Where appends a list predicates to the WallsGameDelete builder.
func (wgdo *WallsGameDeleteOne) Where(ps ...predicate.WallsGame) *WallsGameDeleteOne {
	wgdo.wgd.mutation.Where(ps...)
	return wgdo
}

// Exec executes the deletion query.
func (wgdo *WallsGameDeleteOne) Exec(ctx context.Context) error {
	n, err := wgdo.wgd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{wallsgame.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wgdo *WallsGameDeleteOne) ExecX(ctx context.Context) {
	if err := wgdo.Exec(ctx); err != nil {
		panic(err)
	}
}
