// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
)

// WallsBookDelete is the builder for deleting a WallsBook entity.
type WallsBookDelete struct {
	config
	hooks    []Hook
	mutation *WallsBookMutation
}

// Where appends a list predicates to the WallsBookDelete builder.
func (wbd *WallsBookDelete) Where(ps ...predicate.WallsBook) *WallsBookDelete {
	wbd.mutation.Where(ps...)
	return wbd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wbd *WallsBookDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wbd.sqlExec, wbd.mutation, wbd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wbd *WallsBookDelete) ExecX(ctx context.Context) int {
	n, err := wbd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wbd *WallsBookDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(wallsbook.Table, sqlgraph.NewFieldSpec(wallsbook.FieldID, field.TypeUint))
	if ps := wbd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wbd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wbd.mutation.done = true
	return affected, err
}

// WallsBookDeleteOne is the builder for deleting a single WallsBook entity.
type WallsBookDeleteOne struct {
	wbd *WallsBookDelete
}

// Where appends a list predicates to the WallsBookDelete builder.
func (wbdo *WallsBookDeleteOne) Where(ps ...predicate.WallsBook) *WallsBookDeleteOne {
	wbdo.wbd.mutation.Where(ps...)
	return wbdo
}

// Exec executes the deletion query.
func (wbdo *WallsBookDeleteOne) Exec(ctx context.Context) error {
	n, err := wbdo.wbd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{wallsbook.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wbdo *WallsBookDeleteOne) ExecX(ctx context.Context) {
	if err := wbdo.Exec(ctx); err != nil {
		panic(err)
	}
}
