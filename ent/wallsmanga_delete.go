// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsmanga"
)

// WallsMangaDelete is the builder for deleting a WallsManga entity.
type WallsMangaDelete struct {
	config
	hooks    []Hook
	mutation *WallsMangaMutation
}

// Where appends a list predicates to the WallsMangaDelete builder.
func (wmd *WallsMangaDelete) Where(ps ...predicate.WallsManga) *WallsMangaDelete {
	wmd.mutation.Where(ps...)
	return wmd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wmd *WallsMangaDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wmd.sqlExec, wmd.mutation, wmd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wmd *WallsMangaDelete) ExecX(ctx context.Context) int {
	n, err := wmd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wmd *WallsMangaDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(wallsmanga.Table, sqlgraph.NewFieldSpec(wallsmanga.FieldID, field.TypeUint))
	if ps := wmd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wmd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wmd.mutation.done = true
	return affected, err
}

// WallsMangaDeleteOne is the builder for deleting a single WallsManga entity.
type WallsMangaDeleteOne struct {
	wmd *WallsMangaDelete
}

// Where appends a list predicates to the WallsMangaDelete builder.
func (wmdo *WallsMangaDeleteOne) Where(ps ...predicate.WallsManga) *WallsMangaDeleteOne {
	wmdo.wmd.mutation.Where(ps...)
	return wmdo
}

// Exec executes the deletion query.
func (wmdo *WallsMangaDeleteOne) Exec(ctx context.Context) error {
	n, err := wmdo.wmd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{wallsmanga.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wmdo *WallsMangaDeleteOne) ExecX(ctx context.Context) {
	if err := wmdo.Exec(ctx); err != nil {
		panic(err)
	}
}
