// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// GamesReviewDelete is the builder for deleting a GamesReview entity.
type GamesReviewDelete struct {
	config
	hooks    []Hook
	mutation *GamesReviewMutation
}

// Where appends a list predicates to the GamesReviewDelete builder.
func (grd *GamesReviewDelete) Where(ps ...predicate.GamesReview) *GamesReviewDelete {
	grd.mutation.Where(ps...)
	return grd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (grd *GamesReviewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, grd.sqlExec, grd.mutation, grd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (grd *GamesReviewDelete) ExecX(ctx context.Context) int {
	n, err := grd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (grd *GamesReviewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gamesreview.Table, sqlgraph.NewFieldSpec(gamesreview.FieldID, field.TypeUint))
	if ps := grd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, grd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	grd.mutation.done = true
	return affected, err
}

// GamesReviewDeleteOne is the builder for deleting a single GamesReview entity.
type GamesReviewDeleteOne struct {
	grd *GamesReviewDelete
}

// Where appends a list predicates to the GamesReviewDelete builder.
func (grdo *GamesReviewDeleteOne) Where(ps ...predicate.GamesReview) *GamesReviewDeleteOne {
	grdo.grd.mutation.Where(ps...)
	return grdo
}

// Exec executes the deletion query.
func (grdo *GamesReviewDeleteOne) Exec(ctx context.Context) error {
	n, err := grdo.grd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gamesreview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (grdo *GamesReviewDeleteOne) ExecX(ctx context.Context) {
	if err := grdo.Exec(ctx); err != nil {
		panic(err)
	}
}
