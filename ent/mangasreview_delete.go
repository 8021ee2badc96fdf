// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/mangasreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// MangasReviewDelete is the builder for deleting a MangasReview entity.
type MangasReviewDelete struct {
	config
	hooks    []Hook
	mutation *MangasReviewMutation
}

// Where appends a list predicates to the MangasReviewDelete builder.
func (mrd *MangasReviewDelete) Where(ps ...predicate.MangasReview) *MangasReviewDelete {
	mrd.mutation.Where(ps...)
	return mrd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (mrd *MangasReviewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, mrd.sqlExec, mrd.mutation, mrd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (mrd *MangasReviewDelete) ExecX(ctx context.Context) int {
	n, err := mrd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (mrd *MangasReviewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mangasreview.Table, sqlgraph.NewFieldSpec(mangasreview.FieldID, field.TypeUint))
	if ps := mrd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, mrd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	mrd.mutation.done = true
	return affected, err
}

// MangasReviewDeleteOne is the builder for deleting a single MangasReview entity.
type MangasReviewDeleteOne struct {
	mrd *MangasReviewDelete
}

// Where appends a list predicates to the MangasReviewDelete builder.
func (mrdo *MangasReviewDeleteOne) Where(ps ...predicate.MangasReview) *MangasReviewDeleteOne {
	mrdo.mrd.mutation.Where(ps...)
	return mrdo
}

// Exec executes the deletion query.
func (mrdo *MangasReviewDeleteOne) Exec(ctx context.Context) error {
	n, err := mrdo.mrd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mangasreview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (mrdo *MangasReviewDeleteOne) ExecX(ctx context.Context) {
	if err := mrdo.Exec(ctx); err != nil {
		panic(err)
	}
}
