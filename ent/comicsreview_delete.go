// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ComicsReviewDelete is the builder for deleting a ComicsReview entity.
type ComicsReviewDelete struct {
	config
	hooks    []Hook
	mutation *ComicsReviewMutation
}

// Where appends a list predicates to the ComicsReviewDelete builder.
func (crd *ComicsReviewDelete) Where(ps ...predicate.ComicsReview) *ComicsReviewDelete {
	crd.mutation.Where(ps...)
	return crd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (crd *ComicsReviewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, crd.sqlExec, crd.mutation, crd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (crd *ComicsReviewDelete) ExecX(ctx context.Context) int {
	n, err := crd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (crd *ComicsReviewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(comicsreview.Table, sqlgraph.NewFieldSpec(comicsreview.FieldID, field.TypeUint))
	if ps := crd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, crd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	crd.mutation.done = true
	return affected, err
}

// ComicsReviewDeleteOne is the builder for deleting a single ComicsReview entity.
type ComicsReviewDeleteOne struct {
	crd *ComicsReviewDelete
}

// Where appends a list predicates to the ComicsReviewDelete builder.
func (crdo *ComicsReviewDeleteOne) Where(ps ...predicate.ComicsReview) *ComicsReviewDeleteOne {
	crdo.crd.mutation.Where(ps...)
	return crdo
}

// Exec executes the deletion query.
func (crdo *ComicsReviewDeleteOne) Exec(ctx context.Context) error {
	n, err := crdo.crd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{comicsreview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (crdo *ComicsReviewDeleteOne) ExecX(ctx context.Context) {
	if err := crdo.Exec(ctx); err != nil {
		panic(err)
	}
}
