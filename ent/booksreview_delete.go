// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// BooksReviewDelete is the builder for deleting a BooksReview entity.
type BooksReviewDelete struct {
	config
	hooks    []Hook
	mutation *BooksReviewMutation
}

// Where appends a list predicates to the BooksReviewDelete builder.
func (brd *BooksReviewDelete) Where(ps ...predicate.BooksReview) *BooksReviewDelete {
	brd.mutation.Where(ps...)
	return brd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (brd *BooksReviewDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, brd.sqlExec, brd.mutation, brd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (brd *BooksReviewDelete) ExecX(ctx context.Context) int {
	n, err := brd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (brd *BooksReviewDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(booksreview.Table, sqlgraph.NewFieldSpec(booksreview.FieldID, field.TypeUint))
	if ps := brd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, brd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	brd.mutation.done = true
	return affected, err
}

// BooksReviewDeleteOne is the builder for deleting a single BooksReview entity.
type BooksReviewDeleteOne struct {
	brd *BooksReviewDelete
}

// Where appends a list predicates to the BooksReviewDelete builder.
func (brdo *BooksReviewDeleteOne) Where(ps ...predicate.BooksReview) *BooksReviewDeleteOne {
	brdo.brd.mutation.Where(ps...)
	return brdo
}

// Exec executes the deletion query.
func (brdo *BooksReviewDeleteOne) Exec(ctx context.Context) error {
	n, err := brdo.brd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{booksreview.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (brdo *BooksReviewDeleteOne) ExecX(ctx context.Context) {
	if err := brdo.Exec(ctx); err != nil {
		panic(err)
	}
}
