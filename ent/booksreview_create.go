// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
)

// BooksReviewCreate is the builder for creating a BooksReview entity.
type BooksReviewCreate struct {
	config
	mutation *BooksReviewMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (brc *BooksReviewCreate) SetCreatedAt(t time.Time) *BooksReviewCreate {
	brc.mutation.SetCreatedAt(t)
	return brc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (brc *BooksReviewCreate) SetNillableCreatedAt(t *time.Time) *BooksReviewCreate {
	if t != nil {
		brc.SetCreatedAt(*t)
	}
	return brc
}

// SetUpdatedAt sets the "updated_at" field.
func (brc *BooksReviewCreate) SetUpdatedAt(t time.Time) *BooksReviewCreate {
	brc.mutation.SetUpdatedAt(t)
	return brc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (brc *BooksReviewCreate) SetNillableUpdatedAt(t *time.Time) *BooksReviewCreate {
	if t != nil {
		brc.SetUpdatedAt(*t)
	}
	return brc
}

// SetUsername sets the "username" field.
func (brc *BooksReviewCreate) SetUsername(s string) *BooksReviewCreate {
	brc.mutation.SetUsername(s)
	return brc
}

// SetArticleID sets the "article_id" field.
func (brc *BooksReviewCreate) SetArticleID(u uint) *BooksReviewCreate {
	brc.mutation.SetArticleID(u)
	return brc
}

// SetReview sets the "review" field.
func (brc *BooksReviewCreate) SetReview(s string) *BooksReviewCreate {
	brc.mutation.SetReview(s)
	return brc
}

// SetReviewHTML sets the "review_html" field.
func (brc *BooksReviewCreate) SetReviewHTML(s string) *BooksReviewCreate {
	brc.mutation.SetReviewHTML(s)
	return brc
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (brc *BooksReviewCreate) SetNillableReviewHTML(s *string) *BooksReviewCreate {
	if s != nil {
		brc.SetReviewHTML(*s)
	}
	return brc
}

// SetOverall sets the "overall" field.
func (brc *BooksReviewCreate) SetOverall(i int) *BooksReviewCreate {
	brc.mutation.SetOverall(i)
	return brc
}

// SetArt sets the "art" field.
func (brc *BooksReviewCreate) SetArt(i int) *BooksReviewCreate {
	brc.mutation.SetArt(i)
	return brc
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (brc *BooksReviewCreate) SetNillableArt(i *int) *BooksReviewCreate {
	if i != nil {
		brc.SetArt(*i)
	}
	return brc
}

// SetCharacters sets the "characters" field.
func (brc *BooksReviewCreate) SetCharacters(i int) *BooksReviewCreate {
	brc.mutation.SetCharacters(i)
	return brc
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (brc *BooksReviewCreate) SetNillableCharacters(i *int) *BooksReviewCreate {
	if i != nil {
		brc.SetCharacters(*i)
	}
	return brc
}

// SetStory sets the "story" field.
func (brc *BooksReviewCreate) SetStory(i int) *BooksReviewCreate {
	brc.mutation.SetStory(i)
	return brc
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (brc *BooksReviewCreate) SetNillableStory(i *int) *BooksReviewCreate {
	if i != nil {
		brc.SetStory(*i)
	}
	return brc
}

// SetEnjoyment sets the "enjoyment" field.
func (brc *BooksReviewCreate) SetEnjoyment(i int) *BooksReviewCreate {
	brc.mutation.SetEnjoyment(i)
	return brc
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (brc *BooksReviewCreate) SetNillableEnjoyment(i *int) *BooksReviewCreate {
	if i != nil {
		brc.SetEnjoyment(*i)
	}
	return brc
}

// SetID sets the "id" field.
func (brc *BooksReviewCreate) SetID(u uint) *BooksReviewCreate {
	brc.mutation.SetID(u)
	return brc
}

// Mutation returns the BooksReviewMutation object of the builder.
func (brc *BooksReviewCreate) Mutation() *BooksReviewMutation {
	return brc.mutation
}

// Save creates the BooksReview in the database.
func (brc *BooksReviewCreate) Save(ctx context.Context) (*BooksReview, error) {
	brc.defaults()
	return withHooks(ctx, brc.sqlSave, brc.mutation, brc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (brc *BooksReviewCreate) SaveX(ctx context.Context) *BooksReview {
	v, err := brc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (brc *BooksReviewCreate) Exec(ctx context.Context) error {
	_, err := brc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (brc *BooksReviewCreate) ExecX(ctx context.Context) {
	if err := brc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (brc *BooksReviewCreate) defaults() {
	if _, ok := brc.mutation.CreatedAt(); !ok {
		v := booksreview.DefaultCreatedAt()
		brc.mutation.SetCreatedAt(v)
	}
	if _, ok := brc.mutation.UpdatedAt(); !ok {
		v := booksreview.DefaultUpdatedAt()
		brc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (brc *BooksReviewCreate) check() error {
	if _, ok := brc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BooksReview.created_at"`)}
	}
	if _, ok := brc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BooksReview.updated_at"`)}
	}
	if _, ok := brc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "BooksReview.username"`)}
	}
	if v, ok := brc.mutation.Username(); ok {
		if err := booksreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "BooksReview.username": %w`, err)}
		}
	}
	if _, ok := brc.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "BooksReview.article_id"`)}
	}
	if _, ok := brc.mutation.Review(); !ok {
		return &ValidationError{Name: "review", err: errors.New(`ent: missing required field "BooksReview.review"`)}
	}
	if v, ok := brc.mutation.Review(); ok {
		if err := booksreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "BooksReview.review": %w`, err)}
		}
	}
	if _, ok := brc.mutation.Overall(); !ok {
		return &ValidationError{Name: "overall", err: errors.New(`ent: missing required field "BooksReview.overall"`)}
	}
	return nil
}

func (brc *BooksReviewCreate) sqlSave(ctx context.Context) (*BooksReview, error) {
	if err := brc.check(); err != nil {
		return nil, err
	}
	_node, _spec := brc.createSpec()
	if err := sqlgraph.CreateNode(ctx, brc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	brc.mutation.id = &_node.ID
	brc.mutation.done = true
	return _node, nil
}

func (brc *BooksReviewCreate) createSpec() (*BooksReview, *sqlgraph.CreateSpec) {
	var (
		_node = &BooksReview{config: brc.config}
		_spec = sqlgraph.NewCreateSpec(booksreview.Table, sqlgraph.NewFieldSpec(booksreview.FieldID, field.TypeUint))
	)
	if id, ok := brc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := brc.mutation.CreatedAt(); ok {
		_spec.SetField(booksreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := brc.mutation.UpdatedAt(); ok {
		_spec.SetField(booksreview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := brc.mutation.Username(); ok {
		_spec.SetField(booksreview.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := brc.mutation.ArticleID(); ok {
		_spec.SetField(booksreview.FieldArticleID, field.TypeUint, value)
		_node.ArticleID = value
	}
	if value, ok := brc.mutation.Review(); ok {
		_spec.SetField(booksreview.FieldReview, field.TypeString, value)
		_node.Review = value
	}
	if value, ok := brc.mutation.ReviewHTML(); ok {
		_spec.SetField(booksreview.FieldReviewHTML, field.TypeString, value)
		_node.ReviewHTML = value
	}
	if value, ok := brc.mutation.Overall(); ok {
		_spec.SetField(booksreview.FieldOverall, field.TypeInt, value)
		_node.Overall = value
	}
	if value, ok := brc.mutation.Art(); ok {
		_spec.SetField(booksreview.FieldArt, field.TypeInt, value)
		_node.Art = &value
	}
	if value, ok := brc.mutation.Characters(); ok {
		_spec.SetField(booksreview.FieldCharacters, field.TypeInt, value)
		_node.Characters = &value
	}
	if value, ok := brc.mutation.Story(); ok {
		_spec.SetField(booksreview.FieldStory, field.TypeInt, value)
		_node.Story = &value
	}
	if value, ok := brc.mutation.Enjoyment(); ok {
		_spec.SetField(booksreview.FieldEnjoyment, field.TypeInt, value)
		_node.Enjoyment = &value
	}
	return _node, _spec
}

// BooksReviewCreateBulk is the builder for creating many BooksReview entities in bulk.
type BooksReviewCreateBulk struct {
	config
	err      error
	builders []*BooksReviewCreate
}

// Save creates the BooksReview entities in the database.
func (brcb *BooksReviewCreateBulk) Save(ctx context.Context) ([]*BooksReview, error) {
	if brcb.err != nil {
		return nil, brcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(brcb.builders))
	nodes := make([]*BooksReview, len(brcb.builders))
	mutators := make([]Mutator, len(brcb.builders))
	for i := range brcb.builders {
		func(i int, root context.Context) {
			builder := brcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BooksReviewMutation)
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
					_, err = mutators[i+1].Mutate(root, brcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, brcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, brcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (brcb *BooksReviewCreateBulk) SaveX(ctx context.Context) []*BooksReview {
	v, err := brcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (brcb *BooksReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := brcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (brcb *BooksReviewCreateBulk) ExecX(ctx context.Context) {
	if err := brcb.Exec(ctx); err != nil {
		panic(err)
	}
}
