// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
)

// ComicsReviewCreate is the builder for creating a ComicsReview entity.
type ComicsReviewCreate struct {
	config
	mutation *ComicsReviewMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (crc *ComicsReviewCreate) SetCreatedAt(t time.Time) *ComicsReviewCreate {
	crc.mutation.SetCreatedAt(t)
	return crc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (crc *ComicsReviewCreate) SetNillableCreatedAt(t *time.Time) *ComicsReviewCreate {
	if t != nil {
		crc.SetCreatedAt(*t)
	}
	return crc
}

// SetUpdatedAt sets the "updated_at" field.
func (crc *ComicsReviewCreate) SetUpdatedAt(t time.Time) *ComicsReviewCreate {
	crc.mutation.SetUpdatedAt(t)
	return crc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (crc *ComicsReviewCreate) SetNillableUpdatedAt(t *time.Time) *ComicsReviewCreate {
	if t != nil {
		crc.SetUpdatedAt(*t)
	}
	return crc
}

// SetUsername sets the "username" field.
func (crc *ComicsReviewCreate) SetUsername(s string) *ComicsReviewCreate {
	crc.mutation.SetUsername(s)
	return crc
}

// SetArticleID sets the "article_id" field.
func (crc *ComicsReviewCreate) SetArticleID(u uint) *ComicsReviewCreate {
	crc.mutation.SetArticleID(u)
	return crc
}

// SetReview sets the "review" field.
func (crc *ComicsReviewCreate) SetReview(s string) *ComicsReviewCreate {
	crc.mutation.SetReview(s)
	return crc
}

// SetReviewHTML sets the "review_html" field.
func (crc *ComicsReviewCreate) SetReviewHTML(s string) *ComicsReviewCreate {
	crc.mutation.SetReviewHTML(s)
	return crc
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (crc *ComicsReviewCreate) SetNillableReviewHTML(s *string) *ComicsReviewCreate {
	if s != nil {
		crc.SetReviewHTML(*s)
	}
	return crc
}

// SetOverall sets the "overall" field.
func (crc *ComicsReviewCreate) SetOverall(i int) *ComicsReviewCreate {
	crc.mutation.SetOverall(i)
	return crc
}

// SetArt sets the "art" field.
func (crc *ComicsReviewCreate) SetArt(i int) *ComicsReviewCreate {
	crc.mutation.SetArt(i)
	return crc
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (crc *ComicsReviewCreate) SetNillableArt(i *int) *ComicsReviewCreate {
	if i != nil {
		crc.SetArt(*i)
	}
	return crc
}

// SetCharacters sets the "characters" field.
func (crc *ComicsReviewCreate) SetCharacters(i int) *ComicsReviewCreate {
	crc.mutation.SetCharacters(i)
	return crc
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (crc *ComicsReviewCreate) SetNillableCharacters(i *int) *ComicsReviewCreate {
	if i != nil {
		crc.SetCharacters(*i)
	}
	return crc
}

// SetStory sets the "story" field.
func (crc *ComicsReviewCreate) SetStory(i int) *ComicsReviewCreate {
	crc.mutation.SetStory(i)
	return crc
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (crc *ComicsReviewCreate) SetNillableStory(i *int) *ComicsReviewCreate {
	if i != nil {
		crc.SetStory(*i)
	}
	return crc
}

// SetEnjoyment sets the "enjoyment" field.
func (crc *ComicsReviewCreate) SetEnjoyment(i int) *ComicsReviewCreate {
	crc.mutation.SetEnjoyment(i)
	return crc
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (crc *ComicsReviewCreate) SetNillableEnjoyment(i *int) *ComicsReviewCreate {
	if i != nil {
		crc.SetEnjoyment(*i)
	}
	return crc
}

// SetID sets the "id" field.
func (crc *ComicsReviewCreate) SetID(u uint) *ComicsReviewCreate {
	crc.mutation.SetID(u)
	return crc
}

// Mutation returns the ComicsReviewMutation object of the builder.
func (crc *ComicsReviewCreate) Mutation() *ComicsReviewMutation {
	return crc.mutation
}

// Save creates the ComicsReview in the database.
func (crc *ComicsReviewCreate) Save(ctx context.Context) (*ComicsReview, error) {
	crc.defaults()
	return withHooks(ctx, crc.sqlSave, crc.mutation, crc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (crc *ComicsReviewCreate) SaveX(ctx context.Context) *ComicsReview {
	v, err := crc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (crc *ComicsReviewCreate) Exec(ctx context.Context) error {
	_, err := crc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (crc *ComicsReviewCreate) ExecX(ctx context.Context) {
	if err := crc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (crc *ComicsReviewCreate) defaults() {
	if _, ok := crc.mutation.CreatedAt(); !ok {
		v := comicsreview.DefaultCreatedAt()
		crc.mutation.SetCreatedAt(v)
	}
	if _, ok := crc.mutation.UpdatedAt(); !ok {
		v := comicsreview.DefaultUpdatedAt()
		crc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (crc *ComicsReviewCreate) check() error {
	if _, ok := crc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ComicsReview.created_at"`)}
	}
	if _, ok := crc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ComicsReview.updated_at"`)}
	}
	if _, ok := crc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "ComicsReview.username"`)}
	}
	if v, ok := crc.mutation.Username(); ok {
		if err := comicsreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "ComicsReview.username": %w`, err)}
		}
	}
	if _, ok := crc.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "ComicsReview.article_id"`)}
	}
	if _, ok := crc.mutation.Review(); !ok {
		return &ValidationError{Name: "review", err: errors.New(`ent: missing required field "ComicsReview.review"`)}
	}
	if v, ok := crc.mutation.Review(); ok {
		if err := comicsreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "ComicsReview.review": %w`, err)}
		}
	}
	if _, ok := crc.mutation.Overall(); !ok {
		return &ValidationError{Name: "overall", err: errors.New(`ent: missing required field "ComicsReview.overall"`)}
	}
	return nil
}

func (crc *ComicsReviewCreate) sqlSave(ctx context.Context) (*ComicsReview, error) {
	if err := crc.check(); err != nil {
		return nil, err
	}
	_node, _spec := crc.createSpec()
	if err := sqlgraph.CreateNode(ctx, crc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	crc.mutation.id = &_node.ID
	crc.mutation.done = true
	return _node, nil
}

func (crc *ComicsReviewCreate) createSpec() (*ComicsReview, *sqlgraph.CreateSpec) {
	var (
		_node = &ComicsReview{config: crc.config}
		_spec = sqlgraph.NewCreateSpec(comicsreview.Table, sqlgraph.NewFieldSpec(comicsreview.FieldID, field.TypeUint))
	)
	if id, ok := crc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := crc.mutation.CreatedAt(); ok {
		_spec.SetField(comicsreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := crc.mutation.UpdatedAt(); ok {
		_spec.SetField(comicsreview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := crc.mutation.Username(); ok {
		_spec.SetField(comicsreview.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := crc.mutation.ArticleID(); ok {
		_spec.SetField(comicsreview.FieldArticleID, field.TypeUint, value)
		_node.ArticleID = value
	}
	if value, ok := crc.mutation.Review(); ok {
		_spec.SetField(comicsreview.FieldReview, field.TypeString, value)
		_node.Review = value
	}
	if value, ok := crc.mutation.ReviewHTML(); ok {
		_spec.SetField(comicsreview.FieldReviewHTML, field.TypeString, value)
		_node.ReviewHTML = value
	}
	if value, ok := crc.mutation.Overall(); ok {
		_spec.SetField(comicsreview.FieldOverall, field.TypeInt, value)
		_node.Overall = value
	}
	if value, ok := crc.mutation.Art(); ok {
		_spec.SetField(comicsreview.FieldArt, field.TypeInt, value)
		_node.Art = &value
	}
	if value, ok := crc.mutation.Characters(); ok {
		_spec.SetField(comicsreview.FieldCharacters, field.TypeInt, value)
		_node.Characters = &value
	}
	if value, ok := crc.mutation.Story(); ok {
		_spec.SetField(comicsreview.FieldStory, field.TypeInt, value)
		_node.Story = &value
	}
	if value, ok := crc.mutation.Enjoyment(); ok {
		_spec.SetField(comicsreview.FieldEnjoyment, field.TypeInt, value)
		_node.Enjoyment = &value
	}
	return _node, _spec
}

// ComicsReviewCreateBulk is the builder for creating many ComicsReview entities in bulk.
type ComicsReviewCreateBulk struct {
	config
	err      error
	builders []*ComicsReviewCreate
}

// Save creates the ComicsReview entities in the database.
func (crcb *ComicsReviewCreateBulk) Save(ctx context.Context) ([]*ComicsReview, error) {
	if crcb.err != nil {
		return nil, crcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(crcb.builders))
	nodes := make([]*ComicsReview, len(crcb.builders))
	mutators := make([]Mutator, len(crcb.builders))
	for i := range crcb.builders {
		func(i int, root context.Context) {
			builder := crcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComicsReviewMutation)
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
					_, err = mutators[i+1].Mutate(root, crcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, crcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, crcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (crcb *ComicsReviewCreateBulk) SaveX(ctx context.Context) []*ComicsReview {
	v, err := crcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (crcb *ComicsReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := crcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (crcb *ComicsReviewCreateBulk) ExecX(ctx context.Context) {
	if err := crcb.Exec(ctx); err != nil {
		panic(err)
	}
}
