// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/mangasreview"
)

// MangasReviewCreate is the builder for creating a MangasReview entity.
type MangasReviewCreate struct {
	config
	mutation *MangasReviewMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (mrc *MangasReviewCreate) SetCreatedAt(t time.Time) *MangasReviewCreate {
	mrc.mutation.SetCreatedAt(t)
	return mrc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mrc *MangasReviewCreate) SetNillableCreatedAt(t *time.Time) *MangasReviewCreate {
	if t != nil {
		mrc.SetCreatedAt(*t)
	}
	return mrc
}

// SetUpdatedAt sets the "updated_at" field.
func (mrc *MangasReviewCreate) SetUpdatedAt(t time.Time) *MangasReviewCreate {
	mrc.mutation.SetUpdatedAt(t)
	return mrc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (mrc *MangasReviewCreate) SetNillableUpdatedAt(t *time.Time) *MangasReviewCreate {
	if t != nil {
		mrc.SetUpdatedAt(*t)
	}
	return mrc
}

// SetUsername sets the "username" field.
func (mrc *MangasReviewCreate) SetUsername(s string) *MangasReviewCreate {
	mrc.mutation.SetUsername(s)
	return mrc
}

// SetArticleID sets the "article_id" field.
func (mrc *MangasReviewCreate) SetArticleID(u uint) *MangasReviewCreate {
	mrc.mutation.SetArticleID(u)
	return mrc
}

// SetReview sets the "review" field.
func (mrc *MangasReviewCreate) SetReview(s string) *MangasReviewCreate {
	mrc.mutation.SetReview(s)
	return mrc
}

// SetReviewHTML sets the "review_html" field.
func (mrc *MangasReviewCreate) SetReviewHTML(s string) *MangasReviewCreate {
	mrc.mutation.SetReviewHTML(s)
	return mrc
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (mrc *MangasReviewCreate) SetNillableReviewHTML(s *string) *MangasReviewCreate {
	if s != nil {
		mrc.SetReviewHTML(*s)
	}
	return mrc
}

// SetOverall sets the "overall" field.
func (mrc *MangasReviewCreate) SetOverall(i int) *MangasReviewCreate {
	mrc.mutation.SetOverall(i)
	return mrc
}

// SetArt sets the "art" field.
func (mrc *MangasReviewCreate) SetArt(i int) *MangasReviewCreate {
	mrc.mutation.SetArt(i)
	return mrc
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (mrc *MangasReviewCreate) SetNillableArt(i *int) *MangasReviewCreate {
	if i != nil {
		mrc.SetArt(*i)
	}
	return mrc
}

// SetCharacters sets the "characters" field.
func (mrc *MangasReviewCreate) SetCharacters(i int) *MangasReviewCreate {
	mrc.mutation.SetCharacters(i)
	return mrc
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (mrc *MangasReviewCreate) SetNillableCharacters(i *int) *MangasReviewCreate {
	if i != nil {
		mrc.SetCharacters(*i)
	}
	return mrc
}

// SetStory sets the "story" field.
func (mrc *MangasReviewCreate) SetStory(i int) *MangasReviewCreate {
	mrc.mutation.SetStory(i)
	return mrc
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (mrc *MangasReviewCreate) SetNillableStory(i *int) *MangasReviewCreate {
	if i != nil {
		mrc.SetStory(*i)
	}
	return mrc
}

// SetEnjoyment sets the "enjoyment" field.
func (mrc *MangasReviewCreate) SetEnjoyment(i int) *MangasReviewCreate {
	mrc.mutation.SetEnjoyment(i)
	return mrc
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (mrc *MangasReviewCreate) SetNillableEnjoyment(i *int) *MangasReviewCreate {
	if i != nil {
		mrc.SetEnjoyment(*i)
	}
	return mrc
}

// SetID sets the "id" field.
func (mrc *MangasReviewCreate) SetID(u uint) *MangasReviewCreate {
	mrc.mutation.SetID(u)
	return mrc
}

// Mutation returns the MangasReviewMutation object of the builder.
func (mrc *MangasReviewCreate) Mutation() *MangasReviewMutation {
	return mrc.mutation
}

// Save creates the MangasReview in the database.
func (mrc *MangasReviewCreate) Save(ctx context.Context) (*MangasReview, error) {
	mrc.defaults()
	return withHooks(ctx, mrc.sqlSave, mrc.mutation, mrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mrc *MangasReviewCreate) SaveX(ctx context.Context) *MangasReview {
	v, err := mrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mrc *MangasReviewCreate) Exec(ctx context.Context) error {
	_, err := mrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mrc *MangasReviewCreate) ExecX(ctx context.Context) {
	if err := mrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mrc *MangasReviewCreate) defaults() {
	if _, ok := mrc.mutation.CreatedAt(); !ok {
		v := mangasreview.DefaultCreatedAt()
		mrc.mutation.SetCreatedAt(v)
	}
	if _, ok := mrc.mutation.UpdatedAt(); !ok {
		v := mangasreview.DefaultUpdatedAt()
		mrc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mrc *MangasReviewCreate) check() error {
	if _, ok := mrc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MangasReview.created_at"`)}
	}
	if _, ok := mrc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MangasReview.updated_at"`)}
	}
	if _, ok := mrc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "MangasReview.username"`)}
	}
	if v, ok := mrc.mutation.Username(); ok {
		if err := mangasreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "MangasReview.username": %w`, err)}
		}
	}
	if _, ok := mrc.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "MangasReview.article_id"`)}
	}
	if _, ok := mrc.mutation.Review(); !ok {
		return &ValidationError{Name: "review", err: errors.New(`ent: missing required field "MangasReview.review"`)}
	}
	if v, ok := mrc.mutation.Review(); ok {
		if err := mangasreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "MangasReview.review": %w`, err)}
		}
	}
	if _, ok := mrc.mutation.Overall(); !ok {
		return &ValidationError{Name: "overall", err: errors.New(`ent: missing required field "MangasReview.overall"`)}
	}
	return nil
}

func (mrc *MangasReviewCreate) sqlSave(ctx context.Context) (*MangasReview, error) {
	if err := mrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	mrc.mutation.id = &_node.ID
	mrc.mutation.done = true
	return _node, nil
}

func (mrc *MangasReviewCreate) createSpec() (*MangasReview, *sqlgraph.CreateSpec) {
	var (
		_node = &MangasReview{config: mrc.config}
		_spec = sqlgraph.NewCreateSpec(mangasreview.Table, sqlgraph.NewFieldSpec(mangasreview.FieldID, field.TypeUint))
	)
	if id, ok := mrc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := mrc.mutation.CreatedAt(); ok {
		_spec.SetField(mangasreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := mrc.mutation.UpdatedAt(); ok {
		_spec.SetField(mangasreview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := mrc.mutation.Username(); ok {
		_spec.SetField(mangasreview.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := mrc.mutation.ArticleID(); ok {
		_spec.SetField(mangasreview.FieldArticleID, field.TypeUint, value)
		_node.ArticleID = value
	}
	if value, ok := mrc.mutation.Review(); ok {
		_spec.SetField(mangasreview.FieldReview, field.TypeString, value)
		_node.Review = value
	}
	if value, ok := mrc.mutation.ReviewHTML(); ok {
		_spec.SetField(mangasreview.FieldReviewHTML, field.TypeString, value)
		_node.ReviewHTML = value
	}
	if value, ok := mrc.mutation.Overall(); ok {
		_spec.SetField(mangasreview.FieldOverall, field.TypeInt, value)
		_node.Overall = value
	}
	if value, ok := mrc.mutation.Art(); ok {
		_spec.SetField(mangasreview.FieldArt, field.TypeInt, value)
		_node.Art = &value
	}
	if value, ok := mrc.mutation.Characters(); ok {
		_spec.SetField(mangasreview.FieldCharacters, field.TypeInt, value)
		_node.Characters = &value
	}
	if value, ok := mrc.mutation.Story(); ok {
		_spec.SetField(mangasreview.FieldStory, field.TypeInt, value)
		_node.Story = &value
	}
	if value, ok := mrc.mutation.Enjoyment(); ok {
		_spec.SetField(mangasreview.FieldEnjoyment, field.TypeInt, value)
		_node.Enjoyment = &value
	}
	return _node, _spec
}

// MangasReviewCreateBulk is the builder for creating many MangasReview entities in bulk.
type MangasReviewCreateBulk struct {
	config
	err      error
	builders []*MangasReviewCreate
}

// Save creates the MangasReview entities in the database.
func (mrcb *MangasReviewCreateBulk) Save(ctx context.Context) ([]*MangasReview, error) {
	if mrcb.err != nil {
		return nil, mrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mrcb.builders))
	nodes := make([]*MangasReview, len(mrcb.builders))
	mutators := make([]Mutator, len(mrcb.builders))
	for i := range mrcb.builders {
		func(i int, root context.Context) {
			builder := mrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MangasReviewMutation)
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
					_, err = mutators[i+1].Mutate(root, mrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mrcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, mrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mrcb *MangasReviewCreateBulk) SaveX(ctx context.Context) []*MangasReview {
	v, err := mrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mrcb *MangasReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := mrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mrcb *MangasReviewCreateBulk) ExecX(ctx context.Context) {
	if err := mrcb.Exec(ctx); err != nil {
		panic(err)
	}
}
