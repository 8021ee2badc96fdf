// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
)

// GamesReviewCreate is the builder for creating a GamesReview entity.
type GamesReviewCreate struct {
	config
	mutation *GamesReviewMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (grc *GamesReviewCreate) SetCreatedAt(t time.Time) *GamesReviewCreate {
	grc.mutation.SetCreatedAt(t)
	return grc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableCreatedAt(t *time.Time) *GamesReviewCreate {
	if t != nil {
		grc.SetCreatedAt(*t)
	}
	return grc
}

// SetUpdatedAt sets the "updated_at" field.
func (grc *GamesReviewCreate) SetUpdatedAt(t time.Time) *GamesReviewCreate {
	grc.mutation.SetUpdatedAt(t)
	return grc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableUpdatedAt(t *time.Time) *GamesReviewCreate {
	if t != nil {
		grc.SetUpdatedAt(*t)
	}
	return grc
}

// SetUsername sets the "username" field.
func (grc *GamesReviewCreate) SetUsername(s string) *GamesReviewCreate {
	grc.mutation.SetUsername(s)
	return grc
}

// SetArticleID sets the "article_id" field.
func (grc *GamesReviewCreate) SetArticleID(u uint) *GamesReviewCreate {
	grc.mutation.SetArticleID(u)
	return grc
}

// SetReview sets the "review" field.
func (grc *GamesReviewCreate) SetReview(s string) *GamesReviewCreate {
	grc.mutation.SetReview(s)
	return grc
}

// SetReviewHTML sets the "review_html" field.
func (grc *GamesReviewCreate) SetReviewHTML(s string) *GamesReviewCreate {
	grc.mutation.SetReviewHTML(s)
	return grc
}

// SetNillableReviewHTML sets the "review_html" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableReviewHTML(s *string) *GamesReviewCreate {
	if s != nil {
		grc.SetReviewHTML(*s)
	}
	return grc
}

// SetOverall sets the "overall" field.
func (grc *GamesReviewCreate) SetOverall(i int) *GamesReviewCreate {
	grc.mutation.SetOverall(i)
	return grc
}

// SetArt sets the "art" field.
func (grc *GamesReviewCreate) SetArt(i int) *GamesReviewCreate {
	grc.mutation.SetArt(i)
	return grc
}

// SetNillableArt sets the "art" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableArt(i *int) *GamesReviewCreate {
	if i != nil {
		grc.SetArt(*i)
	}
	return grc
}

// SetCharacters sets the "characters" field.
func (grc *GamesReviewCreate) SetCharacters(i int) *GamesReviewCreate {
	grc.mutation.SetCharacters(i)
	return grc
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableCharacters(i *int) *GamesReviewCreate {
	if i != nil {
		grc.SetCharacters(*i)
	}
	return grc
}

// SetStory sets the "story" field.
func (grc *GamesReviewCreate) SetStory(i int) *GamesReviewCreate {
	grc.mutation.SetStory(i)
	return grc
}

// SetNillableStory sets the "story" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableStory(i *int) *GamesReviewCreate {
	if i != nil {
		grc.SetStory(*i)
	}
	return grc
}

// SetEnjoyment sets the "enjoyment" field.
func (grc *GamesReviewCreate) SetEnjoyment(i int) *GamesReviewCreate {
	grc.mutation.SetEnjoyment(i)
	return grc
}

// SetNillableEnjoyment sets the "enjoyment" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableEnjoyment(i *int) *GamesReviewCreate {
	if i != nil {
		grc.SetEnjoyment(*i)
	}
	return grc
}

// SetGraphics sets the "graphics" field.
func (grc *GamesReviewCreate) SetGraphics(i int) *GamesReviewCreate {
	grc.mutation.SetGraphics(i)
	return grc
}

// SetNillableGraphics sets the "graphics" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableGraphics(i *int) *GamesReviewCreate {
	if i != nil {
		grc.SetGraphics(*i)
	}
	return grc
}

// SetMusic sets the "music" field.
func (grc *GamesReviewCreate) SetMusic(i int) *GamesReviewCreate {
	grc.mutation.SetMusic(i)
	return grc
}

// SetNillableMusic sets the "music" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableMusic(i *int) *GamesReviewCreate {
	if i != nil {
		grc.SetMusic(*i)
	}
	return grc
}

// SetVoicing sets the "voicing" field.
func (grc *GamesReviewCreate) SetVoicing(i int) *GamesReviewCreate {
	grc.mutation.SetVoicing(i)
	return grc
}

// SetNillableVoicing sets the "voicing" field if the given value is not nil.
func (grc *GamesReviewCreate) SetNillableVoicing(i *int) *GamesReviewCreate {
	if i != nil {
		grc.SetVoicing(*i)
	}
	return grc
}

// SetID sets the "id" field.
func (grc *GamesReviewCreate) SetID(u uint) *GamesReviewCreate {
	grc.mutation.SetID(u)
	return grc
}

// Mutation returns the GamesReviewMutation object of the builder.
func (grc *GamesReviewCreate) Mutation() *GamesReviewMutation {
	return grc.mutation
}

// Save creates the GamesReview in the database.
func (grc *GamesReviewCreate) Save(ctx context.Context) (*GamesReview, error) {
	grc.defaults()
	return withHooks(ctx, grc.sqlSave, grc.mutation, grc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (grc *GamesReviewCreate) SaveX(ctx context.Context) *GamesReview {
	v, err := grc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (grc *GamesReviewCreate) Exec(ctx context.Context) error {
	_, err := grc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (grc *GamesReviewCreate) ExecX(ctx context.Context) {
	if err := grc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (grc *GamesReviewCreate) defaults() {
	if _, ok := grc.mutation.CreatedAt(); !ok {
		v := gamesreview.DefaultCreatedAt()
		grc.mutation.SetCreatedAt(v)
	}
	if _, ok := grc.mutation.UpdatedAt(); !ok {
		v := gamesreview.DefaultUpdatedAt()
		grc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (grc *GamesReviewCreate) check() error {
	if _, ok := grc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GamesReview.created_at"`)}
	}
	if _, ok := grc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GamesReview.updated_at"`)}
	}
	if _, ok := grc.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "GamesReview.username"`)}
	}
	if v, ok := grc.mutation.Username(); ok {
		if err := gamesreview.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "GamesReview.username": %w`, err)}
		}
	}
	if _, ok := grc.mutation.ArticleID(); !ok {
		return &ValidationError{Name: "article_id", err: errors.New(`ent: missing required field "GamesReview.article_id"`)}
	}
	if _, ok := grc.mutation.Review(); !ok {
		return &ValidationError{Name: "review", err: errors.New(`ent: missing required field "GamesReview.review"`)}
	}
	if v, ok := grc.mutation.Review(); ok {
		if err := gamesreview.ReviewValidator(v); err != nil {
			return &ValidationError{Name: "review", err: fmt.Errorf(`ent: validator failed for field "GamesReview.review": %w`, err)}
		}
	}
	if _, ok := grc.mutation.Overall(); !ok {
		return &ValidationError{Name: "overall", err: errors.New(`ent: missing required field "GamesReview.overall"`)}
	}
	return nil
}

func (grc *GamesReviewCreate) sqlSave(ctx context.Context) (*GamesReview, error) {
	if err := grc.check(); err != nil {
		return nil, err
	}
	_node, _spec := grc.createSpec()
	if err := sqlgraph.CreateNode(ctx, grc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	grc.mutation.id = &_node.ID
	grc.mutation.done = true
	return _node, nil
}

func (grc *GamesReviewCreate) createSpec() (*GamesReview, *sqlgraph.CreateSpec) {
	var (
		_node = &GamesReview{config: grc.config}
		_spec = sqlgraph.NewCreateSpec(gamesreview.Table, sqlgraph.NewFieldSpec(gamesreview.FieldID, field.TypeUint))
	)
	if id, ok := grc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := grc.mutation.CreatedAt(); ok {
		_spec.SetField(gamesreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := grc.mutation.UpdatedAt(); ok {
		_spec.SetField(gamesreview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := grc.mutation.Username(); ok {
		_spec.SetField(gamesreview.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := grc.mutation.ArticleID(); ok {
		_spec.SetField(gamesreview.FieldArticleID, field.TypeUint, value)
		_node.ArticleID = value
	}
	if value, ok := grc.mutation.Review(); ok {
		_spec.SetField(gamesreview.FieldReview, field.TypeString, value)
		_node.Review = value
	}
	if value, ok := grc.mutation.ReviewHTML(); ok {
		_spec.SetField(gamesreview.FieldReviewHTML, field.TypeString, value)
		_node.ReviewHTML = value
	}
	if value, ok := grc.mutation.Overall(); ok {
		_spec.SetField(gamesreview.FieldOverall, field.TypeInt, value)
		_node.Overall = value
	}
	if value, ok := grc.mutation.Art(); ok {
		_spec.SetField(gamesreview.FieldArt, field.TypeInt, value)
		_node.Art = &value
	}
	if value, ok := grc.mutation.Characters(); ok {
		_spec.SetField(gamesreview.FieldCharacters, field.TypeInt, value)
		_node.Characters = &value
	}
	if value, ok := grc.mutation.Story(); ok {
		_spec.SetField(gamesreview.FieldStory, field.TypeInt, value)
		_node.Story = &value
	}
	if value, ok := grc.mutation.Enjoyment(); ok {
		_spec.SetField(gamesreview.FieldEnjoyment, field.TypeInt, value)
		_node.Enjoyment = &value
	}
	if value, ok := grc.mutation.Graphics(); ok {
		_spec.SetField(gamesreview.FieldGraphics, field.TypeInt, value)
		_node.Graphics = &value
	}
	if value, ok := grc.mutation.Music(); ok {
		_spec.SetField(gamesreview.FieldMusic, field.TypeInt, value)
		_node.Music = &value
	}
	if value, ok := grc.mutation.Voicing(); ok {
		_spec.SetField(gamesreview.FieldVoicing, field.TypeInt, value)
		_node.Voicing = &value
	}
	return _node, _spec
}

// GamesReviewCreateBulk is the builder for creating many GamesReview entities in bulk.
type GamesReviewCreateBulk struct {
	config
	err      error
	builders []*GamesReviewCreate
}

// Save creates the GamesReview entities in the database.
func (grcb *GamesReviewCreateBulk) Save(ctx context.Context) ([]*GamesReview, error) {
	if grcb.err != nil {
		return nil, grcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(grcb.builders))
	nodes := make([]*GamesReview, len(grcb.builders))
	mutators := make([]Mutator, len(grcb.builders))
	for i := range grcb.builders {
		func(i int, root context.Context) {
			builder := grcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GamesReviewMutation)
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
					_, err = mutators[i+1].Mutate(root, grcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, grcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, grcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (grcb *GamesReviewCreateBulk) SaveX(ctx context.Context) []*GamesReview {
	v, err := grcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (grcb *GamesReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := grcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (grcb *GamesReviewCreateBulk) ExecX(ctx context.Context) {
	if err := grcb.Exec(ctx); err != nil {
		panic(err)
	}
}
