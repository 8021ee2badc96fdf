// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
)

// ComicCreate is the builder for creating a Comic entity.
type ComicCreate struct {
	config
	mutation *ComicMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (cc *ComicCreate) SetDeletedAt(t time.Time) *ComicCreate {
	cc.mutation.SetDeletedAt(t)
	return cc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (cc *ComicCreate) SetNillableDeletedAt(t *time.Time) *ComicCreate {
	if t != nil {
		cc.SetDeletedAt(*t)
	}
	return cc
}

// SetCreatedAt sets the "created_at" field.
func (cc *ComicCreate) SetCreatedAt(t time.Time) *ComicCreate {
	cc.mutation.SetCreatedAt(t)
	return cc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cc *ComicCreate) SetNillableCreatedAt(t *time.Time) *ComicCreate {
	if t != nil {
		cc.SetCreatedAt(*t)
	}
	return cc
}

// SetUpdatedAt sets the "updated_at" field.
func (cc *ComicCreate) SetUpdatedAt(t time.Time) *ComicCreate {
	cc.mutation.SetUpdatedAt(t)
	return cc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cc *ComicCreate) SetNillableUpdatedAt(t *time.Time) *ComicCreate {
	if t != nil {
		cc.SetUpdatedAt(*t)
	}
	return cc
}

// SetTitle sets the "title" field.
func (cc *ComicCreate) SetTitle(s string) *ComicCreate {
	cc.mutation.SetTitle(s)
	return cc
}

// SetSlug sets the "slug" field.
func (cc *ComicCreate) SetSlug(s string) *ComicCreate {
	cc.mutation.SetSlug(s)
	return cc
}

// SetDescription sets the "description" field.
func (cc *ComicCreate) SetDescription(s string) *ComicCreate {
	cc.mutation.SetDescription(s)
	return cc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cc *ComicCreate) SetNillableDescription(s *string) *ComicCreate {
	if s != nil {
		cc.SetDescription(*s)
	}
	return cc
}

// SetCoverURL sets the "cover_url" field.
func (cc *ComicCreate) SetCoverURL(s string) *ComicCreate {
	cc.mutation.SetCoverURL(s)
	return cc
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (cc *ComicCreate) SetNillableCoverURL(s *string) *ComicCreate {
	if s != nil {
		cc.SetCoverURL(*s)
	}
	return cc
}

// SetAuthors sets the "authors" field.
func (cc *ComicCreate) SetAuthors(s string) *ComicCreate {
	cc.mutation.SetAuthors(s)
	return cc
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (cc *ComicCreate) SetNillableAuthors(s *string) *ComicCreate {
	if s != nil {
		cc.SetAuthors(*s)
	}
	return cc
}

// SetPublishers sets the "publishers" field.
func (cc *ComicCreate) SetPublishers(s string) *ComicCreate {
	cc.mutation.SetPublishers(s)
	return cc
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (cc *ComicCreate) SetNillablePublishers(s *string) *ComicCreate {
	if s != nil {
		cc.SetPublishers(*s)
	}
	return cc
}

// SetGenres sets the "genres" field.
func (cc *ComicCreate) SetGenres(s string) *ComicCreate {
	cc.mutation.SetGenres(s)
	return cc
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (cc *ComicCreate) SetNillableGenres(s *string) *ComicCreate {
	if s != nil {
		cc.SetGenres(*s)
	}
	return cc
}

// SetPremiered sets the "premiered" field.
func (cc *ComicCreate) SetPremiered(t time.Time) *ComicCreate {
	cc.mutation.SetPremiered(t)
	return cc
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (cc *ComicCreate) SetNillablePremiered(t *time.Time) *ComicCreate {
	if t != nil {
		cc.SetPremiered(*t)
	}
	return cc
}

// SetDraft sets the "draft" field.
func (cc *ComicCreate) SetDraft(b bool) *ComicCreate {
	cc.mutation.SetDraft(b)
	return cc
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (cc *ComicCreate) SetNillableDraft(b *bool) *ComicCreate {
	if b != nil {
		cc.SetDraft(*b)
	}
	return cc
}

// SetAccepted sets the "accepted" field.
func (cc *ComicCreate) SetAccepted(b bool) *ComicCreate {
	cc.mutation.SetAccepted(b)
	return cc
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (cc *ComicCreate) SetNillableAccepted(b *bool) *ComicCreate {
	if b != nil {
		cc.SetAccepted(*b)
	}
	return cc
}

// SetContributor sets the "contributor" field.
func (cc *ComicCreate) SetContributor(s string) *ComicCreate {
	cc.mutation.SetContributor(s)
	return cc
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (cc *ComicCreate) SetNillableContributor(s *string) *ComicCreate {
	if s != nil {
		cc.SetContributor(*s)
	}
	return cc
}

// SetIssues sets the "issues" field.
func (cc *ComicCreate) SetIssues(i int) *ComicCreate {
	cc.mutation.SetIssues(i)
	return cc
}

// SetNillableIssues sets the "issues" field if the given value is not nil.
func (cc *ComicCreate) SetNillableIssues(i *int) *ComicCreate {
	if i != nil {
		cc.SetIssues(*i)
	}
	return cc
}

// SetFinishedAt sets the "finished_at" field.
func (cc *ComicCreate) SetFinishedAt(t time.Time) *ComicCreate {
	cc.mutation.SetFinishedAt(t)
	return cc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (cc *ComicCreate) SetNillableFinishedAt(t *time.Time) *ComicCreate {
	if t != nil {
		cc.SetFinishedAt(*t)
	}
	return cc
}

// SetID sets the "id" field.
func (cc *ComicCreate) SetID(u uint) *ComicCreate {
	cc.mutation.SetID(u)
	return cc
}

// Mutation returns the ComicMutation object of the builder.
func (cc *ComicCreate) Mutation() *ComicMutation {
	return cc.mutation
}

// Save creates the Comic in the database.
func (cc *ComicCreate) Save(ctx context.Context) (*Comic, error) {
	if err := cc.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, cc.sqlSave, cc.mutation, cc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cc *ComicCreate) SaveX(ctx context.Context) *Comic {
	v, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cc *ComicCreate) Exec(ctx context.Context) error {
	_, err := cc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *ComicCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cc *ComicCreate) defaults() error {
	if _, ok := cc.mutation.CreatedAt(); !ok {
		if comic.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized comic.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := comic.DefaultCreatedAt()
		cc.mutation.SetCreatedAt(v)
	}
	if _, ok := cc.mutation.UpdatedAt(); !ok {
		if comic.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized comic.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := comic.DefaultUpdatedAt()
		cc.mutation.SetUpdatedAt(v)
	}
	if _, ok := cc.mutation.Draft(); !ok {
		v := comic.DefaultDraft
		cc.mutation.SetDraft(v)
	}
	if _, ok := cc.mutation.Accepted(); !ok {
		v := comic.DefaultAccepted
		cc.mutation.SetAccepted(v)
	}
	if _, ok := cc.mutation.Issues(); !ok {
		v := comic.DefaultIssues
		cc.mutation.SetIssues(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (cc *ComicCreate) check() error {
	if _, ok := cc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Comic.created_at"`)}
	}
	if _, ok := cc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Comic.updated_at"`)}
	}
	if _, ok := cc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Comic.title"`)}
	}
	if v, ok := cc.mutation.Title(); ok {
		if err := comic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Comic.title": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Comic.slug"`)}
	}
	if v, ok := cc.mutation.Slug(); ok {
		if err := comic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Comic.slug": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Draft(); !ok {
		return &ValidationError{Name: "draft", err: errors.New(`ent: missing required field "Comic.draft"`)}
	}
	if _, ok := cc.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "Comic.accepted"`)}
	}
	if _, ok := cc.mutation.Issues(); !ok {
		return &ValidationError{Name: "issues", err: errors.New(`ent: missing required field "Comic.issues"`)}
	}
	if v, ok := cc.mutation.Issues(); ok {
		if err := comic.IssuesValidator(v); err != nil {
			return &ValidationError{Name: "issues", err: fmt.Errorf(`ent: validator failed for field "Comic.issues": %w`, err)}
		}
	}
	return nil
}

func (cc *ComicCreate) sqlSave(ctx context.Context) (*Comic, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	cc.mutation.id = &_node.ID
	cc.mutation.done = true
	return _node, nil
}

func (cc *ComicCreate) createSpec() (*Comic, *sqlgraph.CreateSpec) {
	var (
		_node = &Comic{config: cc.config}
		_spec = sqlgraph.NewCreateSpec(comic.Table, sqlgraph.NewFieldSpec(comic.FieldID, field.TypeUint))
	)
	if id, ok := cc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := cc.mutation.DeletedAt(); ok {
		_spec.SetField(comic.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := cc.mutation.CreatedAt(); ok {
		_spec.SetField(comic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cc.mutation.UpdatedAt(); ok {
		_spec.SetField(comic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := cc.mutation.Title(); ok {
		_spec.SetField(comic.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := cc.mutation.Slug(); ok {
		_spec.SetField(comic.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := cc.mutation.Description(); ok {
		_spec.SetField(comic.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := cc.mutation.CoverURL(); ok {
		_spec.SetField(comic.FieldCoverURL, field.TypeString, value)
		_node.CoverURL = value
	}
	if value, ok := cc.mutation.Authors(); ok {
		_spec.SetField(comic.FieldAuthors, field.TypeString, value)
		_node.Authors = value
	}
	if value, ok := cc.mutation.Publishers(); ok {
		_spec.SetField(comic.FieldPublishers, field.TypeString, value)
		_node.Publishers = value
	}
	if value, ok := cc.mutation.Genres(); ok {
		_spec.SetField(comic.FieldGenres, field.TypeString, value)
		_node.Genres = value
	}
	if value, ok := cc.mutation.Premiered(); ok {
		_spec.SetField(comic.FieldPremiered, field.TypeTime, value)
		_node.Premiered = &value
	}
	if value, ok := cc.mutation.Draft(); ok {
		_spec.SetField(comic.FieldDraft, field.TypeBool, value)
		_node.Draft = value
	}
	if value, ok := cc.mutation.Accepted(); ok {
		_spec.SetField(comic.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	if value, ok := cc.mutation.Contributor(); ok {
		_spec.SetField(comic.FieldContributor, field.TypeString, value)
		_node.Contributor = value
	}
	if value, ok := cc.mutation.Issues(); ok {
		_spec.SetField(comic.FieldIssues, field.TypeInt, value)
		_node.Issues = value
	}
	if value, ok := cc.mutation.FinishedAt(); ok {
		_spec.SetField(comic.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// ComicCreateBulk is the builder for creating many Comic entities in bulk.
type ComicCreateBulk struct {
	config
	err      error
	builders []*ComicCreate
}

// Save creates the Comic entities in the database.
func (ccb *ComicCreateBulk) Save(ctx context.Context) ([]*Comic, error) {
	if ccb.err != nil {
		return nil, ccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ccb.builders))
	nodes := make([]*Comic, len(ccb.builders))
	mutators := make([]Mutator, len(ccb.builders))
	for i := range ccb.builders {
		func(i int, root context.Context) {
			builder := ccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComicMutation)
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
					_, err = mutators[i+1].Mutate(root, ccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *ComicCreateBulk) SaveX(ctx context.Context) []*Comic {
	v, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccb *ComicCreateBulk) Exec(ctx context.Context) error {
	_, err := ccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *ComicCreateBulk) ExecX(ctx context.Context) {
	if err := ccb.Exec(ctx); err != nil {
		panic(err)
	}
}
