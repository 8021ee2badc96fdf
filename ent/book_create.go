// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/book"
)

// BookCreate is the builder for creating a Book entity.
type BookCreate struct {
	config
	mutation *BookMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (bc *BookCreate) SetDeletedAt(t time.Time) *BookCreate {
	bc.mutation.SetDeletedAt(t)
	return bc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (bc *BookCreate) SetNillableDeletedAt(t *time.Time) *BookCreate {
	if t != nil {
		bc.SetDeletedAt(*t)
	}
	return bc
}

// SetCreatedAt sets the "created_at" field.
func (bc *BookCreate) SetCreatedAt(t time.Time) *BookCreate {
	bc.mutation.SetCreatedAt(t)
	return bc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bc *BookCreate) SetNillableCreatedAt(t *time.Time) *BookCreate {
	if t != nil {
		bc.SetCreatedAt(*t)
	}
	return bc
}

// SetUpdatedAt sets the "updated_at" field.
func (bc *BookCreate) SetUpdatedAt(t time.Time) *BookCreate {
	bc.mutation.SetUpdatedAt(t)
	return bc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bc *BookCreate) SetNillableUpdatedAt(t *time.Time) *BookCreate {
	if t != nil {
		bc.SetUpdatedAt(*t)
	}
	return bc
}

// SetTitle sets the "title" field.
func (bc *BookCreate) SetTitle(s string) *BookCreate {
	bc.mutation.SetTitle(s)
	return bc
}

// SetSlug sets the "slug" field.
func (bc *BookCreate) SetSlug(s string) *BookCreate {
	bc.mutation.SetSlug(s)
	return bc
}

// SetDescription sets the "description" field.
func (bc *BookCreate) SetDescription(s string) *BookCreate {
	bc.mutation.SetDescription(s)
	return bc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (bc *BookCreate) SetNillableDescription(s *string) *BookCreate {
	if s != nil {
		bc.SetDescription(*s)
	}
	return bc
}

// SetCoverURL sets the "cover_url" field.
func (bc *BookCreate) SetCoverURL(s string) *BookCreate {
	bc.mutation.SetCoverURL(s)
	return bc
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (bc *BookCreate) SetNillableCoverURL(s *string) *BookCreate {
	if s != nil {
		bc.SetCoverURL(*s)
	}
	return bc
}

// SetAuthors sets the "authors" field.
func (bc *BookCreate) SetAuthors(s string) *BookCreate {
	bc.mutation.SetAuthors(s)
	return bc
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (bc *BookCreate) SetNillableAuthors(s *string) *BookCreate {
	if s != nil {
		bc.SetAuthors(*s)
	}
	return bc
}

// SetPublishers sets the "publishers" field.
func (bc *BookCreate) SetPublishers(s string) *BookCreate {
	bc.mutation.SetPublishers(s)
	return bc
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (bc *BookCreate) SetNillablePublishers(s *string) *BookCreate {
	if s != nil {
		bc.SetPublishers(*s)
	}
	return bc
}

// SetGenres sets the "genres" field.
func (bc *BookCreate) SetGenres(s string) *BookCreate {
	bc.mutation.SetGenres(s)
	return bc
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (bc *BookCreate) SetNillableGenres(s *string) *BookCreate {
	if s != nil {
		bc.SetGenres(*s)
	}
	return bc
}

// SetPremiered sets the "premiered" field.
func (bc *BookCreate) SetPremiered(t time.Time) *BookCreate {
	bc.mutation.SetPremiered(t)
	return bc
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (bc *BookCreate) SetNillablePremiered(t *time.Time) *BookCreate {
	if t != nil {
		bc.SetPremiered(*t)
	}
	return bc
}

// SetDraft sets the "draft" field.
func (bc *BookCreate) SetDraft(b bool) *BookCreate {
	bc.mutation.SetDraft(b)
	return bc
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (bc *BookCreate) SetNillableDraft(b *bool) *BookCreate {
	if b != nil {
		bc.SetDraft(*b)
	}
	return bc
}

// SetAccepted sets the "accepted" field.
func (bc *BookCreate) SetAccepted(b bool) *BookCreate {
	bc.mutation.SetAccepted(b)
	return bc
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (bc *BookCreate) SetNillableAccepted(b *bool) *BookCreate {
	if b != nil {
		bc.SetAccepted(*b)
	}
	return bc
}

// SetContributor sets the "contributor" field.
func (bc *BookCreate) SetContributor(s string) *BookCreate {
	bc.mutation.SetContributor(s)
	return bc
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (bc *BookCreate) SetNillableContributor(s *string) *BookCreate {
	if s != nil {
		bc.SetContributor(*s)
	}
	return bc
}

// SetPages sets the "pages" field.
func (bc *BookCreate) SetPages(i int) *BookCreate {
	bc.mutation.SetPages(i)
	return bc
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (bc *BookCreate) SetNillablePages(i *int) *BookCreate {
	if i != nil {
		bc.SetPages(*i)
	}
	return bc
}

// SetSeries sets the "series" field.
func (bc *BookCreate) SetSeries(s string) *BookCreate {
	bc.mutation.SetSeries(s)
	return bc
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (bc *BookCreate) SetNillableSeries(s *string) *BookCreate {
	if s != nil {
		bc.SetSeries(*s)
	}
	return bc
}

// SetID sets the "id" field.
func (bc *BookCreate) SetID(u uint) *BookCreate {
	bc.mutation.SetID(u)
	return bc
}

// Mutation returns the BookMutation object of the builder.
func (bc *BookCreate) Mutation() *BookMutation {
	return bc.mutation
}

// Save creates the Book in the database.
func (bc *BookCreate) Save(ctx context.Context) (*Book, error) {
	if err := bc.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, bc.sqlSave, bc.mutation, bc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bc *BookCreate) SaveX(ctx context.Context) *Book {
	v, err := bc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bc *BookCreate) Exec(ctx context.Context) error {
	_, err := bc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bc *BookCreate) ExecX(ctx context.Context) {
	if err := bc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bc *BookCreate) defaults() error {
	if _, ok := bc.mutation.CreatedAt(); !ok {
		if book.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized book.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := book.DefaultCreatedAt()
		bc.mutation.SetCreatedAt(v)
	}
	if _, ok := bc.mutation.UpdatedAt(); !ok {
		if book.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized book.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := book.DefaultUpdatedAt()
		bc.mutation.SetUpdatedAt(v)
	}
	if _, ok := bc.mutation.Draft(); !ok {
		v := book.DefaultDraft
		bc.mutation.SetDraft(v)
	}
	if _, ok := bc.mutation.Accepted(); !ok {
		v := book.DefaultAccepted
		bc.mutation.SetAccepted(v)
	}
	if _, ok := bc.mutation.Pages(); !ok {
		v := book.DefaultPages
		bc.mutation.SetPages(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (bc *BookCreate) check() error {
	if _, ok := bc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Book.created_at"`)}
	}
	if _, ok := bc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Book.updated_at"`)}
	}
	if _, ok := bc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Book.title"`)}
	}
	if v, ok := bc.mutation.Title(); ok {
		if err := book.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Book.title": %w`, err)}
		}
	}
	if _, ok := bc.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Book.slug"`)}
	}
	if v, ok := bc.mutation.Slug(); ok {
		if err := book.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Book.slug": %w`, err)}
		}
	}
	if _, ok := bc.mutation.Draft(); !ok {
		return &ValidationError{Name: "draft", err: errors.New(`ent: missing required field "Book.draft"`)}
	}
	if _, ok := bc.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "Book.accepted"`)}
	}
	if _, ok := bc.mutation.Pages(); !ok {
		return &ValidationError{Name: "pages", err: errors.New(`ent: missing required field "Book.pages"`)}
	}
	if v, ok := bc.mutation.Pages(); ok {
		if err := book.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "Book.pages": %w`, err)}
		}
	}
	return nil
}

func (bc *BookCreate) sqlSave(ctx context.Context) (*Book, error) {
	if err := bc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	bc.mutation.id = &_node.ID
	bc.mutation.done = true
	return _node, nil
}

func (bc *BookCreate) createSpec() (*Book, *sqlgraph.CreateSpec) {
	var (
		_node = &Book{config: bc.config}
		_spec = sqlgraph.NewCreateSpec(book.Table, sqlgraph.NewFieldSpec(book.FieldID, field.TypeUint))
	)
	if id, ok := bc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := bc.mutation.DeletedAt(); ok {
		_spec.SetField(book.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := bc.mutation.CreatedAt(); ok {
		_spec.SetField(book.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := bc.mutation.UpdatedAt(); ok {
		_spec.SetField(book.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := bc.mutation.Title(); ok {
		_spec.SetField(book.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := bc.mutation.Slug(); ok {
		_spec.SetField(book.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := bc.mutation.Description(); ok {
		_spec.SetField(book.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := bc.mutation.CoverURL(); ok {
		_spec.SetField(book.FieldCoverURL, field.TypeString, value)
		_node.CoverURL = value
	}
	if value, ok := bc.mutation.Authors(); ok {
		_spec.SetField(book.FieldAuthors, field.TypeString, value)
		_node.Authors = value
	}
	if value, ok := bc.mutation.Publishers(); ok {
		_spec.SetField(book.FieldPublishers, field.TypeString, value)
		_node.Publishers = value
	}
	if value, ok := bc.mutation.Genres(); ok {
		_spec.SetField(book.FieldGenres, field.TypeString, value)
		_node.Genres = value
	}
	if value, ok := bc.mutation.Premiered(); ok {
		_spec.SetField(book.FieldPremiered, field.TypeTime, value)
		_node.Premiered = &value
	}
	if value, ok := bc.mutation.Draft(); ok {
		_spec.SetField(book.FieldDraft, field.TypeBool, value)
		_node.Draft = value
	}
	if value, ok := bc.mutation.Accepted(); ok {
		_spec.SetField(book.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	if value, ok := bc.mutation.Contributor(); ok {
		_spec.SetField(book.FieldContributor, field.TypeString, value)
		_node.Contributor = value
	}
	if value, ok := bc.mutation.Pages(); ok {
		_spec.SetField(book.FieldPages, field.TypeInt, value)
		_node.Pages = value
	}
	if value, ok := bc.mutation.Series(); ok {
		_spec.SetField(book.FieldSeries, field.TypeString, value)
		_node.Series = value
	}
	return _node, _spec
}

// BookCreateBulk is the builder for creating many Book entities in bulk.
type BookCreateBulk struct {
	config
	err      error
	builders []*BookCreate
}

// Save creates the Book entities in the database.
func (bcb *BookCreateBulk) Save(ctx context.Context) ([]*Book, error) {
	if bcb.err != nil {
		return nil, bcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bcb.builders))
	nodes := make([]*Book, len(bcb.builders))
	mutators := make([]Mutator, len(bcb.builders))
	for i := range bcb.builders {
		func(i int, root context.Context) {
			builder := bcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BookMutation)
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
					_, err = mutators[i+1].Mutate(root, bcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bcb *BookCreateBulk) SaveX(ctx context.Context) []*Book {
	v, err := bcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bcb *BookCreateBulk) Exec(ctx context.Context) error {
	_, err := bcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcb *BookCreateBulk) ExecX(ctx context.Context) {
	if err := bcb.Exec(ctx); err != nil {
		panic(err)
	}
}
