// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/manga"
)

// MangaCreate is the builder for creating a Manga entity.
type MangaCreate struct {
	config
	mutation *MangaMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (mc *MangaCreate) SetDeletedAt(t time.Time) *MangaCreate {
	mc.mutation.SetDeletedAt(t)
	return mc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (mc *MangaCreate) SetNillableDeletedAt(t *time.Time) *MangaCreate {
	if t != nil {
		mc.SetDeletedAt(*t)
	}
	return mc
}

// SetCreatedAt sets the "created_at" field.
func (mc *MangaCreate) SetCreatedAt(t time.Time) *MangaCreate {
	mc.mutation.SetCreatedAt(t)
	return mc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mc *MangaCreate) SetNillableCreatedAt(t *time.Time) *MangaCreate {
	if t != nil {
		mc.SetCreatedAt(*t)
	}
	return mc
}

// SetUpdatedAt sets the "updated_at" field.
func (mc *MangaCreate) SetUpdatedAt(t time.Time) *MangaCreate {
	mc.mutation.SetUpdatedAt(t)
	return mc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (mc *MangaCreate) SetNillableUpdatedAt(t *time.Time) *MangaCreate {
	if t != nil {
		mc.SetUpdatedAt(*t)
	}
	return mc
}

// SetTitle sets the "title" field.
func (mc *MangaCreate) SetTitle(s string) *MangaCreate {
	mc.mutation.SetTitle(s)
	return mc
}

// SetSlug sets the "slug" field.
func (mc *MangaCreate) SetSlug(s string) *MangaCreate {
	mc.mutation.SetSlug(s)
	return mc
}

// SetDescription sets the "description" field.
func (mc *MangaCreate) SetDescription(s string) *MangaCreate {
	mc.mutation.SetDescription(s)
	return mc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (mc *MangaCreate) SetNillableDescription(s *string) *MangaCreate {
	if s != nil {
		mc.SetDescription(*s)
	}
	return mc
}

// SetCoverURL sets the "cover_url" field.
func (mc *MangaCreate) SetCoverURL(s string) *MangaCreate {
	mc.mutation.SetCoverURL(s)
	return mc
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (mc *MangaCreate) SetNillableCoverURL(s *string) *MangaCreate {
	if s != nil {
		mc.SetCoverURL(*s)
	}
	return mc
}

// SetAuthors sets the "authors" field.
func (mc *MangaCreate) SetAuthors(s string) *MangaCreate {
	mc.mutation.SetAuthors(s)
	return mc
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (mc *MangaCreate) SetNillableAuthors(s *string) *MangaCreate {
	if s != nil {
		mc.SetAuthors(*s)
	}
	return mc
}

// SetPublishers sets the "publishers" field.
func (mc *MangaCreate) SetPublishers(s string) *MangaCreate {
	mc.mutation.SetPublishers(s)
	return mc
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (mc *MangaCreate) SetNillablePublishers(s *string) *MangaCreate {
	if s != nil {
		mc.SetPublishers(*s)
	}
	return mc
}

// SetGenres sets the "genres" field.
func (mc *MangaCreate) SetGenres(s string) *MangaCreate {
	mc.mutation.SetGenres(s)
	return mc
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (mc *MangaCreate) SetNillableGenres(s *string) *MangaCreate {
	if s != nil {
		mc.SetGenres(*s)
	}
	return mc
}

// SetPremiered sets the "premiered" field.
func (mc *MangaCreate) SetPremiered(t time.Time) *MangaCreate {
	mc.mutation.SetPremiered(t)
	return mc
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (mc *MangaCreate) SetNillablePremiered(t *time.Time) *MangaCreate {
	if t != nil {
		mc.SetPremiered(*t)
	}
	return mc
}

// SetDraft sets the "draft" field.
func (mc *MangaCreate) SetDraft(b bool) *MangaCreate {
	mc.mutation.SetDraft(b)
	return mc
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (mc *MangaCreate) SetNillableDraft(b *bool) *MangaCreate {
	if b != nil {
		mc.SetDraft(*b)
	}
	return mc
}

// SetAccepted sets the "accepted" field.
func (mc *MangaCreate) SetAccepted(b bool) *MangaCreate {
	mc.mutation.SetAccepted(b)
	return mc
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (mc *MangaCreate) SetNillableAccepted(b *bool) *MangaCreate {
	if b != nil {
		mc.SetAccepted(*b)
	}
	return mc
}

// SetContributor sets the "contributor" field.
func (mc *MangaCreate) SetContributor(s string) *MangaCreate {
	mc.mutation.SetContributor(s)
	return mc
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (mc *MangaCreate) SetNillableContributor(s *string) *MangaCreate {
	if s != nil {
		mc.SetContributor(*s)
	}
	return mc
}

// SetVolumes sets the "volumes" field.
func (mc *MangaCreate) SetVolumes(i int) *MangaCreate {
	mc.mutation.SetVolumes(i)
	return mc
}

// SetNillableVolumes sets the "volumes" field if the given value is not nil.
func (mc *MangaCreate) SetNillableVolumes(i *int) *MangaCreate {
	if i != nil {
		mc.SetVolumes(*i)
	}
	return mc
}

// SetChapters sets the "chapters" field.
func (mc *MangaCreate) SetChapters(i int) *MangaCreate {
	mc.mutation.SetChapters(i)
	return mc
}

// SetNillableChapters sets the "chapters" field if the given value is not nil.
func (mc *MangaCreate) SetNillableChapters(i *int) *MangaCreate {
	if i != nil {
		mc.SetChapters(*i)
	}
	return mc
}

// SetType sets the "type" field.
func (mc *MangaCreate) SetType(m manga.Type) *MangaCreate {
	mc.mutation.SetType(m)
	return mc
}

// SetNillableType sets the "type" field if the given value is not nil.
func (mc *MangaCreate) SetNillableType(m *manga.Type) *MangaCreate {
	if m != nil {
		mc.SetType(*m)
	}
	return mc
}

// SetFinishedAt sets the "finished_at" field.
func (mc *MangaCreate) SetFinishedAt(t time.Time) *MangaCreate {
	mc.mutation.SetFinishedAt(t)
	return mc
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (mc *MangaCreate) SetNillableFinishedAt(t *time.Time) *MangaCreate {
	if t != nil {
		mc.SetFinishedAt(*t)
	}
	return mc
}

// SetID sets the "id" field.
func (mc *MangaCreate) SetID(u uint) *MangaCreate {
	mc.mutation.SetID(u)
	return mc
}

// Mutation returns the MangaMutation object of the builder.
func (mc *MangaCreate) Mutation() *MangaMutation {
	return mc.mutation
}

// Save creates the Manga in the database.
func (mc *MangaCreate) Save(ctx context.Context) (*Manga, error) {
	if err := mc.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, mc.sqlSave, mc.mutation, mc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mc *MangaCreate) SaveX(ctx context.Context) *Manga {
	v, err := mc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mc *MangaCreate) Exec(ctx context.Context) error {
	_, err := mc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mc *MangaCreate) ExecX(ctx context.Context) {
	if err := mc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mc *MangaCreate) defaults() error {
	if _, ok := mc.mutation.CreatedAt(); !ok {
		if manga.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized manga.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := manga.DefaultCreatedAt()
		mc.mutation.SetCreatedAt(v)
	}
	if _, ok := mc.mutation.UpdatedAt(); !ok {
		if manga.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized manga.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := manga.DefaultUpdatedAt()
		mc.mutation.SetUpdatedAt(v)
	}
	if _, ok := mc.mutation.Draft(); !ok {
		v := manga.DefaultDraft
		mc.mutation.SetDraft(v)
	}
	if _, ok := mc.mutation.Accepted(); !ok {
		v := manga.DefaultAccepted
		mc.mutation.SetAccepted(v)
	}
	if _, ok := mc.mutation.Volumes(); !ok {
		v := manga.DefaultVolumes
		mc.mutation.SetVolumes(v)
	}
	if _, ok := mc.mutation.Chapters(); !ok {
		v := manga.DefaultChapters
		mc.mutation.SetChapters(v)
	}
	if _, ok := mc.mutation.GetType(); !ok {
		v := manga.DefaultType
		mc.mutation.SetType(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (mc *MangaCreate) check() error {
	if _, ok := mc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Manga.created_at"`)}
	}
	if _, ok := mc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Manga.updated_at"`)}
	}
	if _, ok := mc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Manga.title"`)}
	}
	if v, ok := mc.mutation.Title(); ok {
		if err := manga.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Manga.title": %w`, err)}
		}
	}
	if _, ok := mc.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Manga.slug"`)}
	}
	if v, ok := mc.mutation.Slug(); ok {
		if err := manga.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Manga.slug": %w`, err)}
		}
	}
	if _, ok := mc.mutation.Draft(); !ok {
		return &ValidationError{Name: "draft", err: errors.New(`ent: missing required field "Manga.draft"`)}
	}
	if _, ok := mc.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "Manga.accepted"`)}
	}
	if _, ok := mc.mutation.Volumes(); !ok {
		return &ValidationError{Name: "volumes", err: errors.New(`ent: missing required field "Manga.volumes"`)}
	}
	if v, ok := mc.mutation.Volumes(); ok {
		if err := manga.VolumesValidator(v); err != nil {
			return &ValidationError{Name: "volumes", err: fmt.Errorf(`ent: validator failed for field "Manga.volumes": %w`, err)}
		}
	}
	if _, ok := mc.mutation.Chapters(); !ok {
		return &ValidationError{Name: "chapters", err: errors.New(`ent: missing required field "Manga.chapters"`)}
	}
	if v, ok := mc.mutation.Chapters(); ok {
		if err := manga.ChaptersValidator(v); err != nil {
			return &ValidationError{Name: "chapters", err: fmt.Errorf(`ent: validator failed for field "Manga.chapters": %w`, err)}
		}
	}
	if _, ok := mc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Manga.type"`)}
	}
	if v, ok := mc.mutation.GetType(); ok {
		if err := manga.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Manga.type": %w`, err)}
		}
	}
	return nil
}

func (mc *MangaCreate) sqlSave(ctx context.Context) (*Manga, error) {
	if err := mc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	mc.mutation.id = &_node.ID
	mc.mutation.done = true
	return _node, nil
}

func (mc *MangaCreate) createSpec() (*Manga, *sqlgraph.CreateSpec) {
	var (
		_node = &Manga{config: mc.config}
		_spec = sqlgraph.NewCreateSpec(manga.Table, sqlgraph.NewFieldSpec(manga.FieldID, field.TypeUint))
	)
	if id, ok := mc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := mc.mutation.DeletedAt(); ok {
		_spec.SetField(manga.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := mc.mutation.CreatedAt(); ok {
		_spec.SetField(manga.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := mc.mutation.UpdatedAt(); ok {
		_spec.SetField(manga.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := mc.mutation.Title(); ok {
		_spec.SetField(manga.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := mc.mutation.Slug(); ok {
		_spec.SetField(manga.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := mc.mutation.Description(); ok {
		_spec.SetField(manga.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := mc.mutation.CoverURL(); ok {
		_spec.SetField(manga.FieldCoverURL, field.TypeString, value)
		_node.CoverURL = value
	}
	if value, ok := mc.mutation.Authors(); ok {
		_spec.SetField(manga.FieldAuthors, field.TypeString, value)
		_node.Authors = value
	}
	if value, ok := mc.mutation.Publishers(); ok {
		_spec.SetField(manga.FieldPublishers, field.TypeString, value)
		_node.Publishers = value
	}
	if value, ok := mc.mutation.Genres(); ok {
		_spec.SetField(manga.FieldGenres, field.TypeString, value)
		_node.Genres = value
	}
	if value, ok := mc.mutation.Premiered(); ok {
		_spec.SetField(manga.FieldPremiered, field.TypeTime, value)
		_node.Premiered = &value
	}
	if value, ok := mc.mutation.Draft(); ok {
		_spec.SetField(manga.FieldDraft, field.TypeBool, value)
		_node.Draft = value
	}
	if value, ok := mc.mutation.Accepted(); ok {
		_spec.SetField(manga.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	if value, ok := mc.mutation.Contributor(); ok {
		_spec.SetField(manga.FieldContributor, field.TypeString, value)
		_node.Contributor = value
	}
	if value, ok := mc.mutation.Volumes(); ok {
		_spec.SetField(manga.FieldVolumes, field.TypeInt, value)
		_node.Volumes = value
	}
	if value, ok := mc.mutation.Chapters(); ok {
		_spec.SetField(manga.FieldChapters, field.TypeInt, value)
		_node.Chapters = value
	}
	if value, ok := mc.mutation.GetType(); ok {
		_spec.SetField(manga.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := mc.mutation.FinishedAt(); ok {
		_spec.SetField(manga.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// MangaCreateBulk is the builder for creating many Manga entities in bulk.
type MangaCreateBulk struct {
	config
	err      error
	builders []*MangaCreate
}

// Save creates the Manga entities in the database.
func (mcb *MangaCreateBulk) Save(ctx context.Context) ([]*Manga, error) {
	if mcb.err != nil {
		return nil, mcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mcb.builders))
	nodes := make([]*Manga, len(mcb.builders))
	mutators := make([]Mutator, len(mcb.builders))
	for i := range mcb.builders {
		func(i int, root context.Context) {
			builder := mcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MangaMutation)
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
					_, err = mutators[i+1].Mutate(root, mcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, mcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mcb *MangaCreateBulk) SaveX(ctx context.Context) []*Manga {
	v, err := mcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mcb *MangaCreateBulk) Exec(ctx context.Context) error {
	_, err := mcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mcb *MangaCreateBulk) ExecX(ctx context.Context) {
	if err := mcb.Exec(ctx); err != nil {
		panic(err)
	}
}
