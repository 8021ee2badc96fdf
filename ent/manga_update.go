// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/manga"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// MangaUpdate is the builder for updating Manga entities.
type MangaUpdate struct {
	config
	hooks     []Hook
	mutation  *MangaMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the MangaUpdate builder.
func (mu *MangaUpdate) Where(ps ...predicate.Manga) *MangaUpdate {
	mu.mutation.Where(ps...)
	return mu
}

// SetDeletedAt sets the "deleted_at" field.
func (mu *MangaUpdate) SetDeletedAt(t time.Time) *MangaUpdate {
	mu.mutation.SetDeletedAt(t)
	return mu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableDeletedAt(t *time.Time) *MangaUpdate {
	if t != nil {
		mu.SetDeletedAt(*t)
	}
	return mu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (mu *MangaUpdate) ClearDeletedAt() *MangaUpdate {
	mu.mutation.ClearDeletedAt()
	return mu
}

// SetCreatedAt sets the "created_at" field.
func (mu *MangaUpdate) SetCreatedAt(t time.Time) *MangaUpdate {
	mu.mutation.SetCreatedAt(t)
	return mu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableCreatedAt(t *time.Time) *MangaUpdate {
	if t != nil {
		mu.SetCreatedAt(*t)
	}
	return mu
}

// SetUpdatedAt sets the "updated_at" field.
func (mu *MangaUpdate) SetUpdatedAt(t time.Time) *MangaUpdate {
	mu.mutation.SetUpdatedAt(t)
	return mu
}

// SetTitle sets the "title" field.
func (mu *MangaUpdate) SetTitle(s string) *MangaUpdate {
	mu.mutation.SetTitle(s)
	return mu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableTitle(s *string) *MangaUpdate {
	if s != nil {
		mu.SetTitle(*s)
	}
	return mu
}

// SetDescription sets the "description" field.
func (mu *MangaUpdate) SetDescription(s string) *MangaUpdate {
	mu.mutation.SetDescription(s)
	return mu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableDescription(s *string) *MangaUpdate {
	if s != nil {
		mu.SetDescription(*s)
	}
	return mu
}

// ClearDescription clears the value of the "description" field.
func (mu *MangaUpdate) ClearDescription() *MangaUpdate {
	mu.mutation.ClearDescription()
	return mu
}

// SetCoverURL sets the "cover_url" field.
func (mu *MangaUpdate) SetCoverURL(s string) *MangaUpdate {
	mu.mutation.SetCoverURL(s)
	return mu
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableCoverURL(s *string) *MangaUpdate {
	if s != nil {
		mu.SetCoverURL(*s)
	}
	return mu
}

// ClearCoverURL clears the value of the "cover_url" field.
func (mu *MangaUpdate) ClearCoverURL() *MangaUpdate {
	mu.mutation.ClearCoverURL()
	return mu
}

// SetAuthors sets the "authors" field.
func (mu *MangaUpdate) SetAuthors(s string) *MangaUpdate {
	mu.mutation.SetAuthors(s)
	return mu
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableAuthors(s *string) *MangaUpdate {
	if s != nil {
		mu.SetAuthors(*s)
	}
	return mu
}

// ClearAuthors clears the value of the "authors" field.
func (mu *MangaUpdate) ClearAuthors() *MangaUpdate {
	mu.mutation.ClearAuthors()
	return mu
}

// SetPublishers sets the "publishers" field.
func (mu *MangaUpdate) SetPublishers(s string) *MangaUpdate {
	mu.mutation.SetPublishers(s)
	return mu
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (mu *MangaUpdate) SetNillablePublishers(s *string) *MangaUpdate {
	if s != nil {
		mu.SetPublishers(*s)
	}
	return mu
}

// ClearPublishers clears the value of the "publishers" field.
func (mu *MangaUpdate) ClearPublishers() *MangaUpdate {
	mu.mutation.ClearPublishers()
	return mu
}

// SetGenres sets the "genres" field.
func (mu *MangaUpdate) SetGenres(s string) *MangaUpdate {
	mu.mutation.SetGenres(s)
	return mu
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableGenres(s *string) *MangaUpdate {
	if s != nil {
		mu.SetGenres(*s)
	}
	return mu
}

// ClearGenres clears the value of the "genres" field.
func (mu *MangaUpdate) ClearGenres() *MangaUpdate {
	mu.mutation.ClearGenres()
	return mu
}

// SetPremiered sets the "premiered" field.
func (mu *MangaUpdate) SetPremiered(t time.Time) *MangaUpdate {
	mu.mutation.SetPremiered(t)
	return mu
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (mu *MangaUpdate) SetNillablePremiered(t *time.Time) *MangaUpdate {
	if t != nil {
		mu.SetPremiered(*t)
	}
	return mu
}

// ClearPremiered clears the value of the "premiered" field.
func (mu *MangaUpdate) ClearPremiered() *MangaUpdate {
	mu.mutation.ClearPremiered()
	return mu
}

// SetDraft sets the "draft" field.
func (mu *MangaUpdate) SetDraft(b bool) *MangaUpdate {
	mu.mutation.SetDraft(b)
	return mu
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableDraft(b *bool) *MangaUpdate {
	if b != nil {
		mu.SetDraft(*b)
	}
	return mu
}

// SetAccepted sets the "accepted" field.
func (mu *MangaUpdate) SetAccepted(b bool) *MangaUpdate {
	mu.mutation.SetAccepted(b)
	return mu
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableAccepted(b *bool) *MangaUpdate {
	if b != nil {
		mu.SetAccepted(*b)
	}
	return mu
}

// SetContributor sets the "contributor" field.
func (mu *MangaUpdate) SetContributor(s string) *MangaUpdate {
	mu.mutation.SetContributor(s)
	return mu
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableContributor(s *string) *MangaUpdate {
	if s != nil {
		mu.SetContributor(*s)
	}
	return mu
}

// ClearContributor clears the value of the "contributor" field.
func (mu *MangaUpdate) ClearContributor() *MangaUpdate {
	mu.mutation.ClearContributor()
	return mu
}

// SetVolumes sets the "volumes" field.
func (mu *MangaUpdate) SetVolumes(i int) *MangaUpdate {
	mu.mutation.ResetVolumes()
	mu.mutation.SetVolumes(i)
	return mu
}

// SetNillableVolumes sets the "volumes" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableVolumes(i *int) *MangaUpdate {
	if i != nil {
		mu.SetVolumes(*i)
	}
	return mu
}

// AddVolumes adds i to the "volumes" field.
func (mu *MangaUpdate) AddVolumes(i int) *MangaUpdate {
	mu.mutation.AddVolumes(i)
	return mu
}

// SetChapters sets the "chapters" field.
func (mu *MangaUpdate) SetChapters(i int) *MangaUpdate {
	mu.mutation.ResetChapters()
	mu.mutation.SetChapters(i)
	return mu
}

// SetNillableChapters sets the "chapters" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableChapters(i *int) *MangaUpdate {
	if i != nil {
		mu.SetChapters(*i)
	}
	return mu
}

// AddChapters adds i to the "chapters" field.
func (mu *MangaUpdate) AddChapters(i int) *MangaUpdate {
	mu.mutation.AddChapters(i)
	return mu
}

// SetType sets the "type" field.
func (mu *MangaUpdate) SetType(m manga.Type) *MangaUpdate {
	mu.mutation.SetType(m)
	return mu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableType(m *manga.Type) *MangaUpdate {
	if m != nil {
		mu.SetType(*m)
	}
	return mu
}

// SetFinishedAt sets the "finished_at" field.
func (mu *MangaUpdate) SetFinishedAt(t time.Time) *MangaUpdate {
	mu.mutation.SetFinishedAt(t)
	return mu
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (mu *MangaUpdate) SetNillableFinishedAt(t *time.Time) *MangaUpdate {
	if t != nil {
		mu.SetFinishedAt(*t)
	}
	return mu
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (mu *MangaUpdate) ClearFinishedAt() *MangaUpdate {
	mu.mutation.ClearFinishedAt()
	return mu
}

// Mutation returns the MangaMutation object of the builder.
func (mu *MangaUpdate) Mutation() *MangaMutation {
	return mu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mu *MangaUpdate) Save(ctx context.Context) (int, error) {
	if err := mu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, mu.sqlSave, mu.mutation, mu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mu *MangaUpdate) SaveX(ctx context.Context) int {
	affected, err := mu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mu *MangaUpdate) Exec(ctx context.Context) error {
	_, err := mu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mu *MangaUpdate) ExecX(ctx context.Context) {
	if err := mu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mu *MangaUpdate) defaults() error {
	if _, ok := mu.mutation.UpdatedAt(); !ok {
		if manga.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized manga.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := manga.UpdateDefaultUpdatedAt()
		mu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (mu *MangaUpdate) check() error {
	if v, ok := mu.mutation.Title(); ok {
		if err := manga.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Manga.title": %w`, err)}
		}
	}
	if v, ok := mu.mutation.Volumes(); ok {
		if err := manga.VolumesValidator(v); err != nil {
			return &ValidationError{Name: "volumes", err: fmt.Errorf(`ent: validator failed for field "Manga.volumes": %w`, err)}
		}
	}
	if v, ok := mu.mutation.Chapters(); ok {
		if err := manga.ChaptersValidator(v); err != nil {
			return &ValidationError{Name: "chapters", err: fmt.Errorf(`ent: validator failed for field "Manga.chapters": %w`, err)}
		}
	}
	if v, ok := mu.mutation.GetType(); ok {
		if err := manga.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Manga.type": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (mu *MangaUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *MangaUpdate {
	mu.modifiers = append(mu.modifiers, modifiers...)
	return mu
}

func (mu *MangaUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(manga.Table, manga.Columns, sqlgraph.NewFieldSpec(manga.FieldID, field.TypeUint))
	if ps := mu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mu.mutation.DeletedAt(); ok {
		_spec.SetField(manga.FieldDeletedAt, field.TypeTime, value)
	}
	if mu.mutation.DeletedAtCleared() {
		_spec.ClearField(manga.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := mu.mutation.CreatedAt(); ok {
		_spec.SetField(manga.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := mu.mutation.UpdatedAt(); ok {
		_spec.SetField(manga.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := mu.mutation.Title(); ok {
		_spec.SetField(manga.FieldTitle, field.TypeString, value)
	}
	if value, ok := mu.mutation.Description(); ok {
		_spec.SetField(manga.FieldDescription, field.TypeString, value)
	}
	if mu.mutation.DescriptionCleared() {
		_spec.ClearField(manga.FieldDescription, field.TypeString)
	}
	if value, ok := mu.mutation.CoverURL(); ok {
		_spec.SetField(manga.FieldCoverURL, field.TypeString, value)
	}
	if mu.mutation.CoverURLCleared() {
		_spec.ClearField(manga.FieldCoverURL, field.TypeString)
	}
	if value, ok := mu.mutation.Authors(); ok {
		_spec.SetField(manga.FieldAuthors, field.TypeString, value)
	}
	if mu.mutation.AuthorsCleared() {
		_spec.ClearField(manga.FieldAuthors, field.TypeString)
	}
	if value, ok := mu.mutation.Publishers(); ok {
		_spec.SetField(manga.FieldPublishers, field.TypeString, value)
	}
	if mu.mutation.PublishersCleared() {
		_spec.ClearField(manga.FieldPublishers, field.TypeString)
	}
	if value, ok := mu.mutation.Genres(); ok {
		_spec.SetField(manga.FieldGenres, field.TypeString, value)
	}
	if mu.mutation.GenresCleared() {
		_spec.ClearField(manga.FieldGenres, field.TypeString)
	}
	if value, ok := mu.mutation.Premiered(); ok {
		_spec.SetField(manga.FieldPremiered, field.TypeTime, value)
	}
	if mu.mutation.PremieredCleared() {
		_spec.ClearField(manga.FieldPremiered, field.TypeTime)
	}
	if value, ok := mu.mutation.Draft(); ok {
		_spec.SetField(manga.FieldDraft, field.TypeBool, value)
	}
	if value, ok := mu.mutation.Accepted(); ok {
		_spec.SetField(manga.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := mu.mutation.Contributor(); ok {
		_spec.SetField(manga.FieldContributor, field.TypeString, value)
	}
	if mu.mutation.ContributorCleared() {
		_spec.ClearField(manga.FieldContributor, field.TypeString)
	}
	if value, ok := mu.mutation.Volumes(); ok {
		_spec.SetField(manga.FieldVolumes, field.TypeInt, value)
	}
	if value, ok := mu.mutation.AddedVolumes(); ok {
		_spec.AddField(manga.FieldVolumes, field.TypeInt, value)
	}
	if value, ok := mu.mutation.Chapters(); ok {
		_spec.SetField(manga.FieldChapters, field.TypeInt, value)
	}
	if value, ok := mu.mutation.AddedChapters(); ok {
		_spec.AddField(manga.FieldChapters, field.TypeInt, value)
	}
	if value, ok := mu.mutation.GetType(); ok {
		_spec.SetField(manga.FieldType, field.TypeEnum, value)
	}
	if value, ok := mu.mutation.FinishedAt(); ok {
		_spec.SetField(manga.FieldFinishedAt, field.TypeTime, value)
	}
	if mu.mutation.FinishedAtCleared() {
		_spec.ClearField(manga.FieldFinishedAt, field.TypeTime)
	}
	_spec.AddModifiers(mu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, mu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{manga.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mu.mutation.done = true
	return n, nil
}

// MangaUpdateOne is the builder for updating a single Manga entity.
type MangaUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *MangaMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetDeletedAt sets the "deleted_at" field.
func (muo *MangaUpdateOne) SetDeletedAt(t time.Time) *MangaUpdateOne {
	muo.mutation.SetDeletedAt(t)
	return muo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableDeletedAt(t *time.Time) *MangaUpdateOne {
	if t != nil {
		muo.SetDeletedAt(*t)
	}
	return muo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (muo *MangaUpdateOne) ClearDeletedAt() *MangaUpdateOne {
	muo.mutation.ClearDeletedAt()
	return muo
}

// SetCreatedAt sets the "created_at" field.
func (muo *MangaUpdateOne) SetCreatedAt(t time.Time) *MangaUpdateOne {
	muo.mutation.SetCreatedAt(t)
	return muo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableCreatedAt(t *time.Time) *MangaUpdateOne {
	if t != nil {
		muo.SetCreatedAt(*t)
	}
	return muo
}

// SetUpdatedAt sets the "updated_at" field.
func (muo *MangaUpdateOne) SetUpdatedAt(t time.Time) *MangaUpdateOne {
	muo.mutation.SetUpdatedAt(t)
	return muo
}

// SetTitle sets the "title" field.
func (muo *MangaUpdateOne) SetTitle(s string) *MangaUpdateOne {
	muo.mutation.SetTitle(s)
	return muo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableTitle(s *string) *MangaUpdateOne {
	if s != nil {
		muo.SetTitle(*s)
	}
	return muo
}

// SetDescription sets the "description" field.
func (muo *MangaUpdateOne) SetDescription(s string) *MangaUpdateOne {
	muo.mutation.SetDescription(s)
	return muo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableDescription(s *string) *MangaUpdateOne {
	if s != nil {
		muo.SetDescription(*s)
	}
	return muo
}

// ClearDescription clears the value of the "description" field.
func (muo *MangaUpdateOne) ClearDescription() *MangaUpdateOne {
	muo.mutation.ClearDescription()
	return muo
}

// SetCoverURL sets the "cover_url" field.
func (muo *MangaUpdateOne) SetCoverURL(s string) *MangaUpdateOne {
	muo.mutation.SetCoverURL(s)
	return muo
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableCoverURL(s *string) *MangaUpdateOne {
	if s != nil {
		muo.SetCoverURL(*s)
	}
	return muo
}

// ClearCoverURL clears the value of the "cover_url" field.
func (muo *MangaUpdateOne) ClearCoverURL() *MangaUpdateOne {
	muo.mutation.ClearCoverURL()
	return muo
}

// SetAuthors sets the "authors" field.
func (muo *MangaUpdateOne) SetAuthors(s string) *MangaUpdateOne {
	muo.mutation.SetAuthors(s)
	return muo
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableAuthors(s *string) *MangaUpdateOne {
	if s != nil {
		muo.SetAuthors(*s)
	}
	return muo
}

// ClearAuthors clears the value of the "authors" field.
func (muo *MangaUpdateOne) ClearAuthors() *MangaUpdateOne {
	muo.mutation.ClearAuthors()
	return muo
}

// SetPublishers sets the "publishers" field.
func (muo *MangaUpdateOne) SetPublishers(s string) *MangaUpdateOne {
	muo.mutation.SetPublishers(s)
	return muo
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillablePublishers(s *string) *MangaUpdateOne {
	if s != nil {
		muo.SetPublishers(*s)
	}
	return muo
}

// ClearPublishers clears the value of the "publishers" field.
func (muo *MangaUpdateOne) ClearPublishers() *MangaUpdateOne {
	muo.mutation.ClearPublishers()
	return muo
}

// SetGenres sets the "genres" field.
func (muo *MangaUpdateOne) SetGenres(s string) *MangaUpdateOne {
	muo.mutation.SetGenres(s)
	return muo
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableGenres(s *string) *MangaUpdateOne {
	if s != nil {
		muo.SetGenres(*s)
	}
	return muo
}

// ClearGenres clears the value of the "genres" field.
func (muo *MangaUpdateOne) ClearGenres() *MangaUpdateOne {
	muo.mutation.ClearGenres()
	return muo
}

// SetPremiered sets the "premiered" field.
func (muo *MangaUpdateOne) SetPremiered(t time.Time) *MangaUpdateOne {
	muo.mutation.SetPremiered(t)
	return muo
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillablePremiered(t *time.Time) *MangaUpdateOne {
	if t != nil {
		muo.SetPremiered(*t)
	}
	return muo
}

// ClearPremiered clears the value of the "premiered" field.
func (muo *MangaUpdateOne) ClearPremiered() *MangaUpdateOne {
	muo.mutation.ClearPremiered()
	return muo
}

// SetDraft sets the "draft" field.
func (muo *MangaUpdateOne) SetDraft(b bool) *MangaUpdateOne {
	muo.mutation.SetDraft(b)
	return muo
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableDraft(b *bool) *MangaUpdateOne {
	if b != nil {
		muo.SetDraft(*b)
	}
	return muo
}

// SetAccepted sets the "accepted" field.
func (muo *MangaUpdateOne) SetAccepted(b bool) *MangaUpdateOne {
	muo.mutation.SetAccepted(b)
	return muo
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableAccepted(b *bool) *MangaUpdateOne {
	if b != nil {
		muo.SetAccepted(*b)
	}
	return muo
}

// SetContributor sets the "contributor" field.
func (muo *MangaUpdateOne) SetContributor(s string) *MangaUpdateOne {
	muo.mutation.SetContributor(s)
	return muo
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableContributor(s *string) *MangaUpdateOne {
	if s != nil {
		muo.SetContributor(*s)
	}
	return muo
}

// ClearContributor clears the value of the "contributor" field.
func (muo *MangaUpdateOne) ClearContributor() *MangaUpdateOne {
	muo.mutation.ClearContributor()
	return muo
}

// SetVolumes sets the "volumes" field.
func (muo *MangaUpdateOne) SetVolumes(i int) *MangaUpdateOne {
	muo.mutation.ResetVolumes()
	muo.mutation.SetVolumes(i)
	return muo
}

// SetNillableVolumes sets the "volumes" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableVolumes(i *int) *MangaUpdateOne {
	if i != nil {
		muo.SetVolumes(*i)
	}
	return muo
}

// AddVolumes adds i to the "volumes" field.
func (muo *MangaUpdateOne) AddVolumes(i int) *MangaUpdateOne {
	muo.mutation.AddVolumes(i)
	return muo
}

// SetChapters sets the "chapters" field.
func (muo *MangaUpdateOne) SetChapters(i int) *MangaUpdateOne {
	muo.mutation.ResetChapters()
	muo.mutation.SetChapters(i)
	return muo
}

// SetNillableChapters sets the "chapters" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableChapters(i *int) *MangaUpdateOne {
	if i != nil {
		muo.SetChapters(*i)
	}
	return muo
}

// AddChapters adds i to the "chapters" field.
func (muo *MangaUpdateOne) AddChapters(i int) *MangaUpdateOne {
	muo.mutation.AddChapters(i)
	return muo
}

// SetType sets the "type" field.
func (muo *MangaUpdateOne) SetType(m manga.Type) *MangaUpdateOne {
	muo.mutation.SetType(m)
	return muo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableType(m *manga.Type) *MangaUpdateOne {
	if m != nil {
		muo.SetType(*m)
	}
	return muo
}

// SetFinishedAt sets the "finished_at" field.
func (muo *MangaUpdateOne) SetFinishedAt(t time.Time) *MangaUpdateOne {
	muo.mutation.SetFinishedAt(t)
	return muo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (muo *MangaUpdateOne) SetNillableFinishedAt(t *time.Time) *MangaUpdateOne {
	if t != nil {
		muo.SetFinishedAt(*t)
	}
	return muo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (muo *MangaUpdateOne) ClearFinishedAt() *MangaUpdateOne {
	muo.mutation.ClearFinishedAt()
	return muo
}

// Mutation returns the MangaMutation object of the builder.
func (muo *MangaUpdateOne) Mutation() *MangaMutation {
	return muo.mutation
}

// Where appends a list predicates to the MangaUpdate builder.
func (muo *MangaUpdateOne) Where(ps ...predicate.Manga) *MangaUpdateOne {
	muo.mutation.Where(ps...)
	return muo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (muo *MangaUpdateOne) Select(field string, fields ...string) *MangaUpdateOne {
	muo.fields = append([]string{field}, fields...)
	return muo
}

// Save executes the query and returns the updated Manga entity.
func (muo *MangaUpdateOne) Save(ctx context.Context) (*Manga, error) {
	if err := muo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, muo.sqlSave, muo.mutation, muo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (muo *MangaUpdateOne) SaveX(ctx context.Context) *Manga {
	node, err := muo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (muo *MangaUpdateOne) Exec(ctx context.Context) error {
	_, err := muo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (muo *MangaUpdateOne) ExecX(ctx context.Context) {
	if err := muo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (muo *MangaUpdateOne) defaults() error {
	if _, ok := muo.mutation.UpdatedAt(); !ok {
		if manga.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized manga.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := manga.UpdateDefaultUpdatedAt()
		muo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (muo *MangaUpdateOne) check() error {
	if v, ok := muo.mutation.Title(); ok {
		if err := manga.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Manga.title": %w`, err)}
		}
	}
	if v, ok := muo.mutation.Volumes(); ok {
		if err := manga.VolumesValidator(v); err != nil {
			return &ValidationError{Name: "volumes", err: fmt.Errorf(`ent: validator failed for field "Manga.volumes": %w`, err)}
		}
	}
	if v, ok := muo.mutation.Chapters(); ok {
		if err := manga.ChaptersValidator(v); err != nil {
			return &ValidationError{Name: "chapters", err: fmt.Errorf(`ent: validator failed for field "Manga.chapters": %w`, err)}
		}
	}
	if v, ok := muo.mutation.GetType(); ok {
		if err := manga.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Manga.type": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (muo *MangaUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *MangaUpdateOne {
	muo.modifiers = append(muo.modifiers, modifiers...)
	return muo
}

func (muo *MangaUpdateOne) sqlSave(ctx context.Context) (_node *Manga, err error) {
	if err := muo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(manga.Table, manga.Columns, sqlgraph.NewFieldSpec(manga.FieldID, field.TypeUint))
	id, ok := muo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Manga.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := muo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, manga.FieldID)
		for _, f := range fields {
			if !manga.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != manga.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := muo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := muo.mutation.DeletedAt(); ok {
		_spec.SetField(manga.FieldDeletedAt, field.TypeTime, value)
	}
	if muo.mutation.DeletedAtCleared() {
		_spec.ClearField(manga.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := muo.mutation.CreatedAt(); ok {
		_spec.SetField(manga.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := muo.mutation.UpdatedAt(); ok {
		_spec.SetField(manga.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := muo.mutation.Title(); ok {
		_spec.SetField(manga.FieldTitle, field.TypeString, value)
	}
	if value, ok := muo.mutation.Description(); ok {
		_spec.SetField(manga.FieldDescription, field.TypeString, value)
	}
	if muo.mutation.DescriptionCleared() {
		_spec.ClearField(manga.FieldDescription, field.TypeString)
	}
	if value, ok := muo.mutation.CoverURL(); ok {
		_spec.SetField(manga.FieldCoverURL, field.TypeString, value)
	}
	if muo.mutation.CoverURLCleared() {
		_spec.ClearField(manga.FieldCoverURL, field.TypeString)
	}
	if value, ok := muo.mutation.Authors(); ok {
		_spec.SetField(manga.FieldAuthors, field.TypeString, value)
	}
	if muo.mutation.AuthorsCleared() {
		_spec.ClearField(manga.FieldAuthors, field.TypeString)
	}
	if value, ok := muo.mutation.Publishers(); ok {
		_spec.SetField(manga.FieldPublishers, field.TypeString, value)
	}
	if muo.mutation.PublishersCleared() {
		_spec.ClearField(manga.FieldPublishers, field.TypeString)
	}
	if value, ok := muo.mutation.Genres(); ok {
		_spec.SetField(manga.FieldGenres, field.TypeString, value)
	}
	if muo.mutation.GenresCleared() {
		_spec.ClearField(manga.FieldGenres, field.TypeString)
	}
	if value, ok := muo.mutation.Premiered(); ok {
		_spec.SetField(manga.FieldPremiered, field.TypeTime, value)
	}
	if muo.mutation.PremieredCleared() {
		_spec.ClearField(manga.FieldPremiered, field.TypeTime)
	}
	if value, ok := muo.mutation.Draft(); ok {
		_spec.SetField(manga.FieldDraft, field.TypeBool, value)
	}
	if value, ok := muo.mutation.Accepted(); ok {
		_spec.SetField(manga.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := muo.mutation.Contributor(); ok {
		_spec.SetField(manga.FieldContributor, field.TypeString, value)
	}
	if muo.mutation.ContributorCleared() {
		_spec.ClearField(manga.FieldContributor, field.TypeString)
	}
	if value, ok := muo.mutation.Volumes(); ok {
		_spec.SetField(manga.FieldVolumes, field.TypeInt, value)
	}
	if value, ok := muo.mutation.AddedVolumes(); ok {
		_spec.AddField(manga.FieldVolumes, field.TypeInt, value)
	}
	if value, ok := muo.mutation.Chapters(); ok {
		_spec.SetField(manga.FieldChapters, field.TypeInt, value)
	}
	if value, ok := muo.mutation.AddedChapters(); ok {
		_spec.AddField(manga.FieldChapters, field.TypeInt, value)
	}
	if value, ok := muo.mutation.GetType(); ok {
		_spec.SetField(manga.FieldType, field.TypeEnum, value)
	}
	if value, ok := muo.mutation.FinishedAt(); ok {
		_spec.SetField(manga.FieldFinishedAt, field.TypeTime, value)
	}
	if muo.mutation.FinishedAtCleared() {
		_spec.ClearField(manga.FieldFinishedAt, field.TypeTime)
	}
	_spec.AddModifiers(muo.modifiers...)
	_node = &Manga{config: muo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, muo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{manga.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	muo.mutation.done = true
	return _node, nil
}
