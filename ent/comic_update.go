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
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ComicUpdate is the builder for updating Comic entities.
type ComicUpdate struct {
	config
	hooks     []Hook
	mutation  *ComicMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the ComicUpdate builder.
func (cu *ComicUpdate) Where(ps ...predicate.Comic) *ComicUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetDeletedAt sets the "deleted_at" field.
func (cu *ComicUpdate) SetDeletedAt(t time.Time) *ComicUpdate {
	cu.mutation.SetDeletedAt(t)
	return cu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableDeletedAt(t *time.Time) *ComicUpdate {
	if t != nil {
		cu.SetDeletedAt(*t)
	}
	return cu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (cu *ComicUpdate) ClearDeletedAt() *ComicUpdate {
	cu.mutation.ClearDeletedAt()
	return cu
}

// SetCreatedAt sets the "created_at" field.
func (cu *ComicUpdate) SetCreatedAt(t time.Time) *ComicUpdate {
	cu.mutation.SetCreatedAt(t)
	return cu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableCreatedAt(t *time.Time) *ComicUpdate {
	if t != nil {
		cu.SetCreatedAt(*t)
	}
	return cu
}

// SetUpdatedAt sets the "updated_at" field.
func (cu *ComicUpdate) SetUpdatedAt(t time.Time) *ComicUpdate {
	cu.mutation.SetUpdatedAt(t)
	return cu
}

// SetTitle sets the "title" field.
func (cu *ComicUpdate) SetTitle(s string) *ComicUpdate {
	cu.mutation.SetTitle(s)
	return cu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableTitle(s *string) *ComicUpdate {
	if s != nil {
		cu.SetTitle(*s)
	}
	return cu
}

// SetDescription sets the "description" field.
func (cu *ComicUpdate) SetDescription(s string) *ComicUpdate {
	cu.mutation.SetDescription(s)
	return cu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableDescription(s *string) *ComicUpdate {
	if s != nil {
		cu.SetDescription(*s)
	}
	return cu
}

// ClearDescription clears the value of the "description" field.
func (cu *ComicUpdate) ClearDescription() *ComicUpdate {
	cu.mutation.ClearDescription()
	return cu
}

// SetCoverURL sets the "cover_url" field.
func (cu *ComicUpdate) SetCoverURL(s string) *ComicUpdate {
	cu.mutation.SetCoverURL(s)
	return cu
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableCoverURL(s *string) *ComicUpdate {
	if s != nil {
		cu.SetCoverURL(*s)
	}
	return cu
}

// ClearCoverURL clears the value of the "cover_url" field.
func (cu *ComicUpdate) ClearCoverURL() *ComicUpdate {
	cu.mutation.ClearCoverURL()
	return cu
}

// SetAuthors sets the "authors" field.
func (cu *ComicUpdate) SetAuthors(s string) *ComicUpdate {
	cu.mutation.SetAuthors(s)
	return cu
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableAuthors(s *string) *ComicUpdate {
	if s != nil {
		cu.SetAuthors(*s)
	}
	return cu
}

// ClearAuthors clears the value of the "authors" field.
func (cu *ComicUpdate) ClearAuthors() *ComicUpdate {
	cu.mutation.ClearAuthors()
	return cu
}

// SetPublishers sets the "publishers" field.
func (cu *ComicUpdate) SetPublishers(s string) *ComicUpdate {
	cu.mutation.SetPublishers(s)
	return cu
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (cu *ComicUpdate) SetNillablePublishers(s *string) *ComicUpdate {
	if s != nil {
		cu.SetPublishers(*s)
	}
	return cu
}

// ClearPublishers clears the value of the "publishers" field.
func (cu *ComicUpdate) ClearPublishers() *ComicUpdate {
	cu.mutation.ClearPublishers()
	return cu
}

// SetGenres sets the "genres" field.
func (cu *ComicUpdate) SetGenres(s string) *ComicUpdate {
	cu.mutation.SetGenres(s)
	return cu
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableGenres(s *string) *ComicUpdate {
	if s != nil {
		cu.SetGenres(*s)
	}
	return cu
}

// ClearGenres clears the value of the "genres" field.
func (cu *ComicUpdate) ClearGenres() *ComicUpdate {
	cu.mutation.ClearGenres()
	return cu
}

// SetPremiered sets the "premiered" field.
func (cu *ComicUpdate) SetPremiered(t time.Time) *ComicUpdate {
	cu.mutation.SetPremiered(t)
	return cu
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (cu *ComicUpdate) SetNillablePremiered(t *time.Time) *ComicUpdate {
	if t != nil {
		cu.SetPremiered(*t)
	}
	return cu
}

// ClearPremiered clears the value of the "premiered" field.
func (cu *ComicUpdate) ClearPremiered() *ComicUpdate {
	cu.mutation.ClearPremiered()
	return cu
}

// SetDraft sets the "draft" field.
func (cu *ComicUpdate) SetDraft(b bool) *ComicUpdate {
	cu.mutation.SetDraft(b)
	return cu
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableDraft(b *bool) *ComicUpdate {
	if b != nil {
		cu.SetDraft(*b)
	}
	return cu
}

// SetAccepted sets the "accepted" field.
func (cu *ComicUpdate) SetAccepted(b bool) *ComicUpdate {
	cu.mutation.SetAccepted(b)
	return cu
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableAccepted(b *bool) *ComicUpdate {
	if b != nil {
		cu.SetAccepted(*b)
	}
	return cu
}

// SetContributor sets the "contributor" field.
func (cu *ComicUpdate) SetContributor(s string) *ComicUpdate {
	cu.mutation.SetContributor(s)
	return cu
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableContributor(s *string) *ComicUpdate {
	if s != nil {
		cu.SetContributor(*s)
	}
	return cu
}

// ClearContributor clears the value of the "contributor" field.
func (cu *ComicUpdate) ClearContributor() *ComicUpdate {
	cu.mutation.ClearContributor()
	return cu
}

// SetIssues sets the "issues" field.
func (cu *ComicUpdate) SetIssues(i int) *ComicUpdate {
	cu.mutation.ResetIssues()
	cu.mutation.SetIssues(i)
	return cu
}

// SetNillableIssues sets the "issues" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableIssues(i *int) *ComicUpdate {
	if i != nil {
		cu.SetIssues(*i)
	}
	return cu
}

// AddIssues adds i to the "issues" field.
func (cu *ComicUpdate) AddIssues(i int) *ComicUpdate {
	cu.mutation.AddIssues(i)
	return cu
}

// SetFinishedAt sets the "finished_at" field.
func (cu *ComicUpdate) SetFinishedAt(t time.Time) *ComicUpdate {
	cu.mutation.SetFinishedAt(t)
	return cu
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (cu *ComicUpdate) SetNillableFinishedAt(t *time.Time) *ComicUpdate {
	if t != nil {
		cu.SetFinishedAt(*t)
	}
	return cu
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (cu *ComicUpdate) ClearFinishedAt() *ComicUpdate {
	cu.mutation.ClearFinishedAt()
	return cu
}

// Mutation returns the ComicMutation object of the builder.
func (cu *ComicUpdate) Mutation() *ComicMutation {
	return cu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *ComicUpdate) Save(ctx context.Context) (int, error) {
	if err := cu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *ComicUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *ComicUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *ComicUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cu *ComicUpdate) defaults() error {
	if _, ok := cu.mutation.UpdatedAt(); !ok {
		if comic.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized comic.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := comic.UpdateDefaultUpdatedAt()
		cu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (cu *ComicUpdate) check() error {
	if v, ok := cu.mutation.Title(); ok {
		if err := comic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Comic.title": %w`, err)}
		}
	}
	if v, ok := cu.mutation.Issues(); ok {
		if err := comic.IssuesValidator(v); err != nil {
			return &ValidationError{Name: "issues", err: fmt.Errorf(`ent: validator failed for field "Comic.issues": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cu *ComicUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ComicUpdate {
	cu.modifiers = append(cu.modifiers, modifiers...)
	return cu
}

func (cu *ComicUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(comic.Table, comic.Columns, sqlgraph.NewFieldSpec(comic.FieldID, field.TypeUint))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.DeletedAt(); ok {
		_spec.SetField(comic.FieldDeletedAt, field.TypeTime, value)
	}
	if cu.mutation.DeletedAtCleared() {
		_spec.ClearField(comic.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := cu.mutation.CreatedAt(); ok {
		_spec.SetField(comic.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := cu.mutation.UpdatedAt(); ok {
		_spec.SetField(comic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cu.mutation.Title(); ok {
		_spec.SetField(comic.FieldTitle, field.TypeString, value)
	}
	if value, ok := cu.mutation.Description(); ok {
		_spec.SetField(comic.FieldDescription, field.TypeString, value)
	}
	if cu.mutation.DescriptionCleared() {
		_spec.ClearField(comic.FieldDescription, field.TypeString)
	}
	if value, ok := cu.mutation.CoverURL(); ok {
		_spec.SetField(comic.FieldCoverURL, field.TypeString, value)
	}
	if cu.mutation.CoverURLCleared() {
		_spec.ClearField(comic.FieldCoverURL, field.TypeString)
	}
	if value, ok := cu.mutation.Authors(); ok {
		_spec.SetField(comic.FieldAuthors, field.TypeString, value)
	}
	if cu.mutation.AuthorsCleared() {
		_spec.ClearField(comic.FieldAuthors, field.TypeString)
	}
	if value, ok := cu.mutation.Publishers(); ok {
		_spec.SetField(comic.FieldPublishers, field.TypeString, value)
	}
	if cu.mutation.PublishersCleared() {
		_spec.ClearField(comic.FieldPublishers, field.TypeString)
	}
	if value, ok := cu.mutation.Genres(); ok {
		_spec.SetField(comic.FieldGenres, field.TypeString, value)
	}
	if cu.mutation.GenresCleared() {
		_spec.ClearField(comic.FieldGenres, field.TypeString)
	}
	if value, ok := cu.mutation.Premiered(); ok {
		_spec.SetField(comic.FieldPremiered, field.TypeTime, value)
	}
	if cu.mutation.PremieredCleared() {
		_spec.ClearField(comic.FieldPremiered, field.TypeTime)
	}
	if value, ok := cu.mutation.Draft(); ok {
		_spec.SetField(comic.FieldDraft, field.TypeBool, value)
	}
	if value, ok := cu.mutation.Accepted(); ok {
		_spec.SetField(comic.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := cu.mutation.Contributor(); ok {
		_spec.SetField(comic.FieldContributor, field.TypeString, value)
	}
	if cu.mutation.ContributorCleared() {
		_spec.ClearField(comic.FieldContributor, field.TypeString)
	}
	if value, ok := cu.mutation.Issues(); ok {
		_spec.SetField(comic.FieldIssues, field.TypeInt, value)
	}
	if value, ok := cu.mutation.AddedIssues(); ok {
		_spec.AddField(comic.FieldIssues, field.TypeInt, value)
	}
	if value, ok := cu.mutation.FinishedAt(); ok {
		_spec.SetField(comic.FieldFinishedAt, field.TypeTime, value)
	}
	if cu.mutation.FinishedAtCleared() {
		_spec.ClearField(comic.FieldFinishedAt, field.TypeTime)
	}
	_spec.AddModifiers(cu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// ComicUpdateOne is the builder for updating a single Comic entity.
type ComicUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *ComicMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetDeletedAt sets the "deleted_at" field.
func (cuo *ComicUpdateOne) SetDeletedAt(t time.Time) *ComicUpdateOne {
	cuo.mutation.SetDeletedAt(t)
	return cuo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableDeletedAt(t *time.Time) *ComicUpdateOne {
	if t != nil {
		cuo.SetDeletedAt(*t)
	}
	return cuo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (cuo *ComicUpdateOne) ClearDeletedAt() *ComicUpdateOne {
	cuo.mutation.ClearDeletedAt()
	return cuo
}

// SetCreatedAt sets the "created_at" field.
func (cuo *ComicUpdateOne) SetCreatedAt(t time.Time) *ComicUpdateOne {
	cuo.mutation.SetCreatedAt(t)
	return cuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableCreatedAt(t *time.Time) *ComicUpdateOne {
	if t != nil {
		cuo.SetCreatedAt(*t)
	}
	return cuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cuo *ComicUpdateOne) SetUpdatedAt(t time.Time) *ComicUpdateOne {
	cuo.mutation.SetUpdatedAt(t)
	return cuo
}

// SetTitle sets the "title" field.
func (cuo *ComicUpdateOne) SetTitle(s string) *ComicUpdateOne {
	cuo.mutation.SetTitle(s)
	return cuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableTitle(s *string) *ComicUpdateOne {
	if s != nil {
		cuo.SetTitle(*s)
	}
	return cuo
}

// SetDescription sets the "description" field.
func (cuo *ComicUpdateOne) SetDescription(s string) *ComicUpdateOne {
	cuo.mutation.SetDescription(s)
	return cuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableDescription(s *string) *ComicUpdateOne {
	if s != nil {
		cuo.SetDescription(*s)
	}
	return cuo
}

// ClearDescription clears the value of the "description" field.
func (cuo *ComicUpdateOne) ClearDescription() *ComicUpdateOne {
	cuo.mutation.ClearDescription()
	return cuo
}

// SetCoverURL sets the "cover_url" field.
func (cuo *ComicUpdateOne) SetCoverURL(s string) *ComicUpdateOne {
	cuo.mutation.SetCoverURL(s)
	return cuo
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableCoverURL(s *string) *ComicUpdateOne {
	if s != nil {
		cuo.SetCoverURL(*s)
	}
	return cuo
}

// ClearCoverURL clears the value of the "cover_url" field.
func (cuo *ComicUpdateOne) ClearCoverURL() *ComicUpdateOne {
	cuo.mutation.ClearCoverURL()
	return cuo
}

// SetAuthors sets the "authors" field.
func (cuo *ComicUpdateOne) SetAuthors(s string) *ComicUpdateOne {
	cuo.mutation.SetAuthors(s)
	return cuo
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableAuthors(s *string) *ComicUpdateOne {
	if s != nil {
		cuo.SetAuthors(*s)
	}
	return cuo
}

// ClearAuthors clears the value of the "authors" field.
func (cuo *ComicUpdateOne) ClearAuthors() *ComicUpdateOne {
	cuo.mutation.ClearAuthors()
	return cuo
}

// SetPublishers sets the "publishers" field.
func (cuo *ComicUpdateOne) SetPublishers(s string) *ComicUpdateOne {
	cuo.mutation.SetPublishers(s)
	return cuo
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillablePublishers(s *string) *ComicUpdateOne {
	if s != nil {
		cuo.SetPublishers(*s)
	}
	return cuo
}

// ClearPublishers clears the value of the "publishers" field.
func (cuo *ComicUpdateOne) ClearPublishers() *ComicUpdateOne {
	cuo.mutation.ClearPublishers()
	return cuo
}

// SetGenres sets the "genres" field.
func (cuo *ComicUpdateOne) SetGenres(s string) *ComicUpdateOne {
	cuo.mutation.SetGenres(s)
	return cuo
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableGenres(s *string) *ComicUpdateOne {
	if s != nil {
		cuo.SetGenres(*s)
	}
	return cuo
}

// ClearGenres clears the value of the "genres" field.
func (cuo *ComicUpdateOne) ClearGenres() *ComicUpdateOne {
	cuo.mutation.ClearGenres()
	return cuo
}

// SetPremiered sets the "premiered" field.
func (cuo *ComicUpdateOne) SetPremiered(t time.Time) *ComicUpdateOne {
	cuo.mutation.SetPremiered(t)
	return cuo
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillablePremiered(t *time.Time) *ComicUpdateOne {
	if t != nil {
		cuo.SetPremiered(*t)
	}
	return cuo
}

// ClearPremiered clears the value of the "premiered" field.
func (cuo *ComicUpdateOne) ClearPremiered() *ComicUpdateOne {
	cuo.mutation.ClearPremiered()
	return cuo
}

// SetDraft sets the "draft" field.
func (cuo *ComicUpdateOne) SetDraft(b bool) *ComicUpdateOne {
	cuo.mutation.SetDraft(b)
	return cuo
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableDraft(b *bool) *ComicUpdateOne {
	if b != nil {
		cuo.SetDraft(*b)
	}
	return cuo
}

// SetAccepted sets the "accepted" field.
func (cuo *ComicUpdateOne) SetAccepted(b bool) *ComicUpdateOne {
	cuo.mutation.SetAccepted(b)
	return cuo
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableAccepted(b *bool) *ComicUpdateOne {
	if b != nil {
		cuo.SetAccepted(*b)
	}
	return cuo
}

// SetContributor sets the "contributor" field.
func (cuo *ComicUpdateOne) SetContributor(s string) *ComicUpdateOne {
	cuo.mutation.SetContributor(s)
	return cuo
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableContributor(s *string) *ComicUpdateOne {
	if s != nil {
		cuo.SetContributor(*s)
	}
	return cuo
}

// ClearContributor clears the value of the "contributor" field.
func (cuo *ComicUpdateOne) ClearContributor() *ComicUpdateOne {
	cuo.mutation.ClearContributor()
	return cuo
}

// SetIssues sets the "issues" field.
func (cuo *ComicUpdateOne) SetIssues(i int) *ComicUpdateOne {
	cuo.mutation.ResetIssues()
	cuo.mutation.SetIssues(i)
	return cuo
}

// SetNillableIssues sets the "issues" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableIssues(i *int) *ComicUpdateOne {
	if i != nil {
		cuo.SetIssues(*i)
	}
	return cuo
}

// AddIssues adds i to the "issues" field.
func (cuo *ComicUpdateOne) AddIssues(i int) *ComicUpdateOne {
	cuo.mutation.AddIssues(i)
	return cuo
}

// SetFinishedAt sets the "finished_at" field.
func (cuo *ComicUpdateOne) SetFinishedAt(t time.Time) *ComicUpdateOne {
	cuo.mutation.SetFinishedAt(t)
	return cuo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (cuo *ComicUpdateOne) SetNillableFinishedAt(t *time.Time) *ComicUpdateOne {
	if t != nil {
		cuo.SetFinishedAt(*t)
	}
	return cuo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (cuo *ComicUpdateOne) ClearFinishedAt() *ComicUpdateOne {
	cuo.mutation.ClearFinishedAt()
	return cuo
}

// Mutation returns the ComicMutation object of the builder.
func (cuo *ComicUpdateOne) Mutation() *ComicMutation {
	return cuo.mutation
}

// Where appends a list predicates to the ComicUpdate builder.
func (cuo *ComicUpdateOne) Where(ps ...predicate.Comic) *ComicUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *ComicUpdateOne) Select(field string, fields ...string) *ComicUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Comic entity.
func (cuo *ComicUpdateOne) Save(ctx context.Context) (*Comic, error) {
	if err := cuo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *ComicUpdateOne) SaveX(ctx context.Context) *Comic {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *ComicUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *ComicUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cuo *ComicUpdateOne) defaults() error {
	if _, ok := cuo.mutation.UpdatedAt(); !ok {
		if comic.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized comic.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := comic.UpdateDefaultUpdatedAt()
		cuo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (cuo *ComicUpdateOne) check() error {
	if v, ok := cuo.mutation.Title(); ok {
		if err := comic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Comic.title": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.Issues(); ok {
		if err := comic.IssuesValidator(v); err != nil {
			return &ValidationError{Name: "issues", err: fmt.Errorf(`ent: validator failed for field "Comic.issues": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (cuo *ComicUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *ComicUpdateOne {
	cuo.modifiers = append(cuo.modifiers, modifiers...)
	return cuo
}

func (cuo *ComicUpdateOne) sqlSave(ctx context.Context) (_node *Comic, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comic.Table, comic.Columns, sqlgraph.NewFieldSpec(comic.FieldID, field.TypeUint))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Comic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comic.FieldID)
		for _, f := range fields {
			if !comic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.DeletedAt(); ok {
		_spec.SetField(comic.FieldDeletedAt, field.TypeTime, value)
	}
	if cuo.mutation.DeletedAtCleared() {
		_spec.ClearField(comic.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := cuo.mutation.CreatedAt(); ok {
		_spec.SetField(comic.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.UpdatedAt(); ok {
		_spec.SetField(comic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := cuo.mutation.Title(); ok {
		_spec.SetField(comic.FieldTitle, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Description(); ok {
		_spec.SetField(comic.FieldDescription, field.TypeString, value)
	}
	if cuo.mutation.DescriptionCleared() {
		_spec.ClearField(comic.FieldDescription, field.TypeString)
	}
	if value, ok := cuo.mutation.CoverURL(); ok {
		_spec.SetField(comic.FieldCoverURL, field.TypeString, value)
	}
	if cuo.mutation.CoverURLCleared() {
		_spec.ClearField(comic.FieldCoverURL, field.TypeString)
	}
	if value, ok := cuo.mutation.Authors(); ok {
		_spec.SetField(comic.FieldAuthors, field.TypeString, value)
	}
	if cuo.mutation.AuthorsCleared() {
		_spec.ClearField(comic.FieldAuthors, field.TypeString)
	}
	if value, ok := cuo.mutation.Publishers(); ok {
		_spec.SetField(comic.FieldPublishers, field.TypeString, value)
	}
	if cuo.mutation.PublishersCleared() {
		_spec.ClearField(comic.FieldPublishers, field.TypeString)
	}
	if value, ok := cuo.mutation.Genres(); ok {
		_spec.SetField(comic.FieldGenres, field.TypeString, value)
	}
	if cuo.mutation.GenresCleared() {
		_spec.ClearField(comic.FieldGenres, field.TypeString)
	}
	if value, ok := cuo.mutation.Premiered(); ok {
		_spec.SetField(comic.FieldPremiered, field.TypeTime, value)
	}
	if cuo.mutation.PremieredCleared() {
		_spec.ClearField(comic.FieldPremiered, field.TypeTime)
	}
	if value, ok := cuo.mutation.Draft(); ok {
		_spec.SetField(comic.FieldDraft, field.TypeBool, value)
	}
	if value, ok := cuo.mutation.Accepted(); ok {
		_spec.SetField(comic.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := cuo.mutation.Contributor(); ok {
		_spec.SetField(comic.FieldContributor, field.TypeString, value)
	}
	if cuo.mutation.ContributorCleared() {
		_spec.ClearField(comic.FieldContributor, field.TypeString)
	}
	if value, ok := cuo.mutation.Issues(); ok {
		_spec.SetField(comic.FieldIssues, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.AddedIssues(); ok {
		_spec.AddField(comic.FieldIssues, field.TypeInt, value)
	}
	if value, ok := cuo.mutation.FinishedAt(); ok {
		_spec.SetField(comic.FieldFinishedAt, field.TypeTime, value)
	}
	if cuo.mutation.FinishedAtCleared() {
		_spec.ClearField(comic.FieldFinishedAt, field.TypeTime)
	}
	_spec.AddModifiers(cuo.modifiers...)
	_node = &Comic{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
