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
	"github.com/anzhiyu-c/mediawall-app/ent/book"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// BookUpdate is the builder for updating Book entities.
type BookUpdate struct {
	config
	hooks     []Hook
	mutation  *BookMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the BookUpdate builder.
func (bu *BookUpdate) Where(ps ...predicate.Book) *BookUpdate {
	bu.mutation.Where(ps...)
	return bu
}

// SetDeletedAt sets the "deleted_at" field.
func (bu *BookUpdate) SetDeletedAt(t time.Time) *BookUpdate {
	bu.mutation.SetDeletedAt(t)
	return bu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (bu *BookUpdate) SetNillableDeletedAt(t *time.Time) *BookUpdate {
	if t != nil {
		bu.SetDeletedAt(*t)
	}
	return bu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (bu *BookUpdate) ClearDeletedAt() *BookUpdate {
	bu.mutation.ClearDeletedAt()
	return bu
}

// SetCreatedAt sets the "created_at" field.
func (bu *BookUpdate) SetCreatedAt(t time.Time) *BookUpdate {
	bu.mutation.SetCreatedAt(t)
	return bu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bu *BookUpdate) SetNillableCreatedAt(t *time.Time) *BookUpdate {
	if t != nil {
		bu.SetCreatedAt(*t)
	}
	return bu
}

// SetUpdatedAt sets the "updated_at" field.
func (bu *BookUpdate) SetUpdatedAt(t time.Time) *BookUpdate {
	bu.mutation.SetUpdatedAt(t)
	return bu
}

// SetTitle sets the "title" field.
func (bu *BookUpdate) SetTitle(s string) *BookUpdate {
	bu.mutation.SetTitle(s)
	return bu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (bu *BookUpdate) SetNillableTitle(s *string) *BookUpdate {
	if s != nil {
		bu.SetTitle(*s)
	}
	return bu
}

// SetDescription sets the "description" field.
func (bu *BookUpdate) SetDescription(s string) *BookUpdate {
	bu.mutation.SetDescription(s)
	return bu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (bu *BookUpdate) SetNillableDescription(s *string) *BookUpdate {
	if s != nil {
		bu.SetDescription(*s)
	}
	return bu
}

// ClearDescription clears the value of the "description" field.
func (bu *BookUpdate) ClearDescription() *BookUpdate {
	bu.mutation.ClearDescription()
	return bu
}

// SetCoverURL sets the "cover_url" field.
func (bu *BookUpdate) SetCoverURL(s string) *BookUpdate {
	bu.mutation.SetCoverURL(s)
	return bu
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (bu *BookUpdate) SetNillableCoverURL(s *string) *BookUpdate {
	if s != nil {
		bu.SetCoverURL(*s)
	}
	return bu
}

// ClearCoverURL clears the value of the "cover_url" field.
func (bu *BookUpdate) ClearCoverURL() *BookUpdate {
	bu.mutation.ClearCoverURL()
	return bu
}

// SetAuthors sets the "authors" field.
func (bu *BookUpdate) SetAuthors(s string) *BookUpdate {
	bu.mutation.SetAuthors(s)
	return bu
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (bu *BookUpdate) SetNillableAuthors(s *string) *BookUpdate {
	if s != nil {
		bu.SetAuthors(*s)
	}
	return bu
}

// ClearAuthors clears the value of the "authors" field.
func (bu *BookUpdate) ClearAuthors() *BookUpdate {
	bu.mutation.ClearAuthors()
	return bu
}

// SetPublishers sets the "publishers" field.
func (bu *BookUpdate) SetPublishers(s string) *BookUpdate {
	bu.mutation.SetPublishers(s)
	return bu
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (bu *BookUpdate) SetNillablePublishers(s *string) *BookUpdate {
	if s != nil {
		bu.SetPublishers(*s)
	}
	return bu
}

// ClearPublishers clears the value of the "publishers" field.
func (bu *BookUpdate) ClearPublishers() *BookUpdate {
	bu.mutation.ClearPublishers()
	return bu
}

// SetGenres sets the "genres" field.
func (bu *BookUpdate) SetGenres(s string) *BookUpdate {
	bu.mutation.SetGenres(s)
	return bu
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (bu *BookUpdate) SetNillableGenres(s *string) *BookUpdate {
	if s != nil {
		bu.SetGenres(*s)
	}
	return bu
}

// ClearGenres clears the value of the "genres" field.
func (bu *BookUpdate) ClearGenres() *BookUpdate {
	bu.mutation.ClearGenres()
	return bu
}

// SetPremiered sets the "premiered" field.
func (bu *BookUpdate) SetPremiered(t time.Time) *BookUpdate {
	bu.mutation.SetPremiered(t)
	return bu
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (bu *BookUpdate) SetNillablePremiered(t *time.Time) *BookUpdate {
	if t != nil {
		bu.SetPremiered(*t)
	}
	return bu
}

// ClearPremiered clears the value of the "premiered" field.
func (bu *BookUpdate) ClearPremiered() *BookUpdate {
	bu.mutation.ClearPremiered()
	return bu
}

// SetDraft sets the "draft" field.
func (bu *BookUpdate) SetDraft(b bool) *BookUpdate {
	bu.mutation.SetDraft(b)
	return bu
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (bu *BookUpdate) SetNillableDraft(b *bool) *BookUpdate {
	if b != nil {
		bu.SetDraft(*b)
	}
	return bu
}

// SetAccepted sets the "accepted" field.
func (bu *BookUpdate) SetAccepted(b bool) *BookUpdate {
	bu.mutation.SetAccepted(b)
	return bu
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (bu *BookUpdate) SetNillableAccepted(b *bool) *BookUpdate {
	if b != nil {
		bu.SetAccepted(*b)
	}
	return bu
}

// SetContributor sets the "contributor" field.
func (bu *BookUpdate) SetContributor(s string) *BookUpdate {
	bu.mutation.SetContributor(s)
	return bu
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (bu *BookUpdate) SetNillableContributor(s *string) *BookUpdate {
	if s != nil {
		bu.SetContributor(*s)
	}
	return bu
}

// ClearContributor clears the value of the "contributor" field.
func (bu *BookUpdate) ClearContributor() *BookUpdate {
	bu.mutation.ClearContributor()
	return bu
}

// SetPages sets the "pages" field.
func (bu *BookUpdate) SetPages(i int) *BookUpdate {
	bu.mutation.ResetPages()
	bu.mutation.SetPages(i)
	return bu
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (bu *BookUpdate) SetNillablePages(i *int) *BookUpdate {
	if i != nil {
		bu.SetPages(*i)
	}
	return bu
}

// AddPages adds i to the "pages" field.
func (bu *BookUpdate) AddPages(i int) *BookUpdate {
	bu.mutation.AddPages(i)
	return bu
}

// SetSeries sets the "series" field.
func (bu *BookUpdate) SetSeries(s string) *BookUpdate {
	bu.mutation.SetSeries(s)
	return bu
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (bu *BookUpdate) SetNillableSeries(s *string) *BookUpdate {
	if s != nil {
		bu.SetSeries(*s)
	}
	return bu
}

// ClearSeries clears the value of the "series" field.
func (bu *BookUpdate) ClearSeries() *BookUpdate {
	bu.mutation.ClearSeries()
	return bu
}

// Mutation returns the BookMutation object of the builder.
func (bu *BookUpdate) Mutation() *BookMutation {
	return bu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bu *BookUpdate) Save(ctx context.Context) (int, error) {
	if err := bu.defaults(); err != nil {
		return 0, err
	}
	return withHooks(ctx, bu.sqlSave, bu.mutation, bu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bu *BookUpdate) SaveX(ctx context.Context) int {
	affected, err := bu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bu *BookUpdate) Exec(ctx context.Context) error {
	_, err := bu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bu *BookUpdate) ExecX(ctx context.Context) {
	if err := bu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bu *BookUpdate) defaults() error {
	if _, ok := bu.mutation.UpdatedAt(); !ok {
		if book.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized book.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := book.UpdateDefaultUpdatedAt()
		bu.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (bu *BookUpdate) check() error {
	if v, ok := bu.mutation.Title(); ok {
		if err := book.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Book.title": %w`, err)}
		}
	}
	if v, ok := bu.mutation.Pages(); ok {
		if err := book.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "Book.pages": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bu *BookUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BookUpdate {
	bu.modifiers = append(bu.modifiers, modifiers...)
	return bu
}

func (bu *BookUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(book.Table, book.Columns, sqlgraph.NewFieldSpec(book.FieldID, field.TypeUint))
	if ps := bu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bu.mutation.DeletedAt(); ok {
		_spec.SetField(book.FieldDeletedAt, field.TypeTime, value)
	}
	if bu.mutation.DeletedAtCleared() {
		_spec.ClearField(book.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := bu.mutation.CreatedAt(); ok {
		_spec.SetField(book.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := bu.mutation.UpdatedAt(); ok {
		_spec.SetField(book.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := bu.mutation.Title(); ok {
		_spec.SetField(book.FieldTitle, field.TypeString, value)
	}
	if value, ok := bu.mutation.Description(); ok {
		_spec.SetField(book.FieldDescription, field.TypeString, value)
	}
	if bu.mutation.DescriptionCleared() {
		_spec.ClearField(book.FieldDescription, field.TypeString)
	}
	if value, ok := bu.mutation.CoverURL(); ok {
		_spec.SetField(book.FieldCoverURL, field.TypeString, value)
	}
	if bu.mutation.CoverURLCleared() {
		_spec.ClearField(book.FieldCoverURL, field.TypeString)
	}
	if value, ok := bu.mutation.Authors(); ok {
		_spec.SetField(book.FieldAuthors, field.TypeString, value)
	}
	if bu.mutation.AuthorsCleared() {
		_spec.ClearField(book.FieldAuthors, field.TypeString)
	}
	if value, ok := bu.mutation.Publishers(); ok {
		_spec.SetField(book.FieldPublishers, field.TypeString, value)
	}
	if bu.mutation.PublishersCleared() {
		_spec.ClearField(book.FieldPublishers, field.TypeString)
	}
	if value, ok := bu.mutation.Genres(); ok {
		_spec.SetField(book.FieldGenres, field.TypeString, value)
	}
	if bu.mutation.GenresCleared() {
		_spec.ClearField(book.FieldGenres, field.TypeString)
	}
	if value, ok := bu.mutation.Premiered(); ok {
		_spec.SetField(book.FieldPremiered, field.TypeTime, value)
	}
	if bu.mutation.PremieredCleared() {
		_spec.ClearField(book.FieldPremiered, field.TypeTime)
	}
	if value, ok := bu.mutation.Draft(); ok {
		_spec.SetField(book.FieldDraft, field.TypeBool, value)
	}
	if value, ok := bu.mutation.Accepted(); ok {
		_spec.SetField(book.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := bu.mutation.Contributor(); ok {
		_spec.SetField(book.FieldContributor, field.TypeString, value)
	}
	if bu.mutation.ContributorCleared() {
		_spec.ClearField(book.FieldContributor, field.TypeString)
	}
	if value, ok := bu.mutation.Pages(); ok {
		_spec.SetField(book.FieldPages, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedPages(); ok {
		_spec.AddField(book.FieldPages, field.TypeInt, value)
	}
	if value, ok := bu.mutation.Series(); ok {
		_spec.SetField(book.FieldSeries, field.TypeString, value)
	}
	if bu.mutation.SeriesCleared() {
		_spec.ClearField(book.FieldSeries, field.TypeString)
	}
	_spec.AddModifiers(bu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, bu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{book.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bu.mutation.done = true
	return n, nil
}

// BookUpdateOne is the builder for updating a single Book entity.
type BookUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *BookMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetDeletedAt sets the "deleted_at" field.
func (buo *BookUpdateOne) SetDeletedAt(t time.Time) *BookUpdateOne {
	buo.mutation.SetDeletedAt(t)
	return buo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableDeletedAt(t *time.Time) *BookUpdateOne {
	if t != nil {
		buo.SetDeletedAt(*t)
	}
	return buo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (buo *BookUpdateOne) ClearDeletedAt() *BookUpdateOne {
	buo.mutation.ClearDeletedAt()
	return buo
}

// SetCreatedAt sets the "created_at" field.
func (buo *BookUpdateOne) SetCreatedAt(t time.Time) *BookUpdateOne {
	buo.mutation.SetCreatedAt(t)
	return buo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableCreatedAt(t *time.Time) *BookUpdateOne {
	if t != nil {
		buo.SetCreatedAt(*t)
	}
	return buo
}

// SetUpdatedAt sets the "updated_at" field.
func (buo *BookUpdateOne) SetUpdatedAt(t time.Time) *BookUpdateOne {
	buo.mutation.SetUpdatedAt(t)
	return buo
}

// SetTitle sets the "title" field.
func (buo *BookUpdateOne) SetTitle(s string) *BookUpdateOne {
	buo.mutation.SetTitle(s)
	return buo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableTitle(s *string) *BookUpdateOne {
	if s != nil {
		buo.SetTitle(*s)
	}
	return buo
}

// SetDescription sets the "description" field.
func (buo *BookUpdateOne) SetDescription(s string) *BookUpdateOne {
	buo.mutation.SetDescription(s)
	return buo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableDescription(s *string) *BookUpdateOne {
	if s != nil {
		buo.SetDescription(*s)
	}
	return buo
}

// ClearDescription clears the value of the "description" field.
func (buo *BookUpdateOne) ClearDescription() *BookUpdateOne {
	buo.mutation.ClearDescription()
	return buo
}

// SetCoverURL sets the "cover_url" field.
func (buo *BookUpdateOne) SetCoverURL(s string) *BookUpdateOne {
	buo.mutation.SetCoverURL(s)
	return buo
}

// SetNillableCoverURL sets the "cover_url" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableCoverURL(s *string) *BookUpdateOne {
	if s != nil {
		buo.SetCoverURL(*s)
	}
	return buo
}

// ClearCoverURL clears the value of the "cover_url" field.
func (buo *BookUpdateOne) ClearCoverURL() *BookUpdateOne {
	buo.mutation.ClearCoverURL()
	return buo
}

// SetAuthors sets the "authors" field.
func (buo *BookUpdateOne) SetAuthors(s string) *BookUpdateOne {
	buo.mutation.SetAuthors(s)
	return buo
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableAuthors(s *string) *BookUpdateOne {
	if s != nil {
		buo.SetAuthors(*s)
	}
	return buo
}

// ClearAuthors clears the value of the "authors" field.
func (buo *BookUpdateOne) ClearAuthors() *BookUpdateOne {
	buo.mutation.ClearAuthors()
	return buo
}

// SetPublishers sets the "publishers" field.
func (buo *BookUpdateOne) SetPublishers(s string) *BookUpdateOne {
	buo.mutation.SetPublishers(s)
	return buo
}

// SetNillablePublishers sets the "publishers" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillablePublishers(s *string) *BookUpdateOne {
	if s != nil {
		buo.SetPublishers(*s)
	}
	return buo
}

// ClearPublishers clears the value of the "publishers" field.
func (buo *BookUpdateOne) ClearPublishers() *BookUpdateOne {
	buo.mutation.ClearPublishers()
	return buo
}

// SetGenres sets the "genres" field.
func (buo *BookUpdateOne) SetGenres(s string) *BookUpdateOne {
	buo.mutation.SetGenres(s)
	return buo
}

// SetNillableGenres sets the "genres" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableGenres(s *string) *BookUpdateOne {
	if s != nil {
		buo.SetGenres(*s)
	}
	return buo
}

// ClearGenres clears the value of the "genres" field.
func (buo *BookUpdateOne) ClearGenres() *BookUpdateOne {
	buo.mutation.ClearGenres()
	return buo
}

// SetPremiered sets the "premiered" field.
func (buo *BookUpdateOne) SetPremiered(t time.Time) *BookUpdateOne {
	buo.mutation.SetPremiered(t)
	return buo
}

// SetNillablePremiered sets the "premiered" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillablePremiered(t *time.Time) *BookUpdateOne {
	if t != nil {
		buo.SetPremiered(*t)
	}
	return buo
}

// ClearPremiered clears the value of the "premiered" field.
func (buo *BookUpdateOne) ClearPremiered() *BookUpdateOne {
	buo.mutation.ClearPremiered()
	return buo
}

// SetDraft sets the "draft" field.
func (buo *BookUpdateOne) SetDraft(b bool) *BookUpdateOne {
	buo.mutation.SetDraft(b)
	return buo
}

// SetNillableDraft sets the "draft" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableDraft(b *bool) *BookUpdateOne {
	if b != nil {
		buo.SetDraft(*b)
	}
	return buo
}

// SetAccepted sets the "accepted" field.
func (buo *BookUpdateOne) SetAccepted(b bool) *BookUpdateOne {
	buo.mutation.SetAccepted(b)
	return buo
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableAccepted(b *bool) *BookUpdateOne {
	if b != nil {
		buo.SetAccepted(*b)
	}
	return buo
}

// SetContributor sets the "contributor" field.
func (buo *BookUpdateOne) SetContributor(s string) *BookUpdateOne {
	buo.mutation.SetContributor(s)
	return buo
}

// SetNillableContributor sets the "contributor" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableContributor(s *string) *BookUpdateOne {
	if s != nil {
		buo.SetContributor(*s)
	}
	return buo
}

// ClearContributor clears the value of the "contributor" field.
func (buo *BookUpdateOne) ClearContributor() *BookUpdateOne {
	buo.mutation.ClearContributor()
	return buo
}

// SetPages sets the "pages" field.
func (buo *BookUpdateOne) SetPages(i int) *BookUpdateOne {
	buo.mutation.ResetPages()
	buo.mutation.SetPages(i)
	return buo
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillablePages(i *int) *BookUpdateOne {
	if i != nil {
		buo.SetPages(*i)
	}
	return buo
}

// AddPages adds i to the "pages" field.
func (buo *BookUpdateOne) AddPages(i int) *BookUpdateOne {
	buo.mutation.AddPages(i)
	return buo
}

// SetSeries sets the "series" field.
func (buo *BookUpdateOne) SetSeries(s string) *BookUpdateOne {
	buo.mutation.SetSeries(s)
	return buo
}

// SetNillableSeries sets the "series" field if the given value is not nil.
func (buo *BookUpdateOne) SetNillableSeries(s *string) *BookUpdateOne {
	if s != nil {
		buo.SetSeries(*s)
	}
	return buo
}

// ClearSeries clears the value of the "series" field.
func (buo *BookUpdateOne) ClearSeries() *BookUpdateOne {
	buo.mutation.ClearSeries()
	return buo
}

// Mutation returns the BookMutation object of the builder.
func (buo *BookUpdateOne) Mutation() *BookMutation {
	return buo.mutation
}

// Where appends a list predicates to the BookUpdate builder.
func (buo *BookUpdateOne) Where(ps ...predicate.Book) *BookUpdateOne {
	buo.mutation.Where(ps...)
	return buo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (buo *BookUpdateOne) Select(field string, fields ...string) *BookUpdateOne {
	buo.fields = append([]string{field}, fields...)
	return buo
}

// Save executes the query and returns the updated Book entity.
func (buo *BookUpdateOne) Save(ctx context.Context) (*Book, error) {
	if err := buo.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, buo.sqlSave, buo.mutation, buo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (buo *BookUpdateOne) SaveX(ctx context.Context) *Book {
	node, err := buo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (buo *BookUpdateOne) Exec(ctx context.Context) error {
	_, err := buo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (buo *BookUpdateOne) ExecX(ctx context.Context) {
	if err := buo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (buo *BookUpdateOne) defaults() error {
	if _, ok := buo.mutation.UpdatedAt(); !ok {
		if book.UpdateDefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized book.UpdateDefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := book.UpdateDefaultUpdatedAt()
		buo.mutation.SetUpdatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (buo *BookUpdateOne) check() error {
	if v, ok := buo.mutation.Title(); ok {
		if err := book.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Book.title": %w`, err)}
		}
	}
	if v, ok := buo.mutation.Pages(); ok {
		if err := book.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "Book.pages": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (buo *BookUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BookUpdateOne {
	buo.modifiers = append(buo.modifiers, modifiers...)
	return buo
}

func (buo *BookUpdateOne) sqlSave(ctx context.Context) (_node *Book, err error) {
	if err := buo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(book.Table, book.Columns, sqlgraph.NewFieldSpec(book.FieldID, field.TypeUint))
	id, ok := buo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Book.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := buo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, book.FieldID)
		for _, f := range fields {
			if !book.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != book.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := buo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := buo.mutation.DeletedAt(); ok {
		_spec.SetField(book.FieldDeletedAt, field.TypeTime, value)
	}
	if buo.mutation.DeletedAtCleared() {
		_spec.ClearField(book.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := buo.mutation.CreatedAt(); ok {
		_spec.SetField(book.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := buo.mutation.UpdatedAt(); ok {
		_spec.SetField(book.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := buo.mutation.Title(); ok {
		_spec.SetField(book.FieldTitle, field.TypeString, value)
	}
	if value, ok := buo.mutation.Description(); ok {
		_spec.SetField(book.FieldDescription, field.TypeString, value)
	}
	if buo.mutation.DescriptionCleared() {
		_spec.ClearField(book.FieldDescription, field.TypeString)
	}
	if value, ok := buo.mutation.CoverURL(); ok {
		_spec.SetField(book.FieldCoverURL, field.TypeString, value)
	}
	if buo.mutation.CoverURLCleared() {
		_spec.ClearField(book.FieldCoverURL, field.TypeString)
	}
	if value, ok := buo.mutation.Authors(); ok {
		_spec.SetField(book.FieldAuthors, field.TypeString, value)
	}
	if buo.mutation.AuthorsCleared() {
		_spec.ClearField(book.FieldAuthors, field.TypeString)
	}
	if value, ok := buo.mutation.Publishers(); ok {
		_spec.SetField(book.FieldPublishers, field.TypeString, value)
	}
	if buo.mutation.PublishersCleared() {
		_spec.ClearField(book.FieldPublishers, field.TypeString)
	}
	if value, ok := buo.mutation.Genres(); ok {
		_spec.SetField(book.FieldGenres, field.TypeString, value)
	}
	if buo.mutation.GenresCleared() {
		_spec.ClearField(book.FieldGenres, field.TypeString)
	}
	if value, ok := buo.mutation.Premiered(); ok {
		_spec.SetField(book.FieldPremiered, field.TypeTime, value)
	}
	if buo.mutation.PremieredCleared() {
		_spec.ClearField(book.FieldPremiered, field.TypeTime)
	}
	if value, ok := buo.mutation.Draft(); ok {
		_spec.SetField(book.FieldDraft, field.TypeBool, value)
	}
	if value, ok := buo.mutation.Accepted(); ok {
		_spec.SetField(book.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := buo.mutation.Contributor(); ok {
		_spec.SetField(book.FieldContributor, field.TypeString, value)
	}
	if buo.mutation.ContributorCleared() {
		_spec.ClearField(book.FieldContributor, field.TypeString)
	}
	if value, ok := buo.mutation.Pages(); ok {
		_spec.SetField(book.FieldPages, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedPages(); ok {
		_spec.AddField(book.FieldPages, field.TypeInt, value)
	}
	if value, ok := buo.mutation.Series(); ok {
		_spec.SetField(book.FieldSeries, field.TypeString, value)
	}
	if buo.mutation.SeriesCleared() {
		_spec.ClearField(book.FieldSeries, field.TypeString)
	}
	_spec.AddModifiers(buo.modifiers...)
	_node = &Book{config: buo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, buo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{book.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	buo.mutation.done = true
	return _node, nil
}
