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
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
)

// WallsBookUpdate is the builder for updating WallsBook entities.
type WallsBookUpdate struct {
	config
	hooks     []Hook
	mutation  *WallsBookMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the WallsBookUpdate builder.
func (wbu *WallsBookUpdate) Where(ps ...predicate.WallsBook) *WallsBookUpdate {
	wbu.mutation.Where(ps...)
	return wbu
}

// SetCreatedAt sets the "created_at" field.
func (wbu *WallsBookUpdate) SetCreatedAt(t time.Time) *WallsBookUpdate {
	wbu.mutation.SetCreatedAt(t)
	return wbu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wbu *WallsBookUpdate) SetNillableCreatedAt(t *time.Time) *WallsBookUpdate {
	if t != nil {
		wbu.SetCreatedAt(*t)
	}
	return wbu
}

// SetUpdatedAt sets the "updated_at" field.
func (wbu *WallsBookUpdate) SetUpdatedAt(t time.Time) *WallsBookUpdate {
	wbu.mutation.SetUpdatedAt(t)
	return wbu
}

// SetUsername sets the "username" field.
func (wbu *WallsBookUpdate) SetUsername(s string) *WallsBookUpdate {
	wbu.mutation.SetUsername(s)
	return wbu
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (wbu *WallsBookUpdate) SetNillableUsername(s *string) *WallsBookUpdate {
	if s != nil {
		wbu.SetUsername(*s)
	}
	return wbu
}

// SetArticleID sets the "article_id" field.
func (wbu *WallsBookUpdate) SetArticleID(u uint) *WallsBookUpdate {
	wbu.mutation.ResetArticleID()
	wbu.mutation.SetArticleID(u)
	return wbu
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (wbu *WallsBookUpdate) SetNillableArticleID(u *uint) *WallsBookUpdate {
	if u != nil {
		wbu.SetArticleID(*u)
	}
	return wbu
}

// AddArticleID adds u to the "article_id" field.
func (wbu *WallsBookUpdate) AddArticleID(u int) *WallsBookUpdate {
	wbu.mutation.AddArticleID(u)
	return wbu
}

// SetStatus sets the "status" field.
func (wbu *WallsBookUpdate) SetStatus(w wallsbook.Status) *WallsBookUpdate {
	wbu.mutation.SetStatus(w)
	return wbu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wbu *WallsBookUpdate) SetNillableStatus(w *wallsbook.Status) *WallsBookUpdate {
	if w != nil {
		wbu.SetStatus(*w)
	}
	return wbu
}

// SetScore sets the "score" field.
func (wbu *WallsBookUpdate) SetScore(f float64) *WallsBookUpdate {
	wbu.mutation.ResetScore()
	wbu.mutation.SetScore(f)
	return wbu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wbu *WallsBookUpdate) SetNillableScore(f *float64) *WallsBookUpdate {
	if f != nil {
		wbu.SetScore(*f)
	}
	return wbu
}

// AddScore adds f to the "score" field.
func (wbu *WallsBookUpdate) AddScore(f float64) *WallsBookUpdate {
	wbu.mutation.AddScore(f)
	return wbu
}

// ClearScore clears the value of the "score" field.
func (wbu *WallsBookUpdate) ClearScore() *WallsBookUpdate {
	wbu.mutation.ClearScore()
	return wbu
}

// SetStartedAt sets the "started_at" field.
func (wbu *WallsBookUpdate) SetStartedAt(t time.Time) *WallsBookUpdate {
	wbu.mutation.SetStartedAt(t)
	return wbu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wbu *WallsBookUpdate) SetNillableStartedAt(t *time.Time) *WallsBookUpdate {
	if t != nil {
		wbu.SetStartedAt(*t)
	}
	return wbu
}

// ClearStartedAt clears the value of the "started_at" field.
func (wbu *WallsBookUpdate) ClearStartedAt() *WallsBookUpdate {
	wbu.mutation.ClearStartedAt()
	return wbu
}

// SetFinishedAt sets the "finished_at" field.
func (wbu *WallsBookUpdate) SetFinishedAt(t time.Time) *WallsBookUpdate {
	wbu.mutation.SetFinishedAt(t)
	return wbu
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wbu *WallsBookUpdate) SetNillableFinishedAt(t *time.Time) *WallsBookUpdate {
	if t != nil {
		wbu.SetFinishedAt(*t)
	}
	return wbu
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (wbu *WallsBookUpdate) ClearFinishedAt() *WallsBookUpdate {
	wbu.mutation.ClearFinishedAt()
	return wbu
}

// SetPages sets the "pages" field.
func (wbu *WallsBookUpdate) SetPages(i int) *WallsBookUpdate {
	wbu.mutation.ResetPages()
	wbu.mutation.SetPages(i)
	return wbu
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (wbu *WallsBookUpdate) SetNillablePages(i *int) *WallsBookUpdate {
	if i != nil {
		wbu.SetPages(*i)
	}
	return wbu
}

// AddPages adds i to the "pages" field.
func (wbu *WallsBookUpdate) AddPages(i int) *WallsBookUpdate {
	wbu.mutation.AddPages(i)
	return wbu
}

// Mutation returns the WallsBookMutation object of the builder.
func (wbu *WallsBookUpdate) Mutation() *WallsBookMutation {
	return wbu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wbu *WallsBookUpdate) Save(ctx context.Context) (int, error) {
	wbu.defaults()
	return withHooks(ctx, wbu.sqlSave, wbu.mutation, wbu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wbu *WallsBookUpdate) SaveX(ctx context.Context) int {
	affected, err := wbu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wbu *WallsBookUpdate) Exec(ctx context.Context) error {
	_, err := wbu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wbu *WallsBookUpdate) ExecX(ctx context.Context) {
	if err := wbu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wbu *WallsBookUpdate) defaults() {
	if _, ok := wbu.mutation.UpdatedAt(); !ok {
		v := wallsbook.UpdateDefaultUpdatedAt()
		wbu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wbu *WallsBookUpdate) check() error {
	if v, ok := wbu.mutation.Username(); ok {
		if err := wallsbook.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsBook.username": %w`, err)}
		}
	}
	if v, ok := wbu.mutation.Status(); ok {
		if err := wallsbook.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsBook.status": %w`, err)}
		}
	}
	if v, ok := wbu.mutation.Pages(); ok {
		if err := wallsbook.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "WallsBook.pages": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (wbu *WallsBookUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WallsBookUpdate {
	wbu.modifiers = append(wbu.modifiers, modifiers...)
	return wbu
}

func (wbu *WallsBookUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wbu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(wallsbook.Table, wallsbook.Columns, sqlgraph.NewFieldSpec(wallsbook.FieldID, field.TypeUint))
	if ps := wbu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wbu.mutation.CreatedAt(); ok {
		_spec.SetField(wallsbook.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := wbu.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsbook.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wbu.mutation.Username(); ok {
		_spec.SetField(wallsbook.FieldUsername, field.TypeString, value)
	}
	if value, ok := wbu.mutation.ArticleID(); ok {
		_spec.SetField(wallsbook.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wbu.mutation.AddedArticleID(); ok {
		_spec.AddField(wallsbook.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wbu.mutation.Status(); ok {
		_spec.SetField(wallsbook.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wbu.mutation.Score(); ok {
		_spec.SetField(wallsbook.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := wbu.mutation.AddedScore(); ok {
		_spec.AddField(wallsbook.FieldScore, field.TypeFloat64, value)
	}
	if wbu.mutation.ScoreCleared() {
		_spec.ClearField(wallsbook.FieldScore, field.TypeFloat64)
	}
	if value, ok := wbu.mutation.StartedAt(); ok {
		_spec.SetField(wallsbook.FieldStartedAt, field.TypeTime, value)
	}
	if wbu.mutation.StartedAtCleared() {
		_spec.ClearField(wallsbook.FieldStartedAt, field.TypeTime)
	}
	if value, ok := wbu.mutation.FinishedAt(); ok {
		_spec.SetField(wallsbook.FieldFinishedAt, field.TypeTime, value)
	}
	if wbu.mutation.FinishedAtCleared() {
		_spec.ClearField(wallsbook.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := wbu.mutation.Pages(); ok {
		_spec.SetField(wallsbook.FieldPages, field.TypeInt, value)
	}
	if value, ok := wbu.mutation.AddedPages(); ok {
		_spec.AddField(wallsbook.FieldPages, field.TypeInt, value)
	}
	_spec.AddModifiers(wbu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, wbu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallsbook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wbu.mutation.done = true
	return n, nil
}

// WallsBookUpdateOne is the builder for updating a single WallsBook entity.
type WallsBookUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *WallsBookMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (wbuo *WallsBookUpdateOne) SetCreatedAt(t time.Time) *WallsBookUpdateOne {
	wbuo.mutation.SetCreatedAt(t)
	return wbuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wbuo *WallsBookUpdateOne) SetNillableCreatedAt(t *time.Time) *WallsBookUpdateOne {
	if t != nil {
		wbuo.SetCreatedAt(*t)
	}
	return wbuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wbuo *WallsBookUpdateOne) SetUpdatedAt(t time.Time) *WallsBookUpdateOne {
	wbuo.mutation.SetUpdatedAt(t)
	return wbuo
}

// SetUsername sets the "username" field.
func (wbuo *WallsBookUpdateOne) SetUsername(s string) *WallsBookUpdateOne {
	wbuo.mutation.SetUsername(s)
	return wbuo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (wbuo *WallsBookUpdateOne) SetNillableUsername(s *string) *WallsBookUpdateOne {
	if s != nil {
		wbuo.SetUsername(*s)
	}
	return wbuo
}

// SetArticleID sets the "article_id" field.
func (wbuo *WallsBookUpdateOne) SetArticleID(u uint) *WallsBookUpdateOne {
	wbuo.mutation.ResetArticleID()
	wbuo.mutation.SetArticleID(u)
	return wbuo
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (wbuo *WallsBookUpdateOne) SetNillableArticleID(u *uint) *WallsBookUpdateOne {
	if u != nil {
		wbuo.SetArticleID(*u)
	}
	return wbuo
}

// AddArticleID adds u to the "article_id" field.
func (wbuo *WallsBookUpdateOne) AddArticleID(u int) *WallsBookUpdateOne {
	wbuo.mutation.AddArticleID(u)
	return wbuo
}

// SetStatus sets the "status" field.
func (wbuo *WallsBookUpdateOne) SetStatus(w wallsbook.Status) *WallsBookUpdateOne {
	wbuo.mutation.SetStatus(w)
	return wbuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wbuo *WallsBookUpdateOne) SetNillableStatus(w *wallsbook.Status) *WallsBookUpdateOne {
	if w != nil {
		wbuo.SetStatus(*w)
	}
	return wbuo
}

// SetScore sets the "score" field.
func (wbuo *WallsBookUpdateOne) SetScore(f float64) *WallsBookUpdateOne {
	wbuo.mutation.ResetScore()
	wbuo.mutation.SetScore(f)
	return wbuo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wbuo *WallsBookUpdateOne) SetNillableScore(f *float64) *WallsBookUpdateOne {
	if f != nil {
		wbuo.SetScore(*f)
	}
	return wbuo
}

// AddScore adds f to the "score" field.
func (wbuo *WallsBookUpdateOne) AddScore(f float64) *WallsBookUpdateOne {
	wbuo.mutation.AddScore(f)
	return wbuo
}

// ClearScore clears the value of the "score" field.
func (wbuo *WallsBookUpdateOne) ClearScore() *WallsBookUpdateOne {
	wbuo.mutation.ClearScore()
	return wbuo
}

// SetStartedAt sets the "started_at" field.
func (wbuo *WallsBookUpdateOne) SetStartedAt(t time.Time) *WallsBookUpdateOne {
	wbuo.mutation.SetStartedAt(t)
	return wbuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wbuo *WallsBookUpdateOne) SetNillableStartedAt(t *time.Time) *WallsBookUpdateOne {
	if t != nil {
		wbuo.SetStartedAt(*t)
	}
	return wbuo
}

// ClearStartedAt clears the value of the "started_at" field.
func (wbuo *WallsBookUpdateOne) ClearStartedAt() *WallsBookUpdateOne {
	wbuo.mutation.ClearStartedAt()
	return wbuo
}

// SetFinishedAt sets the "finished_at" field.
func (wbuo *WallsBookUpdateOne) SetFinishedAt(t time.Time) *WallsBookUpdateOne {
	wbuo.mutation.SetFinishedAt(t)
	return wbuo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wbuo *WallsBookUpdateOne) SetNillableFinishedAt(t *time.Time) *WallsBookUpdateOne {
	if t != nil {
		wbuo.SetFinishedAt(*t)
	}
	return wbuo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (wbuo *WallsBookUpdateOne) ClearFinishedAt() *WallsBookUpdateOne {
	wbuo.mutation.ClearFinishedAt()
	return wbuo
}

// SetPages sets the "pages" field.
func (wbuo *WallsBookUpdateOne) SetPages(i int) *WallsBookUpdateOne {
	wbuo.mutation.ResetPages()
	wbuo.mutation.SetPages(i)
	return wbuo
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (wbuo *WallsBookUpdateOne) SetNillablePages(i *int) *WallsBookUpdateOne {
	if i != nil {
		wbuo.SetPages(*i)
	}
	return wbuo
}

// AddPages adds i to the "pages" field.
func (wbuo *WallsBookUpdateOne) AddPages(i int) *WallsBookUpdateOne {
	wbuo.mutation.AddPages(i)
	return wbuo
}

// Mutation returns the WallsBookMutation object of the builder.
func (wbuo *WallsBookUpdateOne) Mutation() *WallsBookMutation {
	return wbuo.mutation
}

// Where appends a list predicates to the WallsBookUpdate builder.
func (wbuo *WallsBookUpdateOne) Where(ps ...predicate.WallsBook) *WallsBookUpdateOne {
	wbuo.mutation.Where(ps...)
	return wbuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wbuo *WallsBookUpdateOne) Select(field string, fields ...string) *WallsBookUpdateOne {
	wbuo.fields = append([]string{field}, fields...)
	return wbuo
}

// Save executes the query and returns the updated WallsBook entity.
func (wbuo *WallsBookUpdateOne) Save(ctx context.Context) (*WallsBook, error) {
	wbuo.defaults()
	return withHooks(ctx, wbuo.sqlSave, wbuo.mutation, wbuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wbuo *WallsBookUpdateOne) SaveX(ctx context.Context) *WallsBook {
	node, err := wbuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wbuo *WallsBookUpdateOne) Exec(ctx context.Context) error {
	_, err := wbuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wbuo *WallsBookUpdateOne) ExecX(ctx context.Context) {
	if err := wbuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wbuo *WallsBookUpdateOne) defaults() {
	if _, ok := wbuo.mutation.UpdatedAt(); !ok {
		v := wallsbook.UpdateDefaultUpdatedAt()
		wbuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wbuo *WallsBookUpdateOne) check() error {
	if v, ok := wbuo.mutation.Username(); ok {
		if err := wallsbook.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsBook.username": %w`, err)}
		}
	}
	if v, ok := wbuo.mutation.Status(); ok {
		if err := wallsbook.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsBook.status": %w`, err)}
		}
	}
	if v, ok := wbuo.mutation.Pages(); ok {
		if err := wallsbook.PagesValidator(v); err != nil {
			return &ValidationError{Name: "pages", err: fmt.Errorf(`ent: validator failed for field "WallsBook.pages": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (wbuo *WallsBookUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WallsBookUpdateOne {
	wbuo.modifiers = append(wbuo.modifiers, modifiers...)
	return wbuo
}

func (wbuo *WallsBookUpdateOne) sqlSave(ctx context.Context) (_node *WallsBook, err error) {
	if err := wbuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wallsbook.Table, wallsbook.Columns, sqlgraph.NewFieldSpec(wallsbook.FieldID, field.TypeUint))
	id, ok := wbuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WallsBook.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wbuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallsbook.FieldID)
		for _, f := range fields {
			if !wallsbook.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wallsbook.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wbuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wbuo.mutation.CreatedAt(); ok {
		_spec.SetField(wallsbook.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := wbuo.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsbook.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wbuo.mutation.Username(); ok {
		_spec.SetField(wallsbook.FieldUsername, field.TypeString, value)
	}
	if value, ok := wbuo.mutation.ArticleID(); ok {
		_spec.SetField(wallsbook.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wbuo.mutation.AddedArticleID(); ok {
		_spec.AddField(wallsbook.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wbuo.mutation.Status(); ok {
		_spec.SetField(wallsbook.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wbuo.mutation.Score(); ok {
		_spec.SetField(wallsbook.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := wbuo.mutation.AddedScore(); ok {
		_spec.AddField(wallsbook.FieldScore, field.TypeFloat64, value)
	}
	if wbuo.mutation.ScoreCleared() {
		_spec.ClearField(wallsbook.FieldScore, field.TypeFloat64)
	}
	if value, ok := wbuo.mutation.StartedAt(); ok {
		_spec.SetField(wallsbook.FieldStartedAt, field.TypeTime, value)
	}
	if wbuo.mutation.StartedAtCleared() {
		_spec.ClearField(wallsbook.FieldStartedAt, field.TypeTime)
	}
	if value, ok := wbuo.mutation.FinishedAt(); ok {
		_spec.SetField(wallsbook.FieldFinishedAt, field.TypeTime, value)
	}
	if wbuo.mutation.FinishedAtCleared() {
		_spec.ClearField(wallsbook.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := wbuo.mutation.Pages(); ok {
		_spec.SetField(wallsbook.FieldPages, field.TypeInt, value)
	}
	if value, ok := wbuo.mutation.AddedPages(); ok {
		_spec.AddField(wallsbook.FieldPages, field.TypeInt, value)
	}
	_spec.AddModifiers(wbuo.modifiers...)
	_node = &WallsBook{config: wbuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wbuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallsbook.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wbuo.mutation.done = true
	return _node, nil
}
