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
	"github.com/anzhiyu-c/mediawall-app/ent/wallscomic"
)

// WallsComicUpdate is the builder for updating WallsComic entities.
type WallsComicUpdate struct {
	config
	hooks     []Hook
	mutation  *WallsComicMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the WallsComicUpdate builder.
func (wcu *WallsComicUpdate) Where(ps ...predicate.WallsComic) *WallsComicUpdate {
	wcu.mutation.Where(ps...)
	return wcu
}

// SetCreatedAt sets the "created_at" field.
func (wcu *WallsComicUpdate) SetCreatedAt(t time.Time) *WallsComicUpdate {
	wcu.mutation.SetCreatedAt(t)
	return wcu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wcu *WallsComicUpdate) SetNillableCreatedAt(t *time.Time) *WallsComicUpdate {
	if t != nil {
		wcu.SetCreatedAt(*t)
	}
	return wcu
}

// SetUpdatedAt sets the "updated_at" field.
func (wcu *WallsComicUpdate) SetUpdatedAt(t time.Time) *WallsComicUpdate {
	wcu.mutation.SetUpdatedAt(t)
	return wcu
}

// SetUsername sets the "username" field.
func (wcu *WallsComicUpdate) SetUsername(s string) *WallsComicUpdate {
	wcu.mutation.SetUsername(s)
	return wcu
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (wcu *WallsComicUpdate) SetNillableUsername(s *string) *WallsComicUpdate {
	if s != nil {
		wcu.SetUsername(*s)
	}
	return wcu
}

// SetArticleID sets the "article_id" field.
func (wcu *WallsComicUpdate) SetArticleID(u uint) *WallsComicUpdate {
	wcu.mutation.ResetArticleID()
	wcu.mutation.SetArticleID(u)
	return wcu
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (wcu *WallsComicUpdate) SetNillableArticleID(u *uint) *WallsComicUpdate {
	if u != nil {
		wcu.SetArticleID(*u)
	}
	return wcu
}

// AddArticleID adds u to the "article_id" field.
func (wcu *WallsComicUpdate) AddArticleID(u int) *WallsComicUpdate {
	wcu.mutation.AddArticleID(u)
	return wcu
}

// SetStatus sets the "status" field.
func (wcu *WallsComicUpdate) SetStatus(w wallscomic.Status) *WallsComicUpdate {
	wcu.mutation.SetStatus(w)
	return wcu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wcu *WallsComicUpdate) SetNillableStatus(w *wallscomic.Status) *WallsComicUpdate {
	if w != nil {
		wcu.SetStatus(*w)
	}
	return wcu
}

// SetScore sets the "score" field.
func (wcu *WallsComicUpdate) SetScore(f float64) *WallsComicUpdate {
	wcu.mutation.ResetScore()
	wcu.mutation.SetScore(f)
	return wcu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wcu *WallsComicUpdate) SetNillableScore(f *float64) *WallsComicUpdate {
	if f != nil {
		wcu.SetScore(*f)
	}
	return wcu
}

// AddScore adds f to the "score" field.
func (wcu *WallsComicUpdate) AddScore(f float64) *WallsComicUpdate {
	wcu.mutation.AddScore(f)
	return wcu
}

// ClearScore clears the value of the "score" field.
func (wcu *WallsComicUpdate) ClearScore() *WallsComicUpdate {
	wcu.mutation.ClearScore()
	return wcu
}

// SetStartedAt sets the "started_at" field.
func (wcu *WallsComicUpdate) SetStartedAt(t time.Time) *WallsComicUpdate {
	wcu.mutation.SetStartedAt(t)
	return wcu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wcu *WallsComicUpdate) SetNillableStartedAt(t *time.Time) *WallsComicUpdate {
	if t != nil {
		wcu.SetStartedAt(*t)
	}
	return wcu
}

// ClearStartedAt clears the value of the "started_at" field.
func (wcu *WallsComicUpdate) ClearStartedAt() *WallsComicUpdate {
	wcu.mutation.ClearStartedAt()
	return wcu
}

// SetFinishedAt sets the "finished_at" field.
func (wcu *WallsComicUpdate) SetFinishedAt(t time.Time) *WallsComicUpdate {
	wcu.mutation.SetFinishedAt(t)
	return wcu
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wcu *WallsComicUpdate) SetNillableFinishedAt(t *time.Time) *WallsComicUpdate {
	if t != nil {
		wcu.SetFinishedAt(*t)
	}
	return wcu
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (wcu *WallsComicUpdate) ClearFinishedAt() *WallsComicUpdate {
	wcu.mutation.ClearFinishedAt()
	return wcu
}

// SetIssues sets the "issues" field.
func (wcu *WallsComicUpdate) SetIssues(i int) *WallsComicUpdate {
	wcu.mutation.ResetIssues()
	wcu.mutation.SetIssues(i)
	return wcu
}

// SetNillableIssues sets the "issues" field if the given value is not nil.
func (wcu *WallsComicUpdate) SetNillableIssues(i *int) *WallsComicUpdate {
	if i != nil {
		wcu.SetIssues(*i)
	}
	return wcu
}

// AddIssues adds i to the "issues" field.
func (wcu *WallsComicUpdate) AddIssues(i int) *WallsComicUpdate {
	wcu.mutation.AddIssues(i)
	return wcu
}

// Mutation returns the WallsComicMutation object of the builder.
func (wcu *WallsComicUpdate) Mutation() *WallsComicMutation {
	return wcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wcu *WallsComicUpdate) Save(ctx context.Context) (int, error) {
	wcu.defaults()
	return withHooks(ctx, wcu.sqlSave, wcu.mutation, wcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wcu *WallsComicUpdate) SaveX(ctx context.Context) int {
	affected, err := wcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wcu *WallsComicUpdate) Exec(ctx context.Context) error {
	_, err := wcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wcu *WallsComicUpdate) ExecX(ctx context.Context) {
	if err := wcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wcu *WallsComicUpdate) defaults() {
	if _, ok := wcu.mutation.UpdatedAt(); !ok {
		v := wallscomic.UpdateDefaultUpdatedAt()
		wcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wcu *WallsComicUpdate) check() error {
	if v, ok := wcu.mutation.Username(); ok {
		if err := wallscomic.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsComic.username": %w`, err)}
		}
	}
	if v, ok := wcu.mutation.Status(); ok {
		if err := wallscomic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsComic.status": %w`, err)}
		}
	}
	if v, ok := wcu.mutation.Issues(); ok {
		if err := wallscomic.IssuesValidator(v); err != nil {
			return &ValidationError{Name: "issues", err: fmt.Errorf(`ent: validator failed for field "WallsComic.issues": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (wcu *WallsComicUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WallsComicUpdate {
	wcu.modifiers = append(wcu.modifiers, modifiers...)
	return wcu
}

func (wcu *WallsComicUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(wallscomic.Table, wallscomic.Columns, sqlgraph.NewFieldSpec(wallscomic.FieldID, field.TypeUint))
	if ps := wcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wcu.mutation.CreatedAt(); ok {
		_spec.SetField(wallscomic.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := wcu.mutation.UpdatedAt(); ok {
		_spec.SetField(wallscomic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wcu.mutation.Username(); ok {
		_spec.SetField(wallscomic.FieldUsername, field.TypeString, value)
	}
	if value, ok := wcu.mutation.ArticleID(); ok {
		_spec.SetField(wallscomic.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wcu.mutation.AddedArticleID(); ok {
		_spec.AddField(wallscomic.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wcu.mutation.Status(); ok {
		_spec.SetField(wallscomic.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wcu.mutation.Score(); ok {
		_spec.SetField(wallscomic.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := wcu.mutation.AddedScore(); ok {
		_spec.AddField(wallscomic.FieldScore, field.TypeFloat64, value)
	}
	if wcu.mutation.ScoreCleared() {
		_spec.ClearField(wallscomic.FieldScore, field.TypeFloat64)
	}
	if value, ok := wcu.mutation.StartedAt(); ok {
		_spec.SetField(wallscomic.FieldStartedAt, field.TypeTime, value)
	}
	if wcu.mutation.StartedAtCleared() {
		_spec.ClearField(wallscomic.FieldStartedAt, field.TypeTime)
	}
	if value, ok := wcu.mutation.FinishedAt(); ok {
		_spec.SetField(wallscomic.FieldFinishedAt, field.TypeTime, value)
	}
	if wcu.mutation.FinishedAtCleared() {
		_spec.ClearField(wallscomic.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := wcu.mutation.Issues(); ok {
		_spec.SetField(wallscomic.FieldIssues, field.TypeInt, value)
	}
	if value, ok := wcu.mutation.AddedIssues(); ok {
		_spec.AddField(wallscomic.FieldIssues, field.TypeInt, value)
	}
	_spec.AddModifiers(wcu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, wcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallscomic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wcu.mutation.done = true
	return n, nil
}

// WallsComicUpdateOne is the builder for updating a single WallsComic entity.
type WallsComicUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *WallsComicMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (wcuo *WallsComicUpdateOne) SetCreatedAt(t time.Time) *WallsComicUpdateOne {
	wcuo.mutation.SetCreatedAt(t)
	return wcuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wcuo *WallsComicUpdateOne) SetNillableCreatedAt(t *time.Time) *WallsComicUpdateOne {
	if t != nil {
		wcuo.SetCreatedAt(*t)
	}
	return wcuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wcuo *WallsComicUpdateOne) SetUpdatedAt(t time.Time) *WallsComicUpdateOne {
	wcuo.mutation.SetUpdatedAt(t)
	return wcuo
}

// SetUsername sets the "username" field.
func (wcuo *WallsComicUpdateOne) SetUsername(s string) *WallsComicUpdateOne {
	wcuo.mutation.SetUsername(s)
	return wcuo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (wcuo *WallsComicUpdateOne) SetNillableUsername(s *string) *WallsComicUpdateOne {
	if s != nil {
		wcuo.SetUsername(*s)
	}
	return wcuo
}

// SetArticleID sets the "article_id" field.
func (wcuo *WallsComicUpdateOne) SetArticleID(u uint) *WallsComicUpdateOne {
	wcuo.mutation.ResetArticleID()
	wcuo.mutation.SetArticleID(u)
	return wcuo
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (wcuo *WallsComicUpdateOne) SetNillableArticleID(u *uint) *WallsComicUpdateOne {
	if u != nil {
		wcuo.SetArticleID(*u)
	}
	return wcuo
}

// AddArticleID adds u to the "article_id" field.
func (wcuo *WallsComicUpdateOne) AddArticleID(u int) *WallsComicUpdateOne {
	wcuo.mutation.AddArticleID(u)
	return wcuo
}

// SetStatus sets the "status" field.
func (wcuo *WallsComicUpdateOne) SetStatus(w wallscomic.Status) *WallsComicUpdateOne {
	wcuo.mutation.SetStatus(w)
	return wcuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wcuo *WallsComicUpdateOne) SetNillableStatus(w *wallscomic.Status) *WallsComicUpdateOne {
	if w != nil {
		wcuo.SetStatus(*w)
	}
	return wcuo
}

// SetScore sets the "score" field.
func (wcuo *WallsComicUpdateOne) SetScore(f float64) *WallsComicUpdateOne {
	wcuo.mutation.ResetScore()
	wcuo.mutation.SetScore(f)
	return wcuo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wcuo *WallsComicUpdateOne) SetNillableScore(f *float64) *WallsComicUpdateOne {
	if f != nil {
		wcuo.SetScore(*f)
	}
	return wcuo
}

// AddScore adds f to the "score" field.
func (wcuo *WallsComicUpdateOne) AddScore(f float64) *WallsComicUpdateOne {
	wcuo.mutation.AddScore(f)
	return wcuo
}

// ClearScore clears the value of the "score" field.
func (wcuo *WallsComicUpdateOne) ClearScore() *WallsComicUpdateOne {
	wcuo.mutation.ClearScore()
	return wcuo
}

// SetStartedAt sets the "started_at" field.
func (wcuo *WallsComicUpdateOne) SetStartedAt(t time.Time) *WallsComicUpdateOne {
	wcuo.mutation.SetStartedAt(t)
	return wcuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wcuo *WallsComicUpdateOne) SetNillableStartedAt(t *time.Time) *WallsComicUpdateOne {
	if t != nil {
		wcuo.SetStartedAt(*t)
	}
	return wcuo
}

// ClearStartedAt clears the value of the "started_at" field.
func (wcuo *WallsComicUpdateOne) ClearStartedAt() *WallsComicUpdateOne {
	wcuo.mutation.ClearStartedAt()
	return wcuo
}

// SetFinishedAt sets the "finished_at" field.
func (wcuo *WallsComicUpdateOne) SetFinishedAt(t time.Time) *WallsComicUpdateOne {
	wcuo.mutation.SetFinishedAt(t)
	return wcuo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wcuo *WallsComicUpdateOne) SetNillableFinishedAt(t *time.Time) *WallsComicUpdateOne {
	if t != nil {
		wcuo.SetFinishedAt(*t)
	}
	return wcuo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (wcuo *WallsComicUpdateOne) ClearFinishedAt() *WallsComicUpdateOne {
	wcuo.mutation.ClearFinishedAt()
	return wcuo
}

// SetIssues sets the "issues" field.
func (wcuo *WallsComicUpdateOne) SetIssues(i int) *WallsComicUpdateOne {
	wcuo.mutation.ResetIssues()
	wcuo.mutation.SetIssues(i)
	return wcuo
}

// SetNillableIssues sets the "issues" field if the given value is not nil.
func (wcuo *WallsComicUpdateOne) SetNillableIssues(i *int) *WallsComicUpdateOne {
	if i != nil {
		wcuo.SetIssues(*i)
	}
	return wcuo
}

// AddIssues adds i to the "issues" field.
func (wcuo *WallsComicUpdateOne) AddIssues(i int) *WallsComicUpdateOne {
	wcuo.mutation.AddIssues(i)
	return wcuo
}

// Mutation returns the WallsComicMutation object of the builder.
func (wcuo *WallsComicUpdateOne) Mutation() *WallsComicMutation {
	return wcuo.mutation
}

// Where appends a list predicates to the WallsComicUpdate builder.
func (wcuo *WallsComicUpdateOne) Where(ps ...predicate.WallsComic) *WallsComicUpdateOne {
	wcuo.mutation.Where(ps...)
	return wcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wcuo *WallsComicUpdateOne) Select(field string, fields ...string) *WallsComicUpdateOne {
	wcuo.fields = append([]string{field}, fields...)
	return wcuo
}

// Save executes the query and returns the updated WallsComic entity.
func (wcuo *WallsComicUpdateOne) Save(ctx context.Context) (*WallsComic, error) {
	wcuo.defaults()
	return withHooks(ctx, wcuo.sqlSave, wcuo.mutation, wcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wcuo *WallsComicUpdateOne) SaveX(ctx context.Context) *WallsComic {
	node, err := wcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wcuo *WallsComicUpdateOne) Exec(ctx context.Context) error {
	_, err := wcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wcuo *WallsComicUpdateOne) ExecX(ctx context.Context) {
	if err := wcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wcuo *WallsComicUpdateOne) defaults() {
	if _, ok := wcuo.mutation.UpdatedAt(); !ok {
		v := wallscomic.UpdateDefaultUpdatedAt()
		wcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wcuo *WallsComicUpdateOne) check() error {
	if v, ok := wcuo.mutation.Username(); ok {
		if err := wallscomic.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsComic.username": %w`, err)}
		}
	}
	if v, ok := wcuo.mutation.Status(); ok {
		if err := wallscomic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsComic.status": %w`, err)}
		}
	}
	if v, ok := wcuo.mutation.Issues(); ok {
		if err := wallscomic.IssuesValidator(v); err != nil {
			return &ValidationError{Name: "issues", err: fmt.Errorf(`ent: validator failed for field "WallsComic.issues": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (wcuo *WallsComicUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WallsComicUpdateOne {
	wcuo.modifiers = append(wcuo.modifiers, modifiers...)
	return wcuo
}

func (wcuo *WallsComicUpdateOne) sqlSave(ctx context.Context) (_node *WallsComic, err error) {
	if err := wcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wallscomic.Table, wallscomic.Columns, sqlgraph.NewFieldSpec(wallscomic.FieldID, field.TypeUint))
	id, ok := wcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WallsComic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallscomic.FieldID)
		for _, f := range fields {
			if !wallscomic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wallscomic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wcuo.mutation.CreatedAt(); ok {
		_spec.SetField(wallscomic.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := wcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(wallscomic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wcuo.mutation.Username(); ok {
		_spec.SetField(wallscomic.FieldUsername, field.TypeString, value)
	}
	if value, ok := wcuo.mutation.ArticleID(); ok {
		_spec.SetField(wallscomic.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wcuo.mutation.AddedArticleID(); ok {
		_spec.AddField(wallscomic.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wcuo.mutation.Status(); ok {
		_spec.SetField(wallscomic.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wcuo.mutation.Score(); ok {
		_spec.SetField(wallscomic.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := wcuo.mutation.AddedScore(); ok {
		_spec.AddField(wallscomic.FieldScore, field.TypeFloat64, value)
	}
	if wcuo.mutation.ScoreCleared() {
		_spec.ClearField(wallscomic.FieldScore, field.TypeFloat64)
	}
	if value, ok := wcuo.mutation.StartedAt(); ok {
		_spec.SetField(wallscomic.FieldStartedAt, field.TypeTime, value)
	}
	if wcuo.mutation.StartedAtCleared() {
		_spec.ClearField(wallscomic.FieldStartedAt, field.TypeTime)
	}
	if value, ok := wcuo.mutation.FinishedAt(); ok {
		_spec.SetField(wallscomic.FieldFinishedAt, field.TypeTime, value)
	}
	if wcuo.mutation.FinishedAtCleared() {
		_spec.ClearField(wallscomic.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := wcuo.mutation.Issues(); ok {
		_spec.SetField(wallscomic.FieldIssues, field.TypeInt, value)
	}
	if value, ok := wcuo.mutation.AddedIssues(); ok {
		_spec.AddField(wallscomic.FieldIssues, field.TypeInt, value)
	}
	_spec.AddModifiers(wcuo.modifiers...)
	_node = &WallsComic{config: wcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallscomic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wcuo.mutation.done = true
	return _node, nil
}
