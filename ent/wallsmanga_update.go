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
	"github.com/anzhiyu-c/mediawall-app/ent/wallsmanga"
)

// WallsMangaUpdate is the builder for updating WallsManga entities.
type WallsMangaUpdate struct {
	config
	hooks     []Hook
	mutation  *WallsMangaMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the WallsMangaUpdate builder.
func (wmu *WallsMangaUpdate) Where(ps ...predicate.WallsManga) *WallsMangaUpdate {
	wmu.mutation.Where(ps...)
	return wmu
}

// SetCreatedAt sets the "created_at" field.
func (wmu *WallsMangaUpdate) SetCreatedAt(t time.Time) *WallsMangaUpdate {
	wmu.mutation.SetCreatedAt(t)
	return wmu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableCreatedAt(t *time.Time) *WallsMangaUpdate {
	if t != nil {
		wmu.SetCreatedAt(*t)
	}
	return wmu
}

// SetUpdatedAt sets the "updated_at" field.
func (wmu *WallsMangaUpdate) SetUpdatedAt(t time.Time) *WallsMangaUpdate {
	wmu.mutation.SetUpdatedAt(t)
	return wmu
}

// SetUsername sets the "username" field.
func (wmu *WallsMangaUpdate) SetUsername(s string) *WallsMangaUpdate {
	wmu.mutation.SetUsername(s)
	return wmu
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableUsername(s *string) *WallsMangaUpdate {
	if s != nil {
		wmu.SetUsername(*s)
	}
	return wmu
}

// SetArticleID sets the "article_id" field.
func (wmu *WallsMangaUpdate) SetArticleID(u uint) *WallsMangaUpdate {
	wmu.mutation.ResetArticleID()
	wmu.mutation.SetArticleID(u)
	return wmu
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableArticleID(u *uint) *WallsMangaUpdate {
	if u != nil {
		wmu.SetArticleID(*u)
	}
	return wmu
}

// AddArticleID adds u to the "article_id" field.
func (wmu *WallsMangaUpdate) AddArticleID(u int) *WallsMangaUpdate {
	wmu.mutation.AddArticleID(u)
	return wmu
}

// SetStatus sets the "status" field.
func (wmu *WallsMangaUpdate) SetStatus(w wallsmanga.Status) *WallsMangaUpdate {
	wmu.mutation.SetStatus(w)
	return wmu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableStatus(w *wallsmanga.Status) *WallsMangaUpdate {
	if w != nil {
		wmu.SetStatus(*w)
	}
	return wmu
}

// SetScore sets the "score" field.
func (wmu *WallsMangaUpdate) SetScore(f float64) *WallsMangaUpdate {
	wmu.mutation.ResetScore()
	wmu.mutation.SetScore(f)
	return wmu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableScore(f *float64) *WallsMangaUpdate {
	if f != nil {
		wmu.SetScore(*f)
	}
	return wmu
}

// AddScore adds f to the "score" field.
func (wmu *WallsMangaUpdate) AddScore(f float64) *WallsMangaUpdate {
	wmu.mutation.AddScore(f)
	return wmu
}

// ClearScore clears the value of the "score" field.
func (wmu *WallsMangaUpdate) ClearScore() *WallsMangaUpdate {
	wmu.mutation.ClearScore()
	return wmu
}

// SetStartedAt sets the "started_at" field.
func (wmu *WallsMangaUpdate) SetStartedAt(t time.Time) *WallsMangaUpdate {
	wmu.mutation.SetStartedAt(t)
	return wmu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableStartedAt(t *time.Time) *WallsMangaUpdate {
	if t != nil {
		wmu.SetStartedAt(*t)
	}
	return wmu
}

// ClearStartedAt clears the value of the "started_at" field.
func (wmu *WallsMangaUpdate) ClearStartedAt() *WallsMangaUpdate {
	wmu.mutation.ClearStartedAt()
	return wmu
}

// SetFinishedAt sets the "finished_at" field.
func (wmu *WallsMangaUpdate) SetFinishedAt(t time.Time) *WallsMangaUpdate {
	wmu.mutation.SetFinishedAt(t)
	return wmu
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableFinishedAt(t *time.Time) *WallsMangaUpdate {
	if t != nil {
		wmu.SetFinishedAt(*t)
	}
	return wmu
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (wmu *WallsMangaUpdate) ClearFinishedAt() *WallsMangaUpdate {
	wmu.mutation.ClearFinishedAt()
	return wmu
}

// SetVolumes sets the "volumes" field.
func (wmu *WallsMangaUpdate) SetVolumes(i int) *WallsMangaUpdate {
	wmu.mutation.ResetVolumes()
	wmu.mutation.SetVolumes(i)
	return wmu
}

// SetNillableVolumes sets the "volumes" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableVolumes(i *int) *WallsMangaUpdate {
	if i != nil {
		wmu.SetVolumes(*i)
	}
	return wmu
}

// AddVolumes adds i to the "volumes" field.
func (wmu *WallsMangaUpdate) AddVolumes(i int) *WallsMangaUpdate {
	wmu.mutation.AddVolumes(i)
	return wmu
}

// SetChapters sets the "chapters" field.
func (wmu *WallsMangaUpdate) SetChapters(i int) *WallsMangaUpdate {
	wmu.mutation.ResetChapters()
	wmu.mutation.SetChapters(i)
	return wmu
}

// SetNillableChapters sets the "chapters" field if the given value is not nil.
func (wmu *WallsMangaUpdate) SetNillableChapters(i *int) *WallsMangaUpdate {
	if i != nil {
		wmu.SetChapters(*i)
	}
	return wmu
}

// AddChapters adds i to the "chapters" field.
func (wmu *WallsMangaUpdate) AddChapters(i int) *WallsMangaUpdate {
	wmu.mutation.AddChapters(i)
	return wmu
}

// Mutation returns the WallsMangaMutation object of the builder.
func (wmu *WallsMangaUpdate) Mutation() *WallsMangaMutation {
	return wmu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wmu *WallsMangaUpdate) Save(ctx context.Context) (int, error) {
	wmu.defaults()
	return withHooks(ctx, wmu.sqlSave, wmu.mutation, wmu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wmu *WallsMangaUpdate) SaveX(ctx context.Context) int {
	affected, err := wmu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wmu *WallsMangaUpdate) Exec(ctx context.Context) error {
	_, err := wmu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wmu *WallsMangaUpdate) ExecX(ctx context.Context) {
	if err := wmu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wmu *WallsMangaUpdate) defaults() {
	if _, ok := wmu.mutation.UpdatedAt(); !ok {
		v := wallsmanga.UpdateDefaultUpdatedAt()
		wmu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wmu *WallsMangaUpdate) check() error {
	if v, ok := wmu.mutation.Username(); ok {
		if err := wallsmanga.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsManga.username": %w`, err)}
		}
	}
	if v, ok := wmu.mutation.Status(); ok {
		if err := wallsmanga.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsManga.status": %w`, err)}
		}
	}
	if v, ok := wmu.mutation.Volumes(); ok {
		if err := wallsmanga.VolumesValidator(v); err != nil {
			return &ValidationError{Name: "volumes", err: fmt.Errorf(`ent: validator failed for field "WallsManga.volumes": %w`, err)}
		}
	}
	if v, ok := wmu.mutation.Chapters(); ok {
		if err := wallsmanga.ChaptersValidator(v); err != nil {
			return &ValidationError{Name: "chapters", err: fmt.Errorf(`ent: validator failed for field "WallsManga.chapters": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (wmu *WallsMangaUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WallsMangaUpdate {
	wmu.modifiers = append(wmu.modifiers, modifiers...)
	return wmu
}

func (wmu *WallsMangaUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wmu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(wallsmanga.Table, wallsmanga.Columns, sqlgraph.NewFieldSpec(wallsmanga.FieldID, field.TypeUint))
	if ps := wmu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wmu.mutation.CreatedAt(); ok {
		_spec.SetField(wallsmanga.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := wmu.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsmanga.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wmu.mutation.Username(); ok {
		_spec.SetField(wallsmanga.FieldUsername, field.TypeString, value)
	}
	if value, ok := wmu.mutation.ArticleID(); ok {
		_spec.SetField(wallsmanga.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wmu.mutation.AddedArticleID(); ok {
		_spec.AddField(wallsmanga.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wmu.mutation.Status(); ok {
		_spec.SetField(wallsmanga.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wmu.mutation.Score(); ok {
		_spec.SetField(wallsmanga.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := wmu.mutation.AddedScore(); ok {
		_spec.AddField(wallsmanga.FieldScore, field.TypeFloat64, value)
	}
	if wmu.mutation.ScoreCleared() {
		_spec.ClearField(wallsmanga.FieldScore, field.TypeFloat64)
	}
	if value, ok := wmu.mutation.StartedAt(); ok {
		_spec.SetField(wallsmanga.FieldStartedAt, field.TypeTime, value)
	}
	if wmu.mutation.StartedAtCleared() {
		_spec.ClearField(wallsmanga.FieldStartedAt, field.TypeTime)
	}
	if value, ok := wmu.mutation.FinishedAt(); ok {
		_spec.SetField(wallsmanga.FieldFinishedAt, field.TypeTime, value)
	}
	if wmu.mutation.FinishedAtCleared() {
		_spec.ClearField(wallsmanga.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := wmu.mutation.Volumes(); ok {
		_spec.SetField(wallsmanga.FieldVolumes, field.TypeInt, value)
	}
	if value, ok := wmu.mutation.AddedVolumes(); ok {
		_spec.AddField(wallsmanga.FieldVolumes, field.TypeInt, value)
	}
	if value, ok := wmu.mutation.Chapters(); ok {
		_spec.SetField(wallsmanga.FieldChapters, field.TypeInt, value)
	}
	if value, ok := wmu.mutation.AddedChapters(); ok {
		_spec.AddField(wallsmanga.FieldChapters, field.TypeInt, value)
	}
	_spec.AddModifiers(wmu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, wmu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallsmanga.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wmu.mutation.done = true
	return n, nil
}

// WallsMangaUpdateOne is the builder for updating a single WallsManga entity.
type WallsMangaUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *WallsMangaMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (wmuo *WallsMangaUpdateOne) SetCreatedAt(t time.Time) *WallsMangaUpdateOne {
	wmuo.mutation.SetCreatedAt(t)
	return wmuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableCreatedAt(t *time.Time) *WallsMangaUpdateOne {
	if t != nil {
		wmuo.SetCreatedAt(*t)
	}
	return wmuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wmuo *WallsMangaUpdateOne) SetUpdatedAt(t time.Time) *WallsMangaUpdateOne {
	wmuo.mutation.SetUpdatedAt(t)
	return wmuo
}

// SetUsername sets the "username" field.
func (wmuo *WallsMangaUpdateOne) SetUsername(s string) *WallsMangaUpdateOne {
	wmuo.mutation.SetUsername(s)
	return wmuo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableUsername(s *string) *WallsMangaUpdateOne {
	if s != nil {
		wmuo.SetUsername(*s)
	}
	return wmuo
}

// SetArticleID sets the "article_id" field.
func (wmuo *WallsMangaUpdateOne) SetArticleID(u uint) *WallsMangaUpdateOne {
	wmuo.mutation.ResetArticleID()
	wmuo.mutation.SetArticleID(u)
	return wmuo
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableArticleID(u *uint) *WallsMangaUpdateOne {
	if u != nil {
		wmuo.SetArticleID(*u)
	}
	return wmuo
}

// AddArticleID adds u to the "article_id" field.
func (wmuo *WallsMangaUpdateOne) AddArticleID(u int) *WallsMangaUpdateOne {
	wmuo.mutation.AddArticleID(u)
	return wmuo
}

// SetStatus sets the "status" field.
func (wmuo *WallsMangaUpdateOne) SetStatus(w wallsmanga.Status) *WallsMangaUpdateOne {
	wmuo.mutation.SetStatus(w)
	return wmuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableStatus(w *wallsmanga.Status) *WallsMangaUpdateOne {
	if w != nil {
		wmuo.SetStatus(*w)
	}
	return wmuo
}

// SetScore sets the "score" field.
func (wmuo *WallsMangaUpdateOne) SetScore(f float64) *WallsMangaUpdateOne {
	wmuo.mutation.ResetScore()
	wmuo.mutation.SetScore(f)
	return wmuo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableScore(f *float64) *WallsMangaUpdateOne {
	if f != nil {
		wmuo.SetScore(*f)
	}
	return wmuo
}

// AddScore adds f to the "score" field.
func (wmuo *WallsMangaUpdateOne) AddScore(f float64) *WallsMangaUpdateOne {
	wmuo.mutation.AddScore(f)
	return wmuo
}

// ClearScore clears the value of the "score" field.
func (wmuo *WallsMangaUpdateOne) ClearScore() *WallsMangaUpdateOne {
	wmuo.mutation.ClearScore()
	return wmuo
}

// SetStartedAt sets the "started_at" field.
func (wmuo *WallsMangaUpdateOne) SetStartedAt(t time.Time) *WallsMangaUpdateOne {
	wmuo.mutation.SetStartedAt(t)
	return wmuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableStartedAt(t *time.Time) *WallsMangaUpdateOne {
	if t != nil {
		wmuo.SetStartedAt(*t)
	}
	return wmuo
}

// ClearStartedAt clears the value of the "started_at" field.
func (wmuo *WallsMangaUpdateOne) ClearStartedAt() *WallsMangaUpdateOne {
	wmuo.mutation.ClearStartedAt()
	return wmuo
}

// SetFinishedAt sets the "finished_at" field.
func (wmuo *WallsMangaUpdateOne) SetFinishedAt(t time.Time) *WallsMangaUpdateOne {
	wmuo.mutation.SetFinishedAt(t)
	return wmuo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableFinishedAt(t *time.Time) *WallsMangaUpdateOne {
	if t != nil {
		wmuo.SetFinishedAt(*t)
	}
	return wmuo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (wmuo *WallsMangaUpdateOne) ClearFinishedAt() *WallsMangaUpdateOne {
	wmuo.mutation.ClearFinishedAt()
	return wmuo
}

// SetVolumes sets the "volumes" field.
func (wmuo *WallsMangaUpdateOne) SetVolumes(i int) *WallsMangaUpdateOne {
	wmuo.mutation.ResetVolumes()
	wmuo.mutation.SetVolumes(i)
	return wmuo
}

// SetNillableVolumes sets the "volumes" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableVolumes(i *int) *WallsMangaUpdateOne {
	if i != nil {
		wmuo.SetVolumes(*i)
	}
	return wmuo
}

// AddVolumes adds i to the "volumes" field.
func (wmuo *WallsMangaUpdateOne) AddVolumes(i int) *WallsMangaUpdateOne {
	wmuo.mutation.AddVolumes(i)
	return wmuo
}

// SetChapters sets the "chapters" field.
func (wmuo *WallsMangaUpdateOne) SetChapters(i int) *WallsMangaUpdateOne {
	wmuo.mutation.ResetChapters()
	wmuo.mutation.SetChapters(i)
	return wmuo
}

// SetNillableChapters sets the "chapters" field if the given value is not nil.
func (wmuo *WallsMangaUpdateOne) SetNillableChapters(i *int) *WallsMangaUpdateOne {
	if i != nil {
		wmuo.SetChapters(*i)
	}
	return wmuo
}

// AddChapters adds i to the "chapters" field.
func (wmuo *WallsMangaUpdateOne) AddChapters(i int) *WallsMangaUpdateOne {
	wmuo.mutation.AddChapters(i)
	return wmuo
}

// Mutation returns the WallsMangaMutation object of the builder.
func (wmuo *WallsMangaUpdateOne) Mutation() *WallsMangaMutation {
	return wmuo.mutation
}

// Where appends a list predicates to the WallsMangaUpdate builder.
func (wmuo *WallsMangaUpdateOne) Where(ps ...predicate.WallsManga) *WallsMangaUpdateOne {
	wmuo.mutation.Where(ps...)
	return wmuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wmuo *WallsMangaUpdateOne) Select(field string, fields ...string) *WallsMangaUpdateOne {
	wmuo.fields = append([]string{field}, fields...)
	return wmuo
}

// Save executes the query and returns the updated WallsManga entity.
func (wmuo *WallsMangaUpdateOne) Save(ctx context.Context) (*WallsManga, error) {
	wmuo.defaults()
	return withHooks(ctx, wmuo.sqlSave, wmuo.mutation, wmuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wmuo *WallsMangaUpdateOne) SaveX(ctx context.Context) *WallsManga {
	node, err := wmuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wmuo *WallsMangaUpdateOne) Exec(ctx context.Context) error {
	_, err := wmuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wmuo *WallsMangaUpdateOne) ExecX(ctx context.Context) {
	if err := wmuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wmuo *WallsMangaUpdateOne) defaults() {
	if _, ok := wmuo.mutation.UpdatedAt(); !ok {
		v := wallsmanga.UpdateDefaultUpdatedAt()
		wmuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wmuo *WallsMangaUpdateOne) check() error {
	if v, ok := wmuo.mutation.Username(); ok {
		if err := wallsmanga.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsManga.username": %w`, err)}
		}
	}
	if v, ok := wmuo.mutation.Status(); ok {
		if err := wallsmanga.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsManga.status": %w`, err)}
		}
	}
	if v, ok := wmuo.mutation.Volumes(); ok {
		if err := wallsmanga.VolumesValidator(v); err != nil {
			return &ValidationError{Name: "volumes", err: fmt.Errorf(`ent: validator failed for field "WallsManga.volumes": %w`, err)}
		}
	}
	if v, ok := wmuo.mutation.Chapters(); ok {
		if err := wallsmanga.ChaptersValidator(v); err != nil {
			return &ValidationError{Name: "chapters", err: fmt.Errorf(`ent: validator failed for field "WallsManga.chapters": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (wmuo *WallsMangaUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WallsMangaUpdateOne {
	wmuo.modifiers = append(wmuo.modifiers, modifiers...)
	return wmuo
}

func (wmuo *WallsMangaUpdateOne) sqlSave(ctx context.Context) (_node *WallsManga, err error) {
	if err := wmuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wallsmanga.Table, wallsmanga.Columns, sqlgraph.NewFieldSpec(wallsmanga.FieldID, field.TypeUint))
	id, ok := wmuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WallsManga.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wmuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallsmanga.FieldID)
		for _, f := range fields {
			if !wallsmanga.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wallsmanga.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wmuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wmuo.mutation.CreatedAt(); ok {
		_spec.SetField(wallsmanga.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := wmuo.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsmanga.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wmuo.mutation.Username(); ok {
		_spec.SetField(wallsmanga.FieldUsername, field.TypeString, value)
	}
	if value, ok := wmuo.mutation.ArticleID(); ok {
		_spec.SetField(wallsmanga.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wmuo.mutation.AddedArticleID(); ok {
		_spec.AddField(wallsmanga.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wmuo.mutation.Status(); ok {
		_spec.SetField(wallsmanga.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wmuo.mutation.Score(); ok {
		_spec.SetField(wallsmanga.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := wmuo.mutation.AddedScore(); ok {
		_spec.AddField(wallsmanga.FieldScore, field.TypeFloat64, value)
	}
	if wmuo.mutation.ScoreCleared() {
		_spec.ClearField(wallsmanga.FieldScore, field.TypeFloat64)
	}
	if value, ok := wmuo.mutation.StartedAt(); ok {
		_spec.SetField(wallsmanga.FieldStartedAt, field.TypeTime, value)
	}
	if wmuo.mutation.StartedAtCleared() {
		_spec.ClearField(wallsmanga.FieldStartedAt, field.TypeTime)
	}
	if value, ok := wmuo.mutation.FinishedAt(); ok {
		_spec.SetField(wallsmanga.FieldFinishedAt, field.TypeTime, value)
	}
	if wmuo.mutation.FinishedAtCleared() {
		_spec.ClearField(wallsmanga.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := wmuo.mutation.Volumes(); ok {
		_spec.SetField(wallsmanga.FieldVolumes, field.TypeInt, value)
	}
	if value, ok := wmuo.mutation.AddedVolumes(); ok {
		_spec.AddField(wallsmanga.FieldVolumes, field.TypeInt, value)
	}
	if value, ok := wmuo.mutation.Chapters(); ok {
		_spec.SetField(wallsmanga.FieldChapters, field.TypeInt, value)
	}
	if value, ok := wmuo.mutation.AddedChapters(); ok {
		_spec.AddField(wallsmanga.FieldChapters, field.TypeInt, value)
	}
	_spec.AddModifiers(wmuo.modifiers...)
	_node = &WallsManga{config: wmuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wmuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallsmanga.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wmuo.mutation.done = true
	return _node, nil
}
