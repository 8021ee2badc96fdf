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
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
)

// WallsGameUpdate is the builder for updating WallsGame entities.
type WallsGameUpdate struct {
	config
	hooks     []Hook
	mutation  *WallsGameMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the WallsGameUpdate builder.
func (wgu *WallsGameUpdate) Where(ps ...predicate.WallsGame) *WallsGameUpdate {
	wgu.mutation.Where(ps...)
	return wgu
}

// SetCreatedAt sets the "created_at" field.
func (wgu *WallsGameUpdate) SetCreatedAt(t time.Time) *WallsGameUpdate {
	wgu.mutation.SetCreatedAt(t)
	return wgu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wgu *WallsGameUpdate) SetNillableCreatedAt(t *time.Time) *WallsGameUpdate {
	if t != nil {
		wgu.SetCreatedAt(*t)
	}
	return wgu
}

// SetUpdatedAt sets the "updated_at" field.
func (wgu *WallsGameUpdate) SetUpdatedAt(t time.Time) *WallsGameUpdate {
	wgu.mutation.SetUpdatedAt(t)
	return wgu
}

// SetUsername sets the "username" field.
func (wgu *WallsGameUpdate) SetUsername(s string) *WallsGameUpdate {
	wgu.mutation.SetUsername(s)
	return wgu
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (wgu *WallsGameUpdate) SetNillableUsername(s *string) *WallsGameUpdate {
	if s != nil {
		wgu.SetUsername(*s)
	}
	return wgu
}

// SetArticleID sets the "article_id" field.
func (wgu *WallsGameUpdate) SetArticleID(u uint) *WallsGameUpdate {
	wgu.mutation.ResetArticleID()
	wgu.mutation.SetArticleID(u)
	return wgu
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (wgu *WallsGameUpdate) SetNillableArticleID(u *uint) *WallsGameUpdate {
	if u != nil {
		wgu.SetArticleID(*u)
	}
	return wgu
}

// AddArticleID adds u to the "article_id" field.
func (wgu *WallsGameUpdate) AddArticleID(u int) *WallsGameUpdate {
	wgu.mutation.AddArticleID(u)
	return wgu
}

// SetStatus sets the "status" field.
func (wgu *WallsGameUpdate) SetStatus(w wallsgame.Status) *WallsGameUpdate {
	wgu.mutation.SetStatus(w)
	return wgu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wgu *WallsGameUpdate) SetNillableStatus(w *wallsgame.Status) *WallsGameUpdate {
	if w != nil {
		wgu.SetStatus(*w)
	}
	return wgu
}

// SetScore sets the "score" field.
func (wgu *WallsGameUpdate) SetScore(f float64) *WallsGameUpdate {
	wgu.mutation.ResetScore()
	wgu.mutation.SetScore(f)
	return wgu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wgu *WallsGameUpdate) SetNillableScore(f *float64) *WallsGameUpdate {
	if f != nil {
		wgu.SetScore(*f)
	}
	return wgu
}

// AddScore adds f to the "score" field.
func (wgu *WallsGameUpdate) AddScore(f float64) *WallsGameUpdate {
	wgu.mutation.AddScore(f)
	return wgu
}

// ClearScore clears the value of the "score" field.
func (wgu *WallsGameUpdate) ClearScore() *WallsGameUpdate {
	wgu.mutation.ClearScore()
	return wgu
}

// SetStartedAt sets the "started_at" field.
func (wgu *WallsGameUpdate) SetStartedAt(t time.Time) *WallsGameUpdate {
	wgu.mutation.SetStartedAt(t)
	return wgu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wgu *WallsGameUpdate) SetNillableStartedAt(t *time.Time) *WallsGameUpdate {
	if t != nil {
		wgu.SetStartedAt(*t)
	}
	return wgu
}

// ClearStartedAt clears the value of the "started_at" field.
func (wgu *WallsGameUpdate) ClearStartedAt() *WallsGameUpdate {
	wgu.mutation.ClearStartedAt()
	return wgu
}

// SetFinishedAt sets the "finished_at" field.
func (wgu *WallsGameUpdate) SetFinishedAt(t time.Time) *WallsGameUpdate {
	wgu.mutation.SetFinishedAt(t)
	return wgu
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wgu *WallsGameUpdate) SetNillableFinishedAt(t *time.Time) *WallsGameUpdate {
	if t != nil {
		wgu.SetFinishedAt(*t)
	}
	return wgu
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (wgu *WallsGameUpdate) ClearFinishedAt() *WallsGameUpdate {
	wgu.mutation.ClearFinishedAt()
	return wgu
}

// SetHoursPlayed sets the "hours_played" field.
func (wgu *WallsGameUpdate) SetHoursPlayed(i int) *WallsGameUpdate {
	wgu.mutation.ResetHoursPlayed()
	wgu.mutation.SetHoursPlayed(i)
	return wgu
}

// SetNillableHoursPlayed sets the "hours_played" field if the given value is not nil.
func (wgu *WallsGameUpdate) SetNillableHoursPlayed(i *int) *WallsGameUpdate {
	if i != nil {
		wgu.SetHoursPlayed(*i)
	}
	return wgu
}

// AddHoursPlayed adds i to the "hours_played" field.
func (wgu *WallsGameUpdate) AddHoursPlayed(i int) *WallsGameUpdate {
	wgu.mutation.AddHoursPlayed(i)
	return wgu
}

// Mutation returns the WallsGameMutation object of the builder.
func (wgu *WallsGameUpdate) Mutation() *WallsGameMutation {
	return wgu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wgu *WallsGameUpdate) Save(ctx context.Context) (int, error) {
	wgu.defaults()
	return withHooks(ctx, wgu.sqlSave, wgu.mutation, wgu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wgu *WallsGameUpdate) SaveX(ctx context.Context) int {
	affected, err := wgu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wgu *WallsGameUpdate) Exec(ctx context.Context) error {
	_, err := wgu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wgu *WallsGameUpdate) ExecX(ctx context.Context) {
	if err := wgu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wgu *WallsGameUpdate) defaults() {
	if _, ok := wgu.mutation.UpdatedAt(); !ok {
		v := wallsgame.UpdateDefaultUpdatedAt()
		wgu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wgu *WallsGameUpdate) check() error {
	if v, ok := wgu.mutation.Username(); ok {
		if err := wallsgame.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsGame.username": %w`, err)}
		}
	}
	if v, ok := wgu.mutation.Status(); ok {
		if err := wallsgame.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsGame.status": %w`, err)}
		}
	}
	if v, ok := wgu.mutation.HoursPlayed(); ok {
		if err := wallsgame.HoursPlayedValidator(v); err != nil {
			return &ValidationError{Name: "hours_played", err: fmt.Errorf(`ent: validator failed for field "WallsGame.hours_played": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (wgu *WallsGameUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WallsGameUpdate {
	wgu.modifiers = append(wgu.modifiers, modifiers...)
	return wgu
}

func (wgu *WallsGameUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wgu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(wallsgame.Table, wallsgame.Columns, sqlgraph.NewFieldSpec(wallsgame.FieldID, field.TypeUint))
	if ps := wgu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wgu.mutation.CreatedAt(); ok {
		_spec.SetField(wallsgame.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := wgu.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsgame.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wgu.mutation.Username(); ok {
		_spec.SetField(wallsgame.FieldUsername, field.TypeString, value)
	}
	if value, ok := wgu.mutation.ArticleID(); ok {
		_spec.SetField(wallsgame.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wgu.mutation.AddedArticleID(); ok {
		_spec.AddField(wallsgame.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wgu.mutation.Status(); ok {
		_spec.SetField(wallsgame.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wgu.mutation.Score(); ok {
		_spec.SetField(wallsgame.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := wgu.mutation.AddedScore(); ok {
		_spec.AddField(wallsgame.FieldScore, field.TypeFloat64, value)
	}
	if wgu.mutation.ScoreCleared() {
		_spec.ClearField(wallsgame.FieldScore, field.TypeFloat64)
	}
	if value, ok := wgu.mutation.StartedAt(); ok {
		_spec.SetField(wallsgame.FieldStartedAt, field.TypeTime, value)
	}
	if wgu.mutation.StartedAtCleared() {
		_spec.ClearField(wallsgame.FieldStartedAt, field.TypeTime)
	}
	if value, ok := wgu.mutation.FinishedAt(); ok {
		_spec.SetField(wallsgame.FieldFinishedAt, field.TypeTime, value)
	}
	if wgu.mutation.FinishedAtCleared() {
		_spec.ClearField(wallsgame.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := wgu.mutation.HoursPlayed(); ok {
		_spec.SetField(wallsgame.FieldHoursPlayed, field.TypeInt, value)
	}
	if value, ok := wgu.mutation.AddedHoursPlayed(); ok {
		_spec.AddField(wallsgame.FieldHoursPlayed, field.TypeInt, value)
	}
	_spec.AddModifiers(wgu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, wgu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallsgame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wgu.mutation.done = true
	return n, nil
}

// WallsGameUpdateOne is the builder for updating a single WallsGame entity.
type WallsGameUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *WallsGameMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCreatedAt sets the "created_at" field.
func (wguo *WallsGameUpdateOne) SetCreatedAt(t time.Time) *WallsGameUpdateOne {
	wguo.mutation.SetCreatedAt(t)
	return wguo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wguo *WallsGameUpdateOne) SetNillableCreatedAt(t *time.Time) *WallsGameUpdateOne {
	if t != nil {
		wguo.SetCreatedAt(*t)
	}
	return wguo
}

// SetUpdatedAt sets the "updated_at" field.
func (wguo *WallsGameUpdateOne) SetUpdatedAt(t time.Time) *WallsGameUpdateOne {
	wguo.mutation.SetUpdatedAt(t)
	return wguo
}

// SetUsername sets the "username" field.
func (wguo *WallsGameUpdateOne) SetUsername(s string) *WallsGameUpdateOne {
	wguo.mutation.SetUsername(s)
	return wguo
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (wguo *WallsGameUpdateOne) SetNillableUsername(s *string) *WallsGameUpdateOne {
	if s != nil {
		wguo.SetUsername(*s)
	}
	return wguo
}

// SetArticleID sets the "article_id" field.
func (wguo *WallsGameUpdateOne) SetArticleID(u uint) *WallsGameUpdateOne {
	wguo.mutation.ResetArticleID()
	wguo.mutation.SetArticleID(u)
	return wguo
}

// SetNillableArticleID sets the "article_id" field if the given value is not nil.
func (wguo *WallsGameUpdateOne) SetNillableArticleID(u *uint) *WallsGameUpdateOne {
	if u != nil {
		wguo.SetArticleID(*u)
	}
	return wguo
}

// AddArticleID adds u to the "article_id" field.
func (wguo *WallsGameUpdateOne) AddArticleID(u int) *WallsGameUpdateOne {
	wguo.mutation.AddArticleID(u)
	return wguo
}

// SetStatus sets the "status" field.
func (wguo *WallsGameUpdateOne) SetStatus(w wallsgame.Status) *WallsGameUpdateOne {
	wguo.mutation.SetStatus(w)
	return wguo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wguo *WallsGameUpdateOne) SetNillableStatus(w *wallsgame.Status) *WallsGameUpdateOne {
	if w != nil {
		wguo.SetStatus(*w)
	}
	return wguo
}

// SetScore sets the "score" field.
func (wguo *WallsGameUpdateOne) SetScore(f float64) *WallsGameUpdateOne {
	wguo.mutation.ResetScore()
	wguo.mutation.SetScore(f)
	return wguo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (wguo *WallsGameUpdateOne) SetNillableScore(f *float64) *WallsGameUpdateOne {
	if f != nil {
		wguo.SetScore(*f)
	}
	return wguo
}

// AddScore adds f to the "score" field.
func (wguo *WallsGameUpdateOne) AddScore(f float64) *WallsGameUpdateOne {
	wguo.mutation.AddScore(f)
	return wguo
}

// ClearScore clears the value of the "score" field.
func (wguo *WallsGameUpdateOne) ClearScore() *WallsGameUpdateOne {
	wguo.mutation.ClearScore()
	return wguo
}

// SetStartedAt sets the "started_at" field.
func (wguo *WallsGameUpdateOne) SetStartedAt(t time.Time) *WallsGameUpdateOne {
	wguo.mutation.SetStartedAt(t)
	return wguo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (wguo *WallsGameUpdateOne) SetNillableStartedAt(t *time.Time) *WallsGameUpdateOne {
	if t != nil {
		wguo.SetStartedAt(*t)
	}
	return wguo
}

// ClearStartedAt clears the value of the "started_at" field.
func (wguo *WallsGameUpdateOne) ClearStartedAt() *WallsGameUpdateOne {
	wguo.mutation.ClearStartedAt()
	return wguo
}

// SetFinishedAt sets the "finished_at" field.
func (wguo *WallsGameUpdateOne) SetFinishedAt(t time.Time) *WallsGameUpdateOne {
	wguo.mutation.SetFinishedAt(t)
	return wguo
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (wguo *WallsGameUpdateOne) SetNillableFinishedAt(t *time.Time) *WallsGameUpdateOne {
	if t != nil {
		wguo.SetFinishedAt(*t)
	}
	return wguo
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (wguo *WallsGameUpdateOne) ClearFinishedAt() *WallsGameUpdateOne {
	wguo.mutation.ClearFinishedAt()
	return wguo
}

// SetHoursPlayed sets the "hours_played" field.
func (wguo *WallsGameUpdateOne) SetHoursPlayed(i int) *WallsGameUpdateOne {
	wguo.mutation.ResetHoursPlayed()
	wguo.mutation.SetHoursPlayed(i)
	return wguo
}

// SetNillableHoursPlayed sets the "hours_played" field if the given value is not nil.
func (wguo *WallsGameUpdateOne) SetNillableHoursPlayed(i *int) *WallsGameUpdateOne {
	if i != nil {
		wguo.SetHoursPlayed(*i)
	}
	return wguo
}

// AddHoursPlayed adds i to the "hours_played" field.
func (wguo *WallsGameUpdateOne) AddHoursPlayed(i int) *WallsGameUpdateOne {
	wguo.mutation.AddHoursPlayed(i)
	return wguo
}

// Mutation returns the WallsGameMutation object of the builder.
func (wguo *WallsGameUpdateOne) Mutation() *WallsGameMutation {
	return wguo.mutation
}

// Where appends a list predicates to the WallsGameUpdate builder.
func (wguo *WallsGameUpdateOne) Where(ps ...predicate.WallsGame) *WallsGameUpdateOne {
	wguo.mutation.Where(ps...)
	return wguo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wguo *WallsGameUpdateOne) Select(field string, fields ...string) *WallsGameUpdateOne {
	wguo.fields = append([]string{field}, fields...)
	return wguo
}

// Save executes the query and returns the updated WallsGame entity.
func (wguo *WallsGameUpdateOne) Save(ctx context.Context) (*WallsGame, error) {
	wguo.defaults()
	return withHooks(ctx, wguo.sqlSave, wguo.mutation, wguo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wguo *WallsGameUpdateOne) SaveX(ctx context.Context) *WallsGame {
	node, err := wguo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wguo *WallsGameUpdateOne) Exec(ctx context.Context) error {
	_, err := wguo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wguo *WallsGameUpdateOne) ExecX(ctx context.Context) {
	if err := wguo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wguo *WallsGameUpdateOne) defaults() {
	if _, ok := wguo.mutation.UpdatedAt(); !ok {
		v := wallsgame.UpdateDefaultUpdatedAt()
		wguo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wguo *WallsGameUpdateOne) check() error {
	if v, ok := wguo.mutation.Username(); ok {
		if err := wallsgame.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "WallsGame.username": %w`, err)}
		}
	}
	if v, ok := wguo.mutation.Status(); ok {
		if err := wallsgame.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WallsGame.status": %w`, err)}
		}
	}
	if v, ok := wguo.mutation.HoursPlayed(); ok {
		if err := wallsgame.HoursPlayedValidator(v); err != nil {
			return &ValidationError{Name: "hours_played", err: fmt.Errorf(`ent: validator failed for field "WallsGame.hours_played": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (wguo *WallsGameUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *WallsGameUpdateOne {
	wguo.modifiers = append(wguo.modifiers, modifiers...)
	return wguo
}

func (wguo *WallsGameUpdateOne) sqlSave(ctx context.Context) (_node *WallsGame, err error) {
	if err := wguo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wallsgame.Table, wallsgame.Columns, sqlgraph.NewFieldSpec(wallsgame.FieldID, field.TypeUint))
	id, ok := wguo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WallsGame.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wguo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallsgame.FieldID)
		for _, f := range fields {
			if !wallsgame.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wallsgame.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wguo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wguo.mutation.CreatedAt(); ok {
		_spec.SetField(wallsgame.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := wguo.mutation.UpdatedAt(); ok {
		_spec.SetField(wallsgame.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := wguo.mutation.Username(); ok {
		_spec.SetField(wallsgame.FieldUsername, field.TypeString, value)
	}
	if value, ok := wguo.mutation.ArticleID(); ok {
		_spec.SetField(wallsgame.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wguo.mutation.AddedArticleID(); ok {
		_spec.AddField(wallsgame.FieldArticleID, field.TypeUint, value)
	}
	if value, ok := wguo.mutation.Status(); ok {
		_spec.SetField(wallsgame.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wguo.mutation.Score(); ok {
		_spec.SetField(wallsgame.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := wguo.mutation.AddedScore(); ok {
		_spec.AddField(wallsgame.FieldScore, field.TypeFloat64, value)
	}
	if wguo.mutation.ScoreCleared() {
		_spec.ClearField(wallsgame.FieldScore, field.TypeFloat64)
	}
	if value, ok := wguo.mutation.StartedAt(); ok {
		_spec.SetField(wallsgame.FieldStartedAt, field.TypeTime, value)
	}
	if wguo.mutation.StartedAtCleared() {
		_spec.ClearField(wallsgame.FieldStartedAt, field.TypeTime)
	}
	if value, ok := wguo.mutation.FinishedAt(); ok {
		_spec.SetField(wallsgame.FieldFinishedAt, field.TypeTime, value)
	}
	if wguo.mutation.FinishedAtCleared() {
		_spec.ClearField(wallsgame.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := wguo.mutation.HoursPlayed(); ok {
		_spec.SetField(wallsgame.FieldHoursPlayed, field.TypeInt, value)
	}
	if value, ok := wguo.mutation.AddedHoursPlayed(); ok {
		_spec.AddField(wallsgame.FieldHoursPlayed, field.TypeInt, value)
	}
	_spec.AddModifiers(wguo.modifiers...)
	_node = &WallsGame{config: wguo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wguo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wallsgame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wguo.mutation.done = true
	return _node, nil
}
