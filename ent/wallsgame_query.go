// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
)

// WallsGameQuery is the builder for querying WallsGame entities.
type WallsGameQuery struct {
	config
	ctx        *QueryContext
	order      []wallsgame.OrderOption
	inters     []Interceptor
	predicates []predicate.WallsGame
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WallsGameQuery builder.
func (wgq *WallsGameQuery) Where(ps ...predicate.WallsGame) *WallsGameQuery {
	wgq.predicates = append(wgq.predicates, ps...)
	return wgq
}

// Limit the number of records to be returned by this query.
func (wgq *WallsGameQuery) Limit(limit int) *WallsGameQuery {
	wgq.ctx.Limit = &limit
	return wgq
}

// Offset to start from.
func (wgq *WallsGameQuery) Offset(offset int) *WallsGameQuery {
	wgq.ctx.Offset = &offset
	return wgq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wgq *WallsGameQuery) Unique(unique bool) *WallsGameQuery {
	wgq.ctx.Unique = &unique
	return wgq
}

// Order specifies how the records should be ordered.
func (wgq *WallsGameQuery) Order(o ...wallsgame.OrderOption) *WallsGameQuery {
	wgq.order = append(wgq.order, o...)
	return wgq
}

// First returns the first WallsGame entity from the query.
// Returns a *NotFoundError when no WallsGame was found.
func (wgq *WallsGameQuery) First(ctx context.Context) (*WallsGame, error) {
	nodes, err := wgq.Limit(1).All(setContextOp(ctx, wgq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{wallsgame.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wgq *WallsGameQuery) FirstX(ctx context.Context) *WallsGame {
	node, err := wgq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WallsGame ID from the query.
// Returns a *NotFoundError when no WallsGame ID was found.
func (wgq *WallsGameQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wgq.Limit(1).IDs(setContextOp(ctx, wgq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{wallsgame.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wgq *WallsGameQuery) FirstIDX(ctx context.Context) uint {
	id, err := wgq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WallsGame entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WallsGame entity is found.
// Returns a *NotFoundError when no WallsGame entities are found.
func (wgq *WallsGameQuery) Only(ctx context.Context) (*WallsGame, error) {
	nodes, err := wgq.Limit(2).All(setContextOp(ctx, wgq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{wallsgame.Label}
	default:
		return nil, &NotSingularError{wallsgame.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wgq *WallsGameQuery) OnlyX(ctx context.Context) *WallsGame {
	node, err := wgq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WallsGame ID in the query.
// Returns a *NotSingularError when more than one WallsGame ID is found.
// Returns a *NotFoundError when no entities are found.
func (wgq *WallsGameQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wgq.Limit(2).IDs(setContextOp(ctx, wgq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{wallsgame.Label}
	default:
		err = &NotSingularError{wallsgame.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wgq *WallsGameQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wgq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WallsGames.
func (wgq *WallsGameQuery) All(ctx context.Context) ([]*WallsGame, error) {
	ctx = setContextOp(ctx, wgq.ctx, ent.OpQueryAll)
	if err := wgq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WallsGame, *WallsGameQuery]()
	return withInterceptors[[]*WallsGame](ctx, wgq, qr, wgq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wgq *WallsGameQuery) AllX(ctx context.Context) []*WallsGame {
	nodes, err := wgq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WallsGame IDs.
func (wgq *WallsGameQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wgq.ctx.Unique == nil && wgq.path != nil {
		wgq.Unique(true)
	}
	ctx = setContextOp(ctx, wgq.ctx, ent.OpQueryIDs)
	if err = wgq.Select(wallsgame.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wgq *WallsGameQuery) IDsX(ctx context.Context) []uint {
	ids, err := wgq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wgq *WallsGameQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wgq.ctx, ent.OpQueryCount)
	if err := wgq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wgq, querierCount[*WallsGameQuery](), wgq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wgq *WallsGameQuery) CountX(ctx context.Context) int {
	count, err := wgq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wgq *WallsGameQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wgq.ctx, ent.OpQueryExist)
	switch _, err := wgq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wgq *WallsGameQuery) ExistX(ctx context.Context) bool {
	exist, err := wgq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WallsGameQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wgq *WallsGameQuery) Clone() *WallsGameQuery {
	if wgq == nil {
		return nil
	}
	return &WallsGameQuery{
		config:     wgq.config,
		ctx:        wgq.ctx.Clone(),
		order:      append([]wallsgame.OrderOption{}, wgq.order...),
		inters:     append([]Interceptor{}, wgq.inters...),
		predicates: append([]predicate.WallsGame{}, wgq.predicates...),
		// clone intermediate query.
		sql:       wgq.sql.Clone(),
		path:      wgq.path,
		modifiers: append([]func(*sql.Selector){}, wgq.modifiers...),
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WallsGame.Query().
//		GroupBy(wallsgame.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wgq *WallsGameQuery) GroupBy(field string, fields ...string) *WallsGameGroupBy {
	wgq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WallsGameGroupBy{build: wgq}
	grbuild.flds = &wgq.ctx.Fields
	grbuild.label = wallsgame.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.WallsGame.Query().
//		Select(wallsgame.FieldCreatedAt).
//		Scan(ctx, &v)
func (wgq *WallsGameQuery) Select(fields ...string) *WallsGameSelect {
	wgq.ctx.Fields = append(wgq.ctx.Fields, fields...)
	sbuild := &WallsGameSelect{WallsGameQuery: wgq}
	sbuild.label = wallsgame.Label
	sbuild.flds, sbuild.scan = &wgq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WallsGameSelect configured with the given aggregations.
func (wgq *WallsGameQuery) Aggregate(fns ...AggregateFunc) *WallsGameSelect {
	return wgq.Select().Aggregate(fns...)
}

func (wgq *WallsGameQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wgq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wgq); err != nil {
				return err
			}
		}
	}
	for _, f := range wgq.ctx.Fields {
		if !wallsgame.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wgq.path != nil {
		prev, err := wgq.path(ctx)
		if err != nil {
			return err
		}
		wgq.sql = prev
	}
	return nil
}

func (wgq *WallsGameQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WallsGame, error) {
	var (
		nodes = []*WallsGame{}
		_spec = wgq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WallsGame).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WallsGame{config: wgq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(wgq.modifiers) > 0 {
		_spec.Modifiers = wgq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wgq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (wgq *WallsGameQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wgq.querySpec()
	if len(wgq.modifiers) > 0 {
		_spec.Modifiers = wgq.modifiers
	}
	_spec.Node.Columns = wgq.ctx.Fields
	if len(wgq.ctx.Fields) > 0 {
		_spec.Unique = wgq.ctx.Unique != nil && *wgq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wgq.driver, _spec)
}

func (wgq *WallsGameQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(wallsgame.Table, wallsgame.Columns, sqlgraph.NewFieldSpec(wallsgame.FieldID, field.TypeUint))
	_spec.From = wgq.sql
	if unique := wgq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wgq.path != nil {
		_spec.Unique = true
	}
	if fields := wgq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallsgame.FieldID)
		for i := range fields {
			if fields[i] != wallsgame.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := wgq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wgq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wgq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wgq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wgq *WallsGameQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wgq.driver.Dialect())
	t1 := builder.Table(wallsgame.Table)
	columns := wgq.ctx.Fields
	if len(columns) == 0 {
		columns = wallsgame.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wgq.sql != nil {
		selector = wgq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wgq.ctx.Unique != nil && *wgq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range wgq.modifiers {
		m(selector)
	}
	for _, p := range wgq.predicates {
		p(selector)
	}
	for _, p := range wgq.order {
		p(selector)
	}
	if offset := wgq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wgq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (wgq *WallsGameQuery) Modify(modifiers ...func(s *sql.Selector)) *WallsGameSelect {
	wgq.modifiers = append(wgq.modifiers, modifiers...)
	return wgq.Select()
}

// WallsGameGroupBy is the group-by builder for WallsGame entities.
type WallsGameGroupBy struct {
	selector
	build *WallsGameQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wggb *WallsGameGroupBy) Aggregate(fns ...AggregateFunc) *WallsGameGroupBy {
	wggb.fns = append(wggb.fns, fns...)
	return wggb
}

// Scan applies the selector query and scans the result into the given value.
func (wggb *WallsGameGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wggb.build.ctx, ent.OpQueryGroupBy)
	if err := wggb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WallsGameQuery, *WallsGameGroupBy](ctx, wggb.build, wggb, wggb.build.inters, v)
}

func (wggb *WallsGameGroupBy) sqlScan(ctx context.Context, root *WallsGameQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wggb.fns))
	for _, fn := range wggb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wggb.flds)+len(wggb.fns))
		for _, f := range *wggb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wggb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wggb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WallsGameSelect is the builder for selecting fields of WallsGame entities.
type WallsGameSelect struct {
	*WallsGameQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wgs *WallsGameSelect) Aggregate(fns ...AggregateFunc) *WallsGameSelect {
	wgs.fns = append(wgs.fns, fns...)
	return wgs
}

// Scan applies the selector query and scans the result into the given value.
func (wgs *WallsGameSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wgs.ctx, ent.OpQuerySelect)
	if err := wgs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WallsGameQuery, *WallsGameSelect](ctx, wgs.WallsGameQuery, wgs, wgs.inters, v)
}

func (wgs *WallsGameSelect) sqlScan(ctx context.Context, root *WallsGameQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wgs.fns))
	for _, fn := range wgs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wgs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wgs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (wgs *WallsGameSelect) Modify(modifiers ...func(s *sql.Selector)) *WallsGameSelect {
	wgs.modifiers = append(wgs.modifiers, modifiers...)
	return wgs
}
