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
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
)

// WallsBookQuery is the builder for querying WallsBook entities.
type WallsBookQuery struct {
	config
	ctx        *QueryContext
	order      []wallsbook.OrderOption
	inters     []Interceptor
	predicates []predicate.WallsBook
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WallsBookQuery builder.
func (wbq *WallsBookQuery) Where(ps ...predicate.WallsBook) *WallsBookQuery {
	wbq.predicates = append(wbq.predicates, ps...)
	return wbq
}

// Limit the number of records to be returned by this query.
func (wbq *WallsBookQuery) Limit(limit int) *WallsBookQuery {
	wbq.ctx.Limit = &limit
	return wbq
}

// Offset to start from.
func (wbq *WallsBookQuery) Offset(offset int) *WallsBookQuery {
	wbq.ctx.Offset = &offset
	return wbq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wbq *WallsBookQuery) Unique(unique bool) *WallsBookQuery {
	wbq.ctx.Unique = &unique
	return wbq
}

// Order specifies how the records should be ordered.
func (wbq *WallsBookQuery) Order(o ...wallsbook.OrderOption) *WallsBookQuery {
	wbq.order = append(wbq.order, o...)
	return wbq
}

// First returns the first WallsBook entity from the query.
// Returns a *NotFoundError when no WallsBook was found.
func (wbq *WallsBookQuery) First(ctx context.Context) (*WallsBook, error) {
	nodes, err := wbq.Limit(1).All(setContextOp(ctx, wbq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{wallsbook.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wbq *WallsBookQuery) FirstX(ctx context.Context) *WallsBook {
	node, err := wbq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WallsBook ID from the query.
// Returns a *NotFoundError when no WallsBook ID was found.
func (wbq *WallsBookQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wbq.Limit(1).IDs(setContextOp(ctx, wbq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{wallsbook.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wbq *WallsBookQuery) FirstIDX(ctx context.Context) uint {
	id, err := wbq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WallsBook entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WallsBook entity is found.
// Returns a *NotFoundError when no WallsBook entities are found.
func (wbq *WallsBookQuery) Only(ctx context.Context) (*WallsBook, error) {
	nodes, err := wbq.Limit(2).All(setContextOp(ctx, wbq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{wallsbook.Label}
	default:
		return nil, &NotSingularError{wallsbook.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wbq *WallsBookQuery) OnlyX(ctx context.Context) *WallsBook {
	node, err := wbq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WallsBook ID in the query.
// Returns a *NotSingularError when more than one WallsBook ID is found.
// Returns a *NotFoundError when no entities are found.
func (wbq *WallsBookQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wbq.Limit(2).IDs(setContextOp(ctx, wbq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{wallsbook.Label}
	default:
		err = &NotSingularError{wallsbook.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wbq *WallsBookQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wbq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WallsBooks.
func (wbq *WallsBookQuery) All(ctx context.Context) ([]*WallsBook, error) {
	ctx = setContextOp(ctx, wbq.ctx, ent.OpQueryAll)
	if err := wbq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WallsBook, *WallsBookQuery]()
	return withInterceptors[[]*WallsBook](ctx, wbq, qr, wbq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wbq *WallsBookQuery) AllX(ctx context.Context) []*WallsBook {
	nodes, err := wbq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WallsBook IDs.
func (wbq *WallsBookQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wbq.ctx.Unique == nil && wbq.path != nil {
		wbq.Unique(true)
	}
	ctx = setContextOp(ctx, wbq.ctx, ent.OpQueryIDs)
	if err = wbq.Select(wallsbook.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wbq *WallsBookQuery) IDsX(ctx context.Context) []uint {
	ids, err := wbq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wbq *WallsBookQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wbq.ctx, ent.OpQueryCount)
	if err := wbq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wbq, querierCount[*WallsBookQuery](), wbq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wbq *WallsBookQuery) CountX(ctx context.Context) int {
	count, err := wbq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wbq *WallsBookQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wbq.ctx, ent.OpQueryExist)
	switch _, err := wbq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wbq *WallsBookQuery) ExistX(ctx context.Context) bool {
	exist, err := wbq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WallsBookQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wbq *WallsBookQuery) Clone() *WallsBookQuery {
	if wbq == nil {
		return nil
	}
	return &WallsBookQuery{
		config:     wbq.config,
		ctx:        wbq.ctx.Clone(),
		order:      append([]wallsbook.OrderOption{}, wbq.order...),
		inters:     append([]Interceptor{}, wbq.inters...),
		predicates: append([]predicate.WallsBook{}, wbq.predicates...),
		// clone intermediate query.
		sql:       wbq.sql.Clone(),
		path:      wbq.path,
		modifiers: append([]func(*sql.Selector){}, wbq.modifiers...),
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
//	client.WallsBook.Query().
//		GroupBy(wallsbook.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wbq *WallsBookQuery) GroupBy(field string, fields ...string) *WallsBookGroupBy {
	wbq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WallsBookGroupBy{build: wbq}
	grbuild.flds = &wbq.ctx.Fields
	grbuild.label = wallsbook.Label
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
//	client.WallsBook.Query().
//		Select(wallsbook.FieldCreatedAt).
//		Scan(ctx, &v)
func (wbq *WallsBookQuery) Select(fields ...string) *WallsBookSelect {
	wbq.ctx.Fields = append(wbq.ctx.Fields, fields...)
	sbuild := &WallsBookSelect{WallsBookQuery: wbq}
	sbuild.label = wallsbook.Label
	sbuild.flds, sbuild.scan = &wbq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WallsBookSelect configured with the given aggregations.
func (wbq *WallsBookQuery) Aggregate(fns ...AggregateFunc) *WallsBookSelect {
	return wbq.Select().Aggregate(fns...)
}

func (wbq *WallsBookQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wbq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wbq); err != nil {
				return err
			}
		}
	}
	for _, f := range wbq.ctx.Fields {
		if !wallsbook.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wbq.path != nil {
		prev, err := wbq.path(ctx)
		if err != nil {
			return err
		}
		wbq.sql = prev
	}
	return nil
}

func (wbq *WallsBookQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WallsBook, error) {
	var (
		nodes = []*WallsBook{}
		_spec = wbq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WallsBook).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WallsBook{config: wbq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(wbq.modifiers) > 0 {
		_spec.Modifiers = wbq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wbq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (wbq *WallsBookQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wbq.querySpec()
	if len(wbq.modifiers) > 0 {
		_spec.Modifiers = wbq.modifiers
	}
	_spec.Node.Columns = wbq.ctx.Fields
	if len(wbq.ctx.Fields) > 0 {
		_spec.Unique = wbq.ctx.Unique != nil && *wbq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wbq.driver, _spec)
}

func (wbq *WallsBookQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(wallsbook.Table, wallsbook.Columns, sqlgraph.NewFieldSpec(wallsbook.FieldID, field.TypeUint))
	_spec.From = wbq.sql
	if unique := wbq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wbq.path != nil {
		_spec.Unique = true
	}
	if fields := wbq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallsbook.FieldID)
		for i := range fields {
			if fields[i] != wallsbook.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := wbq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wbq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wbq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wbq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wbq *WallsBookQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wbq.driver.Dialect())
	t1 := builder.Table(wallsbook.Table)
	columns := wbq.ctx.Fields
	if len(columns) == 0 {
		columns = wallsbook.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wbq.sql != nil {
		selector = wbq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wbq.ctx.Unique != nil && *wbq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range wbq.modifiers {
		m(selector)
	}
	for _, p := range wbq.predicates {
		p(selector)
	}
	for _, p := range wbq.order {
		p(selector)
	}
	if offset := wbq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wbq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (wbq *WallsBookQuery) Modify(modifiers ...func(s *sql.Selector)) *WallsBookSelect {
	wbq.modifiers = append(wbq.modifiers, modifiers...)
	return wbq.Select()
}

// WallsBookGroupBy is the group-by builder for WallsBook entities.
type WallsBookGroupBy struct {
	selector
	build *WallsBookQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wbgb *WallsBookGroupBy) Aggregate(fns ...AggregateFunc) *WallsBookGroupBy {
	wbgb.fns = append(wbgb.fns, fns...)
	return wbgb
}

// Scan applies the selector query and scans the result into the given value.
func (wbgb *WallsBookGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wbgb.build.ctx, ent.OpQueryGroupBy)
	if err := wbgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WallsBookQuery, *WallsBookGroupBy](ctx, wbgb.build, wbgb, wbgb.build.inters, v)
}

func (wbgb *WallsBookGroupBy) sqlScan(ctx context.Context, root *WallsBookQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wbgb.fns))
	for _, fn := range wbgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wbgb.flds)+len(wbgb.fns))
		for _, f := range *wbgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wbgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wbgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WallsBookSelect is the builder for selecting fields of WallsBook entities.
type WallsBookSelect struct {
	*WallsBookQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wbs *WallsBookSelect) Aggregate(fns ...AggregateFunc) *WallsBookSelect {
	wbs.fns = append(wbs.fns, fns...)
	return wbs
}

// Scan applies the selector query and scans the result into the given value.
func (wbs *WallsBookSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wbs.ctx, ent.OpQuerySelect)
	if err := wbs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WallsBookQuery, *WallsBookSelect](ctx, wbs.WallsBookQuery, wbs, wbs.inters, v)
}

func (wbs *WallsBookSelect) sqlScan(ctx context.Context, root *WallsBookQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wbs.fns))
	for _, fn := range wbs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wbs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wbs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (wbs *WallsBookSelect) Modify(modifiers ...func(s *sql.Selector)) *WallsBookSelect {
	wbs.modifiers = append(wbs.modifiers, modifiers...)
	return wbs
}
