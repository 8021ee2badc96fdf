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
	"github.com/anzhiyu-c/mediawall-app/ent/wallscomic"
)

// WallsComicQuery is the builder for querying WallsComic entities.
type WallsComicQuery struct {
	config
	ctx        *QueryContext
	order      []wallscomic.OrderOption
	inters     []Interceptor
	predicates []predicate.WallsComic
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WallsComicQuery builder.
func (wcq *WallsComicQuery) Where(ps ...predicate.WallsComic) *WallsComicQuery {
	wcq.predicates = append(wcq.predicates, ps...)
	return wcq
}

// Limit the number of records to be returned by this query.
func (wcq *WallsComicQuery) Limit(limit int) *WallsComicQuery {
	wcq.ctx.Limit = &limit
	return wcq
}

// Offset to start from.
func (wcq *WallsComicQuery) Offset(offset int) *WallsComicQuery {
	wcq.ctx.Offset = &offset
	return wcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wcq *WallsComicQuery) Unique(unique bool) *WallsComicQuery {
	wcq.ctx.Unique = &unique
	return wcq
}

// Order specifies how the records should be ordered.
func (wcq *WallsComicQuery) Order(o ...wallscomic.OrderOption) *WallsComicQuery {
	wcq.order = append(wcq.order, o...)
	return wcq
}

// First returns the first WallsComic entity from the query.
// Returns a *NotFoundError when no WallsComic was found.
func (wcq *WallsComicQuery) First(ctx context.Context) (*WallsComic, error) {
	nodes, err := wcq.Limit(1).All(setContextOp(ctx, wcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{wallscomic.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wcq *WallsComicQuery) FirstX(ctx context.Context) *WallsComic {
	node, err := wcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WallsComic ID from the query.
// Returns a *NotFoundError when no WallsComic ID was found.
func (wcq *WallsComicQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wcq.Limit(1).IDs(setContextOp(ctx, wcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{wallscomic.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wcq *WallsComicQuery) FirstIDX(ctx context.Context) uint {
	id, err := wcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WallsComic entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WallsComic entity is found.
// Returns a *NotFoundError when no WallsComic entities are found.
func (wcq *WallsComicQuery) Only(ctx context.Context) (*WallsComic, error) {
	nodes, err := wcq.Limit(2).All(setContextOp(ctx, wcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{wallscomic.Label}
	default:
		return nil, &NotSingularError{wallscomic.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wcq *WallsComicQuery) OnlyX(ctx context.Context) *WallsComic {
	node, err := wcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WallsComic ID in the query.
// Returns a *NotSingularError when more than one WallsComic ID is found.
// Returns a *NotFoundError when no entities are found.
func (wcq *WallsComicQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wcq.Limit(2).IDs(setContextOp(ctx, wcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{wallscomic.Label}
	default:
		err = &NotSingularError{wallscomic.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wcq *WallsComicQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WallsComics.
func (wcq *WallsComicQuery) All(ctx context.Context) ([]*WallsComic, error) {
	ctx = setContextOp(ctx, wcq.ctx, ent.OpQueryAll)
	if err := wcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WallsComic, *WallsComicQuery]()
	return withInterceptors[[]*WallsComic](ctx, wcq, qr, wcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wcq *WallsComicQuery) AllX(ctx context.Context) []*WallsComic {
	nodes, err := wcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WallsComic IDs.
func (wcq *WallsComicQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wcq.ctx.Unique == nil && wcq.path != nil {
		wcq.Unique(true)
	}
	ctx = setContextOp(ctx, wcq.ctx, ent.OpQueryIDs)
	if err = wcq.Select(wallscomic.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wcq *WallsComicQuery) IDsX(ctx context.Context) []uint {
	ids, err := wcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wcq *WallsComicQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wcq.ctx, ent.OpQueryCount)
	if err := wcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wcq, querierCount[*WallsComicQuery](), wcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wcq *WallsComicQuery) CountX(ctx context.Context) int {
	count, err := wcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wcq *WallsComicQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wcq.ctx, ent.OpQueryExist)
	switch _, err := wcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wcq *WallsComicQuery) ExistX(ctx context.Context) bool {
	exist, err := wcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WallsComicQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wcq *WallsComicQuery) Clone() *WallsComicQuery {
	if wcq == nil {
		return nil
	}
	return &WallsComicQuery{
		config:     wcq.config,
		ctx:        wcq.ctx.Clone(),
		order:      append([]wallscomic.OrderOption{}, wcq.order...),
		inters:     append([]Interceptor{}, wcq.inters...),
		predicates: append([]predicate.WallsComic{}, wcq.predicates...),
		// clone intermediate query.
		sql:       wcq.sql.Clone(),
		path:      wcq.path,
		modifiers: append([]func(*sql.Selector){}, wcq.modifiers...),
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
//	client.WallsComic.Query().
//		GroupBy(wallscomic.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wcq *WallsComicQuery) GroupBy(field string, fields ...string) *WallsComicGroupBy {
	wcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WallsComicGroupBy{build: wcq}
	grbuild.flds = &wcq.ctx.Fields
	grbuild.label = wallscomic.Label
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
//	client.WallsComic.Query().
//		Select(wallscomic.FieldCreatedAt).
//		Scan(ctx, &v)
func (wcq *WallsComicQuery) Select(fields ...string) *WallsComicSelect {
	wcq.ctx.Fields = append(wcq.ctx.Fields, fields...)
	sbuild := &WallsComicSelect{WallsComicQuery: wcq}
	sbuild.label = wallscomic.Label
	sbuild.flds, sbuild.scan = &wcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WallsComicSelect configured with the given aggregations.
func (wcq *WallsComicQuery) Aggregate(fns ...AggregateFunc) *WallsComicSelect {
	return wcq.Select().Aggregate(fns...)
}

func (wcq *WallsComicQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wcq); err != nil {
				return err
			}
		}
	}
	for _, f := range wcq.ctx.Fields {
		if !wallscomic.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wcq.path != nil {
		prev, err := wcq.path(ctx)
		if err != nil {
			return err
		}
		wcq.sql = prev
	}
	return nil
}

func (wcq *WallsComicQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WallsComic, error) {
	var (
		nodes = []*WallsComic{}
		_spec = wcq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WallsComic).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WallsComic{config: wcq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(wcq.modifiers) > 0 {
		_spec.Modifiers = wcq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (wcq *WallsComicQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wcq.querySpec()
	if len(wcq.modifiers) > 0 {
		_spec.Modifiers = wcq.modifiers
	}
	_spec.Node.Columns = wcq.ctx.Fields
	if len(wcq.ctx.Fields) > 0 {
		_spec.Unique = wcq.ctx.Unique != nil && *wcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wcq.driver, _spec)
}

func (wcq *WallsComicQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(wallscomic.Table, wallscomic.Columns, sqlgraph.NewFieldSpec(wallscomic.FieldID, field.TypeUint))
	_spec.From = wcq.sql
	if unique := wcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wcq.path != nil {
		_spec.Unique = true
	}
	if fields := wcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallscomic.FieldID)
		for i := range fields {
			if fields[i] != wallscomic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := wcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wcq *WallsComicQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wcq.driver.Dialect())
	t1 := builder.Table(wallscomic.Table)
	columns := wcq.ctx.Fields
	if len(columns) == 0 {
		columns = wallscomic.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wcq.sql != nil {
		selector = wcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wcq.ctx.Unique != nil && *wcq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range wcq.modifiers {
		m(selector)
	}
	for _, p := range wcq.predicates {
		p(selector)
	}
	for _, p := range wcq.order {
		p(selector)
	}
	if offset := wcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (wcq *WallsComicQuery) Modify(modifiers ...func(s *sql.Selector)) *WallsComicSelect {
	wcq.modifiers = append(wcq.modifiers, modifiers...)
	return wcq.Select()
}

// WallsComicGroupBy is the group-by builder for WallsComic entities.
type WallsComicGroupBy struct {
	selector
	build *WallsComicQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wcgb *WallsComicGroupBy) Aggregate(fns ...AggregateFunc) *WallsComicGroupBy {
	wcgb.fns = append(wcgb.fns, fns...)
	return wcgb
}

// Scan applies the selector query and scans the result into the given value.
func (wcgb *WallsComicGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wcgb.build.ctx, ent.OpQueryGroupBy)
	if err := wcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WallsComicQuery, *WallsComicGroupBy](ctx, wcgb.build, wcgb, wcgb.build.inters, v)
}

func (wcgb *WallsComicGroupBy) sqlScan(ctx context.Context, root *WallsComicQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wcgb.fns))
	for _, fn := range wcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wcgb.flds)+len(wcgb.fns))
		for _, f := range *wcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WallsComicSelect is the builder for selecting fields of WallsComic entities.
type WallsComicSelect struct {
	*WallsComicQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wcs *WallsComicSelect) Aggregate(fns ...AggregateFunc) *WallsComicSelect {
	wcs.fns = append(wcs.fns, fns...)
	return wcs
}

// Scan applies the selector query and scans the result into the given value.
func (wcs *WallsComicSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wcs.ctx, ent.OpQuerySelect)
	if err := wcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WallsComicQuery, *WallsComicSelect](ctx, wcs.WallsComicQuery, wcs, wcs.inters, v)
}

func (wcs *WallsComicSelect) sqlScan(ctx context.Context, root *WallsComicQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wcs.fns))
	for _, fn := range wcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (wcs *WallsComicSelect) Modify(modifiers ...func(s *sql.Selector)) *WallsComicSelect {
	wcs.modifiers = append(wcs.modifiers, modifiers...)
	return wcs
}
