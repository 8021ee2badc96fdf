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
	"github.com/anzhiyu-c/mediawall-app/ent/wallsmanga"
)

// WallsMangaQuery is the builder for querying WallsManga entities.
type WallsMangaQuery struct {
	config
	ctx        *QueryContext
	order      []wallsmanga.OrderOption
	inters     []Interceptor
	predicates []predicate.WallsManga
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WallsMangaQuery builder.
func (wmq *WallsMangaQuery) Where(ps ...predicate.WallsManga) *WallsMangaQuery {
	wmq.predicates = append(wmq.predicates, ps...)
	return wmq
}

// Limit the number of records to be returned by this query.
func (wmq *WallsMangaQuery) Limit(limit int) *WallsMangaQuery {
	wmq.ctx.Limit = &limit
	return wmq
}

// Offset to start from.
func (wmq *WallsMangaQuery) Offset(offset int) *WallsMangaQuery {
	wmq.ctx.Offset = &offset
	return wmq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wmq *WallsMangaQuery) Unique(unique bool) *WallsMangaQuery {
	wmq.ctx.Unique = &unique
	return wmq
}

// Order specifies how the records should be ordered.
func (wmq *WallsMangaQuery) Order(o ...wallsmanga.OrderOption) *WallsMangaQuery {
	wmq.order = append(wmq.order, o...)
	return wmq
}

// First returns the first WallsManga entity from the query.
// Returns a *NotFoundError when no WallsManga was found.
func (wmq *WallsMangaQuery) First(ctx context.Context) (*WallsManga, error) {
	nodes, err := wmq.Limit(1).All(setContextOp(ctx, wmq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{wallsmanga.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wmq *WallsMangaQuery) FirstX(ctx context.Context) *WallsManga {
	node, err := wmq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WallsManga ID from the query.
// Returns a *NotFoundError when no WallsManga ID was found.
func (wmq *WallsMangaQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wmq.Limit(1).IDs(setContextOp(ctx, wmq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{wallsmanga.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wmq *WallsMangaQuery) FirstIDX(ctx context.Context) uint {
	id, err := wmq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WallsManga entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WallsManga entity is found.
// Returns a *NotFoundError when no WallsManga entities are found.
func (wmq *WallsMangaQuery) Only(ctx context.Context) (*WallsManga, error) {
	nodes, err := wmq.Limit(2).All(setContextOp(ctx, wmq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{wallsmanga.Label}
	default:
		return nil, &NotSingularError{wallsmanga.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wmq *WallsMangaQuery) OnlyX(ctx context.Context) *WallsManga {
	node, err := wmq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WallsManga ID in the query.
// Returns a *NotSingularError when more than one WallsManga ID is found.
// Returns a *NotFoundError when no entities are found.
func (wmq *WallsMangaQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wmq.Limit(2).IDs(setContextOp(ctx, wmq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{wallsmanga.Label}
	default:
		err = &NotSingularError{wallsmanga.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wmq *WallsMangaQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wmq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WallsMangas.
func (wmq *WallsMangaQuery) All(ctx context.Context) ([]*WallsManga, error) {
	ctx = setContextOp(ctx, wmq.ctx, ent.OpQueryAll)
	if err := wmq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WallsManga, *WallsMangaQuery]()
	return withInterceptors[[]*WallsManga](ctx, wmq, qr, wmq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wmq *WallsMangaQuery) AllX(ctx context.Context) []*WallsManga {
	nodes, err := wmq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WallsManga IDs.
func (wmq *WallsMangaQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wmq.ctx.Unique == nil && wmq.path != nil {
		wmq.Unique(true)
	}
	ctx = setContextOp(ctx, wmq.ctx, ent.OpQueryIDs)
	if err = wmq.Select(wallsmanga.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wmq *WallsMangaQuery) IDsX(ctx context.Context) []uint {
	ids, err := wmq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wmq *WallsMangaQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wmq.ctx, ent.OpQueryCount)
	if err := wmq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wmq, querierCount[*WallsMangaQuery](), wmq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wmq *WallsMangaQuery) CountX(ctx context.Context) int {
	count, err := wmq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wmq *WallsMangaQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wmq.ctx, ent.OpQueryExist)
	switch _, err := wmq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wmq *WallsMangaQuery) ExistX(ctx context.Context) bool {
	exist, err := wmq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WallsMangaQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wmq *WallsMangaQuery) Clone() *WallsMangaQuery {
	if wmq == nil {
		return nil
	}
	return &WallsMangaQuery{
		config:     wmq.config,
		ctx:        wmq.ctx.Clone(),
		order:      append([]wallsmanga.OrderOption{}, wmq.order...),
		inters:     append([]Interceptor{}, wmq.inters...),
		predicates: append([]predicate.WallsManga{}, wmq.predicates...),
		// clone intermediate query.
		sql:       wmq.sql.Clone(),
		path:      wmq.path,
		modifiers: append([]func(*sql.Selector){}, wmq.modifiers...),
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
//	client.WallsManga.Query().
//		GroupBy(wallsmanga.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wmq *WallsMangaQuery) GroupBy(field string, fields ...string) *WallsMangaGroupBy {
	wmq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WallsMangaGroupBy{build: wmq}
	grbuild.flds = &wmq.ctx.Fields
	grbuild.label = wallsmanga.Label
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
//	client.WallsManga.Query().
//		Select(wallsmanga.FieldCreatedAt).
//		Scan(ctx, &v)
func (wmq *WallsMangaQuery) Select(fields ...string) *WallsMangaSelect {
	wmq.ctx.Fields = append(wmq.ctx.Fields, fields...)
	sbuild := &WallsMangaSelect{WallsMangaQuery: wmq}
	sbuild.label = wallsmanga.Label
	sbuild.flds, sbuild.scan = &wmq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WallsMangaSelect configured with the given aggregations.
func (wmq *WallsMangaQuery) Aggregate(fns ...AggregateFunc) *WallsMangaSelect {
	return wmq.Select().Aggregate(fns...)
}

func (wmq *WallsMangaQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wmq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wmq); err != nil {
				return err
			}
		}
	}
	for _, f := range wmq.ctx.Fields {
		if !wallsmanga.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wmq.path != nil {
		prev, err := wmq.path(ctx)
		if err != nil {
			return err
		}
		wmq.sql = prev
	}
	return nil
}

func (wmq *WallsMangaQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WallsManga, error) {
	var (
		nodes = []*WallsManga{}
		_spec = wmq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WallsManga).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WallsManga{config: wmq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(wmq.modifiers) > 0 {
		_spec.Modifiers = wmq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wmq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (wmq *WallsMangaQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wmq.querySpec()
	if len(wmq.modifiers) > 0 {
		_spec.Modifiers = wmq.modifiers
	}
	_spec.Node.Columns = wmq.ctx.Fields
	if len(wmq.ctx.Fields) > 0 {
		_spec.Unique = wmq.ctx.Unique != nil && *wmq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wmq.driver, _spec)
}

func (wmq *WallsMangaQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(wallsmanga.Table, wallsmanga.Columns, sqlgraph.NewFieldSpec(wallsmanga.FieldID, field.TypeUint))
	_spec.From = wmq.sql
	if unique := wmq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wmq.path != nil {
		_spec.Unique = true
	}
	if fields := wmq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wallsmanga.FieldID)
		for i := range fields {
			if fields[i] != wallsmanga.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := wmq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wmq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wmq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wmq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wmq *WallsMangaQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wmq.driver.Dialect())
	t1 := builder.Table(wallsmanga.Table)
	columns := wmq.ctx.Fields
	if len(columns) == 0 {
		columns = wallsmanga.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wmq.sql != nil {
		selector = wmq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wmq.ctx.Unique != nil && *wmq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range wmq.modifiers {
		m(selector)
	}
	for _, p := range wmq.predicates {
		p(selector)
	}
	for _, p := range wmq.order {
		p(selector)
	}
	if offset := wmq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wmq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (wmq *WallsMangaQuery) Modify(modifiers ...func(s *sql.Selector)) *WallsMangaSelect {
	wmq.modifiers = append(wmq.modifiers, modifiers...)
	return wmq.Select()
}

// WallsMangaGroupBy is the group-by builder for WallsManga entities.
type WallsMangaGroupBy struct {
	selector
	build *WallsMangaQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wmgb *WallsMangaGroupBy) Aggregate(fns ...AggregateFunc) *WallsMangaGroupBy {
	wmgb.fns = append(wmgb.fns, fns...)
	return wmgb
}

// Scan applies the selector query and scans the result into the given value.
func (wmgb *WallsMangaGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wmgb.build.ctx, ent.OpQueryGroupBy)
	if err := wmgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WallsMangaQuery, *WallsMangaGroupBy](ctx, wmgb.build, wmgb, wmgb.build.inters, v)
}

func (wmgb *WallsMangaGroupBy) sqlScan(ctx context.Context, root *WallsMangaQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wmgb.fns))
	for _, fn := range wmgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wmgb.flds)+len(wmgb.fns))
		for _, f := range *wmgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wmgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wmgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WallsMangaSelect is the builder for selecting fields of WallsManga entities.
type WallsMangaSelect struct {
	*WallsMangaQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wms *WallsMangaSelect) Aggregate(fns ...AggregateFunc) *WallsMangaSelect {
	wms.fns = append(wms.fns, fns...)
	return wms
}

// Scan applies the selector query and scans the result into the given value.
func (wms *WallsMangaSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wms.ctx, ent.OpQuerySelect)
	if err := wms.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WallsMangaQuery, *WallsMangaSelect](ctx, wms.WallsMangaQuery, wms, wms.inters, v)
}

func (wms *WallsMangaSelect) sqlScan(ctx context.Context, root *WallsMangaQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wms.fns))
	for _, fn := range wms.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wms.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wms.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (wms *WallsMangaSelect) Modify(modifiers ...func(s *sql.Selector)) *WallsMangaSelect {
	wms.modifiers = append(wms.modifiers, modifiers...)
	return wms
}
