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
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ComicsReviewQuery is the builder for querying ComicsReview entities.
type ComicsReviewQuery struct {
	config
	ctx        *QueryContext
	order      []comicsreview.OrderOption
	inters     []Interceptor
	predicates []predicate.ComicsReview
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ComicsReviewQuery builder.
func (crq *ComicsReviewQuery) Where(ps ...predicate.ComicsReview) *ComicsReviewQuery {
	crq.predicates = append(crq.predicates, ps...)
	return crq
}

// Limit the number of records to be returned by this query.
func (crq *ComicsReviewQuery) Limit(limit int) *ComicsReviewQuery {
	crq.ctx.Limit = &limit
	return crq
}

// Offset to start from.
func (crq *ComicsReviewQuery) Offset(offset int) *ComicsReviewQuery {
	crq.ctx.Offset = &offset
	return crq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (crq *ComicsReviewQuery) Unique(unique bool) *ComicsReviewQuery {
	crq.ctx.Unique = &unique
	return crq
}

// Order specifies how the records should be ordered.
func (crq *ComicsReviewQuery) Order(o ...comicsreview.OrderOption) *ComicsReviewQuery {
	crq.order = append(crq.order, o...)
	return crq
}

// First returns the first ComicsReview entity from the query.
// Returns a *NotFoundError when no ComicsReview was found.
func (crq *ComicsReviewQuery) First(ctx context.Context) (*ComicsReview, error) {
	nodes, err := crq.Limit(1).All(setContextOp(ctx, crq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{comicsreview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (crq *ComicsReviewQuery) FirstX(ctx context.Context) *ComicsReview {
	node, err := crq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ComicsReview ID from the query.
// Returns a *NotFoundError when no ComicsReview ID was found.
func (crq *ComicsReviewQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = crq.Limit(1).IDs(setContextOp(ctx, crq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{comicsreview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (crq *ComicsReviewQuery) FirstIDX(ctx context.Context) uint {
	id, err := crq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ComicsReview entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ComicsReview entity is found.
// Returns a *NotFoundError when no ComicsReview entities are found.
func (crq *ComicsReviewQuery) Only(ctx context.Context) (*ComicsReview, error) {
	nodes, err := crq.Limit(2).All(setContextOp(ctx, crq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{comicsreview.Label}
	default:
		return nil, &NotSingularError{comicsreview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (crq *ComicsReviewQuery) OnlyX(ctx context.Context) *ComicsReview {
	node, err := crq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ComicsReview ID in the query.
// Returns a *NotSingularError when more than one ComicsReview ID is found.
// Returns a *NotFoundError when no entities are found.
func (crq *ComicsReviewQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = crq.Limit(2).IDs(setContextOp(ctx, crq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{comicsreview.Label}
	default:
		err = &NotSingularError{comicsreview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (crq *ComicsReviewQuery) OnlyIDX(ctx context.Context) uint {
	id, err := crq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ComicsReviews.
func (crq *ComicsReviewQuery) All(ctx context.Context) ([]*ComicsReview, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryAll)
	if err := crq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ComicsReview, *ComicsReviewQuery]()
	return withInterceptors[[]*ComicsReview](ctx, crq, qr, crq.inters)
}

// AllX is like All, but panics if an error occurs.
func (crq *ComicsReviewQuery) AllX(ctx context.Context) []*ComicsReview {
	nodes, err := crq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ComicsReview IDs.
func (crq *ComicsReviewQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if crq.ctx.Unique == nil && crq.path != nil {
		crq.Unique(true)
	}
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryIDs)
	if err = crq.Select(comicsreview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (crq *ComicsReviewQuery) IDsX(ctx context.Context) []uint {
	ids, err := crq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (crq *ComicsReviewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryCount)
	if err := crq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, crq, querierCount[*ComicsReviewQuery](), crq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (crq *ComicsReviewQuery) CountX(ctx context.Context) int {
	count, err := crq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (crq *ComicsReviewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, crq.ctx, ent.OpQueryExist)
	switch _, err := crq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (crq *ComicsReviewQuery) ExistX(ctx context.Context) bool {
	exist, err := crq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ComicsReviewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (crq *ComicsReviewQuery) Clone() *ComicsReviewQuery {
	if crq == nil {
		return nil
	}
	return &ComicsReviewQuery{
		config:     crq.config,
		ctx:        crq.ctx.Clone(),
		order:      append([]comicsreview.OrderOption{}, crq.order...),
		inters:     append([]Interceptor{}, crq.inters...),
		predicates: append([]predicate.ComicsReview{}, crq.predicates...),
		// clone intermediate query.
		sql:       crq.sql.Clone(),
		path:      crq.path,
		modifiers: append([]func(*sql.Selector){}, crq.modifiers...),
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
//	client.ComicsReview.Query().
//		GroupBy(comicsreview.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (crq *ComicsReviewQuery) GroupBy(field string, fields ...string) *ComicsReviewGroupBy {
	crq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ComicsReviewGroupBy{build: crq}
	grbuild.flds = &crq.ctx.Fields
	grbuild.label = comicsreview.Label
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
//	client.ComicsReview.Query().
//		Select(comicsreview.FieldCreatedAt).
//		Scan(ctx, &v)
func (crq *ComicsReviewQuery) Select(fields ...string) *ComicsReviewSelect {
	crq.ctx.Fields = append(crq.ctx.Fields, fields...)
	sbuild := &ComicsReviewSelect{ComicsReviewQuery: crq}
	sbuild.label = comicsreview.Label
	sbuild.flds, sbuild.scan = &crq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ComicsReviewSelect configured with the given aggregations.
func (crq *ComicsReviewQuery) Aggregate(fns ...AggregateFunc) *ComicsReviewSelect {
	return crq.Select().Aggregate(fns...)
}

func (crq *ComicsReviewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range crq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, crq); err != nil {
				return err
			}
		}
	}
	for _, f := range crq.ctx.Fields {
		if !comicsreview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if crq.path != nil {
		prev, err := crq.path(ctx)
		if err != nil {
			return err
		}
		crq.sql = prev
	}
	return nil
}

func (crq *ComicsReviewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ComicsReview, error) {
	var (
		nodes = []*ComicsReview{}
		_spec = crq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ComicsReview).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ComicsReview{config: crq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(crq.modifiers) > 0 {
		_spec.Modifiers = crq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, crq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (crq *ComicsReviewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := crq.querySpec()
	if len(crq.modifiers) > 0 {
		_spec.Modifiers = crq.modifiers
	}
	_spec.Node.Columns = crq.ctx.Fields
	if len(crq.ctx.Fields) > 0 {
		_spec.Unique = crq.ctx.Unique != nil && *crq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, crq.driver, _spec)
}

func (crq *ComicsReviewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(comicsreview.Table, comicsreview.Columns, sqlgraph.NewFieldSpec(comicsreview.FieldID, field.TypeUint))
	_spec.From = crq.sql
	if unique := crq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if crq.path != nil {
		_spec.Unique = true
	}
	if fields := crq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comicsreview.FieldID)
		for i := range fields {
			if fields[i] != comicsreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := crq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := crq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := crq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := crq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (crq *ComicsReviewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(crq.driver.Dialect())
	t1 := builder.Table(comicsreview.Table)
	columns := crq.ctx.Fields
	if len(columns) == 0 {
		columns = comicsreview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if crq.sql != nil {
		selector = crq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if crq.ctx.Unique != nil && *crq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range crq.modifiers {
		m(selector)
	}
	for _, p := range crq.predicates {
		p(selector)
	}
	for _, p := range crq.order {
		p(selector)
	}
	if offset := crq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := crq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (crq *ComicsReviewQuery) Modify(modifiers ...func(s *sql.Selector)) *ComicsReviewSelect {
	crq.modifiers = append(crq.modifiers, modifiers...)
	return crq.Select()
}

// ComicsReviewGroupBy is the group-by builder for ComicsReview entities.
type ComicsReviewGroupBy struct {
	selector
	build *ComicsReviewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (crgb *ComicsReviewGroupBy) Aggregate(fns ...AggregateFunc) *ComicsReviewGroupBy {
	crgb.fns = append(crgb.fns, fns...)
	return crgb
}

// Scan applies the selector query and scans the result into the given value.
func (crgb *ComicsReviewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, crgb.build.ctx, ent.OpQueryGroupBy)
	if err := crgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ComicsReviewQuery, *ComicsReviewGroupBy](ctx, crgb.build, crgb, crgb.build.inters, v)
}

func (crgb *ComicsReviewGroupBy) sqlScan(ctx context.Context, root *ComicsReviewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(crgb.fns))
	for _, fn := range crgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*crgb.flds)+len(crgb.fns))
		for _, f := range *crgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*crgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := crgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ComicsReviewSelect is the builder for selecting fields of ComicsReview entities.
type ComicsReviewSelect struct {
	*ComicsReviewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (crs *ComicsReviewSelect) Aggregate(fns ...AggregateFunc) *ComicsReviewSelect {
	crs.fns = append(crs.fns, fns...)
	return crs
}

// Scan applies the selector query and scans the result into the given value.
func (crs *ComicsReviewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, crs.ctx, ent.OpQuerySelect)
	if err := crs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ComicsReviewQuery, *ComicsReviewSelect](ctx, crs.ComicsReviewQuery, crs, crs.inters, v)
}

func (crs *ComicsReviewSelect) sqlScan(ctx context.Context, root *ComicsReviewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(crs.fns))
	for _, fn := range crs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*crs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := crs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (crs *ComicsReviewSelect) Modify(modifiers ...func(s *sql.Selector)) *ComicsReviewSelect {
	crs.modifiers = append(crs.modifiers, modifiers...)
	return crs
}
