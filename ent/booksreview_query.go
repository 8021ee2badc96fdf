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
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// BooksReviewQuery is the builder for querying BooksReview entities.
type BooksReviewQuery struct {
	config
	ctx        *QueryContext
	order      []booksreview.OrderOption
	inters     []Interceptor
	predicates []predicate.BooksReview
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BooksReviewQuery builder.
func (brq *BooksReviewQuery) Where(ps ...predicate.BooksReview) *BooksReviewQuery {
	brq.predicates = append(brq.predicates, ps...)
	return brq
}

// Limit the number of records to be returned by this query.
func (brq *BooksReviewQuery) Limit(limit int) *BooksReviewQuery {
	brq.ctx.Limit = &limit
	return brq
}

// Offset to start from.
func (brq *BooksReviewQuery) Offset(offset int) *BooksReviewQuery {
	brq.ctx.Offset = &offset
	return brq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (brq *BooksReviewQuery) Unique(unique bool) *BooksReviewQuery {
	brq.ctx.Unique = &unique
	return brq
}

// Order specifies how the records should be ordered.
func (brq *BooksReviewQuery) Order(o ...booksreview.OrderOption) *BooksReviewQuery {
	brq.order = append(brq.order, o...)
	return brq
}

// First returns the first BooksReview entity from the query.
// Returns a *NotFoundError when no BooksReview was found.
func (brq *BooksReviewQuery) First(ctx context.Context) (*BooksReview, error) {
	nodes, err := brq.Limit(1).All(setContextOp(ctx, brq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{booksreview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (brq *BooksReviewQuery) FirstX(ctx context.Context) *BooksReview {
	node, err := brq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BooksReview ID from the query.
// Returns a *NotFoundError when no BooksReview ID was found.
func (brq *BooksReviewQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = brq.Limit(1).IDs(setContextOp(ctx, brq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{booksreview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (brq *BooksReviewQuery) FirstIDX(ctx context.Context) uint {
	id, err := brq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BooksReview entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BooksReview entity is found.
// Returns a *NotFoundError when no BooksReview entities are found.
func (brq *BooksReviewQuery) Only(ctx context.Context) (*BooksReview, error) {
	nodes, err := brq.Limit(2).All(setContextOp(ctx, brq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{booksreview.Label}
	default:
		return nil, &NotSingularError{booksreview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (brq *BooksReviewQuery) OnlyX(ctx context.Context) *BooksReview {
	node, err := brq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BooksReview ID in the query.
// Returns a *NotSingularError when more than one BooksReview ID is found.
// Returns a *NotFoundError when no entities are found.
func (brq *BooksReviewQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = brq.Limit(2).IDs(setContextOp(ctx, brq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{booksreview.Label}
	default:
		err = &NotSingularError{booksreview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (brq *BooksReviewQuery) OnlyIDX(ctx context.Context) uint {
	id, err := brq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BooksReviews.
func (brq *BooksReviewQuery) All(ctx context.Context) ([]*BooksReview, error) {
	ctx = setContextOp(ctx, brq.ctx, ent.OpQueryAll)
	if err := brq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BooksReview, *BooksReviewQuery]()
	return withInterceptors[[]*BooksReview](ctx, brq, qr, brq.inters)
}

// AllX is like All, but panics if an error occurs.
func (brq *BooksReviewQuery) AllX(ctx context.Context) []*BooksReview {
	nodes, err := brq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BooksReview IDs.
func (brq *BooksReviewQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if brq.ctx.Unique == nil && brq.path != nil {
		brq.Unique(true)
	}
	ctx = setContextOp(ctx, brq.ctx, ent.OpQueryIDs)
	if err = brq.Select(booksreview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (brq *BooksReviewQuery) IDsX(ctx context.Context) []uint {
	ids, err := brq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (brq *BooksReviewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, brq.ctx, ent.OpQueryCount)
	if err := brq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, brq, querierCount[*BooksReviewQuery](), brq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (brq *BooksReviewQuery) CountX(ctx context.Context) int {
	count, err := brq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (brq *BooksReviewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, brq.ctx, ent.OpQueryExist)
	switch _, err := brq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (brq *BooksReviewQuery) ExistX(ctx context.Context) bool {
	exist, err := brq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BooksReviewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (brq *BooksReviewQuery) Clone() *BooksReviewQuery {
	if brq == nil {
		return nil
	}
	return &BooksReviewQuery{
		config:     brq.config,
		ctx:        brq.ctx.Clone(),
		order:      append([]booksreview.OrderOption{}, brq.order...),
		inters:     append([]Interceptor{}, brq.inters...),
		predicates: append([]predicate.BooksReview{}, brq.predicates...),
		// clone intermediate query.
		sql:       brq.sql.Clone(),
		path:      brq.path,
		modifiers: append([]func(*sql.Selector){}, brq.modifiers...),
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
//	client.BooksReview.Query().
//		GroupBy(booksreview.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (brq *BooksReviewQuery) GroupBy(field string, fields ...string) *BooksReviewGroupBy {
	brq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BooksReviewGroupBy{build: brq}
	grbuild.flds = &brq.ctx.Fields
	grbuild.label = booksreview.Label
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
//	client.BooksReview.Query().
//		Select(booksreview.FieldCreatedAt).
//		Scan(ctx, &v)
func (brq *BooksReviewQuery) Select(fields ...string) *BooksReviewSelect {
	brq.ctx.Fields = append(brq.ctx.Fields, fields...)
	sbuild := &BooksReviewSelect{BooksReviewQuery: brq}
	sbuild.label = booksreview.Label
	sbuild.flds, sbuild.scan = &brq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BooksReviewSelect configured with the given aggregations.
func (brq *BooksReviewQuery) Aggregate(fns ...AggregateFunc) *BooksReviewSelect {
	return brq.Select().Aggregate(fns...)
}

func (brq *BooksReviewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range brq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, brq); err != nil {
				return err
			}
		}
	}
	for _, f := range brq.ctx.Fields {
		if !booksreview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if brq.path != nil {
		prev, err := brq.path(ctx)
		if err != nil {
			return err
		}
		brq.sql = prev
	}
	return nil
}

func (brq *BooksReviewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BooksReview, error) {
	var (
		nodes = []*BooksReview{}
		_spec = brq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BooksReview).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BooksReview{config: brq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(brq.modifiers) > 0 {
		_spec.Modifiers = brq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, brq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (brq *BooksReviewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := brq.querySpec()
	if len(brq.modifiers) > 0 {
		_spec.Modifiers = brq.modifiers
	}
	_spec.Node.Columns = brq.ctx.Fields
	if len(brq.ctx.Fields) > 0 {
		_spec.Unique = brq.ctx.Unique != nil && *brq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, brq.driver, _spec)
}

func (brq *BooksReviewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(booksreview.Table, booksreview.Columns, sqlgraph.NewFieldSpec(booksreview.FieldID, field.TypeUint))
	_spec.From = brq.sql
	if unique := brq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if brq.path != nil {
		_spec.Unique = true
	}
	if fields := brq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booksreview.FieldID)
		for i := range fields {
			if fields[i] != booksreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := brq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := brq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := brq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := brq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (brq *BooksReviewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(brq.driver.Dialect())
	t1 := builder.Table(booksreview.Table)
	columns := brq.ctx.Fields
	if len(columns) == 0 {
		columns = booksreview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if brq.sql != nil {
		selector = brq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if brq.ctx.Unique != nil && *brq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range brq.modifiers {
		m(selector)
	}
	for _, p := range brq.predicates {
		p(selector)
	}
	for _, p := range brq.order {
		p(selector)
	}
	if offset := brq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := brq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (brq *BooksReviewQuery) Modify(modifiers ...func(s *sql.Selector)) *BooksReviewSelect {
	brq.modifiers = append(brq.modifiers, modifiers...)
	return brq.Select()
}

// BooksReviewGroupBy is the group-by builder for BooksReview entities.
type BooksReviewGroupBy struct {
	selector
	build *BooksReviewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (brgb *BooksReviewGroupBy) Aggregate(fns ...AggregateFunc) *BooksReviewGroupBy {
	brgb.fns = append(brgb.fns, fns...)
	return brgb
}

// Scan applies the selector query and scans the result into the given value.
func (brgb *BooksReviewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, brgb.build.ctx, ent.OpQueryGroupBy)
	if err := brgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BooksReviewQuery, *BooksReviewGroupBy](ctx, brgb.build, brgb, brgb.build.inters, v)
}

func (brgb *BooksReviewGroupBy) sqlScan(ctx context.Context, root *BooksReviewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(brgb.fns))
	for _, fn := range brgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*brgb.flds)+len(brgb.fns))
		for _, f := range *brgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*brgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := brgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BooksReviewSelect is the builder for selecting fields of BooksReview entities.
type BooksReviewSelect struct {
	*BooksReviewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (brs *BooksReviewSelect) Aggregate(fns ...AggregateFunc) *BooksReviewSelect {
	brs.fns = append(brs.fns, fns...)
	return brs
}

// Scan applies the selector query and scans the result into the given value.
func (brs *BooksReviewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, brs.ctx, ent.OpQuerySelect)
	if err := brs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BooksReviewQuery, *BooksReviewSelect](ctx, brs.BooksReviewQuery, brs, brs.inters, v)
}

func (brs *BooksReviewSelect) sqlScan(ctx context.Context, root *BooksReviewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(brs.fns))
	for _, fn := range brs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*brs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := brs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (brs *BooksReviewSelect) Modify(modifiers ...func(s *sql.Selector)) *BooksReviewSelect {
	brs.modifiers = append(brs.modifiers, modifiers...)
	return brs
}
