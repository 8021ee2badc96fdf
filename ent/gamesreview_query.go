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
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// GamesReviewQuery is the builder for querying GamesReview entities.
type GamesReviewQuery struct {
	config
	ctx        *QueryContext
	order      []gamesreview.OrderOption
	inters     []Interceptor
	predicates []predicate.GamesReview
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GamesReviewQuery builder.
func (grq *GamesReviewQuery) Where(ps ...predicate.GamesReview) *GamesReviewQuery {
	grq.predicates = append(grq.predicates, ps...)
	return grq
}

// Limit the number of records to be returned by this query.
func (grq *GamesReviewQuery) Limit(limit int) *GamesReviewQuery {
	grq.ctx.Limit = &limit
	return grq
}

// Offset to start from.
func (grq *GamesReviewQuery) Offset(offset int) *GamesReviewQuery {
	grq.ctx.Offset = &offset
	return grq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (grq *GamesReviewQuery) Unique(unique bool) *GamesReviewQuery {
	grq.ctx.Unique = &unique
	return grq
}

// Order specifies how the records should be ordered.
func (grq *GamesReviewQuery) Order(o ...gamesreview.OrderOption) *GamesReviewQuery {
	grq.order = append(grq.order, o...)
	return grq
}

// First returns the first GamesReview entity from the query.
// Returns a *NotFoundError when no GamesReview was found.
func (grq *GamesReviewQuery) First(ctx context.Context) (*GamesReview, error) {
	nodes, err := grq.Limit(1).All(setContextOp(ctx, grq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{gamesreview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (grq *GamesReviewQuery) FirstX(ctx context.Context) *GamesReview {
	node, err := grq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GamesReview ID from the query.
// Returns a *NotFoundError when no GamesReview ID was found.
func (grq *GamesReviewQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = grq.Limit(1).IDs(setContextOp(ctx, grq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{gamesreview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (grq *GamesReviewQuery) FirstIDX(ctx context.Context) uint {
	id, err := grq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GamesReview entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GamesReview entity is found.
// Returns a *NotFoundError when no GamesReview entities are found.
func (grq *GamesReviewQuery) Only(ctx context.Context) (*GamesReview, error) {
	nodes, err := grq.Limit(2).All(setContextOp(ctx, grq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{gamesreview.Label}
	default:
		return nil, &NotSingularError{gamesreview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (grq *GamesReviewQuery) OnlyX(ctx context.Context) *GamesReview {
	node, err := grq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GamesReview ID in the query.
// Returns a *NotSingularError when more than one GamesReview ID is found.
// Returns a *NotFoundError when no entities are found.
func (grq *GamesReviewQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = grq.Limit(2).IDs(setContextOp(ctx, grq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{gamesreview.Label}
	default:
		err = &NotSingularError{gamesreview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (grq *GamesReviewQuery) OnlyIDX(ctx context.Context) uint {
	id, err := grq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GamesReviews.
func (grq *GamesReviewQuery) All(ctx context.Context) ([]*GamesReview, error) {
	ctx = setContextOp(ctx, grq.ctx, ent.OpQueryAll)
	if err := grq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GamesReview, *GamesReviewQuery]()
	return withInterceptors[[]*GamesReview](ctx, grq, qr, grq.inters)
}

// AllX is like All, but panics if an error occurs.
func (grq *GamesReviewQuery) AllX(ctx context.Context) []*GamesReview {
	nodes, err := grq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GamesReview IDs.
func (grq *GamesReviewQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if grq.ctx.Unique == nil && grq.path != nil {
		grq.Unique(true)
	}
	ctx = setContextOp(ctx, grq.ctx, ent.OpQueryIDs)
	if err = grq.Select(gamesreview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (grq *GamesReviewQuery) IDsX(ctx context.Context) []uint {
	ids, err := grq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (grq *GamesReviewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, grq.ctx, ent.OpQueryCount)
	if err := grq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, grq, querierCount[*GamesReviewQuery](), grq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (grq *GamesReviewQuery) CountX(ctx context.Context) int {
	count, err := grq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (grq *GamesReviewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, grq.ctx, ent.OpQueryExist)
	switch _, err := grq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (grq *GamesReviewQuery) ExistX(ctx context.Context) bool {
	exist, err := grq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GamesReviewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (grq *GamesReviewQuery) Clone() *GamesReviewQuery {
	if grq == nil {
		return nil
	}
	return &GamesReviewQuery{
		config:     grq.config,
		ctx:        grq.ctx.Clone(),
		order:      append([]gamesreview.OrderOption{}, grq.order...),
		inters:     append([]Interceptor{}, grq.inters...),
		predicates: append([]predicate.GamesReview{}, grq.predicates...),
		// clone intermediate query.
		sql:       grq.sql.Clone(),
		path:      grq.path,
		modifiers: append([]func(*sql.Selector){}, grq.modifiers...),
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
//	client.GamesReview.Query().
//		GroupBy(gamesreview.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (grq *GamesReviewQuery) GroupBy(field string, fields ...string) *GamesReviewGroupBy {
	grq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GamesReviewGroupBy{build: grq}
	grbuild.flds = &grq.ctx.Fields
	grbuild.label = gamesreview.Label
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
//	client.GamesReview.Query().
//		Select(gamesreview.FieldCreatedAt).
//		Scan(ctx, &v)
func (grq *GamesReviewQuery) Select(fields ...string) *GamesReviewSelect {
	grq.ctx.Fields = append(grq.ctx.Fields, fields...)
	sbuild := &GamesReviewSelect{GamesReviewQuery: grq}
	sbuild.label = gamesreview.Label
	sbuild.flds, sbuild.scan = &grq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GamesReviewSelect configured with the given aggregations.
func (grq *GamesReviewQuery) Aggregate(fns ...AggregateFunc) *GamesReviewSelect {
	return grq.Select().Aggregate(fns...)
}

func (grq *GamesReviewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range grq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, grq); err != nil {
				return err
			}
		}
	}
	for _, f := range grq.ctx.Fields {
		if !gamesreview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if grq.path != nil {
		prev, err := grq.path(ctx)
		if err != nil {
			return err
		}
		grq.sql = prev
	}
	return nil
}

func (grq *GamesReviewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GamesReview, error) {
	var (
		nodes = []*GamesReview{}
		_spec = grq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GamesReview).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GamesReview{config: grq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(grq.modifiers) > 0 {
		_spec.Modifiers = grq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, grq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (grq *GamesReviewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := grq.querySpec()
	if len(grq.modifiers) > 0 {
		_spec.Modifiers = grq.modifiers
	}
	_spec.Node.Columns = grq.ctx.Fields
	if len(grq.ctx.Fields) > 0 {
		_spec.Unique = grq.ctx.Unique != nil && *grq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, grq.driver, _spec)
}

func (grq *GamesReviewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(gamesreview.Table, gamesreview.Columns, sqlgraph.NewFieldSpec(gamesreview.FieldID, field.TypeUint))
	_spec.From = grq.sql
	if unique := grq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if grq.path != nil {
		_spec.Unique = true
	}
	if fields := grq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamesreview.FieldID)
		for i := range fields {
			if fields[i] != gamesreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := grq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := grq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := grq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := grq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (grq *GamesReviewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(grq.driver.Dialect())
	t1 := builder.Table(gamesreview.Table)
	columns := grq.ctx.Fields
	if len(columns) == 0 {
		columns = gamesreview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if grq.sql != nil {
		selector = grq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if grq.ctx.Unique != nil && *grq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range grq.modifiers {
		m(selector)
	}
	for _, p := range grq.predicates {
		p(selector)
	}
	for _, p := range grq.order {
		p(selector)
	}
	if offset := grq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := grq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (grq *GamesReviewQuery) Modify(modifiers ...func(s *sql.Selector)) *GamesReviewSelect {
	grq.modifiers = append(grq.modifiers, modifiers...)
	return grq.Select()
}

// GamesReviewGroupBy is the group-by builder for GamesReview entities.
type GamesReviewGroupBy struct {
	selector
	build *GamesReviewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (grgb *GamesReviewGroupBy) Aggregate(fns ...AggregateFunc) *GamesReviewGroupBy {
	grgb.fns = append(grgb.fns, fns...)
	return grgb
}

// Scan applies the selector query and scans the result into the given value.
func (grgb *GamesReviewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, grgb.build.ctx, ent.OpQueryGroupBy)
	if err := grgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GamesReviewQuery, *GamesReviewGroupBy](ctx, grgb.build, grgb, grgb.build.inters, v)
}

func (grgb *GamesReviewGroupBy) sqlScan(ctx context.Context, root *GamesReviewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(grgb.fns))
	for _, fn := range grgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*grgb.flds)+len(grgb.fns))
		for _, f := range *grgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*grgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := grgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GamesReviewSelect is the builder for selecting fields of GamesReview entities.
type GamesReviewSelect struct {
	*GamesReviewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (grs *GamesReviewSelect) Aggregate(fns ...AggregateFunc) *GamesReviewSelect {
	grs.fns = append(grs.fns, fns...)
	return grs
}

// Scan applies the selector query and scans the result into the given value.
func (grs *GamesReviewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, grs.ctx, ent.OpQuerySelect)
	if err := grs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GamesReviewQuery, *GamesReviewSelect](ctx, grs.GamesReviewQuery, grs, grs.inters, v)
}

func (grs *GamesReviewSelect) sqlScan(ctx context.Context, root *GamesReviewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(grs.fns))
	for _, fn := range grs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*grs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := grs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (grs *GamesReviewSelect) Modify(modifiers ...func(s *sql.Selector)) *GamesReviewSelect {
	grs.modifiers = append(grs.modifiers, modifiers...)
	return grs
}
