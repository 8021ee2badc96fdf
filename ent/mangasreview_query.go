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
	"github.com/anzhiyu-c/mediawall-app/ent/mangasreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// MangasReviewQuery is the builder for querying MangasReview entities.
type MangasReviewQuery struct {
	config
	ctx        *QueryContext
	order      []mangasreview.OrderOption
	inters     []Interceptor
	predicates []predicate.MangasReview
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MangasReviewQuery builder.
func (mrq *MangasReviewQuery) Where(ps ...predicate.MangasReview) *MangasReviewQuery {
	mrq.predicates = append(mrq.predicates, ps...)
	return mrq
}

// Limit the number of records to be returned by this query.
func (mrq *MangasReviewQuery) Limit(limit int) *MangasReviewQuery {
	mrq.ctx.Limit = &limit
	return mrq
}

// Offset to start from.
func (mrq *MangasReviewQuery) Offset(offset int) *MangasReviewQuery {
	mrq.ctx.Offset = &offset
	return mrq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (mrq *MangasReviewQuery) Unique(unique bool) *MangasReviewQuery {
	mrq.ctx.Unique = &unique
	return mrq
}

// Order specifies how the records should be ordered.
func (mrq *MangasReviewQuery) Order(o ...mangasreview.OrderOption) *MangasReviewQuery {
	mrq.order = append(mrq.order, o...)
	return mrq
}

// First returns the first MangasReview entity from the query.
// Returns a *NotFoundError when no MangasReview was found.
func (mrq *MangasReviewQuery) First(ctx context.Context) (*MangasReview, error) {
	nodes, err := mrq.Limit(1).All(setContextOp(ctx, mrq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{mangasreview.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (mrq *MangasReviewQuery) FirstX(ctx context.Context) *MangasReview {
	node, err := mrq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MangasReview ID from the query.
// Returns a *NotFoundError when no MangasReview ID was found.
func (mrq *MangasReviewQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = mrq.Limit(1).IDs(setContextOp(ctx, mrq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{mangasreview.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (mrq *MangasReviewQuery) FirstIDX(ctx context.Context) uint {
	id, err := mrq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MangasReview entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MangasReview entity is found.
// Returns a *NotFoundError when no MangasReview entities are found.
func (mrq *MangasReviewQuery) Only(ctx context.Context) (*MangasReview, error) {
	nodes, err := mrq.Limit(2).All(setContextOp(ctx, mrq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{mangasreview.Label}
	default:
		return nil, &NotSingularError{mangasreview.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (mrq *MangasReviewQuery) OnlyX(ctx context.Context) *MangasReview {
	node, err := mrq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MangasReview ID in the query.
// Returns a *NotSingularError when more than one MangasReview ID is found.
// Returns a *NotFoundError when no entities are found.
func (mrq *MangasReviewQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = mrq.Limit(2).IDs(setContextOp(ctx, mrq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{mangasreview.Label}
	default:
		err = &NotSingularError{mangasreview.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (mrq *MangasReviewQuery) OnlyIDX(ctx context.Context) uint {
	id, err := mrq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MangasReviews.
func (mrq *MangasReviewQuery) All(ctx context.Context) ([]*MangasReview, error) {
	ctx = setContextOp(ctx, mrq.ctx, ent.OpQueryAll)
	if err := mrq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MangasReview, *MangasReviewQuery]()
	return withInterceptors[[]*MangasReview](ctx, mrq, qr, mrq.inters)
}

// AllX is like All, but panics if an error occurs.
func (mrq *MangasReviewQuery) AllX(ctx context.Context) []*MangasReview {
	nodes, err := mrq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MangasReview IDs.
func (mrq *MangasReviewQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if mrq.ctx.Unique == nil && mrq.path != nil {
		mrq.Unique(true)
	}
	ctx = setContextOp(ctx, mrq.ctx, ent.OpQueryIDs)
	if err = mrq.Select(mangasreview.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (mrq *MangasReviewQuery) IDsX(ctx context.Context) []uint {
	ids, err := mrq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (mrq *MangasReviewQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, mrq.ctx, ent.OpQueryCount)
	if err := mrq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, mrq, querierCount[*MangasReviewQuery](), mrq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (mrq *MangasReviewQuery) CountX(ctx context.Context) int {
	count, err := mrq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (mrq *MangasReviewQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, mrq.ctx, ent.OpQueryExist)
	switch _, err := mrq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (mrq *MangasReviewQuery) ExistX(ctx context.Context) bool {
	exist, err := mrq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MangasReviewQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (mrq *MangasReviewQuery) Clone() *MangasReviewQuery {
	if mrq == nil {
		return nil
	}
	return &MangasReviewQuery{
		config:     mrq.config,
		ctx:        mrq.ctx.Clone(),
		order:      append([]mangasreview.OrderOption{}, mrq.order...),
		inters:     append([]Interceptor{}, mrq.inters...),
		predicates: append([]predicate.MangasReview{}, mrq.predicates...),
		// clone intermediate query.
		sql:       mrq.sql.Clone(),
		path:      mrq.path,
		modifiers: append([]func(*sql.Selector){}, mrq.modifiers...),
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
//	client.MangasReview.Query().
//		GroupBy(mangasreview.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (mrq *MangasReviewQuery) GroupBy(field string, fields ...string) *MangasReviewGroupBy {
	mrq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MangasReviewGroupBy{build: mrq}
	grbuild.flds = &mrq.ctx.Fields
	grbuild.label = mangasreview.Label
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
//	client.MangasReview.Query().
//		Select(mangasreview.FieldCreatedAt).
//		Scan(ctx, &v)
func (mrq *MangasReviewQuery) Select(fields ...string) *MangasReviewSelect {
	mrq.ctx.Fields = append(mrq.ctx.Fields, fields...)
	sbuild := &MangasReviewSelect{MangasReviewQuery: mrq}
	sbuild.label = mangasreview.Label
	sbuild.flds, sbuild.scan = &mrq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MangasReviewSelect configured with the given aggregations.
func (mrq *MangasReviewQuery) Aggregate(fns ...AggregateFunc) *MangasReviewSelect {
	return mrq.Select().Aggregate(fns...)
}

func (mrq *MangasReviewQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range mrq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, mrq); err != nil {
				return err
			}
		}
	}
	for _, f := range mrq.ctx.Fields {
		if !mangasreview.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if mrq.path != nil {
		prev, err := mrq.path(ctx)
		if err != nil {
			return err
		}
		mrq.sql = prev
	}
	return nil
}

func (mrq *MangasReviewQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MangasReview, error) {
	var (
		nodes = []*MangasReview{}
		_spec = mrq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MangasReview).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MangasReview{config: mrq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(mrq.modifiers) > 0 {
		_spec.Modifiers = mrq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, mrq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (mrq *MangasReviewQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := mrq.querySpec()
	if len(mrq.modifiers) > 0 {
		_spec.Modifiers = mrq.modifiers
	}
	_spec.Node.Columns = mrq.ctx.Fields
	if len(mrq.ctx.Fields) > 0 {
		_spec.Unique = mrq.ctx.Unique != nil && *mrq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, mrq.driver, _spec)
}

func (mrq *MangasReviewQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(mangasreview.Table, mangasreview.Columns, sqlgraph.NewFieldSpec(mangasreview.FieldID, field.TypeUint))
	_spec.From = mrq.sql
	if unique := mrq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if mrq.path != nil {
		_spec.Unique = true
	}
	if fields := mrq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mangasreview.FieldID)
		for i := range fields {
			if fields[i] != mangasreview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := mrq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := mrq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := mrq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := mrq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (mrq *MangasReviewQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(mrq.driver.Dialect())
	t1 := builder.Table(mangasreview.Table)
	columns := mrq.ctx.Fields
	if len(columns) == 0 {
		columns = mangasreview.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if mrq.sql != nil {
		selector = mrq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if mrq.ctx.Unique != nil && *mrq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range mrq.modifiers {
		m(selector)
	}
	for _, p := range mrq.predicates {
		p(selector)
	}
	for _, p := range mrq.order {
		p(selector)
	}
	if offset := mrq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := mrq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (mrq *MangasReviewQuery) Modify(modifiers ...func(s *sql.Selector)) *MangasReviewSelect {
	mrq.modifiers = append(mrq.modifiers, modifiers...)
	return mrq.Select()
}

// MangasReviewGroupBy is the group-by builder for MangasReview entities.
type MangasReviewGroupBy struct {
	selector
	build *MangasReviewQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (mrgb *MangasReviewGroupBy) Aggregate(fns ...AggregateFunc) *MangasReviewGroupBy {
	mrgb.fns = append(mrgb.fns, fns...)
	return mrgb
}

// Scan applies the selector query and scans the result into the given value.
func (mrgb *MangasReviewGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mrgb.build.ctx, ent.OpQueryGroupBy)
	if err := mrgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MangasReviewQuery, *MangasReviewGroupBy](ctx, mrgb.build, mrgb, mrgb.build.inters, v)
}

func (mrgb *MangasReviewGroupBy) sqlScan(ctx context.Context, root *MangasReviewQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(mrgb.fns))
	for _, fn := range mrgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*mrgb.flds)+len(mrgb.fns))
		for _, f := range *mrgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*mrgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mrgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MangasReviewSelect is the builder for selecting fields of MangasReview entities.
type MangasReviewSelect struct {
	*MangasReviewQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (mrs *MangasReviewSelect) Aggregate(fns ...AggregateFunc) *MangasReviewSelect {
	mrs.fns = append(mrs.fns, fns...)
	return mrs
}

// Scan applies the selector query and scans the result into the given value.
func (mrs *MangasReviewSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mrs.ctx, ent.OpQuerySelect)
	if err := mrs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MangasReviewQuery, *MangasReviewSelect](ctx, mrs.MangasReviewQuery, mrs, mrs.inters, v)
}

func (mrs *MangasReviewSelect) sqlScan(ctx context.Context, root *MangasReviewQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(mrs.fns))
	for _, fn := range mrs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*mrs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mrs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (mrs *MangasReviewSelect) Modify(modifiers ...func(s *sql.Selector)) *MangasReviewSelect {
	mrs.modifiers = append(mrs.modifiers, modifiers...)
	return mrs
}
