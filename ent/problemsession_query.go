// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathtutor/ent/predicate"
	"github.com/abhisek/mathtutor/ent/problemsession"
	"github.com/abhisek/mathtutor/ent/submission"
)

// ProblemSessionQuery is the builder for querying ProblemSession entities.
type ProblemSessionQuery struct {
	config
	ctx             *QueryContext
	order           []problemsession.OrderOption
	inters          []Interceptor
	predicates      []predicate.ProblemSession
	withSubmissions *SubmissionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProblemSessionQuery builder.
func (_q *ProblemSessionQuery) Where(ps ...predicate.ProblemSession) *ProblemSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ProblemSessionQuery) Limit(limit int) *ProblemSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ProblemSessionQuery) Offset(offset int) *ProblemSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ProblemSessionQuery) Unique(unique bool) *ProblemSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ProblemSessionQuery) Order(o ...problemsession.OrderOption) *ProblemSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySubmissions chains the current query on the "submissions" edge.
func (_q *ProblemSessionQuery) QuerySubmissions() *SubmissionQuery {
	query := (&SubmissionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(problemsession.Table, problemsession.FieldID, selector),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, problemsession.SubmissionsTable, problemsession.SubmissionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ProblemSession entity from the query.
// Returns a *NotFoundError when no ProblemSession was found.
func (_q *ProblemSessionQuery) First(ctx context.Context) (*ProblemSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{problemsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ProblemSessionQuery) FirstX(ctx context.Context) *ProblemSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ProblemSession ID from the query.
// Returns a *NotFoundError when no ProblemSession ID was found.
func (_q *ProblemSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{problemsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ProblemSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ProblemSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ProblemSession entity is found.
// Returns a *NotFoundError when no ProblemSession entities are found.
func (_q *ProblemSessionQuery) Only(ctx context.Context) (*ProblemSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{problemsession.Label}
	default:
		return nil, &NotSingularError{problemsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ProblemSessionQuery) OnlyX(ctx context.Context) *ProblemSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ProblemSession ID in the query.
// Returns a *NotSingularError when more than one ProblemSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ProblemSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{problemsession.Label}
	default:
		err = &NotSingularError{problemsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ProblemSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ProblemSessions.
func (_q *ProblemSessionQuery) All(ctx context.Context) ([]*ProblemSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ProblemSession, *ProblemSessionQuery]()
	return withInterceptors[[]*ProblemSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ProblemSessionQuery) AllX(ctx context.Context) []*ProblemSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ProblemSession IDs.
func (_q *ProblemSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(problemsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ProblemSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ProblemSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ProblemSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ProblemSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ProblemSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ProblemSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProblemSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ProblemSessionQuery) Clone() *ProblemSessionQuery {
	if _q == nil {
		return nil
	}
	return &ProblemSessionQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]problemsession.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.ProblemSession{}, _q.predicates...),
		withSubmissions: _q.withSubmissions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSubmissions tells the query-builder to eager-load the nodes that are connected to
// the "submissions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ProblemSessionQuery) WithSubmissions(opts ...func(*SubmissionQuery)) *ProblemSessionQuery {
	query := (&SubmissionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubmissions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProblemText string `json:"problem_text,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ProblemSession.Query().
//		GroupBy(problemsession.FieldProblemText).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ProblemSessionQuery) GroupBy(field string, fields ...string) *ProblemSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProblemSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = problemsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProblemText string `json:"problem_text,omitempty"`
//	}
//
//	client.ProblemSession.Query().
//		Select(problemsession.FieldProblemText).
//		Scan(ctx, &v)
func (_q *ProblemSessionQuery) Select(fields ...string) *ProblemSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ProblemSessionSelect{ProblemSessionQuery: _q}
	sbuild.label = problemsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProblemSessionSelect configured with the given aggregations.
func (_q *ProblemSessionQuery) Aggregate(fns ...AggregateFunc) *ProblemSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ProblemSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !problemsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ProblemSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ProblemSession, error) {
	var (
		nodes       = []*ProblemSession{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withSubmissions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ProblemSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ProblemSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSubmissions; query != nil {
		if err := _q.loadSubmissions(ctx, query, nodes,
			func(n *ProblemSession) { n.Edges.Submissions = []*Submission{} },
			func(n *ProblemSession, e *Submission) { n.Edges.Submissions = append(n.Edges.Submissions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ProblemSessionQuery) loadSubmissions(ctx context.Context, query *SubmissionQuery, nodes []*ProblemSession, init func(*ProblemSession), assign func(*ProblemSession, *Submission)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ProblemSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(submission.FieldSessionID)
	}
	query.Where(predicate.Submission(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(problemsession.SubmissionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ProblemSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ProblemSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(problemsession.Table, problemsession.Columns, sqlgraph.NewFieldSpec(problemsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, problemsession.FieldID)
		for i := range fields {
			if fields[i] != problemsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ProblemSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(problemsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = problemsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ProblemSessionGroupBy is the group-by builder for ProblemSession entities.
type ProblemSessionGroupBy struct {
	selector
	build *ProblemSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ProblemSessionGroupBy) Aggregate(fns ...AggregateFunc) *ProblemSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ProblemSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProblemSessionQuery, *ProblemSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ProblemSessionGroupBy) sqlScan(ctx context.Context, root *ProblemSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ProblemSessionSelect is the builder for selecting fields of ProblemSession entities.
type ProblemSessionSelect struct {
	*ProblemSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ProblemSessionSelect) Aggregate(fns ...AggregateFunc) *ProblemSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ProblemSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProblemSessionQuery, *ProblemSessionSelect](ctx, _s.ProblemSessionQuery, _s, _s.inters, v)
}

func (_s *ProblemSessionSelect) sqlScan(ctx context.Context, root *ProblemSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
