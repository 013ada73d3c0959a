package reports

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
	"github.com/fridacisneros/panorama-sub001/pkg/store/duckdb"
)

const factTable = "avisos_arribo"

// Store executes grouped aggregate queries against the fact table.
// Query text is assembled from static catalog data only; everything that
// originates in the request is bound as a parameter.
type Store interface {
	// Aggregate runs the report's grouped aggregate under the filter.
	// limitOverride > 0 replaces the report's row cap.
	Aggregate(ctx context.Context, spec domain.ReportSpec, f domain.Filter, limitOverride int) ([]domain.Row, error)
	// TopValues ranks the entity dimension by the metric and returns the
	// top n non-null values, the scoping step of rank-then-expand.
	TopValues(ctx context.Context, dim string, metric domain.Metric, f domain.Filter, n int) ([]string, error)
	// CrossTab re-aggregates by entity and second dimension, restricted to
	// the entities found by TopValues.
	CrossTab(ctx context.Context, hm domain.HeatmapSpec, metrics []domain.Metric, f domain.Filter, entities []string) ([]domain.Row, error)
	// DistinctValues returns the distinct non-null values of one
	// filterable dimension column, sorted ascending.
	DistinctValues(ctx context.Context, column string) ([]any, error)
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func metricExpr(m domain.Metric) string {
	var expr string
	switch m.Agg {
	case domain.AggCount:
		expr = "COUNT(*)"
	case domain.AggCountDistinct:
		expr = fmt.Sprintf("COUNT(DISTINCT %s)", m.Column)
	default:
		expr = fmt.Sprintf("%s(%s)", strings.ToUpper(string(m.Agg)), m.Column)
	}
	if m.CoalesceZero {
		expr = fmt.Sprintf("COALESCE(%s, 0)", expr)
	}
	return fmt.Sprintf("%s AS %s", expr, m.Alias)
}

func (s *reportStore) Aggregate(ctx context.Context, spec domain.ReportSpec, f domain.Filter, limitOverride int) ([]domain.Row, error) {
	selects := make([]string, 0, len(spec.Dimensions)+len(spec.Metrics))
	selects = append(selects, spec.Dimensions...)
	for _, m := range spec.Metrics {
		selects = append(selects, metricExpr(m))
	}

	clauses, args := duckdb.FilterConditions(f, duckdb.MatchExact)
	// A null grouping value cannot form a meaningful group.
	for _, dim := range spec.Dimensions {
		clauses = append(clauses, dim+" IS NOT NULL")
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s GROUP BY %s",
		strings.Join(selects, ", "),
		factTable,
		duckdb.WhereClause(clauses...),
		strings.Join(spec.Dimensions, ", "),
	)
	if spec.OrderBy != "" {
		dir := "ASC"
		if spec.OrderDesc {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s NULLS LAST", spec.OrderBy, dir)
	}
	limit := spec.Limit
	if limitOverride > 0 {
		limit = limitOverride
	}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	return s.queryRows(ctx, query, args...)
}

func (s *reportStore) TopValues(ctx context.Context, dim string, metric domain.Metric, f domain.Filter, n int) ([]string, error) {
	clauses, args := duckdb.FilterConditions(f, duckdb.MatchExact)
	clauses = append(clauses, dim+" IS NOT NULL")

	query := fmt.Sprintf("SELECT %s, %s FROM %s %s GROUP BY %s ORDER BY %s DESC NULLS LAST LIMIT %d",
		dim, metricExpr(metric), factTable,
		duckdb.WhereClause(clauses...),
		dim, metric.Alias, n,
	)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("rank %s query failed: %w", dim, err)
	}
	defer closeRows(ctx, rows)

	var values []string
	for rows.Next() {
		var v string
		var rank any
		if err := rows.Scan(&v, &rank); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (s *reportStore) CrossTab(ctx context.Context, hm domain.HeatmapSpec, metrics []domain.Metric, f domain.Filter, entities []string) ([]domain.Row, error) {
	if len(entities) == 0 {
		return []domain.Row{}, nil
	}

	selects := []string{hm.EntityDim, hm.SecondDim}
	for _, m := range metrics {
		selects = append(selects, metricExpr(m))
	}

	clauses, args := duckdb.FilterConditions(f, duckdb.MatchExact)
	clauses = append(clauses,
		fmt.Sprintf("%s IN (%s)", hm.EntityDim, duckdb.Placeholders(len(entities))),
		hm.SecondDim+" IS NOT NULL",
	)
	for _, e := range entities {
		args = append(args, e)
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s GROUP BY %s, %s ORDER BY %s ASC, %s ASC NULLS LAST",
		strings.Join(selects, ", "), factTable,
		duckdb.WhereClause(clauses...),
		hm.EntityDim, hm.SecondDim, hm.EntityDim, hm.SecondDim,
	)

	return s.queryRows(ctx, query, args...)
}

func (s *reportStore) DistinctValues(ctx context.Context, column string) ([]any, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s ASC",
		column, factTable, column, column)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s query failed: %w", column, err)
	}
	defer closeRows(ctx, rows)

	values := make([]any, 0)
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, normalize(v))
	}
	return values, rows.Err()
}

// queryRows scans arbitrary select lists into ordered field→value maps so
// one executor can serve every report shape in the catalog.
func (s *reportStore) queryRows(ctx context.Context, query string, args ...any) ([]domain.Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate query failed: %w", err)
	}
	defer closeRows(ctx, rows)

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]domain.Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(domain.Row, len(cols))
		for i, col := range cols {
			row[col] = normalize(values[i])
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func closeRows(ctx context.Context, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close query rows")
	}
}
