package duckdb

import (
	"strings"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
)

// MatchMode selects how string dimensions are compared. Reports use exact
// matching; the legacy listing endpoint matches on substrings.
type MatchMode int

const (
	MatchExact MatchMode = iota
	MatchContains
)

// FilterConditions turns a domain.Filter into WHERE clause fragments and
// their bound arguments. Filter values are always bound as parameters,
// never spliced into the query text. An empty filter yields no clauses.
//
// The inclusive year range wins over the single-year equality whenever a
// range bound is present.
func FilterConditions(f domain.Filter, mode MatchMode) ([]string, []any) {
	clauses := []string{}
	args := []any{}

	switch {
	case f.AnioInicio != nil && f.AnioFin != nil:
		clauses = append(clauses, "anio_corte >= ?", "anio_corte <= ?")
		args = append(args, *f.AnioInicio, *f.AnioFin)
	case f.AnioInicio != nil:
		clauses = append(clauses, "anio_corte >= ?")
		args = append(args, *f.AnioInicio)
	case f.AnioFin != nil:
		clauses = append(clauses, "anio_corte <= ?")
		args = append(args, *f.AnioFin)
	case f.Anio != nil:
		clauses = append(clauses, "anio_corte = ?")
		args = append(args, *f.Anio)
	}

	appendMatch := func(column, value string) {
		if value == "" {
			return
		}
		if mode == MatchContains {
			clauses = append(clauses, column+" ILIKE '%' || ? || '%'")
		} else {
			clauses = append(clauses, column+" = ?")
		}
		args = append(args, value)
	}

	appendMatch("nombre_principal", f.Especie)
	appendMatch("estado", f.Estado)
	appendMatch("litoral", f.Litoral)
	appendMatch("tipo_zona", f.TipoZona)

	return clauses, args
}

// WhereClause joins filter conditions with extra per-query predicates into
// a full WHERE clause, or returns "" when there is nothing to constrain.
func WhereClause(clauses ...string) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(parts, " AND ")
}

// Placeholders returns n comma-separated "?" markers for an IN clause.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
