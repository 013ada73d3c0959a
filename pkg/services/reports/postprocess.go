package reports

import (
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
)

// The displayed slice of a Pareto report. The grand total is still computed
// over the full result set so the curve stays correct for long tails.
const paretoDisplayRows = 30

// mes_corte stores a free-text Spanish month name, not a date, so the
// store's alphabetic ordering is wrong for calendar display.
var monthOrdinals = map[string]int{
	"enero":      1,
	"febrero":    2,
	"marzo":      3,
	"abril":      4,
	"mayo":       5,
	"junio":      6,
	"julio":      7,
	"agosto":     8,
	"septiembre": 9,
	"octubre":    10,
	"noviembre":  11,
	"diciembre":  12,
}

// MonthOrdinal resolves a month name case-insensitively; unrecognized or
// missing names sort first as 0.
func MonthOrdinal(name any) int {
	s, ok := name.(string)
	if !ok {
		return 0
	}
	return monthOrdinals[strings.ToLower(strings.TrimSpace(s))]
}

// orderByMonth attaches the canonical ordinal under "mes_orden" and
// stable-sorts rows into calendar order.
func orderByMonth(rows []domain.Row, monthField string) []domain.Row {
	for _, row := range rows {
		row["mes_orden"] = MonthOrdinal(row[monthField])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i]["mes_orden"].(int) < rows[j]["mes_orden"].(int)
	})
	return rows
}

// pareto expects rows already sorted descending by metricField. It attaches
// a 1-based rank, each row's share of the grand total and the running
// cumulative share, then truncates to the display slice.
func pareto(rows []domain.Row, metricField string) []domain.Row {
	var total float64
	for _, row := range rows {
		if v, ok := asFloat(row[metricField]); ok {
			total += v
		}
	}

	var cumulative float64
	for i, row := range rows {
		row["lugar"] = i + 1
		if total <= 0 {
			row["porcentaje"] = 0.0
			row["porcentaje_acumulado"] = 0.0
			continue
		}
		v, _ := asFloat(row[metricField])
		pct := v / total * 100
		cumulative += pct
		row["porcentaje"] = round2(pct)
		row["porcentaje_acumulado"] = round2(cumulative)
	}

	if len(rows) > paretoDisplayRows {
		rows = rows[:paretoDisplayRows]
	}
	return rows
}

// ratio attaches spec.Alias = numerator/denominator per row. A zero or
// missing denominator yields a null ratio, never an error or infinity.
func ratio(rows []domain.Row, spec domain.RatioSpec) []domain.Row {
	for _, row := range rows {
		num, okN := asFloat(row[spec.Numerator])
		den, okD := asFloat(row[spec.Denominator])
		if !okN || !okD || den == 0 {
			row[spec.Alias] = nil
			continue
		}
		row[spec.Alias] = num / den
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int:
		return float64(n), true
	case uint64:
		return float64(n), true
	case *big.Int:
		// DuckDB sums over INTEGER columns come back as HUGEINT.
		if n == nil {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, true
	default:
		return 0, false
	}
}
