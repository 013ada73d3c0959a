package domain

// Row is one output row of a report: output field name to scalar or
// aggregate value. Produced per request, never persisted.
type Row map[string]any

// Agg enumerates the aggregate functions a report metric may use.
type Agg string

const (
	AggSum           Agg = "sum"
	AggAvg           Agg = "avg"
	AggMin           Agg = "min"
	AggMax           Agg = "max"
	AggCount         Agg = "count"
	AggCountDistinct Agg = "count_distinct"
)

// Metric is one aggregate column of a report. Sums that feed a running
// total are coalesced to zero; averages are left alone so a null average
// can still signal "no qualifying data".
type Metric struct {
	Agg          Agg
	Column       string // fact-table column; empty for count(*)
	Alias        string
	CoalesceZero bool
}

// PostKind tags the post-processing a report needs after the aggregate
// rows come back. The empty tag means none.
type PostKind string

const (
	PostNone       PostKind = ""
	PostMonthOrder PostKind = "month-order"
	PostPareto     PostKind = "pareto"
	PostRatio      PostKind = "ratio"
	PostHeatmapTop PostKind = "heatmap-top-n"
)

// RatioSpec describes a derived field computed row-by-row after the
// aggregate query: Alias = Numerator / Denominator, null when the
// denominator is zero or null.
type RatioSpec struct {
	Numerator   string
	Denominator string
	Alias       string
}

// HeatmapSpec describes the two-phase "rank then expand" execution: the
// top TopN entities by RankMetric are computed first, then the aggregate
// is re-run grouped by entity and SecondDim restricted to those entities.
type HeatmapSpec struct {
	EntityDim  string
	SecondDim  string
	RankMetric Metric
	TopN       int
}

// ReportSpec is one catalog entry. Specs are defined at startup and
// read-only; dispatch never mutates them.
type ReportSpec struct {
	ID         string
	Group      string // documentation only, never affects dispatch
	Dimensions []string
	Metrics    []Metric
	OrderBy    string // output alias or dimension
	OrderDesc  bool
	Limit      int // 0 = no cap
	// RequiresRegion short-circuits the report to an empty result unless
	// an estado or litoral filter is present.
	RequiresRegion bool
	Post           PostKind
	Ratio          *RatioSpec
	Heatmap        *HeatmapSpec
}
