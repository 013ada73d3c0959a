package reports

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
	reportstore "github.com/fridacisneros/panorama-sub001/pkg/store/duckdb/reports"
)

// Filterable dimensions exposed by the filtros report, column → output key.
var filterDimensions = []struct {
	Column string
	Key    string
}{
	{"anio_corte", "anios"},
	{"nombre_principal", "especies"},
	{"estado", "estados"},
	{"litoral", "litorales"},
	{"tipo_zona", "tiposZona"},
}

// Dispatcher resolves a report identifier to its catalog entry, runs the
// aggregate under the composed filter and applies the entry's
// post-processing. Stateless; safe for concurrent requests.
type Dispatcher interface {
	Report(ctx context.Context, tipo string, f domain.Filter, limitOverride int) ([]domain.Row, error)
	// FilterOptions returns the distinct non-null values of every
	// filterable dimension, for populating selection controls.
	FilterOptions(ctx context.Context) (domain.Row, error)
}

type dispatcher struct {
	store reportstore.Store
}

func NewDispatcher(store reportstore.Store) Dispatcher {
	return &dispatcher{store: store}
}

func (d *dispatcher) Report(ctx context.Context, tipo string, f domain.Filter, limitOverride int) ([]domain.Row, error) {
	spec, ok := Lookup(tipo)
	if !ok {
		return nil, domain.Validationf("unknown report type: %s", tipo)
	}

	// Region-scoped reports are meaningless without a scope; short-circuit
	// to an empty result without touching the store.
	if spec.RequiresRegion && !f.HasRegion() {
		return []domain.Row{}, nil
	}

	zerolog.Ctx(ctx).Debug().Str("tipo", tipo).Msg("dispatching report")

	if spec.Post == domain.PostHeatmapTop {
		// Matrix size is governed by the catalog's rank cutoff, so a
		// caller-supplied limit does not apply here.
		return d.heatmap(ctx, spec, f)
	}

	override := limitOverride
	if spec.Post == domain.PostPareto {
		// The grand total must cover the full result set, so the query
		// runs uncapped and truncation happens after the percentages.
		override = 0
	}

	rows, err := d.store.Aggregate(ctx, spec, f, override)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", tipo, err)
	}

	switch spec.Post {
	case domain.PostMonthOrder:
		rows = orderByMonth(rows, spec.Dimensions[0])
	case domain.PostPareto:
		rows = pareto(rows, spec.OrderBy)
	case domain.PostRatio:
		rows = ratio(rows, *spec.Ratio)
	}
	return rows, nil
}

// heatmap runs the two-phase rank-then-expand execution: the top few
// entities by volume first, then the cross-tabulation restricted to them.
// Expanding the full cardinality would produce an unusable matrix.
func (d *dispatcher) heatmap(ctx context.Context, spec domain.ReportSpec, f domain.Filter) ([]domain.Row, error) {
	hm := spec.Heatmap
	entities, err := d.store.TopValues(ctx, hm.EntityDim, hm.RankMetric, f, hm.TopN)
	if err != nil {
		return nil, fmt.Errorf("report %s rank phase: %w", spec.ID, err)
	}
	if len(entities) == 0 {
		return []domain.Row{}, nil
	}

	rows, err := d.store.CrossTab(ctx, *hm, spec.Metrics, f, entities)
	if err != nil {
		return nil, fmt.Errorf("report %s expand phase: %w", spec.ID, err)
	}

	if hm.SecondDim == "mes_corte" {
		rows = orderByMonth(rows, hm.SecondDim)
	}
	return rows, nil
}

func (d *dispatcher) FilterOptions(ctx context.Context) (domain.Row, error) {
	options := make(domain.Row, len(filterDimensions))
	for _, dim := range filterDimensions {
		values, err := d.store.DistinctValues(ctx, dim.Column)
		if err != nil {
			// Not independently recoverable; the whole request fails.
			return nil, fmt.Errorf("filter options for %s: %w", dim.Column, err)
		}
		options[dim.Key] = values
	}
	return options, nil
}
