package reports

import (
	"sort"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
)

// Catalog groups: cosmetic labels used by the catalog endpoint and docs.
// Dispatch only ever cares about the report id.
const (
	groupProduction  = "produccion"
	groupEconomic    = "economia"
	groupOperational = "operacion"
	groupSpecies     = "especies"
	groupGeographic  = "geografia"
)

func sum(column, alias string) domain.Metric {
	return domain.Metric{Agg: domain.AggSum, Column: column, Alias: alias, CoalesceZero: true}
}

// avg deliberately skips the zero coalesce: a null average means "no
// qualifying data", which is not the same as zero.
func avg(column, alias string) domain.Metric {
	return domain.Metric{Agg: domain.AggAvg, Column: column, Alias: alias}
}

func count(alias string) domain.Metric {
	return domain.Metric{Agg: domain.AggCount, Alias: alias}
}

func countDistinct(column, alias string) domain.Metric {
	return domain.Metric{Agg: domain.AggCountDistinct, Column: column, Alias: alias}
}

var catalog = buildCatalog()

func buildCatalog() map[string]domain.ReportSpec {
	specs := []domain.ReportSpec{
		// Production
		{
			ID: "captura-anual", Group: groupProduction,
			Dimensions: []string{"anio_corte"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("peso_vivo", "peso_vivo"), count("avisos")},
			OrderBy:    "anio_corte",
		},
		{
			ID: "captura-mensual", Group: groupProduction,
			Dimensions: []string{"mes_corte"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("peso_vivo", "peso_vivo")},
			OrderBy:    "mes_corte",
			Post:       domain.PostMonthOrder,
		},
		{
			ID: "captura-por-estado", Group: groupProduction,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), count("avisos")},
			OrderBy:    "peso_desembarcado", OrderDesc: true,
		},
		{
			ID: "captura-por-litoral", Group: groupProduction,
			Dimensions: []string{"litoral"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("peso_vivo", "peso_vivo")},
			OrderBy:    "peso_desembarcado", OrderDesc: true,
		},
		{
			ID: "captura-por-zona", Group: groupProduction,
			Dimensions: []string{"tipo_zona"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), count("avisos")},
			OrderBy:    "peso_desembarcado", OrderDesc: true,
		},
		{
			ID: "captura-por-sitio", Group: groupProduction,
			Dimensions: []string{"sitio_desembarque"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "peso_desembarcado", OrderDesc: true, Limit: 30,
		},
		{
			ID: "top-especies", Group: groupProduction,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("valor", "valor")},
			OrderBy:    "peso_desembarcado", OrderDesc: true, Limit: 10,
		},
		{
			ID: "top-estados", Group: groupProduction,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("valor", "valor")},
			OrderBy:    "peso_desembarcado", OrderDesc: true, Limit: 10,
		},
		{
			ID: "pareto-especies", Group: groupProduction,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "peso_desembarcado", OrderDesc: true,
			Post:       domain.PostPareto,
		},
		{
			ID: "pareto-estados", Group: groupProduction,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "peso_desembarcado", OrderDesc: true,
			Post:       domain.PostPareto,
		},

		// Economic
		{
			ID: "valor-anual", Group: groupEconomic,
			Dimensions: []string{"anio_corte"},
			Metrics:    []domain.Metric{sum("valor", "valor"), count("avisos")},
			OrderBy:    "anio_corte",
		},
		{
			ID: "valor-mensual", Group: groupEconomic,
			Dimensions: []string{"mes_corte"},
			Metrics:    []domain.Metric{sum("valor", "valor")},
			OrderBy:    "mes_corte",
			Post:       domain.PostMonthOrder,
		},
		{
			ID: "valor-por-especie", Group: groupEconomic,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{sum("valor", "valor")},
			OrderBy:    "valor", OrderDesc: true, Limit: 30,
		},
		{
			ID: "valor-por-estado", Group: groupEconomic,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{sum("valor", "valor")},
			OrderBy:    "valor", OrderDesc: true,
		},
		{
			ID: "valor-por-litoral", Group: groupEconomic,
			Dimensions: []string{"litoral"},
			Metrics:    []domain.Metric{sum("valor", "valor"), sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "valor", OrderDesc: true,
		},
		{
			ID: "valor-region", Group: groupEconomic,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{sum("valor", "valor")},
			OrderBy:    "valor", OrderDesc: true, Limit: 10,
			RequiresRegion: true,
		},
		{
			ID: "precio-promedio-especie", Group: groupEconomic,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{avg("precio", "precio_promedio")},
			OrderBy:    "precio_promedio", OrderDesc: true, Limit: 30,
		},
		{
			ID: "precio-promedio-anual", Group: groupEconomic,
			Dimensions: []string{"anio_corte"},
			Metrics:    []domain.Metric{avg("precio", "precio_promedio")},
			OrderBy:    "anio_corte",
		},
		{
			ID: "precio-implicito-especie", Group: groupEconomic,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{sum("valor", "valor"), sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "valor", OrderDesc: true, Limit: 30,
			Post:       domain.PostRatio,
			Ratio:      &domain.RatioSpec{Numerator: "valor", Denominator: "peso_desembarcado", Alias: "precio_implicito"},
		},
		{
			ID: "precio-implicito-estado", Group: groupEconomic,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{sum("valor", "valor"), sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "valor", OrderDesc: true,
			Post:       domain.PostRatio,
			Ratio:      &domain.RatioSpec{Numerator: "valor", Denominator: "peso_desembarcado", Alias: "precio_implicito"},
		},

		// Operational
		{
			ID: "embarcaciones-por-estado", Group: groupOperational,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{sum("embarcaciones", "embarcaciones")},
			OrderBy:    "embarcaciones", OrderDesc: true,
		},
		{
			ID: "embarcaciones-anual", Group: groupOperational,
			Dimensions: []string{"anio_corte"},
			Metrics:    []domain.Metric{sum("embarcaciones", "embarcaciones")},
			OrderBy:    "anio_corte",
		},
		{
			ID: "esfuerzo-anual", Group: groupOperational,
			Dimensions: []string{"anio_corte"},
			Metrics:    []domain.Metric{sum("dias_efectivos", "dias_efectivos")},
			OrderBy:    "anio_corte",
		},
		{
			ID: "esfuerzo-mensual", Group: groupOperational,
			Dimensions: []string{"mes_corte"},
			Metrics:    []domain.Metric{sum("dias_efectivos", "dias_efectivos")},
			OrderBy:    "mes_corte",
			Post:       domain.PostMonthOrder,
		},
		{
			ID: "duracion-promedio-especie", Group: groupOperational,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{avg("duracion", "duracion_promedio")},
			OrderBy:    "duracion_promedio", OrderDesc: true, Limit: 30,
		},
		{
			ID: "captura-por-dia-efectivo", Group: groupOperational,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("dias_efectivos", "dias_efectivos")},
			OrderBy:    "peso_desembarcado", OrderDesc: true,
			Post:       domain.PostRatio,
			Ratio:      &domain.RatioSpec{Numerator: "peso_desembarcado", Denominator: "dias_efectivos", Alias: "captura_por_dia"},
		},
		{
			ID: "rendimiento-embarcacion", Group: groupOperational,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("embarcaciones", "embarcaciones")},
			OrderBy:    "peso_desembarcado", OrderDesc: true,
			Post:       domain.PostRatio,
			Ratio:      &domain.RatioSpec{Numerator: "peso_desembarcado", Denominator: "embarcaciones", Alias: "captura_por_embarcacion"},
		},
		{
			ID: "unidades-economicas", Group: groupOperational,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{countDistinct("unidad_economica", "unidades")},
			OrderBy:    "unidades", OrderDesc: true,
		},
		{
			ID: "sitios-desembarque", Group: groupOperational,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{countDistinct("sitio_desembarque", "sitios")},
			OrderBy:    "sitios", OrderDesc: true,
		},
		{
			ID: "oficinas-activas", Group: groupOperational,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{countDistinct("oficina", "oficinas")},
			OrderBy:    "oficinas", OrderDesc: true,
		},

		// Species
		{
			ID: "especies-region", Group: groupSpecies,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("valor", "valor")},
			OrderBy:    "peso_desembarcado", OrderDesc: true, Limit: 10,
			RequiresRegion: true,
		},
		{
			ID: "diversidad-especies", Group: groupSpecies,
			Dimensions: []string{"estado"},
			Metrics:    []domain.Metric{countDistinct("nombre_principal", "especies")},
			OrderBy:    "especies", OrderDesc: true,
		},
		{
			ID: "detalle-especie", Group: groupSpecies,
			Dimensions: []string{"nombre_principal", "nombre_especie"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "peso_desembarcado", OrderDesc: true, Limit: 50,
		},
		{
			ID: "estacionalidad-especies", Group: groupSpecies,
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado")},
			Post:       domain.PostHeatmapTop,
			Heatmap: &domain.HeatmapSpec{
				EntityDim:  "nombre_principal",
				SecondDim:  "mes_corte",
				RankMetric: sum("peso_desembarcado", "peso_desembarcado"),
				TopN:       6,
			},
		},
		{
			ID: "rendimiento-vivo", Group: groupSpecies,
			Dimensions: []string{"nombre_principal"},
			Metrics:    []domain.Metric{sum("peso_vivo", "peso_vivo"), sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "peso_vivo", OrderDesc: true, Limit: 30,
			Post:       domain.PostRatio,
			Ratio:      &domain.RatioSpec{Numerator: "peso_vivo", Denominator: "peso_desembarcado", Alias: "factor_conversion"},
		},
		{
			ID: "avisos-por-tipo", Group: groupSpecies,
			Dimensions: []string{"tipo_aviso"},
			Metrics:    []domain.Metric{count("avisos")},
			OrderBy:    "avisos", OrderDesc: true,
		},
		{
			ID: "avisos-por-origen", Group: groupSpecies,
			Dimensions: []string{"origen"},
			Metrics:    []domain.Metric{count("avisos")},
			OrderBy:    "avisos", OrderDesc: true,
		},

		// Geographic
		{
			ID: "comparativa-litoral", Group: groupGeographic,
			Dimensions: []string{"litoral"},
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado"), sum("valor", "valor"), count("avisos")},
			OrderBy:    "peso_desembarcado", OrderDesc: true,
		},
		{
			ID: "migracion-litoral", Group: groupGeographic,
			Metrics:    []domain.Metric{sum("peso_desembarcado", "peso_desembarcado")},
			Post:       domain.PostHeatmapTop,
			Heatmap: &domain.HeatmapSpec{
				EntityDim:  "nombre_principal",
				SecondDim:  "litoral",
				RankMetric: sum("peso_desembarcado", "peso_desembarcado"),
				TopN:       8,
			},
		},
		{
			ID: "actividad-por-oficina", Group: groupGeographic,
			Dimensions: []string{"oficina"},
			Metrics:    []domain.Metric{count("avisos"), sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "avisos", OrderDesc: true, Limit: 30,
		},
		{
			ID: "zonas-por-litoral", Group: groupGeographic,
			Dimensions: []string{"litoral", "tipo_zona"},
			Metrics:    []domain.Metric{count("avisos"), sum("peso_desembarcado", "peso_desembarcado")},
			OrderBy:    "litoral",
		},
	}

	m := make(map[string]domain.ReportSpec, len(specs))
	for _, s := range specs {
		m[s.ID] = s
	}
	return m
}

// Lookup resolves a report identifier to its catalog entry.
func Lookup(id string) (domain.ReportSpec, bool) {
	spec, ok := catalog[id]
	return spec, ok
}

// CatalogEntries returns every report id with its group, sorted by id.
func CatalogEntries() []domain.ReportSpec {
	entries := make([]domain.ReportSpec, 0, len(catalog))
	for _, s := range catalog {
		entries = append(entries, s)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}
