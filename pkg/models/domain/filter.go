package domain

// Filter is the request-scoped set of predicates recognized by both the
// report dispatcher and the record listing. Nil/empty fields impose no
// constraint; composition is always a conjunction.
//
// The year dimension has two mutually exclusive forms: an inclusive range
// (AnioInicio/AnioFin) or a single-year equality. When a range bound is
// present it wins over the single-year value.
type Filter struct {
	Anio       *int
	AnioInicio *int
	AnioFin    *int
	Especie    string
	Estado     string
	Litoral    string
	TipoZona   string
}

// IsEmpty reports whether the filter imposes no constraint at all.
func (f Filter) IsEmpty() bool {
	return f.Anio == nil && f.AnioInicio == nil && f.AnioFin == nil &&
		f.Especie == "" && f.Estado == "" && f.Litoral == "" && f.TipoZona == ""
}

// HasRegion reports whether the filter scopes to a state or coastal region.
// Region-guarded reports refuse to run without it.
func (f Filter) HasRegion() bool {
	return f.Estado != "" || f.Litoral != ""
}
