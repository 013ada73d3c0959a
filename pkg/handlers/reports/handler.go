package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/fridacisneros/panorama-sub001/pkg/models/api"
	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
	recordsvc "github.com/fridacisneros/panorama-sub001/pkg/services/records"
	reportsvc "github.com/fridacisneros/panorama-sub001/pkg/services/reports"
)

const maxReportLimit = 500

type Handler struct {
	dispatcher reportsvc.Dispatcher
	records    recordsvc.Service
	production bool
}

func NewHandler(dispatcher reportsvc.Dispatcher, records recordsvc.Service, appEnv string) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		records:    records,
		production: appEnv == "production",
	}
}

// GetReport serves GET /reportes?tipo=...; tipo=filtros returns the
// distinct values of every filterable dimension instead of a report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	tipo := q.Get("tipo")
	if tipo == "" {
		h.writeError(w, r, domain.Validationf("missing required parameter: tipo"))
		return
	}

	if tipo == "filtros" {
		options, err := h.dispatcher.FilterOptions(ctx)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, api.ReportResponse{Data: options})
		return
	}

	filter, err := parseFilter(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	limit, err := intParam(q, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limitOverride := 0
	if limit != nil {
		limitOverride = *limit
		if limitOverride < 1 || limitOverride > maxReportLimit {
			h.writeError(w, r, domain.Validationf("limit must be between 1 and %d", maxReportLimit))
			return
		}
	}

	rows, err := h.dispatcher.Report(ctx, tipo, filter, limitOverride)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.ReportResponse{Data: rows})
}

// GetCatalog serves GET /reportes/catalogo.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	entries := reportsvc.CatalogEntries()
	response := make([]api.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, api.CatalogEntry{ID: e.ID, Group: e.Group})
	}
	writeJSON(r.Context(), w, http.StatusOK, api.ReportResponse{Data: response})
}

// ListRecords serves GET /registros: filtered raw rows with pagination
// metadata. String dimensions match on substrings here.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter, err := parseFilter(q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := intParam(q, "page")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit, err := intParam(q, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.records.List(ctx, filter, orDefault(page, 0), orDefault(limit, 0))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.ListingResponse{
		Data:       result.Records,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// parseFilter maps recognized query parameters onto the filter model.
// Unrecognized or empty parameters are ignored; a present but unparsable
// year is a client fault. Both the accented and plain spellings of the
// year parameters are accepted.
func parseFilter(q url.Values) (domain.Filter, error) {
	var f domain.Filter

	anio, err := intParam(q, "año", "anio")
	if err != nil {
		return f, err
	}
	inicio, err := intParam(q, "añoInicio", "anioInicio")
	if err != nil {
		return f, err
	}
	fin, err := intParam(q, "añoFin", "anioFin")
	if err != nil {
		return f, err
	}

	f.Anio = anio
	f.AnioInicio = inicio
	f.AnioFin = fin
	f.Especie = q.Get("especie")
	f.Estado = q.Get("estado")
	f.Litoral = q.Get("litoral")
	f.TipoZona = q.Get("tipoZona")
	return f, nil
}

func intParam(q url.Values, names ...string) (*int, error) {
	for _, name := range names {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domain.Validationf("parameter %s must be an integer", name)
		}
		return &n, nil
	}
	return nil, nil
}

func orDefault(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(ctx, w, http.StatusBadRequest, api.ErrorResponse{Error: vErr.Msg})
		return
	}

	logger.Error().Err(err).Msg("report request failed")
	response := api.ErrorResponse{Error: "internal server error"}
	if !h.production {
		response.Details = err.Error()
	}
	writeJSON(ctx, w, http.StatusInternalServerError, response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
