package api

// ReportResponse wraps the rows of a successful report request.
type ReportResponse struct {
	Data any `json:"data"`
}

// ListingResponse wraps one page of raw records plus pagination metadata.
// Total comes from an independent count query, never from the page slice.
type ListingResponse struct {
	Data       any `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ErrorResponse is the failure envelope. Details carries diagnostic text
// only outside production mode.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CatalogEntry describes one report type for API consumers.
type CatalogEntry struct {
	ID    string `json:"id"`
	Group string `json:"group"`
}
