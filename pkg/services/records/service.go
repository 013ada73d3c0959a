package records

import (
	"context"
	"fmt"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
	storemodel "github.com/fridacisneros/panorama-sub001/pkg/models/store"
	recordstore "github.com/fridacisneros/panorama-sub001/pkg/store/duckdb/records"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// Page is one page of raw records plus the pagination metadata computed
// from the independent count query.
type Page struct {
	Records    []storemodel.LandingRecord
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// Service serves filtered, paginated raw landing records.
type Service interface {
	List(ctx context.Context, f domain.Filter, page, limit int) (*Page, error)
}

type service struct {
	store recordstore.Store
}

func NewService(store recordstore.Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context, f domain.Filter, page, limit int) (*Page, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	// Total comes from its own query over the same predicate, never from
	// counting the page slice. The two queries share no snapshot; a write
	// in between can skew the metadata by a few rows, which is acceptable
	// here.
	total, err := s.store.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count listing: %w", err)
	}

	records, err := s.store.List(ctx, f, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch listing page: %w", err)
	}

	return &Page{
		Records:    records,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}
