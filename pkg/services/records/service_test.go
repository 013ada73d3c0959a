package records

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
	storemodel "github.com/fridacisneros/panorama-sub001/pkg/models/store"
)

type stubStore struct {
	records []storemodel.LandingRecord
	total   int
	listErr error
	cntErr  error

	gotLimit  int
	gotOffset int
}

func (s *stubStore) List(_ context.Context, _ domain.Filter, limit, offset int) ([]storemodel.LandingRecord, error) {
	s.gotLimit = limit
	s.gotOffset = offset
	return s.records, s.listErr
}

func (s *stubStore) Count(_ context.Context, _ domain.Filter) (int, error) {
	return s.total, s.cntErr
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("total pages round up", func(t *testing.T) {
		store := &stubStore{total: 120}
		svc := NewService(store)

		page, err := svc.List(ctx, domain.Filter{}, 2, 50)

		require.NoError(t, err)
		assert.Equal(t, 120, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 50, store.gotLimit)
		assert.Equal(t, 50, store.gotOffset)
	})

	t.Run("defaults applied for missing page and limit", func(t *testing.T) {
		store := &stubStore{total: 10}
		svc := NewService(store)

		page, err := svc.List(ctx, domain.Filter{}, 0, -3)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 50, page.Limit)
		assert.Equal(t, 0, store.gotOffset)
	})

	t.Run("exact multiple of the page size", func(t *testing.T) {
		svc := NewService(&stubStore{total: 100})

		page, err := svc.List(ctx, domain.Filter{}, 1, 50)

		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("count failure aborts before the page fetch", func(t *testing.T) {
		store := &stubStore{cntErr: errors.New("down")}
		svc := NewService(store)

		_, err := svc.List(ctx, domain.Filter{}, 1, 50)

		require.Error(t, err)
		assert.Zero(t, store.gotLimit, "page query must not run")
	})
}
