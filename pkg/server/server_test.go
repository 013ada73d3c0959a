package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
	recordsvc "github.com/fridacisneros/panorama-sub001/pkg/services/records"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Report(ctx context.Context, tipo string, f domain.Filter, limitOverride int) ([]domain.Row, error) {
	args := m.Called(ctx, tipo, f, limitOverride)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Row), args.Error(1)
}

func (m *mockDispatcher) FilterOptions(ctx context.Context) (domain.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Row), args.Error(1)
}

type mockRecords struct {
	mock.Mock
}

func (m *mockRecords) List(ctx context.Context, f domain.Filter, page, limit int) (*recordsvc.Page, error) {
	args := m.Called(ctx, f, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordsvc.Page), args.Error(1)
}

func TestWebAPI_Routes(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	dispatcher := new(mockDispatcher)
	records := new(mockRecords)

	api := NewWebAPI(logger, Config{
		Addr:   ":8080",
		AppEnv: "test",
		Dependencies: Dependencies{
			Dispatcher: dispatcher,
			Records:    records,
		},
	})
	testServer := httptest.NewServer(api.router)
	defer testServer.Close()

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "health",
			path:           "/api/v1/salud",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name: "report",
			path: "/api/v1/reportes?tipo=captura-anual",
			setupMocks: func() {
				dispatcher.On("Report", mock.Anything, "captura-anual", domain.Filter{}, 0).
					Return([]domain.Row{{"anio_corte": 2020, "peso_desembarcado": 10.5}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":[{"anio_corte":2020,"peso_desembarcado":10.5}]}`,
		},
		{
			name: "listing",
			path: "/api/v1/registros?page=1&limit=10",
			setupMocks: func() {
				records.On("List", mock.Anything, domain.Filter{}, 1, 10).
					Return(&recordsvc.Page{Total: 0, Page: 1, Limit: 10, TotalPages: 0}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"data":null,"total":0,"page":1,"limit":10,"totalPages":0}`,
		},
		{
			name:           "unknown route",
			path:           "/api/v1/nada",
			setupMocks:     func() {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			if tc.expectedBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.JSONEq(t, tc.expectedBody, string(body))
			}
		})
	}
}
