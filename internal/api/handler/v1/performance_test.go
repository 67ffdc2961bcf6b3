package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
	"github.com/mhrytsenko/theatre-booking-api/internal/service"
)

type fakePerformanceService struct {
	created   domain.Performance
	createErr error

	listings   []domain.PerformanceListing
	lastFilter repository.PerformanceFilter

	got        domain.Performance
	takenSeats []domain.Ticket
	getErr     error
}

func (f *fakePerformanceService) SchedulePerformance(_ context.Context, _ domain.Performance) (domain.Performance, error) {
	return f.created, f.createErr
}

func (f *fakePerformanceService) ListPerformances(_ context.Context, filter repository.PerformanceFilter) ([]domain.PerformanceListing, error) {
	f.lastFilter = filter

	return f.listings, nil
}

func (f *fakePerformanceService) GetPerformance(_ context.Context, _ uint) (domain.Performance, []domain.Ticket, error) {
	return f.got, f.takenSeats, f.getErr
}

func (f *fakePerformanceService) UpdatePerformance(_ context.Context, _ domain.Performance) (domain.Performance, error) {
	return domain.Performance{}, nil
}

func (f *fakePerformanceService) DeletePerformance(_ context.Context, _ uint) error {
	return nil
}

func newPerformanceRouter(svc PerformanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewPerformanceHandler(svc)

	router := gin.New()
	router.GET("/api/v1/performances", handler.HandleListPerformances)
	router.GET("/api/v1/performances/:performanceID", handler.HandleGetPerformance)
	router.POST("/api/v1/performances", handler.HandleCreatePerformance)

	return router
}

func TestPerformanceHandler_HandleListPerformances(t *testing.T) {
	t.Run("parses the play and date filters", func(t *testing.T) {
		svc := &fakePerformanceService{}
		router := newPerformanceRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/performances?play=1,3&date=2026-09-05", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, []uint{1, 3}, svc.lastFilter.PlayIDs)
		assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), svc.lastFilter.Date)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		router := newPerformanceRouter(&fakePerformanceService{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/performances?date=05-09-2026", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("returns availability in the listing", func(t *testing.T) {
		svc := &fakePerformanceService{listings: []domain.PerformanceListing{
			{Performance: domain.Performance{ID: 1}, AvailableSeats: 5},
		}}
		router := newPerformanceRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/performances", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"available_seats":5`)
	})
}

func TestPerformanceHandler_HandleGetPerformance(t *testing.T) {
	svc := &fakePerformanceService{
		got: domain.Performance{
			ID:          1,
			Play:        domain.Play{Title: "Hamlet"},
			TheatreHall: domain.TheatreHall{Name: "Main Stage"},
		},
		takenSeats: []domain.Ticket{
			{Row: 1, Seat: 2},
			{Row: 2, Seat: 1},
		},
	}
	router := newPerformanceRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/performances/1", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"title":"Hamlet"`)
	assert.Contains(t, body, `"theatre_hall_name":"Main Stage"`)
	assert.Contains(t, body, `"Row: 1 Seat: 2"`)
	assert.Contains(t, body, `"Row: 2 Seat: 1"`)
}

func TestPerformanceHandler_HandleCreatePerformance(t *testing.T) {
	body := `{"play":1,"theatre_hall":1,"show_time":"2026-12-24T19:00:00Z"}`

	tests := []struct {
		name       string
		svc        *fakePerformanceService
		wantStatus int
	}{
		{
			name:       "schedules the performance",
			svc:        &fakePerformanceService{created: domain.Performance{ID: 9}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "past show time",
			svc:        &fakePerformanceService{createErr: service.ErrPastShowTime},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "hall already booked",
			svc:        &fakePerformanceService{createErr: service.ErrHallTimeTaken},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "play performed elsewhere",
			svc:        &fakePerformanceService{createErr: service.ErrPlayTimeTaken},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown play",
			svc:        &fakePerformanceService{createErr: service.ErrPlayNotFound},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPerformanceRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/performances", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}
