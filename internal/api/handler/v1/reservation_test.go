package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/service"
)

type fakeReservationService struct {
	created   domain.Reservation
	createErr error

	replaced   domain.Reservation
	replaceErr error

	got    domain.Reservation
	getErr error

	replaceCalled bool
}

func (f *fakeReservationService) CreateReservation(_ context.Context, _ uint, _ []domain.Ticket) (domain.Reservation, error) {
	return f.created, f.createErr
}

func (f *fakeReservationService) ListReservations(_ context.Context, _ uint) ([]domain.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationService) GetReservation(_ context.Context, _, _ uint) (domain.Reservation, error) {
	return f.got, f.getErr
}

func (f *fakeReservationService) ReplaceTickets(_ context.Context, _, _ uint, _ []domain.Ticket) (domain.Reservation, error) {
	f.replaceCalled = true

	return f.replaced, f.replaceErr
}

func (f *fakeReservationService) DeleteReservation(_ context.Context, _, _ uint) error {
	return nil
}

func newReservationRouter(svc ReservationService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewReservationHandler(svc)

	router := gin.New()
	authed := router.Group("/api/v1", func(ctx *gin.Context) {
		ctx.Set(ContextKeyUserID, uint(7))
	})
	authed.POST("/reservations", handler.HandleCreateReservation)
	authed.PUT("/reservations/:reservationID", handler.HandleUpdateReservation)

	return router
}

func TestReservationHandler_HandleCreateReservation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeReservationService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "books the requested seats",
			body:       `{"tickets":[{"row":1,"seat":2,"performance":1}]}`,
			svc:        &fakeReservationService{created: domain.Reservation{ID: 42}},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":42`,
		},
		{
			name:       "empty ticket list",
			body:       `{"tickets":[]}`,
			svc:        &fakeReservationService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "at least one ticket",
		},
		{
			name:       "seat out of the hall's range",
			body:       `{"tickets":[{"row":99,"seat":1,"performance":1}]}`,
			svc:        &fakeReservationService{createErr: &domain.InvalidSeatError{Field: "row", Value: 99, Limit: 10}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "out of range",
		},
		{
			name:       "seat already taken",
			body:       `{"tickets":[{"row":1,"seat":2,"performance":1}]}`,
			svc:        &fakeReservationService{createErr: &domain.SeatConflictError{Row: 1, Seat: 2}},
			wantStatus: http.StatusConflict,
			wantBody:   "already taken",
		},
		{
			name:       "unknown performance",
			body:       `{"tickets":[{"row":1,"seat":2,"performance":99}]}`,
			svc:        &fakeReservationService{createErr: service.ErrPerformanceNotFound},
			wantStatus: http.StatusBadRequest,
			wantBody:   "performance not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newReservationRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestReservationHandler_HandleUpdateReservation(t *testing.T) {
	t.Run("omitted tickets leave the reservation unchanged", func(t *testing.T) {
		svc := &fakeReservationService{
			got: domain.Reservation{ID: 3, Tickets: []domain.Ticket{{Row: 1, Seat: 1, PerformanceID: 1}}},
		}
		router := newReservationRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/3", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"id":3`)
		assert.False(t, svc.replaceCalled)
	})

	t.Run("an explicit empty list is rejected", func(t *testing.T) {
		svc := &fakeReservationService{}
		router := newReservationRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/3", strings.NewReader(`{"tickets":[]}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.False(t, svc.replaceCalled)
	})

	t.Run("a conflicting replacement reports 409", func(t *testing.T) {
		svc := &fakeReservationService{replaceErr: &domain.SeatConflictError{Row: 2, Seat: 5}}
		router := newReservationRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/3",
			strings.NewReader(`{"tickets":[{"row":2,"seat":5,"performance":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("someone else's reservation is not found", func(t *testing.T) {
		svc := &fakeReservationService{replaceErr: service.ErrReservationNotFound}
		router := newReservationRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/3",
			strings.NewReader(`{"tickets":[{"row":1,"seat":1,"performance":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
