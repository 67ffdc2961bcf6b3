package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhrytsenko/theatre-booking-api/internal/api/handler/v1/request"
	"github.com/mhrytsenko/theatre-booking-api/internal/api/handler/v1/response"
	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/service"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, userID uint, tickets []domain.Ticket) (domain.Reservation, error)
	ListReservations(ctx context.Context, userID uint) ([]domain.Reservation, error)
	GetReservation(ctx context.Context, id, userID uint) (domain.Reservation, error)
	ReplaceTickets(ctx context.Context, id, userID uint, tickets []domain.Ticket) (domain.Reservation, error)
	DeleteReservation(ctx context.Context, id, userID uint) error
}

type ReservationHandler struct {
	svc ReservationService
}

func NewReservationHandler(svc ReservationService) *ReservationHandler {
	return &ReservationHandler{
		svc: svc,
	}
}

// HandleCreateReservation godoc
// @Summary      Book tickets
// @Description  Books all requested seats atomically; any taken seat fails the whole reservation.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateReservationRequest true "request body"
// @Success      201      {object}  domain.Reservation
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /reservations [post]
// @Security BearerAuth
func (h *ReservationHandler) HandleCreateReservation(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reservation, err := h.svc.CreateReservation(ctx.Request.Context(), userID, ticketsFromRequest(req.Tickets))
	if err != nil {
		h.renderBookingErr(ctx, "v1.HandleCreateReservation", err)

		return
	}

	ctx.JSON(http.StatusCreated, reservation)
}

// HandleListReservations godoc
// @Summary      List the authenticated user's reservations
// @Tags         reservations
// @Produce      json
// @Success      200  {array}   domain.Reservation
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reservations [get]
// @Security BearerAuth
func (h *ReservationHandler) HandleListReservations(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	reservations, err := h.svc.ListReservations(ctx.Request.Context(), userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListReservations -> h.svc.ListReservations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleGetReservation godoc
// @Summary      Get one of the authenticated user's reservations
// @Tags         reservations
// @Produce      json
// @Param        reservationID  path      int  true  "reservation ID"
// @Success      200            {object}  domain.Reservation
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /reservations/{reservationID} [get]
// @Security BearerAuth
func (h *ReservationHandler) HandleGetReservation(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, respErr := parseIDParam(ctx, "reservationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	reservation, err := h.svc.GetReservation(ctx.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetReservation -> h.svc.GetReservation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reservation)
}

// HandleUpdateReservation godoc
// @Summary      Replace a reservation's tickets
// @Description  Omitting tickets leaves the set unchanged; an explicit empty list is rejected.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        reservationID  path      int                              true "reservation ID"
// @Param        request        body      request.UpdateReservationRequest true "request body"
// @Success      200            {object}  domain.Reservation
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      409            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /reservations/{reservationID} [put]
// @Security BearerAuth
func (h *ReservationHandler) HandleUpdateReservation(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, respErr := parseIDParam(ctx, "reservationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.UpdateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	// No ticket list means nothing to change; echo the current state.
	if req.Tickets == nil {
		reservation, err := h.svc.GetReservation(ctx.Request.Context(), id, userID)
		if err != nil {
			if errors.Is(err, service.ErrReservationNotFound) {
				response.RenderErr(ctx, response.ErrNotFound("reservation", "id", id))

				return
			}

			err = fmt.Errorf("v1.HandleUpdateReservation -> h.svc.GetReservation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))

			return
		}

		ctx.JSON(http.StatusOK, reservation)

		return
	}

	reservation, err := h.svc.ReplaceTickets(ctx.Request.Context(), id, userID, ticketsFromRequest(*req.Tickets))
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "id", id))

			return
		}

		h.renderBookingErr(ctx, "v1.HandleUpdateReservation", err)

		return
	}

	ctx.JSON(http.StatusOK, reservation)
}

// HandleDeleteReservation godoc
// @Summary      Cancel a reservation
// @Description  Releases every seat the reservation held.
// @Tags         reservations
// @Param        reservationID  path  int  true  "reservation ID"
// @Success      204
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /reservations/{reservationID} [delete]
// @Security BearerAuth
func (h *ReservationHandler) HandleDeleteReservation(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	id, respErr := parseIDParam(ctx, "reservationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteReservation(ctx.Request.Context(), id, userID); err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteReservation -> h.svc.DeleteReservation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// renderBookingErr maps the booking failures shared by create and update.
// Seat conflicts render with the offending seat so the client can retry
// with a different one.
func (h *ReservationHandler) renderBookingErr(ctx *gin.Context, op string, err error) {
	var invalidSeat *domain.InvalidSeatError
	var seatConflict *domain.SeatConflictError

	switch {
	case errors.Is(err, service.ErrNoTickets):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrNoTickets))
	case errors.Is(err, service.ErrPerformanceNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrPerformanceNotFound))
	case errors.As(err, &invalidSeat):
		response.RenderErr(ctx, response.ErrBadRequest(invalidSeat))
	case errors.As(err, &seatConflict):
		response.RenderErr(ctx, response.ErrConflict(seatConflict))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func ticketsFromRequest(reqs []request.TicketRequest) []domain.Ticket {
	tickets := make([]domain.Ticket, 0, len(reqs))
	for _, r := range reqs {
		tickets = append(tickets, domain.Ticket{
			Row:           r.Row,
			Seat:          r.Seat,
			PerformanceID: r.PerformanceID,
		})
	}

	return tickets
}
