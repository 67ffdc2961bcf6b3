package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mhrytsenko/theatre-booking-api/internal/api/handler/v1/request"
	"github.com/mhrytsenko/theatre-booking-api/internal/api/handler/v1/response"
	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
	"github.com/mhrytsenko/theatre-booking-api/internal/service"
)

type PerformanceService interface {
	SchedulePerformance(ctx context.Context, performance domain.Performance) (domain.Performance, error)
	ListPerformances(ctx context.Context, filter repository.PerformanceFilter) ([]domain.PerformanceListing, error)
	GetPerformance(ctx context.Context, id uint) (domain.Performance, []domain.Ticket, error)
	UpdatePerformance(ctx context.Context, performance domain.Performance) (domain.Performance, error)
	DeletePerformance(ctx context.Context, id uint) error
}

type PerformanceHandler struct {
	svc PerformanceService
}

func NewPerformanceHandler(svc PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{
		svc: svc,
	}
}

// HandleCreatePerformance godoc
// @Summary      Schedule a performance
// @Description  A hall and a play can each host at most one performance per show time.
// @Tags         performances
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePerformanceRequest true "request body"
// @Success      201      {object}  domain.Performance
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /performances [post]
// @Security BearerAuth
func (h *PerformanceHandler) HandleCreatePerformance(ctx *gin.Context) {
	var req request.CreatePerformanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	performance, err := h.svc.SchedulePerformance(ctx.Request.Context(), domain.Performance{
		PlayID:        req.PlayID,
		TheatreHallID: req.TheatreHallID,
		ShowTime:      req.ShowTime,
	})
	if err != nil {
		h.renderScheduleErr(ctx, "v1.HandleCreatePerformance", err)

		return
	}

	ctx.JSON(http.StatusCreated, performance)
}

// HandleListPerformances godoc
// @Summary      List performances with seat availability
// @Description  Filter by comma-separated play ids and by calendar date (YYYY-MM-DD).
// @Tags         performances
// @Produce      json
// @Param        play  query     string  false  "comma-separated play ids"
// @Param        date  query     string  false  "show date, YYYY-MM-DD"
// @Success      200   {array}   domain.PerformanceListing
// @Failure      400   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /performances [get]
func (h *PerformanceHandler) HandleListPerformances(ctx *gin.Context) {
	filter := repository.PerformanceFilter{
		PlayIDs: parseIDList(ctx.Query("play")),
	}

	if raw := ctx.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date (%v), expected YYYY-MM-DD", raw)))

			return
		}
		filter.Date = date
	}

	listings, err := h.svc.ListPerformances(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPerformances -> h.svc.ListPerformances -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, listings)
}

// HandleGetPerformance godoc
// @Summary      Get a performance by ID
// @Description  Includes the labels of every taken seat, ordered by row then seat.
// @Tags         performances
// @Produce      json
// @Param        performanceID  path      int  true  "performance ID"
// @Success      200            {object}  response.PerformanceDetailResponse
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /performances/{performanceID} [get]
func (h *PerformanceHandler) HandleGetPerformance(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "performanceID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	performance, takenSeats, err := h.svc.GetPerformance(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPerformanceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("performance", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetPerformance -> h.svc.GetPerformance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewPerformanceDetail(performance, takenSeats))
}

// HandleUpdatePerformance godoc
// @Summary      Reschedule a performance
// @Tags         performances
// @Accept       json
// @Produce      json
// @Param        performanceID  path      int                              true "performance ID"
// @Param        request        body      request.CreatePerformanceRequest true "request body"
// @Success      200            {object}  domain.Performance
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      409            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /performances/{performanceID} [put]
// @Security BearerAuth
func (h *PerformanceHandler) HandleUpdatePerformance(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "performanceID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreatePerformanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	performance, err := h.svc.UpdatePerformance(ctx.Request.Context(), domain.Performance{
		ID:            id,
		PlayID:        req.PlayID,
		TheatreHallID: req.TheatreHallID,
		ShowTime:      req.ShowTime,
	})
	if err != nil {
		if errors.Is(err, service.ErrPerformanceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("performance", "id", id))

			return
		}

		h.renderScheduleErr(ctx, "v1.HandleUpdatePerformance", err)

		return
	}

	ctx.JSON(http.StatusOK, performance)
}

// HandleDeletePerformance godoc
// @Summary      Cancel a performance
// @Description  Tickets sold for the performance are removed with it.
// @Tags         performances
// @Param        performanceID  path  int  true  "performance ID"
// @Success      204
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /performances/{performanceID} [delete]
// @Security BearerAuth
func (h *PerformanceHandler) HandleDeletePerformance(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "performanceID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeletePerformance(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPerformanceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("performance", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePerformance -> h.svc.DeletePerformance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// renderScheduleErr maps the scheduling failures shared by create and update.
func (h *PerformanceHandler) renderScheduleErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrPastShowTime):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrPastShowTime))
	case errors.Is(err, service.ErrPlayNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrPlayNotFound))
	case errors.Is(err, service.ErrHallNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrHallNotFound))
	case errors.Is(err, service.ErrHallTimeTaken):
		response.RenderErr(ctx, response.ErrConflict(service.ErrHallTimeTaken))
	case errors.Is(err, service.ErrPlayTimeTaken):
		response.RenderErr(ctx, response.ErrConflict(service.ErrPlayTimeTaken))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
