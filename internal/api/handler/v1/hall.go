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

type TheatreHallService interface {
	CreateHall(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error)
	ListHalls(ctx context.Context) ([]domain.TheatreHall, error)
	GetHall(ctx context.Context, id uint) (domain.TheatreHall, error)
	UpdateHall(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error)
	DeleteHall(ctx context.Context, id uint) error
}

type TheatreHallHandler struct {
	svc TheatreHallService
}

func NewTheatreHallHandler(svc TheatreHallService) *TheatreHallHandler {
	return &TheatreHallHandler{
		svc: svc,
	}
}

// HandleCreateHall godoc
// @Summary      Create a theatre hall
// @Tags         theatre_halls
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateTheatreHallRequest true "request body"
// @Success      201      {object}  domain.TheatreHall
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /theatre_halls [post]
// @Security BearerAuth
func (h *TheatreHallHandler) HandleCreateHall(ctx *gin.Context) {
	var req request.CreateTheatreHallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	hall, err := h.svc.CreateHall(ctx.Request.Context(), domain.TheatreHall{
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateHall -> h.svc.CreateHall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, hall)
}

// HandleListHalls godoc
// @Summary      List all theatre halls
// @Tags         theatre_halls
// @Produce      json
// @Success      200  {array}   domain.TheatreHall
// @Failure      500  {object}  response.Err
// @Router       /theatre_halls [get]
func (h *TheatreHallHandler) HandleListHalls(ctx *gin.Context) {
	halls, err := h.svc.ListHalls(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListHalls -> h.svc.ListHalls -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, halls)
}

// HandleGetHall godoc
// @Summary      Get a theatre hall by ID
// @Tags         theatre_halls
// @Produce      json
// @Param        hallID  path      int  true  "theatre hall ID"
// @Success      200     {object}  response.TheatreHallDetailResponse
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /theatre_halls/{hallID} [get]
func (h *TheatreHallHandler) HandleGetHall(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "hallID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	hall, err := h.svc.GetHall(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theatre hall", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetHall -> h.svc.GetHall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTheatreHallDetail(hall))
}

// HandleUpdateHall godoc
// @Summary      Update a theatre hall
// @Tags         theatre_halls
// @Accept       json
// @Produce      json
// @Param        hallID   path      int                              true "theatre hall ID"
// @Param        request  body      request.CreateTheatreHallRequest true "request body"
// @Success      200      {object}  domain.TheatreHall
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /theatre_halls/{hallID} [put]
// @Security BearerAuth
func (h *TheatreHallHandler) HandleUpdateHall(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "hallID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateTheatreHallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	hall, err := h.svc.UpdateHall(ctx.Request.Context(), domain.TheatreHall{
		ID:         id,
		Name:       req.Name,
		Rows:       req.Rows,
		SeatsInRow: req.SeatsInRow,
	})
	if err != nil {
		if errors.Is(err, service.ErrHallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theatre hall", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateHall -> h.svc.UpdateHall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, hall)
}

// HandleDeleteHall godoc
// @Summary      Delete a theatre hall
// @Tags         theatre_halls
// @Param        hallID  path  int  true  "theatre hall ID"
// @Success      204
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /theatre_halls/{hallID} [delete]
// @Security BearerAuth
func (h *TheatreHallHandler) HandleDeleteHall(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "hallID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteHall(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrHallNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theatre hall", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteHall -> h.svc.DeleteHall -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
