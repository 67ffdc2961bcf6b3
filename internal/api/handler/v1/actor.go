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

type ActorService interface {
	CreateActor(ctx context.Context, actor domain.Actor) (domain.Actor, error)
	ListActors(ctx context.Context) ([]domain.Actor, error)
	GetActor(ctx context.Context, id uint) (domain.Actor, error)
	UpdateActor(ctx context.Context, actor domain.Actor) (domain.Actor, error)
	DeleteActor(ctx context.Context, id uint) error
}

type ActorHandler struct {
	svc ActorService
}

func NewActorHandler(svc ActorService) *ActorHandler {
	return &ActorHandler{
		svc: svc,
	}
}

// HandleCreateActor godoc
// @Summary      Create an actor
// @Tags         actors
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateActorRequest true "request body"
// @Success      201      {object}  domain.Actor
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /actors [post]
// @Security BearerAuth
func (h *ActorHandler) HandleCreateActor(ctx *gin.Context) {
	var req request.CreateActorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	actor, err := h.svc.CreateActor(ctx.Request.Context(), domain.Actor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateActor -> h.svc.CreateActor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, actor)
}

// HandleListActors godoc
// @Summary      List all actors
// @Tags         actors
// @Produce      json
// @Success      200  {array}   domain.Actor
// @Failure      500  {object}  response.Err
// @Router       /actors [get]
func (h *ActorHandler) HandleListActors(ctx *gin.Context) {
	actors, err := h.svc.ListActors(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListActors -> h.svc.ListActors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, actors)
}

// HandleGetActor godoc
// @Summary      Get an actor by ID
// @Tags         actors
// @Produce      json
// @Param        actorID  path      int  true  "actor ID"
// @Success      200      {object}  response.ActorDetailResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /actors/{actorID} [get]
func (h *ActorHandler) HandleGetActor(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "actorID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	actor, err := h.svc.GetActor(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("actor", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetActor -> h.svc.GetActor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewActorDetail(actor))
}

// HandleUpdateActor godoc
// @Summary      Update an actor
// @Tags         actors
// @Accept       json
// @Produce      json
// @Param        actorID  path      int                        true "actor ID"
// @Param        request  body      request.CreateActorRequest true "request body"
// @Success      200      {object}  domain.Actor
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /actors/{actorID} [put]
// @Security BearerAuth
func (h *ActorHandler) HandleUpdateActor(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "actorID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateActorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	actor, err := h.svc.UpdateActor(ctx.Request.Context(), domain.Actor{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, service.ErrActorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("actor", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateActor -> h.svc.UpdateActor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, actor)
}

// HandleDeleteActor godoc
// @Summary      Delete an actor
// @Tags         actors
// @Param        actorID  path  int  true  "actor ID"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /actors/{actorID} [delete]
// @Security BearerAuth
func (h *ActorHandler) HandleDeleteActor(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "actorID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteActor(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrActorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("actor", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteActor -> h.svc.DeleteActor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
