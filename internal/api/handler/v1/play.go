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
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
	"github.com/mhrytsenko/theatre-booking-api/internal/service"
)

type PlayService interface {
	CreatePlay(ctx context.Context, play domain.Play, genreIDs, actorIDs []uint) (domain.Play, error)
	ListPlays(ctx context.Context, filter repository.PlayFilter) ([]domain.Play, error)
	GetPlay(ctx context.Context, id uint) (domain.Play, error)
	UpdatePlay(ctx context.Context, play domain.Play, genreIDs, actorIDs []uint) (domain.Play, error)
	DeletePlay(ctx context.Context, id uint) error
}

type PlayHandler struct {
	svc PlayService
}

func NewPlayHandler(svc PlayService) *PlayHandler {
	return &PlayHandler{
		svc: svc,
	}
}

// HandleCreatePlay godoc
// @Summary      Create a play
// @Description  Genres and actors are referenced by id and must already exist.
// @Tags         plays
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePlayRequest true "request body"
// @Success      201      {object}  response.PlayResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /plays [post]
// @Security BearerAuth
func (h *PlayHandler) HandleCreatePlay(ctx *gin.Context) {
	var req request.CreatePlayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	play, err := h.svc.CreatePlay(ctx.Request.Context(), domain.Play{
		Title:       req.Title,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}, req.Genres, req.Actors)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenreNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrGenreNotFound))
		case errors.Is(err, service.ErrActorNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrActorNotFound))
		default:
			err = fmt.Errorf("v1.HandleCreatePlay -> h.svc.CreatePlay -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.NewPlay(play))
}

// HandleListPlays godoc
// @Summary      List plays
// @Description  Filter by title substring and comma-separated genre or actor ids.
// @Tags         plays
// @Produce      json
// @Param        title  query     string  false  "case-insensitive title substring"
// @Param        genre  query     string  false  "comma-separated genre ids"
// @Param        actor  query     string  false  "comma-separated actor ids"
// @Success      200    {array}   response.PlayResponse
// @Failure      500    {object}  response.Err
// @Router       /plays [get]
func (h *PlayHandler) HandleListPlays(ctx *gin.Context) {
	filter := repository.PlayFilter{
		Title:    ctx.Query("title"),
		GenreIDs: parseIDList(ctx.Query("genre")),
		ActorIDs: parseIDList(ctx.Query("actor")),
	}

	plays, err := h.svc.ListPlays(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPlays -> h.svc.ListPlays -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewPlays(plays))
}

// HandleGetPlay godoc
// @Summary      Get a play by ID
// @Tags         plays
// @Produce      json
// @Param        playID  path      int  true  "play ID"
// @Success      200     {object}  response.PlayDetailResponse
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /plays/{playID} [get]
func (h *PlayHandler) HandleGetPlay(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "playID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	play, err := h.svc.GetPlay(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlayNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("play", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetPlay -> h.svc.GetPlay -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewPlayDetail(play))
}

// HandleUpdatePlay godoc
// @Summary      Update a play
// @Description  The genre and actor id lists replace the current relations.
// @Tags         plays
// @Accept       json
// @Produce      json
// @Param        playID   path      int                       true "play ID"
// @Param        request  body      request.CreatePlayRequest true "request body"
// @Success      200      {object}  response.PlayResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /plays/{playID} [put]
// @Security BearerAuth
func (h *PlayHandler) HandleUpdatePlay(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "playID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreatePlayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	play, err := h.svc.UpdatePlay(ctx.Request.Context(), domain.Play{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}, req.Genres, req.Actors)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlayNotFound):
			response.RenderErr(ctx, response.ErrNotFound("play", "id", id))
		case errors.Is(err, service.ErrGenreNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrGenreNotFound))
		case errors.Is(err, service.ErrActorNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrActorNotFound))
		default:
			err = fmt.Errorf("v1.HandleUpdatePlay -> h.svc.UpdatePlay -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewPlay(play))
}

// HandleDeletePlay godoc
// @Summary      Delete a play
// @Tags         plays
// @Param        playID  path  int  true  "play ID"
// @Success      204
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /plays/{playID} [delete]
// @Security BearerAuth
func (h *PlayHandler) HandleDeletePlay(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "playID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeletePlay(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlayNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("play", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePlay -> h.svc.DeletePlay -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
