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

type GenreService interface {
	CreateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	GetGenre(ctx context.Context, id uint) (domain.Genre, error)
	UpdateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error)
	DeleteGenre(ctx context.Context, id uint) error
}

type GenreHandler struct {
	svc GenreService
}

func NewGenreHandler(svc GenreService) *GenreHandler {
	return &GenreHandler{
		svc: svc,
	}
}

// HandleCreateGenre godoc
// @Summary      Create a genre
// @Description  Genre names are unique regardless of letter case.
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateGenreRequest true "request body"
// @Success      201      {object}  domain.Genre
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /genres [post]
// @Security BearerAuth
func (h *GenreHandler) HandleCreateGenre(ctx *gin.Context) {
	var req request.CreateGenreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	genre, err := h.svc.CreateGenre(ctx.Request.Context(), domain.Genre{Name: req.Name})
	if err != nil {
		if errors.Is(err, service.ErrGenreNameTaken) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrGenreNameTaken))

			return
		}

		err = fmt.Errorf("v1.HandleCreateGenre -> h.svc.CreateGenre -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, genre)
}

// HandleListGenres godoc
// @Summary      List all genres
// @Tags         genres
// @Produce      json
// @Success      200  {array}   domain.Genre
// @Failure      500  {object}  response.Err
// @Router       /genres [get]
func (h *GenreHandler) HandleListGenres(ctx *gin.Context) {
	genres, err := h.svc.ListGenres(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListGenres -> h.svc.ListGenres -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, genres)
}

// HandleGetGenre godoc
// @Summary      Get a genre by ID
// @Tags         genres
// @Produce      json
// @Param        genreID  path      int  true  "genre ID"
// @Success      200      {object}  domain.Genre
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /genres/{genreID} [get]
func (h *GenreHandler) HandleGetGenre(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "genreID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	genre, err := h.svc.GetGenre(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("genre", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetGenre -> h.svc.GetGenre -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, genre)
}

// HandleUpdateGenre godoc
// @Summary      Update a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Param        genreID  path      int                        true "genre ID"
// @Param        request  body      request.CreateGenreRequest true "request body"
// @Success      200      {object}  domain.Genre
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /genres/{genreID} [put]
// @Security BearerAuth
func (h *GenreHandler) HandleUpdateGenre(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "genreID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.CreateGenreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	genre, err := h.svc.UpdateGenre(ctx.Request.Context(), domain.Genre{ID: id, Name: req.Name})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenreNotFound):
			response.RenderErr(ctx, response.ErrNotFound("genre", "id", id))
		case errors.Is(err, service.ErrGenreNameTaken):
			response.RenderErr(ctx, response.ErrConflict(service.ErrGenreNameTaken))
		default:
			err = fmt.Errorf("v1.HandleUpdateGenre -> h.svc.UpdateGenre -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, genre)
}

// HandleDeleteGenre godoc
// @Summary      Delete a genre
// @Tags         genres
// @Param        genreID  path  int  true  "genre ID"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /genres/{genreID} [delete]
// @Security BearerAuth
func (h *GenreHandler) HandleDeleteGenre(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "genreID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteGenre(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("genre", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteGenre -> h.svc.DeleteGenre -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
