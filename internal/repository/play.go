package repository

import (
	"context"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository/dao"
)

var ErrPlayNotFound = dao.ErrPlayNotFound

// PlayFilter mirrors dao.PlayFilter at the domain boundary.
type PlayFilter struct {
	Title    string
	GenreIDs []uint
	ActorIDs []uint
}

type PlayDAO interface {
	Insert(ctx context.Context, play dao.Play) (dao.Play, error)
	FindAll(ctx context.Context, filter dao.PlayFilter) ([]dao.Play, error)
	FindByID(ctx context.Context, id uint) (dao.Play, error)
	Update(ctx context.Context, play dao.Play) (dao.Play, error)
	Delete(ctx context.Context, id uint) error
}

type PlayRepository struct {
	dao PlayDAO
}

func NewPlayRepository(dao PlayDAO) *PlayRepository {
	return &PlayRepository{
		dao: dao,
	}
}

func (r *PlayRepository) Create(ctx context.Context, play domain.Play) (domain.Play, error) {
	created, err := r.dao.Insert(ctx, playToDAO(play))
	if err != nil {
		return domain.Play{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return playToDomain(created), nil
}

func (r *PlayRepository) FindAll(ctx context.Context, filter PlayFilter) ([]domain.Play, error) {
	found, err := r.dao.FindAll(ctx, dao.PlayFilter{
		Title:    filter.Title,
		GenreIDs: filter.GenreIDs,
		ActorIDs: filter.ActorIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	plays := make([]domain.Play, 0, len(found))
	for _, p := range found {
		plays = append(plays, playToDomain(p))
	}

	return plays, nil
}

func (r *PlayRepository) FindByID(ctx context.Context, id uint) (domain.Play, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Play{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return playToDomain(found), nil
}

func (r *PlayRepository) Update(ctx context.Context, play domain.Play) (domain.Play, error) {
	updated, err := r.dao.Update(ctx, playToDAO(play))
	if err != nil {
		return domain.Play{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return playToDomain(updated), nil
}

func (r *PlayRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func playToDAO(p domain.Play) dao.Play {
	daoPlay := dao.Play{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		PosterURL:   p.PosterURL,
	}
	for _, g := range p.Genres {
		daoPlay.Genres = append(daoPlay.Genres, dao.Genre{ID: g.ID, Name: g.Name})
	}
	for _, a := range p.Actors {
		daoPlay.Actors = append(daoPlay.Actors, actorToDAO(a))
	}

	return daoPlay
}

func playToDomain(p dao.Play) domain.Play {
	play := domain.Play{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		PosterURL:   p.PosterURL,
	}
	for _, g := range p.Genres {
		play.Genres = append(play.Genres, genreToDomain(g))
	}
	for _, a := range p.Actors {
		play.Actors = append(play.Actors, actorToDomain(a))
	}

	return play
}
