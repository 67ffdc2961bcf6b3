package repository

import (
	"context"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository/dao"
)

var (
	ErrGenreNameTaken = dao.ErrGenreNameTaken
	ErrGenreNotFound  = dao.ErrGenreNotFound
)

type GenreDAO interface {
	Insert(ctx context.Context, genre dao.Genre) (dao.Genre, error)
	FindAll(ctx context.Context) ([]dao.Genre, error)
	FindByID(ctx context.Context, id uint) (dao.Genre, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Genre, error)
	Update(ctx context.Context, genre dao.Genre) (dao.Genre, error)
	Delete(ctx context.Context, id uint) error
}

type GenreRepository struct {
	dao GenreDAO
}

func NewGenreRepository(dao GenreDAO) *GenreRepository {
	return &GenreRepository{
		dao: dao,
	}
}

func (r *GenreRepository) Create(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	created, err := r.dao.Insert(ctx, dao.Genre{Name: genre.Name})
	if err != nil {
		return domain.Genre{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return genreToDomain(created), nil
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]domain.Genre, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	genres := make([]domain.Genre, 0, len(found))
	for _, g := range found {
		genres = append(genres, genreToDomain(g))
	}

	return genres, nil
}

func (r *GenreRepository) FindByID(ctx context.Context, id uint) (domain.Genre, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Genre{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return genreToDomain(found), nil
}

func (r *GenreRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Genre, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	genres := make([]domain.Genre, 0, len(found))
	for _, g := range found {
		genres = append(genres, genreToDomain(g))
	}

	return genres, nil
}

func (r *GenreRepository) Update(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	updated, err := r.dao.Update(ctx, dao.Genre{ID: genre.ID, Name: genre.Name})
	if err != nil {
		return domain.Genre{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return genreToDomain(updated), nil
}

func (r *GenreRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func genreToDomain(g dao.Genre) domain.Genre {
	return domain.Genre{
		ID:   g.ID,
		Name: g.Name,
	}
}
