package service

import (
	"context"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

var (
	ErrGenreNameTaken = repository.ErrGenreNameTaken
	ErrGenreNotFound  = repository.ErrGenreNotFound
)

type GenreRepository interface {
	Create(ctx context.Context, genre domain.Genre) (domain.Genre, error)
	FindAll(ctx context.Context) ([]domain.Genre, error)
	FindByID(ctx context.Context, id uint) (domain.Genre, error)
	Update(ctx context.Context, genre domain.Genre) (domain.Genre, error)
	Delete(ctx context.Context, id uint) error
}

type GenreService struct {
	repo GenreRepository
}

func NewGenreService(repo GenreRepository) *GenreService {
	return &GenreService{
		repo: repo,
	}
}

// CreateGenre relies on the store's functional unique index for the
// case-insensitive name rule; "Drama" and "drama" are the same genre.
func (s *GenreService) CreateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	created, err := s.repo.Create(ctx, genre)
	if err != nil {
		return domain.Genre{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *GenreService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return genres, nil
}

func (s *GenreService) GetGenre(ctx context.Context, id uint) (domain.Genre, error) {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Genre{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return genre, nil
}

func (s *GenreService) UpdateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	updated, err := s.repo.Update(ctx, genre)
	if err != nil {
		return domain.Genre{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GenreService) DeleteGenre(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
