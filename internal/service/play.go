package service

import (
	"context"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

var ErrPlayNotFound = repository.ErrPlayNotFound

type PlayRepository interface {
	Create(ctx context.Context, play domain.Play) (domain.Play, error)
	FindAll(ctx context.Context, filter repository.PlayFilter) ([]domain.Play, error)
	FindByID(ctx context.Context, id uint) (domain.Play, error)
	Update(ctx context.Context, play domain.Play) (domain.Play, error)
	Delete(ctx context.Context, id uint) error
}

type PlayGenreRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Genre, error)
}

type PlayActorRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Actor, error)
}

type PlayService struct {
	repo      PlayRepository
	genreRepo PlayGenreRepository
	actorRepo PlayActorRepository
}

func NewPlayService(repo PlayRepository, genreRepo PlayGenreRepository, actorRepo PlayActorRepository) *PlayService {
	return &PlayService{
		repo:      repo,
		genreRepo: genreRepo,
		actorRepo: actorRepo,
	}
}

// CreatePlay resolves the referenced genre and actor ids before persisting,
// so a dangling id fails with a not-found error instead of a broken join row.
func (s *PlayService) CreatePlay(ctx context.Context, play domain.Play, genreIDs, actorIDs []uint) (domain.Play, error) {
	var err error
	play.Genres, play.Actors, err = s.resolveRelations(ctx, genreIDs, actorIDs)
	if err != nil {
		return domain.Play{}, err
	}

	created, err := s.repo.Create(ctx, play)
	if err != nil {
		return domain.Play{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PlayService) ListPlays(ctx context.Context, filter repository.PlayFilter) ([]domain.Play, error) {
	plays, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return plays, nil
}

func (s *PlayService) GetPlay(ctx context.Context, id uint) (domain.Play, error) {
	play, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Play{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return play, nil
}

func (s *PlayService) UpdatePlay(ctx context.Context, play domain.Play, genreIDs, actorIDs []uint) (domain.Play, error) {
	var err error
	play.Genres, play.Actors, err = s.resolveRelations(ctx, genreIDs, actorIDs)
	if err != nil {
		return domain.Play{}, err
	}

	updated, err := s.repo.Update(ctx, play)
	if err != nil {
		return domain.Play{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PlayService) DeletePlay(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *PlayService) resolveRelations(ctx context.Context, genreIDs, actorIDs []uint) ([]domain.Genre, []domain.Actor, error) {
	var genres []domain.Genre
	if len(genreIDs) > 0 {
		found, err := s.genreRepo.FindByIDs(ctx, genreIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("s.genreRepo.FindByIDs -> %w", err)
		}
		if len(found) != len(dedupeIDs(genreIDs)) {
			return nil, nil, ErrGenreNotFound
		}
		genres = found
	}

	var actors []domain.Actor
	if len(actorIDs) > 0 {
		found, err := s.actorRepo.FindByIDs(ctx, actorIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("s.actorRepo.FindByIDs -> %w", err)
		}
		if len(found) != len(dedupeIDs(actorIDs)) {
			return nil, nil, ErrActorNotFound
		}
		actors = found
	}

	return genres, actors, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
