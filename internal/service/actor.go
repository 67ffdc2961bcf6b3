package service

import (
	"context"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

var ErrActorNotFound = repository.ErrActorNotFound

type ActorRepository interface {
	Create(ctx context.Context, actor domain.Actor) (domain.Actor, error)
	FindAll(ctx context.Context) ([]domain.Actor, error)
	FindByID(ctx context.Context, id uint) (domain.Actor, error)
	Update(ctx context.Context, actor domain.Actor) (domain.Actor, error)
	Delete(ctx context.Context, id uint) error
}

type ActorService struct {
	repo ActorRepository
}

func NewActorService(repo ActorRepository) *ActorService {
	return &ActorService{
		repo: repo,
	}
}

func (s *ActorService) CreateActor(ctx context.Context, actor domain.Actor) (domain.Actor, error) {
	created, err := s.repo.Create(ctx, actor)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActorService) ListActors(ctx context.Context) ([]domain.Actor, error) {
	actors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return actors, nil
}

func (s *ActorService) GetActor(ctx context.Context, id uint) (domain.Actor, error) {
	actor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return actor, nil
}

func (s *ActorService) UpdateActor(ctx context.Context, actor domain.Actor) (domain.Actor, error) {
	updated, err := s.repo.Update(ctx, actor)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ActorService) DeleteActor(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
