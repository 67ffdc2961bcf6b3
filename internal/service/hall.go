package service

import (
	"context"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

var ErrHallNotFound = repository.ErrHallNotFound

type TheatreHallRepository interface {
	Create(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error)
	FindAll(ctx context.Context) ([]domain.TheatreHall, error)
	FindByID(ctx context.Context, id uint) (domain.TheatreHall, error)
	Update(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error)
	Delete(ctx context.Context, id uint) error
}

type TheatreHallService struct {
	repo TheatreHallRepository
}

func NewTheatreHallService(repo TheatreHallRepository) *TheatreHallService {
	return &TheatreHallService{
		repo: repo,
	}
}

func (s *TheatreHallService) CreateHall(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error) {
	created, err := s.repo.Create(ctx, hall)
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TheatreHallService) ListHalls(ctx context.Context) ([]domain.TheatreHall, error) {
	halls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return halls, nil
}

func (s *TheatreHallService) GetHall(ctx context.Context, id uint) (domain.TheatreHall, error) {
	hall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return hall, nil
}

func (s *TheatreHallService) UpdateHall(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error) {
	updated, err := s.repo.Update(ctx, hall)
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TheatreHallService) DeleteHall(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
