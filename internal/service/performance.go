package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

var (
	ErrPerformanceNotFound = repository.ErrPerformanceNotFound
	ErrHallTimeTaken       = repository.ErrHallTimeTaken
	ErrPlayTimeTaken       = repository.ErrPlayTimeTaken
	ErrPastShowTime        = errors.New("show time must be in the future")
)

type PerformanceRepository interface {
	Create(ctx context.Context, performance domain.Performance) (domain.Performance, error)
	FindAll(ctx context.Context, filter repository.PerformanceFilter) ([]domain.PerformanceListing, error)
	FindByID(ctx context.Context, id uint) (domain.Performance, error)
	FindTakenSeats(ctx context.Context, performanceID uint) ([]domain.Ticket, error)
	Update(ctx context.Context, performance domain.Performance) (domain.Performance, error)
	Delete(ctx context.Context, id uint) error
}

type PerformancePlayRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Play, error)
}

type PerformanceHallRepository interface {
	FindByID(ctx context.Context, id uint) (domain.TheatreHall, error)
}

type PerformanceService struct {
	repo     PerformanceRepository
	playRepo PerformancePlayRepository
	hallRepo PerformanceHallRepository
}

func NewPerformanceService(repo PerformanceRepository, playRepo PerformancePlayRepository, hallRepo PerformanceHallRepository) *PerformanceService {
	return &PerformanceService{
		repo:     repo,
		playRepo: playRepo,
		hallRepo: hallRepo,
	}
}

// SchedulePerformance validates the schedule and persists. The composite
// unique indexes on (hall, show_time) and (play, show_time) are what actually
// prevents double booking; the lookups here exist to return precise errors.
func (s *PerformanceService) SchedulePerformance(ctx context.Context, performance domain.Performance) (domain.Performance, error) {
	if err := s.validateSchedule(ctx, performance); err != nil {
		return domain.Performance{}, err
	}

	created, err := s.repo.Create(ctx, performance)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PerformanceService) ListPerformances(ctx context.Context, filter repository.PerformanceFilter) ([]domain.PerformanceListing, error) {
	listings, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return listings, nil
}

func (s *PerformanceService) GetPerformance(ctx context.Context, id uint) (domain.Performance, []domain.Ticket, error) {
	performance, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Performance{}, nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	takenSeats, err := s.repo.FindTakenSeats(ctx, id)
	if err != nil {
		return domain.Performance{}, nil, fmt.Errorf("s.repo.FindTakenSeats -> %w", err)
	}

	return performance, takenSeats, nil
}

func (s *PerformanceService) UpdatePerformance(ctx context.Context, performance domain.Performance) (domain.Performance, error) {
	if err := s.validateSchedule(ctx, performance); err != nil {
		return domain.Performance{}, err
	}

	updated, err := s.repo.Update(ctx, performance)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeletePerformance cancels a showing; sold tickets go away with it.
func (s *PerformanceService) DeletePerformance(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *PerformanceService) validateSchedule(ctx context.Context, performance domain.Performance) error {
	if !performance.ShowTime.After(time.Now()) {
		return ErrPastShowTime
	}

	if _, err := s.playRepo.FindByID(ctx, performance.PlayID); err != nil {
		if errors.Is(err, repository.ErrPlayNotFound) {
			return ErrPlayNotFound
		}

		return fmt.Errorf("s.playRepo.FindByID -> %w", err)
	}

	if _, err := s.hallRepo.FindByID(ctx, performance.TheatreHallID); err != nil {
		if errors.Is(err, repository.ErrHallNotFound) {
			return ErrHallNotFound
		}

		return fmt.Errorf("s.hallRepo.FindByID -> %w", err)
	}

	return nil
}
