package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

var (
	ErrReservationNotFound = repository.ErrReservationNotFound
	ErrNoTickets           = errors.New("a reservation must contain at least one ticket")
)

type ReservationRepository interface {
	Create(ctx context.Context, userID uint, tickets []domain.Ticket) (domain.Reservation, error)
	ReplaceTickets(ctx context.Context, reservationID uint, tickets []domain.Ticket) (domain.Reservation, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]domain.Reservation, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (domain.Reservation, error)
	DeleteForUser(ctx context.Context, id, userID uint) error
}

type ReservationPerformanceRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Performance, error)
}

// ReservationService is the booking engine's entry point. The owner's user
// id always comes from the authenticated request context, never from the
// payload, so a caller cannot book on behalf of someone else.
type ReservationService struct {
	repo     ReservationRepository
	perfRepo ReservationPerformanceRepository
}

func NewReservationService(repo ReservationRepository, perfRepo ReservationPerformanceRepository) *ReservationService {
	return &ReservationService{
		repo:     repo,
		perfRepo: perfRepo,
	}
}

// CreateReservation books all tickets for the user or none of them. Tickets
// are checked against their hall's geometry in caller order before the
// transactional insert; the first invalid or conflicting seat decides the
// reported error.
func (s *ReservationService) CreateReservation(ctx context.Context, userID uint, tickets []domain.Ticket) (domain.Reservation, error) {
	if len(tickets) == 0 {
		return domain.Reservation{}, ErrNoTickets
	}

	if err := s.validateGeometry(ctx, tickets); err != nil {
		return domain.Reservation{}, err
	}

	created, err := s.repo.Create(ctx, userID, tickets)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ReservationService) ListReservations(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByUserID -> %w", err)
	}

	return reservations, nil
}

func (s *ReservationService) GetReservation(ctx context.Context, id, userID uint) (domain.Reservation, error) {
	reservation, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByIDForUser -> %w", err)
	}

	return reservation, nil
}

// ReplaceTickets swaps the reservation's entire ticket set atomically. A
// conflict in the replacement set rolls everything back, leaving the
// original tickets in place.
func (s *ReservationService) ReplaceTickets(ctx context.Context, id, userID uint, tickets []domain.Ticket) (domain.Reservation, error) {
	if len(tickets) == 0 {
		return domain.Reservation{}, ErrNoTickets
	}

	// Ownership check up front: someone else's reservation reads as missing.
	if _, err := s.repo.FindByIDForUser(ctx, id, userID); err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByIDForUser -> %w", err)
	}

	if err := s.validateGeometry(ctx, tickets); err != nil {
		return domain.Reservation{}, err
	}

	updated, err := s.repo.ReplaceTickets(ctx, id, tickets)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.ReplaceTickets -> %w", err)
	}

	return updated, nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id, userID uint) error {
	if err := s.repo.DeleteForUser(ctx, id, userID); err != nil {
		return fmt.Errorf("s.repo.DeleteForUser -> %w", err)
	}

	return nil
}

// validateGeometry checks every ticket against the physical shape of its
// performance's hall, in the order supplied, failing fast on the first bad
// one. This is a pre-filter; the unique index still decides seat conflicts.
func (s *ReservationService) validateGeometry(ctx context.Context, tickets []domain.Ticket) error {
	performances := make(map[uint]domain.Performance, len(tickets))

	for _, ticket := range tickets {
		performance, ok := performances[ticket.PerformanceID]
		if !ok {
			var err error
			performance, err = s.perfRepo.FindByID(ctx, ticket.PerformanceID)
			if err != nil {
				if errors.Is(err, repository.ErrPerformanceNotFound) {
					return ErrPerformanceNotFound
				}

				return fmt.Errorf("s.perfRepo.FindByID -> %w", err)
			}
			performances[ticket.PerformanceID] = performance
		}

		if err := domain.ValidateSeat(ticket.Row, ticket.Seat, performance.TheatreHall); err != nil {
			return err
		}
	}

	return nil
}
