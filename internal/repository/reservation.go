package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository/dao"
)

var ErrReservationNotFound = dao.ErrReservationNotFound

type ReservationDAO interface {
	InsertWithTickets(ctx context.Context, reservation dao.Reservation, tickets []dao.Ticket) (dao.Reservation, error)
	ReplaceTickets(ctx context.Context, reservationID uint, tickets []dao.Ticket) (dao.Reservation, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]dao.Reservation, error)
	FindByIDForUser(ctx context.Context, id, userID uint) (dao.Reservation, error)
	DeleteForUser(ctx context.Context, id, userID uint) error
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

// Create persists the reservation and its tickets atomically. The dao's seat
// conflict surfaces as *domain.SeatConflictError so callers can report the
// offending row and seat.
func (r *ReservationRepository) Create(ctx context.Context, userID uint, tickets []domain.Ticket) (domain.Reservation, error) {
	created, err := r.dao.InsertWithTickets(ctx, dao.Reservation{UserID: userID}, ticketsToDAO(tickets))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.InsertWithTickets -> %w", mapSeatConflict(err))
	}

	return reservationToDomain(created), nil
}

// ReplaceTickets swaps the reservation's whole ticket set in one transaction.
func (r *ReservationRepository) ReplaceTickets(ctx context.Context, reservationID uint, tickets []domain.Ticket) (domain.Reservation, error) {
	updated, err := r.dao.ReplaceTickets(ctx, reservationID, ticketsToDAO(tickets))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.ReplaceTickets -> %w", mapSeatConflict(err))
	}

	return reservationToDomain(updated), nil
}

func (r *ReservationRepository) FindAllByUserID(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	found, err := r.dao.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByUserID -> %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(found))
	for _, res := range found {
		reservations = append(reservations, reservationToDomain(res))
	}

	return reservations, nil
}

func (r *ReservationRepository) FindByIDForUser(ctx context.Context, id, userID uint) (domain.Reservation, error) {
	found, err := r.dao.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.FindByIDForUser -> %w", err)
	}

	return reservationToDomain(found), nil
}

func (r *ReservationRepository) DeleteForUser(ctx context.Context, id, userID uint) error {
	if err := r.dao.DeleteForUser(ctx, id, userID); err != nil {
		return fmt.Errorf("r.dao.DeleteForUser -> %w", err)
	}

	return nil
}

func mapSeatConflict(err error) error {
	var taken *dao.SeatTakenError
	if errors.As(err, &taken) {
		return &domain.SeatConflictError{Row: taken.Row, Seat: taken.Seat}
	}

	return err
}

func ticketsToDAO(tickets []domain.Ticket) []dao.Ticket {
	daoTickets := make([]dao.Ticket, 0, len(tickets))
	for _, t := range tickets {
		daoTickets = append(daoTickets, dao.Ticket{
			Row:           t.Row,
			Seat:          t.Seat,
			PerformanceID: t.PerformanceID,
		})
	}

	return daoTickets
}

func ticketToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:            t.ID,
		Row:           t.Row,
		Seat:          t.Seat,
		PerformanceID: t.PerformanceID,
	}
}

func reservationToDomain(res dao.Reservation) domain.Reservation {
	reservation := domain.Reservation{
		ID:        res.ID,
		UserID:    res.UserID,
		CreatedAt: res.CreatedAt,
		Tickets:   make([]domain.Ticket, 0, len(res.Tickets)),
	}
	for _, t := range res.Tickets {
		reservation.Tickets = append(reservation.Tickets, ticketToDomain(t))
	}

	return reservation
}
