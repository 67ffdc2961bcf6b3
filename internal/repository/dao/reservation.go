package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrReservationNotFound = errors.New("reservation not found")

// SeatTakenError reports the first ticket of a booking that lost the race
// for its seat. Raised from the unique index, so exactly one of two
// concurrent bookings for the same seat can ever succeed.
type SeatTakenError struct {
	Row  int
	Seat int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat is already taken (row %d, seat %d)", e.Row, e.Seat)
}

type Reservation struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"not null"`

	Tickets []Ticket `gorm:"constraint:OnDelete:CASCADE"`
}

type Ticket struct {
	ID            uint `gorm:"primaryKey"`
	Row           int  `gorm:"column:row;not null;uniqueIndex:uni_tickets_performance_row_seat,priority:2"`
	Seat          int  `gorm:"not null;uniqueIndex:uni_tickets_performance_row_seat,priority:3"`
	PerformanceID uint `gorm:"not null;uniqueIndex:uni_tickets_performance_row_seat,priority:1"`
	ReservationID uint `gorm:"not null;index"`
}

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

// InsertWithTickets creates the reservation and all its tickets as one unit.
// Tickets are inserted in caller order and the first conflict aborts the
// whole transaction, so a failed booking leaves neither tickets nor the
// reservation row behind.
func (d *ReservationDAO) InsertWithTickets(ctx context.Context, reservation Reservation, tickets []Ticket) (Reservation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		return insertTickets(tx, reservation.ID, tickets)
	})
	if err != nil {
		return Reservation{}, err
	}

	return d.findByID(ctx, reservation.ID)
}

// ReplaceTickets deletes every ticket of the reservation and recreates the
// new set inside one transaction. On any conflict the old set is restored by
// the rollback; the reservation is never left partially updated.
func (d *ReservationDAO) ReplaceTickets(ctx context.Context, reservationID uint, tickets []Ticket) (Reservation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reservation_id = ?", reservationID).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		return insertTickets(tx, reservationID, tickets)
	})
	if err != nil {
		return Reservation{}, err
	}

	return d.findByID(ctx, reservationID)
}

func insertTickets(tx *gorm.DB, reservationID uint, tickets []Ticket) error {
	for i := range tickets {
		ticket := Ticket{
			Row:           tickets[i].Row,
			Seat:          tickets[i].Seat,
			PerformanceID: tickets[i].PerformanceID,
			ReservationID: reservationID,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			if isUniqueViolation(err, "uni_tickets_performance_row_seat") {
				return &SeatTakenError{Row: ticket.Row, Seat: ticket.Seat}
			}

			return err
		}
	}

	return nil
}

func (d *ReservationDAO) FindAllByUserID(ctx context.Context, userID uint) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).
		Preload("Tickets", orderTickets).
		Where("user_id = ?", userID).
		Order("id").
		Find(&reservations)
	if result.Error != nil {
		return nil, result.Error
	}

	return reservations, nil
}

// FindByIDForUser fetches a reservation only if it belongs to the given
// user. Someone else's reservation is indistinguishable from a missing one.
func (d *ReservationDAO) FindByIDForUser(ctx context.Context, id, userID uint) (Reservation, error) {
	var reservation Reservation

	result := d.db.WithContext(ctx).
		Preload("Tickets", orderTickets).
		Where("id = ? AND user_id = ?", id, userID).
		First(&reservation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reservation{}, ErrReservationNotFound
		}

		return Reservation{}, result.Error
	}

	return reservation, nil
}

func (d *ReservationDAO) DeleteForUser(ctx context.Context, id, userID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&Reservation{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReservationNotFound
		}

		return tx.Where("reservation_id = ?", id).Delete(&Ticket{}).Error
	})
}

func (d *ReservationDAO) findByID(ctx context.Context, id uint) (Reservation, error) {
	var reservation Reservation

	result := d.db.WithContext(ctx).
		Preload("Tickets", orderTickets).
		First(&reservation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reservation{}, ErrReservationNotFound
		}

		return Reservation{}, result.Error
	}

	return reservation, nil
}

func orderTickets(db *gorm.DB) *gorm.DB {
	return db.Order(`"row", seat`)
}
