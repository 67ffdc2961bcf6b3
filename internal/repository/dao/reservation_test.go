package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationDAO_InsertWithTickets(t *testing.T) {
	db := requireTestDB(t)

	user := seedUser(t, db, "buyer@example.com")
	hall := seedHall(t, db, 2, 3)
	play := seedPlay(t, db, "Hamlet")
	performance := seedPerformance(t, db, play.ID, hall.ID, time.Now().Add(24*time.Hour))

	d := NewReservationDAO(db)

	t.Run("books all tickets as one unit", func(t *testing.T) {
		created, err := d.InsertWithTickets(context.Background(), Reservation{UserID: user.ID}, []Ticket{
			{Row: 2, Seat: 1, PerformanceID: performance.ID},
			{Row: 1, Seat: 1, PerformanceID: performance.ID},
		})

		require.NoError(t, err)
		require.Len(t, created.Tickets, 2)
		// Tickets come back ordered by row then seat, not insertion order.
		assert.Equal(t, 1, created.Tickets[0].Row)
		assert.Equal(t, 2, created.Tickets[1].Row)
	})

	t.Run("a taken seat fails with the conflicting ticket", func(t *testing.T) {
		_, err := d.InsertWithTickets(context.Background(), Reservation{UserID: user.ID}, []Ticket{
			{Row: 1, Seat: 1, PerformanceID: performance.ID},
		})

		var taken *SeatTakenError
		require.ErrorAs(t, err, &taken)
		assert.Equal(t, 1, taken.Row)
		assert.Equal(t, 1, taken.Seat)
	})

	t.Run("a conflict on the last ticket rolls back the whole booking", func(t *testing.T) {
		var ticketsBefore, reservationsBefore int64
		require.NoError(t, db.Model(&Ticket{}).Count(&ticketsBefore).Error)
		require.NoError(t, db.Model(&Reservation{}).Count(&reservationsBefore).Error)

		_, err := d.InsertWithTickets(context.Background(), Reservation{UserID: user.ID}, []Ticket{
			{Row: 1, Seat: 2, PerformanceID: performance.ID},
			{Row: 1, Seat: 3, PerformanceID: performance.ID},
			{Row: 2, Seat: 1, PerformanceID: performance.ID}, // already sold
		})

		var taken *SeatTakenError
		require.ErrorAs(t, err, &taken)

		var ticketsAfter, reservationsAfter int64
		require.NoError(t, db.Model(&Ticket{}).Count(&ticketsAfter).Error)
		require.NoError(t, db.Model(&Reservation{}).Count(&reservationsAfter).Error)
		assert.Equal(t, ticketsBefore, ticketsAfter)
		assert.Equal(t, reservationsBefore, reservationsAfter)
	})
}

func TestReservationDAO_ReplaceTickets(t *testing.T) {
	db := requireTestDB(t)

	user := seedUser(t, db, "buyer@example.com")
	rival := seedUser(t, db, "rival@example.com")
	hall := seedHall(t, db, 2, 3)
	play := seedPlay(t, db, "Hamlet")
	performance := seedPerformance(t, db, play.ID, hall.ID, time.Now().Add(24*time.Hour))

	d := NewReservationDAO(db)

	mine, err := d.InsertWithTickets(context.Background(), Reservation{UserID: user.ID}, []Ticket{
		{Row: 1, Seat: 1, PerformanceID: performance.ID},
	})
	require.NoError(t, err)

	_, err = d.InsertWithTickets(context.Background(), Reservation{UserID: rival.ID}, []Ticket{
		{Row: 2, Seat: 2, PerformanceID: performance.ID},
	})
	require.NoError(t, err)

	t.Run("swaps the full set", func(t *testing.T) {
		updated, err := d.ReplaceTickets(context.Background(), mine.ID, []Ticket{
			{Row: 1, Seat: 2, PerformanceID: performance.ID},
			{Row: 1, Seat: 3, PerformanceID: performance.ID},
		})

		require.NoError(t, err)
		require.Len(t, updated.Tickets, 2)
		assert.Equal(t, 2, updated.Tickets[0].Seat)
		assert.Equal(t, 3, updated.Tickets[1].Seat)
	})

	t.Run("replacing within the same reservation can reuse its own seats", func(t *testing.T) {
		updated, err := d.ReplaceTickets(context.Background(), mine.ID, []Ticket{
			{Row: 1, Seat: 2, PerformanceID: performance.ID},
		})

		require.NoError(t, err)
		require.Len(t, updated.Tickets, 1)
	})

	t.Run("a conflicting replacement restores the old set", func(t *testing.T) {
		_, err := d.ReplaceTickets(context.Background(), mine.ID, []Ticket{
			{Row: 2, Seat: 2, PerformanceID: performance.ID}, // rival's seat
		})

		var taken *SeatTakenError
		require.ErrorAs(t, err, &taken)

		current, err := d.FindByIDForUser(context.Background(), mine.ID, user.ID)
		require.NoError(t, err)
		require.Len(t, current.Tickets, 1)
		assert.Equal(t, 1, current.Tickets[0].Row)
		assert.Equal(t, 2, current.Tickets[0].Seat)
	})
}

func TestReservationDAO_OwnerScoping(t *testing.T) {
	db := requireTestDB(t)

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")
	hall := seedHall(t, db, 2, 3)
	play := seedPlay(t, db, "Hamlet")
	performance := seedPerformance(t, db, play.ID, hall.ID, time.Now().Add(24*time.Hour))

	d := NewReservationDAO(db)

	reservation, err := d.InsertWithTickets(context.Background(), Reservation{UserID: owner.ID}, []Ticket{
		{Row: 1, Seat: 1, PerformanceID: performance.ID},
	})
	require.NoError(t, err)

	t.Run("someone else's reservation reads as missing", func(t *testing.T) {
		_, err := d.FindByIDForUser(context.Background(), reservation.ID, stranger.ID)

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("only the owner can delete", func(t *testing.T) {
		err := d.DeleteForUser(context.Background(), reservation.ID, stranger.ID)
		assert.ErrorIs(t, err, ErrReservationNotFound)

		err = d.DeleteForUser(context.Background(), reservation.ID, owner.ID)
		require.NoError(t, err)
	})

	t.Run("deleting releases the seats", func(t *testing.T) {
		_, err := d.InsertWithTickets(context.Background(), Reservation{UserID: stranger.ID}, []Ticket{
			{Row: 1, Seat: 1, PerformanceID: performance.ID},
		})

		assert.NoError(t, err)
	})
}
