package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_Validate(t *testing.T) {
	t.Run("requires at least one ticket", func(t *testing.T) {
		req := CreateReservationRequest{}

		assert.ErrorIs(t, req.Validate(), errEmptyTickets)
	})

	t.Run("checks every ticket", func(t *testing.T) {
		req := CreateReservationRequest{Tickets: []TicketRequest{
			{Row: 1, Seat: 1, PerformanceID: 1},
			{Row: 0, Seat: 1, PerformanceID: 1},
		}}

		assert.Error(t, req.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		req := CreateReservationRequest{Tickets: []TicketRequest{
			{Row: 1, Seat: 1, PerformanceID: 1},
		}}

		assert.NoError(t, req.Validate())
	})
}

func TestUpdateReservationRequest_Validate(t *testing.T) {
	t.Run("nil tickets means no change", func(t *testing.T) {
		req := UpdateReservationRequest{}

		assert.NoError(t, req.Validate())
	})

	t.Run("an explicit empty list is rejected", func(t *testing.T) {
		empty := []TicketRequest{}
		req := UpdateReservationRequest{Tickets: &empty}

		assert.ErrorIs(t, req.Validate(), errEmptyTickets)
	})

	t.Run("valid replacement set", func(t *testing.T) {
		tickets := []TicketRequest{{Row: 2, Seat: 3, PerformanceID: 1}}
		req := UpdateReservationRequest{Tickets: &tickets}

		assert.NoError(t, req.Validate())
	})
}
