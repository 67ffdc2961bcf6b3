package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEmptyTickets = errors.New("tickets must contain at least one ticket")

type TicketRequest struct {
	Row           int  `json:"row"`
	Seat          int  `json:"seat"`
	PerformanceID uint `json:"performance"`
}

func (req TicketRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Row, validation.Required, validation.Min(1)),
		validation.Field(&req.Seat, validation.Required, validation.Min(1)),
		validation.Field(&req.PerformanceID, validation.Required, validation.Min(uint(1))),
	)
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}

func (req *CreateReservationRequest) Validate() error {
	if len(req.Tickets) == 0 {
		return errEmptyTickets
	}

	for _, ticket := range req.Tickets {
		if err := ticket.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// UpdateReservationRequest distinguishes "tickets omitted" (leave the set
// unchanged) from "tickets present but empty" (rejected; an empty
// reservation would be indistinguishable from a deleted one).
type UpdateReservationRequest struct {
	Tickets *[]TicketRequest `json:"tickets"`
}

func (req *UpdateReservationRequest) Validate() error {
	if req.Tickets == nil {
		return nil
	}

	if len(*req.Tickets) == 0 {
		return errEmptyTickets
	}

	for _, ticket := range *req.Tickets {
		if err := ticket.Validate(); err != nil {
			return err
		}
	}

	return nil
}
