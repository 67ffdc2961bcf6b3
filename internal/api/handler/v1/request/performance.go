package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreatePerformanceRequest struct {
	PlayID        uint      `json:"play"`
	TheatreHallID uint      `json:"theatre_hall"`
	ShowTime      time.Time `json:"show_time"`
}

func (req *CreatePerformanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PlayID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.TheatreHallID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.ShowTime, validation.Required),
	)
}
