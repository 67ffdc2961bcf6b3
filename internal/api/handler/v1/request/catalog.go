package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateActorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (req *CreateActorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
	)
}

type CreateGenreRequest struct {
	Name string `json:"name"`
}

func (req *CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreatePlayRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PosterURL   string `json:"poster_url"`
	Genres      []uint `json:"genres"`
	Actors      []uint `json:"actors"`
}

func (req *CreatePlayRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.PosterURL, is.URL),
	)
}

type CreateTheatreHallRequest struct {
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
}

func (req *CreateTheatreHallRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Rows, validation.Required, validation.Min(1)),
		validation.Field(&req.SeatsInRow, validation.Required, validation.Min(1)),
	)
}
