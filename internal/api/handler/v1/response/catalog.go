package response

import "github.com/mhrytsenko/theatre-booking-api/internal/domain"

// ActorDetailResponse is the retrieve view of an actor: the display name
// replaces the raw name fields.
type ActorDetailResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

func NewActorDetail(actor domain.Actor) ActorDetailResponse {
	return ActorDetailResponse{
		ID:       actor.ID,
		FullName: actor.FullName(),
	}
}

// TheatreHallDetailResponse adds the derived capacity to the retrieve view.
type TheatreHallDetailResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

func NewTheatreHallDetail(hall domain.TheatreHall) TheatreHallDetailResponse {
	return TheatreHallDetailResponse{
		ID:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}

// PlayResponse is the list/write view: relations as id lists.
type PlayResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PosterURL   string `json:"poster_url,omitempty"`
	Genres      []uint `json:"genres"`
	Actors      []uint `json:"actors"`
}

func NewPlay(play domain.Play) PlayResponse {
	resp := PlayResponse{
		ID:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		PosterURL:   play.PosterURL,
		Genres:      make([]uint, 0, len(play.Genres)),
		Actors:      make([]uint, 0, len(play.Actors)),
	}
	for _, g := range play.Genres {
		resp.Genres = append(resp.Genres, g.ID)
	}
	for _, a := range play.Actors {
		resp.Actors = append(resp.Actors, a.ID)
	}

	return resp
}

func NewPlays(plays []domain.Play) []PlayResponse {
	resp := make([]PlayResponse, 0, len(plays))
	for _, p := range plays {
		resp = append(resp, NewPlay(p))
	}

	return resp
}

// PlayDetailResponse expands relations to genre names and actor full names.
type PlayDetailResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
}

func NewPlayDetail(play domain.Play) PlayDetailResponse {
	resp := PlayDetailResponse{
		ID:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		PosterURL:   play.PosterURL,
		Genres:      make([]string, 0, len(play.Genres)),
		Actors:      make([]string, 0, len(play.Actors)),
	}
	for _, g := range play.Genres {
		resp.Genres = append(resp.Genres, g.Name)
	}
	for _, a := range play.Actors {
		resp.Actors = append(resp.Actors, a.FullName())
	}

	return resp
}
