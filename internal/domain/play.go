package domain

type Play struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster_url,omitempty"`
	Genres      []Genre `json:"genres,omitempty"`
	Actors      []Actor `json:"actors,omitempty"`
}
