package domain

import "time"

// PerformanceListing is the read model for performance lists: the
// performance plus its remaining seats, recomputed by the store on every
// read.
type PerformanceListing struct {
	Performance
	AvailableSeats int `json:"available_seats"`
}

// Performance is a single scheduled showing of a play in a hall.
type Performance struct {
	ID            uint        `json:"id"`
	PlayID        uint        `json:"play"`
	TheatreHallID uint        `json:"theatre_hall"`
	ShowTime      time.Time   `json:"show_time"`
	Play          Play        `json:"-"`
	TheatreHall   TheatreHall `json:"-"`
}
