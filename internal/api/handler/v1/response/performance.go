package response

import (
	"time"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
)

// PerformanceDetailResponse is the retrieve view: denormalized play title
// and hall name plus the labels of every sold seat, ordered row then seat.
type PerformanceDetailResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	TheatreHallName string    `json:"theatre_hall_name"`
	ShowTime        time.Time `json:"show_time"`
	TakenSeats      []string  `json:"taken_seats"`
}

func NewPerformanceDetail(performance domain.Performance, takenSeats []domain.Ticket) PerformanceDetailResponse {
	labels := make([]string, 0, len(takenSeats))
	for _, t := range takenSeats {
		labels = append(labels, t.Label())
	}

	return PerformanceDetailResponse{
		ID:              performance.ID,
		Title:           performance.Play.Title,
		TheatreHallName: performance.TheatreHall.Name,
		ShowTime:        performance.ShowTime,
		TakenSeats:      labels,
	}
}
