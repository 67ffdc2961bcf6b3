package domain

import (
	"fmt"
	"time"
)

// Reservation groups the tickets a user booked in one transaction. The owner
// is fixed at creation from the authenticated caller and created_at is set
// once by the store.
type Reservation struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

// Ticket is a claim on one (row, seat) for one performance.
type Ticket struct {
	ID            uint `json:"id"`
	Row           int  `json:"row"`
	Seat          int  `json:"seat"`
	PerformanceID uint `json:"performance"`
}

// Label is the display form of a sold seat, e.g. "Row: 2 Seat: 5".
func (t Ticket) Label() string {
	return fmt.Sprintf("Row: %d Seat: %d", t.Row, t.Seat)
}
