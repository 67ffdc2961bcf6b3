package domain

import "fmt"

// InvalidSeatError reports a (row, seat) pair that lies outside the physical
// shape of a hall. Field is either "row" or "seat".
type InvalidSeatError struct {
	Field string
	Value int
	Limit int
}

func (e *InvalidSeatError) Error() string {
	return fmt.Sprintf("%s %d is out of range, must be within [1, %d]", e.Field, e.Value, e.Limit)
}

// SeatConflictError reports a seat that is already sold for a performance.
type SeatConflictError struct {
	Row  int
	Seat int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat is already taken (row %d, seat %d)", e.Row, e.Seat)
}

// ValidateSeat checks that a (row, seat) pair exists in the given hall.
// It is a pure function, used both as the pre-filter in the reservation
// engine and on its own in tests; the storage-level unique constraint remains
// the authority for seat conflicts.
func ValidateSeat(row, seat int, hall TheatreHall) error {
	if row < 1 || row > hall.Rows {
		return &InvalidSeatError{Field: "row", Value: row, Limit: hall.Rows}
	}
	if seat < 1 || seat > hall.SeatsInRow {
		return &InvalidSeatError{Field: "seat", Value: seat, Limit: hall.SeatsInRow}
	}

	return nil
}
