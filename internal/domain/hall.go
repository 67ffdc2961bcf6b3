package domain

type TheatreHall struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
}

// Capacity is always rows × seats per row. It is derived here and never
// stored, so it cannot drift from the hall's shape.
func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}
