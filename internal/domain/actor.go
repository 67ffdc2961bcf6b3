package domain

type Actor struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName is the display name, never stored.
func (a Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}
