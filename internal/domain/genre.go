package domain

type Genre struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
