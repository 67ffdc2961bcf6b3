package response

import "github.com/mhrytsenko/theatre-booking-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
