package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  RegisterRequest{Email: "user@example.com", Password: "pass1234", ConfirmPassword: "pass1234"},
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Email: "user@example.com", Password: "pass1", ConfirmPassword: "pass1"},
			wantErr: errInvalidPassword,
		},
		{
			name:    "password without a digit",
			req:     RegisterRequest{Email: "user@example.com", Password: "passwords", ConfirmPassword: "passwords"},
			wantErr: errInvalidPassword,
		},
		{
			name:    "password without a letter",
			req:     RegisterRequest{Email: "user@example.com", Password: "12345678", ConfirmPassword: "12345678"},
			wantErr: errInvalidPassword,
		},
		{
			name:    "confirm password mismatch",
			req:     RegisterRequest{Email: "user@example.com", Password: "pass1234", ConfirmPassword: "pass12345"},
			wantErr: errConfirmPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed email", func(t *testing.T) {
		req := RegisterRequest{Email: "not-an-email", Password: "pass1234", ConfirmPassword: "pass1234"}

		assert.Error(t, req.Validate())
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := LoginRequest{Email: "user@example.com", Password: "pass1234"}

		assert.NoError(t, req.Validate())
	})

	t.Run("missing password", func(t *testing.T) {
		req := LoginRequest{Email: "user@example.com"}

		assert.Error(t, req.Validate())
	})
}
