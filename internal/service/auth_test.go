package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

type fakeUserRepo struct {
	created   domain.User
	createErr error

	byEmail    domain.User
	byEmailErr error
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	f.created = user

	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, _ string) (domain.User, error) {
	return f.byEmail, f.byEmailErr
}

func TestAuthService_Register(t *testing.T) {
	t.Run("hashes the password and never grants staff", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewAuthService(repo)

		_, err := svc.Register(context.Background(), domain.User{
			Email:    "user@example.com",
			Password: "secret-pass1",
			IsStaff:  true,
		})

		require.NoError(t, err)
		assert.False(t, repo.created.IsStaff)
		assert.NotEqual(t, "secret-pass1", repo.created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.Password), []byte("secret-pass1")))
	})

	t.Run("propagates a duplicate email", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{createErr: repository.ErrUserEmailExists})

		_, err := svc.Register(context.Background(), domain.User{
			Email:    "taken@example.com",
			Password: "secret-pass1",
		})

		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass1"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{byEmailErr: repository.ErrUserNotFound})

		_, err := svc.Login(context.Background(), "nobody@example.com", "secret-pass1")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{
			byEmail: domain.User{Email: "user@example.com", Password: string(hash)},
		})

		_, err := svc.Login(context.Background(), "user@example.com", "not-the-password")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("valid credentials", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{
			byEmail: domain.User{ID: 3, Email: "user@example.com", Password: string(hash)},
		})

		user, err := svc.Login(context.Background(), "user@example.com", "secret-pass1")

		require.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
	})
}
