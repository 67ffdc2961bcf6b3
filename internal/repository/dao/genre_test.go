package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreDAO_Insert(t *testing.T) {
	db := requireTestDB(t)
	d := NewGenreDAO(db)

	_, err := d.Insert(context.Background(), Genre{Name: "Drama"})
	require.NoError(t, err)

	t.Run("names are unique ignoring case", func(t *testing.T) {
		_, err := d.Insert(context.Background(), Genre{Name: "drama"})
		assert.ErrorIs(t, err, ErrGenreNameTaken)

		_, err = d.Insert(context.Background(), Genre{Name: "DRAMA"})
		assert.ErrorIs(t, err, ErrGenreNameTaken)
	})

	t.Run("a different name is fine", func(t *testing.T) {
		created, err := d.Insert(context.Background(), Genre{Name: "Comedy"})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})
}

func TestGenreDAO_Update(t *testing.T) {
	db := requireTestDB(t)
	d := NewGenreDAO(db)

	drama, err := d.Insert(context.Background(), Genre{Name: "Drama"})
	require.NoError(t, err)
	_, err = d.Insert(context.Background(), Genre{Name: "Comedy"})
	require.NoError(t, err)

	t.Run("renaming onto a taken name fails", func(t *testing.T) {
		_, err := d.Update(context.Background(), Genre{ID: drama.ID, Name: "comedy"})

		assert.ErrorIs(t, err, ErrGenreNameTaken)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := d.Update(context.Background(), Genre{ID: 9999, Name: "Tragedy"})

		assert.ErrorIs(t, err, ErrGenreNotFound)
	})

	t.Run("renames", func(t *testing.T) {
		updated, err := d.Update(context.Background(), Genre{ID: drama.ID, Name: "Tragedy"})

		require.NoError(t, err)
		assert.Equal(t, "Tragedy", updated.Name)
	})
}

func TestUserDAO_Insert(t *testing.T) {
	db := requireTestDB(t)
	d := NewUserDAO(db)

	_, err := d.Insert(context.Background(), User{Email: "user@example.com", Password: "hash"})
	require.NoError(t, err)

	_, err = d.Insert(context.Background(), User{Email: "user@example.com", Password: "hash"})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}
