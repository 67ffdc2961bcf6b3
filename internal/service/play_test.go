package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

type fakePlayRepo struct {
	created domain.Play
}

func (f *fakePlayRepo) Create(_ context.Context, play domain.Play) (domain.Play, error) {
	f.created = play

	return play, nil
}

func (f *fakePlayRepo) FindAll(_ context.Context, _ repository.PlayFilter) ([]domain.Play, error) {
	return nil, nil
}

func (f *fakePlayRepo) FindByID(_ context.Context, _ uint) (domain.Play, error) {
	return domain.Play{}, nil
}

func (f *fakePlayRepo) Update(_ context.Context, play domain.Play) (domain.Play, error) {
	return play, nil
}

func (f *fakePlayRepo) Delete(_ context.Context, _ uint) error {
	return nil
}

type fakeGenreLookup struct {
	genres map[uint]domain.Genre
}

func (f *fakeGenreLookup) FindByIDs(_ context.Context, ids []uint) ([]domain.Genre, error) {
	var found []domain.Genre
	seen := make(map[uint]bool)
	for _, id := range ids {
		if g, ok := f.genres[id]; ok && !seen[id] {
			seen[id] = true
			found = append(found, g)
		}
	}

	return found, nil
}

type fakeActorLookup struct {
	actors map[uint]domain.Actor
}

func (f *fakeActorLookup) FindByIDs(_ context.Context, ids []uint) ([]domain.Actor, error) {
	var found []domain.Actor
	seen := make(map[uint]bool)
	for _, id := range ids {
		if a, ok := f.actors[id]; ok && !seen[id] {
			seen[id] = true
			found = append(found, a)
		}
	}

	return found, nil
}

func TestPlayService_CreatePlay(t *testing.T) {
	genres := &fakeGenreLookup{genres: map[uint]domain.Genre{
		1: {ID: 1, Name: "Drama"},
		2: {ID: 2, Name: "Comedy"},
	}}
	actors := &fakeActorLookup{actors: map[uint]domain.Actor{
		1: {ID: 1, FirstName: "Maria", LastName: "Zankovetska"},
	}}

	t.Run("resolves genre and actor ids", func(t *testing.T) {
		repo := &fakePlayRepo{}
		svc := NewPlayService(repo, genres, actors)

		_, err := svc.CreatePlay(context.Background(), domain.Play{Title: "Hamlet"}, []uint{1, 2}, []uint{1})

		require.NoError(t, err)
		assert.Len(t, repo.created.Genres, 2)
		assert.Len(t, repo.created.Actors, 1)
	})

	t.Run("rejects an unknown genre id", func(t *testing.T) {
		svc := NewPlayService(&fakePlayRepo{}, genres, actors)

		_, err := svc.CreatePlay(context.Background(), domain.Play{Title: "Hamlet"}, []uint{1, 99}, nil)

		assert.ErrorIs(t, err, ErrGenreNotFound)
	})

	t.Run("rejects an unknown actor id", func(t *testing.T) {
		svc := NewPlayService(&fakePlayRepo{}, genres, actors)

		_, err := svc.CreatePlay(context.Background(), domain.Play{Title: "Hamlet"}, nil, []uint{42})

		assert.ErrorIs(t, err, ErrActorNotFound)
	})

	t.Run("tolerates duplicate ids in the request", func(t *testing.T) {
		repo := &fakePlayRepo{}
		svc := NewPlayService(repo, genres, actors)

		_, err := svc.CreatePlay(context.Background(), domain.Play{Title: "Hamlet"}, []uint{1, 1, 2}, nil)

		require.NoError(t, err)
		assert.Len(t, repo.created.Genres, 2)
	})

	t.Run("a play needs no relations", func(t *testing.T) {
		repo := &fakePlayRepo{}
		svc := NewPlayService(repo, genres, actors)

		_, err := svc.CreatePlay(context.Background(), domain.Play{Title: "Monologue"}, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, repo.created.Genres)
		assert.Empty(t, repo.created.Actors)
	})
}
