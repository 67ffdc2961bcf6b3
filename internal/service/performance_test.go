package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository"
)

type fakePerformanceRepo struct {
	created   domain.Performance
	createErr error

	updated   domain.Performance
	updateErr error

	listings []domain.PerformanceListing
}

func (f *fakePerformanceRepo) Create(_ context.Context, _ domain.Performance) (domain.Performance, error) {
	return f.created, f.createErr
}

func (f *fakePerformanceRepo) FindAll(_ context.Context, _ repository.PerformanceFilter) ([]domain.PerformanceListing, error) {
	return f.listings, nil
}

func (f *fakePerformanceRepo) FindByID(_ context.Context, _ uint) (domain.Performance, error) {
	return domain.Performance{}, nil
}

func (f *fakePerformanceRepo) FindTakenSeats(_ context.Context, _ uint) ([]domain.Ticket, error) {
	return nil, nil
}

func (f *fakePerformanceRepo) Update(_ context.Context, _ domain.Performance) (domain.Performance, error) {
	return f.updated, f.updateErr
}

func (f *fakePerformanceRepo) Delete(_ context.Context, _ uint) error {
	return nil
}

type fakePlayLookup struct {
	err error
}

func (f *fakePlayLookup) FindByID(_ context.Context, _ uint) (domain.Play, error) {
	return domain.Play{}, f.err
}

type fakeHallLookup struct {
	err error
}

func (f *fakeHallLookup) FindByID(_ context.Context, _ uint) (domain.TheatreHall, error) {
	return domain.TheatreHall{}, f.err
}

func TestPerformanceService_SchedulePerformance(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)

	t.Run("rejects a show time in the past", func(t *testing.T) {
		svc := NewPerformanceService(&fakePerformanceRepo{}, &fakePlayLookup{}, &fakeHallLookup{})

		_, err := svc.SchedulePerformance(context.Background(), domain.Performance{
			PlayID:        1,
			TheatreHallID: 1,
			ShowTime:      time.Now().Add(-time.Hour),
		})

		assert.ErrorIs(t, err, ErrPastShowTime)
	})

	t.Run("rejects an unknown play", func(t *testing.T) {
		svc := NewPerformanceService(
			&fakePerformanceRepo{},
			&fakePlayLookup{err: repository.ErrPlayNotFound},
			&fakeHallLookup{},
		)

		_, err := svc.SchedulePerformance(context.Background(), domain.Performance{
			PlayID:        99,
			TheatreHallID: 1,
			ShowTime:      future,
		})

		assert.ErrorIs(t, err, ErrPlayNotFound)
	})

	t.Run("rejects an unknown hall", func(t *testing.T) {
		svc := NewPerformanceService(
			&fakePerformanceRepo{},
			&fakePlayLookup{},
			&fakeHallLookup{err: repository.ErrHallNotFound},
		)

		_, err := svc.SchedulePerformance(context.Background(), domain.Performance{
			PlayID:        1,
			TheatreHallID: 99,
			ShowTime:      future,
		})

		assert.ErrorIs(t, err, ErrHallNotFound)
	})

	t.Run("surfaces a schedule conflict from the store", func(t *testing.T) {
		svc := NewPerformanceService(
			&fakePerformanceRepo{createErr: ErrHallTimeTaken},
			&fakePlayLookup{},
			&fakeHallLookup{},
		)

		_, err := svc.SchedulePerformance(context.Background(), domain.Performance{
			PlayID:        1,
			TheatreHallID: 1,
			ShowTime:      future,
		})

		assert.ErrorIs(t, err, ErrHallTimeTaken)
	})

	t.Run("creates a valid performance", func(t *testing.T) {
		svc := NewPerformanceService(
			&fakePerformanceRepo{created: domain.Performance{ID: 5}},
			&fakePlayLookup{},
			&fakeHallLookup{},
		)

		created, err := svc.SchedulePerformance(context.Background(), domain.Performance{
			PlayID:        1,
			TheatreHallID: 1,
			ShowTime:      future,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(5), created.ID)
	})
}

func TestPerformanceService_UpdatePerformance(t *testing.T) {
	t.Run("applies the same schedule checks as create", func(t *testing.T) {
		svc := NewPerformanceService(&fakePerformanceRepo{}, &fakePlayLookup{}, &fakeHallLookup{})

		_, err := svc.UpdatePerformance(context.Background(), domain.Performance{
			ID:            5,
			PlayID:        1,
			TheatreHallID: 1,
			ShowTime:      time.Now().Add(-time.Minute),
		})

		assert.ErrorIs(t, err, ErrPastShowTime)
	})

	t.Run("surfaces a play conflict from the store", func(t *testing.T) {
		svc := NewPerformanceService(
			&fakePerformanceRepo{updateErr: ErrPlayTimeTaken},
			&fakePlayLookup{},
			&fakeHallLookup{},
		)

		_, err := svc.UpdatePerformance(context.Background(), domain.Performance{
			ID:            5,
			PlayID:        1,
			TheatreHallID: 1,
			ShowTime:      time.Now().Add(time.Hour),
		})

		assert.ErrorIs(t, err, ErrPlayTimeTaken)
	})
}

func TestPerformanceService_ListPerformances(t *testing.T) {
	svc := NewPerformanceService(
		&fakePerformanceRepo{listings: []domain.PerformanceListing{
			{Performance: domain.Performance{ID: 1}, AvailableSeats: 6},
		}},
		&fakePlayLookup{},
		&fakeHallLookup{},
	)

	listings, err := svc.ListPerformances(context.Background(), repository.PerformanceFilter{})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, 6, listings[0].AvailableSeats)
}
