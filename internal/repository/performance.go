package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository/dao"
)

var (
	ErrPerformanceNotFound = dao.ErrPerformanceNotFound
	ErrHallTimeTaken       = dao.ErrHallTimeTaken
	ErrPlayTimeTaken       = dao.ErrPlayTimeTaken
)

type PerformanceFilter struct {
	PlayIDs []uint
	Date    time.Time
}

type PerformanceDAO interface {
	Insert(ctx context.Context, performance dao.Performance) (dao.Performance, error)
	FindAll(ctx context.Context, filter dao.PerformanceFilter) ([]dao.PerformanceListRow, error)
	FindByID(ctx context.Context, id uint) (dao.Performance, error)
	FindTakenSeats(ctx context.Context, performanceID uint) ([]dao.Ticket, error)
	Update(ctx context.Context, performance dao.Performance) (dao.Performance, error)
	Delete(ctx context.Context, id uint) error
}

type PerformanceRepository struct {
	dao PerformanceDAO
}

func NewPerformanceRepository(dao PerformanceDAO) *PerformanceRepository {
	return &PerformanceRepository{
		dao: dao,
	}
}

func (r *PerformanceRepository) Create(ctx context.Context, performance domain.Performance) (domain.Performance, error) {
	created, err := r.dao.Insert(ctx, dao.Performance{
		PlayID:        performance.PlayID,
		TheatreHallID: performance.TheatreHallID,
		ShowTime:      performance.ShowTime,
	})
	if err != nil {
		return domain.Performance{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return performanceToDomain(created), nil
}

func (r *PerformanceRepository) FindAll(ctx context.Context, filter PerformanceFilter) ([]domain.PerformanceListing, error) {
	rows, err := r.dao.FindAll(ctx, dao.PerformanceFilter{
		PlayIDs: filter.PlayIDs,
		Date:    filter.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	listings := make([]domain.PerformanceListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, domain.PerformanceListing{
			Performance: domain.Performance{
				ID:            row.ID,
				PlayID:        row.PlayID,
				TheatreHallID: row.TheatreHallID,
				ShowTime:      row.ShowTime,
			},
			AvailableSeats: row.AvailableSeats,
		})
	}

	return listings, nil
}

func (r *PerformanceRepository) FindByID(ctx context.Context, id uint) (domain.Performance, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Performance{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return performanceToDomain(found), nil
}

// FindTakenSeats lists the sold seats of a performance ordered by row then
// seat, for the retrieve view's seat labels.
func (r *PerformanceRepository) FindTakenSeats(ctx context.Context, performanceID uint) ([]domain.Ticket, error) {
	tickets, err := r.dao.FindTakenSeats(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTakenSeats -> %w", err)
	}

	taken := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		taken = append(taken, ticketToDomain(t))
	}

	return taken, nil
}

func (r *PerformanceRepository) Update(ctx context.Context, performance domain.Performance) (domain.Performance, error) {
	updated, err := r.dao.Update(ctx, dao.Performance{
		ID:            performance.ID,
		PlayID:        performance.PlayID,
		TheatreHallID: performance.TheatreHallID,
		ShowTime:      performance.ShowTime,
	})
	if err != nil {
		return domain.Performance{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return performanceToDomain(updated), nil
}

func (r *PerformanceRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func performanceToDomain(p dao.Performance) domain.Performance {
	return domain.Performance{
		ID:            p.ID,
		PlayID:        p.PlayID,
		TheatreHallID: p.TheatreHallID,
		ShowTime:      p.ShowTime,
		Play:          playToDomain(p.Play),
		TheatreHall:   hallToDomain(p.TheatreHall),
	}
}
