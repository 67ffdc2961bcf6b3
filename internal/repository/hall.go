package repository

import (
	"context"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository/dao"
)

var ErrHallNotFound = dao.ErrHallNotFound

type TheatreHallDAO interface {
	Insert(ctx context.Context, hall dao.TheatreHall) (dao.TheatreHall, error)
	FindAll(ctx context.Context) ([]dao.TheatreHall, error)
	FindByID(ctx context.Context, id uint) (dao.TheatreHall, error)
	Update(ctx context.Context, hall dao.TheatreHall) (dao.TheatreHall, error)
	Delete(ctx context.Context, id uint) error
}

type TheatreHallRepository struct {
	dao TheatreHallDAO
}

func NewTheatreHallRepository(dao TheatreHallDAO) *TheatreHallRepository {
	return &TheatreHallRepository{
		dao: dao,
	}
}

func (r *TheatreHallRepository) Create(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error) {
	created, err := r.dao.Insert(ctx, hallToDAO(hall))
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return hallToDomain(created), nil
}

func (r *TheatreHallRepository) FindAll(ctx context.Context) ([]domain.TheatreHall, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	halls := make([]domain.TheatreHall, 0, len(found))
	for _, h := range found {
		halls = append(halls, hallToDomain(h))
	}

	return halls, nil
}

func (r *TheatreHallRepository) FindByID(ctx context.Context, id uint) (domain.TheatreHall, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return hallToDomain(found), nil
}

func (r *TheatreHallRepository) Update(ctx context.Context, hall domain.TheatreHall) (domain.TheatreHall, error) {
	updated, err := r.dao.Update(ctx, hallToDAO(hall))
	if err != nil {
		return domain.TheatreHall{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return hallToDomain(updated), nil
}

func (r *TheatreHallRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func hallToDAO(h domain.TheatreHall) dao.TheatreHall {
	return dao.TheatreHall{
		ID:         h.ID,
		Name:       h.Name,
		Rows:       h.Rows,
		SeatsInRow: h.SeatsInRow,
	}
}

func hallToDomain(h dao.TheatreHall) domain.TheatreHall {
	return domain.TheatreHall{
		ID:         h.ID,
		Name:       h.Name,
		Rows:       h.Rows,
		SeatsInRow: h.SeatsInRow,
	}
}
