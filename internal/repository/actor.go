package repository

import (
	"context"
	"fmt"

	"github.com/mhrytsenko/theatre-booking-api/internal/domain"
	"github.com/mhrytsenko/theatre-booking-api/internal/repository/dao"
)

var ErrActorNotFound = dao.ErrActorNotFound

type ActorDAO interface {
	Insert(ctx context.Context, actor dao.Actor) (dao.Actor, error)
	FindAll(ctx context.Context) ([]dao.Actor, error)
	FindByID(ctx context.Context, id uint) (dao.Actor, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Actor, error)
	Update(ctx context.Context, actor dao.Actor) (dao.Actor, error)
	Delete(ctx context.Context, id uint) error
}

type ActorRepository struct {
	dao ActorDAO
}

func NewActorRepository(dao ActorDAO) *ActorRepository {
	return &ActorRepository{
		dao: dao,
	}
}

func (r *ActorRepository) Create(ctx context.Context, actor domain.Actor) (domain.Actor, error) {
	created, err := r.dao.Insert(ctx, actorToDAO(actor))
	if err != nil {
		return domain.Actor{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return actorToDomain(created), nil
}

func (r *ActorRepository) FindAll(ctx context.Context) ([]domain.Actor, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	actors := make([]domain.Actor, 0, len(found))
	for _, a := range found {
		actors = append(actors, actorToDomain(a))
	}

	return actors, nil
}

func (r *ActorRepository) FindByID(ctx context.Context, id uint) (domain.Actor, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return actorToDomain(found), nil
}

func (r *ActorRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Actor, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	actors := make([]domain.Actor, 0, len(found))
	for _, a := range found {
		actors = append(actors, actorToDomain(a))
	}

	return actors, nil
}

func (r *ActorRepository) Update(ctx context.Context, actor domain.Actor) (domain.Actor, error) {
	updated, err := r.dao.Update(ctx, actorToDAO(actor))
	if err != nil {
		return domain.Actor{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return actorToDomain(updated), nil
}

func (r *ActorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func actorToDAO(a domain.Actor) dao.Actor {
	return dao.Actor{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

func actorToDomain(a dao.Actor) domain.Actor {
	return domain.Actor{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
