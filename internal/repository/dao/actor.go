package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrActorNotFound = errors.New("actor not found")

type Actor struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
}

type ActorDAO struct {
	db *gorm.DB
}

func NewActorDAO(db *gorm.DB) *ActorDAO {
	return &ActorDAO{
		db: db,
	}
}

func (d *ActorDAO) Insert(ctx context.Context, actor Actor) (Actor, error) {
	result := d.db.WithContext(ctx).Create(&actor)
	if result.Error != nil {
		return Actor{}, result.Error
	}

	return actor, nil
}

func (d *ActorDAO) FindAll(ctx context.Context) ([]Actor, error) {
	var actors []Actor

	result := d.db.WithContext(ctx).Order("id").Find(&actors)
	if result.Error != nil {
		return nil, result.Error
	}

	return actors, nil
}

func (d *ActorDAO) FindByIDs(ctx context.Context, ids []uint) ([]Actor, error) {
	var actors []Actor

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&actors)
	if result.Error != nil {
		return nil, result.Error
	}

	return actors, nil
}

func (d *ActorDAO) FindByID(ctx context.Context, id uint) (Actor, error) {
	var actor Actor

	result := d.db.WithContext(ctx).First(&actor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Actor{}, ErrActorNotFound
		}

		return Actor{}, result.Error
	}

	return actor, nil
}

func (d *ActorDAO) Update(ctx context.Context, actor Actor) (Actor, error) {
	result := d.db.WithContext(ctx).Model(&Actor{ID: actor.ID}).Updates(map[string]any{
		"first_name": actor.FirstName,
		"last_name":  actor.LastName,
	})
	if result.Error != nil {
		return Actor{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Actor{}, ErrActorNotFound
	}

	return d.FindByID(ctx, actor.ID)
}

func (d *ActorDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Actor{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActorNotFound
	}

	return nil
}
