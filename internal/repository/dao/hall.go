package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrHallNotFound = errors.New("theatre hall not found")

// TheatreHall stores only the hall's shape. Capacity is derived at read time,
// never persisted.
type TheatreHall struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Rows       int    `gorm:"not null"`
	SeatsInRow int    `gorm:"not null"`
}

type TheatreHallDAO struct {
	db *gorm.DB
}

func NewTheatreHallDAO(db *gorm.DB) *TheatreHallDAO {
	return &TheatreHallDAO{
		db: db,
	}
}

func (d *TheatreHallDAO) Insert(ctx context.Context, hall TheatreHall) (TheatreHall, error) {
	result := d.db.WithContext(ctx).Create(&hall)
	if result.Error != nil {
		return TheatreHall{}, result.Error
	}

	return hall, nil
}

func (d *TheatreHallDAO) FindAll(ctx context.Context) ([]TheatreHall, error) {
	var halls []TheatreHall

	result := d.db.WithContext(ctx).Order("id").Find(&halls)
	if result.Error != nil {
		return nil, result.Error
	}

	return halls, nil
}

func (d *TheatreHallDAO) FindByID(ctx context.Context, id uint) (TheatreHall, error) {
	var hall TheatreHall

	result := d.db.WithContext(ctx).First(&hall, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TheatreHall{}, ErrHallNotFound
		}

		return TheatreHall{}, result.Error
	}

	return hall, nil
}

func (d *TheatreHallDAO) Update(ctx context.Context, hall TheatreHall) (TheatreHall, error) {
	result := d.db.WithContext(ctx).Model(&TheatreHall{ID: hall.ID}).Updates(map[string]any{
		"name":         hall.Name,
		"rows":         hall.Rows,
		"seats_in_row": hall.SeatsInRow,
	})
	if result.Error != nil {
		return TheatreHall{}, result.Error
	}
	if result.RowsAffected == 0 {
		return TheatreHall{}, ErrHallNotFound
	}

	return d.FindByID(ctx, hall.ID)
}

func (d *TheatreHallDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&TheatreHall{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHallNotFound
	}

	return nil
}
