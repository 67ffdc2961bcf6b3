package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrGenreNameTaken = errors.New("genre name already exists")
	ErrGenreNotFound  = errors.New("genre not found")
)

// Genre names are unique case-insensitively, enforced by the functional
// index uni_genres_name_lower created in InitTables.
type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

type GenreDAO struct {
	db *gorm.DB
}

func NewGenreDAO(db *gorm.DB) *GenreDAO {
	return &GenreDAO{
		db: db,
	}
}

func (d *GenreDAO) Insert(ctx context.Context, genre Genre) (Genre, error) {
	result := d.db.WithContext(ctx).Create(&genre)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_genres_name_lower") {
			return Genre{}, ErrGenreNameTaken
		}

		return Genre{}, result.Error
	}

	return genre, nil
}

func (d *GenreDAO) FindAll(ctx context.Context) ([]Genre, error) {
	var genres []Genre

	result := d.db.WithContext(ctx).Order("id").Find(&genres)
	if result.Error != nil {
		return nil, result.Error
	}

	return genres, nil
}

func (d *GenreDAO) FindByIDs(ctx context.Context, ids []uint) ([]Genre, error) {
	var genres []Genre

	result := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&genres)
	if result.Error != nil {
		return nil, result.Error
	}

	return genres, nil
}

func (d *GenreDAO) FindByID(ctx context.Context, id uint) (Genre, error) {
	var genre Genre

	result := d.db.WithContext(ctx).First(&genre, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Genre{}, ErrGenreNotFound
		}

		return Genre{}, result.Error
	}

	return genre, nil
}

func (d *GenreDAO) Update(ctx context.Context, genre Genre) (Genre, error) {
	result := d.db.WithContext(ctx).Model(&Genre{ID: genre.ID}).Update("name", genre.Name)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_genres_name_lower") {
			return Genre{}, ErrGenreNameTaken
		}

		return Genre{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Genre{}, ErrGenreNotFound
	}

	return d.FindByID(ctx, genre.ID)
}

func (d *GenreDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Genre{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGenreNotFound
	}

	return nil
}
