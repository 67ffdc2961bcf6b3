package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrPlayNotFound = errors.New("play not found")

type Play struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	PosterURL   string

	Genres []Genre `gorm:"many2many:play_genres;"`
	Actors []Actor `gorm:"many2many:play_actors;"`
}

// PlayFilter narrows a play listing. Title matches as a case-insensitive
// substring; the id slices filter by membership, ids within one slice are
// unioned.
type PlayFilter struct {
	Title    string
	GenreIDs []uint
	ActorIDs []uint
}

type PlayDAO struct {
	db *gorm.DB
}

func NewPlayDAO(db *gorm.DB) *PlayDAO {
	return &PlayDAO{
		db: db,
	}
}

// Insert creates the play and its join rows. Associated genres and actors
// must already exist; the caller resolves ids to rows beforehand.
func (d *PlayDAO) Insert(ctx context.Context, play Play) (Play, error) {
	result := d.db.WithContext(ctx).Create(&play)
	if result.Error != nil {
		return Play{}, result.Error
	}

	return d.FindByID(ctx, play.ID)
}

func (d *PlayDAO) FindAll(ctx context.Context, filter PlayFilter) ([]Play, error) {
	tx := d.db.WithContext(ctx).Model(&Play{}).
		Preload("Genres").
		Preload("Actors").
		Distinct("plays.*").
		Order("plays.id")

	if filter.Title != "" {
		tx = tx.Where("plays.title ILIKE ?", "%"+filter.Title+"%")
	}
	if len(filter.GenreIDs) > 0 {
		tx = tx.
			Joins("JOIN play_genres ON play_genres.play_id = plays.id").
			Where("play_genres.genre_id IN ?", filter.GenreIDs)
	}
	if len(filter.ActorIDs) > 0 {
		tx = tx.
			Joins("JOIN play_actors ON play_actors.play_id = plays.id").
			Where("play_actors.actor_id IN ?", filter.ActorIDs)
	}

	var plays []Play
	if err := tx.Find(&plays).Error; err != nil {
		return nil, err
	}

	return plays, nil
}

func (d *PlayDAO) FindByID(ctx context.Context, id uint) (Play, error) {
	var play Play

	result := d.db.WithContext(ctx).
		Preload("Genres").
		Preload("Actors").
		First(&play, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Play{}, ErrPlayNotFound
		}

		return Play{}, result.Error
	}

	return play, nil
}

// Update rewrites the play's fields and replaces both associations in one
// transaction.
func (d *PlayDAO) Update(ctx context.Context, play Play) (Play, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Play{ID: play.ID}).Updates(map[string]any{
			"title":       play.Title,
			"description": play.Description,
			"poster_url":  play.PosterURL,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPlayNotFound
		}

		if err := tx.Model(&Play{ID: play.ID}).Association("Genres").Replace(play.Genres); err != nil {
			return err
		}

		return tx.Model(&Play{ID: play.ID}).Association("Actors").Replace(play.Actors)
	})
	if err != nil {
		return Play{}, err
	}

	return d.FindByID(ctx, play.ID)
}

func (d *PlayDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Play{ID: id}).Association("Genres").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&Play{ID: id}).Association("Actors").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&Play{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPlayNotFound
		}

		return nil
	})
}
