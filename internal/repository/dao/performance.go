package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrHallTimeTaken       = errors.New("the hall already has a performance at this time")
	ErrPlayTimeTaken       = errors.New("the play is already performed elsewhere at this time")
)

// Performance binds a play to a hall at a show time. Double booking of
// either the hall or the play is ruled out by the composite unique indexes;
// the service-level pre-checks exist only to attribute errors nicely.
type Performance struct {
	ID            uint        `gorm:"primaryKey"`
	PlayID        uint        `gorm:"not null;uniqueIndex:uni_performances_play_show_time"`
	Play          Play        `gorm:"constraint:OnDelete:CASCADE"`
	TheatreHallID uint        `gorm:"not null;uniqueIndex:uni_performances_hall_show_time"`
	TheatreHall   TheatreHall `gorm:"constraint:OnDelete:CASCADE"`
	ShowTime      time.Time   `gorm:"not null;uniqueIndex:uni_performances_play_show_time;uniqueIndex:uni_performances_hall_show_time"`

	Tickets []Ticket `gorm:"constraint:OnDelete:CASCADE"`
}

// PerformanceFilter narrows a performance listing by play ids or by the
// calendar date of the show time.
type PerformanceFilter struct {
	PlayIDs []uint
	Date    time.Time
}

// PerformanceListRow is the listing projection: the performance columns plus
// the seat availability computed by the store at query time.
type PerformanceListRow struct {
	ID             uint
	PlayID         uint
	TheatreHallID  uint
	ShowTime       time.Time
	AvailableSeats int
}

type PerformanceDAO struct {
	db *gorm.DB
}

func NewPerformanceDAO(db *gorm.DB) *PerformanceDAO {
	return &PerformanceDAO{
		db: db,
	}
}

func (d *PerformanceDAO) Insert(ctx context.Context, performance Performance) (Performance, error) {
	result := d.db.WithContext(ctx).Create(&performance)
	if result.Error != nil {
		return Performance{}, mapScheduleConflict(result.Error)
	}

	return d.FindByID(ctx, performance.ID)
}

// FindAll lists performances with available_seats derived in SQL:
// hall capacity minus the live ticket count. Never cached, never stored.
func (d *PerformanceDAO) FindAll(ctx context.Context, filter PerformanceFilter) ([]PerformanceListRow, error) {
	tx := d.db.WithContext(ctx).Model(&Performance{}).
		Select(`performances.id, performances.play_id, performances.theatre_hall_id, performances.show_time,
			theatre_halls.rows * theatre_halls.seats_in_row
				- (SELECT COUNT(*) FROM tickets WHERE tickets.performance_id = performances.id) AS available_seats`).
		Joins("JOIN theatre_halls ON theatre_halls.id = performances.theatre_hall_id").
		Order("performances.id")

	if len(filter.PlayIDs) > 0 {
		tx = tx.Where("performances.play_id IN ?", filter.PlayIDs)
	}
	if !filter.Date.IsZero() {
		tx = tx.Where("DATE(performances.show_time) = ?", filter.Date.Format("2006-01-02"))
	}

	var rows []PerformanceListRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *PerformanceDAO) FindByID(ctx context.Context, id uint) (Performance, error) {
	var performance Performance

	result := d.db.WithContext(ctx).
		Preload("Play").
		Preload("TheatreHall").
		First(&performance, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Performance{}, ErrPerformanceNotFound
		}

		return Performance{}, result.Error
	}

	return performance, nil
}

// FindTakenSeats returns the sold tickets of a performance ordered for
// display, row first then seat.
func (d *PerformanceDAO) FindTakenSeats(ctx context.Context, performanceID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Where("performance_id = ?", performanceID).
		Order(`"row", seat`).
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *PerformanceDAO) Update(ctx context.Context, performance Performance) (Performance, error) {
	result := d.db.WithContext(ctx).Model(&Performance{ID: performance.ID}).Updates(map[string]any{
		"play_id":         performance.PlayID,
		"theatre_hall_id": performance.TheatreHallID,
		"show_time":       performance.ShowTime,
	})
	if result.Error != nil {
		return Performance{}, mapScheduleConflict(result.Error)
	}
	if result.RowsAffected == 0 {
		return Performance{}, ErrPerformanceNotFound
	}

	return d.FindByID(ctx, performance.ID)
}

// Delete removes a performance; its tickets go with it through the cascade.
func (d *PerformanceDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Performance{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPerformanceNotFound
	}

	return nil
}

func mapScheduleConflict(err error) error {
	switch {
	case isUniqueViolation(err, "uni_performances_hall_show_time"):
		return ErrHallTimeTaken
	case isUniqueViolation(err, "uni_performances_play_show_time"):
		return ErrPlayTimeTaken
	default:
		return err
	}
}
