package dao

import "gorm.io/gorm"

// InitTables migrates the schema. The case-insensitive uniqueness of genre
// names needs a functional index, which gorm struct tags cannot express, so
// it is created with raw DDL after the automigration.
func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&User{},
		&Actor{},
		&Genre{},
		&Play{},
		&TheatreHall{},
		&Performance{},
		&Reservation{},
		&Ticket{},
	)
	if err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uni_genres_name_lower ON genres (LOWER(name))`,
	).Error
}
