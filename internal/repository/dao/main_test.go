package dao

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB stays nil when no Docker daemon is reachable; every test starts
// with requireTestDB and skips in that case.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker is not available, skipping store tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=theatre_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=postgres password=secret dbname=theatre_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	pool.MaxWait = 2 * time.Minute
	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}
		testDB = db

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}

		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func requireTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testDB == nil {
		t.Skip("docker is not available")
	}

	err := testDB.Exec(`TRUNCATE users, actors, genres, plays, play_genres, play_actors,
		theatre_halls, performances, reservations, tickets RESTART IDENTITY CASCADE`).Error
	require.NoError(t, err)

	return testDB
}

func seedUser(t *testing.T, db *gorm.DB, email string) User {
	t.Helper()

	user := User{Email: email, Password: "irrelevant-hash"}
	require.NoError(t, db.Create(&user).Error)

	return user
}

func seedHall(t *testing.T, db *gorm.DB, rows, seatsInRow int) TheatreHall {
	t.Helper()

	hall := TheatreHall{Name: "Main Stage", Rows: rows, SeatsInRow: seatsInRow}
	require.NoError(t, db.Create(&hall).Error)

	return hall
}

func seedPlay(t *testing.T, db *gorm.DB, title string) Play {
	t.Helper()

	play := Play{Title: title, Description: "test play"}
	require.NoError(t, db.Create(&play).Error)

	return play
}

func seedPerformance(t *testing.T, db *gorm.DB, playID, hallID uint, showTime time.Time) Performance {
	t.Helper()

	performance := Performance{PlayID: playID, TheatreHallID: hallID, ShowTime: showTime}
	require.NoError(t, db.Create(&performance).Error)

	return performance
}
