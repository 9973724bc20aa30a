package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

var log = logrus.New()

// Connect opens the database, waiting for it to come up when the service
// starts before Postgres is ready.
func Connect(dsn string) (*gorm.DB, error) {
	var conn *gorm.DB
	var err error

	deadline := time.Now().Add(30 * time.Second)
	backoff := 500 * time.Millisecond
	for {
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, err
		}
		log.WithError(err).Warn("postgres not ready yet, retrying")
		time.Sleep(backoff)
		if backoff < 5*time.Second {
			backoff *= 2
		}
	}

	return conn, nil
}

// Migrate updates the schema, adding any missing columns.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.Vacancy{},
		&models.Candidate{},
		&models.InternalNote{},
		&models.User{},
		&models.UserRole{},
	)
}
