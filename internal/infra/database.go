package infra

import (
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres connection pool and runs migrations.
func NewDatabase(dsn string, env string) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if env == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := migrate(db); err != nil {
		return nil, err
	}
	log.Info().Msg("database ready")
	return db, nil
}

func migrate(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on Postgres < 13.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.User{},
		&model.Court{},
		&model.InventoryCategory{},
		&model.InventoryItem{},
		&model.Booking{},
		&model.Sale{},
		&model.StockTransaction{},
	)
}
