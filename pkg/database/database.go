package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"coldmart/internal/models"
)

// Open creates the in-memory sqlite database that backs the whole server.
// The dataset lives for the process lifetime only; every boot starts from a
// fresh schema and reseeds. The connection pool is pinned to a single
// connection so handler and simulator writes serialize on one writer.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema for all domain entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Warehouse{},
		&models.Zone{},
		&models.Location{},
		&models.Product{},
		&models.Lot{},
		&models.Inventory{},
		&models.Sensor{},
		&models.Alert{},
		&models.InboundOrder{},
		&models.InboundLine{},
		&models.OutboundOrder{},
		&models.OutboundLine{},
		&models.User{},
		&models.Device{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// OpenTest creates a private in-memory database for a single test.
func OpenTest() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
