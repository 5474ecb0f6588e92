package database

import (
	"context"
	"fmt"

	"promptshq/internal/fixtures"
	"promptshq/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the sqlite database behind dsn. The default DSN is a
// shared in-memory database, so state lasts for the life of the process.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A second connection to a ":memory:" database would see an empty
	// schema, so the pool is pinned to one connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates the catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ContentItem{},
		&models.Submission{},
		&models.Draft{},
		&models.Favorite{},
		&models.Rating{},
		&models.AIModel{},
	)
}

// Open connects, migrates and seeds a store from the embedded fixtures.
func Open(ctx context.Context, dsn string) (*GormStore, *gorm.DB, error) {
	db, err := Connect(dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	fx, err := fixtures.Load()
	if err != nil {
		return nil, nil, err
	}
	store := NewGormStore(db)
	if err := store.Seed(ctx, fx); err != nil {
		return nil, nil, err
	}
	return store, db, nil
}
