package datastore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/RustycyberShackleford/WellAtlas2.7.2/internal/conf"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteStore implements Interface for SQLite
type SQLiteStore struct {
	DataStore
	Settings *conf.Settings
}

// Open sets up the SQLite database connection, migrates the schema and seeds
// the default settings.
func (store *SQLiteStore) Open() error {
	dbPath := store.Settings.SQLitePath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	gormLogLevel := logger.Silent
	if store.Settings.Debug {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}

	store.DB = db
	if err := performAutoMigration(db); err != nil {
		return err
	}

	if err := store.seedDefaults(); err != nil {
		return err
	}

	slog.Debug("sqlite database opened", "path", dbPath)
	return nil
}

// Close closes the underlying SQL connection pool.
func (store *SQLiteStore) Close() error {
	if store.DB == nil {
		return nil
	}
	sqlDB, err := store.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to fetch database handle: %w", err)
	}
	return sqlDB.Close()
}

// performAutoMigration creates or updates the four application tables.
func performAutoMigration(db *gorm.DB) error {
	if err := db.AutoMigrate(&Site{}, &Photo{}, &Note{}, &Setting{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}

// seedDefaults inserts the header title setting on first start.
func (store *SQLiteStore) seedDefaults() error {
	seed := Setting{Key: "header_title", Value: conf.DefaultHeaderTitle}
	if err := store.DB.Where(Setting{Key: seed.Key}).FirstOrCreate(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	return nil
}
