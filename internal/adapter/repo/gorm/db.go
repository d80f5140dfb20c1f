// Package gormrepo stores save slots in a relational database behind
// gorm, with postgres for deployments and sqlite for local play and
// tests.
package gormrepo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options selects the database backend.
type Options struct {
	// Type is "postgres" or "sqlite".
	Type string
	// URL is the postgres DSN.
	URL string
	// Path is the sqlite file path; empty means ":memory:".
	Path string
}

func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Type {
	case "postgres":
		dialector = postgres.Open(opts.URL)
	case "sqlite":
		path := opts.Path
		if path == "" {
			path = ":memory:"
		}
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", opts.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&SaveSlot{}); err != nil {
		return nil, fmt.Errorf("migrate save slots: %w", err)
	}
	return db, nil
}

// NewTestConnection opens a migrated in-memory sqlite database.
func NewTestConnection() (*gorm.DB, error) {
	return Open(Options{Type: "sqlite", Path: ":memory:"})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
