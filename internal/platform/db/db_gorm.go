// Package db opens the gorm database connection and runs migrations.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "cafe_backend/internal/feature/auth/domain/entity"
	"cafe_backend/internal/feature/auth/adapters"
	cafeentity "cafe_backend/internal/feature/cafes/domain/entity"
	reviewentity "cafe_backend/internal/feature/reviews/domain/entity"
)

const (
	// EnvKeyDatabaseURL selects postgres when set; otherwise a local
	// sqlite file is used.
	EnvKeyDatabaseURL = "DATABASE_URL"

	// EnvKeySQLitePath overrides the default sqlite file location.
	EnvKeySQLitePath = "SQLITE_PATH"

	// defaultSQLitePath matches the file the previous deployment used.
	defaultSQLitePath = "cafes.db"
)

// Config holds the connection settings read from the environment.
type Config struct {
	DatabaseURL string
	SQLitePath  string
}

// ConfigFromEnv reads the connection settings from the environment.
func ConfigFromEnv() Config {
	return Config{
		DatabaseURL: os.Getenv(EnvKeyDatabaseURL),
		SQLitePath:  os.Getenv(EnvKeySQLitePath),
	}
}

// Dialector picks the gorm dialector for the configuration: postgres
// when a connection string is present, a file-backed sqlite store
// otherwise.
func Dialector(cfg Config) gorm.Dialector {
	if cfg.DatabaseURL != "" {
		return gpostgres.Open(cfg.DatabaseURL)
	}
	path := cfg.SQLitePath
	if path == "" {
		path = defaultSQLitePath
	}
	return gsqlite.Open(path)
}

// OpenDB connects to the database, retrying for up to a minute so the
// app survives a database that comes up slower than the process.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func OpenDB(cfg Config) *gorm.DB {
	dialector := Dialector(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates or updates the schema for every persisted entity.
// The reviews table is migrated even though no route serves it yet; it
// holds data written by the previous deployment.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&adapters.SessionModel{},
		&cafeentity.Cafe{},
		&reviewentity.Review{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
