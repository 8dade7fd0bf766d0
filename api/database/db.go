package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	config "github.com/wavefinderapp/payments-api/api/config"
)

var db *sql.DB

// Initialize connects to the locations catalog database and verifies the
// connection. The catalog is read-only for this service.
func Initialize() error {
	var err error
	db, err = sql.Open("postgres", config.AppConfig.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	// Verify connection
	err = db.Ping()
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Configure connection pool; the catalog sees light, read-only traffic.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return nil
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}
