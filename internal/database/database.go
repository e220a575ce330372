// Package database opens the MySQL pool and applies schema migrations
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationsTable is the table golang-migrate records applied versions in
const MigrationsTable = "schema_migrations"

// Connect opens a connection pool and checks it with a ping
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// MigrationsPath finds the migrations directory from the working directory or its parents
func MigrationsPath() string {
	for _, dir := range []string{"migrations", "../migrations", "../../migrations"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return "file://" + dir
		}
	}
	return "file://migrations"
}

// Migrate applies all pending up migrations found at sourceURL
func Migrate(db *sql.DB, sourceURL string) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: MigrationsTable,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
