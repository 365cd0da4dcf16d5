// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose SQL migrations for both schemas:
// the server-side card registry (PostgreSQL) and the device-side key-value
// scalar store (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql device/*.sql
var embedMigrations embed.FS

// MigrateServer applies the card-registry schema to a PostgreSQL database.
func MigrateServer(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "server"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigrateDevice applies the scalar-store schema to the device's local
// SQLite database.
func MigrateDevice(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "device"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
