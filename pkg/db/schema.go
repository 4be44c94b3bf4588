package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema создаёт таблицу кодов. Безопасно вызывать повторно - везде IF NOT EXISTS.
func CreateSchema(db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == DriverPostgres {
		schema = postgresSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS codes (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    code       TEXT UNIQUE NOT NULL,
    message    TEXT NOT NULL,
    created_at DATETIME NOT NULL
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS codes (
    id         BIGSERIAL PRIMARY KEY,
    code       TEXT UNIQUE NOT NULL,
    message    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
