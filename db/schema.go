// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable across Postgres and SQLite: TEXT ids, INTEGER ordinals, no
// engine-specific defaults. Ordinal uniqueness per scope is enforced by the
// ordinal engine, not a constraint - shift updates would transiently collide
// under a non-deferred unique index, and SQLite has no deferrable unique
// constraints.
const schema = `
-- Questions
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    ord INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_questions_ord ON questions(ord);

-- Options
CREATE TABLE IF NOT EXISTS options (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    ord INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    selected BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_options_question ON options(question);
CREATE INDEX IF NOT EXISTS idx_options_question_ord ON options(question, ord);
`
