// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"postgres" uses lib/pq with a connection string; "sqlite" uses
modernc.org/sqlite with a file path and enables foreign keys.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	questions(id, ord, description)
	options(id, question, ord, description, selected)

ord is the zero-based position within the sibling scope: global for
questions, per-question for options. options.question cascades on question
delete.

# Indexes

  - questions.ord
  - options.question
  - options.(question, ord)
*/
package db
