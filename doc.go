// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the QForm API server.

QForm is a form-builder backend: an ordered list of questions, each owning
an ordered list of selectable options, mutated through a JSON API. The
server's core job is ordinal consistency - keeping both levels' positions
contiguous and gap-free across creates, deletes, edits, and drag-and-drop
reorders, with every mutation committed atomically.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:qform.db go run main.go

Or with flags:

	go run main.go -p 3319 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Postgres connection string or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, options, form state)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and the mutation error taxonomy
  - questions: Collection managers for the question/option hierarchy
  - ordinal: Pure gap-free ordering arithmetic
  - store: Transactional persistence adapter
  - auth: ID generation
  - db: Connection opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
