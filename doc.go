// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Todo server.

Quickly Todo is a server-rendered to-do list. Every endpoint returns an
HTML fragment that htmx swaps straight into the page.

# Starting the Server

With no configuration the server listens on :3000 and keeps its data in
a local SQLite file:

	go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Optional settings (flag, env, default):

  - -p, PORT: Server port (3000)
  - -d, DATABASE_URL: Database URL (file:todos.db)
  - -t, DATABASE_TYPE: sqlite or postgres (sqlite)

A .env file in the working directory is loaded when present.

# Architecture

The database handle is opened in main, injected into the store, and
closed on shutdown:

  - handlers: HTTP request handlers and input validation
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging and response helpers
  - views: HTML fragment rendering
  - store: Single-statement persistence
  - models: Shared types
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
