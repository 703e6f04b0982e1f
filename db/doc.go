// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connections

Open picks the driver for the configured database type and pings it:

	conn, err := db.Open(db.TypeSQLite, "file:todos.db")
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

Supported types:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes the todos table in the matching dialect:

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

	todos (
		id        auto-generated primary key
		content   TEXT NOT NULL
		completed BOOLEAN NOT NULL DEFAULT FALSE
	)
*/
package db
