// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides persistence for todos.

Every operation is a single SQL statement, so each one is atomic at the
database and no transactions are needed. Queries are written with ?
placeholders and rewritten to $N when the store runs against postgres.

	s := store.New(conn, db.TypeSQLite)
	todo, err := s.Create(ctx, "Buy milk")

Get and Toggle return ErrNotFound for a missing id. Delete of a missing id
succeeds silently.
*/
package store
