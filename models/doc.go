// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the data types shared by the store, views and handlers.

# Domain Types

Todo mirrors one row of the todos table:

	type Todo struct {
		ID        int64
		Content   string
		Completed bool
	}

ID is generated by the database on insert and never changes. Completed
only changes through the toggle endpoint.

# Request Types

CreateTodoRequest is the decoded body of POST /todos. Content is a
pointer so handlers can reject a body that omits the field entirely.
*/
package models
