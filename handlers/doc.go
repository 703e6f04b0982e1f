// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the to-do list.

# Handler Types

TodoHandler serves every endpoint. It depends only on the TodoStore
interface, which *store.Store satisfies:

	todoHandler := handlers.NewTodoHandler(store.New(db, cfg.DatabaseType))

# Endpoints

Every success response is an HTML fragment rendered by the views package:

	GET    /                  → Index (page shell, loads /todos)
	GET    /todos             → ListTodos (items + creation form)
	POST   /todos             → CreateTodo (one item)
	POST   /todos/toggle/{id} → ToggleTodo (one item, completed flipped)
	DELETE /todos/{id}        → DeleteTodo (empty body)

# Validation

Input is validated before the store is touched:

  - {id} must parse as an integer (400 otherwise)
  - POST /todos takes a form or JSON body with a string "content" field;
    a missing, mistyped or empty field is a 400

# Errors

Errors are plain text, never fragments:

  - 400 validation failures
  - 404 toggling an id that does not exist
  - 500 storage or render failures (cause logged)

Deleting an id that does not exist is a successful no-op.
*/
package handlers
