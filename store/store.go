// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-todo/db"
	"github.com/danielhkuo/quickly-todo/models"
)

var ErrNotFound = errors.New("todo not found")

// Store runs single-statement queries against the todos table.
type Store struct {
	db     *sql.DB
	dbType string
}

func New(conn *sql.DB, dbType string) *Store {
	return &Store{db: conn, dbType: dbType}
}

// List returns every todo ordered by id
func (s *Store) List(ctx context.Context) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, content, completed
		FROM todos
		ORDER BY id
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Content, &todo.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

// Get returns a single todo or ErrNotFound.
// Handlers don't need it since Toggle reads back through RETURNING; it
// completes the store's get-by-id contract.
func (s *Store) Get(ctx context.Context, id int64) (models.Todo, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, content, completed
		FROM todos
		WHERE id = ?
	`), id)
	return scanTodo(row)
}

// Create inserts a todo and returns it with its generated id
func (s *Store) Create(ctx context.Context, content string) (models.Todo, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
		INSERT INTO todos (content)
		VALUES (?)
		RETURNING id, content, completed
	`), content)
	return scanTodo(row)
}

// Toggle flips the completed flag in one statement and returns the updated todo.
// Concurrent toggles on the same id are last-write-wins.
func (s *Store) Toggle(ctx context.Context, id int64) (models.Todo, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
		UPDATE todos
		SET completed = NOT completed
		WHERE id = ?
		RETURNING id, content, completed
	`), id)
	return scanTodo(row)
}

// Delete removes a todo. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM todos WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return nil
}

func scanTodo(row *sql.Row) (models.Todo, error) {
	var todo models.Todo
	err := row.Scan(&todo.ID, &todo.Content, &todo.Completed)
	if err == sql.ErrNoRows {
		return models.Todo{}, ErrNotFound
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("failed to scan todo: %w", err)
	}
	return todo, nil
}

// rebind rewrites ? placeholders into $N for postgres
func (s *Store) rebind(query string) string {
	if s.dbType != db.TypePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
