// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-todo/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in t.TempDir() so every test gets its own store.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "todos_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestTodo inserts a todo directly and returns its id
func CreateTestTodo(t *testing.T, conn *sql.DB, content string, completed bool) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO todos (content, completed)
		VALUES (?, ?)
		RETURNING id
	`, content, completed).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}

	return id
}

// CountTodos returns the number of rows in the todos table
func CountTodos(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM todos").Scan(&n); err != nil {
		t.Fatalf("Failed to count todos: %v", err)
	}
	return n
}

// MakeFormRequest creates a form-encoded request the way htmx submits forms
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertHTML checks that the response is an HTML fragment
func AssertHTML(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html content type, got '%s'", ct)
	}
}
