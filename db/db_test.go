// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"
)

func TestDriverName(t *testing.T) {
	tests := []struct {
		dbType  string
		want    string
		wantErr bool
	}{
		{TypeSQLite, "sqlite", false},
		{TypePostgres, "postgres", false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			got, err := DriverName(tt.dbType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DriverName(%q) error = %v, wantErr %v", tt.dbType, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DriverName(%q) = %q, want %q", tt.dbType, got, tt.want)
			}
		})
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := Open(TypeSQLite, "file:"+filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, TypeSQLite); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	var completed bool
	err = conn.QueryRow("INSERT INTO todos (content) VALUES (?) RETURNING completed", "x").Scan(&completed)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if completed {
		t.Error("Expected completed to default to false")
	}
}

func TestCreateSchemaUnsupportedType(t *testing.T) {
	conn, err := Open(TypeSQLite, "file:"+filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn, "oracle"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"file:todos.db", "file:todos.db?_pragma=busy_timeout(5000)"},
		{"file:todos.db?mode=rwc", "file:todos.db?mode=rwc&_pragma=busy_timeout(5000)"},
		{"file:todos.db?_pragma=busy_timeout(100)", "file:todos.db?_pragma=busy_timeout(100)"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SQLiteDSN(tt.in); got != tt.want {
				t.Errorf("SQLiteDSN(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpenSQLiteSingleWriter(t *testing.T) {
	conn, err := Open(TypeSQLite, "file:"+filepath.Join(t.TempDir(), "pool.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("Expected 1 max open connection for sqlite, got %d", got)
	}

	var timeout int
	if err := conn.QueryRow("PRAGMA busy_timeout").Scan(&timeout); err != nil {
		t.Fatalf("PRAGMA busy_timeout failed: %v", err)
	}
	if timeout != 5000 {
		t.Errorf("Expected busy_timeout 5000, got %d", timeout)
	}
}
