// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-todo/db"
	"github.com/danielhkuo/quickly-todo/store"
	"github.com/danielhkuo/quickly-todo/testutil"
)

// TestConcurrentToggles verifies that simultaneous toggles of one todo all
// succeed and each one flips the flag exactly once
func TestConcurrentToggles(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	id := testutil.CreateTestTodo(t, conn, "contended", false)
	idStr := strconv.FormatInt(id, 10)
	handler := NewTodoHandler(store.New(conn, db.TypeSQLite))

	numToggles := 51
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numToggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("POST", "/todos/toggle/"+idStr, nil)
			req.SetPathValue("id", idStr)
			w := httptest.NewRecorder()

			handler.ToggleTodo(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			} else {
				t.Errorf("Toggle returned %d: %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numToggles {
		t.Errorf("Expected %d successful toggles, got %d", numToggles, successCount.Load())
	}

	var completed bool
	if err := conn.QueryRow("SELECT completed FROM todos WHERE id = ?", id).Scan(&completed); err != nil {
		t.Fatalf("Failed to read todo: %v", err)
	}
	if want := numToggles%2 == 1; completed != want {
		t.Errorf("Expected completed=%v after %d toggles, got %v", want, numToggles, completed)
	}
}

// TestConcurrentCreates verifies that parallel creates each store one row
func TestConcurrentCreates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewTodoHandler(store.New(conn, db.TypeSQLite))

	numCreates := 30
	var wg sync.WaitGroup

	for i := 0; i < numCreates; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			form := url.Values{"content": {fmt.Sprintf("todo %d", n)}}
			w := httptest.NewRecorder()
			handler.CreateTodo(w, testutil.MakeFormRequest("POST", "/todos", form))

			if w.Code >= 500 {
				t.Errorf("Create %d returned %d: %s", n, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if n := testutil.CountTodos(t, conn); n != numCreates {
		t.Errorf("Expected %d todos, got %d", numCreates, n)
	}
}

// TestMixedConcurrentOperations runs creates, toggles, deletes and lists
// together and checks nothing fails at the storage layer
func TestMixedConcurrentOperations(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewTodoHandler(store.New(conn, db.TypeSQLite))

	// Todos that will be deleted, and one that is only toggled
	numDeletes := 10
	deleteIDs := make([]string, numDeletes)
	for i := range deleteIDs {
		deleteIDs[i] = strconv.FormatInt(testutil.CreateTestTodo(t, conn, fmt.Sprintf("doomed %d", i), false), 10)
	}
	keepID := strconv.FormatInt(testutil.CreateTestTodo(t, conn, "kept", false), 10)

	numCreates := 10
	numToggles := 10
	var serverErrors atomic.Int32
	var wg sync.WaitGroup

	serve := func(h http.HandlerFunc, req *http.Request) {
		defer wg.Done()
		w := httptest.NewRecorder()
		h(w, req)
		if w.Code >= 500 {
			serverErrors.Add(1)
		}
	}

	for i := 0; i < numCreates; i++ {
		wg.Add(1)
		go serve(handler.CreateTodo, testutil.MakeFormRequest("POST", "/todos", url.Values{"content": {fmt.Sprintf("new %d", i)}}))
	}
	for i := 0; i < numToggles; i++ {
		req := httptest.NewRequest("POST", "/todos/toggle/"+keepID, nil)
		req.SetPathValue("id", keepID)
		wg.Add(1)
		go serve(handler.ToggleTodo, req)
	}
	for _, id := range deleteIDs {
		req := httptest.NewRequest("DELETE", "/todos/"+id, nil)
		req.SetPathValue("id", id)
		wg.Add(1)
		go serve(handler.DeleteTodo, req)
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go serve(handler.ListTodos, httptest.NewRequest("GET", "/todos", nil))
	}

	wg.Wait()

	if n := serverErrors.Load(); n != 0 {
		t.Errorf("Expected no 5xx responses, got %d", n)
	}

	// Created todos plus the kept one
	if n := testutil.CountTodos(t, conn); n != numCreates+1 {
		t.Errorf("Expected %d todos, got %d", numCreates+1, n)
	}

	var completed bool
	if err := conn.QueryRow("SELECT completed FROM todos WHERE id = ?", keepID).Scan(&completed); err != nil {
		t.Fatalf("Failed to read kept todo: %v", err)
	}
	if want := numToggles%2 == 1; completed != want {
		t.Errorf("Expected completed=%v after %d toggles, got %v", want, numToggles, completed)
	}
}
