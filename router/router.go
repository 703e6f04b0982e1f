// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-todo/handlers"
	"github.com/danielhkuo/quickly-todo/middleware"
)

func NewRouter(s handlers.TodoStore) *http.ServeMux {
	mux := http.NewServeMux()

	todoHandler := handlers.NewTodoHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Page shell; {$} keeps unknown paths from falling through to it
	mux.HandleFunc("GET /{$}", middleware.WithLogging(todoHandler.Index))

	// Fragments
	mux.HandleFunc("GET /todos", middleware.WithLogging(todoHandler.ListTodos))
	mux.HandleFunc("POST /todos", middleware.WithLogging(todoHandler.CreateTodo))
	mux.HandleFunc("POST /todos/toggle/{id}", middleware.WithLogging(todoHandler.ToggleTodo))
	mux.HandleFunc("DELETE /todos/{id}", middleware.WithLogging(todoHandler.DeleteTodo))

	return mux
}
