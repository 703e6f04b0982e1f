// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-todo/middleware"
	"github.com/danielhkuo/quickly-todo/models"
	"github.com/danielhkuo/quickly-todo/store"
	"github.com/danielhkuo/quickly-todo/views"
)

// TodoStore is the persistence the handlers need. *store.Store implements it.
type TodoStore interface {
	List(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, content string) (models.Todo, error)
	Toggle(ctx context.Context, id int64) (models.Todo, error)
	Delete(ctx context.Context, id int64) error
}

type TodoHandler struct {
	store TodoStore
}

func NewTodoHandler(s TodoStore) *TodoHandler {
	return &TodoHandler{store: s}
}

// Index handles GET /
func (h *TodoHandler) Index(w http.ResponseWriter, r *http.Request) {
	body, err := views.ShellBody()
	if err != nil {
		renderFailed(w, err)
		return
	}
	page, err := views.PageShell(body)
	if err != nil {
		renderFailed(w, err)
		return
	}
	middleware.HTMLResponse(w, http.StatusOK, page)
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("failed to list todos", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	fragment, err := views.ListView(todos)
	if err != nil {
		renderFailed(w, err)
		return
	}
	middleware.HTMLResponse(w, http.StatusOK, fragment)
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	content, err := parseCreateRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.store.Create(r.Context(), content)
	if err != nil {
		slog.Error("failed to insert todo", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}

	slog.Info("todo created", "todo_id", todo.ID)

	fragment, err := views.ItemView(todo)
	if err != nil {
		renderFailed(w, err)
		return
	}
	middleware.HTMLResponse(w, http.StatusOK, fragment)
}

// ToggleTodo handles POST /todos/toggle/{id}
func (h *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.store.Toggle(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Todo not found")
		return
	}
	if err != nil {
		slog.Error("failed to toggle todo", "todo_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update todo")
		return
	}

	slog.Info("todo toggled", "todo_id", todo.ID, "completed", todo.Completed)

	fragment, err := views.ItemView(todo)
	if err != nil {
		renderFailed(w, err)
		return
	}
	middleware.HTMLResponse(w, http.StatusOK, fragment)
}

// DeleteTodo handles DELETE /todos/{id}
// Deleting an id that does not exist still succeeds.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete todo", "todo_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete todo")
		return
	}

	slog.Info("todo deleted", "todo_id", id)

	// Empty body: htmx swaps the item's outerHTML with nothing
	middleware.HTMLResponse(w, http.StatusOK, "")
}

func renderFailed(w http.ResponseWriter, err error) {
	slog.Error("failed to render fragment", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Render error")
}
