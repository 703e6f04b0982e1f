// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-todo/middleware"
	"github.com/danielhkuo/quickly-todo/models"
)

var (
	ErrInvalidID      = errors.New("id must be an integer")
	ErrInvalidBody    = errors.New("invalid request body")
	ErrMissingContent = errors.New("content is required")
	ErrEmptyContent   = errors.New("content cannot be empty")
)

// parseID reads the {id} path value
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// parseCreateRequest accepts a form post (what htmx sends) or a JSON object
// and returns the non-empty content.
func parseCreateRequest(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var content *string
	switch mediaType {
	case "application/json":
		var req models.CreateTodoRequest
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			return "", ErrInvalidBody
		}
		content = req.Content
	case "application/x-www-form-urlencoded", "multipart/form-data":
		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(1 << 20)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return "", ErrInvalidBody
		}
		if values, ok := r.PostForm["content"]; ok && len(values) > 0 {
			content = &values[0]
		}
	default:
		return "", ErrInvalidBody
	}

	if content == nil {
		return "", ErrMissingContent
	}
	if len(*content) == 0 {
		return "", ErrEmptyContent
	}
	return *content, nil
}
