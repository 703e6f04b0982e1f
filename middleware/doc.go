// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /todos", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, bytes, duration_ms). Status and size are captured with httpsnoop.
Each request gets an X-Request-ID (a UUID unless the client sent one),
echoed back in the response headers.

# Response Helpers

Write an HTML fragment:

	middleware.HTMLResponse(w, http.StatusOK, fragment)

Write a plain-text error:

	middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")

Parse JSON request bodies:

	var req models.CreateTodoRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged as the remote address of each request.
*/
package middleware
