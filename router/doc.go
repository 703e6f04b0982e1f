// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the to-do list.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store.New(conn, cfg.DatabaseType))

# Endpoints

	GET    /health            - Health check
	GET    /                  - Page shell
	GET    /todos             - List fragment
	POST   /todos             - Create, returns item fragment
	POST   /todos/toggle/{id} - Toggle, returns item fragment
	DELETE /todos/{id}        - Delete, empty body

Every route except /health is wrapped in middleware.WithLogging.
Unknown paths return 404 and known paths with the wrong method 405.
*/
package router
