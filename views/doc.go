// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders todos as HTML fragments for htmx.
//
// All functions are pure: they take values and return markup. Content is
// escaped by html/template, so user input can never inject markup.
package views
