// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/danielhkuo/quickly-todo/models"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>BETH ToDo</title>
    <script src="https://unpkg.com/htmx.org@1.9.3"></script>
    <script src="https://cdn.tailwindcss.com"></script>
    <script src="https://unpkg.com/hyperscript.org@0.9.9"></script>
</head>
{{.}}
</html>
`

const fragmentTemplates = `
{{- define "item" -}}
<div class="flex flex-row space-x-3">
<p>{{.Content}}</p>
<input type="checkbox"{{if .Completed}} checked{{end}} hx-post="/todos/toggle/{{.ID}}" hx-target="closest div" hx-swap="outerHTML"/>
<button class="text-red-500" hx-delete="/todos/{{.ID}}" hx-swap="outerHTML" hx-target="closest div">X</button>
</div>
{{- end -}}

{{- define "form" -}}
<form class="flex flex-row space-x-3" hx-post="/todos" hx-swap="beforebegin" _="on submit target.reset()">
<input type="text" name="content" class="border border-black"/>
<button type="submit">Add</button>
</form>
{{- end -}}

{{- define "list" -}}
<div>
{{- range .}}
{{template "item" .}}
{{- end}}
{{template "form"}}
</div>
{{- end -}}

{{- define "shell-body" -}}
<body class="flex w-full h-screen justify-center items-center" hx-get="/todos" hx-trigger="load" hx-swap="innerHTML"></body>
{{- end -}}
`

var (
	fragments = template.Must(template.New("fragments").Parse(fragmentTemplates))
	page      = template.Must(template.New("page").Parse(pageTemplate))
)

// ItemView renders one todo. Its checkbox and delete button target the
// enclosing div, so toggle responses replace it and delete responses remove it.
func ItemView(todo models.Todo) (string, error) {
	return render(fragments, "item", todo)
}

// ListView renders every todo followed by the creation form.
func ListView(todos []models.Todo) (string, error) {
	return render(fragments, "list", todos)
}

// FormView renders the creation form. Responses are inserted before the
// form and the form resets itself after submission.
func FormView() (string, error) {
	return render(fragments, "form", nil)
}

// ShellBody is the initial page body that loads the list on page load.
func ShellBody() (template.HTML, error) {
	s, err := render(fragments, "shell-body", nil)
	return template.HTML(s), err
}

// PageShell wraps an already rendered body in the full document.
// body is trusted markup produced by this package.
func PageShell(body template.HTML) (string, error) {
	return render(page, "page", body)
}

func render(t *template.Template, name string, data any) (string, error) {
	var b strings.Builder
	if err := t.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return b.String(), nil
}
