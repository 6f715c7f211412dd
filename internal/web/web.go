// Package web renders the server-side HTML views. Templates and static
// assets are embedded so the binary is self-contained.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Templates struct {
	t *template.Template
}

func New() (*Templates, error) {
	funcs := template.FuncMap{
		"price": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	t, err := template.New("supermarket").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl", "templates/*/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Templates{t: t}, nil
}

// Render executes the named view into a buffer before writing, so a template
// failure becomes a clean 500 instead of a torn page.
func (t *Templates) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer

	if err := t.t.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("template execution failed", slog.String("template", name), slog.String("error", err.Error()))
		http.Error(w, "Something broke!", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static serves the embedded stylesheet and placeholder images. Request paths
// map directly onto the static directory, so it can back both /css/ and
// /images/ without a prefix strip.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is a compile-time embedded directory
		panic(err)
	}

	return http.FileServer(http.FS(sub))
}
