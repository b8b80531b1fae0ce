package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/styleloom/clothing-store/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

// Render executes the named page. The template runs into a buffer first so a
// broken template produces a clean 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, name string, data any) {

	var buf bytes.Buffer

	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Template rendering failed", slog.String("template", name), slog.String("error", err.Error()))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", slog.String("error", err.Error()))
	}
}

// RenderError writes a bare error page carrying only the application-level
// message; wrapped driver errors stay in the logs.
func (r *Renderer) RenderError(w http.ResponseWriter, err error) {

	statusCode := http.StatusInternalServerError
	message := "An unexpected error occurred"

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		message = appErr.Message
	}

	r.Render(w, statusCode, "error.html", map[string]any{"Message": message})
}
