package handlers

import (
	"log/slog"
	"net/http"

	"github.com/freshmart/supermarket-inventory/internal/api/middleware"
	appErrors "github.com/freshmart/supermarket-inventory/internal/errors"
)

// Renderer turns a named view plus a data object into HTML. The concrete
// implementation lives in internal/web; handlers only depend on this slice of
// it.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any)
}

// renderError maps a failure to the generic error page. Form-level errors
// never reach this path; they are handled by re-displaying the form.
func renderError(renderer Renderer, w http.ResponseWriter, r *http.Request, err error) {
	logger := middleware.LoggerFromContext(r.Context())

	status := http.StatusInternalServerError
	message := "Something broke!"

	if appErr, ok := appErrors.IsAppError(err); ok && appErr.StatusCode >= http.StatusBadRequest {
		status = appErr.StatusCode
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	renderer.Render(w, status, "error", map[string]any{
		"title":   "Error",
		"message": message,
		"status":  status,
	})
}

// NotFoundPage renders the default error page for unmatched routes.
func NotFoundPage(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusNotFound, "error", map[string]any{
			"title":   "Error",
			"message": "Page Not Found",
			"status":  http.StatusNotFound,
		})
	}
}
