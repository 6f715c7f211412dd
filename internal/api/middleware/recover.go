package middleware

import (
	"log/slog"
	"net/http"
)

// Renderer is the slice of the view renderer the recovery handler needs.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any)
}

// Recover is the single top-level handler for unexpected failures: it logs
// the panic and renders the generic error page.
func Recover(renderer Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					LoggerFromContext(r.Context()).Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("http_path", r.URL.Path),
					)

					renderer.Render(w, http.StatusInternalServerError, "error", map[string]any{
						"title":   "Error",
						"message": "Something broke!",
						"status":  http.StatusInternalServerError,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
