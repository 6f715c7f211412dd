package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshmart/supermarket-inventory/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	status int
	name   string
	data   map[string]any
}

func (r *recordingRenderer) Render(w http.ResponseWriter, status int, name string, data any) {
	r.status = status
	r.name = name
	r.data = data.(map[string]any)
	w.WriteHeader(status)
}

func TestRecover(t *testing.T) {
	t.Run("PanicRendersErrorPage", func(t *testing.T) {
		// Arrange
		renderer := &recordingRenderer{}

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rr := httptest.NewRecorder()

		// Act
		require.NotPanics(t, func() {
			middleware.Recover(renderer)(next).ServeHTTP(rr, req)
		})

		// Assert
		assert.Equal(t, http.StatusInternalServerError, renderer.status)
		assert.Equal(t, "error", renderer.name)
		assert.Equal(t, "Something broke!", renderer.data["message"])
	})

	t.Run("NormalRequestPassesThrough", func(t *testing.T) {
		// Arrange
		renderer := &recordingRenderer{}

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rr := httptest.NewRecorder()

		// Act
		middleware.Recover(renderer)(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, renderer.name, "the error page should not be rendered")
	})
}
