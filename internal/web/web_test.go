package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshmart/supermarket-inventory/internal/models"
	"github.com/freshmart/supermarket-inventory/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	templates, err := web.New()

	require.NoError(t, err, "embedded templates should parse")
	assert.NotNil(t, templates)
}

func TestTemplates_Render(t *testing.T) {
	templates, err := web.New()
	require.NoError(t, err)

	t.Run("Home", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		data := map[string]any{
			"title": "Supermarket Inventory",
			"categories": []*models.Category{
				{ID: 1, Name: "Produce", Description: "Fresh fruits and vegetables", ImageURL: models.PlaceholderCategoryImage, ItemCount: 3},
			},
		}

		// Act
		templates.Render(rr, http.StatusOK, "home", data)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Body.String(), "Supermarket Inventory")
		assert.Contains(t, rr.Body.String(), `<a href="/categories/1">Produce</a>`)
		assert.Contains(t, rr.Body.String(), "3 item(s)")
	})

	t.Run("EscapesUserContent", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		data := map[string]any{
			"title": "All Categories",
			"categories": []*models.Category{
				{ID: 1, Name: `<script>alert("x")</script>`},
			},
		}

		// Act
		templates.Render(rr, http.StatusOK, "categories/index", data)

		// Assert
		assert.NotContains(t, rr.Body.String(), "<script>alert")
		assert.Contains(t, rr.Body.String(), "&lt;script&gt;")
	})

	t.Run("FormatsPrice", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		data := map[string]any{
			"title": "All Items",
			"items": []*models.Item{
				{ID: 1, Name: "Bananas", CategoryName: "Produce", Price: 0.5, StockQuantity: 150},
			},
		}

		// Act
		templates.Render(rr, http.StatusOK, "items/index", data)

		// Assert
		assert.Contains(t, rr.Body.String(), "$0.50", "prices render with two decimal places")
	})

	t.Run("ErrorPage", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		data := map[string]any{
			"title":   "Error",
			"message": "Page Not Found",
			"status":  http.StatusNotFound,
		}

		// Act
		templates.Render(rr, http.StatusNotFound, "error", data)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Error 404")
		assert.Contains(t, rr.Body.String(), "Page Not Found")
	})

	t.Run("UnknownTemplate", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		templates.Render(rr, http.StatusOK, "nonexistent", nil)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Something broke!")
	})

	t.Run("FormRedisplay", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		data := map[string]any{
			"title":    "Add New Category",
			"error":    "A category with this name already exists",
			"formData": &models.CategoryForm{Name: "Produce", Description: "Fruit"},
		}

		// Act
		templates.Render(rr, http.StatusOK, "categories/new", data)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "A category with this name already exists")
		assert.Contains(t, rr.Body.String(), `value="Produce"`, "submitted values should be pre-filled")
	})
}

func TestStatic(t *testing.T) {
	handler := web.Static()

	t.Run("Stylesheet", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/css/style.css", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("PlaceholderImages", func(t *testing.T) {
		for _, path := range []string{models.PlaceholderCategoryImage, models.PlaceholderItemImage} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code, "missing static asset: %s", path)
		}
	})
}
