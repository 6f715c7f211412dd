package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/freshmart/supermarket-inventory/internal/api/handlers"
	appErrors "github.com/freshmart/supermarket-inventory/internal/errors"
	"github.com/freshmart/supermarket-inventory/internal/models"
	"github.com/freshmart/supermarket-inventory/internal/services/mocks"
	"github.com/freshmart/supermarket-inventory/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		items := []*models.Item{{ID: 1, Name: "Organic Apples", CategoryName: "Produce"}}
		svc.On("List", mock.Anything).Return(items, nil)

		req := testutils.NewFormRequest(http.MethodGet, "/items", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.List().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, http.StatusOK, call.status)
		assert.Equal(t, "items/index", call.name)
		assert.Equal(t, items, call.data["items"])
	})

	t.Run("ServiceError", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("List", mock.Anything).Return(nil, appErrors.DatabaseError("Failed to fetch items"))

		req := testutils.NewFormRequest(http.MethodGet, "/items", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.List().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, http.StatusInternalServerError, call.status)
		assert.Equal(t, "error", call.name)
	})
}

func TestItemHandler_NewForm(t *testing.T) {
	// Arrange
	svc := mocks.NewItemService(t)
	renderer := &stubRenderer{}
	handler := handlers.NewItemHandler(svc, renderer)

	categories := []*models.Category{{ID: 1, Name: "Produce"}}
	svc.On("NewForm", mock.Anything).Return(categories, nil)

	req := testutils.NewFormRequest(http.MethodGet, "/items/new", nil, nil)
	rr := httptest.NewRecorder()

	// Act
	handler.NewForm().ServeHTTP(rr, req)

	// Assert
	call := renderer.last(t)
	assert.Equal(t, "items/new", call.name)
	assert.Equal(t, categories, call.data["categories"])
	assert.Nil(t, call.data["formData"])
}

func TestItemHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		item := &models.Item{ID: 5, Name: "Sourdough Bread", CategoryName: "Bakery"}
		svc.On("Get", mock.Anything, "5").Return(item, nil)

		req := testutils.NewFormRequest(http.MethodGet, "/items/5", nil, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		// Act
		handler.Get().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, "items/view", call.name)
		assert.Equal(t, "Sourdough Bread", call.data["title"])
		assert.Equal(t, item, call.data["item"])
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("Get", mock.Anything, "42").Return(nil, appErrors.NotFoundError("Item not found"))

		req := testutils.NewFormRequest(http.MethodGet, "/items/42", nil, map[string]string{"id": "42"})
		rr := httptest.NewRecorder()

		// Act
		handler.Get().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, http.StatusNotFound, call.status)
		assert.Equal(t, "Item not found", call.data["message"])
	})
}

func TestItemHandler_EditForm(t *testing.T) {
	// Arrange
	svc := mocks.NewItemService(t)
	renderer := &stubRenderer{}
	handler := handlers.NewItemHandler(svc, renderer)

	formData := &models.ItemFormData{
		Categories: []*models.Category{{ID: 1, Name: "Produce"}, {ID: 3, Name: "Bakery"}},
		Item:       &models.Item{ID: 5, Name: "Sourdough Bread", CategoryID: 3},
	}
	svc.On("EditForm", mock.Anything, "5").Return(formData, nil)

	req := testutils.NewFormRequest(http.MethodGet, "/items/5/edit", nil, map[string]string{"id": "5"})
	rr := httptest.NewRecorder()

	// Act
	handler.EditForm().ServeHTTP(rr, req)

	// Assert
	call := renderer.last(t)
	assert.Equal(t, "items/edit", call.name)
	assert.Equal(t, formData.Categories, call.data["categories"])
	assert.Equal(t, formData.Item, call.data["item"])
}

func TestItemHandler_Create(t *testing.T) {
	form := url.Values{
		"name":           {"Organic Apples"},
		"category_id":    {"1"},
		"description":    {"Fresh organic apples"},
		"price":          {"1.99"},
		"stock_quantity": {"100"},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("Create", mock.Anything, mock.MatchedBy(func(f *models.ItemForm) bool {
			return f.Name == "Organic Apples" && f.CategoryID == "1" && f.Price == "1.99"
		})).Return(&models.Item{ID: 7, Name: "Organic Apples"}, nil)

		req := testutils.NewFormRequest(http.MethodPost, "/items", form, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/items/7", rr.Header().Get("Location"))
		assert.Empty(t, renderer.calls)
	})

	t.Run("ValidationError", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		categories := []*models.Category{{ID: 1, Name: "Produce"}}
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, appErrors.ValidationError("All fields except image URL are required"))
		svc.On("NewForm", mock.Anything).Return(categories, nil)

		req := testutils.NewFormRequest(http.MethodPost, "/items", url.Values{"name": {"Organic Apples"}}, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, http.StatusOK, call.status)
		assert.Equal(t, "items/new", call.name)
		assert.Equal(t, "All fields except image URL are required", call.data["error"])
		assert.Equal(t, categories, call.data["categories"], "the re-displayed form needs its category list back")

		formData, ok := call.data["formData"].(*models.ItemForm)
		require.True(t, ok)
		assert.Equal(t, "Organic Apples", formData.Name)
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, appErrors.InvalidCategoryError("Invalid category selected"))
		svc.On("NewForm", mock.Anything).Return([]*models.Category{}, nil)

		req := testutils.NewFormRequest(http.MethodPost, "/items", form, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, "items/new", call.name)
		assert.Equal(t, "Invalid category selected", call.data["error"])
	})

	t.Run("ServiceError", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, appErrors.DatabaseError("Failed to create item"))

		req := testutils.NewFormRequest(http.MethodPost, "/items", form, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Create().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, http.StatusInternalServerError, call.status)
		assert.Equal(t, "error", call.name)
		svc.AssertNotCalled(t, "NewForm")
	})
}

func TestItemHandler_Update(t *testing.T) {
	form := url.Values{
		"name":           {"Sourdough Bread"},
		"category_id":    {"3"},
		"price":          {"5.49"},
		"stock_quantity": {"20"},
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("Update", mock.Anything, "5", mock.Anything).Return(&models.Item{ID: 5, Name: "Sourdough Bread"}, nil)

		req := testutils.NewFormRequest(http.MethodPut, "/items/5", form, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		// Act
		handler.Update().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/items/5", rr.Header().Get("Location"))
	})

	t.Run("ValidationError", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		formData := &models.ItemFormData{
			Categories: []*models.Category{{ID: 3, Name: "Bakery"}},
			Item:       &models.Item{ID: 5, Name: "Sourdough Bread", CategoryID: 3},
		}
		svc.On("Update", mock.Anything, "5", mock.Anything).Return(nil, appErrors.ValidationError("Price must be a valid amount"))
		svc.On("EditForm", mock.Anything, "5").Return(formData, nil)

		req := testutils.NewFormRequest(http.MethodPut, "/items/5", form, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		// Act
		handler.Update().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, http.StatusOK, call.status)
		assert.Equal(t, "items/edit", call.name)
		assert.Equal(t, "Price must be a valid amount", call.data["error"])
		assert.Equal(t, formData.Item, call.data["item"])
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("Update", mock.Anything, "42", mock.Anything).Return(nil, appErrors.DatabaseError("Failed to update item"))

		req := testutils.NewFormRequest(http.MethodPut, "/items/42", form, map[string]string{"id": "42"})
		rr := httptest.NewRecorder()

		// Act
		handler.Update().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, http.StatusInternalServerError, call.status)
		assert.Equal(t, "error", call.name)
	})
}

func TestItemHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("Delete", mock.Anything, "5").Return(nil)

		req := testutils.NewFormRequest(http.MethodDelete, "/items/5", nil, map[string]string{"id": "5"})
		rr := httptest.NewRecorder()

		// Act
		handler.Delete().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/items", rr.Header().Get("Location"))
	})

	t.Run("InvalidID", func(t *testing.T) {
		// Arrange
		svc := mocks.NewItemService(t)
		renderer := &stubRenderer{}
		handler := handlers.NewItemHandler(svc, renderer)

		svc.On("Delete", mock.Anything, "abc").Return(appErrors.InvalidInputError("Invalid item ID"))

		req := testutils.NewFormRequest(http.MethodDelete, "/items/abc", nil, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		// Act
		handler.Delete().ServeHTTP(rr, req)

		// Assert
		call := renderer.last(t)
		assert.Equal(t, http.StatusBadRequest, call.status)
		assert.Equal(t, "Invalid item ID", call.data["message"])
	})
}
