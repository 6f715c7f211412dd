package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/freshmart/supermarket-inventory/internal/api/middleware"
	appErrors "github.com/freshmart/supermarket-inventory/internal/errors"
	"github.com/freshmart/supermarket-inventory/internal/models"
	service "github.com/freshmart/supermarket-inventory/internal/services"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	renderer        Renderer
}

func NewCategoryHandler(categoryService service.CategoryService, renderer Renderer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, renderer: renderer}
}

func (h *CategoryHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryService.List(r.Context())
		if err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "categories/index", map[string]any{
			"title":      "All Categories",
			"categories": categories,
		})
	}
}

func (h *CategoryHandler) NewForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, http.StatusOK, "categories/new", map[string]any{
			"title":    "Add New Category",
			"error":    nil,
			"formData": nil,
		})
	}
}

func (h *CategoryHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := h.categoryService.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "categories/view", map[string]any{
			"title":    detail.Category.Name,
			"category": detail.Category,
			"items":    detail.Items,
		})
	}
}

func (h *CategoryHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := categoryFormFromRequest(r)

		category, err := h.categoryService.Create(r.Context(), form)
		if err != nil {
			if appErr, ok := appErrors.IsFormError(err); ok {
				h.renderer.Render(w, http.StatusOK, "categories/new", map[string]any{
					"title":    "Add New Category",
					"error":    appErr.Message,
					"formData": form,
				})

				return
			}

			renderError(h.renderer, w, r, err)

			return
		}

		middleware.LoggerFromContext(r.Context()).Info("category created", slog.Int64("category_id", category.ID))
		http.Redirect(w, r, fmt.Sprintf("/categories/%d", category.ID), http.StatusFound)
	}
}

func (h *CategoryHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := categoryFormFromRequest(r)

		category, err := h.categoryService.Update(r.Context(), r.PathValue("id"), form)
		if err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		http.Redirect(w, r, fmt.Sprintf("/categories/%d", category.ID), http.StatusFound)
	}
}

func (h *CategoryHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.categoryService.Delete(r.Context(), r.PathValue("id")); err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		http.Redirect(w, r, "/categories", http.StatusFound)
	}
}

func categoryFormFromRequest(r *http.Request) *models.CategoryForm {
	return &models.CategoryForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		ImageURL:    r.PostFormValue("image_url"),
	}
}
