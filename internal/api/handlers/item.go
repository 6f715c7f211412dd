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

type ItemHandler struct {
	itemService service.ItemService
	renderer    Renderer
}

func NewItemHandler(itemService service.ItemService, renderer Renderer) *ItemHandler {
	return &ItemHandler{itemService: itemService, renderer: renderer}
}

func (h *ItemHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.itemService.List(r.Context())
		if err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "items/index", map[string]any{
			"title": "All Items",
			"items": items,
		})
	}
}

func (h *ItemHandler) NewForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.itemService.NewForm(r.Context())
		if err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "items/new", map[string]any{
			"title":      "Add New Item",
			"categories": categories,
			"error":      nil,
			"formData":   nil,
		})
	}
}

func (h *ItemHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := h.itemService.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "items/view", map[string]any{
			"title": item.Name,
			"item":  item,
		})
	}
}

func (h *ItemHandler) EditForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formData, err := h.itemService.EditForm(r.Context(), r.PathValue("id"))
		if err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "items/edit", map[string]any{
			"title":      "Edit Item",
			"categories": formData.Categories,
			"item":       formData.Item,
			"error":      nil,
			"formData":   nil,
		})
	}
}

func (h *ItemHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := itemFormFromRequest(r)

		item, err := h.itemService.Create(r.Context(), form)
		if err != nil {
			if appErr, ok := appErrors.IsFormError(err); ok {
				// the form needs its category list back
				categories, listErr := h.itemService.NewForm(r.Context())
				if listErr != nil {
					renderError(h.renderer, w, r, listErr)

					return
				}

				h.renderer.Render(w, http.StatusOK, "items/new", map[string]any{
					"title":      "Add New Item",
					"categories": categories,
					"error":      appErr.Message,
					"formData":   form,
				})

				return
			}

			renderError(h.renderer, w, r, err)

			return
		}

		middleware.LoggerFromContext(r.Context()).Info("item created", slog.Int64("item_id", item.ID))
		http.Redirect(w, r, fmt.Sprintf("/items/%d", item.ID), http.StatusFound)
	}
}

func (h *ItemHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := itemFormFromRequest(r)
		id := r.PathValue("id")

		item, err := h.itemService.Update(r.Context(), id, form)
		if err != nil {
			if appErr, ok := appErrors.IsFormError(err); ok {
				formData, editErr := h.itemService.EditForm(r.Context(), id)
				if editErr != nil {
					renderError(h.renderer, w, r, editErr)

					return
				}

				h.renderer.Render(w, http.StatusOK, "items/edit", map[string]any{
					"title":      "Edit Item",
					"categories": formData.Categories,
					"item":       formData.Item,
					"error":      appErr.Message,
					"formData":   form,
				})

				return
			}

			renderError(h.renderer, w, r, err)

			return
		}

		http.Redirect(w, r, fmt.Sprintf("/items/%d", item.ID), http.StatusFound)
	}
}

func (h *ItemHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.itemService.Delete(r.Context(), r.PathValue("id")); err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		http.Redirect(w, r, "/items", http.StatusFound)
	}
}

func itemFormFromRequest(r *http.Request) *models.ItemForm {
	return &models.ItemForm{
		Name:          r.PostFormValue("name"),
		CategoryID:    r.PostFormValue("category_id"),
		Description:   r.PostFormValue("description"),
		Price:         r.PostFormValue("price"),
		StockQuantity: r.PostFormValue("stock_quantity"),
		ImageURL:      r.PostFormValue("image_url"),
	}
}
