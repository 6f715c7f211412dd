package handlers

import (
	"net/http"

	service "github.com/freshmart/supermarket-inventory/internal/services"
)

type HomeHandler struct {
	categoryService service.CategoryService
	renderer        Renderer
}

func NewHomeHandler(categoryService service.CategoryService, renderer Renderer) *HomeHandler {
	return &HomeHandler{categoryService: categoryService, renderer: renderer}
}

// Home shows every category with its item count.
func (h *HomeHandler) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryService.List(r.Context())
		if err != nil {
			renderError(h.renderer, w, r, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "home", map[string]any{
			"title":      "Supermarket Inventory",
			"categories": categories,
		})
	}
}
