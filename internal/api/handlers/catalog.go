package handlers

import (
	"net/http"

	"github.com/oparantho/saakwa-laundry-platform/internal/catalog"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils/response"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListItems returns the price list, optionally one category of it. An
// unknown category is an empty list, not an error.
func (h *CatalogHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")

		if category != "" {
			response.Success(w, http.StatusOK, h.catalog.ItemsByCategory(category))

			return
		}

		response.Success(w, http.StatusOK, h.catalog.AllItems())
	}
}

func (h *CatalogHandler) Categories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.catalog.Categories())
	}
}
