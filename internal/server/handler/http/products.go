// Package http provides HTTP handlers for the portal backend.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/angussewell/lead-magnet-library/internal/models"
	"go.uber.org/zap"
)

// CatalogService defines the catalog operations required by the HTTP
// handlers.
type CatalogService interface {
	// List returns the full product feed.
	List(ctx context.Context) ([]models.ProductRecord, error)
}

// ProductsHandler serves the product catalog feed.
type ProductsHandler struct {
	// CatalogService performs the underlying catalog operations.
	CatalogService CatalogService
	// Log is used for failure diagnostics; the client only ever sees
	// a generic message.
	Log *zap.Logger
}

// List handles GET requests for the full catalog. On success it
// responds with a JSON array of product records. Any failure to read
// or parse the feed yields a 500 with a generic message; the cause is
// logged, never exposed.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.CatalogService.List(r.Context())
	if err != nil {
		h.Log.Error("failed to load product catalog", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Error fetching product data"})
		return
	}

	if products == nil {
		products = []models.ProductRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(products)
}
