// Package service provides catalog business logic, delegating data
// access to a repository interface.
package service

import (
	"context"

	"github.com/angussewell/lead-magnet-library/internal/models"
)

// CatalogRepository defines the data-layer operations required by the
// catalog service.
type CatalogRepository interface {
	// List returns the full product feed.
	List(ctx context.Context) ([]models.ProductRecord, error)
}

// CatalogService serves the product catalog.
type CatalogService struct {
	// repo performs the data-layer operations.
	repo CatalogRepository
}

// NewCatalogService constructs a CatalogService using the provided
// repository.
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns the current catalog snapshot. Records with an empty ID
// are dropped: identity is the ID field, and a record without one can
// never be resolved by the detail view.
func (s *CatalogService) List(ctx context.Context) ([]models.ProductRecord, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := products[:0]
	for _, p := range products {
		if p.ID != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
