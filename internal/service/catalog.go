package service

import (
	"context"
	"log/slog"

	"github.com/grigorv/snackshop/internal/model"
)

type Catalog struct {
	logger   *slog.Logger
	products ProductStore
}

func NewCatalog(logger *slog.Logger, products ProductStore) *Catalog {
	return &Catalog{
		logger:   logger.With("service", "catalog"),
		products: products,
	}
}

func (s *Catalog) List(ctx context.Context) ([]model.ProductSummary, error) {
	return s.products.FindAll(ctx)
}

// Detail returns the full product record, or model.ErrNotFound.
func (s *Catalog) Detail(ctx context.Context, id model.ID) (model.Product, error) {
	return s.products.Get(ctx, id)
}
