package queries

import (
	"context"
	"log/slog"

	"finder/internal/core/domain/model/kernel"
)

// CategoryCache is the read-through cache the category listing sits behind.
// A miss is (nil, nil); cache errors are reported but never fail the listing.
type CategoryCache interface {
	Get(ctx context.Context) ([]string, error)
	Set(ctx context.Context, categories []string) error
}

// GetCategoriesQueryHandler serves the category listing through a
// read-through cache. The enumeration itself is compiled in; the cache
// exists for clients hammering the endpoint, and any cache failure degrades
// to the compiled-in answer.
type GetCategoriesQueryHandler struct {
	cache  CategoryCache
	logger *slog.Logger
}

// NewGetCategoriesQueryHandler creates a handler for the category listing.
func NewGetCategoriesQueryHandler(cache CategoryCache, logger *slog.Logger) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{
		cache:  cache,
		logger: logger.With("component", "categories_query"),
	}
}

// Handle returns every category tag in the stable enumeration order.
func (h GetCategoriesQueryHandler) Handle(ctx context.Context, query GetCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cached, err := h.cache.Get(ctx)
	if err != nil {
		h.logger.Warn("category cache read failed", "error", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	categories := make([]string, 0, len(kernel.AllCategories()))
	for _, category := range kernel.AllCategories() {
		categories = append(categories, category.String())
	}

	if err = h.cache.Set(ctx, categories); err != nil {
		h.logger.Warn("category cache write failed", "error", err)
	}

	return categories, nil
}
