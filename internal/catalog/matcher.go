package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/setterlabs/crm-backend/internal/models"
)

// DefaultLimit caps the number of products returned per search.
const DefaultLimit = 5

// Matcher finds in-stock products for a free-text user message.
// Category matches take strict precedence over the free-text fallback.
type Matcher struct {
	store Store
	limit int
}

func NewMatcher(store Store, limit int) *Matcher {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Matcher{store: store, limit: limit}
}

// Match returns active, in-stock products matching the query. Any
// store failure degrades to an empty result: a transient outage must
// suppress product mentions, not the conversation.
func (m *Matcher) Match(ctx context.Context, query string) []models.Product {
	categories, err := m.store.ActiveCategories(ctx)
	if err != nil {
		slog.Error("category lookup failed", "error", err)
		categories = nil
	}

	var products []models.Product
	if ids := MatchCategories(query, categories); len(ids) > 0 {
		products, err = m.store.ProductsByCategories(ctx, ids, m.limit)
	} else {
		products, err = m.store.ProductsByText(ctx, query, m.limit)
	}
	if err != nil {
		slog.Error("product search failed", "query", query, "error", err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

// MatchCategories returns the ids of categories whose name contains
// the query, or one of whose keywords is contained in the query. The
// two directions are intentionally asymmetric; this mirrors how the
// search has always behaved and changing either side changes recall.
func MatchCategories(query string, categories []models.ProductCategory) []uuid.UUID {
	queryLower := strings.ToLower(query)

	var ids []uuid.UUID
	for _, cat := range categories {
		nameMatch := strings.Contains(strings.ToLower(cat.Name), queryLower)

		keywordMatch := false
		for _, kw := range cat.SearchKeywords {
			if strings.Contains(queryLower, strings.ToLower(kw)) {
				keywordMatch = true
				break
			}
		}

		if nameMatch || keywordMatch {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}
