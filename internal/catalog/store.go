package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/setterlabs/crm-backend/internal/cache"
	"github.com/setterlabs/crm-backend/internal/models"
)

// Store reads the product catalog. All reads are restricted to active
// rows; product searches additionally require stock on hand.
type Store interface {
	ActiveCategories(ctx context.Context) ([]models.ProductCategory, error)
	ProductsByCategories(ctx context.Context, categoryIDs []uuid.UUID, limit int) ([]models.Product, error)
	ProductsByText(ctx context.Context, query string, limit int) ([]models.Product, error)
	ListActive(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

const categoriesCacheKey = "catalog:categories:active"

// PGStore reads the catalog from Postgres, with an optional
// read-through cache for the category list.
type PGStore struct {
	db       *pgxpool.Pool
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewPGStore(db *pgxpool.Pool, c *cache.Cache) *PGStore {
	return &PGStore{db: db, cache: c, cacheTTL: 60 * time.Second}
}

func (s *PGStore) ActiveCategories(ctx context.Context) ([]models.ProductCategory, error) {
	if s.cache != nil {
		var cached []models.ProductCategory
		if err := s.cache.Get(ctx, categoriesCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(search_keywords, '{}')
		 FROM product_categories WHERE is_active = true`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var cats []models.ProductCategory
	for rows.Next() {
		var c models.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SearchKeywords); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.IsActive = true
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	if s.cache != nil {
		// Best effort; a cold cache just means another query.
		_ = s.cache.Set(ctx, categoriesCacheKey, cats, s.cacheTTL)
	}
	return cats, nil
}

const productSelect = `
	SELECT p.id, p.name, COALESCE(p.description, ''), p.price, p.currency,
	       p.stock_quantity, COALESCE(p.tags, '{}'), COALESCE(p.seller_pitch, ''),
	       COALESCE(p.image_urls, '{}'), p.category_id, p.is_active, p.created_at,
	       c.id, c.name, c.description
	FROM products p
	LEFT JOIN product_categories c ON c.id = p.category_id`

func (s *PGStore) ProductsByCategories(ctx context.Context, categoryIDs []uuid.UUID, limit int) ([]models.Product, error) {
	rows, err := s.db.Query(ctx, productSelect+`
		WHERE p.is_active = true AND p.stock_quantity > 0 AND p.category_id = ANY($1)
		LIMIT $2`, categoryIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("query products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *PGStore) ProductsByText(ctx context.Context, query string, limit int) ([]models.Product, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.Query(ctx, productSelect+`
		WHERE p.is_active = true AND p.stock_quantity > 0
		  AND (p.name ILIKE $1 OR p.description ILIKE $1
		       OR $2 = ANY(p.tags) OR $2 = ANY(p.search_keywords))
		LIMIT $3`, pattern, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query products by text: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *PGStore) ListActive(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.Query(ctx, productSelect+`
		WHERE p.is_active = true
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *PGStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	rows, err := s.db.Query(ctx, productSelect+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, pgx.ErrNoRows
	}
	return &products[0], nil
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		var catID *uuid.UUID
		var catName, catDesc *string
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency,
			&p.StockQuantity, &p.Tags, &p.SellerPitch,
			&p.ImageURLs, &p.CategoryID, &p.IsActive, &p.CreatedAt,
			&catID, &catName, &catDesc,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if catID != nil {
			p.Category = &models.ProductCategory{ID: *catID, Name: deref(catName), Description: deref(catDesc)}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
