package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setterlabs/crm-backend/internal/models"
)

type stubCatalogStore struct {
	categories     []models.ProductCategory
	categoriesErr  error
	byCategory     []models.Product
	byCategoryErr  error
	byText         []models.Product
	byTextErr      error
	byCategoryArgs []uuid.UUID
	byTextQuery    string
}

func (s *stubCatalogStore) ActiveCategories(_ context.Context) ([]models.ProductCategory, error) {
	return s.categories, s.categoriesErr
}

func (s *stubCatalogStore) ProductsByCategories(_ context.Context, ids []uuid.UUID, _ int) ([]models.Product, error) {
	s.byCategoryArgs = ids
	return s.byCategory, s.byCategoryErr
}

func (s *stubCatalogStore) ProductsByText(_ context.Context, query string, _ int) ([]models.Product, error) {
	s.byTextQuery = query
	return s.byText, s.byTextErr
}

func (s *stubCatalogStore) ListActive(_ context.Context) ([]models.Product, error) {
	return nil, nil
}

func (s *stubCatalogStore) GetByID(_ context.Context, _ uuid.UUID) (*models.Product, error) {
	return nil, nil
}

func cat(name string, keywords ...string) models.ProductCategory {
	return models.ProductCategory{ID: uuid.New(), Name: name, SearchKeywords: keywords, IsActive: true}
}

func TestMatchCategories_NameContainsQuery(t *testing.T) {
	anillos := cat("Anillos")
	ids := MatchCategories("anillo", []models.ProductCategory{anillos, cat("Collares")})
	require.Len(t, ids, 1)
	assert.Equal(t, anillos.ID, ids[0])
}

func TestMatchCategories_KeywordInsideQuery(t *testing.T) {
	// Keyword matching runs the other way around: the keyword must be
	// a substring of the query.
	anillos := cat("Anillos", "compromiso", "oro")
	ids := MatchCategories("busco algo de oro para mi novia", []models.ProductCategory{anillos})
	require.Len(t, ids, 1)
	assert.Equal(t, anillos.ID, ids[0])
}

func TestMatchCategories_QueryInsideKeywordDoesNotMatch(t *testing.T) {
	// "oro" as a query does not match the keyword "oro blanco";
	// the direction is keyword-in-query, not query-in-keyword.
	ids := MatchCategories("oro", []models.ProductCategory{cat("Relojes", "oro blanco")})
	assert.Empty(t, ids)
}

func TestMatchCategories_NoMatch(t *testing.T) {
	ids := MatchCategories("zapatillas", []models.ProductCategory{cat("Anillos", "compromiso")})
	assert.Empty(t, ids)
}

func TestMatch_CategoryPrecedence(t *testing.T) {
	anillos := cat("Anillos")
	inCategory := models.Product{ID: uuid.New(), Name: "Anillo de Oro"}
	store := &stubCatalogStore{
		categories: []models.ProductCategory{anillos},
		byCategory: []models.Product{inCategory},
		byText:     []models.Product{{ID: uuid.New(), Name: "Collar anillado"}},
	}

	m := NewMatcher(store, 5)
	got := m.Match(context.Background(), "anillo")

	require.Len(t, got, 1)
	assert.Equal(t, inCategory.ID, got[0].ID)
	assert.Equal(t, []uuid.UUID{anillos.ID}, store.byCategoryArgs)
	assert.Empty(t, store.byTextQuery, "free-text fallback must not run when a category matched")
}

func TestMatch_TextFallbackWhenNoCategoryMatches(t *testing.T) {
	fallback := models.Product{ID: uuid.New(), Name: "Perfume floral"}
	store := &stubCatalogStore{
		categories: []models.ProductCategory{cat("Anillos")},
		byText:     []models.Product{fallback},
	}

	m := NewMatcher(store, 5)
	got := m.Match(context.Background(), "perfume")

	require.Len(t, got, 1)
	assert.Equal(t, fallback.ID, got[0].ID)
	assert.Equal(t, "perfume", store.byTextQuery)
}

func TestMatch_StoreErrorsReturnEmptyList(t *testing.T) {
	store := &stubCatalogStore{
		categoriesErr: errors.New("timeout"),
		byTextErr:     errors.New("timeout"),
	}

	m := NewMatcher(store, 5)
	got := m.Match(context.Background(), "anillo")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_NoResultsIsEmptyNotNil(t *testing.T) {
	store := &stubCatalogStore{categories: []models.ProductCategory{cat("Anillos")}}

	m := NewMatcher(store, 5)
	got := m.Match(context.Background(), "algo inexistente")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
