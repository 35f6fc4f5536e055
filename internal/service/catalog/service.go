package catalog

import (
	"context"
	"fmt"
	"strings"

	"mavazimarket/internal/domain"
	"mavazimarket/internal/repository/category"
	"mavazimarket/internal/repository/product"
)

// Service exposes the storefront catalog: categories and the products
// filed under them.
type Service struct {
	products   product.Repository
	categories category.Repository
}

func New(products product.Repository, categories category.Repository) *Service {
	return &Service{products: products, categories: categories}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("category slug is required")
	}
	return s.categories.GetBySlug(ctx, slug)
}

func (s *Service) ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	return s.products.List(ctx, categorySlug)
}

func (s *Service) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("product slug is required")
	}
	return s.products.GetBySlug(ctx, slug)
}

func (s *Service) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("product id is required")
	}
	return s.products.GetByID(ctx, id)
}

func (s *Service) UpsertProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.Slug) == "" {
		return nil, fmt.Errorf("product slug is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if p.PriceCents < 0 {
		return nil, fmt.Errorf("product price must not be negative")
	}
	if p.CategorySlug != "" {
		if _, err := s.categories.GetBySlug(ctx, p.CategorySlug); err != nil {
			return nil, fmt.Errorf("resolve category %q: %w", p.CategorySlug, err)
		}
	}
	return s.products.Upsert(ctx, p)
}

func (s *Service) UpsertCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if strings.TrimSpace(c.Slug) == "" {
		return nil, fmt.Errorf("category slug is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return s.categories.Upsert(ctx, c)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func (s *Service) DeleteCategory(ctx context.Context, slug string) error {
	return s.categories.Delete(ctx, slug)
}
