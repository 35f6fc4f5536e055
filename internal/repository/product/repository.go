package product

import (
	"context"

	"mavazimarket/internal/domain"
)

type Repository interface {
	List(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
