package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Slug        string
	Name        string
	Description string
}

type productSeed struct {
	Slug         string
	Name         string
	Description  string
	PriceCents   int64
	Image        string
	CategorySlug string
	Sizes        []string
	Colors       []string
}

// Apply inserts starter catalog data for manual testing. It is idempotent
// via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{Slug: "men", Name: "Men", Description: "Menswear and tailored pieces"},
		{Slug: "women", Name: "Women", Description: "Dresses, wraps and separates"},
		{Slug: "accessories", Name: "Accessories", Description: "Headwraps, bags and jewellery"},
	}
	for _, c := range categories {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
	}

	products := []productSeed{
		{
			Slug:         "ankara-shirt",
			Name:         "Ankara Print Shirt",
			Description:  "Short-sleeve shirt in bold ankara wax print",
			PriceCents:   4500,
			Image:        "/images/ankara-shirt.jpg",
			CategorySlug: "men",
			Sizes:        []string{"S", "M", "L", "XL"},
			Colors:       []string{"Blue", "Orange"},
		},
		{
			Slug:         "kitenge-dress",
			Name:         "Kitenge Maxi Dress",
			Description:  "Floor-length dress in hand-dyed kitenge fabric",
			PriceCents:   8000,
			Image:        "/images/kitenge-dress.jpg",
			CategorySlug: "women",
			Sizes:        []string{"S", "M", "L"},
			Colors:       []string{"Green", "Red"},
		},
		{
			Slug:         "agbada-robe",
			Name:         "Agbada Robe",
			Description:  "Three-piece embroidered agbada set",
			PriceCents:   15000,
			Image:        "/images/agbada-robe.jpg",
			CategorySlug: "men",
			Sizes:        []string{"M", "L", "XL"},
		},
		{
			Slug:         "beaded-headwrap",
			Name:         "Beaded Headwrap",
			Description:  "Cotton headwrap with hand-sewn beadwork",
			PriceCents:   1800,
			Image:        "/images/beaded-headwrap.jpg",
			CategorySlug: "accessories",
		},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) error {
	const q = `
INSERT INTO categories (slug, name, description)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description
`
	_, err := pool.Exec(ctx, q, c.Slug, c.Name, c.Description)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (slug, name, description, price_cents, image, category_slug, sizes, colors)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    image = EXCLUDED.image,
    category_slug = EXCLUDED.category_slug,
    sizes = EXCLUDED.sizes,
    colors = EXCLUDED.colors
`
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	colors := p.Colors
	if colors == nil {
		colors = []string{}
	}
	_, err := pool.Exec(ctx, q, p.Slug, p.Name, p.Description, p.PriceCents, p.Image, p.CategorySlug, sizes, colors)
	return err
}
