package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"mavazimarket/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, slug, name, COALESCE(description, ''), price_cents, COALESCE(image, ''), COALESCE(category_slug, ''), sizes, colors, created_at`

func (r *postgresRepo) List(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE ($1 = '' OR category_slug = $1)
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, categorySlug)
	if err != nil {
		r.logger.Error().Str("category", categorySlug).Err(err).Msg("product repo: list")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE slug = $1
`
	return r.getOne(ctx, q, slug)
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, slug, name, description, price_cents, image, category_slug, sizes, colors)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''), COALESCE($8, '{}'), COALESCE($9, '{}'))
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    image = EXCLUDED.image,
    category_slug = EXCLUDED.category_slug,
    sizes = EXCLUDED.sizes,
    colors = EXCLUDED.colors
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q,
		p.ID, p.Slug, p.Name, p.Description, p.PriceCents, p.Image, p.CategorySlug, p.Sizes, p.Colors,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Error().Str("slug", p.Slug).Err(err).Msg("product repo: upsert")
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) getOne(ctx context.Context, q, arg string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, q, arg)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Slug, &p.Name, &p.Description, &p.PriceCents, &p.Image, &p.CategorySlug, &p.Sizes, &p.Colors, &p.CreatedAt)
	return p, err
}
