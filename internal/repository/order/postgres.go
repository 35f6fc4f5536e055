package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

const orderColumns = `id::text, user_id, items, total_cents, status, created_at`

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	const q = `
INSERT INTO orders (id, user_id, items, total_cents, status)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5)
RETURNING id::text, created_at
`
	out := o
	err = r.pool.QueryRow(ctx, q, o.ID, o.UserID, items, o.TotalCents, o.Status).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Error().Str("user_id", o.UserID).Err(err).Msg("order repo: create")
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	q := `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	row := r.pool.QueryRow(ctx, q, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	q := `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Error().Str("user_id", userID).Err(err).Msg("order repo: list by user")
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	q := `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("order repo: list")
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	q := `
UPDATE orders
SET status = $2
WHERE id = $1
RETURNING ` + orderColumns + `
`
	row := r.pool.QueryRow(ctx, q, id, status)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o     domain.Order
		items []byte
	)
	if err := row.Scan(&o.ID, &o.UserID, &items, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
		return domain.Order{}, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return domain.Order{}, fmt.Errorf("decode order items: %w", err)
		}
	}
	return o, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
