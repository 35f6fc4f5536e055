package product

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"mavazimarket/internal/domain"
	"mavazimarket/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE orders, products, categories RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func TestPostgres_UpsertListAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	if _, err := pool.Exec(ctx, `INSERT INTO categories (slug, name) VALUES ('men', 'Men')`); err != nil {
		t.Fatalf("insert category: %v", err)
	}

	repo := NewPostgres(pool, zerolog.Nop())

	saved, err := repo.Upsert(ctx, domain.Product{
		Slug:         "ankara-shirt",
		Name:         "Ankara Print Shirt",
		Description:  "Short-sleeve shirt",
		PriceCents:   4500,
		CategorySlug: "men",
		Sizes:        []string{"M", "L"},
		Colors:       []string{"Blue"},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", saved)
	}

	list, err := repo.List(ctx, "men")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Slug != "ankara-shirt" {
		t.Fatalf("unexpected list %+v", list)
	}
	if len(list[0].Sizes) != 2 {
		t.Fatalf("expected sizes round-tripped, got %+v", list[0].Sizes)
	}

	got, err := repo.GetBySlug(ctx, "ankara-shirt")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != saved.ID {
		t.Fatalf("expected id %s, got %s", saved.ID, got.ID)
	}
	if _, err := repo.GetByID(ctx, saved.ID); err != nil {
		t.Fatalf("GetByID: %v", err)
	}
}

func TestPostgres_UpsertUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, zerolog.Nop())

	first, err := repo.Upsert(ctx, domain.Product{Slug: "kitenge-dress", Name: "Kitenge Dress", PriceCents: 8000})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := repo.Upsert(ctx, domain.Product{Slug: "kitenge-dress", Name: "Kitenge Maxi Dress", PriceCents: 8500})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row, got %s and %s", first.ID, second.ID)
	}

	got, err := repo.GetBySlug(ctx, "kitenge-dress")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.Name != "Kitenge Maxi Dress" || got.PriceCents != 8500 {
		t.Fatalf("expected updated fields, got %+v", got)
	}
}

func TestPostgres_GetMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, zerolog.Nop())
	if _, err := repo.GetBySlug(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
