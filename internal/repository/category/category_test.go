package category

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

func TestPostgres_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, zerolog.Nop())

	saved, err := repo.Upsert(ctx, domain.Category{Slug: "men", Name: "Men", Description: "Menswear"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if saved.ID == "" || saved.Slug != "men" {
		t.Fatalf("unexpected category %+v", saved)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Slug != "men" {
		t.Fatalf("unexpected list %+v", list)
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

	first, err := repo.Upsert(ctx, domain.Category{Slug: "women", Name: "Women"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := repo.Upsert(ctx, domain.Category{Slug: "women", Name: "Women's Wear"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row, got %s and %s", first.ID, second.ID)
	}

	got, err := repo.GetBySlug(ctx, "women")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.Name != "Women's Wear" {
		t.Fatalf("expected updated name, got %+v", got)
	}
}

func TestPostgres_DeleteMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, zerolog.Nop())
	if err := repo.Delete(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
