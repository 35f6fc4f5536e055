package catalog

import (
	"context"
	"errors"
	"testing"

	"mavazimarket/internal/domain"
)

type stubProductRepo struct {
	products []domain.Product
	upserted *domain.Product
}

func (s *stubProductRepo) List(_ context.Context, categorySlug string) ([]domain.Product, error) {
	if categorySlug == "" {
		return s.products, nil
	}
	var out []domain.Product
	for _, p := range s.products {
		if p.CategorySlug == categorySlug {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].Slug == slug {
			return &s.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.upserted = &p
	return &p, nil
}

func (s *stubProductRepo) Delete(_ context.Context, id string) error {
	for _, p := range s.products {
		if p.ID == id {
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubCategoryRepo struct {
	categories []domain.Category
}

func (s *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for i := range s.categories {
		if s.categories[i].Slug == slug {
			return &s.categories[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubCategoryRepo) Upsert(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, nil
}

func (s *stubCategoryRepo) Delete(_ context.Context, slug string) error {
	for _, c := range s.categories {
		if c.Slug == slug {
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestListProductsFiltersByCategory(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{
		{ID: "p1", Slug: "ankara-shirt", CategorySlug: "men"},
		{ID: "p2", Slug: "kitenge-dress", CategorySlug: "women"},
	}}
	svc := New(repo, &stubCategoryRepo{})

	got, err := svc.ListProducts(context.Background(), "women")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "kitenge-dress" {
		t.Fatalf("expected only women products, got %+v", got)
	}
}

func TestGetProductRequiresSlug(t *testing.T) {
	svc := New(&stubProductRepo{}, &stubCategoryRepo{})
	if _, err := svc.GetProduct(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank slug")
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := New(&stubProductRepo{}, &stubCategoryRepo{})
	_, err := svc.GetProduct(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertProductValidates(t *testing.T) {
	svc := New(&stubProductRepo{}, &stubCategoryRepo{})

	cases := []domain.Product{
		{Slug: "", Name: "Shirt", PriceCents: 1000},
		{Slug: "shirt", Name: "", PriceCents: 1000},
		{Slug: "shirt", Name: "Shirt", PriceCents: -1},
	}
	for _, p := range cases {
		if _, err := svc.UpsertProduct(context.Background(), p); err == nil {
			t.Fatalf("expected validation error for %+v", p)
		}
	}
}

func TestUpsertProductRejectsUnknownCategory(t *testing.T) {
	svc := New(&stubProductRepo{}, &stubCategoryRepo{})
	_, err := svc.UpsertProduct(context.Background(), domain.Product{
		Slug: "ankara-shirt", Name: "Ankara Shirt", PriceCents: 4500, CategorySlug: "nope",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown category, got %v", err)
	}
}

func TestUpsertProductPersists(t *testing.T) {
	repo := &stubProductRepo{}
	cats := &stubCategoryRepo{categories: []domain.Category{{Slug: "men", Name: "Men"}}}
	svc := New(repo, cats)

	got, err := svc.UpsertProduct(context.Background(), domain.Product{
		Slug: "ankara-shirt", Name: "Ankara Shirt", PriceCents: 4500, CategorySlug: "men",
	})
	if err != nil {
		t.Fatalf("UpsertProduct: %v", err)
	}
	if repo.upserted == nil || repo.upserted.Slug != "ankara-shirt" {
		t.Fatalf("expected product to reach repository, got %+v", repo.upserted)
	}
	if got.PriceCents != 4500 {
		t.Fatalf("expected price 4500, got %d", got.PriceCents)
	}
}

func TestUpsertCategoryValidates(t *testing.T) {
	svc := New(&stubProductRepo{}, &stubCategoryRepo{})
	if _, err := svc.UpsertCategory(context.Background(), domain.Category{Slug: "", Name: "Men"}); err == nil {
		t.Fatal("expected error for blank slug")
	}
	if _, err := svc.UpsertCategory(context.Background(), domain.Category{Slug: "men", Name: ""}); err == nil {
		t.Fatal("expected error for blank name")
	}
}
