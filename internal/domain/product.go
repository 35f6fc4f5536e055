package domain

import "time"

type Product struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	PriceCents   int64     `json:"priceCents"`
	Image        string    `json:"image,omitempty"`
	CategorySlug string    `json:"categorySlug,omitempty"`
	Sizes        []string  `json:"sizes,omitempty"`
	Colors       []string  `json:"colors,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
