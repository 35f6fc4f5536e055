package domain

import "strings"

// CartItem is one line of a cart: a product, an optional size/color variant,
// and a quantity. ID is the line identity and doubles as the remote document
// key; variants of the same product get distinct IDs (see LineID).
type CartItem struct {
	ID         string `json:"id"`
	ProductID  string `json:"productId,omitempty"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Image      string `json:"image,omitempty"`
	Quantity   int    `json:"quantity"`
	Size       string `json:"size,omitempty"`
	Color      string `json:"color,omitempty"`
	Slug       string `json:"slug,omitempty"`
}

// LineID derives the cart line identity for a product variant. A product with
// no variant descriptors keeps its plain product ID; otherwise size and color
// are folded into the key so two variants never collide on one line.
func LineID(productID, size, color string) string {
	productID = strings.TrimSpace(productID)
	size = strings.TrimSpace(size)
	color = strings.TrimSpace(color)
	if size == "" && color == "" {
		return productID
	}
	return productID + "::" + size + "::" + color
}
