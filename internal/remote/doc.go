package remote

import (
	"strings"

	"mavazimarket/internal/domain"
)

// cartItemDoc is the serialization contract for one cart line document.
// Writes always go through this shape; reads parse raw document data so a
// document written by an older client (or by hand) degrades softly instead
// of failing the whole cart load.
type cartItemDoc struct {
	ProductID  string `firestore:"productId"`
	Name       string `firestore:"name"`
	PriceCents int64  `firestore:"priceCents"`
	Image      string `firestore:"image"`
	Quantity   int64  `firestore:"quantity"`
	Size       string `firestore:"size"`
	Color      string `firestore:"color"`
	Slug       string `firestore:"slug"`
}

func docFromItem(item domain.CartItem) cartItemDoc {
	return cartItemDoc{
		ProductID:  item.ProductID,
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Image:      item.Image,
		Quantity:   int64(item.Quantity),
		Size:       item.Size,
		Color:      item.Color,
		Slug:       item.Slug,
	}
}

// itemFromData rebuilds a cart line from raw document data. The document ID
// is the line identity. Returns false for documents that cannot be a valid
// line (missing or non-positive quantity); callers skip those.
func itemFromData(docID string, raw map[string]interface{}) (domain.CartItem, bool) {
	id := strings.TrimSpace(docID)
	if id == "" || raw == nil {
		return domain.CartItem{}, false
	}
	qty := asInt(raw["quantity"])
	if qty < 1 {
		return domain.CartItem{}, false
	}
	return domain.CartItem{
		ID:         id,
		ProductID:  asString(raw["productId"]),
		Name:       asString(raw["name"]),
		PriceCents: asInt64(raw["priceCents"]),
		Image:      asString(raw["image"]),
		Quantity:   qty,
		Size:       asString(raw["size"]),
		Color:      asString(raw["color"]),
		Slug:       asString(raw["slug"]),
	}, true
}

// wishlistFromData pulls the wishlist set off raw profile data, skipping
// anything that is not a non-empty string.
func wishlistFromData(raw map[string]interface{}) []string {
	if raw == nil {
		return nil
	}
	entries, ok := raw["wishlist"].([]interface{})
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(entries))
	var out []string
	for _, e := range entries {
		id := strings.TrimSpace(asString(e))
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asInt(v interface{}) int {
	return int(asInt64(v))
}
