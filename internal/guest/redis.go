package guest

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"mavazimarket/internal/domain"
)

// commands is the slice of the Redis API the store needs. *redis.Client
// satisfies it; tests swap in a map-backed fake.
type commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisStore struct {
	client commands
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedis builds a Store over Redis. A ttl of zero keeps guest records until
// they are cleared explicitly (after merge or cart-clear).
func NewRedis(client commands, ttl time.Duration, logger zerolog.Logger) Store {
	return &redisStore{client: client, ttl: ttl, logger: logger}
}

func cartKey(deviceID string) string     { return "guest:" + deviceID + ":cart" }
func wishlistKey(deviceID string) string { return "guest:" + deviceID + ":wishlist" }

func (s *redisStore) LoadCart(ctx context.Context, deviceID string) ([]domain.CartItem, error) {
	raw, err := s.client.Get(ctx, cartKey(deviceID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// A corrupt guest record loads as an empty cart, never an error.
		s.logger.Warn().Str("device", deviceID).Err(err).Msg("guest store: malformed cart record, treating as empty")
		return nil, nil
	}
	return sanitizeItems(items), nil
}

func (s *redisStore) SaveCart(ctx context.Context, deviceID string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(deviceID), raw, s.ttl).Err()
}

func (s *redisStore) ClearCart(ctx context.Context, deviceID string) error {
	return s.client.Del(ctx, cartKey(deviceID)).Err()
}

func (s *redisStore) LoadWishlist(ctx context.Context, deviceID string) ([]string, error) {
	raw, err := s.client.Get(ctx, wishlistKey(deviceID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn().Str("device", deviceID).Err(err).Msg("guest store: malformed wishlist record, treating as empty")
		return nil, nil
	}
	return dedupeIDs(ids), nil
}

func (s *redisStore) SaveWishlist(ctx context.Context, deviceID string, productIDs []string) error {
	raw, err := json.Marshal(dedupeIDs(productIDs))
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wishlistKey(deviceID), raw, s.ttl).Err()
}

func (s *redisStore) ClearWishlist(ctx context.Context, deviceID string) error {
	return s.client.Del(ctx, wishlistKey(deviceID)).Err()
}

// sanitizeItems drops entries that cannot be a valid cart line so that a
// partially-corrupt record degrades instead of failing.
func sanitizeItems(items []domain.CartItem) []domain.CartItem {
	out := items[:0]
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" || it.Quantity < 1 {
			continue
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// dedupeIDs enforces set semantics on the wishlist while keeping first-seen
// order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
