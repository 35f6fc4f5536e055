package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mavazimarket/internal/domain"
	"mavazimarket/internal/repository/order"
	"mavazimarket/internal/service/cart"
)

// Service turns the current cart into a persisted order. Checkout is only
// available to authenticated users; guests must sign in first so their cart
// merges onto the account before placing.
type Service struct {
	orders order.Repository
	logger zerolog.Logger
}

func New(orders order.Repository, logger zerolog.Logger) *Service {
	return &Service{orders: orders, logger: logger}
}

// Place snapshots the cart into a new order and empties the cart once the
// order has been written. An empty cart is rejected before any write.
func (s *Service) Place(ctx context.Context, userID string, c *cart.State) (*domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("checkout requires an authenticated user")
	}
	items := c.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}
	o := domain.Order{
		ID:         uuid.NewString(),
		UserID:     userID,
		Items:      items,
		TotalCents: c.TotalAmountCents(),
		Status:     domain.OrderStatusPlaced,
	}
	created, err := s.orders.Create(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if err := c.Clear(ctx); err != nil {
		// The order is already persisted; a cart that failed to empty is
		// an annoyance, not a lost sale.
		s.logger.Warn().Str("order_id", created.ID).Err(err).Msg("order placed but cart not cleared")
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return s.orders.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	switch status {
	case domain.OrderStatusPlaced, domain.OrderStatusShipped, domain.OrderStatusDelivered, domain.OrderStatusCancelled:
	default:
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}
