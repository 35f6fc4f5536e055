package domain

import "time"

type Order struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Items      []CartItem `json:"items"`
	TotalCents int64      `json:"totalCents"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Order statuses. Orders start as "placed"; the admin console moves them on.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)
