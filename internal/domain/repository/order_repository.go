package repository

import (
	"context"

	"taruvae/internal/domain/entity"
)

// OrderRepository addresses orders individually at orders/{orderId}.
type OrderRepository interface {
	Get(ctx context.Context, orderID string) (*entity.Order, bool)
	Put(ctx context.Context, order *entity.Order) WriteResult
	LoadAll(ctx context.Context) []entity.Order
	Watch(ctx context.Context, fn func([]entity.Order)) func()
}
