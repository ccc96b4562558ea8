package repository

import (
	"context"
	"sort"
	"time"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/internal/store"
)

type firebaseOrderRepository struct {
	orders *store.KeyedSet[entity.Order]
}

func NewFirebaseOrderRepository(remote store.Remote, mirror *store.Mirror, notifier *store.Notifier, pollEvery time.Duration) repository.OrderRepository {
	return &firebaseOrderRepository{
		orders: store.NewKeyedSet[entity.Order](remote, mirror, notifier, pathOrders, keyOrders, pollEvery),
	}
}

func (r *firebaseOrderRepository) Get(ctx context.Context, orderID string) (*entity.Order, bool) {
	order, ok := r.orders.Get(ctx, orderID)
	if !ok {
		return nil, false
	}
	return &order, true
}

func (r *firebaseOrderRepository) Put(ctx context.Context, order *entity.Order) repository.WriteResult {
	result := r.orders.Put(ctx, order.OrderID, *order)
	return writeResult(result.Remote, result.Message)
}

func (r *firebaseOrderRepository) LoadAll(ctx context.Context) []entity.Order {
	all := r.orders.LoadAll(ctx)
	orders := make([]entity.Order, 0, len(all))
	for _, order := range all {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders
}

func (r *firebaseOrderRepository) Watch(ctx context.Context, fn func([]entity.Order)) func() {
	return r.orders.Watch(ctx, func(all map[string]entity.Order) {
		orders := make([]entity.Order, 0, len(all))
		for _, order := range all {
			orders = append(orders, order)
		}
		sort.Slice(orders, func(i, j int) bool {
			return orders[i].CreatedAt > orders[j].CreatedAt
		})
		fn(orders)
	})
}
