package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/pkg/errors"
)

type OrderUseCase struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	shippingFee     int64
	freeShippingMin int64
}

func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, shippingFee, freeShippingMin int64) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		shippingFee:     shippingFee,
		freeShippingMin: freeShippingMin,
	}
}

type CheckoutItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CheckoutInput struct {
	Customer        entity.Customer        `json:"customer"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	Items           []CheckoutItemInput    `json:"items"`
	PaymentMethod   string                 `json:"payment_method"`
}

// Checkout snapshots the purchased products into an immutable order.
// Item totals and the order total are computed here and never re-validated.
func (uc *OrderUseCase) Checkout(ctx context.Context, input CheckoutInput) (*entity.Order, repository.WriteResult, error) {
	if len(input.Items) == 0 {
		return nil, repository.WriteResult{}, errors.BadRequest("Cart is empty", nil)
	}

	catalog := uc.productRepo.LoadAll(ctx)
	byID := make(map[int64]entity.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	now := time.Now()
	var subtotal int64
	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, repository.WriteResult{}, errors.BadRequest("Item quantity must be positive", nil)
		}
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, repository.WriteResult{}, errors.BadRequest(fmt.Sprintf("Product %d is no longer available", item.ProductID), nil)
		}
		if !product.InStock {
			return nil, repository.WriteResult{}, errors.BadRequest(fmt.Sprintf("%s is out of stock", product.Name), nil)
		}

		total := product.Price * int64(item.Quantity)
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Total:     total,
		})
		subtotal += total
	}

	shipping := uc.shippingFee
	if subtotal >= uc.freeShippingMin {
		shipping = 0
	}

	order := &entity.Order{
		OrderID:         fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Customer:        input.Customer,
		ShippingAddress: input.ShippingAddress,
		Items:           items,
		PaymentMethod:   input.PaymentMethod,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           subtotal + shipping,
		Status:          entity.OrderStatusConfirmed,
		StatusHistory: []entity.StatusEntry{{
			Status:    entity.OrderStatusConfirmed,
			Timestamp: now.UnixMilli(),
			Message:   "Order placed",
		}},
		CreatedAt: now.UnixMilli(),
	}

	result := uc.orderRepo.Put(ctx, order)
	return order, result, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, ok := uc.orderRepo.Get(ctx, orderID)
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

// ListByEmail backs the customer's order history page.
func (uc *OrderUseCase) ListByEmail(ctx context.Context, email string) []entity.Order {
	email = strings.ToLower(email)
	all := uc.orderRepo.LoadAll(ctx)
	orders := make([]entity.Order, 0)
	for _, order := range all {
		if strings.ToLower(order.Customer.Email) == email {
			orders = append(orders, order)
		}
	}
	return orders
}

func (uc *OrderUseCase) ListAll(ctx context.Context) []entity.Order {
	return uc.orderRepo.LoadAll(ctx)
}

// UpdateStatus appends to the history and sets the new status. The status is
// free-form: no transition table is enforced. Passing a tracking number is
// optional and overwrites the previous one.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, status, message, trackingNumber string) (*entity.Order, repository.WriteResult, error) {
	if status == "" {
		return nil, repository.WriteResult{}, errors.BadRequest("Status is required", nil)
	}

	order, ok := uc.orderRepo.Get(ctx, orderID)
	if !ok {
		return nil, repository.WriteResult{}, errors.NotFound("Order", nil)
	}

	order.Status = status
	order.StatusHistory = append(order.StatusHistory, entity.StatusEntry{
		Status:    status,
		Timestamp: time.Now().UnixMilli(),
		Message:   message,
	})
	if trackingNumber != "" {
		order.TrackingNumber = trackingNumber
	}

	result := uc.orderRepo.Put(ctx, order)
	return order, result, nil
}

func (uc *OrderUseCase) Watch(ctx context.Context, fn func([]entity.Order)) func() {
	return uc.orderRepo.Watch(ctx, fn)
}
