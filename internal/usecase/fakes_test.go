package usecase_test

import (
	"context"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
)

// In-memory repositories for usecase tests. Writes count so tests can assert
// that invariant violations are rejected before any store call.

type fakeProductRepo struct {
	products []entity.Product
	saves    int
}

func (f *fakeProductRepo) LoadAll(context.Context) []entity.Product {
	return append([]entity.Product{}, f.products...)
}

func (f *fakeProductRepo) SaveAll(_ context.Context, products []entity.Product) repository.WriteResult {
	f.products = products
	f.saves++
	return repository.WriteResult{Remote: true}
}

func (f *fakeProductRepo) Watch(context.Context, func([]entity.Product)) func() {
	return func() {}
}

type fakeOrderRepo struct {
	orders map[string]entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]entity.Order)}
}

func (f *fakeOrderRepo) Get(_ context.Context, orderID string) (*entity.Order, bool) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, false
	}
	return &order, true
}

func (f *fakeOrderRepo) Put(_ context.Context, order *entity.Order) repository.WriteResult {
	f.orders[order.OrderID] = *order
	return repository.WriteResult{Remote: true}
}

func (f *fakeOrderRepo) LoadAll(context.Context) []entity.Order {
	orders := make([]entity.Order, 0, len(f.orders))
	for _, order := range f.orders {
		orders = append(orders, order)
	}
	return orders
}

func (f *fakeOrderRepo) Watch(context.Context, func([]entity.Order)) func() {
	return func() {}
}

type fakeBlogRepo struct {
	posts []entity.BlogPost
	saves int
}

func (f *fakeBlogRepo) LoadAll(context.Context) []entity.BlogPost {
	return append([]entity.BlogPost{}, f.posts...)
}

func (f *fakeBlogRepo) SaveAll(_ context.Context, posts []entity.BlogPost) repository.WriteResult {
	f.posts = posts
	f.saves++
	return repository.WriteResult{Remote: true}
}

func (f *fakeBlogRepo) Watch(context.Context, func([]entity.BlogPost)) func() {
	return func() {}
}

type fakeReviewRepo struct {
	reviews []entity.ProductReview
}

func (f *fakeReviewRepo) LoadAll(context.Context) []entity.ProductReview {
	return append([]entity.ProductReview{}, f.reviews...)
}

func (f *fakeReviewRepo) SaveAll(_ context.Context, reviews []entity.ProductReview) repository.WriteResult {
	f.reviews = reviews
	return repository.WriteResult{Remote: true}
}

type fakeAddressRepo struct {
	books map[string][]entity.Address
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{books: make(map[string][]entity.Address)}
}

func (f *fakeAddressRepo) LoadBook(_ context.Context, ownerID string) []entity.Address {
	return append([]entity.Address{}, f.books[ownerID]...)
}

func (f *fakeAddressRepo) SaveBook(_ context.Context, ownerID string, book []entity.Address) repository.WriteResult {
	f.books[ownerID] = book
	return repository.WriteResult{Remote: true}
}

type fakeCategoryRepo struct {
	categories []entity.Category
}

func (f *fakeCategoryRepo) LoadAll(context.Context) []entity.Category {
	return append([]entity.Category{}, f.categories...)
}

func (f *fakeCategoryRepo) SaveAll(_ context.Context, categories []entity.Category) repository.WriteResult {
	f.categories = categories
	return repository.WriteResult{Remote: true}
}
