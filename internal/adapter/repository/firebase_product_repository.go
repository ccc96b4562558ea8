package repository

import (
	"context"
	"time"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/internal/store"
)

type firebaseProductRepository struct {
	products *store.Collection[entity.Product]
}

func NewFirebaseProductRepository(remote store.Remote, mirror *store.Mirror, notifier *store.Notifier, pollEvery time.Duration) repository.ProductRepository {
	return &firebaseProductRepository{
		products: store.NewCollection[entity.Product](remote, mirror, notifier, pathProducts, keyProducts, pollEvery),
	}
}

func (r *firebaseProductRepository) LoadAll(ctx context.Context) []entity.Product {
	return r.products.Load(ctx)
}

func (r *firebaseProductRepository) SaveAll(ctx context.Context, products []entity.Product) repository.WriteResult {
	result := r.products.Save(ctx, products)
	return writeResult(result.Remote, result.Message)
}

func (r *firebaseProductRepository) Watch(ctx context.Context, fn func([]entity.Product)) func() {
	return r.products.Watch(ctx, fn)
}

type firebaseCategoryRepository struct {
	categories *store.Collection[entity.Category]
}

func NewFirebaseCategoryRepository(remote store.Remote, mirror *store.Mirror, notifier *store.Notifier, pollEvery time.Duration) repository.CategoryRepository {
	return &firebaseCategoryRepository{
		categories: store.NewCollection[entity.Category](remote, mirror, notifier, pathCategories, keyCategories, pollEvery),
	}
}

func (r *firebaseCategoryRepository) LoadAll(ctx context.Context) []entity.Category {
	return r.categories.Load(ctx)
}

func (r *firebaseCategoryRepository) SaveAll(ctx context.Context, categories []entity.Category) repository.WriteResult {
	result := r.categories.Save(ctx, categories)
	return writeResult(result.Remote, result.Message)
}
