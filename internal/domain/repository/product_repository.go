package repository

import (
	"context"

	"taruvae/internal/domain/entity"
)

// ProductRepository persists the catalog as one list document. SaveAll
// rewrites everything; there is no per-product update.
type ProductRepository interface {
	LoadAll(ctx context.Context) []entity.Product
	SaveAll(ctx context.Context, products []entity.Product) WriteResult
	Watch(ctx context.Context, fn func([]entity.Product)) func()
}

type CategoryRepository interface {
	LoadAll(ctx context.Context) []entity.Category
	SaveAll(ctx context.Context, categories []entity.Category) WriteResult
}
