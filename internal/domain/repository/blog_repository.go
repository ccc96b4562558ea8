package repository

import (
	"context"

	"taruvae/internal/domain/entity"
)

type BlogRepository interface {
	LoadAll(ctx context.Context) []entity.BlogPost
	SaveAll(ctx context.Context, posts []entity.BlogPost) WriteResult
	Watch(ctx context.Context, fn func([]entity.BlogPost)) func()
}

type ReviewRepository interface {
	LoadAll(ctx context.Context) []entity.ProductReview
	SaveAll(ctx context.Context, reviews []entity.ProductReview) WriteResult
}
