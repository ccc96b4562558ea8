package repository

import (
	"context"
	"time"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/internal/store"
)

type firebaseBlogRepository struct {
	posts *store.Collection[entity.BlogPost]
}

func NewFirebaseBlogRepository(remote store.Remote, mirror *store.Mirror, notifier *store.Notifier, pollEvery time.Duration) repository.BlogRepository {
	return &firebaseBlogRepository{
		posts: store.NewCollection[entity.BlogPost](remote, mirror, notifier, pathBlogs, keyBlogs, pollEvery),
	}
}

func (r *firebaseBlogRepository) LoadAll(ctx context.Context) []entity.BlogPost {
	return r.posts.Load(ctx)
}

func (r *firebaseBlogRepository) SaveAll(ctx context.Context, posts []entity.BlogPost) repository.WriteResult {
	result := r.posts.Save(ctx, posts)
	return writeResult(result.Remote, result.Message)
}

func (r *firebaseBlogRepository) Watch(ctx context.Context, fn func([]entity.BlogPost)) func() {
	return r.posts.Watch(ctx, fn)
}

type firebaseReviewRepository struct {
	reviews *store.Collection[entity.ProductReview]
}

func NewFirebaseReviewRepository(remote store.Remote, mirror *store.Mirror, notifier *store.Notifier, pollEvery time.Duration) repository.ReviewRepository {
	return &firebaseReviewRepository{
		reviews: store.NewCollection[entity.ProductReview](remote, mirror, notifier, pathReviews, keyReviews, pollEvery),
	}
}

func (r *firebaseReviewRepository) LoadAll(ctx context.Context) []entity.ProductReview {
	return r.reviews.Load(ctx)
}

func (r *firebaseReviewRepository) SaveAll(ctx context.Context, reviews []entity.ProductReview) repository.WriteResult {
	result := r.reviews.Save(ctx, reviews)
	return writeResult(result.Remote, result.Message)
}
