package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taruvae/internal/domain/entity"
	"taruvae/internal/usecase"
)

func TestAddReviewIsAlwaysVerified(t *testing.T) {
	productRepo := &fakeProductRepo{products: []entity.Product{
		{ID: 1, Name: "Honey", Price: 450},
	}}
	uc := usecase.NewReviewUseCase(&fakeReviewRepo{}, productRepo)

	review, _, err := uc.AddReview(context.Background(), usecase.ReviewInput{
		ProductID: 1,
		Rating:    5,
		Comment:   "Lovely",
		Author:    "Asha",
	})
	require.NoError(t, err)

	assert.True(t, review.Verified)
	assert.NotEmpty(t, review.ID)
	assert.NotZero(t, review.CreatedAt)
}

func TestAddReviewRecomputesProductAggregates(t *testing.T) {
	productRepo := &fakeProductRepo{products: []entity.Product{
		{ID: 1, Name: "Honey", Price: 450},
		{ID: 2, Name: "Ghee", Price: 800, Rating: 4.0, Reviews: 3},
	}}
	reviewRepo := &fakeReviewRepo{}
	uc := usecase.NewReviewUseCase(reviewRepo, productRepo)
	ctx := context.Background()

	_, _, err := uc.AddReview(ctx, usecase.ReviewInput{ProductID: 1, Rating: 5, Author: "Asha"})
	require.NoError(t, err)
	_, _, err = uc.AddReview(ctx, usecase.ReviewInput{ProductID: 1, Rating: 4, Author: "Ravi"})
	require.NoError(t, err)

	assert.Equal(t, 2, productRepo.products[0].Reviews)
	assert.Equal(t, 4.5, productRepo.products[0].Rating)

	// Unrelated products keep their aggregates.
	assert.Equal(t, 3, productRepo.products[1].Reviews)
	assert.Equal(t, 4.0, productRepo.products[1].Rating)
}

func TestAddReviewRejectsBadInput(t *testing.T) {
	productRepo := &fakeProductRepo{products: []entity.Product{
		{ID: 1, Name: "Honey", Price: 450},
	}}
	reviewRepo := &fakeReviewRepo{}
	uc := usecase.NewReviewUseCase(reviewRepo, productRepo)
	ctx := context.Background()

	_, _, err := uc.AddReview(ctx, usecase.ReviewInput{ProductID: 1, Rating: 0})
	assert.Error(t, err, "rating below range")

	_, _, err = uc.AddReview(ctx, usecase.ReviewInput{ProductID: 1, Rating: 6})
	assert.Error(t, err, "rating above range")

	_, _, err = uc.AddReview(ctx, usecase.ReviewInput{ProductID: 99, Rating: 4})
	assert.Error(t, err, "unknown product")

	assert.Empty(t, reviewRepo.reviews)
	assert.Zero(t, productRepo.saves)
}

func TestListByProductFilters(t *testing.T) {
	reviewRepo := &fakeReviewRepo{reviews: []entity.ProductReview{
		{ID: "r1", ProductID: 1, Rating: 5},
		{ID: "r2", ProductID: 2, Rating: 3},
		{ID: "r3", ProductID: 1, Rating: 4},
	}}
	uc := usecase.NewReviewUseCase(reviewRepo, &fakeProductRepo{})

	reviews := uc.ListByProduct(context.Background(), 1)
	assert.Len(t, reviews, 2)
	for _, review := range reviews {
		assert.Equal(t, int64(1), review.ProductID)
	}
}
