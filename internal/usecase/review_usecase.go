package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

type ReviewInput struct {
	ProductID int64  `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Author    string `json:"author"`
}

func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID int64) []entity.ProductReview {
	all := uc.reviewRepo.LoadAll(ctx)
	reviews := make([]entity.ProductReview, 0)
	for _, review := range all {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews
}

// AddReview stores the review and folds it into the product's rating and
// review-count aggregates in the catalog.
func (uc *ReviewUseCase) AddReview(ctx context.Context, input ReviewInput) (*entity.ProductReview, repository.WriteResult, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, repository.WriteResult{}, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	products := uc.productRepo.LoadAll(ctx)
	productIdx := -1
	for i, p := range products {
		if p.ID == input.ProductID {
			productIdx = i
			break
		}
	}
	if productIdx < 0 {
		return nil, repository.WriteResult{}, errors.NotFound("Product", nil)
	}

	review := entity.ProductReview{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Author:    input.Author,
		Verified:  true,
		CreatedAt: time.Now().UnixMilli(),
	}

	reviews := append(uc.reviewRepo.LoadAll(ctx), review)
	result := uc.reviewRepo.SaveAll(ctx, reviews)

	// Recompute the product aggregates from the full review list.
	var sum, count int
	for _, r := range reviews {
		if r.ProductID == input.ProductID {
			sum += r.Rating
			count++
		}
	}
	products[productIdx].Reviews = count
	products[productIdx].Rating = math.Round(float64(sum)/float64(count)*10) / 10
	uc.productRepo.SaveAll(ctx, products)

	return &review, result, nil
}
