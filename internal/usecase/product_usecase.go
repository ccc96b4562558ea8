package usecase

import (
	"context"
	"strings"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/pkg/errors"
)

// Any product priced above this is a bestseller, whatever the admin ticked.
const bestsellerPriceFloor = 999

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type ProductInput struct {
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"original_price"`
	Discount      int     `json:"discount"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Category      string  `json:"category"`
	Size          string  `json:"size"`
	InStock       bool    `json:"in_stock"`
	IsNew         bool    `json:"is_new"`
	IsBestseller  bool    `json:"is_bestseller"`
	IsPrime       bool    `json:"is_prime"`
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, category, search string) []entity.Product {
	products := uc.productRepo.LoadAll(ctx)

	if category == "" && search == "" {
		return products
	}

	search = strings.ToLower(search)
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	for _, p := range uc.productRepo.LoadAll(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (uc *ProductUseCase) AddProduct(ctx context.Context, input ProductInput) (*entity.Product, repository.WriteResult, error) {
	products := uc.productRepo.LoadAll(ctx)

	var maxID int64
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	product := buildProduct(maxID+1, input)
	products = append(products, product)

	result := uc.productRepo.SaveAll(ctx, products)
	return &product, result, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*entity.Product, repository.WriteResult, error) {
	products := uc.productRepo.LoadAll(ctx)

	for i, p := range products {
		if p.ID != id {
			continue
		}
		updated := buildProduct(id, input)
		updated.Rating = p.Rating
		updated.Reviews = p.Reviews
		products[i] = updated

		result := uc.productRepo.SaveAll(ctx, products)
		return &products[i], result, nil
	}

	return nil, repository.WriteResult{}, errors.NotFound("Product", nil)
}

// DeleteProduct rewrites the whole catalog with one fewer entry; there is no
// per-row delete in the store.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id int64) (repository.WriteResult, error) {
	products := uc.productRepo.LoadAll(ctx)

	remaining := make([]entity.Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return repository.WriteResult{}, errors.NotFound("Product", nil)
	}

	return uc.productRepo.SaveAll(ctx, remaining), nil
}

func (uc *ProductUseCase) ToggleStock(ctx context.Context, id int64) (*entity.Product, repository.WriteResult, error) {
	products := uc.productRepo.LoadAll(ctx)

	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].InStock = !products[i].InStock
		result := uc.productRepo.SaveAll(ctx, products)
		return &products[i], result, nil
	}

	return nil, repository.WriteResult{}, errors.NotFound("Product", nil)
}

func (uc *ProductUseCase) Watch(ctx context.Context, fn func([]entity.Product)) func() {
	return uc.productRepo.Watch(ctx, fn)
}

func buildProduct(id int64, input ProductInput) entity.Product {
	product := entity.Product{
		ID:            id,
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Discount:      input.Discount,
		Image:         input.Image,
		Rating:        input.Rating,
		Category:      input.Category,
		Size:          input.Size,
		InStock:       input.InStock,
		IsNew:         input.IsNew,
		IsBestseller:  input.IsBestseller,
		IsPrime:       input.IsPrime,
	}
	if product.Price > bestsellerPriceFloor {
		product.IsBestseller = true
	}
	return product
}
