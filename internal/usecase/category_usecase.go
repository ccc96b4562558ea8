package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

func (uc *CategoryUseCase) List(ctx context.Context) []entity.Category {
	return uc.categoryRepo.LoadAll(ctx)
}

func (uc *CategoryUseCase) Add(ctx context.Context, name string) (*entity.Category, repository.WriteResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, repository.WriteResult{}, errors.BadRequest("Category name is required", nil)
	}

	categories := uc.categoryRepo.LoadAll(ctx)
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return nil, repository.WriteResult{}, errors.Conflict("Category already exists")
		}
	}

	category := entity.Category{
		ID:   uuid.New().String(),
		Name: name,
	}
	categories = append(categories, category)
	result := uc.categoryRepo.SaveAll(ctx, categories)
	return &category, result, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (repository.WriteResult, error) {
	categories := uc.categoryRepo.LoadAll(ctx)

	remaining := make([]entity.Category, 0, len(categories))
	found := false
	for _, c := range categories {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return repository.WriteResult{}, errors.NotFound("Category", nil)
	}

	return uc.categoryRepo.SaveAll(ctx, remaining), nil
}
