package usecase

import (
	"context"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	profile, ok := uc.userRepo.Get(ctx, userID)
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return profile, nil
}

// UpsertProfile writes the whole profile at users/{userId}. The id and email
// come from the external auth provider and are trusted as-is.
func (uc *UserUseCase) UpsertProfile(ctx context.Context, profile *entity.UserProfile) (repository.WriteResult, error) {
	if profile.ID == "" {
		return repository.WriteResult{}, errors.BadRequest("User id is required", nil)
	}
	if profile.Provider != entity.ProviderEmail && profile.Provider != entity.ProviderGoogle {
		return repository.WriteResult{}, errors.BadRequest("Unknown auth provider", nil)
	}

	return uc.userRepo.Put(ctx, profile), nil
}
