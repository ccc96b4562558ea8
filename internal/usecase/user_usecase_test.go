package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/internal/usecase"
)

type fakeUserRepo struct {
	profiles map[string]entity.UserProfile
}

func (f *fakeUserRepo) Get(_ context.Context, userID string) (*entity.UserProfile, bool) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, false
	}
	return &profile, true
}

func (f *fakeUserRepo) Put(_ context.Context, profile *entity.UserProfile) repository.WriteResult {
	if f.profiles == nil {
		f.profiles = make(map[string]entity.UserProfile)
	}
	f.profiles[profile.ID] = *profile
	return repository.WriteResult{Remote: true}
}

func TestUpsertProfileRoundTrip(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.UpsertProfile(ctx, &entity.UserProfile{
		ID:       "uid-1",
		Email:    "asha@example.com",
		Name:     "Asha",
		Provider: entity.ProviderGoogle,
	})
	require.NoError(t, err)

	profile, err := uc.GetProfile(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)

	_, err = uc.GetProfile(ctx, "uid-2")
	assert.Error(t, err)
}

func TestUpsertProfileValidation(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{})
	ctx := context.Background()

	_, err := uc.UpsertProfile(ctx, &entity.UserProfile{Provider: entity.ProviderEmail})
	assert.Error(t, err, "missing id")

	_, err = uc.UpsertProfile(ctx, &entity.UserProfile{ID: "uid-1", Provider: "github"})
	assert.Error(t, err, "unknown provider")
}
