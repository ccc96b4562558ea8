package repository

import (
	"context"

	"taruvae/internal/domain/entity"
)

type UserRepository interface {
	Get(ctx context.Context, userID string) (*entity.UserProfile, bool)
	Put(ctx context.Context, profile *entity.UserProfile) WriteResult
}

// AddressRepository stores one address book per owner (user or guest).
type AddressRepository interface {
	LoadBook(ctx context.Context, ownerID string) []entity.Address
	SaveBook(ctx context.Context, ownerID string, book []entity.Address) WriteResult
}
