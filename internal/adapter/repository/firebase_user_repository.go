package repository

import (
	"context"
	"time"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/internal/store"
)

type firebaseUserRepository struct {
	users *store.KeyedSet[entity.UserProfile]
}

func NewFirebaseUserRepository(remote store.Remote, mirror *store.Mirror, notifier *store.Notifier, pollEvery time.Duration) repository.UserRepository {
	return &firebaseUserRepository{
		users: store.NewKeyedSet[entity.UserProfile](remote, mirror, notifier, pathUsers, keyUsers, pollEvery),
	}
}

func (r *firebaseUserRepository) Get(ctx context.Context, userID string) (*entity.UserProfile, bool) {
	profile, ok := r.users.Get(ctx, userID)
	if !ok {
		return nil, false
	}
	return &profile, true
}

func (r *firebaseUserRepository) Put(ctx context.Context, profile *entity.UserProfile) repository.WriteResult {
	result := r.users.Put(ctx, profile.ID, *profile)
	return writeResult(result.Remote, result.Message)
}

// Address books are keyed by owner id; the value at addresses/{ownerId} is
// the owner's whole book.
type firebaseAddressRepository struct {
	books *store.KeyedSet[[]entity.Address]
}

func NewFirebaseAddressRepository(remote store.Remote, mirror *store.Mirror, notifier *store.Notifier, pollEvery time.Duration) repository.AddressRepository {
	return &firebaseAddressRepository{
		books: store.NewKeyedSet[[]entity.Address](remote, mirror, notifier, pathAddresses, keyAddresses, pollEvery),
	}
}

func (r *firebaseAddressRepository) LoadBook(ctx context.Context, ownerID string) []entity.Address {
	book, ok := r.books.Get(ctx, ownerID)
	if !ok || book == nil {
		return []entity.Address{}
	}
	return book
}

func (r *firebaseAddressRepository) SaveBook(ctx context.Context, ownerID string, book []entity.Address) repository.WriteResult {
	if book == nil {
		book = []entity.Address{}
	}
	result := r.books.Put(ctx, ownerID, book)
	return writeResult(result.Remote, result.Message)
}
