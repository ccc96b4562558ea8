package usecase

import (
	"context"

	"github.com/google/uuid"

	"taruvae/internal/domain/entity"
	"taruvae/internal/domain/repository"
	"taruvae/pkg/errors"
)

type AddressUseCase struct {
	addressRepo repository.AddressRepository
}

func NewAddressUseCase(addressRepo repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{
		addressRepo: addressRepo,
	}
}

type AddressInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func (uc *AddressUseCase) List(ctx context.Context, ownerID string) []entity.Address {
	return uc.addressRepo.LoadBook(ctx, ownerID)
}

// Add appends to the owner's book. The first address automatically becomes
// the default one.
func (uc *AddressUseCase) Add(ctx context.Context, ownerID string, input AddressInput) (*entity.Address, repository.WriteResult, error) {
	book := uc.addressRepo.LoadBook(ctx, ownerID)

	address := entity.Address{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		Line1:     input.Line1,
		Line2:     input.Line2,
		City:      input.City,
		State:     input.State,
		Pincode:   input.Pincode,
		IsDefault: len(book) == 0,
	}

	book = append(book, address)
	result := uc.addressRepo.SaveBook(ctx, ownerID, book)
	return &address, result, nil
}

func (uc *AddressUseCase) Update(ctx context.Context, ownerID, id string, input AddressInput) (*entity.Address, repository.WriteResult, error) {
	book := uc.addressRepo.LoadBook(ctx, ownerID)

	for i := range book {
		if book[i].ID != id {
			continue
		}
		book[i].Name = input.Name
		book[i].Phone = input.Phone
		book[i].Line1 = input.Line1
		book[i].Line2 = input.Line2
		book[i].City = input.City
		book[i].State = input.State
		book[i].Pincode = input.Pincode

		result := uc.addressRepo.SaveBook(ctx, ownerID, book)
		return &book[i], result, nil
	}

	return nil, repository.WriteResult{}, errors.NotFound("Address", nil)
}

// Delete removes an address; if it was the default, the first remaining
// entry takes over so the book never loses its default.
func (uc *AddressUseCase) Delete(ctx context.Context, ownerID, id string) (repository.WriteResult, error) {
	book := uc.addressRepo.LoadBook(ctx, ownerID)

	remaining := make([]entity.Address, 0, len(book))
	wasDefault := false
	found := false
	for _, address := range book {
		if address.ID == id {
			found = true
			wasDefault = address.IsDefault
			continue
		}
		remaining = append(remaining, address)
	}
	if !found {
		return repository.WriteResult{}, errors.NotFound("Address", nil)
	}

	if wasDefault && len(remaining) > 0 {
		remaining[0].IsDefault = true
	}

	return uc.addressRepo.SaveBook(ctx, ownerID, remaining), nil
}

// SetDefault rewrites the whole book so exactly one entry is default.
func (uc *AddressUseCase) SetDefault(ctx context.Context, ownerID, id string) (repository.WriteResult, error) {
	book := uc.addressRepo.LoadBook(ctx, ownerID)

	found := false
	for i := range book {
		book[i].IsDefault = book[i].ID == id
		if book[i].IsDefault {
			found = true
		}
	}
	if !found {
		return repository.WriteResult{}, errors.NotFound("Address", nil)
	}

	return uc.addressRepo.SaveBook(ctx, ownerID, book), nil
}
