package api

import (
	"context"

	"github.com/0xJijimi/estfor-api/client/internal/types"
)

// GetBasePets lists pet templates.
func GetBasePets(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.BasePet], error) {
	return list[types.BasePet](ctx, httpClient, baseURL, "base-pets", "base pets", filter)
}

// GetBasePetByID retrieves a pet template by ID.
func GetBasePetByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.BasePet, error) {
	return one[types.BasePet](ctx, httpClient, baseURL, "base-pets", "base pet by id", id)
}

// GetPets lists owned pets.
func GetPets(ctx context.Context, httpClient types.HTTPClient, baseURL string, filter *types.Pagination) (*types.Page[types.Pet], error) {
	return list[types.Pet](ctx, httpClient, baseURL, "pets", "pets", filter)
}

// GetPetByID retrieves an owned pet by ID.
func GetPetByID(ctx context.Context, httpClient types.HTTPClient, baseURL, id string) (*types.Pet, error) {
	return one[types.Pet](ctx, httpClient, baseURL, "pets", "pet by id", id)
}
