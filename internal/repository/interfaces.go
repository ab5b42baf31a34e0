package repository

import (
	"context"

	"github.com/rafael/pokedex-web/internal/domain"
)

type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
	Create(ctx context.Context, favorite *domain.Favorite) error
	UpdateNotes(ctx context.Context, userID string, pokemonID int, notes string) (int64, error)
	Delete(ctx context.Context, userID string, pokemonID int) error
}

type Repositories struct {
	Favorite FavoriteRepository
}
