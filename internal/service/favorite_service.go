package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rafael/pokedex-web/internal/domain"
	"github.com/rafael/pokedex-web/internal/repository"
)

type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// AddFavoriteInput carries the Pokémon fields the client saves alongside
// the note. Types are optional; when present they are cached on the row
// so the favorites view can render type badges without an upstream fetch.
type AddFavoriteInput struct {
	PokemonID int
	Name      string
	Image     string
	Notes     string
	Types     []string
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}

func (s *FavoriteService) Add(ctx context.Context, userID string, input AddFavoriteInput) (*domain.Favorite, error) {
	favorite := &domain.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		PokemonID: input.PokemonID,
		Name:      input.Name,
		Image:     input.Image,
		Notes:     input.Notes,
	}
	if len(input.Types) > 0 {
		typesJSON, err := json.Marshal(input.Types)
		if err != nil {
			return nil, fmt.Errorf("failed to encode types: %w", err)
		}
		favorite.Types = typesJSON
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}
	return favorite, nil
}

// UpdateNotes rewrites the note on an existing (userID, pokemonID) pair.
// A pair that matches nothing yields ErrFavoriteNotFound and no row is
// created.
func (s *FavoriteService) UpdateNotes(ctx context.Context, userID string, pokemonID int, notes string) error {
	affected, err := s.favoriteRepo.UpdateNotes(ctx, userID, pokemonID, notes)
	if err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}
	if affected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

// Remove is idempotent: removing a Pokémon that was never favorited
// succeeds.
func (s *FavoriteService) Remove(ctx context.Context, userID string, pokemonID int) error {
	return s.favoriteRepo.Delete(ctx, userID, pokemonID)
}
