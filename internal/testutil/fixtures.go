package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rafael/pokedex-web/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewUserID generates a client-style random tenant key.
func NewUserID() string {
	return uuid.New().String()
}

// FavoriteBuilder creates test favorites with a builder pattern
type FavoriteBuilder struct {
	userID    string
	pokemonID int
	name      string
	image     string
	notes     string
	types     []string
}

// NewFavoriteBuilder creates a new FavoriteBuilder with default values
func NewFavoriteBuilder() *FavoriteBuilder {
	return &FavoriteBuilder{
		userID:    NewUserID(),
		pokemonID: 25,
		name:      "Pikachu",
		image:     "https://example.com/pikachu.png",
		types:     []string{"electric"},
	}
}

// WithUserID sets the tenant key
func (b *FavoriteBuilder) WithUserID(userID string) *FavoriteBuilder {
	b.userID = userID
	return b
}

// WithPokemonID sets the Pokémon id
func (b *FavoriteBuilder) WithPokemonID(id int) *FavoriteBuilder {
	b.pokemonID = id
	return b
}

// WithName sets the display name
func (b *FavoriteBuilder) WithName(name string) *FavoriteBuilder {
	b.name = name
	return b
}

// WithImage sets the artwork URL
func (b *FavoriteBuilder) WithImage(image string) *FavoriteBuilder {
	b.image = image
	return b
}

// WithNotes sets the free-text note
func (b *FavoriteBuilder) WithNotes(notes string) *FavoriteBuilder {
	b.notes = notes
	return b
}

// WithTypes sets the cached type names
func (b *FavoriteBuilder) WithTypes(types []string) *FavoriteBuilder {
	b.types = types
	return b
}

// Build creates the favorite in the database
func (b *FavoriteBuilder) Build(t *testing.T, db *gorm.DB) *domain.Favorite {
	t.Helper()

	typesJSON, _ := json.Marshal(b.types)
	favorite := &domain.Favorite{
		ID:        uuid.New(),
		UserID:    b.userID,
		PokemonID: b.pokemonID,
		Name:      b.name,
		Image:     b.image,
		Notes:     b.notes,
		Types:     datatypes.JSON(typesJSON),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(favorite).Error; err != nil {
		t.Fatalf("failed to create favorite: %v", err)
	}

	return favorite
}

// SeedFavorites creates n favorites for one user with distinct Pokémon ids
func SeedFavorites(t *testing.T, db *gorm.DB, userID string, n int) []*domain.Favorite {
	t.Helper()

	favorites := make([]*domain.Favorite, n)
	for i := 0; i < n; i++ {
		favorites[i] = NewFavoriteBuilder().
			WithUserID(userID).
			WithPokemonID(i + 1).
			WithName(fmt.Sprintf("Pokemon%d", i+1)).
			WithImage(fmt.Sprintf("https://example.com/%d.png", i+1)).
			Build(t, db)
	}
	return favorites
}
