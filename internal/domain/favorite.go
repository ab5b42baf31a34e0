package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Favorite is a user's saved Pokémon reference plus an optional free-text
// note. UserID is a client-generated identifier, not an authenticated
// account: it scopes favorites to "a user" and nothing more. The table
// carries no uniqueness constraint on (user_id, pokemon_id); callers keep
// the pair logically unique through update-by-match semantics.
type Favorite struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    string         `json:"userId" gorm:"index;not null"`
	PokemonID int            `json:"pokemonId" gorm:"not null"`
	Name      string         `json:"name" gorm:"not null"`
	Image     string         `json:"image"`
	Notes     string         `json:"notes"`
	Types     datatypes.JSON `json:"types" gorm:"type:jsonb"` // cached type names for the favorites view
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
