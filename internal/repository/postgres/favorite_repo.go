package postgres

import (
	"context"

	"github.com/rafael/pokedex-web/internal/domain"
	"gorm.io/gorm"
)

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *favoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	var favorites []*domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Create inserts unconditionally. Logical uniqueness of (user_id,
// pokemon_id) is the caller's convention, not a stored constraint.
func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

// UpdateNotes matches by (user_id, pokemon_id) and reports how many rows
// changed; zero means no such favorite exists.
func (r *favoriteRepository) UpdateNotes(ctx context.Context, userID string, pokemonID int, notes string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND pokemon_id = ?", userID, pokemonID).
		Update("notes", notes)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes every matching row. Deleting a favorite that does not
// exist is not an error.
func (r *favoriteRepository) Delete(ctx context.Context, userID string, pokemonID int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND pokemon_id = ?", userID, pokemonID).
		Delete(&domain.Favorite{}).Error
}
