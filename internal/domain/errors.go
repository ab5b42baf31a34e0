package domain

import "errors"

// Favorite errors
var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrMissingUserID    = errors.New("userId is required")
	ErrMissingPokemon   = errors.New("pokemon is required")
	ErrMissingPokemonID = errors.New("pokemonId is required")
)
