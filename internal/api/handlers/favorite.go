package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/rafael/pokedex-web/internal/domain"
	"github.com/rafael/pokedex-web/internal/service"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// FavoritePokemon is the Pokémon payload saved with a favorite.
type FavoritePokemon struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image"`
	Types []string `json:"types"`
	Notes string   `json:"notes"`
}

// CreateFavoriteRequest is the request body for saving a favorite.
type CreateFavoriteRequest struct {
	UserID  string           `json:"userId"`
	Pokemon *FavoritePokemon `json:"pokemon"`
}

// UpdateNotesRequest is the request body for rewriting a favorite's note.
type UpdateNotesRequest struct {
	UserID    string `json:"userId"`
	PokemonID int    `json:"pokemonId"`
	Notes     string `json:"notes"`
}

// AckResponse acknowledges a mutation that returns no entity.
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// List returns every favorite stored for the queried user.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	favorites, err := h.favoriteService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [favorite.List] userID=%s: %v", userID, err)
		http.Error(w, "Failed to list favorites", http.StatusInternalServerError)
		return
	}
	if favorites == nil {
		favorites = []*domain.Favorite{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorites)
}

// Create saves a favorite for the user. The store does not reject a
// duplicate (userId, pokemonId); callers are expected to toggle rather
// than re-create.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR [favorite.Create] failed to decode request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.Pokemon == nil {
		http.Error(w, "userId and pokemon are required", http.StatusBadRequest)
		return
	}

	favorite, err := h.favoriteService.Add(r.Context(), req.UserID, service.AddFavoriteInput{
		PokemonID: req.Pokemon.ID,
		Name:      req.Pokemon.Name,
		Image:     req.Pokemon.Image,
		Notes:     req.Pokemon.Notes,
		Types:     req.Pokemon.Types,
	})
	if err != nil {
		log.Printf("ERROR [favorite.Create] userID=%s pokemonID=%d: %v", req.UserID, req.Pokemon.ID, err)
		http.Error(w, "Failed to create favorite", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorite)
}

// UpdateNotes rewrites the note on an existing favorite.
func (h *FavoriteHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR [favorite.UpdateNotes] failed to decode request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.PokemonID == 0 {
		http.Error(w, "userId and pokemonId are required", http.StatusBadRequest)
		return
	}

	err := h.favoriteService.UpdateNotes(r.Context(), req.UserID, req.PokemonID, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			http.Error(w, "Favorite not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [favorite.UpdateNotes] userID=%s pokemonID=%d: %v", req.UserID, req.PokemonID, err)
		http.Error(w, "Failed to update notes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AckResponse{Success: true, Message: "note updated successfully"})
}

// Delete removes a favorite. Deleting one that does not exist still
// acknowledges success.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	pokemonIDStr := r.URL.Query().Get("pokemonId")
	if userID == "" || pokemonIDStr == "" {
		http.Error(w, "userId and pokemonId are required", http.StatusBadRequest)
		return
	}

	pokemonID, err := strconv.Atoi(pokemonIDStr)
	if err != nil {
		http.Error(w, "pokemonId must be numeric", http.StatusBadRequest)
		return
	}

	if err := h.favoriteService.Remove(r.Context(), userID, pokemonID); err != nil {
		log.Printf("ERROR [favorite.Delete] userID=%s pokemonID=%d: %v", userID, pokemonID, err)
		http.Error(w, "Failed to delete favorite", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AckResponse{Success: true})
}
