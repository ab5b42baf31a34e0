package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rafael/pokedex-web/internal/config"
	"github.com/rafael/pokedex-web/internal/domain"
	"github.com/rafael/pokedex-web/internal/service"
)

type PokemonHandler struct {
	catalogService *service.CatalogService
	pageSize       int
}

func NewPokemonHandler(catalogService *service.CatalogService, cfg *config.Config) *PokemonHandler {
	return &PokemonHandler{
		catalogService: catalogService,
		pageSize:       cfg.PageSize,
	}
}

// PageResponse is one catalog window plus the derived page count.
type PageResponse struct {
	Results    []domain.PokemonSummary `json:"results"`
	Count      int                     `json:"count"`
	HasMore    bool                    `json:"hasMore"`
	TotalPages int                     `json:"totalPages"`
}

// List serves a catalog page, either the global paginated catalog or a
// type-filtered window when ?type= is present. Upstream failures surface
// as an empty page, never an error status.
func (h *PokemonHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", h.pageSize)
	offset := queryInt(r, "offset", 0)
	typeFilter := r.URL.Query().Get("type")

	page := h.catalogService.Page(r.Context(), limit, offset, typeFilter)

	resp := PageResponse{
		Results:    page.Results,
		Count:      page.Count,
		HasMore:    page.HasMore,
		TotalPages: service.TotalPages(page.Count, limit),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Search resolves a single Pokémon by numeric id or case-insensitive name.
func (h *PokemonHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}

	result := h.catalogService.Search(r.Context(), query)
	if result == nil {
		http.Error(w, "Pokemon not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Get serves the full detail record for the modal view.
func (h *PokemonHandler) Get(w http.ResponseWriter, r *http.Request) {
	idOrName := chi.URLParam(r, "idOrName")

	detail := h.catalogService.Detail(r.Context(), idOrName)
	if detail == nil {
		http.Error(w, "Pokemon not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detail)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil && intVal >= 0 {
			return intVal
		}
	}
	return fallback
}
