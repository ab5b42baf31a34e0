package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rafael/pokedex-web/internal/api/handlers"
	"github.com/rafael/pokedex-web/internal/api/middleware"
	"github.com/rafael/pokedex-web/internal/config"
	"github.com/rafael/pokedex-web/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	favoriteHandler := handlers.NewFavoriteHandler(services.Favorite)
	pokemonHandler := handlers.NewPokemonHandler(services.Catalog, cfg)

	// Favorites CRUD, scoped by the client-generated userId
	r.Route("/favorites", func(r chi.Router) {
		r.Get("/", favoriteHandler.List)
		r.Post("/", favoriteHandler.Create)
		r.Put("/", favoriteHandler.UpdateNotes)
		r.Delete("/", favoriteHandler.Delete)
	})

	// Catalog routes, proxied from the public PokeAPI
	r.Route("/pokemon", func(r chi.Router) {
		r.Get("/", pokemonHandler.List)
		r.Get("/search", pokemonHandler.Search)
		r.Get("/{idOrName}", pokemonHandler.Get)
	})

	return r
}
