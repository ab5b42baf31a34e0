package service

import (
	"github.com/rafael/pokedex-web/internal/config"
	"github.com/rafael/pokedex-web/internal/repository"
)

type Services struct {
	Favorite *FavoriteService
	Catalog  *CatalogService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Favorite: NewFavoriteService(repos.Favorite),
		Catalog:  NewCatalogService(cfg),
	}
}
