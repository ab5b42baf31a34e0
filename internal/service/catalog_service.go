package service

import (
	"context"

	"github.com/rafael/pokedex-web/internal/config"
	"github.com/rafael/pokedex-web/internal/domain"
	"github.com/rafael/pokedex-web/internal/pokeapi"
)

// CatalogService fronts the upstream catalog client. It owns no state
// beyond the client itself; failures are already absorbed one layer down,
// so every method here succeeds with a possibly empty result.
type CatalogService struct {
	client *pokeapi.Client
}

func NewCatalogService(cfg *config.Config) *CatalogService {
	return &CatalogService{
		client: pokeapi.NewClient(cfg.PokeAPIBaseURL),
	}
}

// Page returns one catalog window. With a type filter the window comes
// from the type's member list and Count covers only the returned slice;
// without one it is the global paginated catalog and Count is the full
// catalog size. The two filters paginate over different domains.
func (s *CatalogService) Page(ctx context.Context, limit, offset int, typeFilter string) *pokeapi.Page {
	if typeFilter == "" {
		return s.client.ListPage(ctx, limit, offset)
	}

	results, hasMore := s.client.ListByType(ctx, typeFilter, limit, offset)
	return &pokeapi.Page{
		Results: results,
		Count:   len(results),
		HasMore: hasMore,
	}
}

func (s *CatalogService) Search(ctx context.Context, term string) *domain.PokemonSummary {
	return s.client.Search(ctx, term)
}

func (s *CatalogService) Detail(ctx context.Context, idOrName string) *domain.PokemonDetail {
	return s.client.FetchDetail(ctx, idOrName)
}

// TotalPages derives the page-count display from a total and a fixed
// per-session page size.
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
