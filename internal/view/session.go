package view

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafael/pokedex-web/internal/domain"
	"github.com/rafael/pokedex-web/internal/pokeapi"
	"github.com/rafael/pokedex-web/internal/service"
)

// Mode selects which data source feeds the displayed list. Exactly one is
// active at a time and only the user switches it.
type Mode string

const (
	ModeBrowse    Mode = "browse"
	ModeSearch    Mode = "search"
	ModeFavorites Mode = "favorites"
)

// Catalog is the slice of the catalog surface a session reads.
// *service.CatalogService satisfies it.
type Catalog interface {
	Page(ctx context.Context, limit, offset int, typeFilter string) *pokeapi.Page
	Search(ctx context.Context, term string) *domain.PokemonSummary
}

// Favorites is the favorites surface a session mutates.
// *service.FavoriteService satisfies it.
type Favorites interface {
	List(ctx context.Context, userID string) ([]*domain.Favorite, error)
	Add(ctx context.Context, userID string, input service.AddFavoriteInput) (*domain.Favorite, error)
	Remove(ctx context.Context, userID string, pokemonID int) error
}

// Session owns one user's browsing state: active mode, type filter, page
// offset, search query, and the optimistic favorited index. It belongs to
// a single goroutine; favorite mutations from two concurrent sessions of
// the same user are unordered and last write wins.
type Session struct {
	userID    string
	catalog   Catalog
	favorites Favorites

	mode       Mode
	typeFilter string
	query      string
	offset     int
	pageSize   int
	totalCount int

	favorited map[int]bool
}

// NewSession starts in browse mode on the first page. The page size is
// fixed for the session's lifetime.
func NewSession(userID string, pageSize int, catalog Catalog, favorites Favorites) *Session {
	return &Session{
		userID:    userID,
		catalog:   catalog,
		favorites: favorites,
		mode:      ModeBrowse,
		pageSize:  pageSize,
		favorited: make(map[int]bool),
	}
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) SetMode(mode Mode) { s.mode = mode }

// SetTypeFilter switches the browse filter without resetting the offset.
// Filtering to a type with fewer members than the current offset yields
// an empty out-of-range page; that quirk is how the original behaves and
// it is kept on purpose.
func (s *Session) SetTypeFilter(typeName string) {
	s.typeFilter = typeName
}

func (s *Session) SetQuery(query string) { s.query = query }

func (s *Session) NextPage() { s.offset += s.pageSize }

func (s *Session) PrevPage() {
	s.offset -= s.pageSize
	if s.offset < 0 {
		s.offset = 0
	}
}

// Offset reports the current browse offset.
func (s *Session) Offset() int { return s.offset }

// TotalPages derives the page-count display from the last browse fetch.
func (s *Session) TotalPages() int {
	return service.TotalPages(s.totalCount, s.pageSize)
}

// IsFavorited reports the locally tracked heart state, which may be ahead
// of the store while a toggle is in flight.
func (s *Session) IsFavorited(pokemonID int) bool {
	return s.favorited[pokemonID]
}

// Display merges the active mode's source into one displayable list.
// Favorites mode shows the stored list projected into summary shape; a
// non-empty search query shows the single-item lookup result; otherwise
// the current catalog page is shown. Catalog failures come back as empty
// lists, not errors.
func (s *Session) Display(ctx context.Context) ([]domain.PokemonSummary, error) {
	if s.mode == ModeFavorites {
		favorites, err := s.refreshFavorites(ctx)
		if err != nil {
			return nil, err
		}
		return projectFavorites(favorites), nil
	}

	if s.query != "" {
		result := s.catalog.Search(ctx, s.query)
		if result == nil {
			return []domain.PokemonSummary{}, nil
		}
		return []domain.PokemonSummary{*result}, nil
	}

	page := s.catalog.Page(ctx, s.pageSize, s.offset, s.typeFilter)
	s.totalCount = page.Count
	return page.Results, nil
}

// ToggleFavorite flips the heart optimistically, issues the store round
// trip, and reverts the flip when the store refuses. On success the
// favorites list is refetched so every displayed instance of the Pokémon
// agrees on its state.
func (s *Session) ToggleFavorite(ctx context.Context, p domain.PokemonSummary) error {
	was := s.favorited[p.ID]
	s.favorited[p.ID] = !was

	var err error
	if was {
		err = s.favorites.Remove(ctx, s.userID, p.ID)
	} else {
		_, err = s.favorites.Add(ctx, s.userID, service.AddFavoriteInput{
			PokemonID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Types:     p.Types,
		})
	}
	if err != nil {
		s.favorited[p.ID] = was
		return fmt.Errorf("favorite update failed: %w", err)
	}

	if _, err := s.refreshFavorites(ctx); err != nil {
		return err
	}
	return nil
}

// refreshFavorites refetches the stored list and rebuilds the favorited
// index from it.
func (s *Session) refreshFavorites(ctx context.Context) ([]*domain.Favorite, error) {
	favorites, err := s.favorites.List(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	s.favorited = make(map[int]bool, len(favorites))
	for _, f := range favorites {
		s.favorited[f.PokemonID] = true
	}
	return favorites, nil
}

func projectFavorites(favorites []*domain.Favorite) []domain.PokemonSummary {
	summaries := make([]domain.PokemonSummary, len(favorites))
	for i, f := range favorites {
		var types []string
		if len(f.Types) > 0 {
			json.Unmarshal(f.Types, &types)
		}
		if types == nil {
			types = []string{}
		}
		summaries[i] = domain.PokemonSummary{
			ID:    f.PokemonID,
			Name:  f.Name,
			Image: f.Image,
			Types: types,
		}
	}
	return summaries
}
