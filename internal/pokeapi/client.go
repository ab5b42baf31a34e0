package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rafael/pokedex-web/internal/domain"
)

const (
	defaultBaseURL = "https://pokeapi.co/api/v2"

	// Artwork fallback used when a per-item detail fetch fails. The sprites
	// repo follows the same id scheme as the official artwork endpoint.
	artworkFallbackURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"
)

// Client fetches Pokémon summaries and detail records from the public
// PokeAPI and normalizes them into domain types. Upstream failures are
// absorbed: list methods degrade to empty pages, lookups to nil. Callers
// never see an error from this client, only an empty result.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against baseURL, or the public PokeAPI when
// baseURL is empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Page is one window of the catalog. Count and HasMore come from the
// upstream pagination cursor and cover the global catalog, not a
// type-filtered member list.
type Page struct {
	Results []domain.PokemonSummary `json:"results"`
	Count   int                     `json:"count"`
	HasMore bool                    `json:"hasMore"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results []namedResource `json:"results"`
}

type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Height  int    `json:"height"`
	Weight  int    `json:"weight"`
	Sprites struct {
		Other struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability namedResource `json:"ability"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
}

type typeResponse struct {
	Pokemon []struct {
		Pokemon namedResource `json:"pokemon"`
	} `json:"pokemon"`
}

// ListPage fetches one window of the global catalog and resolves each
// entry's detail record for artwork and types. A failed detail fetch
// falls back to a constructed artwork URL and empty types; a failed list
// fetch yields an empty page.
func (c *Client) ListPage(ctx context.Context, limit, offset int) *Page {
	var list listResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/pokemon?limit=%d&offset=%d", limit, offset), &list); err != nil {
		log.Printf("ERROR [pokeapi.ListPage]: %v", err)
		return &Page{Results: []domain.PokemonSummary{}}
	}

	results := make([]domain.PokemonSummary, len(list.Results))
	var wg sync.WaitGroup
	for i, entry := range list.Results {
		wg.Add(1)
		go func(i int, entry namedResource) {
			defer wg.Done()
			id := idFromURL(entry.URL)
			results[i] = c.resolveSummary(ctx, id, entry.Name)
		}(i, entry)
	}
	wg.Wait()

	return &Page{
		Results: results,
		Count:   list.Count,
		HasMore: list.Next != nil,
	}
}

// ListByType resolves all members of a type and slices out the requested
// window. The returned hasMore compares offset+limit against the type's
// full member count, which is a different pagination domain from
// ListPage's global cursor; the two are not comparable page spaces.
func (c *Client) ListByType(ctx context.Context, typeName string, limit, offset int) ([]domain.PokemonSummary, bool) {
	var tr typeResponse
	if err := c.getJSON(ctx, "/type/"+strings.ToLower(typeName), &tr); err != nil {
		log.Printf("ERROR [pokeapi.ListByType] type=%s: %v", typeName, err)
		return []domain.PokemonSummary{}, false
	}

	members := tr.Pokemon
	if offset >= len(members) {
		return []domain.PokemonSummary{}, false
	}
	end := offset + limit
	if end > len(members) {
		end = len(members)
	}
	window := members[offset:end]

	results := make([]domain.PokemonSummary, len(window))
	var wg sync.WaitGroup
	for i, m := range window {
		wg.Add(1)
		go func(i int, m namedResource) {
			defer wg.Done()
			detail := c.FetchDetail(ctx, m.Name)
			if detail != nil {
				results[i] = detail.PokemonSummary
				return
			}
			// Keep the member in the page: id and name survive, the rest
			// stays empty.
			results[i] = domain.PokemonSummary{
				ID:    idFromURL(m.URL),
				Name:  m.Name,
				Types: []string{},
			}
		}(i, m.Pokemon)
	}
	wg.Wait()

	return results, offset+limit < len(members)
}

// Search resolves a single entry by numeric id or case-insensitive name.
// It returns nil on not-found or any upstream failure.
func (c *Client) Search(ctx context.Context, term string) *domain.PokemonSummary {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	if _, err := strconv.Atoi(term); err != nil {
		term = strings.ToLower(term)
	}

	var data pokemonResponse
	if err := c.getJSON(ctx, "/pokemon/"+term, &data); err != nil {
		log.Printf("ERROR [pokeapi.Search] term=%s: %v", term, err)
		return nil
	}
	summary := summaryFromResponse(&data)
	return &summary
}

// FetchDetail resolves a full detail record by id or name, nil on failure.
// Height and weight arrive in tenths of a unit and are converted to whole
// meters and kilograms.
func (c *Client) FetchDetail(ctx context.Context, idOrName string) *domain.PokemonDetail {
	var data pokemonResponse
	if err := c.getJSON(ctx, "/pokemon/"+strings.ToLower(strings.TrimSpace(idOrName)), &data); err != nil {
		log.Printf("ERROR [pokeapi.FetchDetail] pokemon=%s: %v", idOrName, err)
		return nil
	}

	abilities := make([]string, len(data.Abilities))
	for i, a := range data.Abilities {
		abilities[i] = capitalize(a.Ability.Name)
	}

	detail := &domain.PokemonDetail{
		PokemonSummary: summaryFromResponse(&data),
		Height:         float64(data.Height) / 10,
		Weight:         float64(data.Weight) / 10,
		Abilities:      abilities,
	}
	// Upstream orders stats hp, attack, defense, sp. atk, sp. def, speed.
	if len(data.Stats) >= 6 {
		detail.Stats = domain.StatBlock{
			HP:      data.Stats[0].BaseStat,
			Attack:  data.Stats[1].BaseStat,
			Defense: data.Stats[2].BaseStat,
			SpAtk:   data.Stats[3].BaseStat,
			SpDef:   data.Stats[4].BaseStat,
			Speed:   data.Stats[5].BaseStat,
		}
	}
	return detail
}

// resolveSummary fetches detail for one catalog entry, falling back to a
// constructed artwork URL when the detail fetch fails so one bad entry
// never sinks the page.
func (c *Client) resolveSummary(ctx context.Context, id int, name string) domain.PokemonSummary {
	var data pokemonResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/pokemon/%d", id), &data); err != nil {
		log.Printf("ERROR [pokeapi.ListPage] detail id=%d: %v", id, err)
		return domain.PokemonSummary{
			ID:    id,
			Name:  capitalize(name),
			Image: fmt.Sprintf(artworkFallbackURL, id),
			Types: []string{},
		}
	}
	return domain.PokemonSummary{
		ID:    id,
		Name:  capitalize(name),
		Image: data.Sprites.Other.OfficialArtwork.FrontDefault,
		Types: typeNames(&data),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func summaryFromResponse(data *pokemonResponse) domain.PokemonSummary {
	return domain.PokemonSummary{
		ID:    data.ID,
		Name:  capitalize(data.Name),
		Image: data.Sprites.Other.OfficialArtwork.FrontDefault,
		Types: typeNames(data),
	}
}

func typeNames(data *pokemonResponse) []string {
	types := make([]string, len(data.Types))
	for i, t := range data.Types {
		types[i] = t.Type.Name
	}
	return types
}

// idFromURL pulls the trailing numeric segment out of an upstream
// resource URL, e.g. ".../pokemon/25/" -> 25.
func idFromURL(rawURL string) int {
	parts := strings.Split(strings.TrimRight(rawURL, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return id
}

// capitalize upper-cases the first letter and leaves the rest untouched,
// matching how names are displayed.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
