package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/rafael/pokedex-web/internal/domain"
	"github.com/rafael/pokedex-web/internal/pokeapi"
	"github.com/rafael/pokedex-web/internal/service"
)

// APIClient handles HTTP communication with the backend. It satisfies
// view.Catalog and view.Favorites so a view.Session can run against a
// live server.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Page fetches one catalog window. Failures degrade to an empty page,
// mirroring the server-side catalog contract.
func (c *APIClient) Page(ctx context.Context, limit, offset int, typeFilter string) *pokeapi.Page {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	params.Set("offset", fmt.Sprintf("%d", offset))
	if typeFilter != "" {
		params.Set("type", typeFilter)
	}

	var page pokeapi.Page
	if err := c.getJSON(ctx, "/pokemon?"+params.Encode(), &page); err != nil {
		log.Printf("ERROR [simulator.Page]: %v", err)
		return &pokeapi.Page{Results: []domain.PokemonSummary{}}
	}
	return &page
}

// Search resolves a single Pokémon, nil when the server answers 404.
func (c *APIClient) Search(ctx context.Context, term string) *domain.PokemonSummary {
	var result domain.PokemonSummary
	err := c.getJSON(ctx, "/pokemon/search?q="+url.QueryEscape(term), &result)
	if err != nil {
		return nil
	}
	return &result
}

// Detail fetches the full record for the detail view, nil on 404.
func (c *APIClient) Detail(ctx context.Context, idOrName string) *domain.PokemonDetail {
	var detail domain.PokemonDetail
	if err := c.getJSON(ctx, "/pokemon/"+url.PathEscape(idOrName), &detail); err != nil {
		return nil
	}
	return &detail
}

// List returns the stored favorites for the user.
func (c *APIClient) List(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	var favorites []*domain.Favorite
	if err := c.getJSON(ctx, "/favorites?userId="+url.QueryEscape(userID), &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// Add saves a favorite for the user.
func (c *APIClient) Add(ctx context.Context, userID string, input service.AddFavoriteInput) (*domain.Favorite, error) {
	body := map[string]interface{}{
		"userId": userID,
		"pokemon": map[string]interface{}{
			"id":    input.PokemonID,
			"name":  input.Name,
			"image": input.Image,
			"types": input.Types,
			"notes": input.Notes,
		},
	}

	resp, err := c.do(ctx, http.MethodPost, "/favorites", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var favorite domain.Favorite
	if err := json.NewDecoder(resp.Body).Decode(&favorite); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &favorite, nil
}

// UpdateNotes rewrites the note on an existing favorite.
func (c *APIClient) UpdateNotes(ctx context.Context, userID string, pokemonID int, notes string) error {
	body := map[string]interface{}{
		"userId":    userID,
		"pokemonId": pokemonID,
		"notes":     notes,
	}

	resp, err := c.do(ctx, http.MethodPut, "/favorites", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

// Remove deletes a favorite.
func (c *APIClient) Remove(ctx context.Context, userID string, pokemonID int) error {
	path := fmt.Sprintf("/favorites?userId=%s&pokemonId=%d", url.QueryEscape(userID), pokemonID)
	resp, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func (c *APIClient) getJSON(ctx context.Context, path string, v interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *APIClient) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func statusError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(bodyBytes))
}
