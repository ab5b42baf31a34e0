package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
)

const apiBase = "http://localhost:8080"

var starters = []struct {
	ID    int
	Name  string
	Types []string
	Notes string
}{
	{1, "Bulbasaur", []string{"grass", "poison"}, "solid pick for the first gyms"},
	{4, "Charmander", []string{"fire"}, ""},
	{7, "Squirtle", []string{"water"}, "team favorite"},
	{25, "Pikachu", []string{"electric"}, "the mascot"},
}

// Seeds a fresh demo user with a few favorites through the live API and
// prints the generated user id so the same list can be pulled up again.
func main() {
	userID := uuid.New().String()
	if len(os.Args) > 1 {
		userID = os.Args[1]
	}

	fmt.Printf("seeding favorites for user %s\n", userID)

	for _, s := range starters {
		body, _ := json.Marshal(map[string]interface{}{
			"userId": userID,
			"pokemon": map[string]interface{}{
				"id":    s.ID,
				"name":  s.Name,
				"image": fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png", s.ID),
				"types": s.Types,
				"notes": s.Notes,
			},
		})

		resp, err := http.Post(apiBase+"/favorites", "application/json", bytes.NewBuffer(body))
		if err != nil {
			fmt.Printf("failed to create favorite %s: %v\n", s.Name, err)
			os.Exit(1)
		}
		if resp.StatusCode != http.StatusOK {
			msg, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			fmt.Printf("favorite %s rejected (status %d): %s\n", s.Name, resp.StatusCode, string(msg))
			os.Exit(1)
		}
		resp.Body.Close()
		fmt.Printf("  favorited %s\n", s.Name)
	}

	fmt.Printf("done; list with: curl '%s/favorites?userId=%s'\n", apiBase, userID)
}
