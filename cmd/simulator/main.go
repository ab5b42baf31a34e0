package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rafael/pokedex-web/internal/view"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "browse":
		browseCmd(apiURL, args)
	case "search":
		searchCmd(apiURL, args)
	case "favorites":
		favoritesCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Pokedex Simulator - Development tool for driving browse/search/favorites flows

USAGE:
  simulator <command> [options]

COMMANDS:
  browse     Page through the catalog, optionally filtered by type
  search     Look up a single Pokemon by name or id
  favorites  Favorite a few Pokemon with notes and print the favorites view
  help       Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Print the first two catalog pages
  simulator browse --pages=2

  # Browse only fire types
  simulator browse --type=fire

  # Look up Pikachu
  simulator search pikachu

  # Run a favorites round trip for a fresh user
  simulator favorites`)
}

func browseCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	pages := fs.Int("pages", 1, "number of pages to print")
	pageSize := fs.Int("page-size", 20, "entries per page")
	typeFilter := fs.String("type", "", "type filter (e.g. fire)")
	fs.Parse(args)

	ctx := context.Background()
	client := NewAPIClient(apiURL)
	session := view.NewSession(uuid.New().String(), *pageSize, client, client)
	session.SetTypeFilter(*typeFilter)

	for p := 0; p < *pages; p++ {
		list, err := session.Display(ctx)
		if err != nil {
			fmt.Printf("failed to load page: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("--- page at offset %d (%d of %d pages) ---\n", session.Offset(), p+1, session.TotalPages())
		for _, pkm := range list {
			fmt.Printf("  #%-4d %-15s %v\n", pkm.ID, pkm.Name, pkm.Types)
		}
		session.NextPage()
	}
}

func searchCmd(apiURL string, args []string) {
	if len(args) < 1 {
		fmt.Println("search requires a name or id")
		os.Exit(1)
	}

	ctx := context.Background()
	client := NewAPIClient(apiURL)
	session := view.NewSession(uuid.New().String(), 20, client, client)
	session.SetMode(view.ModeSearch)
	session.SetQuery(args[0])

	list, err := session.Display(ctx)
	if err != nil {
		fmt.Printf("search failed: %v\n", err)
		os.Exit(1)
	}
	if len(list) == 0 {
		fmt.Printf("no Pokemon matching %q\n", args[0])
		return
	}

	pkm := list[0]
	fmt.Printf("#%d %s %v\n", pkm.ID, pkm.Name, pkm.Types)

	if detail := client.Detail(ctx, args[0]); detail != nil {
		fmt.Printf("  height: %.1fm  weight: %.1fkg\n", detail.Height, detail.Weight)
		fmt.Printf("  abilities: %v\n", detail.Abilities)
		fmt.Printf("  stats: hp=%d atk=%d def=%d spAtk=%d spDef=%d speed=%d\n",
			detail.Stats.HP, detail.Stats.Attack, detail.Stats.Defense,
			detail.Stats.SpAtk, detail.Stats.SpDef, detail.Stats.Speed)
	}
}

func favoritesCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("favorites", flag.ExitOnError)
	count := fs.Int("count", 3, "how many Pokemon from the first page to favorite")
	fs.Parse(args)

	ctx := context.Background()
	client := NewAPIClient(apiURL)
	userID := uuid.New().String()
	fmt.Printf("using user id %s\n", userID)

	session := view.NewSession(userID, 20, client, client)

	list, err := session.Display(ctx)
	if err != nil {
		fmt.Printf("failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	if len(list) == 0 {
		fmt.Println("catalog is empty, is the upstream reachable?")
		os.Exit(1)
	}

	n := *count
	if n > len(list) {
		n = len(list)
	}
	for _, pkm := range list[:n] {
		if err := session.ToggleFavorite(ctx, pkm); err != nil {
			fmt.Printf("toggle failed for %s: %v\n", pkm.Name, err)
			os.Exit(1)
		}
		fmt.Printf("favorited %s (favorited=%v)\n", pkm.Name, session.IsFavorited(pkm.ID))
	}

	// Put a note on the first favorite
	if err := client.UpdateNotes(ctx, userID, list[0].ID, "caught on route 1"); err != nil {
		fmt.Printf("note update failed: %v\n", err)
		os.Exit(1)
	}

	session.SetMode(view.ModeFavorites)
	favView, err := session.Display(ctx)
	if err != nil {
		fmt.Printf("failed to load favorites view: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- favorites ---")
	for _, pkm := range favView {
		fmt.Printf("  #%-4d %-15s %v\n", pkm.ID, pkm.Name, pkm.Types)
	}
	if len(favView) == 0 {
		return
	}

	// Unfavorite the first one again; removing twice must also succeed
	first := favView[0]
	session.SetMode(view.ModeBrowse)
	if err := session.ToggleFavorite(ctx, first); err != nil {
		fmt.Printf("unfavorite failed: %v\n", err)
		os.Exit(1)
	}
	if err := client.Remove(ctx, userID, first.ID); err != nil {
		fmt.Printf("repeat delete should be a no-op, got: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("unfavorited %s (favorited=%v)\n", first.Name, session.IsFavorited(first.ID))
}
