package domain

// PokemonSummary is the minimal record used in list views. It is derived
// from upstream data per request and never persisted.
type PokemonSummary struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image"`
	Types []string `json:"types"`
}

// StatBlock holds the six base stat gauges in upstream order.
type StatBlock struct {
	HP      int `json:"hp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	SpAtk   int `json:"spAtk"`
	SpDef   int `json:"spDef"`
	Speed   int `json:"speed"`
}

// PokemonDetail extends the summary with physical stats and abilities.
// Height is in meters and weight in kilograms; the upstream API sends
// both in tenths and the catalog client converts them.
type PokemonDetail struct {
	PokemonSummary
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	Abilities []string  `json:"abilities"`
	Stats     StatBlock `json:"stats"`
}
