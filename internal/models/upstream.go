package models

// Shapes below are responses of the Pokemon proxy endpoints (sourced from PokeAPI on every call)

// PokemonListItem is an entry of the proxied list
type PokemonListItem struct {
	ID     int    `json:"id"`
	NameEn string `json:"name_en"`
	Sprite string `json:"sprite"`
}

// PokemonList is the proxied list response
type PokemonList struct {
	Count    int               `json:"count"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Pokemons []PokemonListItem `json:"pokemons"`
}

// GenerationItem is an entry of a generation list
type GenerationItem struct {
	ID     int    `json:"id"`
	NameEn string `json:"name_en"`
	Image  string `json:"image"`
}

// GenerationList is the proxied generation response
type GenerationList struct {
	Generation int              `json:"generation"`
	Count      int              `json:"count"`
	Pokemons   []GenerationItem `json:"pokemons"`
}

// StatValue is a single base stat
type StatValue struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// Ability is a single ability of a Pokemon
type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"isHidden"`
}

// Sprites holds sprite URLs
type Sprites struct {
	FrontDefault    string `json:"front_default"`
	FrontShiny      string `json:"front_shiny"`
	OfficialArtwork string `json:"official_artwork"`
}

// Cries holds cry audio URLs
type Cries struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

// PokemonDetail is the proxied detail response
type PokemonDetail struct {
	ID        int         `json:"id"`
	NameEn    string      `json:"name_en"`
	NameKo    string      `json:"name_ko"`
	Height    int         `json:"height"`
	Weight    int         `json:"weight"`
	Types     []string    `json:"types"`
	Stats     []StatValue `json:"stats"`
	Abilities []Ability   `json:"abilities"`
	Sprites   Sprites     `json:"sprites"`
	Cries     Cries       `json:"cries"`
}
