package models

import "time"

// Stats holds base stats of a mirrored Pokemon
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"special_attack"`
	SpecialDefense int `json:"special_defense"`
	Speed          int `json:"speed"`
}

// Pokemon represents an entry of the locally mirrored catalog
type Pokemon struct {
	PokemonID      int       `json:"pokemonId"`
	NameKo         string    `json:"name_ko"`
	NameEn         string    `json:"name_en"`
	Image          string    `json:"image"`
	Types          []string  `json:"types"`
	Height         int       `json:"height,omitempty"`
	Weight         int       `json:"weight,omitempty"`
	BaseExperience int       `json:"base_experience,omitempty"`
	Abilities      []string  `json:"abilities,omitempty"`
	Stats          *Stats    `json:"stats,omitempty"`
	FavoriteCount  int       `json:"favoriteCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PokemonSummary is the short form used by featured and list responses
type PokemonSummary struct {
	PokemonID     int      `json:"pokemonId"`
	NameKo        string   `json:"name_ko"`
	NameEn        string   `json:"name_en"`
	Image         string   `json:"image"`
	Types         []string `json:"types"`
	FavoriteCount int      `json:"favoriteCount"`
}

// PokemonSuggestion is returned by autocomplete
type PokemonSuggestion struct {
	PokemonID int    `json:"pokemonId"`
	NameKo    string `json:"name_ko"`
	NameEn    string `json:"name_en"`
}

// CatalogFilter narrows catalog list queries
type CatalogFilter struct {
	Search string
	Type   string
}

// CatalogPage is the paginated catalog list response
type CatalogPage struct {
	Pokemons      []PokemonSummary `json:"pokemons"`
	CurrentPage   int              `json:"currentPage"`
	PerPage       int              `json:"perPage"`
	TotalPokemons int              `json:"totalPokemons"`
	TotalPages    int              `json:"totalPages"`
}

// CreatePokemonRequest represents an admin request to add a catalog entry
type CreatePokemonRequest struct {
	PokemonID int      `json:"pokemonId"`
	NameKo    string   `json:"name_ko"`
	NameEn    string   `json:"name_en"`
	Image     string   `json:"image"`
	Types     []string `json:"types"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
}
