package models

import "time"

// Favorite is a Pokemon bookmarked by a user
type Favorite struct {
	PokemonID int       `json:"pokemonId"`
	NameKo    string    `json:"name_ko"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddFavoriteRequest represents a request to bookmark a Pokemon
type AddFavoriteRequest struct {
	PokemonID int    `json:"pokemonId"`
	NameKo    string `json:"name_ko"`
	Image     string `json:"image"`
}
