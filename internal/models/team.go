package models

import "time"

// MaxTeamSize is the maximum number of Pokemon in one team
const MaxTeamSize = 6

// TeamPokemon is a Pokemon slot of a team
type TeamPokemon struct {
	PokemonID int    `json:"pokemonId"`
	NameKo    string `json:"name_ko"`
	Image     string `json:"image"`
}

// Team is a named collection of up to six Pokemon owned by a user
type Team struct {
	ID        int           `json:"_id"`
	UserID    int           `json:"user"`
	Name      string        `json:"name"`
	Pokemons  []TeamPokemon `json:"pokemons"`
	IsPublic  bool          `json:"isPublic"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreateTeamRequest represents a team creation request
type CreateTeamRequest struct {
	Name     string        `json:"name"`
	Pokemons []TeamPokemon `json:"pokemons"`
	IsPublic bool          `json:"isPublic"`
}

// UpdateTeamVisibilityRequest sets the visibility explicitly; nil toggles it
type UpdateTeamVisibilityRequest struct {
	IsPublic *bool `json:"isPublic,omitempty"`
}
