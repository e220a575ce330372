package pokeapi

import (
	"context"

	"github.com/pokeroster/backend/internal/models"
)

// statKeys maps PokeAPI stat names onto the mirrored stat fields
var statKeys = map[string]func(*models.Stats, int){
	"hp":              func(s *models.Stats, v int) { s.HP = v },
	"attack":          func(s *models.Stats, v int) { s.Attack = v },
	"defense":         func(s *models.Stats, v int) { s.Defense = v },
	"special-attack":  func(s *models.Stats, v int) { s.SpecialAttack = v },
	"special-defense": func(s *models.Stats, v int) { s.SpecialDefense = v },
	"speed":           func(s *models.Stats, v int) { s.Speed = v },
}

// SeedRecord fetches Pokemon id and builds the entry stored in the local catalog
func (c *Client) SeedRecord(ctx context.Context, id int) (*models.Pokemon, error) {
	pokemon, species, err := c.GetPokemonWithSpecies(ctx, id)
	if err != nil {
		return nil, err
	}
	return BuildRecord(pokemon, species), nil
}

// BuildRecord converts upstream Pokemon and species data into a catalog entry
func BuildRecord(pokemon *Pokemon, species *Species) *models.Pokemon {
	record := &models.Pokemon{
		PokemonID:      pokemon.ID,
		NameEn:         pokemon.Name,
		NameKo:         species.LocalizedName("ko", pokemon.Name),
		Image:          pokemon.Sprites.Other.OfficialArtwork.FrontDefault,
		Types:          make([]string, 0, len(pokemon.Types)),
		Height:         pokemon.Height,
		Weight:         pokemon.Weight,
		BaseExperience: pokemon.BaseExperience,
		Abilities:      make([]string, 0, len(pokemon.Abilities)),
		Stats:          &models.Stats{},
	}
	if record.Image == "" {
		record.Image = pokemon.Sprites.FrontDefault
	}

	for _, t := range pokemon.Types {
		record.Types = append(record.Types, t.Type.Name)
	}
	for _, a := range pokemon.Abilities {
		record.Abilities = append(record.Abilities, a.Ability.Name)
	}
	for _, s := range pokemon.Stats {
		if set, ok := statKeys[s.Stat.Name]; ok {
			set(record.Stats, s.BaseStat)
		}
	}

	return record
}
