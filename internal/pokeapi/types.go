package pokeapi

// NamedResource is the {name, url} reference PokeAPI uses for linked resources
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ResourceList is a page of /pokemon
type ResourceList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// Generation is the subset of /generation/{id} used by the API
type Generation struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
}

// Pokemon is the subset of /pokemon/{id} used by the API
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience int           `json:"base_experience"`
	Types          []PokemonType `json:"types"`
	Stats          []PokemonStat `json:"stats"`
	Abilities      []PokemonSlot `json:"abilities"`
	Sprites        Sprites       `json:"sprites"`
	Cries          Cries         `json:"cries"`
}

// PokemonType is a type slot
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonStat is a base stat entry
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// PokemonSlot is an ability slot
type PokemonSlot struct {
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

// Sprites holds the sprite URLs; any of them may be null upstream
type Sprites struct {
	FrontDefault string       `json:"front_default"`
	FrontShiny   string       `json:"front_shiny"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds alternative artwork sets
type OtherSprites struct {
	OfficialArtwork struct {
		FrontDefault string `json:"front_default"`
	} `json:"official-artwork"`
}

// Cries holds cry audio URLs
type Cries struct {
	Latest string `json:"latest"`
	Legacy string `json:"legacy"`
}

// Species is the subset of /pokemon-species/{id} used by the API
type Species struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Names []LocalString `json:"names"`
}

// LocalString is a name in a given language
type LocalString struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// LocalizedName returns the species name in lang, or fallback when it has none
func (s *Species) LocalizedName(lang, fallback string) string {
	for _, n := range s.Names {
		if n.Language.Name == lang && n.Name != "" {
			return n.Name
		}
	}
	return fallback
}
