package services

import (
	"context"
	"errors"
	"sort"

	"github.com/pokeroster/backend/internal/apperrors"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/pokeapi"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	minGeneration    = 1
	maxGeneration    = 9
)

// PokeAPIClient is the interface that wraps the upstream catalog calls
type PokeAPIClient interface {
	// Method ListPokemon fetches a page of the upstream Pokemon index.
	ListPokemon(ctx context.Context, offset, limit int) (*pokeapi.ResourceList, error)
	// Method GetGeneration fetches the species of a generation.
	//
	// If the generation does not exist upstream, pokeapi.ErrNotFound is returned.
	GetGeneration(ctx context.Context, gen int) (*pokeapi.Generation, error)
	// Method GetPokemonWithSpecies fetches a Pokemon and its species concurrently.
	//
	// If either does not exist upstream, pokeapi.ErrNotFound is returned.
	GetPokemonWithSpecies(ctx context.Context, id int) (*pokeapi.Pokemon, *pokeapi.Species, error)
}

// pokemonService implements PokemonService as a pass-through to PokeAPI
type pokemonService struct {
	client PokeAPIClient
	logger *zap.Logger
}

// NewPokemonService creates a new Pokemon proxy service
func NewPokemonService(client PokeAPIClient, logger *zap.Logger) *pokemonService {
	return &pokemonService{
		client: client,
		logger: logger,
	}
}

// MaxPage bounds page numbers so that (page-1)*limit stays far from overflow
const MaxPage = 100000

// NormalizePage clamps page and limit to their allowed ranges
func NormalizePage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// List returns a page of the upstream index with sprite URLs
func (s *pokemonService) List(ctx context.Context, page, limit int) (*models.PokemonList, error) {
	page, limit = NormalizePage(page, limit, defaultListLimit, maxListLimit)

	list, err := s.client.ListPokemon(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, s.upstreamError(err, "list")
	}

	items := make([]models.PokemonListItem, 0, len(list.Results))
	for _, r := range list.Results {
		id, err := pokeapi.IDFromURL(r.URL)
		if err != nil {
			s.logger.Warn("skipping upstream entry without id", zap.String("url", r.URL))
			continue
		}
		items = append(items, models.PokemonListItem{
			ID:     id,
			NameEn: r.Name,
			Sprite: pokeapi.SpriteURL(id),
		})
	}

	return &models.PokemonList{
		Count:    list.Count,
		Page:     page,
		Limit:    limit,
		Pokemons: items,
	}, nil
}

// Generation returns the species of a generation ordered by Pokedex number
func (s *pokemonService) Generation(ctx context.Context, gen int) (*models.GenerationList, error) {
	if gen < minGeneration || gen > maxGeneration {
		return nil, ErrInvalidGeneration
	}

	generation, err := s.client.GetGeneration(ctx, gen)
	if err != nil {
		return nil, s.upstreamError(err, "generation")
	}

	items := make([]models.GenerationItem, 0, len(generation.PokemonSpecies))
	for _, species := range generation.PokemonSpecies {
		id, err := pokeapi.IDFromURL(species.URL)
		if err != nil {
			s.logger.Warn("skipping upstream species without id", zap.String("url", species.URL))
			continue
		}
		items = append(items, models.GenerationItem{
			ID:     id,
			NameEn: species.Name,
			Image:  pokeapi.ArtworkURL(id),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return &models.GenerationList{
		Generation: gen,
		Count:      len(items),
		Pokemons:   items,
	}, nil
}

// Detail returns names, types, stats, abilities, sprites and cries of a Pokemon
func (s *pokemonService) Detail(ctx context.Context, id int) (*models.PokemonDetail, error) {
	if id < 1 {
		return nil, ErrInvalidPokemonID
	}

	pokemon, species, err := s.client.GetPokemonWithSpecies(ctx, id)
	if err != nil {
		return nil, s.upstreamError(err, "detail")
	}

	detail := &models.PokemonDetail{
		ID:        pokemon.ID,
		NameEn:    pokemon.Name,
		NameKo:    species.LocalizedName("ko", pokemon.Name),
		Height:    pokemon.Height,
		Weight:    pokemon.Weight,
		Types:     make([]string, 0, len(pokemon.Types)),
		Stats:     make([]models.StatValue, 0, len(pokemon.Stats)),
		Abilities: make([]models.Ability, 0, len(pokemon.Abilities)),
		Sprites: models.Sprites{
			FrontDefault:    pokemon.Sprites.FrontDefault,
			FrontShiny:      pokemon.Sprites.FrontShiny,
			OfficialArtwork: pokemon.Sprites.Other.OfficialArtwork.FrontDefault,
		},
		Cries: models.Cries{
			Latest: pokemon.Cries.Latest,
			Legacy: pokemon.Cries.Legacy,
		},
	}
	for _, t := range pokemon.Types {
		detail.Types = append(detail.Types, t.Type.Name)
	}
	for _, st := range pokemon.Stats {
		detail.Stats = append(detail.Stats, models.StatValue{Name: st.Stat.Name, Base: st.BaseStat})
	}
	for _, a := range pokemon.Abilities {
		detail.Abilities = append(detail.Abilities, models.Ability{Name: a.Ability.Name, IsHidden: a.IsHidden})
	}

	return detail, nil
}

// upstreamError maps a PokeAPI failure to an application error
func (s *pokemonService) upstreamError(err error, op string) error {
	if errors.Is(err, pokeapi.ErrNotFound) {
		return apperrors.Wrap(ErrPokemonNotFound, err)
	}
	s.logger.Error("pokeapi call failed", zap.String("op", op), zap.Error(err))
	return apperrors.NewUnexpected(err)
}
