package services

import (
	"context"
	"errors"
	"strings"

	"github.com/pokeroster/backend/internal/apperrors"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/repositories"
	"go.uber.org/zap"
)

const (
	featuredCount      = 3
	suggestionLimit    = 10
	defaultCatalogPage = 20
	maxCatalogPage     = 100
)

// PokemonRepository is the interface that wraps methods for the mirrored catalog
type PokemonRepository interface {
	// Method GetFeatured retrieves the first "limit" entries ordered by Pokedex number.
	GetFeatured(ctx context.Context, limit int) ([]models.PokemonSummary, error)
	// Method Suggest retrieves up to "limit" entries whose Korean or English name contains "term".
	Suggest(ctx context.Context, term string, limit int) ([]models.PokemonSuggestion, error)
	// Method List retrieves a page of entries matching "filter" together with the total number of matches.
	List(ctx context.Context, filter models.CatalogFilter, offset, limit int) ([]models.PokemonSummary, int, error)
	// Method GetByPokemonID retrieves a single entry.
	//
	// If the entry does not exist, repositories.ErrNotFound will be returned together with "nil" value.
	GetByPokemonID(ctx context.Context, pokemonID int) (*models.Pokemon, error)
	// Method ExistsByPokemonID checks if the entry exists.
	ExistsByPokemonID(ctx context.Context, pokemonID int) (bool, error)
	// Method Create inserts an entry.
	//
	// If the entry already exists, an error wrapping repositories.ErrDuplicate is returned.
	Create(ctx context.Context, pokemon *models.Pokemon) error
	// Method Delete removes an entry.
	//
	// If the entry does not exist, repositories.ErrNotFound is returned.
	Delete(ctx context.Context, pokemonID int) error
}

// catalogService implements CatalogService over the mirrored catalog
type catalogService struct {
	repo   PokemonRepository
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo PokemonRepository, logger *zap.Logger) *catalogService {
	return &catalogService{
		repo:   repo,
		logger: logger,
	}
}

// Featured returns the first three entries by Pokedex number
func (s *catalogService) Featured(ctx context.Context) ([]models.PokemonSummary, error) {
	featured, err := s.repo.GetFeatured(ctx, featuredCount)
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	return featured, nil
}

// Suggestions returns up to ten name matches; a blank search returns nothing
func (s *catalogService) Suggestions(ctx context.Context, search string) ([]models.PokemonSuggestion, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return []models.PokemonSuggestion{}, nil
	}

	suggestions, err := s.repo.Suggest(ctx, search, suggestionLimit)
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	return suggestions, nil
}

// List returns a filtered page of the catalog
func (s *catalogService) List(ctx context.Context, filter models.CatalogFilter, page, perPage int) (*models.CatalogPage, error) {
	page, perPage = NormalizePage(page, perPage, defaultCatalogPage, maxCatalogPage)
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Type = strings.ToLower(strings.TrimSpace(filter.Type))

	pokemons, total, err := s.repo.List(ctx, filter, (page-1)*perPage, perPage)
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}

	return &models.CatalogPage{
		Pokemons:      pokemons,
		CurrentPage:   page,
		PerPage:       perPage,
		TotalPokemons: total,
		TotalPages:    (total + perPage - 1) / perPage,
	}, nil
}

// Get returns a single catalog entry
func (s *catalogService) Get(ctx context.Context, pokemonID int) (*models.Pokemon, error) {
	if pokemonID < 1 {
		return nil, ErrInvalidPokemonID
	}

	pokemon, err := s.repo.GetByPokemonID(ctx, pokemonID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPokemonNotFound
	}
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	return pokemon, nil
}

// Create adds an entry by hand; used by admins
func (s *catalogService) Create(ctx context.Context, req *models.CreatePokemonRequest) (*models.Pokemon, error) {
	req.NameKo = strings.TrimSpace(req.NameKo)
	req.NameEn = strings.TrimSpace(req.NameEn)
	req.Image = strings.TrimSpace(req.Image)
	if req.PokemonID < 1 || req.NameKo == "" || req.Image == "" {
		return nil, apperrors.NewValidation("pokemonId, name_ko and image are required")
	}
	if longerThan(req.NameKo, maxNameLength) || longerThan(req.NameEn, maxNameLength) || longerThan(req.Image, maxImageLength) {
		return nil, apperrors.NewValidation("name_ko, name_en or image is too long")
	}

	exists, err := s.repo.ExistsByPokemonID(ctx, req.PokemonID)
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	if exists {
		return nil, ErrPokemonExists
	}

	types := make([]string, 0, len(req.Types))
	for _, t := range req.Types {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			types = append(types, t)
		}
	}

	pokemon := &models.Pokemon{
		PokemonID: req.PokemonID,
		NameKo:    req.NameKo,
		NameEn:    req.NameEn,
		Image:     req.Image,
		Types:     types,
		Height:    req.Height,
		Weight:    req.Weight,
	}
	if err := s.repo.Create(ctx, pokemon); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Wrap(ErrPokemonExists, err)
		}
		return nil, apperrors.NewUnexpected(err)
	}

	s.logger.Info("catalog entry created", zap.Int("pokemon_id", pokemon.PokemonID))

	created, err := s.repo.GetByPokemonID(ctx, pokemon.PokemonID)
	if err != nil {
		// the row exists; answer with what was written
		return pokemon, nil
	}
	return created, nil
}

// Delete removes a catalog entry; used by admins
func (s *catalogService) Delete(ctx context.Context, pokemonID int) error {
	if pokemonID < 1 {
		return ErrInvalidPokemonID
	}

	err := s.repo.Delete(ctx, pokemonID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrPokemonNotFound
	}
	if err != nil {
		return apperrors.NewUnexpected(err)
	}

	s.logger.Info("catalog entry deleted", zap.Int("pokemon_id", pokemonID))
	return nil
}
