package services

import (
	"context"
	"io"
	"sync"

	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/pokeapi"
	"github.com/pokeroster/backend/internal/repositories"
	"github.com/pokeroster/backend/internal/storage"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user            *models.User
	err             error
	createErr       error
	existsResult    bool
	existsErr       error
	created         []*models.User
	lastLookupEmail string
	lastExistsEmail string
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = len(m.created) + 1
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.lastLookupEmail = email
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.lastExistsEmail = email
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existsResult, nil
}

// mockProfileStorage is a mock implementation of ProfileStorage
type mockProfileStorage struct {
	saveErr error
	saved   []string
	deleted []string
}

func (m *mockProfileStorage) Save(ctx context.Context, originalName string, src io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	if _, err := io.ReadAll(src); err != nil {
		return "", err
	}
	name := storage.GenerateFileName(".png")
	m.saved = append(m.saved, name)
	return name, nil
}

func (m *mockProfileStorage) Delete(name string) error {
	m.deleted = append(m.deleted, name)
	return nil
}

// mockTokenIssuer is a mock implementation of TokenIssuer
type mockTokenIssuer struct {
	err    error
	issued []models.TokenClaims
}

func (m *mockTokenIssuer) Issue(claims models.TokenClaims) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.issued = append(m.issued, claims)
	return "signed-token", nil
}

// mockPokeAPIClient is a mock implementation of PokeAPIClient and RecordFetcher
type mockPokeAPIClient struct {
	list       *pokeapi.ResourceList
	generation *pokeapi.Generation
	pokemon    *pokeapi.Pokemon
	species    *pokeapi.Species
	err        error
	failID     int

	mu         sync.Mutex
	lastOffset int
	lastLimit  int
	seedCalls  int
}

func (m *mockPokeAPIClient) ListPokemon(ctx context.Context, offset, limit int) (*pokeapi.ResourceList, error) {
	m.lastOffset, m.lastLimit = offset, limit
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *mockPokeAPIClient) GetGeneration(ctx context.Context, gen int) (*pokeapi.Generation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.generation, nil
}

func (m *mockPokeAPIClient) GetPokemonWithSpecies(ctx context.Context, id int) (*pokeapi.Pokemon, *pokeapi.Species, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.pokemon, m.species, nil
}

func (m *mockPokeAPIClient) SeedRecord(ctx context.Context, id int) (*models.Pokemon, error) {
	m.mu.Lock()
	m.seedCalls++
	m.mu.Unlock()
	if id == m.failID {
		return nil, pokeapi.ErrNotFound
	}
	return &models.Pokemon{PokemonID: id, NameEn: "pokemon", NameKo: "포켓몬"}, nil
}

// mockPokemonRepository is a mock implementation of PokemonRepository and CatalogReplacer
type mockPokemonRepository struct {
	summaries   []models.PokemonSummary
	suggestions []models.PokemonSuggestion
	pokemon     *models.Pokemon
	total       int
	exists      bool
	err         error
	createErr   error
	deleteErr   error

	lastFilter models.CatalogFilter
	lastOffset int
	lastLimit  int
	lastTerm   string
	created    *models.Pokemon
	replaced   []*models.Pokemon
}

func (m *mockPokemonRepository) GetFeatured(ctx context.Context, limit int) ([]models.PokemonSummary, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.summaries, nil
}

func (m *mockPokemonRepository) Suggest(ctx context.Context, term string, limit int) ([]models.PokemonSuggestion, error) {
	m.lastTerm, m.lastLimit = term, limit
	if m.err != nil {
		return nil, m.err
	}
	return m.suggestions, nil
}

func (m *mockPokemonRepository) List(ctx context.Context, filter models.CatalogFilter, offset, limit int) ([]models.PokemonSummary, int, error) {
	m.lastFilter, m.lastOffset, m.lastLimit = filter, offset, limit
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.summaries, m.total, nil
}

func (m *mockPokemonRepository) GetByPokemonID(ctx context.Context, pokemonID int) (*models.Pokemon, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.pokemon == nil && m.created != nil {
		return m.created, nil
	}
	return m.pokemon, nil
}

func (m *mockPokemonRepository) ExistsByPokemonID(ctx context.Context, pokemonID int) (bool, error) {
	return m.exists, m.err
}

func (m *mockPokemonRepository) Create(ctx context.Context, pokemon *models.Pokemon) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = pokemon
	return nil
}

func (m *mockPokemonRepository) Delete(ctx context.Context, pokemonID int) error {
	return m.deleteErr
}

func (m *mockPokemonRepository) ReplaceAll(ctx context.Context, pokemons []*models.Pokemon) error {
	if m.err != nil {
		return m.err
	}
	m.replaced = pokemons
	return nil
}

// mockFavoriteRepository is a mock implementation of FavoriteRepository
type mockFavoriteRepository struct {
	favorites []models.Favorite
	err       error
	added     *models.Favorite
}

func (m *mockFavoriteRepository) ListByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.favorites, nil
}

func (m *mockFavoriteRepository) Add(ctx context.Context, userID int, favorite *models.Favorite) error {
	if m.err != nil {
		return m.err
	}
	m.added = favorite
	return nil
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, userID, pokemonID int) error {
	return m.err
}

// mockTeamRepository is a mock implementation of TeamRepository
type mockTeamRepository struct {
	team      *models.Team
	teams     []models.Team
	err       error
	updateErr error
	created   *models.Team
	updated   *models.Team
}

func (m *mockTeamRepository) Create(ctx context.Context, team *models.Team) error {
	if m.err != nil {
		return m.err
	}
	team.ID = 1
	m.created = team
	return nil
}

func (m *mockTeamRepository) ListByUser(ctx context.Context, userID int) ([]models.Team, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.teams, nil
}

func (m *mockTeamRepository) GetByIDForUser(ctx context.Context, id, userID int) (*models.Team, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.team == nil || m.team.ID != id || m.team.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	copied := *m.team
	return &copied, nil
}

func (m *mockTeamRepository) UpdateVisibility(ctx context.Context, team *models.Team) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = team
	return nil
}
