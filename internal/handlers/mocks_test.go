package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pokeroster/backend/internal/auth/middleware"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/services"
)

// mockUserService is a mock implementation of UserService
type mockUserService struct {
	authResponse   *models.AuthResponse
	user           *models.User
	err            error
	lastSignup     *models.SignupRequest
	lastUpload     []byte
	lastUploadName string
	lastLogin      *models.LoginRequest
	lastUserID     int
}

func (m *mockUserService) Signup(ctx context.Context, req *models.SignupRequest, upload *services.ProfileUpload) (*models.AuthResponse, error) {
	m.lastSignup = req
	if upload != nil {
		m.lastUploadName = upload.Filename
		m.lastUpload, _ = io.ReadAll(upload.Content)
	}
	return m.authResponse, m.err
}

func (m *mockUserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	m.lastLogin = req
	return m.authResponse, m.err
}

func (m *mockUserService) Me(ctx context.Context, userID int) (*models.User, error) {
	m.lastUserID = userID
	return m.user, m.err
}

// mockPokemonService is a mock implementation of PokemonService
type mockPokemonService struct {
	list       *models.PokemonList
	generation *models.GenerationList
	detail     *models.PokemonDetail
	err        error
	lastPage   int
	lastLimit  int
	lastGen    int
	lastID     int
}

func (m *mockPokemonService) List(ctx context.Context, page, limit int) (*models.PokemonList, error) {
	m.lastPage, m.lastLimit = page, limit
	return m.list, m.err
}

func (m *mockPokemonService) Generation(ctx context.Context, gen int) (*models.GenerationList, error) {
	m.lastGen = gen
	return m.generation, m.err
}

func (m *mockPokemonService) Detail(ctx context.Context, id int) (*models.PokemonDetail, error) {
	m.lastID = id
	return m.detail, m.err
}

// mockCatalogService is a mock implementation of CatalogService
type mockCatalogService struct {
	featured      []models.PokemonSummary
	suggestions   []models.PokemonSuggestion
	page          *models.CatalogPage
	pokemon       *models.Pokemon
	err           error
	lastSearch    string
	lastFilter    models.CatalogFilter
	lastPage      int
	lastPerPage   int
	lastPokemonID int
	lastCreate    *models.CreatePokemonRequest
	deleted       []int
}

func (m *mockCatalogService) Featured(ctx context.Context) ([]models.PokemonSummary, error) {
	return m.featured, m.err
}

func (m *mockCatalogService) Suggestions(ctx context.Context, search string) ([]models.PokemonSuggestion, error) {
	m.lastSearch = search
	return m.suggestions, m.err
}

func (m *mockCatalogService) List(ctx context.Context, filter models.CatalogFilter, page, perPage int) (*models.CatalogPage, error) {
	m.lastFilter, m.lastPage, m.lastPerPage = filter, page, perPage
	return m.page, m.err
}

func (m *mockCatalogService) Get(ctx context.Context, pokemonID int) (*models.Pokemon, error) {
	m.lastPokemonID = pokemonID
	return m.pokemon, m.err
}

func (m *mockCatalogService) Create(ctx context.Context, req *models.CreatePokemonRequest) (*models.Pokemon, error) {
	m.lastCreate = req
	return m.pokemon, m.err
}

func (m *mockCatalogService) Delete(ctx context.Context, pokemonID int) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, pokemonID)
	return nil
}

// mockFavoriteService is a mock implementation of FavoriteService
type mockFavoriteService struct {
	favorites     []models.Favorite
	favorite      *models.Favorite
	err           error
	lastUserID    int
	lastAdd       *models.AddFavoriteRequest
	lastPokemonID int
}

func (m *mockFavoriteService) List(ctx context.Context, userID int) ([]models.Favorite, error) {
	m.lastUserID = userID
	return m.favorites, m.err
}

func (m *mockFavoriteService) Add(ctx context.Context, userID int, req *models.AddFavoriteRequest) (*models.Favorite, error) {
	m.lastUserID, m.lastAdd = userID, req
	return m.favorite, m.err
}

func (m *mockFavoriteService) Remove(ctx context.Context, userID, pokemonID int) error {
	m.lastUserID, m.lastPokemonID = userID, pokemonID
	return m.err
}

// mockTeamService is a mock implementation of TeamService
type mockTeamService struct {
	team          *models.Team
	teams         []models.Team
	err           error
	lastUserID    int
	lastTeamID    int
	lastCreate    *models.CreateTeamRequest
	lastIsPublic  *bool
	visibilitySet bool
}

func (m *mockTeamService) Create(ctx context.Context, userID int, req *models.CreateTeamRequest) (*models.Team, error) {
	m.lastUserID, m.lastCreate = userID, req
	return m.team, m.err
}

func (m *mockTeamService) List(ctx context.Context, userID int) ([]models.Team, error) {
	m.lastUserID = userID
	return m.teams, m.err
}

func (m *mockTeamService) SetVisibility(ctx context.Context, userID, teamID int, isPublic *bool) (*models.Team, error) {
	m.lastUserID, m.lastTeamID, m.lastIsPublic = userID, teamID, isPublic
	m.visibilitySet = true
	return m.team, m.err
}

// mockPinger is a mock implementation of Pinger
type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.err
}

// withClaims stands in for the auth middleware by attaching fixed claims
func withClaims(claims *models.TokenClaims) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithClaims(r.Context(), claims)))
		})
	}
}

// passThrough is a middleware that calls through unconditionally
func passThrough(next http.Handler) http.Handler {
	return next
}

// newRouter mounts handler routes under /api like the server does
func newRouter(register func(r chi.Router)) chi.Router {
	r := chi.NewRouter()
	r.Route("/api", register)
	return r
}
