package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps methods for the mirrored catalog.
type CatalogService interface {
	// Method Featured returns the first three entries by Pokedex number.
	Featured(ctx context.Context) ([]models.PokemonSummary, error)
	// Method Suggestions returns up to ten entries whose Korean or English name contains "search".
	//
	// A blank "search" returns an empty slice without touching the store.
	Suggestions(ctx context.Context, search string) ([]models.PokemonSuggestion, error)
	// Method List returns one page of the catalog narrowed by "filter".
	List(ctx context.Context, filter models.CatalogFilter, page, perPage int) (*models.CatalogPage, error)
	// Method Get returns the entry with Pokedex number "pokemonID".
	//
	// If it does not exist, services.ErrPokemonNotFound is returned.
	Get(ctx context.Context, pokemonID int) (*models.Pokemon, error)
	// Method Create adds an entry by hand.
	//
	// An existing Pokedex number returns services.ErrPokemonExists.
	Create(ctx context.Context, req *models.CreatePokemonRequest) (*models.Pokemon, error)
	// Method Delete removes the entry with Pokedex number "pokemonID".
	Delete(ctx context.Context, pokemonID int) error
}

// CatalogHandler handles requests answered from the local catalog
type CatalogHandler struct {
	BaseHandler
	catalogService CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		catalogService: catalogService,
	}
}

// RegisterRoutes registers all catalog handler routes.
// Writes go through both the auth and the admin middleware.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/featured", h.Featured)
		r.Get("/suggestions", h.Suggestions)
		r.Get("/", h.List)
		r.Get("/{pokemonId}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware, adminMiddleware)
			r.Post("/", h.Create)
			r.Delete("/{pokemonId}", h.Delete)
		})
	})
}

// Featured handles GET /catalog/featured
// @Summary Featured Pokemon
// @Tags catalog
// @Produce json
// @Success 200 {array} models.PokemonSummary
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /catalog/featured [get]
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	featured, err := h.catalogService.Featured(r.Context())
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, featured)
}

// Suggestions handles GET /catalog/suggestions
// @Summary Autocomplete Pokemon names
// @Tags catalog
// @Produce json
// @Param search query string false "Part of a Korean or English name"
// @Success 200 {array} models.PokemonSuggestion
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /catalog/suggestions [get]
func (h *CatalogHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.catalogService.Suggestions(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, suggestions)
}

// List handles GET /catalog
// @Summary List catalog
// @Tags catalog
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param perPage query int false "Page size (default 20)"
// @Param search query string false "Part of a Korean or English name"
// @Param type query string false "Type, e.g. fire"
// @Success 200 {object} models.CatalogPage
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /catalog [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := models.CatalogFilter{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
	}

	page, err := h.catalogService.List(r.Context(), filter, intQuery(r, "page"), intQuery(r, "perPage"))
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, page)
}

// Get handles GET /catalog/{pokemonId}
// @Summary Catalog entry
// @Tags catalog
// @Produce json
// @Param pokemonId path int true "Pokedex number"
// @Success 200 {object} models.Pokemon
// @Failure 400 {object} MessageResponse "Invalid pokemonId"
// @Failure 404 {object} MessageResponse "Pokemon not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /catalog/{pokemonId} [get]
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	pokemon, err := h.catalogService.Get(r.Context(), intParam(r, "pokemonId"))
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, pokemon)
}

// Create handles POST /catalog
// @Summary Add a catalog entry
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreatePokemonRequest true "Catalog entry"
// @Success 201 {object} models.Pokemon
// @Failure 400 {object} MessageResponse "Invalid request"
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 403 {object} MessageResponse "Not an admin"
// @Failure 409 {object} MessageResponse "Pokemon already exists"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /catalog [post]
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePokemonRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pokemon, err := h.catalogService.Create(r.Context(), &req)
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, pokemon)
}

// Delete handles DELETE /catalog/{pokemonId}
// @Summary Remove a catalog entry
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param pokemonId path int true "Pokedex number"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid pokemonId"
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 403 {object} MessageResponse "Not an admin"
// @Failure 404 {object} MessageResponse "Pokemon not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /catalog/{pokemonId} [delete]
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.Delete(r.Context(), intParam(r, "pokemonId")); err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, MessageResponse{Message: "pokemon deleted"})
}
