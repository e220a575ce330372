package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

// PokemonService is the interface that wraps methods proxied to PokeAPI.
type PokemonService interface {
	// Method List returns one page of the upstream Pokemon index.
	//
	// "page" and "limit" are normalized: page defaults to 1, limit to 20 and is capped at 100.
	List(ctx context.Context, page, limit int) (*models.PokemonList, error)
	// Method Generation returns the species of generation "gen" ordered by id.
	//
	// If "gen" is outside 1..9, services.ErrInvalidGeneration is returned.
	Generation(ctx context.Context, gen int) (*models.GenerationList, error)
	// Method Detail returns names, types, stats, abilities, sprites and cries of Pokemon "id".
	//
	// An upstream 404 returns services.ErrPokemonNotFound.
	Detail(ctx context.Context, id int) (*models.PokemonDetail, error)
}

// PokemonHandler handles requests answered from PokeAPI
type PokemonHandler struct {
	BaseHandler
	pokemonService PokemonService
}

// NewPokemonHandler creates a new pokemon handler
func NewPokemonHandler(pokemonService PokemonService, logger *zap.Logger) *PokemonHandler {
	return &PokemonHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		pokemonService: pokemonService,
	}
}

// RegisterRoutes registers all pokemon handler routes
func (h *PokemonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/pokemon", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/generation/{gen}", h.Generation)
		r.Get("/{id}", h.Detail)
	})
}

// List handles GET /pokemon
// @Summary List Pokemon
// @Description Page through the PokeAPI index with sprite URLs
// @Tags pokemon
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} models.PokemonList
// @Failure 500 {object} MessageResponse "Upstream failure"
// @Router /pokemon [get]
func (h *PokemonHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.pokemonService.List(r.Context(), intQuery(r, "page"), intQuery(r, "limit"))
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, list)
}

// Generation handles GET /pokemon/generation/{gen}
// @Summary Pokemon of a generation
// @Tags pokemon
// @Produce json
// @Param gen path int true "Generation (1-9)"
// @Success 200 {object} models.GenerationList
// @Failure 400 {object} MessageResponse "Invalid generation"
// @Failure 500 {object} MessageResponse "Upstream failure"
// @Router /pokemon/generation/{gen} [get]
func (h *PokemonHandler) Generation(w http.ResponseWriter, r *http.Request) {
	list, err := h.pokemonService.Generation(r.Context(), intParam(r, "gen"))
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, list)
}

// Detail handles GET /pokemon/{id}
// @Summary Pokemon detail
// @Description Names, types, stats, abilities, sprites and cries of a Pokemon
// @Tags pokemon
// @Produce json
// @Param id path int true "Pokedex number"
// @Success 200 {object} models.PokemonDetail
// @Failure 400 {object} MessageResponse "Invalid id"
// @Failure 404 {object} MessageResponse "Pokemon not found"
// @Failure 500 {object} MessageResponse "Upstream failure"
// @Router /pokemon/{id} [get]
func (h *PokemonHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.pokemonService.Detail(r.Context(), intParam(r, "id"))
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, detail)
}
