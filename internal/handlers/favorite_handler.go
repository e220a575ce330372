package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pokeroster/backend/internal/auth/middleware"
	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

// FavoriteService is the interface that wraps methods for a user's bookmarks.
type FavoriteService interface {
	// Method List returns the bookmarks of "userID", newest first.
	List(ctx context.Context, userID int) ([]models.Favorite, error)
	// Method Add bookmarks a Pokemon for "userID".
	//
	// A second bookmark of the same Pokemon returns services.ErrFavoriteExists.
	Add(ctx context.Context, userID int, req *models.AddFavoriteRequest) (*models.Favorite, error)
	// Method Remove deletes a bookmark of "userID".
	//
	// If there is none, services.ErrFavoriteNotFound is returned.
	Remove(ctx context.Context, userID, pokemonID int) error
}

// FavoriteHandler handles bookmark requests of the token holder
type FavoriteHandler struct {
	BaseHandler
	favoriteService FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService FavoriteService, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		favoriteService: favoriteService,
	}
}

// RegisterRoutes registers all favorite handler routes
func (h *FavoriteHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/favorites", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Add)
		r.Delete("/{pokemonId}", h.Remove)
	})
}

// List handles GET /favorites
// @Summary My favorites
// @Tags favorites
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Favorite
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /favorites [get]
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	favorites, err := h.favoriteService.List(r.Context(), claims.ID)
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, favorites)
}

// Add handles POST /favorites
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.AddFavoriteRequest true "Pokemon to bookmark"
// @Success 201 {object} models.Favorite
// @Failure 400 {object} MessageResponse "Invalid request"
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 409 {object} MessageResponse "Already a favorite"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /favorites [post]
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	var req models.AddFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	favorite, err := h.favoriteService.Add(r.Context(), claims.ID, &req)
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, favorite)
}

// Remove handles DELETE /favorites/{pokemonId}
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Security ApiKeyAuth
// @Param pokemonId path int true "Pokedex number"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse "Invalid pokemonId"
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 404 {object} MessageResponse "Favorite not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /favorites/{pokemonId} [delete]
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	if err := h.favoriteService.Remove(r.Context(), claims.ID, intParam(r, "pokemonId")); err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, MessageResponse{Message: "favorite removed"})
}
