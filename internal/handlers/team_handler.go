package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pokeroster/backend/internal/auth/middleware"
	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

// TeamService is the interface that wraps methods for a user's teams.
type TeamService interface {
	// Method Create saves a team of 1 to 6 Pokemon for "userID".
	Create(ctx context.Context, userID int, req *models.CreateTeamRequest) (*models.Team, error)
	// Method List returns the teams of "userID", newest first.
	List(ctx context.Context, userID int) ([]models.Team, error)
	// Method SetVisibility sets the visibility of a team of "userID", toggling it when "isPublic" is nil.
	//
	// Teams of other users return services.ErrTeamNotFound.
	SetVisibility(ctx context.Context, userID, teamID int, isPublic *bool) (*models.Team, error)
}

// TeamResponse wraps a single team with a confirmation message
type TeamResponse struct {
	Message string       `json:"message"`
	Team    *models.Team `json:"team"`
}

// TeamsResponse wraps the caller's teams
type TeamsResponse struct {
	Teams []models.Team `json:"teams"`
}

// TeamHandler handles team requests of the token holder
type TeamHandler struct {
	BaseHandler
	teamService TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService TeamService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{
		BaseHandler: BaseHandler{Logger: logger},
		teamService: teamService,
	}
}

// RegisterRoutes registers all team handler routes
func (h *TeamHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/teams", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Patch("/{id}/public", h.SetVisibility)
	})
}

// Create handles POST /teams
// @Summary Save a team
// @Tags teams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateTeamRequest true "Team"
// @Success 201 {object} TeamResponse
// @Failure 400 {object} MessageResponse "Invalid request"
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	var req models.CreateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := h.teamService.Create(r.Context(), claims.ID, &req)
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, TeamResponse{Message: "team saved", Team: team})
}

// List handles GET /teams
// @Summary My teams
// @Tags teams
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} TeamsResponse
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	teams, err := h.teamService.List(r.Context(), claims.ID)
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, TeamsResponse{Teams: teams})
}

// visibilityBody keeps isPublic raw so that anything but a JSON boolean toggles
type visibilityBody struct {
	IsPublic json.RawMessage `json:"isPublic"`
}

func (b visibilityBody) isPublic() *bool {
	var v bool
	switch string(b.IsPublic) {
	case "true":
		v = true
	case "false":
	default:
		return nil
	}
	return &v
}

// SetVisibility handles PATCH /teams/{id}/public
// @Summary Publish or hide a team
// @Description Sets isPublic when given, toggles it when the body is empty or omits it
// @Tags teams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Team ID"
// @Param request body models.UpdateTeamVisibilityRequest false "Visibility"
// @Success 200 {object} TeamResponse
// @Failure 400 {object} MessageResponse "Invalid request"
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 404 {object} MessageResponse "Team not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /teams/{id}/public [patch]
func (h *TeamHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	var req visibilityBody
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := h.teamService.SetVisibility(r.Context(), claims.ID, intParam(r, "id"), req.isPublic())
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}

	message := "team is now private"
	if team.IsPublic {
		message = "team is now public"
	}
	h.RespondJSON(w, http.StatusOK, TeamResponse{Message: message, Team: team})
}
