package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pokeroster/backend/internal/apperrors"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/repositories"
	"go.uber.org/zap"
)

// TeamRepository is the interface that wraps methods for Team table data access
type TeamRepository interface {
	// Method Create inserts a team and fills its ID and timestamps.
	Create(ctx context.Context, team *models.Team) error
	// Method ListByUser retrieves the teams of a user, newest first.
	ListByUser(ctx context.Context, userID int) ([]models.Team, error)
	// Method GetByIDForUser retrieves a team only when it belongs to "userID".
	//
	// If there is no such team, repositories.ErrNotFound will be returned together with "nil" value.
	GetByIDForUser(ctx context.Context, id, userID int) (*models.Team, error)
	// Method UpdateVisibility persists the IsPublic flag of a team.
	UpdateVisibility(ctx context.Context, team *models.Team) error
}

// teamService implements TeamService
type teamService struct {
	repo   TeamRepository
	logger *zap.Logger
}

// NewTeamService creates a new team service
func NewTeamService(repo TeamRepository, logger *zap.Logger) *teamService {
	return &teamService{
		repo:   repo,
		logger: logger,
	}
}

// Create saves a new team of 1 to 6 Pokemon for the caller
func (s *teamService) Create(ctx context.Context, userID int, req *models.CreateTeamRequest) (*models.Team, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(req.Pokemons) == 0 {
		return nil, apperrors.NewValidation("team name and pokemons are required")
	}
	if longerThan(name, maxNameLength) {
		return nil, apperrors.NewValidation("team name must be at most 100 characters")
	}
	if len(req.Pokemons) > models.MaxTeamSize {
		return nil, ErrTeamSizeOutOfBounds
	}

	pokemons := make([]models.TeamPokemon, 0, len(req.Pokemons))
	for i, p := range req.Pokemons {
		p.NameKo = strings.TrimSpace(p.NameKo)
		p.Image = strings.TrimSpace(p.Image)
		if p.PokemonID < 1 || p.NameKo == "" || p.Image == "" {
			return nil, apperrors.NewValidation(fmt.Sprintf("pokemons[%d]: pokemonId, name_ko and image are required", i))
		}
		if longerThan(p.NameKo, maxNameLength) || longerThan(p.Image, maxImageLength) {
			return nil, apperrors.NewValidation(fmt.Sprintf("pokemons[%d]: name_ko or image is too long", i))
		}
		pokemons = append(pokemons, p)
	}

	team := &models.Team{
		UserID:   userID,
		Name:     name,
		Pokemons: pokemons,
		IsPublic: req.IsPublic,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, apperrors.NewUnexpected(err)
	}

	s.logger.Info("team created", zap.Int("team_id", team.ID), zap.Int("user_id", userID))
	return team, nil
}

// List returns the caller's teams, newest first
func (s *teamService) List(ctx context.Context, userID int) ([]models.Team, error) {
	teams, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	return teams, nil
}

// SetVisibility sets the visibility of one of the caller's teams, or toggles it when isPublic is nil.
// Teams of other users are reported as not found.
func (s *teamService) SetVisibility(ctx context.Context, userID, teamID int, isPublic *bool) (*models.Team, error) {
	if teamID < 1 {
		return nil, ErrTeamNotFound
	}

	team, err := s.repo.GetByIDForUser(ctx, teamID, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}

	if isPublic != nil {
		team.IsPublic = *isPublic
	} else {
		team.IsPublic = !team.IsPublic
	}

	if err := s.repo.UpdateVisibility(ctx, team); err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	return team, nil
}
