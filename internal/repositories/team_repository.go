package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

const teamColumns = `id, user_id, name, pokemons, is_public, created_at, updated_at`

// teamRepository implements TeamRepository
type teamRepository struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *sql.DB, logger *zap.Logger) *teamRepository {
	return &teamRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// Create inserts a team and fills its ID and timestamps
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (user_id, name, pokemons, is_public, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	pokemons, err := encodeJSONColumn(team.Pokemons)
	if err != nil {
		return err
	}

	now := r.now()
	result, err := r.db.ExecContext(ctx, query, team.UserID, team.Name, pokemons, team.IsPublic, now, now)
	if err != nil {
		r.logger.Error("failed to create team", zap.Error(err))
		return fmt.Errorf("failed to create team: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	team.ID = int(id)
	team.CreatedAt = now
	team.UpdatedAt = now
	return nil
}

// ListByUser retrieves the teams of a user, newest first
func (r *teamRepository) ListByUser(ctx context.Context, userID int) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query teams", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}

	return teams, nil
}

// GetByIDForUser retrieves a team only when it belongs to userID
func (r *teamRepository) GetByIDForUser(ctx context.Context, id, userID int) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = ? AND user_id = ?`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get team", zap.Error(err), zap.Int("team_id", id))
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// UpdateVisibility persists is_public of a team; ownership is part of the WHERE clause
func (r *teamRepository) UpdateVisibility(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET is_public = ?, updated_at = ? WHERE id = ? AND user_id = ?`

	now := r.now()
	if _, err := r.db.ExecContext(ctx, query, team.IsPublic, now, team.ID, team.UserID); err != nil {
		r.logger.Error("failed to update team visibility", zap.Error(err), zap.Int("team_id", team.ID))
		return fmt.Errorf("failed to update team visibility: %w", err)
	}

	team.UpdatedAt = now
	return nil
}

// rowScanner is implemented by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var (
		team     models.Team
		pokemons []byte
	)
	if err := row.Scan(
		&team.ID,
		&team.UserID,
		&team.Name,
		&pokemons,
		&team.IsPublic,
		&team.CreatedAt,
		&team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(pokemons, &team.Pokemons); err != nil {
		return nil, fmt.Errorf("failed to decode team pokemons: %w", err)
	}
	if team.Pokemons == nil {
		team.Pokemons = []models.TeamPokemon{}
	}
	return &team, nil
}
