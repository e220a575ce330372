package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

// favoriteRepository implements FavoriteRepository
type favoriteRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *sql.DB, logger *zap.Logger) *favoriteRepository {
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser retrieves the favorites of a user, newest first
func (r *favoriteRepository) ListByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	query := `
		SELECT pokemon_id, name_ko, image, created_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY created_at DESC, pokemon_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query favorites", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.PokemonID, &f.NameKo, &f.Image, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return favorites, nil
}

// Add bookmarks a Pokemon for a user and bumps its catalog favorite count in one transaction.
// Bookmarking the same Pokemon twice is reported as ErrDuplicate.
func (r *favoriteRepository) Add(ctx context.Context, userID int, favorite *models.Favorite) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `INSERT INTO favorites (user_id, pokemon_id, name_ko, image) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insert, userID, favorite.PokemonID, favorite.NameKo, favorite.Image); err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		r.logger.Error("failed to insert favorite", zap.Error(err))
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	// Pokemon outside the mirrored catalog have no counter to bump
	update := `UPDATE pokemons SET favorite_count = favorite_count + 1 WHERE pokemon_id = ?`
	if _, err := tx.ExecContext(ctx, update, favorite.PokemonID); err != nil {
		r.logger.Error("failed to increment favorite count", zap.Error(err))
		return fmt.Errorf("failed to increment favorite count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Remove deletes a bookmark and decrements the catalog favorite count in one transaction
func (r *favoriteRepository) Remove(ctx context.Context, userID, pokemonID int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND pokemon_id = ?`, userID, pokemonID)
	if err != nil {
		r.logger.Error("failed to delete favorite", zap.Error(err))
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	update := `UPDATE pokemons SET favorite_count = GREATEST(favorite_count - 1, 0) WHERE pokemon_id = ?`
	if _, err := tx.ExecContext(ctx, update, pokemonID); err != nil {
		r.logger.Error("failed to decrement favorite count", zap.Error(err))
		return fmt.Errorf("failed to decrement favorite count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
