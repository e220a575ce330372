package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

const summaryColumns = `pokemon_id, name_ko, name_en, image, types, favorite_count`

const pokemonColumns = `pokemon_id, name_ko, name_en, image, types, height, weight,
	base_experience, abilities, stats, favorite_count, created_at, updated_at`

// pokemonRepository implements PokemonRepository over the mirrored catalog
type pokemonRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPokemonRepository creates a new catalog repository
func NewPokemonRepository(db *sql.DB, logger *zap.Logger) *pokemonRepository {
	return &pokemonRepository{
		db:     db,
		logger: logger,
	}
}

// GetFeatured retrieves the first limit entries ordered by Pokedex number
func (r *pokemonRepository) GetFeatured(ctx context.Context, limit int) ([]models.PokemonSummary, error) {
	query := `SELECT ` + summaryColumns + ` FROM pokemons ORDER BY pokemon_id ASC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.logger.Error("failed to query featured pokemons", zap.Error(err))
		return nil, fmt.Errorf("failed to query featured pokemons: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// Suggest retrieves up to limit entries whose Korean or English name contains term
func (r *pokemonRepository) Suggest(ctx context.Context, term string, limit int) ([]models.PokemonSuggestion, error) {
	query := `
		SELECT pokemon_id, name_ko, name_en
		FROM pokemons
		WHERE name_ko LIKE ? OR name_en LIKE ?
		ORDER BY pokemon_id ASC
		LIMIT ?
	`

	pattern := likePattern(term)
	rows, err := r.db.QueryContext(ctx, query, pattern, pattern, limit)
	if err != nil {
		r.logger.Error("failed to query suggestions", zap.Error(err))
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	suggestions := make([]models.PokemonSuggestion, 0)
	for rows.Next() {
		var s models.PokemonSuggestion
		if err := rows.Scan(&s.PokemonID, &s.NameKo, &s.NameEn); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suggestions: %w", err)
	}

	return suggestions, nil
}

// buildCatalogWhere builds the WHERE clause and args for a catalog filter
func buildCatalogWhere(filter models.CatalogFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		conditions = append(conditions, "(name_ko LIKE ? OR name_en LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if filter.Type != "" {
		conditions = append(conditions, "JSON_CONTAINS(types, JSON_QUOTE(?))")
		args = append(args, strings.ToLower(filter.Type))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List retrieves a page of the catalog matching filter and the total number of matches
func (r *pokemonRepository) List(ctx context.Context, filter models.CatalogFilter, offset, limit int) ([]models.PokemonSummary, int, error) {
	where, args := buildCatalogWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM pokemons` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("failed to count pokemons", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count pokemons: %w", err)
	}

	query := `SELECT ` + summaryColumns + ` FROM pokemons` + where + ` ORDER BY pokemon_id ASC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		r.logger.Error("failed to list pokemons", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list pokemons: %w", err)
	}
	defer rows.Close()

	pokemons, err := scanSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return pokemons, total, nil
}

// GetByPokemonID retrieves a single catalog entry
func (r *pokemonRepository) GetByPokemonID(ctx context.Context, pokemonID int) (*models.Pokemon, error) {
	query := `SELECT ` + pokemonColumns + ` FROM pokemons WHERE pokemon_id = ?`

	var (
		p                       models.Pokemon
		types, abilities, stats []byte
	)
	err := r.db.QueryRowContext(ctx, query, pokemonID).Scan(
		&p.PokemonID,
		&p.NameKo,
		&p.NameEn,
		&p.Image,
		&types,
		&p.Height,
		&p.Weight,
		&p.BaseExperience,
		&abilities,
		&stats,
		&p.FavoriteCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get pokemon", zap.Error(err), zap.Int("pokemon_id", pokemonID))
		return nil, fmt.Errorf("failed to get pokemon: %w", err)
	}

	if err := decodeJSONColumn(types, &p.Types); err != nil {
		return nil, fmt.Errorf("failed to decode types: %w", err)
	}
	if err := decodeJSONColumn(abilities, &p.Abilities); err != nil {
		return nil, fmt.Errorf("failed to decode abilities: %w", err)
	}
	if len(stats) > 0 && string(stats) != "null" {
		p.Stats = &models.Stats{}
		if err := json.Unmarshal(stats, p.Stats); err != nil {
			return nil, fmt.Errorf("failed to decode stats: %w", err)
		}
	}
	if p.Types == nil {
		p.Types = []string{}
	}

	return &p, nil
}

// ExistsByPokemonID checks if the catalog already holds an entry
func (r *pokemonRepository) ExistsByPokemonID(ctx context.Context, pokemonID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM pokemons WHERE pokemon_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, pokemonID).Scan(&exists); err != nil {
		r.logger.Error("failed to check pokemon existence", zap.Error(err))
		return false, fmt.Errorf("failed to check pokemon existence: %w", err)
	}
	return exists, nil
}

// Create inserts a catalog entry. A unique key violation is reported as ErrDuplicate.
func (r *pokemonRepository) Create(ctx context.Context, pokemon *models.Pokemon) error {
	if err := insertPokemon(ctx, r.db, pokemon); err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		r.logger.Error("failed to create pokemon", zap.Error(err))
		return fmt.Errorf("failed to create pokemon: %w", err)
	}
	return nil
}

// Delete removes a catalog entry
func (r *pokemonRepository) Delete(ctx context.Context, pokemonID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pokemons WHERE pokemon_id = ?`, pokemonID)
	if err != nil {
		r.logger.Error("failed to delete pokemon", zap.Error(err))
		return fmt.Errorf("failed to delete pokemon: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll empties the catalog and inserts pokemons in one transaction
func (r *pokemonRepository) ReplaceAll(ctx context.Context, pokemons []*models.Pokemon) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pokemons`); err != nil {
		r.logger.Error("failed to clear catalog", zap.Error(err))
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	for _, p := range pokemons {
		if err := insertPokemon(ctx, tx, p); err != nil {
			r.logger.Error("failed to insert pokemon", zap.Error(err), zap.Int("pokemon_id", p.PokemonID))
			return fmt.Errorf("failed to insert pokemon %d: %w", p.PokemonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// execer is implemented by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertPokemon(ctx context.Context, db execer, p *models.Pokemon) error {
	query := `
		INSERT INTO pokemons (pokemon_id, name_ko, name_en, image, types, height, weight,
			base_experience, abilities, stats, favorite_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	types, err := encodeJSONColumn(nonNilStrings(p.Types))
	if err != nil {
		return err
	}
	abilities, err := encodeJSONColumn(nonNilStrings(p.Abilities))
	if err != nil {
		return err
	}
	var stats any
	if p.Stats != nil {
		encoded, err := encodeJSONColumn(p.Stats)
		if err != nil {
			return err
		}
		stats = encoded
	}

	_, err = db.ExecContext(ctx, query,
		p.PokemonID, p.NameKo, p.NameEn, p.Image, types, p.Height, p.Weight,
		p.BaseExperience, abilities, stats, p.FavoriteCount)
	return err
}

func scanSummaries(rows *sql.Rows) ([]models.PokemonSummary, error) {
	pokemons := make([]models.PokemonSummary, 0)
	for rows.Next() {
		var (
			p     models.PokemonSummary
			types []byte
		)
		if err := rows.Scan(&p.PokemonID, &p.NameKo, &p.NameEn, &p.Image, &types, &p.FavoriteCount); err != nil {
			return nil, fmt.Errorf("failed to scan pokemon: %w", err)
		}
		if err := decodeJSONColumn(types, &p.Types); err != nil {
			return nil, fmt.Errorf("failed to decode types: %w", err)
		}
		if p.Types == nil {
			p.Types = []string{}
		}
		pokemons = append(pokemons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pokemons: %w", err)
	}
	return pokemons, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func encodeJSONColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode json column: %w", err)
	}
	return string(b), nil
}

// decodeJSONColumn unmarshals a JSON column, leaving out untouched for NULL
func decodeJSONColumn(raw []byte, out any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, out)
}
