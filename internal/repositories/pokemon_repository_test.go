package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/pokeroster/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var summaryRowColumns = []string{"pokemon_id", "name_ko", "name_en", "image", "types", "favorite_count"}

// setupPokemonTestRepository creates a catalog repository with a mock database
func setupPokemonTestRepository(t *testing.T) (*pokemonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewPokemonRepository(db, zap.NewNop())

	return repo, mock, func() { db.Close() }
}

func TestPokemonRepository_GetFeatured(t *testing.T) {
	repo, mock, cleanup := setupPokemonTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows(summaryRowColumns).
		AddRow(1, "이상해씨", "bulbasaur", "img/1.png", `["grass","poison"]`, 3).
		AddRow(2, "이상해풀", "ivysaur", "img/2.png", `["grass","poison"]`, 0).
		AddRow(3, "이상해꽃", "venusaur", "img/3.png", nil, 0)
	mock.ExpectQuery(`SELECT .* FROM pokemons ORDER BY pokemon_id ASC LIMIT \?`).
		WithArgs(3).
		WillReturnRows(rows)

	featured, err := repo.GetFeatured(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, models.PokemonSummary{
		PokemonID:     1,
		NameKo:        "이상해씨",
		NameEn:        "bulbasaur",
		Image:         "img/1.png",
		Types:         []string{"grass", "poison"},
		FavoriteCount: 3,
	}, featured[0])
	assert.Equal(t, []string{}, featured[2].Types)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPokemonRepository_Suggest(t *testing.T) {
	repo, mock, cleanup := setupPokemonTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT pokemon_id, name_ko, name_en FROM pokemons WHERE name_ko LIKE \? OR name_en LIKE \?`).
		WithArgs("%피카%", "%피카%", 10).
		WillReturnRows(sqlmock.NewRows([]string{"pokemon_id", "name_ko", "name_en"}).
			AddRow(25, "피카츄", "pikachu"))

	suggestions, err := repo.Suggest(context.Background(), "피카", 10)

	require.NoError(t, err)
	assert.Equal(t, []models.PokemonSuggestion{{PokemonID: 25, NameKo: "피카츄", NameEn: "pikachu"}}, suggestions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPokemonRepository_List(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.CatalogFilter
		setupMock func(sqlmock.Sqlmock)
		expected  int
	}{
		{
			name:   "no filter",
			filter: models.CatalogFilter{},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pokemons$`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(151))
				mock.ExpectQuery(`SELECT .* FROM pokemons ORDER BY pokemon_id ASC LIMIT \? OFFSET \?`).
					WithArgs(2, 20).
					WillReturnRows(sqlmock.NewRows(summaryRowColumns).
						AddRow(21, "깨비참", "spearow", "img/21.png", `["normal","flying"]`, 0).
						AddRow(22, "깨비드릴조", "fearow", "img/22.png", `["normal","flying"]`, 0))
			},
			expected: 151,
		},
		{
			name:   "search and type",
			filter: models.CatalogFilter{Search: "pika", Type: "Electric"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM pokemons WHERE \(name_ko LIKE \? OR name_en LIKE \?\) AND JSON_CONTAINS\(types, JSON_QUOTE\(\?\)\)`).
					WithArgs("%pika%", "%pika%", "electric").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(`SELECT .* FROM pokemons WHERE .* ORDER BY pokemon_id ASC LIMIT \? OFFSET \?`).
					WithArgs("%pika%", "%pika%", "electric", 2, 20).
					WillReturnRows(sqlmock.NewRows(summaryRowColumns).
						AddRow(25, "피카츄", "pikachu", "img/25.png", `["electric"]`, 9))
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPokemonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			pokemons, total, err := repo.List(context.Background(), tt.filter, 20, 2)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, total)
			assert.NotEmpty(t, pokemons)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPokemonRepository_List_CountError(t *testing.T) {
	repo, mock, cleanup := setupPokemonTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("database error"))

	pokemons, total, err := repo.List(context.Background(), models.CatalogFilter{}, 0, 20)

	assert.Error(t, err)
	assert.Nil(t, pokemons)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPokemonRepository_GetByPokemonID(t *testing.T) {
	now := time.Now()
	columns := []string{"pokemon_id", "name_ko", "name_en", "image", "types", "height", "weight",
		"base_experience", "abilities", "stats", "favorite_count", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := setupPokemonTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .* FROM pokemons WHERE pokemon_id = \?`).
			WithArgs(25).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				25, "피카츄", "pikachu", "img/25.png", `["electric"]`, 4, 60, 112,
				`["static","lightning-rod"]`,
				`{"hp":35,"attack":55,"defense":40,"special_attack":50,"special_defense":50,"speed":90}`,
				9, now, now))

		pokemon, err := repo.GetByPokemonID(context.Background(), 25)

		require.NoError(t, err)
		assert.Equal(t, "피카츄", pokemon.NameKo)
		assert.Equal(t, []string{"electric"}, pokemon.Types)
		assert.Equal(t, []string{"static", "lightning-rod"}, pokemon.Abilities)
		require.NotNil(t, pokemon.Stats)
		assert.Equal(t, 90, pokemon.Stats.Speed)
		assert.Equal(t, 9, pokemon.FavoriteCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("manually added entry without stats", func(t *testing.T) {
		repo, mock, cleanup := setupPokemonTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .* FROM pokemons WHERE pokemon_id = \?`).
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				999, "테스트몬", "", "img/999.png", `[]`, 0, 0, 0, `[]`, nil, 0, now, now))

		pokemon, err := repo.GetByPokemonID(context.Background(), 999)

		require.NoError(t, err)
		assert.Nil(t, pokemon.Stats)
		assert.Equal(t, []string{}, pokemon.Types)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupPokemonTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .* FROM pokemons WHERE pokemon_id = \?`).
			WithArgs(404).
			WillReturnError(sql.ErrNoRows)

		pokemon, err := repo.GetByPokemonID(context.Background(), 404)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, pokemon)
	})
}

func TestPokemonRepository_Create(t *testing.T) {
	pokemon := &models.Pokemon{
		PokemonID: 25,
		NameKo:    "피카츄",
		NameEn:    "pikachu",
		Image:     "img/25.png",
		Types:     []string{"electric"},
		Height:    4,
		Weight:    60,
	}

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupPokemonTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO pokemons`).
			WithArgs(25, "피카츄", "pikachu", "img/25.png", `["electric"]`, 4, 60, 0, `[]`, nil, 0).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.Create(context.Background(), pokemon))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate", func(t *testing.T) {
		repo, mock, cleanup := setupPokemonTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`INSERT INTO pokemons`).
			WillReturnError(&mysql.MySQLError{Number: 1062})

		assert.ErrorIs(t, repo.Create(context.Background(), pokemon), ErrDuplicate)
	})
}

func TestPokemonRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		result        sql.Result
		expectedError error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), expectedError: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPokemonTestRepository(t)
			defer cleanup()

			mock.ExpectExec(`DELETE FROM pokemons WHERE pokemon_id = \?`).
				WithArgs(25).
				WillReturnResult(tt.result)

			err := repo.Delete(context.Background(), 25)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPokemonRepository_ReplaceAll(t *testing.T) {
	pokemons := []*models.Pokemon{
		{PokemonID: 1, NameKo: "이상해씨", NameEn: "bulbasaur", Types: []string{"grass"}, Stats: &models.Stats{HP: 45}},
		{PokemonID: 2, NameKo: "이상해풀", NameEn: "ivysaur", Types: []string{"grass"}, Stats: &models.Stats{HP: 60}},
	}

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupPokemonTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM pokemons`).WillReturnResult(sqlmock.NewResult(0, 151))
		mock.ExpectExec(`INSERT INTO pokemons`).
			WithArgs(1, "이상해씨", "bulbasaur", "", `["grass"]`, 0, 0, 0, `[]`,
				`{"hp":45,"attack":0,"defense":0,"special_attack":0,"special_defense":0,"speed":0}`, 0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO pokemons`).WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.ReplaceAll(context.Background(), pokemons))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock, cleanup := setupPokemonTestRepository(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM pokemons`).WillReturnResult(sqlmock.NewResult(0, 151))
		mock.ExpectExec(`INSERT INTO pokemons`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO pokemons`).WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := repo.ReplaceAll(context.Background(), pokemons)

		assert.ErrorContains(t, err, "failed to insert pokemon 2")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
