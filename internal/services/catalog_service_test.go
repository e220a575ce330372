package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/pokeroster/backend/internal/apperrors"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogService_Featured(t *testing.T) {
	repo := &mockPokemonRepository{summaries: []models.PokemonSummary{{PokemonID: 1}, {PokemonID: 2}, {PokemonID: 3}}}
	svc := NewCatalogService(repo, zap.NewNop())

	featured, err := svc.Featured(context.Background())

	require.NoError(t, err)
	assert.Len(t, featured, 3)
	assert.Equal(t, 3, repo.lastLimit)
}

func TestCatalogService_Suggestions(t *testing.T) {
	t.Run("blank search skips the store", func(t *testing.T) {
		repo := &mockPokemonRepository{err: errors.New("must not be called")}
		svc := NewCatalogService(repo, zap.NewNop())

		suggestions, err := svc.Suggestions(context.Background(), "   ")

		require.NoError(t, err)
		assert.NotNil(t, suggestions)
		assert.Empty(t, suggestions)
	})

	t.Run("search", func(t *testing.T) {
		repo := &mockPokemonRepository{suggestions: []models.PokemonSuggestion{{PokemonID: 25, NameKo: "피카츄", NameEn: "pikachu"}}}
		svc := NewCatalogService(repo, zap.NewNop())

		suggestions, err := svc.Suggestions(context.Background(), " 피카 ")

		require.NoError(t, err)
		assert.Len(t, suggestions, 1)
		assert.Equal(t, "피카", repo.lastTerm)
		assert.Equal(t, 10, repo.lastLimit)
	})
}

func TestCatalogService_List(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		total          int
		expectedOffset int
		expectedLimit  int
		expectedPages  int
	}{
		{name: "first page", page: 1, perPage: 20, total: 151, expectedOffset: 0, expectedLimit: 20, expectedPages: 8},
		{name: "third page", page: 3, perPage: 10, total: 30, expectedOffset: 20, expectedLimit: 10, expectedPages: 3},
		{name: "defaults", page: 0, perPage: 0, total: 0, expectedOffset: 0, expectedLimit: 20, expectedPages: 0},
		{name: "huge page is clamped", page: math.MaxInt, perPage: 20, total: 151, expectedOffset: (MaxPage - 1) * 20, expectedLimit: 20, expectedPages: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPokemonRepository{summaries: []models.PokemonSummary{}, total: tt.total}
			svc := NewCatalogService(repo, zap.NewNop())

			page, err := svc.List(context.Background(), models.CatalogFilter{Search: " pika ", Type: "Electric"}, tt.page, tt.perPage)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, repo.lastOffset)
			assert.Equal(t, tt.expectedLimit, repo.lastLimit)
			assert.Equal(t, models.CatalogFilter{Search: "pika", Type: "electric"}, repo.lastFilter)
			assert.Equal(t, tt.total, page.TotalPokemons)
			assert.Equal(t, tt.expectedPages, page.TotalPages)
			assert.Equal(t, tt.expectedLimit, page.PerPage)
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             int
		repo           *mockPokemonRepository
		expectedStatus int
	}{
		{name: "found", id: 25, repo: &mockPokemonRepository{pokemon: &models.Pokemon{PokemonID: 25}}},
		{name: "invalid id", id: -1, repo: &mockPokemonRepository{}, expectedStatus: 400},
		{name: "missing", id: 25, repo: &mockPokemonRepository{err: repositories.ErrNotFound}, expectedStatus: 404},
		{name: "store failure", id: 25, repo: &mockPokemonRepository{err: errors.New("boom")}, expectedStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(tt.repo, zap.NewNop())

			pokemon, err := svc.Get(context.Background(), tt.id)

			if tt.expectedStatus != 0 {
				assert.Nil(t, pokemon)
				assert.Equal(t, tt.expectedStatus, apperrors.HTTPStatus(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 25, pokemon.PokemonID)
		})
	}
}

func TestCatalogService_Create(t *testing.T) {
	valid := func() *models.CreatePokemonRequest {
		return &models.CreatePokemonRequest{
			PokemonID: 25,
			NameKo:    "피카츄",
			NameEn:    "pikachu",
			Image:     "img/25.png",
			Types:     []string{" Electric ", ""},
			Height:    4,
			Weight:    60,
		}
	}

	tests := []struct {
		name           string
		req            *models.CreatePokemonRequest
		repo           *mockPokemonRepository
		expectedStatus int
	}{
		{name: "created", req: valid(), repo: &mockPokemonRepository{}},
		{name: "missing name_ko", req: &models.CreatePokemonRequest{PokemonID: 25, Image: "x"}, repo: &mockPokemonRepository{}, expectedStatus: 400},
		{name: "missing pokemonId", req: &models.CreatePokemonRequest{NameKo: "x", Image: "x"}, repo: &mockPokemonRepository{}, expectedStatus: 400},
		{name: "name_en longer than the column", req: &models.CreatePokemonRequest{PokemonID: 25, NameKo: "x", NameEn: strings.Repeat("p", 101), Image: "x"}, repo: &mockPokemonRepository{}, expectedStatus: 400},
		{name: "image longer than the column", req: &models.CreatePokemonRequest{PokemonID: 25, NameKo: "x", Image: strings.Repeat("i", 501)}, repo: &mockPokemonRepository{}, expectedStatus: 400},
		{name: "already exists", req: valid(), repo: &mockPokemonRepository{exists: true}, expectedStatus: 409},
		{
			name:           "duplicate key race",
			req:            valid(),
			repo:           &mockPokemonRepository{createErr: fmt.Errorf("%w: 1062", repositories.ErrDuplicate)},
			expectedStatus: 409,
		},
		{name: "store failure", req: valid(), repo: &mockPokemonRepository{createErr: errors.New("boom")}, expectedStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(tt.repo, zap.NewNop())

			pokemon, err := svc.Create(context.Background(), tt.req)

			if tt.expectedStatus != 0 {
				assert.Nil(t, pokemon)
				assert.Equal(t, tt.expectedStatus, apperrors.HTTPStatus(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"electric"}, tt.repo.created.Types)
			assert.Equal(t, 25, pokemon.PokemonID)
		})
	}
}

func TestCatalogService_Delete(t *testing.T) {
	tests := []struct {
		name           string
		id             int
		repo           *mockPokemonRepository
		expectedStatus int
	}{
		{name: "deleted", id: 25, repo: &mockPokemonRepository{}},
		{name: "invalid id", id: 0, repo: &mockPokemonRepository{}, expectedStatus: 400},
		{name: "missing", id: 25, repo: &mockPokemonRepository{deleteErr: repositories.ErrNotFound}, expectedStatus: 404},
		{name: "store failure", id: 25, repo: &mockPokemonRepository{deleteErr: errors.New("boom")}, expectedStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(tt.repo, zap.NewNop())

			err := svc.Delete(context.Background(), tt.id)

			if tt.expectedStatus != 0 {
				assert.Equal(t, tt.expectedStatus, apperrors.HTTPStatus(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCatalogSyncer_Sync(t *testing.T) {
	t.Run("replaces catalog in order", func(t *testing.T) {
		client := &mockPokeAPIClient{}
		repo := &mockPokemonRepository{}
		syncer := NewCatalogSyncer(client, repo, zap.NewNop())

		count, err := syncer.Sync(context.Background(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 10, count)
		assert.Equal(t, 10, client.seedCalls)
		require.Len(t, repo.replaced, 10)
		for i, p := range repo.replaced {
			assert.Equal(t, i+1, p.PokemonID)
		}
	})

	t.Run("upstream failure leaves catalog untouched", func(t *testing.T) {
		client := &mockPokeAPIClient{failID: 5}
		repo := &mockPokemonRepository{}
		syncer := NewCatalogSyncer(client, repo, zap.NewNop())

		count, err := syncer.Sync(context.Background(), 1, 10)

		assert.ErrorContains(t, err, "failed to fetch pokemon 5")
		assert.Equal(t, 0, count)
		assert.Nil(t, repo.replaced)
	})

	t.Run("invalid range", func(t *testing.T) {
		syncer := NewCatalogSyncer(&mockPokeAPIClient{}, &mockPokemonRepository{}, zap.NewNop())

		_, err := syncer.Sync(context.Background(), 10, 1)

		assert.Error(t, err)
	})
}
