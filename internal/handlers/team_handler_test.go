package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTeamRouter(svc TeamService) chi.Router {
	h := NewTeamHandler(svc, zap.NewNop())
	return newRouter(func(r chi.Router) {
		h.RegisterRoutes(r, withClaims(ashClaims))
	})
}

func TestTeamHandler_Create(t *testing.T) {
	body := `{"name":"Kanto","pokemons":[{"pokemonId":25,"name_ko":"피카츄","image":"https://img/25.png"}],"isPublic":true}`

	t.Run("saved", func(t *testing.T) {
		svc := &mockTeamService{team: &models.Team{ID: 1, UserID: ashClaims.ID, Name: "Kanto", IsPublic: true}}

		w := httptest.NewRecorder()
		newTeamRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/teams", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, svc.lastCreate)
		assert.Equal(t, "Kanto", svc.lastCreate.Name)
		assert.Len(t, svc.lastCreate.Pokemons, 1)
		assert.True(t, svc.lastCreate.IsPublic)

		resp := decodeBody[TeamResponse](t, w)
		assert.Equal(t, "team saved", resp.Message)
		assert.Equal(t, "Kanto", resp.Team.Name)
	})

	t.Run("too many pokemons", func(t *testing.T) {
		svc := &mockTeamService{err: services.ErrTeamSizeOutOfBounds}

		w := httptest.NewRecorder()
		newTeamRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/teams", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "a team needs between 1 and 6 pokemons", decodeBody[MessageResponse](t, w).Message)
	})
}

func TestTeamHandler_List(t *testing.T) {
	svc := &mockTeamService{teams: []models.Team{{ID: 2, Name: "Johto"}, {ID: 1, Name: "Kanto"}}}

	w := httptest.NewRecorder()
	newTeamRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/teams", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ashClaims.ID, svc.lastUserID)
	resp := decodeBody[TeamsResponse](t, w)
	require.Len(t, resp.Teams, 2)
	assert.Equal(t, "Johto", resp.Teams[0].Name)
}

func TestTeamHandler_SetVisibility(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		body             string
		svc              *mockTeamService
		expectedStatus   int
		expectedIsPublic *bool
		expectedMessage  string
	}{
		{
			name:             "explicit public",
			path:             "/api/teams/3/public",
			body:             `{"isPublic":true}`,
			svc:              &mockTeamService{team: &models.Team{ID: 3, IsPublic: true}},
			expectedStatus:   http.StatusOK,
			expectedIsPublic: boolPtr(true),
			expectedMessage:  "team is now public",
		},
		{
			name:             "explicit private",
			path:             "/api/teams/3/public",
			body:             `{"isPublic":false}`,
			svc:              &mockTeamService{team: &models.Team{ID: 3}},
			expectedStatus:   http.StatusOK,
			expectedIsPublic: boolPtr(false),
			expectedMessage:  "team is now private",
		},
		{
			name:            "empty body toggles",
			path:            "/api/teams/3/public",
			body:            ``,
			svc:             &mockTeamService{team: &models.Team{ID: 3, IsPublic: true}},
			expectedStatus:  http.StatusOK,
			expectedMessage: "team is now public",
		},
		{
			name:            "empty object toggles",
			path:            "/api/teams/3/public",
			body:            `{}`,
			svc:             &mockTeamService{team: &models.Team{ID: 3}},
			expectedStatus:  http.StatusOK,
			expectedMessage: "team is now private",
		},
		{
			name:             "someone else's team",
			path:             "/api/teams/3/public",
			body:             `{"isPublic":true}`,
			svc:              &mockTeamService{err: services.ErrTeamNotFound},
			expectedStatus:   http.StatusNotFound,
			expectedIsPublic: boolPtr(true),
			expectedMessage:  "team not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTeamRouter(tt.svc).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, 3, tt.svc.lastTeamID)
			assert.Equal(t, ashClaims.ID, tt.svc.lastUserID)
			assert.Equal(t, tt.expectedIsPublic, tt.svc.lastIsPublic)
			assert.Equal(t, tt.expectedMessage, decodeBody[MessageResponse](t, w).Message)
		})
	}
}

func TestTeamHandler_SetVisibilityNonBooleanToggles(t *testing.T) {
	for _, body := range []string{`{"isPublic":"yes"}`, `{"isPublic":1}`, `{"isPublic":null}`, `{"isPublic":{}}`} {
		t.Run(body, func(t *testing.T) {
			svc := &mockTeamService{team: &models.Team{ID: 3, IsPublic: true}}

			w := httptest.NewRecorder()
			newTeamRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/teams/3/public", strings.NewReader(body)))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, svc.visibilitySet)
			assert.Nil(t, svc.lastIsPublic)
		})
	}
}

func TestTeamHandler_SetVisibilityMalformedBody(t *testing.T) {
	svc := &mockTeamService{}

	w := httptest.NewRecorder()
	newTeamRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/teams/3/public", strings.NewReader(`{"isPublic":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.visibilitySet)
}

func boolPtr(b bool) *bool {
	return &b
}
