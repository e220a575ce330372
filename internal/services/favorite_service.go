package services

import (
	"context"
	"errors"
	"strings"

	"github.com/pokeroster/backend/internal/apperrors"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/repositories"
)

// FavoriteRepository is the interface that wraps methods for Favorite table data access
type FavoriteRepository interface {
	// Method ListByUser retrieves the favorites of a user, newest first.
	ListByUser(ctx context.Context, userID int) ([]models.Favorite, error)
	// Method Add bookmarks a Pokemon for a user.
	//
	// If the Pokemon is already bookmarked, an error wrapping repositories.ErrDuplicate is returned.
	Add(ctx context.Context, userID int, favorite *models.Favorite) error
	// Method Remove deletes a bookmark.
	//
	// If the bookmark does not exist, repositories.ErrNotFound is returned.
	Remove(ctx context.Context, userID, pokemonID int) error
}

// favoriteService implements FavoriteService
type favoriteService struct {
	repo FavoriteRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(repo FavoriteRepository) *favoriteService {
	return &favoriteService{repo: repo}
}

// List returns the caller's favorites
func (s *favoriteService) List(ctx context.Context, userID int) ([]models.Favorite, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	return favorites, nil
}

// Add bookmarks a Pokemon for the caller
func (s *favoriteService) Add(ctx context.Context, userID int, req *models.AddFavoriteRequest) (*models.Favorite, error) {
	favorite := &models.Favorite{
		PokemonID: req.PokemonID,
		NameKo:    strings.TrimSpace(req.NameKo),
		Image:     strings.TrimSpace(req.Image),
	}
	if favorite.PokemonID < 1 || favorite.NameKo == "" || favorite.Image == "" {
		return nil, apperrors.NewValidation("pokemonId, name_ko and image are required")
	}
	if longerThan(favorite.NameKo, maxNameLength) || longerThan(favorite.Image, maxImageLength) {
		return nil, apperrors.NewValidation("name_ko or image is too long")
	}

	if err := s.repo.Add(ctx, userID, favorite); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Wrap(ErrFavoriteExists, err)
		}
		return nil, apperrors.NewUnexpected(err)
	}
	return favorite, nil
}

// Remove deletes one of the caller's bookmarks
func (s *favoriteService) Remove(ctx context.Context, userID, pokemonID int) error {
	if pokemonID < 1 {
		return ErrInvalidPokemonID
	}

	err := s.repo.Remove(ctx, userID, pokemonID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrFavoriteNotFound
	}
	if err != nil {
		return apperrors.NewUnexpected(err)
	}
	return nil
}
