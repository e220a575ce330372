package services

import "github.com/pokeroster/backend/internal/apperrors"

// Client-facing failures shared by the services
var (
	ErrEmailRegistered     = apperrors.NewDuplicate("email already registered")
	ErrInvalidCredentials  = apperrors.NewAuthentication("email or password incorrect")
	ErrUnsupportedPicture  = apperrors.NewValidation("profile picture must be a jpg, jpeg, png, gif or webp image")
	ErrInvalidPokemonID    = apperrors.NewValidation("invalid pokemonId")
	ErrInvalidGeneration   = apperrors.NewValidation("generation must be between 1 and 9")
	ErrPokemonExists       = apperrors.NewConflict("pokemon already exists")
	ErrFavoriteExists      = apperrors.NewConflict("pokemon already in favorites")
	ErrUserNotFound        = apperrors.NewNotFound("user")
	ErrPokemonNotFound     = apperrors.NewNotFound("pokemon")
	ErrFavoriteNotFound    = apperrors.NewNotFound("favorite")
	ErrTeamNotFound        = apperrors.NewNotFound("team")
	ErrTeamSizeOutOfBounds = apperrors.NewValidation("a team needs between 1 and 6 pokemons")
)
