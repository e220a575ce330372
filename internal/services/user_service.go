package services

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/pokeroster/backend/internal/apperrors"
	"github.com/pokeroster/backend/internal/auth/service"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/repositories"
	"github.com/pokeroster/backend/internal/storage"
	"go.uber.org/zap"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user. On success user.ID is filled.
	//
	// If the email is already taken, an error wrapping repositories.ErrDuplicate is returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by normalized email.
	//
	// "email" parameter is used to retrieve a user by email.
	//
	// If user with such email does not exist, repositories.ErrNotFound will be returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// "id" parameter is used to retrieve a user by ID.
	//
	// If user with such ID does not exist, repositories.ErrNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// "email" parameter is used to check if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileStorage is the interface that wraps profile picture file operations
type ProfileStorage interface {
	// Method Save writes the picture under a generated name and returns that name.
	//
	// "originalName" parameter is only used for its extension.
	//
	// If the extension is not an accepted image type, storage.ErrUnsupportedExtension is returned.
	Save(ctx context.Context, originalName string, src io.Reader) (string, error)
	// Method Delete removes a stored picture.
	Delete(name string) error
}

// TokenIssuer signs identity snapshots into tokens
type TokenIssuer interface {
	Issue(claims models.TokenClaims) (string, error)
}

// ProfileUpload is an uploaded profile picture
type ProfileUpload struct {
	Filename string
	Content  io.Reader
}

// userService implements UserService
type userService struct {
	userRepo UserRepository
	storage  ProfileStorage
	issuer   TokenIssuer
	logger   *zap.Logger
	verify   func(password, hash string) bool
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, storage ProfileStorage, issuer TokenIssuer, logger *zap.Logger) *userService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		issuer:   issuer,
		logger:   logger,
		verify:   service.VerifyPassword,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// maxPasswordBytes is the longest password bcrypt accepts
const maxPasswordBytes = 72

// Column limits of the users table, in characters except for bio
const (
	maxUserNameLength = 100
	maxEmailLength    = 255
	maxBioBytes       = 65535
)

// dummyHash is compared against when the email is unknown so both login failures cost one bcrypt run
var dummyHash = sync.OnceValue(func() string {
	hash, err := service.HashPassword("pokeroster-unknown-account")
	if err != nil {
		panic(err)
	}
	return hash
})

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateSignup checks required signup fields and normalizes them in place
func validateSignup(req *models.SignupRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = NormalizeEmail(req.Email)
	req.Bio = strings.TrimSpace(req.Bio)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidation("name, email and password are required")
	}
	if longerThan(req.Name, maxUserNameLength) {
		return apperrors.NewValidation("name must be at most 100 characters")
	}
	if longerThan(req.Email, maxEmailLength) {
		return apperrors.NewValidation("email must be at most 255 characters")
	}
	if len(req.Bio) > maxBioBytes {
		return apperrors.NewValidation("bio is too long")
	}
	if !emailRegex.MatchString(req.Email) {
		return apperrors.NewValidation("invalid email format")
	}
	if len(req.Password) > maxPasswordBytes {
		return apperrors.NewValidation("password must be at most 72 bytes")
	}
	return nil
}

// Signup creates an account and returns a token for it.
// The picture is stored first and removed again on every failure that leaves no user behind.
func (s *userService) Signup(ctx context.Context, req *models.SignupRequest, upload *ProfileUpload) (*models.AuthResponse, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	profilePic := models.DefaultProfilePic
	storedFile := ""
	if upload != nil {
		name, err := s.storage.Save(ctx, upload.Filename, upload.Content)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedExtension) {
				return nil, apperrors.Wrap(ErrUnsupportedPicture, err)
			}
			return nil, apperrors.NewUnexpected(err)
		}
		storedFile = name
		profilePic = name
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.discardUpload(storedFile)
		return nil, apperrors.NewUnexpected(err)
	}
	if exists {
		s.discardUpload(storedFile)
		return nil, ErrEmailRegistered
	}

	passwordHash, err := service.HashPassword(req.Password)
	if err != nil {
		s.discardUpload(storedFile)
		return nil, apperrors.NewUnexpected(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		ProfilePic:   profilePic,
		Bio:          req.Bio,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.discardUpload(storedFile)
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Wrap(ErrEmailRegistered, err)
		}
		return nil, apperrors.NewUnexpected(err)
	}

	s.logger.Info("user signed up", zap.Int("user_id", user.ID))
	return s.authResponse(user)
}

// discardUpload removes a stored picture that no user refers to
func (s *userService) discardUpload(name string) {
	if name == "" {
		return
	}
	if err := s.storage.Delete(name); err != nil {
		s.logger.Warn("failed to delete orphaned profile picture", zap.String("file", name), zap.Error(err))
	}
}

// Login authenticates a user by email and password.
// An unknown email and a wrong password produce the same error.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.NewValidation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		s.verify(req.Password, dummyHash())
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}

	if !s.verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// Me returns the live record of the authenticated user
func (s *userService) Me(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	return user, nil
}

func (s *userService) authResponse(user *models.User) (*models.AuthResponse, error) {
	claims := models.ClaimsFromUser(user)
	token, err := s.issuer.Issue(claims)
	if err != nil {
		return nil, apperrors.NewUnexpected(err)
	}
	return &models.AuthResponse{Token: token, User: claims}, nil
}
