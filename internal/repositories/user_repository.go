package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

const userColumns = `id, name, email, password_hash, profile_pic, is_admin, bio, created_at, updated_at`

// userRepository implements UserRepository
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user into the database.
// A unique key violation on email is reported as ErrDuplicate.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, profile_pic, is_admin, bio)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.ProfilePic, user.IsAdmin, user.Bio)
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByEmail retrieves a user by normalized email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? LIMIT 1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by id", zap.Error(err), zap.Int("user_id", id))
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// SetAdmin sets the admin flag of the user with the given email
func (r *userRepository) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	exists, err := r.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	query := `UPDATE users SET is_admin = ? WHERE email = ?`
	if _, err := r.db.ExecContext(ctx, query, isAdmin, email); err != nil {
		r.logger.Error("failed to update admin flag", zap.Error(err))
		return fmt.Errorf("failed to update admin flag: %w", err)
	}

	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.ProfilePic,
		&user.IsAdmin,
		&user.Bio,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
