package models

import "time"

// DefaultProfilePic is stored when a user signs up without uploading a picture
const DefaultProfilePic = "default.jpg"

// User represents a registered account
type User struct {
	ID           int       `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	ProfilePic   string    `json:"profilePic"`
	IsAdmin      bool      `json:"isAdmin"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TokenClaims is the identity snapshot embedded in an issued token.
// Only these five fields may ever be placed in a token: the payload is readable by any holder.
type TokenClaims struct {
	ID         int    `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
	IsAdmin    bool   `json:"isAdmin"`
}

// ClaimsFromUser takes the claim snapshot of a user
func ClaimsFromUser(u *User) TokenClaims {
	return TokenClaims{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
		IsAdmin:    u.IsAdmin,
	}
}

// SignupRequest represents validated signup form input
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

// LoginRequest represents a login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	Token string      `json:"token"`
	User  TokenClaims `json:"user"`
}
