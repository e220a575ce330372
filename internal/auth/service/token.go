package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pokeroster/backend/internal/models"
)

// TokenTTL is the validity window of every issued token
const TokenTTL = 7 * 24 * time.Hour

var (
	// ErrSigning is returned when a token cannot be signed (e.g. the secret is empty)
	ErrSigning = errors.New("token signing failed")
	// ErrInvalidToken is returned for malformed tokens, bad signatures and unexpected algorithms
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for a correctly signed token past its validity window
	ErrExpiredToken = errors.New("token expired")
)

// signedClaims is the JWT payload: the identity snapshot plus exp/iat
type signedClaims struct {
	models.TokenClaims
	jwt.RegisteredClaims
}

// TokenIssuer handles JWT token issuance and verification
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewTokenIssuer creates a new token issuer signing with the given secret
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue signs a token carrying the given claims, valid for TokenTTL
func (ti *TokenIssuer) Issue(claims models.TokenClaims) (string, error) {
	if len(ti.secret) == 0 {
		return "", fmt.Errorf("%w: empty secret", ErrSigning)
	}

	issuedAt := ti.now()
	payload := signedClaims{
		TokenClaims: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	tokenString, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of a token and returns its claims
func (ti *TokenIssuer) Verify(tokenString string) (*models.TokenClaims, error) {
	if len(ti.secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrSigning)
	}

	payload := &signedClaims{}
	token, err := jwt.ParseWithClaims(tokenString, payload, func(token *jwt.Token) (any, error) {
		return ti.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims := payload.TokenClaims
	return &claims, nil
}
