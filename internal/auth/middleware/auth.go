package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pokeroster/backend/internal/models"
	"go.uber.org/zap"
)

type contextKey string

const claimsKey contextKey = "claims"

// UnauthorizedMessage is the single client-facing message for every token failure
const UnauthorizedMessage = "invalid or missing token"

// TokenVerifier verifies a signed token and returns its claim snapshot
type TokenVerifier interface {
	Verify(token string) (*models.TokenClaims, error)
}

// AuthMiddleware validates the request token and attaches its claims to the context
func AuthMiddleware(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				logger.Info("request rejected", zap.String("path", r.URL.Path), zap.String("reason", "no token"))
				writeMessage(w, http.StatusUnauthorized, UnauthorizedMessage)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logger.Info("request rejected", zap.String("path", r.URL.Path), zap.Error(err))
				writeMessage(w, http.StatusUnauthorized, UnauthorizedMessage)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// extractToken reads "Authorization: Bearer <token>", falling back to the x-auth-token header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	return strings.TrimSpace(r.Header.Get("X-Auth-Token"))
}

// WithClaims returns a copy of ctx carrying the verified claims
func WithClaims(ctx context.Context, claims *models.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims retrieves the verified claims from context
func GetClaims(ctx context.Context) (*models.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*models.TokenClaims)
	return claims, ok && claims != nil
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
