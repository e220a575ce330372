package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// ForbiddenMessage is returned to authenticated callers without the admin flag
const ForbiddenMessage = "forbidden"

// AdminMiddleware lets through only requests whose claims carry the admin flag.
// It must run after AuthMiddleware and trusts the claim snapshot without consulting the store.
func AdminMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok {
				logger.Error("admin gate reached without claims", zap.String("path", r.URL.Path))
				writeMessage(w, http.StatusUnauthorized, UnauthorizedMessage)
				return
			}

			if !claims.IsAdmin {
				logger.Info("admin access denied",
					zap.Int("user_id", claims.ID),
					zap.String("path", r.URL.Path),
				)
				writeMessage(w, http.StatusForbidden, ForbiddenMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
