package middlewares

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/pokeroster/backend/internal/apperrors"
	"go.uber.org/zap"
)

// RecoveryMiddleware recovers from panics, logs the stack and answers with a generic server error
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("error", rec),
						zap.ByteString("stack", debug.Stack()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"message": apperrors.GenericServerMessage})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
