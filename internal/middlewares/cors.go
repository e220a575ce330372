package middlewares

import (
	"net/http"
	"slices"
	"strings"
)

// allowedHeaders includes x-auth-token, the alternative to the Authorization header used by older clients
const allowedHeaders = "Content-Type, Authorization, X-Auth-Token, X-Request-ID"

// CORSMiddleware creates a CORS middleware with the specified allowed origins
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				if allowed := matchOrigin(origin, allowedOrigins, allowAll); allowed != "" {
					w.Header().Set("Access-Control-Allow-Origin", allowed)
					w.Header().Add("Vary", "Origin")
				}
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// matchOrigin returns the value for Access-Control-Allow-Origin, or "" when the origin is not allowed
func matchOrigin(requestOrigin string, allowedOrigins []string, allowAll bool) string {
	if allowAll {
		return "*"
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(requestOrigin, allowed) {
			return requestOrigin
		}
	}
	return ""
}
