package middlewares

import (
	"net/http"
)

// RequestTooLargeMessage is the message sent with a 413 response
const RequestTooLargeMessage = "request body too large"

// RequestSizeLimitMiddleware rejects bodies larger than maxRequestSize bytes.
// Bodies without a Content-Length are capped while being read.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write([]byte(`{"message":"` + RequestTooLargeMessage + `"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
