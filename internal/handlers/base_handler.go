package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pokeroster/backend/internal/apperrors"
	"github.com/pokeroster/backend/internal/middlewares"
	"go.uber.org/zap"
)

// BaseHandler holds the response helpers shared by all handlers
type BaseHandler struct {
	Logger *zap.Logger
}

// MessageResponse is the body of every error and of plain confirmations
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, MessageResponse{Message: message})
}

// RespondAppError translates a service error into a response.
// Unexpected errors are logged with their cause and answered with a generic message.
func (h *BaseHandler) RespondAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.Logger.Error("request failed",
			zap.String("request_id", middlewares.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	h.RespondError(w, status, apperrors.ClientMessage(err))
}

// intParam parses a positive integer URL parameter, returning 0 when it is not one
func intParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v < 1 {
		return 0
	}
	return v
}

// intQuery parses an integer query parameter, returning 0 when absent or malformed
func intQuery(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

// decodeJSON decodes a request body into dst, rejecting malformed JSON
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
