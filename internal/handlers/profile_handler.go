package handlers

import (
	"errors"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileFiles opens stored profile pictures by name
type ProfileFiles interface {
	Open(name string) (io.ReadCloser, error)
}

// ProfileHandler serves uploaded profile pictures
type ProfileHandler struct {
	BaseHandler
	files ProfileFiles
}

// NewProfileHandler creates a new profile picture handler
func NewProfileHandler(files ProfileFiles, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: BaseHandler{Logger: logger},
		files:       files,
	}
}

// RegisterRoutes registers the profile picture route at the root of r
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profile/{file}", h.Serve)
}

// Serve handles GET /profile/{file}
// @Summary Profile picture
// @Tags user
// @Produce image/png,image/jpeg,image/gif,image/webp
// @Param file path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {object} MessageResponse "File not found"
// @Router /profile/{file} [get]
func (h *ProfileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "file")
	if name == "" || strings.HasPrefix(name, ".") {
		h.RespondError(w, http.StatusNotFound, "file not found")
		return
	}

	file, err := h.files.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.RespondError(w, http.StatusNotFound, "file not found")
			return
		}
		h.RespondAppError(w, r, err)
		return
	}
	defer file.Close()

	if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		h.Logger.Warn("failed to stream profile picture", zap.String("file", name), zap.Error(err))
	}
}
