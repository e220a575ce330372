package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pokeroster/backend/internal/auth/middleware"
	"github.com/pokeroster/backend/internal/middlewares"
	"github.com/pokeroster/backend/internal/models"
	"github.com/pokeroster/backend/internal/services"
	"go.uber.org/zap"
)

// maxSignupMemory is the part of a multipart signup kept in memory; the rest spills to temp files
const maxSignupMemory = 10 << 20

// UserService is the interface that wraps methods for account business logic.
type UserService interface {
	// Method Signup validates the form, stores the optional picture, creates the account and issues a token.
	//
	// "req" parameter contains name, email, password and bio.
	// "upload" parameter is the optional profile picture; nil when none was sent.
	//
	// If the email is taken, services.ErrEmailRegistered is returned and the stored picture is removed.
	Signup(ctx context.Context, req *models.SignupRequest, upload *services.ProfileUpload) (*models.AuthResponse, error)
	// Method Login checks the credentials and issues a token.
	//
	// "req" parameter contains email and password.
	//
	// An unknown email and a wrong password both return services.ErrInvalidCredentials.
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	// Method Me returns the live account of "userID".
	//
	// If the account no longer exists, services.ErrUserNotFound is returned.
	Me(ctx context.Context, userID int) (*models.User, error)
}

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes
// Note: This assumes the router is already scoped to /api
func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/user", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.With(authMiddleware).Get("/me", h.Me)
	})
}

// Signup handles POST /user/signup
// @Summary Create an account
// @Description Create an account from a multipart form with an optional profile picture. Returns a token valid for 7 days.
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Display name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param bio formData string false "Bio"
// @Param profilePic formData file false "Profile picture (jpg, jpeg, png, gif, webp)"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} MessageResponse "Missing fields or email already registered"
// @Failure 413 {object} MessageResponse "Request body too large"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /user/signup [post]
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSignupMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.RespondError(w, http.StatusRequestEntityTooLarge, middlewares.RequestTooLargeMessage)
			return
		}
		h.Logger.Info("failed to parse signup form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	req := &models.SignupRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Bio:      r.FormValue("bio"),
	}

	var upload *services.ProfileUpload
	file, fileHeader, err := r.FormFile("profilePic")
	if err == nil {
		defer file.Close()
		if fileHeader.Size > 0 {
			upload = &services.ProfileUpload{Filename: fileHeader.Filename, Content: file}
		}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		h.Logger.Info("failed to read profile picture", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "failed to process profile picture")
		return
	}

	resp, err := h.userService.Signup(r.Context(), req, upload)
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /user/login
// @Summary Log in
// @Description Exchange email and password for a token valid for 7 days.
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} MessageResponse "Invalid body or email or password incorrect"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /user/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Me handles GET /user/me
// @Summary Current user
// @Description Return the live account of the token holder, without the password hash.
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.User
// @Failure 401 {object} MessageResponse "Invalid or missing token"
// @Failure 404 {object} MessageResponse "User not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /user/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	user, err := h.userService.Me(r.Context(), claims.ID)
	if err != nil {
		h.RespondAppError(w, r, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}
