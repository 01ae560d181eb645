package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campushq/college-portal-api/internal/auth"
	"github.com/campushq/college-portal-api/internal/model"
	"github.com/campushq/college-portal-api/internal/usecase"
)

// AuthHandler serves the registration, login and logout endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	cookies     auth.CookieManager
	logger      *zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	cookies auth.CookieManager,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		cookies:     cookies,
		logger:      logger,
	}
}

type registerRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type authResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	User    model.UserProjection `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			renderError(w, r, http.StatusBadRequest, "Name, email and password are required")
		case errors.Is(err, usecase.ErrInvalidEmail):
			renderError(w, r, http.StatusBadRequest, "Please provide a valid email address")
		case errors.Is(err, usecase.ErrWeakPassword):
			renderError(w, r, http.StatusBadRequest, "Password must be at least 6 characters long")
		case errors.Is(err, usecase.ErrInvalidRole):
			renderError(w, r, http.StatusBadRequest, "Invalid role specified")
		case errors.Is(err, usecase.ErrEmailTaken):
			renderError(w, r, http.StatusConflict, "Email already registered")
		default:
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("registration failed")
			renderError(w, r, http.StatusInternalServerError, "An error occurred during registration")
		}
		return
	}

	message := "Registration successful. Please sign in."
	if user.Role == model.RolePendingTeacher {
		message = "Registration successful. Your teacher account is pending approval."
	}

	renderJSON(w, r, http.StatusCreated, authResponse{
		Success: true,
		Message: message,
		User:    user.Projection(),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, ttl, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.Remember,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFields):
			renderError(w, r, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// Unknown email and wrong password produce the same response.
			renderError(w, r, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, usecase.ErrPendingApproval):
			renderError(w, r, http.StatusForbidden, "Your teacher account is pending approval by the HOD")
		default:
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("login failed")
			renderError(w, r, http.StatusInternalServerError, "An error occurred during login")
		}
		return
	}

	h.cookies.Set(w, token, ttl)

	renderJSON(w, r, http.StatusOK, authResponse{
		Success: true,
		Message: "Login successful",
		User:    user.Projection(),
	})
}

// Logout handles POST /api/auth/logout by clearing the session cookie. The
// token itself is stateless and simply expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)

	renderJSON(w, r, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logged out",
	})
}
