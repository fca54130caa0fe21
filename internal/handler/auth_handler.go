package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nexus/internal/auth"
	"nexus/internal/service"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Bio      *string `json:"bio" validate:"omitempty,max=1024"`
	Image    *string `json:"image" validate:"omitempty,url"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DataResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return unauthenticated()
	}

	user, err := h.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: user})
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} DataResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	claims, err := auth.CurrentUser(c)
	if err != nil {
		return unauthenticated()
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), claims.UserID, service.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
		Image:    req.Image,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, DataResponse{Data: user})
}
