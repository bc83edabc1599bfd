package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "dealshare/internal/errors"
	"dealshare/internal/service"
)

// UserHandler handles registration, login, and user lookups.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	SecondName string `json:"second_name" validate:"required"`
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a user with a server-set sign-up timestamp.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"user":    user,
	})
}

// Login checks credentials and answers with the user id, or null when they
// do not match. A mismatch is a 200, not an error.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.JSON(http.StatusOK, echo.Map{"authen": nil})
		}
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"authen": userID})
}

// GetUser returns a single user record.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.authService.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, user)
}
