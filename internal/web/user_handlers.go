package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// logoutRedirectDelay paces the bounce back to the home page after logout.
const logoutRedirectDelay = 2 * time.Second

// registerForm is the sign-up form. Email shape and field presence are
// checked here before anything goes upstream.
type registerForm struct {
	FirstName  string `form:"firstName" validate:"required"`
	SecondName string `form:"secondName" validate:"required"`
	Username   string `form:"username" validate:"required"`
	Email      string `form:"email" validate:"required,email"`
	Password   string `form:"password" validate:"required"`
}

// RegisterPage renders the sign-up form.
func (h *Handlers) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register", h.view(c, "Sign Up"))
}

// Register validates the sign-up form and forwards it to the API tier.
// On upstream failure the form is re-rendered empty.
func (h *Handlers) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.api.Register(c.Request().Context(), RegisterForm{
		FirstName:  form.FirstName,
		SecondName: form.SecondName,
		Username:   form.Username,
		Email:      form.Email,
		Password:   form.Password,
	})
	if err != nil {
		return c.Render(http.StatusOK, "register", h.view(c, "Sign Up"))
	}

	data := h.view(c, "Sign Up")
	data.Form = form
	return c.Render(http.StatusOK, "register", data)
}

// Dashboard renders the logged-in user's profile.
func (h *Handlers) Dashboard(c echo.Context) error {
	userID, _ := currentUser(c)

	user, err := h.api.User(c.Request().Context(), userID)
	if err != nil {
		return upstreamError(err)
	}

	data := h.view(c, "Profile")
	data.User = user
	return c.Render(http.StatusOK, "dashboard", data)
}

// Logout destroys the session and, after a fixed pause, bounces to the
// home page.
func (h *Handlers) Logout(c echo.Context) error {
	if sid, ok := currentSession(c); ok {
		if err := h.sessions.Destroy(c.Request().Context(), sid); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "an error occurred while trying to logout")
		}
	}
	clearSessionCookie(c)

	select {
	case <-c.Request().Context().Done():
	case <-time.After(logoutRedirectDelay):
	}
	return c.Redirect(http.StatusFound, "/")
}
