package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"dealshare/internal/session"
)

// Handlers binds the web tier's routes to API calls and templates.
type Handlers struct {
	api      *Client
	sessions session.Store
	secret   string
}

// NewHandlers creates the web tier handler set.
func NewHandlers(api *Client, sessions session.Store, secret string) *Handlers {
	return &Handlers{api: api, sessions: sessions, secret: secret}
}

// view assembles the data every template receives.
func (h *Handlers) view(c echo.Context, title string) viewData {
	_, loggedIn := currentUser(c)
	return viewData{Title: title, LoggedIn: loggedIn}
}

// upstreamError maps an API tier failure onto the page response. Not-found
// stays 404; everything else is a 500 with a generic message.
func upstreamError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return echo.NewHTTPError(http.StatusNotFound, apiErr.Message)
		case http.StatusUnauthorized, http.StatusForbidden:
			return echo.NewHTTPError(http.StatusUnauthorized, apiErr.Message)
		case http.StatusBadRequest, http.StatusConflict:
			return echo.NewHTTPError(http.StatusBadRequest, apiErr.Message)
		}
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "error occurred while fetching data")
}

// Home renders the landing page: deals ranked by votes.
func (h *Handlers) Home(c echo.Context) error {
	deals, err := h.api.RankedDeals(c.Request().Context())
	if err != nil {
		return upstreamError(err)
	}
	data := h.view(c, "Family Tree Deals")
	data.Deals = deals
	return c.Render(http.StatusOK, "index", data)
}

// Login checks credentials against the API tier. A match starts a session
// and lands on the dashboard; a mismatch bounces back to the home page.
func (h *Handlers) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	userID, err := h.api.Login(c.Request().Context(), username, password)
	if err != nil {
		return upstreamError(err)
	}
	if userID == nil {
		return c.Redirect(http.StatusFound, "/")
	}

	sid, err := h.sessions.Create(c.Request().Context(), *userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not start session")
	}
	setSessionCookie(c, sid, h.secret)
	return c.Redirect(http.StatusFound, "/user/dashboard")
}
