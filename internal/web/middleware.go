package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dealshare/internal/session"
)

const (
	sessionCookieName = "dealshare_session"
	userIDContextKey  = "userID"
	sessionContextKey = "sessionID"
)

// ResolveSession reads the session cookie, verifies its signature, and
// resolves it against the store. Anonymous requests pass through with no
// user set; the handlers that need one use RequireUser.
func ResolveSession(store session.Store, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookieName)
			if err != nil {
				return next(c)
			}
			sid, ok := session.VerifyCookie(cookie.Value, secret)
			if !ok {
				return next(c)
			}
			userID, err := store.Get(c.Request().Context(), sid)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "session lookup failed")
			}
			c.Set(userIDContextKey, userID)
			c.Set(sessionContextKey, sid)
			return next(c)
		}
	}
}

// RequireUser rejects requests with no resolved session.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := c.Get(userIDContextKey).(uint); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "login required")
		}
		return next(c)
	}
}

// currentUser returns the resolved user id, ok=false when anonymous.
func currentUser(c echo.Context) (uint, bool) {
	userID, ok := c.Get(userIDContextKey).(uint)
	return userID, ok
}

// currentSession returns the resolved session id, if any.
func currentSession(c echo.Context) (string, bool) {
	sid, ok := c.Get(sessionContextKey).(string)
	return sid, ok
}

// setSessionCookie issues the signed session cookie.
func setSessionCookie(c echo.Context, sessionID, secret string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    session.SignCookie(sessionID, secret),
		Path:     "/",
		MaxAge:   int(session.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
