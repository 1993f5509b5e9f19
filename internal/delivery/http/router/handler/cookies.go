package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// cookieWriter sets the session cookies. Secure is enabled in production.
type cookieWriter struct {
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func (w cookieWriter) newCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   w.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (w cookieWriter) setTokens(c echo.Context, tokens *entity.TokenPair) {
	w.setAccess(c, tokens.AccessToken)
	c.SetCookie(w.newCookie(middleware.RefreshTokenCookie, tokens.RefreshToken, w.refreshTTL))
}

func (w cookieWriter) setAccess(c echo.Context, accessToken string) {
	c.SetCookie(w.newCookie(middleware.AccessTokenCookie, accessToken, w.accessTTL))
}

func (w cookieWriter) clear(c echo.Context) {
	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		cookie := w.newCookie(name, "", 0)
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
