package api

import (
	echo "github.com/labstack/echo/v5"
)

// extractAuthor resolves the conversation author from auth-proxy headers.
// Priority: X-Forwarded-User > X-Forwarded-Email (both set by oauth2-proxy).
// Unattributed requests fall back to "anonymous"; the author is recorded on
// sessions and messages for listing filters, never for authorization.
func extractAuthor(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	return "anonymous"
}
