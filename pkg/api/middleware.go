package api

import (
	echo "github.com/labstack/echo/v5"
)

// securityHeaders sets baseline security headers on every response,
// turn streams included. Generated UI is rendered by the dashboard and
// never framed by third parties, so framing is denied outright.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}
