package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soyelectronico/storefront/internal/core/domain"
	"github.com/soyelectronico/storefront/internal/core/ports"
)

// RequireAction gates a route on the access policy, evaluated against the
// session held at request time. The coordinators re-check the same policy
// before dispatching, so this middleware is a fast path, not the
// enforcement point.
func RequireAction(sessions ports.SessionService, action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch domain.Evaluate(sessions.Current(), action) {
			case domain.Allow:
				return next(c)
			case domain.DenyNeedsLogin:
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			default:
				return echo.NewHTTPError(http.StatusForbidden, "forbidden for current role")
			}
		}
	}
}
