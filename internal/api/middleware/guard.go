package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/buy01/storefront-gateway/internal/api/metrics"
	"github.com/buy01/storefront-gateway/internal/core/domain"
	"github.com/buy01/storefront-gateway/internal/core/service"
)

// RequireRole gates a destination behind one exact role. The decision itself
// is service.EvaluateAccess; this adapter only performs the redirect on deny
// and exposes the identity to handlers on admit. It never calls the network.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFromContext(c)

			decision := service.EvaluateAccess(sess, required)
			if !decision.Admit {
				metrics.GuardDecisionsTotal.WithLabelValues(string(required), "deny").Inc()
				return c.Redirect(http.StatusFound, decision.RedirectTo)
			}

			metrics.GuardDecisionsTotal.WithLabelValues(string(required), "admit").Inc()
			c.Set("identity", sess.Identity)
			return next(c)
		}
	}
}
