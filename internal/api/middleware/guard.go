package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/clinic-client/internal/api/metrics"
	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/guard"
	"github.com/vetclinic/clinic-client/internal/session"
)

// Guard gates a view behind the route guard. Denials are expressed as a
// navigation (303 redirect) rather than an error page: an unauthenticated
// request goes to the login view, a role mismatch goes back to the
// session's own dashboard.
func Guard(sessions *session.Store, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := sessions.Current()
			decision := guard.Authorize(sess, required)
			if !decision.Allow {
				reason := "unauthenticated"
				if sess != nil {
					reason = "role_mismatch"
				}
				metrics.GuardDenialsTotal.WithLabelValues(reason).Inc()
				return c.Redirect(http.StatusSeeOther, decision.RedirectTo)
			}
			return next(c)
		}
	}
}
