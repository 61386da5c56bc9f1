// Package guard decides, per navigation, whether the current session may
// render a requested view. It is a pure function of the session and the
// required role; freshness comes from the session store alone.
package guard

import (
	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/routes"
)

// Decision is the per-request outcome. RedirectTo is set only when Allow is
// false.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Authorize evaluates a navigation attempt. required == "" means the view
// only needs an authenticated session. A role mismatch redirects to the
// session's own landing page rather than an error page, so the response
// never reveals which role the view wanted.
func Authorize(sess *domain.Session, required domain.Role) Decision {
	if sess == nil || !sess.Authenticated {
		return Decision{Allow: false, RedirectTo: routes.Login}
	}
	if required == "" || sess.Role == required {
		return Decision{Allow: true}
	}
	return Decision{Allow: false, RedirectTo: routes.Landing(sess.Role)}
}
