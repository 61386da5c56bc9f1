package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/clinic-client/internal/session"
)

// ViewHandler serves the facade's named views. Dashboard content itself is
// rendered by the front-end; these endpoints only identify the view and the
// session it is rendered for, and exist as route-guard targets.
type ViewHandler struct {
	sessions *session.Store
}

func NewViewHandler(sessions *session.Store) *ViewHandler {
	return &ViewHandler{sessions: sessions}
}

func (h *ViewHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"view": "login"})
}

func (h *ViewHandler) AdminDashboard(c echo.Context) error {
	return h.dashboard(c, "admin-dashboard")
}

func (h *ViewHandler) UserDashboard(c echo.Context) error {
	return h.dashboard(c, "user-dashboard")
}

func (h *ViewHandler) dashboard(c echo.Context, view string) error {
	sess := h.sessions.Current()
	if sess == nil {
		// The guard middleware redirects before this can happen; kept as a
		// hard stop in case a route is wired without it.
		return echo.NewHTTPError(http.StatusUnauthorized, "no session")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"view":       view,
		"identifier": sess.Identifier,
		"role":       string(sess.Role),
	})
}
