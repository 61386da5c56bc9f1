package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/api/metrics"
	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
	"github.com/vetclinic/clinic-client/internal/core/service"
	"github.com/vetclinic/clinic-client/internal/session"
)

// SessionHandler exposes the login controller and session store over the
// local facade: POST/DELETE/GET /api/session.
type SessionHandler struct {
	login    *service.LoginController
	gateway  ports.AuthGateway
	sessions *session.Store
	log      zerolog.Logger
}

func NewSessionHandler(login *service.LoginController, gateway ports.AuthGateway, sessions *session.Store, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{login: login, gateway: gateway, sessions: sessions, log: log}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Identifier    string `json:"identifier,omitempty"`
	Role          string `json:"role,omitempty"`
	RedirectTo    string `json:"redirectTo,omitempty"`
}

// Login submits one login attempt and, on success, answers with the landing
// route for the resolved role.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	redirect, err := h.login.Submit(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": h.login.Message()})
		case errors.Is(err, domain.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": h.login.Message()})
		default:
			return err
		}
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	sess := h.sessions.Current()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Identifier:    sess.Identifier,
		Role:          string(sess.Role),
		RedirectTo:    redirect,
	})
}

// Logout tells the backend best-effort, then clears local state. Local
// clearing never fails the request: a second logout is a no-op.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.gateway.Logout(c.Request().Context()); err != nil {
		h.log.Warn().Err(err).Msg("remote logout failed, clearing local session anyway")
	}
	if err := h.sessions.Logout(); err != nil {
		h.log.Warn().Err(err).Msg("session record not cleared")
	}
	metrics.LogoutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Current reports the in-memory session without touching persistence.
func (h *SessionHandler) Current(c echo.Context) error {
	sess := h.sessions.Current()
	if sess == nil {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Identifier:    sess.Identifier,
		Role:          string(sess.Role),
	})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrNetwork):
		return "network"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}
