package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
	"github.com/vetclinic/clinic-client/internal/routes"
	"github.com/vetclinic/clinic-client/internal/session"
)

// LoginStatus is the lifecycle of one login attempt.
type LoginStatus int

const (
	LoginIdle LoginStatus = iota
	LoginPending
	LoginSuccess
	LoginFailed
)

// LoginController manages one login attempt: field state, submission, and
// transient feedback. A single controller never has two submissions in
// flight; Success is transient and expected to be dismissed by navigation.
type LoginController struct {
	gateway  ports.AuthGateway
	sessions *session.Store
	log      zerolog.Logger

	mu         sync.Mutex
	identifier string
	password   string
	status     LoginStatus
	message    string
}

func NewLoginController(gateway ports.AuthGateway, sessions *session.Store, log zerolog.Logger) *LoginController {
	return &LoginController{gateway: gateway, sessions: sessions, log: log}
}

// Submit runs one login attempt. On success the session store is updated,
// the credential fields are cleared, and the returned path is the landing
// route for the resolved role. On failure the fields are preserved so the
// user can correct them, and no session mutation occurs.
func (c *LoginController) Submit(ctx context.Context, identifier, password string) (string, error) {
	c.mu.Lock()
	if c.status == LoginPending {
		c.mu.Unlock()
		return "", domain.ErrSubmitInFlight
	}
	c.identifier, c.password = identifier, password
	if identifier == "" || password == "" {
		c.status = LoginFailed
		c.message = "Username and password are required."
		c.mu.Unlock()
		return "", domain.ErrValidation
	}
	c.status = LoginPending
	c.message = ""
	c.mu.Unlock()

	res, err := c.gateway.Login(ctx, identifier, password)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = LoginFailed
		c.message = loginFailureMessage(err)
		c.log.Warn().Err(err).Str("identifier", identifier).Msg("login failed")
		return "", err
	}

	sess, persistErr := c.sessions.Login(res)
	if persistErr != nil {
		// The in-memory session is installed; persistence will be retried
		// on the next login. Not a reason to fail the attempt.
		c.log.Warn().Err(persistErr).Msg("session not persisted")
	}

	c.status = LoginSuccess
	c.identifier, c.password = "", ""
	c.log.Info().Str("identifier", sess.Identifier).Str("role", string(sess.Role)).Msg("login succeeded")
	return routes.Landing(sess.Role), nil
}

// Status returns the controller's current lifecycle state.
func (c *LoginController) Status() LoginStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Message returns the transient user-facing feedback for the last attempt.
func (c *LoginController) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Identifier returns the preserved identifier field so a failed attempt can
// be corrected without retyping it.
func (c *LoginController) Identifier() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identifier
}

// Reset dismisses the attempt outcome and clears the fields.
func (c *LoginController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = LoginIdle
	c.message = ""
	c.identifier, c.password = "", ""
}

func loginFailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return "Incorrect username or password."
	case errors.Is(err, domain.ErrNetwork):
		return "Cannot reach the clinic service. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}
