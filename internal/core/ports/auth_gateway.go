package ports

import (
	"context"

	"github.com/vetclinic/clinic-client/internal/core/domain"
)

// LoginResult is the normalized outcome of a successful login. Roles is a
// comma-separated token string regardless of how the backend shipped it
// (plain string, array, or token claims) — the gateway implementation owns
// that normalization.
type LoginResult struct {
	Username string
	Roles    string
}

// RegistrationRequest is the full registration payload: the owner's
// identity plus one or more pets. The national ID travels as the username.
type RegistrationRequest struct {
	Identity domain.RegistrationIdentity
	Pets     []domain.PetEntry
}

// RegistrationResult echoes back the created account.
type RegistrationResult struct {
	FullName string
	Username string
}

// AuthGateway is the boundary to the remote clinic service. Failures are
// reported with the domain sentinel errors (ErrUnauthorized, ErrConflict,
// ErrValidation, ErrNetwork, ErrUnknown), possibly wrapped.
type AuthGateway interface {
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	Register(ctx context.Context, req *RegistrationRequest) (*RegistrationResult, error)

	// Logout is best-effort: callers log failures and clear local state
	// regardless.
	Logout(ctx context.Context) error
}
