package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
	"github.com/vetclinic/clinic-client/internal/routes"
	"github.com/vetclinic/clinic-client/internal/session"
)

type memRecords struct {
	data []byte
}

func (m *memRecords) Load() ([]byte, error) {
	if m.data == nil {
		return nil, domain.ErrRecordNotFound
	}
	return m.data, nil
}

func (m *memRecords) Save(data []byte) error { m.data = data; return nil }
func (m *memRecords) Delete() error          { m.data = nil; return nil }

func loggedInStore(t *testing.T, roles string) *session.Store {
	t.Helper()
	store := session.NewStore(&memRecords{}, zerolog.Nop())
	if _, err := store.Login(&ports.LoginResult{Username: "u", Roles: roles}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return store
}

func runGuard(t *testing.T, sessions *session.Store, required domain.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Guard(sessions, required)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestGuard_NoSessionRedirectsToLogin(t *testing.T) {
	sessions := session.NewStore(&memRecords{}, zerolog.Nop())

	rec, called := runGuard(t, sessions, domain.RoleAdmin)
	if called {
		t.Fatalf("next handler must not run")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != routes.Login {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
}

func TestGuard_MatchingRolePasses(t *testing.T) {
	sessions := loggedInStore(t, "ROLE_ADMIN")

	rec, called := runGuard(t, sessions, domain.RoleAdmin)
	if !called {
		t.Fatalf("next handler must run")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_MismatchRedirectsToOwnDashboard(t *testing.T) {
	sessions := loggedInStore(t, "ROLE_USER")

	rec, called := runGuard(t, sessions, domain.RoleAdmin)
	if called {
		t.Fatalf("next handler must not run")
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != routes.UserDashboard {
		t.Fatalf("mismatch must land on own dashboard, got %q", loc)
	}
}

func TestGuard_NoRequiredRoleOnlyNeedsSession(t *testing.T) {
	sessions := loggedInStore(t, "")

	_, called := runGuard(t, sessions, "")
	if !called {
		t.Fatalf("authenticated session must pass when no role is required")
	}
}
