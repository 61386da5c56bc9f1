package devserver

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
	"github.com/vetclinic/clinic-client/internal/infrastructure/gateway"
)

// These tests run the real HTTP gateway against the devserver, covering the
// full client-side wire contract end to end.

func newServerAndGateway(t *testing.T) (*Server, *gateway.HTTPGateway, func()) {
	t.Helper()
	srv := New(zerolog.Nop())
	ts := httptest.NewServer(srv.Router())
	gw := gateway.NewHTTPGateway(ts.URL+"/api/v1", 2*time.Second, zerolog.Nop())
	return srv, gw, ts.Close
}

func registration() *ports.RegistrationRequest {
	return &ports.RegistrationRequest{
		Identity: domain.RegistrationIdentity{
			FullName:        "Jane Doe",
			NationalID:      "12345678A",
			Email:           "jane@x.com",
			Phone:           "600123456",
			Password:        "Password1!",
			ConfirmPassword: "Password1!",
		},
		Pets: []domain.PetEntry{{Name: "Fido", Species: "Perro"}},
	}
}

func TestDevserver_RegisterThenLogin(t *testing.T) {
	_, gw, stop := newServerAndGateway(t)
	defer stop()

	res, err := gw.Register(context.Background(), registration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if res.Username != "12345678A" || res.FullName != "Jane Doe" {
		t.Fatalf("unexpected registration result: %+v", res)
	}

	login, err := gw.Login(context.Background(), "12345678A", "Password1!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.Username != "12345678A" {
		t.Fatalf("unexpected username: %q", login.Username)
	}
	if domain.ResolveRole(login.Roles) != domain.RoleUser {
		t.Fatalf("registered accounts get USER, got %q", login.Roles)
	}
}

func TestDevserver_DuplicateRegistrationConflicts(t *testing.T) {
	_, gw, stop := newServerAndGateway(t)
	defer stop()

	if _, err := gw.Register(context.Background(), registration()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := gw.Register(context.Background(), registration())
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestDevserver_WrongPasswordUnauthorized(t *testing.T) {
	_, gw, stop := newServerAndGateway(t)
	defer stop()

	if _, err := gw.Register(context.Background(), registration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := gw.Login(context.Background(), "12345678A", "wrong")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDevserver_SeededAdminResolvesAdmin(t *testing.T) {
	srv, gw, stop := newServerAndGateway(t)
	defer stop()

	if err := srv.SeedAdmin("00000000A", "Admin123!"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	login, err := gw.Login(context.Background(), "00000000A", "Admin123!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if domain.ResolveRole(login.Roles) != domain.RoleAdmin {
		t.Fatalf("expected ADMIN, got %q", login.Roles)
	}
}

func TestDevserver_RegisterWithoutPetsRejected(t *testing.T) {
	_, gw, stop := newServerAndGateway(t)
	defer stop()

	req := registration()
	req.Pets = nil
	_, err := gw.Register(context.Background(), req)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
