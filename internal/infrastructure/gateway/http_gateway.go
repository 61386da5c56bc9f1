// Package gateway implements the AuthGateway contract against the clinic
// backend's HTTP API: Basic-auth GET /login, JSON POST /register, and a
// best-effort POST /logout.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// HTTPGateway talks to the remote clinic service. It owns the boundary
// normalization: whatever shape the backend uses for roles (plain string,
// array, or only a JWT whose claims carry them), LoginResult.Roles comes
// out as one comma-separated string.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewHTTPGateway(baseURL string, timeout time.Duration, log zerolog.Logger) *HTTPGateway {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// rolesField accepts either a JSON string or an array of strings.
type rolesField string

func (r *rolesField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = rolesField(s)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*r = rolesField(strings.Join(arr, ","))
		return nil
	}
	// Unrecognized shape: leave empty rather than fail the whole login.
	*r = ""
	return nil
}

type loginResponse struct {
	Username    string     `json:"username"`
	Roles       rolesField `json:"roles"`
	AccessToken string     `json:"accessToken"`
	Token       string     `json:"token"`
}

func (g *HTTPGateway) Login(ctx context.Context, identifier, password string) (*ports.LoginResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/login", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknown, err)
	}
	req.SetBasicAuth(identifier, password)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: login returned %d", domain.ErrUnknown, resp.StatusCode)
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode login response: %v", domain.ErrUnknown, err)
	}

	roles := string(body.Roles)
	if roles == "" {
		if tok := firstNonEmpty(body.AccessToken, body.Token); tok != "" {
			roles = rolesFromToken(tok)
		}
	}

	return &ports.LoginResult{Username: body.Username, Roles: roles}, nil
}

type registerPayload struct {
	FullName        string            `json:"fullName"`
	Username        string            `json:"username"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Password        string            `json:"password"`
	ConfirmPassword string            `json:"confirmPassword"`
	Pets            []domain.PetEntry `json:"pets"`
}

type registerResponse struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

func (g *HTTPGateway) Register(ctx context.Context, r *ports.RegistrationRequest) (*ports.RegistrationResult, error) {
	payload := registerPayload{
		FullName:        r.Identity.FullName,
		Username:        r.Identity.NationalID,
		Email:           r.Identity.Email,
		Phone:           r.Identity.Phone,
		Password:        r.Identity.Password,
		ConfirmPassword: r.Identity.ConfirmPassword,
		Pets:            r.Pets,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknown, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/register", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknown, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict:
		return nil, domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, serverMessage(resp))
	default:
		return nil, fmt.Errorf("%w: register returned %d", domain.ErrUnknown, resp.StatusCode)
	}

	var body registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode register response: %v", domain.ErrUnknown, err)
	}
	return &ports.RegistrationResult{FullName: body.FullName, Username: body.Username}, nil
}

// Logout tells the backend the session ended. Best-effort by contract: the
// caller clears local state regardless of the outcome.
func (g *HTTPGateway) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/logout", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnknown, err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: logout returned %d", domain.ErrUnknown, resp.StatusCode)
	}
	return nil
}

// rolesFromToken extracts the roles claim from a bearer token. The token is
// not verified here — the backend already authenticated the call and the
// client has no signing key; this is shape normalization only.
func rolesFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	switch v := claims["roles"].(type) {
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	}
	if s, ok := claims["role"].(string); ok {
		return s
	}
	return ""
}

func serverMessage(resp *http.Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "rejected by server"
	}
	if msg := firstNonEmpty(body.Error, body.Message); msg != "" {
		return msg
	}
	return "rejected by server"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
