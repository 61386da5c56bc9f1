package domain

import "strings"

// Role is the coarse-grained permission class of an authenticated user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Session models the authenticated identity held by the running client.
// It is owned exclusively by the session store: created on login, destroyed
// on logout, restored from the persisted record at startup.
type Session struct {
	Identifier    string `json:"identifier"`
	Role          Role   `json:"role"`
	Authenticated bool   `json:"authenticated"`
}

// ResolveRole maps the raw roles string returned by the backend to the
// canonical Role. The input is a comma-separated token list (e.g.
// "ROLE_ADMIN,ROLE_USER"); ROLE_ADMIN wins over ROLE_USER, and anything
// else — including an empty or unrecognized string — falls back to USER.
func ResolveRole(raw string) Role {
	if raw == "" {
		return RoleUser
	}
	for _, token := range strings.Split(raw, ",") {
		if strings.TrimSpace(token) == "ROLE_ADMIN" {
			return RoleAdmin
		}
	}
	for _, token := range strings.Split(raw, ",") {
		if strings.TrimSpace(token) == "ROLE_USER" {
			return RoleUser
		}
	}
	return RoleUser
}
