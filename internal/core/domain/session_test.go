package domain

import "testing"

func TestResolveRole(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Role
	}{
		{"empty", "", RoleUser},
		{"admin only", "ROLE_ADMIN", RoleAdmin},
		{"user only", "ROLE_USER", RoleUser},
		{"admin wins regardless of order", "ROLE_USER,ROLE_ADMIN", RoleAdmin},
		{"admin first", "ROLE_ADMIN,ROLE_USER", RoleAdmin},
		{"tokens are trimmed", " ROLE_ADMIN , ROLE_USER ", RoleAdmin},
		{"unknown tokens fall back to user", "ROLE_VET,ROLE_STAFF", RoleUser},
		{"user among unknown tokens", "ROLE_VET,ROLE_USER", RoleUser},
		{"no partial matches", "ROLE_ADMINISTRATOR", RoleUser},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveRole(tc.raw); got != tc.want {
				t.Fatalf("ResolveRole(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestPetEntry_HasIdentity(t *testing.T) {
	if (PetEntry{}).HasIdentity() {
		t.Fatalf("empty entry should not count")
	}
	if (PetEntry{Name: "Fido"}).HasIdentity() {
		t.Fatalf("name alone should not count")
	}
	if (PetEntry{Species: "Perro"}).HasIdentity() {
		t.Fatalf("species alone should not count")
	}
	if !(PetEntry{Name: "Fido", Species: "Perro"}).HasIdentity() {
		t.Fatalf("name and species should count")
	}
}
