package service

import (
	"testing"

	"github.com/vetclinic/clinic-client/internal/core/domain"
)

func TestValidateField_NationalID(t *testing.T) {
	iv := newIdentityValidator()
	cases := []struct {
		value string
		ok    bool
	}{
		{"12345678A", true},
		{"X1234567B", true},
		{"Y0000000Z", true},
		{"invalid", false},
		{"1234567A", false},   // only six digits after the leading char
		{"12345678a", false},  // lowercase control letter
		{"A2345678B", false},  // leading letter outside the NIE set
		{"123456789A", false}, // too many digits
		{"", false},
	}
	for _, tc := range cases {
		id := &domain.RegistrationIdentity{NationalID: tc.value}
		if got := iv.validateField(id, domain.FieldNationalID); got != tc.ok {
			t.Fatalf("nationalId %q: got %v, want %v", tc.value, got, tc.ok)
		}
	}
}

func TestValidateField_Phone(t *testing.T) {
	iv := newIdentityValidator()
	cases := []struct {
		value string
		ok    bool
	}{
		{"600123456", true},
		{"+34 600 123 456", true},
		{"(91) 555-0199", true},
		{"12345", false}, // too short
		{"600123x", false},
		{"", false},
	}
	for _, tc := range cases {
		id := &domain.RegistrationIdentity{Phone: tc.value}
		if got := iv.validateField(id, domain.FieldPhone); got != tc.ok {
			t.Fatalf("phone %q: got %v, want %v", tc.value, got, tc.ok)
		}
	}
}

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"Password1!", true},
		{"Abcdef1;", true},
		{"password1!", false}, // no uppercase
		{"PASSWORD!!", false}, // no digit
		{"Password11", false}, // no symbol
		{"Pa1!", false},       // too short
		{"", false},
	}
	for _, tc := range cases {
		if got := strongPassword(tc.value); got != tc.ok {
			t.Fatalf("password %q: got %v, want %v", tc.value, got, tc.ok)
		}
	}
}

func TestValidateField_FullNameTrimsWhitespace(t *testing.T) {
	iv := newIdentityValidator()
	id := &domain.RegistrationIdentity{FullName: "   "}
	if iv.validateField(id, domain.FieldFullName) {
		t.Fatalf("whitespace-only name must be rejected")
	}
	id.FullName = "Jane Doe"
	if !iv.validateField(id, domain.FieldFullName) {
		t.Fatalf("expected valid name")
	}
}

func TestValidateField_ConfirmPasswordNeedsStrengthAndMatch(t *testing.T) {
	iv := newIdentityValidator()

	// Matching but weak.
	id := &domain.RegistrationIdentity{Password: "weakpass", ConfirmPassword: "weakpass"}
	if iv.validateField(id, domain.FieldConfirmPassword) {
		t.Fatalf("matching weak passwords must fail the confirm rule")
	}

	// Strong but different.
	id = &domain.RegistrationIdentity{Password: "Password1!", ConfirmPassword: "Password2!"}
	if iv.validateField(id, domain.FieldConfirmPassword) {
		t.Fatalf("non-matching passwords must fail the confirm rule")
	}

	id = &domain.RegistrationIdentity{Password: "Password1!", ConfirmPassword: "Password1!"}
	if !iv.validateField(id, domain.FieldConfirmPassword) {
		t.Fatalf("expected valid confirm password")
	}
}
