package service

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/vetclinic/clinic-client/internal/core/domain"
)

var (
	// Spanish DNI/NIE shape: one leading letter from the NIE set or a
	// digit, seven digits, one uppercase control letter.
	nationalIDPattern = regexp.MustCompile(`^[XYZ0-9][0-9]{7}[A-Z]$`)

	// Six or more characters drawn from digits, spaces and +-().
	phonePattern = regexp.MustCompile(`^[\d\s+\-()]{6,}$`)
)

const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// identityValidator wraps go-playground/validator with the registration
// form's custom rules. One instance is shared per wizard.
type identityValidator struct {
	v *validator.Validate
}

func newIdentityValidator() *identityValidator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("national_id", func(fl validator.FieldLevel) bool {
		return nationalIDPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_loose", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	return &identityValidator{v: v}
}

// structToForm maps struct field names reported by the validator to the
// form field names the wizard exposes.
var structToForm = map[string]string{
	"FullName":        domain.FieldFullName,
	"NationalID":      domain.FieldNationalID,
	"Email":           domain.FieldEmail,
	"Phone":           domain.FieldPhone,
	"Password":        domain.FieldPassword,
	"ConfirmPassword": domain.FieldConfirmPassword,
}

// validateAll checks the whole identity form and returns the set of failing
// form fields. An empty map means the form may advance.
func (iv *identityValidator) validateAll(id *domain.RegistrationIdentity) map[string]bool {
	failed := make(map[string]bool)
	err := iv.v.Struct(id)
	if err == nil {
		return failed
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// Struct-level failure outside field validation; flag everything
		// so the form cannot advance silently.
		for _, f := range domain.IdentityFields {
			failed[f] = true
		}
		return failed
	}

	for _, fe := range ve {
		if name, ok := structToForm[fe.StructField()]; ok {
			failed[name] = true
		}
	}
	return failed
}

// validateField re-checks a single form field against the current identity
// values. confirmPassword depends on password, so both its strength rule
// and the equality check run here.
func (iv *identityValidator) validateField(id *domain.RegistrationIdentity, field string) bool {
	switch field {
	case domain.FieldFullName:
		return strings.TrimSpace(id.FullName) != ""
	case domain.FieldNationalID:
		return nationalIDPattern.MatchString(id.NationalID)
	case domain.FieldEmail:
		return iv.v.Var(id.Email, "required,email") == nil
	case domain.FieldPhone:
		return phonePattern.MatchString(id.Phone)
	case domain.FieldPassword:
		return strongPassword(id.Password)
	case domain.FieldConfirmPassword:
		return strongPassword(id.ConfirmPassword) && id.ConfirmPassword == id.Password
	default:
		return true
	}
}

// strongPassword requires at least 8 characters with at least one uppercase
// letter, one digit, and one symbol from the punctuation set.
func strongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && digit && symbol
}
