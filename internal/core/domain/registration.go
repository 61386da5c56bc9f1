package domain

// Field names of the registration identity form. The national ID doubles as
// the backend username, so it travels on the wire as "username".
const (
	FieldFullName        = "fullName"
	FieldNationalID      = "nationalId"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// IdentityFields lists the identity form fields in display order.
var IdentityFields = []string{
	FieldFullName,
	FieldNationalID,
	FieldEmail,
	FieldPhone,
	FieldPassword,
	FieldConfirmPassword,
}

// RegistrationIdentity holds the owner's identity as entered in the first
// wizard phase. Validation rules live in the service layer.
type RegistrationIdentity struct {
	FullName        string `json:"fullName" validate:"notblank"`
	NationalID      string `json:"username" validate:"national_id"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"phone_loose"`
	Password        string `json:"password" validate:"password_strength"`
	ConfirmPassword string `json:"confirmPassword" validate:"password_strength,eqfield=Password"`
}

// PetEntry is one pet under a registration submission. A submission needs at
// least one entry with non-empty name and species; the remaining fields are
// free-form.
type PetEntry struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`
	Age     string `json:"age,omitempty"`
	Gender  string `json:"gender,omitempty"`
}

// HasIdentity reports whether the entry carries the minimum data required
// for a submission to be accepted.
func (p PetEntry) HasIdentity() bool {
	return p.Name != "" && p.Species != ""
}
