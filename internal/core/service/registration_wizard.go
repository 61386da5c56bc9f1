package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
)

// WizardPhase is the registration wizard's input phase.
type WizardPhase int

const (
	PhaseIdentity WizardPhase = iota
	PhasePets
)

// MessageKind classifies the wizard's transient feedback banner.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageError
	MessageSuccess
)

const (
	defaultMessageTTL = 3 * time.Second
	defaultResetDelay = 2 * time.Second
)

// WizardOption customizes a RegistrationWizard.
type WizardOption func(*RegistrationWizard)

// WithMessageTTL overrides how long transient error messages stay visible.
func WithMessageTTL(d time.Duration) WizardOption {
	return func(w *RegistrationWizard) { w.messageTTL = d }
}

// WithResetDelay overrides how long the success message is shown before the
// wizard resets and signals the host to close.
func WithResetDelay(d time.Duration) WizardOption {
	return func(w *RegistrationWizard) { w.resetDelay = d }
}

// WithCloseSignal registers the host callback fired after a successful
// submission has been displayed and the wizard has reset.
func WithCloseSignal(fn func()) WizardOption {
	return func(w *RegistrationWizard) { w.onClose = fn }
}

// RegistrationWizard is the two-phase registration flow: Identity collects
// and validates the owner's details, Pets collects one or more pets.
// Switching phases never discards entered data; all timers are owned by the
// wizard and stopped by Close.
type RegistrationWizard struct {
	gateway   ports.AuthGateway
	validator *identityValidator
	log       zerolog.Logger

	messageTTL time.Duration
	resetDelay time.Duration
	onClose    func()

	mu          sync.Mutex
	phase       WizardPhase
	identity    domain.RegistrationIdentity
	fieldErrors map[string]bool
	pets        []domain.PetEntry
	submitting  bool
	message     string
	messageKind MessageKind
	msgGen      int
	msgTimer    *time.Timer
	resetTimer  *time.Timer
	closed      bool
}

func NewRegistrationWizard(gateway ports.AuthGateway, log zerolog.Logger, opts ...WizardOption) *RegistrationWizard {
	w := &RegistrationWizard{
		gateway:     gateway,
		validator:   newIdentityValidator(),
		log:         log,
		messageTTL:  defaultMessageTTL,
		resetDelay:  defaultResetDelay,
		fieldErrors: make(map[string]bool),
		pets:        []domain.PetEntry{{}},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Phase returns the current input phase.
func (w *RegistrationWizard) Phase() WizardPhase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// SetIdentityField records a keystroke-level edit. If the field was flagged
// as invalid, only that field is re-validated; the rest of the form is left
// alone until the next phase transition attempt.
func (w *RegistrationWizard) SetIdentityField(field, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch field {
	case domain.FieldFullName:
		w.identity.FullName = value
	case domain.FieldNationalID:
		w.identity.NationalID = value
	case domain.FieldEmail:
		w.identity.Email = value
	case domain.FieldPhone:
		w.identity.Phone = value
	case domain.FieldPassword:
		w.identity.Password = value
	case domain.FieldConfirmPassword:
		w.identity.ConfirmPassword = value
	default:
		return
	}

	if w.fieldErrors[field] && w.validator.validateField(&w.identity, field) {
		delete(w.fieldErrors, field)
	}
}

// Identity returns a copy of the identity form state.
func (w *RegistrationWizard) Identity() domain.RegistrationIdentity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.identity
}

// FieldErrors returns the currently flagged identity fields.
func (w *RegistrationWizard) FieldErrors() map[string]bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]bool, len(w.fieldErrors))
	for k, v := range w.fieldErrors {
		out[k] = v
	}
	return out
}

// AdvanceToPets attempts the Identity → Pets transition. The whole form is
// validated; every failing field is flagged simultaneously and the wizard
// stays in Identity until all six rules pass.
func (w *RegistrationWizard) AdvanceToPets() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase == PhasePets {
		return true
	}

	failed := w.validator.validateAll(&w.identity)
	if len(failed) > 0 {
		w.fieldErrors = failed
		w.setTransientMessageLocked(MessageError, "Please correct the highlighted fields.")
		return false
	}

	w.fieldErrors = make(map[string]bool)
	w.phase = PhasePets
	return true
}

// BackToIdentity returns to the identity phase. Pets already entered are
// retained across the switch.
func (w *RegistrationWizard) BackToIdentity() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.phase = PhaseIdentity
}

// Pets returns a copy of the ordered pet list.
func (w *RegistrationWizard) Pets() []domain.PetEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.PetEntry, len(w.pets))
	copy(out, w.pets)
	return out
}

// AddPetEntry appends another empty entry. There is no validation gate on
// adding; only submission checks the list.
func (w *RegistrationWizard) AddPetEntry() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pets = append(w.pets, domain.PetEntry{})
}

// UpdatePet replaces the entry at index i.
func (w *RegistrationWizard) UpdatePet(i int, pet domain.PetEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.pets) {
		return
	}
	w.pets[i] = pet
}

// Submit sends the registration when at least one pet has a name and a
// species. On success the wizard shows its success message, then resets to
// a fresh Identity phase and signals the host to close. On failure the
// entered data stays intact for correction.
func (w *RegistrationWizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return domain.ErrSubmitInFlight
	}

	hasValidPet := false
	for _, p := range w.pets {
		if p.HasIdentity() {
			hasValidPet = true
			break
		}
	}
	if !hasValidPet {
		w.setTransientMessageLocked(MessageError, "Add at least one pet with a name and species.")
		w.mu.Unlock()
		return domain.ErrValidation
	}

	req := &ports.RegistrationRequest{Identity: w.identity}
	for _, p := range w.pets {
		if p != (domain.PetEntry{}) {
			req.Pets = append(req.Pets, p)
		}
	}
	w.submitting = true
	w.mu.Unlock()

	res, err := w.gateway.Register(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		w.setTransientMessageLocked(MessageError, registrationFailureMessage(err))
		w.log.Warn().Err(err).Msg("registration failed")
		return err
	}

	w.log.Info().Str("username", res.Username).Msg("registration succeeded")
	w.messageKind = MessageSuccess
	w.message = "Account created successfully! You can now log in."
	w.msgGen++

	if w.resetTimer != nil {
		w.resetTimer.Stop()
	}
	w.resetTimer = time.AfterFunc(w.resetDelay, w.resetAndClose)
	return nil
}

// Message returns the transient feedback banner, if any.
func (w *RegistrationWizard) Message() (string, MessageKind) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.message, w.messageKind
}

// Submitting reports whether a submission is in flight.
func (w *RegistrationWizard) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// Close stops every pending timer. A wizard must be closed when its host is
// torn down, otherwise a late timer would fire into a dead component.
func (w *RegistrationWizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.msgTimer != nil {
		w.msgTimer.Stop()
	}
	if w.resetTimer != nil {
		w.resetTimer.Stop()
	}
}

// setTransientMessageLocked shows an error banner that clears itself after
// messageTTL. Callers hold w.mu.
func (w *RegistrationWizard) setTransientMessageLocked(kind MessageKind, msg string) {
	w.message = msg
	w.messageKind = kind
	w.msgGen++
	gen := w.msgGen

	if w.msgTimer != nil {
		w.msgTimer.Stop()
	}
	w.msgTimer = time.AfterFunc(w.messageTTL, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed || gen != w.msgGen {
			return
		}
		w.message = ""
		w.messageKind = MessageNone
	})
}

// resetAndClose fires after the success message has been displayed.
func (w *RegistrationWizard) resetAndClose() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.phase = PhaseIdentity
	w.identity = domain.RegistrationIdentity{}
	w.fieldErrors = make(map[string]bool)
	w.pets = []domain.PetEntry{{}}
	w.message = ""
	w.messageKind = MessageNone
	onClose := w.onClose
	w.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

func registrationFailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return "An account with that DNI already exists."
	case errors.Is(err, domain.ErrValidation):
		return "The service rejected the registration data."
	case errors.Is(err, domain.ErrNetwork):
		return "Cannot reach the clinic service. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}
