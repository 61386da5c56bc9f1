package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/api/metrics"
	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
	"github.com/vetclinic/clinic-client/internal/core/service"
)

// RegistrationHandler drives the registration wizard through both phases
// for a one-shot facade submission. Interactive hosts embed the wizard
// directly; this endpoint exists for the local UI's form post.
type RegistrationHandler struct {
	gateway ports.AuthGateway
	log     zerolog.Logger
}

func NewRegistrationHandler(gateway ports.AuthGateway, log zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{gateway: gateway, log: log}
}

type petRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
}

type registrationRequest struct {
	FullName        string       `json:"fullName"`
	NationalID      string       `json:"nationalId"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Password        string       `json:"password"`
	ConfirmPassword string       `json:"confirmPassword"`
	Pets            []petRequest `json:"pets"`
}

type registrationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// Register runs a full registration: identity validation, pets check, one
// gateway call. Field-level failures answer 400 with the flagged fields.
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	w := service.NewRegistrationWizard(h.gateway, h.log)
	defer w.Close()

	w.SetIdentityField(domain.FieldFullName, req.FullName)
	w.SetIdentityField(domain.FieldNationalID, req.NationalID)
	w.SetIdentityField(domain.FieldEmail, req.Email)
	w.SetIdentityField(domain.FieldPhone, req.Phone)
	w.SetIdentityField(domain.FieldPassword, req.Password)
	w.SetIdentityField(domain.FieldConfirmPassword, req.ConfirmPassword)

	if !w.AdvanceToPets() {
		metrics.RegistrationsTotal.WithLabelValues("validation").Inc()
		msg, _ := w.Message()
		return c.JSON(http.StatusBadRequest, registrationErrorResponse{
			Error:  msg,
			Fields: sortedFields(w.FieldErrors()),
		})
	}

	for i, p := range req.Pets {
		if i > 0 {
			w.AddPetEntry()
		}
		w.UpdatePet(i, domain.PetEntry{
			Name:    p.Name,
			Species: p.Species,
			Breed:   p.Breed,
			Age:     p.Age,
			Gender:  p.Gender,
		})
	}

	if err := w.Submit(c.Request().Context()); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registrationResult(err)).Inc()
		if errors.Is(err, domain.ErrValidation) {
			msg, _ := w.Message()
			return c.JSON(http.StatusBadRequest, registrationErrorResponse{Error: msg})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, map[string]string{
		"message":  "Account created successfully! You can now log in.",
		"username": req.NationalID,
	})
}

func sortedFields(flags map[string]bool) []string {
	fields := make([]string, 0, len(flags))
	for f := range flags {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func registrationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrNetwork):
		return "network"
	default:
		return "error"
	}
}
