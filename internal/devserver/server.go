// Package devserver is an in-memory stand-in for the clinic backend, used
// for local development and integration testing of the client. It speaks
// the same wire contract the client's gateway consumes: Basic-auth
// GET /login, JSON POST /register, POST /logout.
package devserver

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	FullName     string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Roles        string
}

// Server holds the fake backend's state. Accounts registered through the
// API get ROLE_USER; admins are seeded with SeedAdmin.
type Server struct {
	mu       sync.Mutex
	accounts map[string]account
	log      zerolog.Logger
}

func New(log zerolog.Logger) *Server {
	return &Server{accounts: make(map[string]account), log: log}
}

// SeedAdmin registers an administrator account directly, bypassing the
// registration contract.
func (s *Server) SeedAdmin(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[username] = account{
		FullName:     "Clinic Administrator",
		Username:     username,
		PasswordHash: string(hash),
		Roles:        "ROLE_ADMIN,ROLE_USER",
	}
	return nil
}

// Router returns the Echo instance serving the fake API under /api/v1.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())

	v1 := e.Group("/api/v1")
	v1.GET("/login", s.login)
	v1.POST("/register", s.register)
	v1.POST("/logout", s.logout)

	return e
}

type userResponse struct {
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Roles    string `json:"roles,omitempty"`
}

func (s *Server) login(c echo.Context) error {
	username, password, ok := c.Request().BasicAuth()
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
	}

	s.mu.Lock()
	acc, exists := s.accounts[username]
	s.mu.Unlock()

	if !exists || bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	s.log.Info().Str("username", username).Msg("devserver login")
	return c.JSON(http.StatusOK, userResponse{Username: acc.Username, Roles: acc.Roles})
}

type registerRequest struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Pets            []struct {
		Name    string `json:"name"`
		Species string `json:"species"`
	} `json:"pets"`
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}
	if req.Password != req.ConfirmPassword {
		return echo.NewHTTPError(http.StatusBadRequest, "passwords do not match")
	}
	if len(req.Pets) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one pet is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Username]; exists {
		s.mu.Unlock()
		return echo.NewHTTPError(http.StatusConflict, "user already exists")
	}
	s.accounts[req.Username] = account{
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Roles:        "ROLE_USER",
	}
	s.mu.Unlock()

	s.log.Info().Str("username", req.Username).Int("pets", len(req.Pets)).Msg("devserver registration")
	return c.JSON(http.StatusCreated, userResponse{Username: req.Username, FullName: req.FullName})
}

func (s *Server) logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
