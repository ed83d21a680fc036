package handler

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/devlink-app/devlink/internal/domain"
	"github.com/devlink-app/devlink/internal/service"
)

// AuthHandler handles registration and authentication requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister registers a new user and returns an identity token.
// POST /users
// Request:  {"name":"...","email":"...","password":"..."}
// Response: {"token":"..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeValidationErrors(w, "Invalid request body")
		return
	}

	var msgs []string
	if req.Name == "" {
		msgs = append(msgs, "Name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		msgs = append(msgs, "Please include a valid email")
	}
	if len(req.Password) < 6 {
		msgs = append(msgs, "Please enter a password with 6 or more characters")
	}
	if len(msgs) > 0 {
		writeValidationErrors(w, msgs...)
		return
	}

	token, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeValidationErrors(w, "User already exists")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeValidationErrors(w, err.Error())
			return
		}
		writeServerError(w, "register user", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// HandleLogin verifies credentials and returns an identity token.
// POST /auth
// Request:  {"email":"...","password":"..."}
// Response: {"token":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeValidationErrors(w, "Invalid request body")
		return
	}

	var msgs []string
	if req.Email == "" {
		msgs = append(msgs, "Please include a valid email")
	}
	if req.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	if len(msgs) > 0 {
		writeValidationErrors(w, msgs...)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeValidationErrors(w, "Invalid credentials")
			return
		}
		writeServerError(w, "login user", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// HandleMe returns the authenticated user, without the credential hash.
// GET /auth
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeMsg(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}
