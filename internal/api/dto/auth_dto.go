package dto

import (
	"time"

	"github.com/spec-kit/admin-console/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountResponse describes the signed-in console account.
type AccountResponse struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	Avatar *string     `json:"avatar"`
}

// NewAccountResponse maps an account without its credentials.
func NewAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role, Avatar: a.Avatar}
}
