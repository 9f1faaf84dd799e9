package domain

import "time"

// Account holds the credentials of someone allowed to sign in to the console.
type Account struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Avatar       *string
	PasswordHash string
}

// IsAdmin reports whether the account carries the admin role.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// Session represents an issued access token that has not been revoked.
type Session struct {
	ID        string
	AccountID string
	ExpiresAt time.Time
	IssuedAt  time.Time
}
