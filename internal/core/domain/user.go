package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTempPasswordExpired = errors.New("temporary password expired")
)

// User models an account in the platform. Accounts are never physically
// removed; soft deletion happens at the persistence layer.
type User struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"-"`
	RoleName     string `json:"role"`

	// TemporaryPassword marks a reset-flow credential that is only usable
	// until TempPasswordExpiresAt.
	TemporaryPassword     bool       `json:"temporary_password,omitempty"`
	TempPasswordExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CredentialUsable reports whether the account's credential may still be
// used to authenticate at the given instant. A temporary password past its
// expiry renders the account unauthenticatable.
func (u *User) CredentialUsable(now time.Time) bool {
	if !u.TemporaryPassword {
		return true
	}
	return u.TempPasswordExpiresAt == nil || now.Before(*u.TempPasswordExpiresAt)
}

// Principal is the request-scoped projection of a User attached to the
// security context after authentication. It is rebuilt from current store
// state on every request, never cached across requests.
type Principal struct {
	UserID   uint
	Username string
	Role     Role
}
