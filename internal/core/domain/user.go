package domain

import (
	"strings"
	"time"
)

const (
	NameMaxLength     = 50
	EmailMaxLength    = 255
	PasswordMinLength = 6
)

// User models an identity that can log in, post and follow other users.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	RememberDigest string    `json:"-"`
	SessionToken   string    `json:"-"`
	Admin          bool      `json:"admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NormalizeEmail returns the canonical (lower-cased) form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameAs reports whether u and other refer to the same stored identity.
func (u *User) SameAs(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	return u.ID != "" && u.ID == other.ID
}

// NewUserInput carries the attributes needed to register a user.
type NewUserInput struct {
	Name                 string `json:"name"                  validate:"notblank,max=50"`
	Email                string `json:"email"                 validate:"notblank,max=255,mailbox"`
	Password             string `json:"password"              validate:"notblank,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

// Validate checks the input against the user model constraints.
func (in NewUserInput) Validate() error {
	return validateStruct(in, ErrInvalidUser)
}
