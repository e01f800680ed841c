// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered pen pal together with their two mailboxes.
type User struct {
	ID              uuid.UUID   // Store-assigned identifier.
	Name            string      // Login handle; looked up by exact match.
	Secret          string      // Plaintext password, compared byte-for-byte at login.
	BirthDate       string      // Free-form birth date as supplied at registration.
	Age             int         // Self-declared age.
	SentLetters     []uuid.UUID // Letters this user wrote, in submission order.
	ReceivedLetters []uuid.UUID // Replies addressed to this user, in link order.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser builds an account with empty mailboxes.
func NewUser(name, secret, birthDate string, age int) *User {
	return &User{
		Name:            name,
		Secret:          secret,
		BirthDate:       birthDate,
		Age:             age,
		SentLetters:     []uuid.UUID{},
		ReceivedLetters: []uuid.UUID{},
	}
}

// SecretMatches compares the supplied secret with the stored one.
func (u *User) SecretMatches(secret string) bool {
	return u.Secret == secret
}

// UserPatch carries the account fields an update may change. Nil fields are left untouched.
type UserPatch struct {
	Name      *string
	Secret    *string
	BirthDate *string
	Age       *int
}

// Apply copies every non-nil field of the patch onto the user.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Secret != nil {
		u.Secret = *p.Secret
	}
	if p.BirthDate != nil {
		u.BirthDate = *p.BirthDate
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Secret == nil && p.BirthDate == nil && p.Age == nil
}
