// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Identity is the authenticated user record that scopes every location
// sample and profile document. It is created on a successful sign-in or
// sign-up and mutated (LastLoginAt only) on each subsequent sign-in.
type Identity struct {
	ID          string    `json:"id"`              // Provider-assigned unique identifier.
	Email       string    `json:"email"`           // Login email address.
	LastLoginAt time.Time `json:"last_login_date"` // Timestamp of the most recent sign-in.
}

// LoginHistory is the set of email addresses previously used to sign in on
// this installation. It grows monotonically and keeps first-seen order so
// the display stays stable across sign-ins.
type LoginHistory struct {
	Emails []string `json:"emails"`
}

// Contains reports whether the history already records the given email.
func (h *LoginHistory) Contains(email string) bool {
	for _, e := range h.Emails {
		if e == email {
			return true
		}
	}

	return false
}

// Append records a new email, keeping existing entries untouched.
// Appending an email that is already present is a no-op.
func (h *LoginHistory) Append(email string) {
	if h.Contains(email) {
		return
	}
	h.Emails = append(h.Emails, email)
}
