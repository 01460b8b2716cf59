// Package model contains the document-store representations of the domain
// entities, kept separate so store tags never leak into the domain layer.
package model

import (
	"time"

	"motion/internal/domain/entity"
)

// ProfileDoc is the `users/{id}` document.
type ProfileDoc struct {
	Email     string    `firestore:"email"`
	LastLogin time.Time `firestore:"last_login_date"`
}

// ToEntity converts the document back to the domain identity.
func (d *ProfileDoc) ToEntity(id string) *entity.Identity {
	return &entity.Identity{
		ID:          id,
		Email:       d.Email,
		LastLoginAt: d.LastLogin,
	}
}

// NewProfileDoc builds the document for an identity.
func NewProfileDoc(identity *entity.Identity) *ProfileDoc {
	return &ProfileDoc{
		Email:     identity.Email,
		LastLogin: identity.LastLoginAt,
	}
}
