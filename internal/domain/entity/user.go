// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a single account. Email is the login identifier and is
// stored trimmed and lowercased so the database unique index enforces
// case-insensitive uniqueness.
type User struct {
	ID           uuid.UUID // The unique identifier for the account, generated at creation.
	Email        string    // The normalized login email.
	PasswordHash string    // The bcrypt hash of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
