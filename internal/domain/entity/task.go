package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a unit of work owned by exactly one user. Every read and
// write of a task is scoped by OwnerID; a task belonging to another user is
// indistinguishable from a nonexistent one.
type Task struct {
	ID          uuid.UUID // The unique identifier for the task.
	Title       string    // Required, non-empty.
	Description string    // Optional, defaults to the empty string.
	Completed   bool      // Defaults to false.
	OwnerID     uuid.UUID // The owning user. Set from the authenticated identity, never client-supplied.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
