package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no task matches both the id and the owner.
// Callers must not distinguish "does not exist" from "owned by someone else".
var ErrTaskNotFound = errors.New("task not found")

// TaskPatch describes a partial task update. Only non-nil fields are applied;
// nil fields leave the stored value untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch contains no changes.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// TaskRepository defines the standard operations for task persistence.
// Every lookup and mutation is scoped by owner in the same query, so there is
// no window between an ownership check and the operation itself.
type TaskRepository interface {
	// Create persists a new task and fills in the generated id and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// FindByOwner retrieves all tasks belonging to the owner, newest first.
	// An empty slice is a valid, non-error result.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// FindByIDAndOwner retrieves a single task matching both id and owner.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error)

	// Update applies a partial patch to the task matching both id and owner
	// and returns the updated task. Returns ErrTaskNotFound when nothing matched.
	Update(ctx context.Context, id, ownerID uuid.UUID, patch TaskPatch) (*entity.Task, error)

	// Delete removes the task matching both id and owner.
	// Returns ErrTaskNotFound when nothing matched.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
