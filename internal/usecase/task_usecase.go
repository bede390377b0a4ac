package usecase

import (
	"context"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data accepted when creating a task. The owner
// never comes from the client; it is the authenticated identity.
type CreateTaskInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateTaskInput defines a partial task update. Nil fields were absent from
// the request and leave the stored value unchanged.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskUsecase defines the interface for task business operations. Every
// operation takes the authenticated owner id and only ever touches that
// owner's tasks.
type TaskUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	Get(ctx context.Context, ownerID, taskID uuid.UUID) (*entity.Task, error)
	Update(ctx context.Context, ownerID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
}
