package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo: params.TaskRepo,
		logger:   params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List fetches all tasks owned by the authenticated identity.
func (srv *taskService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// Create validates the title and persists a task owned by the authenticated
// identity. Any client-supplied owner is ignored by construction: the entity's
// OwnerID is set here and nowhere else.
func (srv *taskService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrTitleRequired.WrapMessage("task validation failed")
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		OwnerID:     ownerID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Any("taskID", task.ID), slog.Any("ownerID", ownerID))

	return task, nil
}

// Get fetches a single task, owner-scoped.
func (srv *taskService) Get(ctx context.Context, ownerID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task lookup failed")
		}

		srv.log(ctx).Error("Failed to get task", slog.Any("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get task")
	}

	return task, nil
}

// Update applies only the fields present in the request. A title explicitly
// set to blank is rejected rather than silently emptied.
func (srv *taskService) Update(ctx context.Context, ownerID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return nil, domainerrors.ErrTitleRequired.WrapMessage("task validation failed")
	}

	patch := repository.TaskPatch{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	}

	task, err := srv.taskRepo.Update(ctx, taskID, ownerID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task update failed")
		}

		srv.log(ctx).Error("Failed to update task", slog.Any("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update task")
	}

	srv.log(ctx).Debug("Task updated", slog.Any("taskID", taskID), slog.Any("ownerID", ownerID))

	return task, nil
}

// Delete removes a task, owner-scoped.
func (srv *taskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if err := srv.taskRepo.Delete(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("task delete failed")
		}

		srv.log(ctx).Error("Failed to delete task", slog.Any("taskID", taskID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.Any("taskID", taskID), slog.Any("ownerID", ownerID))

	return nil
}
