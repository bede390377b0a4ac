package postgres

import (
	"context"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the repository.TaskRepository interface using GORM.
// Every statement filters on both id and user_id so ownership is enforced by
// the query itself, never by a separate check.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create persists a new task for its owner.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	// Propagate the generated ID and timestamps back onto the entity.
	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindByOwner retrieves all tasks belonging to a user, newest first.
func (repo *taskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tasks by owner")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByIDAndOwner retrieves a single task matching both id and owner.
func (repo *taskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id and owner")
	}

	return toTaskDomain(&taskM), nil
}

// Update applies a partial patch to the task matching both id and owner in a
// single scoped UPDATE, then reloads the row for the caller.
func (repo *taskRepository) Update(ctx context.Context, id, ownerID uuid.UUID, patch repository.TaskPatch) (*entity.Task, error) {
	if patch.IsEmpty() {
		// Nothing to change; still verify existence under the owner scope.
		return repo.FindByIDAndOwner(ctx, id, ownerID)
	}

	changes := map[string]any{}
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.Description != nil {
		changes["description"] = *patch.Description
	}
	if patch.Completed != nil {
		changes["completed"] = *patch.Completed
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(changes)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTaskNotFound
	}

	return repo.FindByIDAndOwner(ctx, id, ownerID)
}

// Delete removes the task matching both id and owner.
func (repo *taskRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// toTaskDomain maps the persistence model to a pure domain entity.
func toTaskDomain(taskM *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:          taskM.ID,
		Title:       taskM.Title,
		Description: taskM.Description,
		Completed:   taskM.Completed,
		OwnerID:     taskM.UserID,
		CreatedAt:   taskM.CreatedAt,
		UpdatedAt:   taskM.UpdatedAt,
	}
}

// fromTaskDomain maps a domain entity to the GORM persistence model.
func fromTaskDomain(task *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		UserID:      task.OwnerID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
