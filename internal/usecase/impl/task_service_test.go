package impl

import (
	"context"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	mockRepo "taskhub/internal/mocks/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taskServiceFixtures holds all test dependencies for task service tests.
type taskServiceFixtures struct {
	service  usecase.TaskUsecase
	taskRepo *mockRepo.MockTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	taskRepo := mockRepo.NewMockTaskRepository(t)

	service := NewTaskService(TaskServiceParams{
		TaskRepo: taskRepo,
		Logger:   newDiscardLogger(),
	})

	return taskServiceFixtures{
		service:  service,
		taskRepo: taskRepo,
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestTaskService_Create_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			assert.Equal(t, "Buy milk", task.Title)
			assert.Equal(t, "2 liters", task.Description)
			assert.False(t, task.Completed)
			assert.Equal(t, ownerID, task.OwnerID)
			task.ID = uuid.New()
		}).
		Return(nil)

	task, err := fx.service.Create(ctx, ownerID, &usecase.CreateTaskInput{
		Title:       "Buy milk",
		Description: "2 liters",
	})

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, ownerID, task.OwnerID)
}

func TestTaskService_Create_TitleRequired(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "empty", title: ""},
		{name: "whitespace only", title: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTaskService(t)

			task, err := fx.service.Create(context.Background(), uuid.New(), &usecase.CreateTaskInput{
				Title: tt.title,
			})

			require.Error(t, err)
			assert.Nil(t, task)
			assert.ErrorIs(t, err, domainerrors.ErrTitleRequired)
		})
	}
}

func TestTaskService_Create_ForcesOwner(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			// The owner always comes from the authenticated identity.
			assert.Equal(t, ownerID, task.OwnerID)
		}).
		Return(nil)

	_, err := fx.service.Create(ctx, ownerID, &usecase.CreateTaskInput{Title: "Task"})

	require.NoError(t, err)
}

func TestTaskService_List_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	stored := []*entity.Task{
		{ID: uuid.New(), Title: "Second", OwnerID: ownerID},
		{ID: uuid.New(), Title: "First", OwnerID: ownerID},
	}

	fx.taskRepo.EXPECT().FindByOwner(ctx, ownerID).Return(stored, nil)

	tasks, err := fx.service.List(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, stored, tasks)
}

func TestTaskService_List_Empty(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().FindByOwner(ctx, ownerID).Return([]*entity.Task{}, nil)

	tasks, err := fx.service.List(ctx, ownerID)

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_Get_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().
		FindByIDAndOwner(ctx, taskID, ownerID).
		Return(nil, repository.ErrTaskNotFound)

	task, err := fx.service.Get(ctx, ownerID, taskID)

	require.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_Update_PartialPatch(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()
	updated := &entity.Task{
		ID:        taskID,
		Title:     "Original",
		Completed: true,
		OwnerID:   ownerID,
	}

	fx.taskRepo.EXPECT().
		Update(ctx, taskID, ownerID, repository.TaskPatch{Completed: boolPtr(true)}).
		Return(updated, nil)

	task, err := fx.service.Update(ctx, ownerID, taskID, &usecase.UpdateTaskInput{
		Completed: boolPtr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, task)
}

func TestTaskService_Update_BlankTitleRejected(t *testing.T) {
	fx := createTestTaskService(t)

	task, err := fx.service.Update(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateTaskInput{
		Title: strPtr("   "),
	})

	require.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrTitleRequired)
}

func TestTaskService_Update_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().
		Update(ctx, taskID, ownerID, repository.TaskPatch{Title: strPtr("New title")}).
		Return(nil, repository.ErrTaskNotFound)

	task, err := fx.service.Update(ctx, ownerID, taskID, &usecase.UpdateTaskInput{
		Title: strPtr("New title"),
	})

	require.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_Delete_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().Delete(ctx, taskID, ownerID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, ownerID, taskID))
}

func TestTaskService_Delete_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().Delete(ctx, taskID, ownerID).Return(repository.ErrTaskNotFound)

	err := fx.service.Delete(ctx, ownerID, taskID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_Delete_StoreFailure(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().Delete(ctx, taskID, ownerID).Return(errors.New("connection reset"))

	err := fx.service.Delete(ctx, ownerID, taskID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrTaskNotFound)
}
