package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for the task endpoints. Every route it serves
// sits behind the auth gate, so the owner id is always on the context.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// taskResponse is the wire shape of a single task.
type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskResponse(task *entity.Task) taskResponse {
	return taskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		OwnerID:     task.OwnerID.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ownerID pulls the authenticated identity off the context.
func ownerID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// taskID parses the :id path parameter. A non-UUID id is indistinguishable
// from a missing task to the caller's logic, but gets its own 400 message.
func taskID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidTaskID
	}

	return id, nil
}

// List returns all tasks owned by the caller, newest first.
func (h *TaskHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.List(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return response.JSON(c, http.StatusOK, out)
}

// Create stores a new task for the caller.
func (h *TaskHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateTaskInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrInvalidJSON
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrTitleRequired
	}

	task, err := h.uc.Create(c.Request().Context(), owner, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toTaskResponse(task))
}

// Get returns one task by id, scoped to the caller.
func (h *TaskHandler) Get(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.uc.Get(c.Request().Context(), owner, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toTaskResponse(task))
}

// Update applies a partial update to one task and returns the stored result.
func (h *TaskHandler) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateTaskInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrInvalidJSON
	}

	task, err := h.uc.Update(c.Request().Context(), owner, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toTaskResponse(task))
}

// Delete removes one task. Success carries no body.
func (h *TaskHandler) Delete(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), owner, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
