package usecase

import "mtasks-backend/internal/task/domain"

// TaskUsecase defines the business logic for tasks. Every operation walks
// the full ownership chain: the list is resolved through its owner gate
// before any task row is touched, and the task predicate additionally pins
// the list id. A failure anywhere along the chain is reported as not-found.
type TaskUsecase interface {
	// CreateTask creates a task under the owner's list
	CreateTask(listID, ownerID string, input CreateTaskInput) (*domain.Task, error)

	// GetTasks returns the list's tasks, newest first
	GetTasks(listID, ownerID string) ([]*domain.Task, error)

	// GetTaskByID returns a single task
	GetTaskByID(taskID, listID, ownerID string) (*domain.Task, error)

	// UpdateTask applies the patch field by field
	UpdateTask(taskID, listID, ownerID string, patch TaskPatch) (*domain.Task, error)

	// DeleteTask removes the task
	DeleteTask(taskID, listID, ownerID string) error
}

// CreateTaskInput carries the acceptable fields for a new task. Priority
// defaults to medium when empty; DueDate must be RFC 3339 when supplied.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *string
}

// TaskPatch is the allow-listed partial update for a task. An empty
// DueDate string clears the date.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}
