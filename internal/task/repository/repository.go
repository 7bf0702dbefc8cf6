package repository

import "mtasks-backend/internal/task/domain"

// TaskRepository defines data access for tasks. Every lookup and mutation
// pins the list id in its predicate; callers are expected to have resolved
// the list through its owner gate first.
type TaskRepository interface {
	// Create persists a new task
	Create(task *domain.Task) error

	// FindByList returns the list's tasks, newest first
	FindByList(listID string) ([]*domain.Task, error)

	// FindByIDAndList returns nil, nil when the task is absent or belongs
	// to a different list
	FindByIDAndList(taskID, listID string) (*domain.Task, error)

	// UpdateFields applies the given columns in a single list-scoped
	// UPDATE and reports whether a row matched
	UpdateFields(taskID, listID string, fields map[string]interface{}) (bool, error)

	// Delete removes the task in a single list-scoped DELETE and reports
	// whether a row matched
	Delete(taskID, listID string) (bool, error)
}
