package usecase

import (
	"time"

	"mtasks-backend/internal/apperror"
	listrepo "mtasks-backend/internal/list/repository"
	"mtasks-backend/internal/task/domain"
	"mtasks-backend/internal/task/repository"
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
	listRepo listrepo.ListRepository
}

func NewTaskUsecase(taskRepo repository.TaskRepository, listRepo listrepo.ListRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		listRepo: listRepo,
	}
}

// resolveList is the first half of the ownership chain. It must run before
// any task access so that task errors cannot leak the existence of another
// user's list.
func (u *taskUsecase) resolveList(listID, ownerID string) error {
	list, err := u.listRepo.FindByIDAndOwner(listID, ownerID)
	if err != nil {
		return err
	}
	if list == nil {
		return apperror.ErrNotFound
	}
	return nil
}

func (u *taskUsecase) CreateTask(listID, ownerID string, input CreateTaskInput) (*domain.Task, error) {
	if err := u.resolveList(listID, ownerID); err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, apperror.NewValidation("title", "is required")
	}

	priority := domain.PriorityMedium
	if input.Priority != "" {
		priority = domain.Priority(input.Priority)
		if !priority.Valid() {
			return nil, apperror.NewValidation("priority", "must be one of low, medium, high")
		}
	}

	task := &domain.Task{
		ListID:      listID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
	}

	if input.DueDate != nil && *input.DueDate != "" {
		due, err := time.Parse(time.RFC3339, *input.DueDate)
		if err != nil {
			return nil, apperror.NewValidation("due_date", "must be a valid RFC 3339 date")
		}
		task.DueDate = &due
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTasks(listID, ownerID string) ([]*domain.Task, error) {
	if err := u.resolveList(listID, ownerID); err != nil {
		return nil, err
	}
	return u.taskRepo.FindByList(listID)
}

func (u *taskUsecase) GetTaskByID(taskID, listID, ownerID string) (*domain.Task, error) {
	if err := u.resolveList(listID, ownerID); err != nil {
		return nil, err
	}

	task, err := u.taskRepo.FindByIDAndList(taskID, listID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.ErrNotFound
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(taskID, listID, ownerID string, patch TaskPatch) (*domain.Task, error) {
	if err := u.resolveList(listID, ownerID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperror.NewValidation("title", "must not be empty")
		}
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Completed != nil {
		fields["completed"] = *patch.Completed
	}
	if patch.Priority != nil {
		priority := domain.Priority(*patch.Priority)
		if !priority.Valid() {
			return nil, apperror.NewValidation("priority", "must be one of low, medium, high")
		}
		fields["priority"] = priority
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			fields["due_date"] = nil
		} else {
			due, err := time.Parse(time.RFC3339, *patch.DueDate)
			if err != nil {
				return nil, apperror.NewValidation("due_date", "must be a valid RFC 3339 date")
			}
			fields["due_date"] = due
		}
	}

	if len(fields) > 0 {
		matched, err := u.taskRepo.UpdateFields(taskID, listID, fields)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, apperror.ErrNotFound
		}
	}

	task, err := u.taskRepo.FindByIDAndList(taskID, listID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.ErrNotFound
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(taskID, listID, ownerID string) error {
	if err := u.resolveList(listID, ownerID); err != nil {
		return err
	}

	matched, err := u.taskRepo.Delete(taskID, listID)
	if err != nil {
		return err
	}
	if !matched {
		return apperror.ErrNotFound
	}
	return nil
}
