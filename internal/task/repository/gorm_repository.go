package repository

import (
	"errors"
	"time"

	"mtasks-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByList(listID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("list_id = ?", listID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByIDAndList(taskID, listID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND list_id = ?", taskID, listID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) UpdateFields(taskID, listID string, fields map[string]interface{}) (bool, error) {
	fields["updated_at"] = time.Now()
	res := r.db.Model(&domain.Task{}).
		Where("id = ? AND list_id = ?", taskID, listID).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormTaskRepository) Delete(taskID, listID string) (bool, error) {
	res := r.db.Where("id = ? AND list_id = ?", taskID, listID).Delete(&domain.Task{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
