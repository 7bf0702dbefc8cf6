package repository

import (
	"errors"
	"time"

	"mtasks-backend/internal/list/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormListRepository implements ListRepository using GORM
type gormListRepository struct {
	db *gorm.DB
}

func NewGormListRepository(db *gorm.DB) ListRepository {
	return &gormListRepository{db: db}
}

func (r *gormListRepository) Create(list *domain.List) error {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	list.CreatedAt = time.Now()
	list.UpdatedAt = time.Now()
	return r.db.Create(list).Error
}

func (r *gormListRepository) FindByOwner(ownerID string) ([]*domain.List, error) {
	var lists []*domain.List
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

func (r *gormListRepository) FindByIDAndOwner(listID, ownerID string) (*domain.List, error) {
	var list domain.List
	err := r.db.Where("id = ? AND owner_id = ?", listID, ownerID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *gormListRepository) UpdateFields(listID, ownerID string, fields map[string]interface{}) (bool, error) {
	fields["updated_at"] = time.Now()
	res := r.db.Model(&domain.List{}).
		Where("id = ? AND owner_id = ?", listID, ownerID).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormListRepository) Delete(listID, ownerID string) (bool, error) {
	res := r.db.Where("id = ? AND owner_id = ?", listID, ownerID).Delete(&domain.List{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
