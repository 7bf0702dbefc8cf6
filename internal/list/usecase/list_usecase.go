package usecase

import (
	"mtasks-backend/internal/apperror"
	"mtasks-backend/internal/list/domain"
	"mtasks-backend/internal/list/repository"
)

// listUsecase implements ListUsecase
type listUsecase struct {
	listRepo repository.ListRepository
}

func NewListUsecase(listRepo repository.ListRepository) ListUsecase {
	return &listUsecase{
		listRepo: listRepo,
	}
}

func (u *listUsecase) CreateList(ownerID, title, description string) (*domain.List, error) {
	if title == "" {
		return nil, apperror.NewValidation("title", "is required")
	}

	list := &domain.List{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}

	if err := u.listRepo.Create(list); err != nil {
		return nil, err
	}

	return list, nil
}

func (u *listUsecase) GetLists(ownerID string) ([]*domain.List, error) {
	return u.listRepo.FindByOwner(ownerID)
}

func (u *listUsecase) GetListByID(listID, ownerID string) (*domain.List, error) {
	list, err := u.listRepo.FindByIDAndOwner(listID, ownerID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperror.ErrNotFound
	}
	return list, nil
}

func (u *listUsecase) UpdateList(listID, ownerID string, patch ListPatch) (*domain.List, error) {
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

	if len(fields) > 0 {
		matched, err := u.listRepo.UpdateFields(listID, ownerID, fields)
		if err != nil {
			return nil, err
		}
		if !matched {
			return nil, apperror.ErrNotFound
		}
	}

	return u.GetListByID(listID, ownerID)
}

func (u *listUsecase) DeleteList(listID, ownerID string) error {
	matched, err := u.listRepo.Delete(listID, ownerID)
	if err != nil {
		return err
	}
	if !matched {
		return apperror.ErrNotFound
	}
	return nil
}
