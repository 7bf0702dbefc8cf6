package usecase

import "mtasks-backend/internal/list/domain"

// ListUsecase defines the business logic for lists. Every operation is
// scoped to the requesting owner; a gate failure is always reported as
// not-found, never as forbidden.
type ListUsecase interface {
	// CreateList creates a list owned by ownerID
	CreateList(ownerID, title, description string) (*domain.List, error)

	// GetLists returns the owner's lists, newest first
	GetLists(ownerID string) ([]*domain.List, error)

	// GetListByID returns the list if it is owned by ownerID
	GetListByID(listID, ownerID string) (*domain.List, error)

	// UpdateList applies the patch if the list is owned by ownerID
	UpdateList(listID, ownerID string, patch ListPatch) (*domain.List, error)

	// DeleteList removes the list if it is owned by ownerID. Tasks under
	// it are not removed inline; the janitor reclaims them.
	DeleteList(listID, ownerID string) error
}

// ListPatch is the allow-listed partial update for a list. The owner is
// deliberately not patchable.
type ListPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
