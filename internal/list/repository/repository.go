package repository

import "mtasks-backend/internal/list/domain"

// ListRepository defines data access for lists. Every lookup and mutation
// carries the owner in its predicate, so a list that exists but belongs to
// someone else behaves exactly like one that does not exist.
type ListRepository interface {
	// Create persists a new list
	Create(list *domain.List) error

	// FindByOwner returns the owner's lists, newest first
	FindByOwner(ownerID string) ([]*domain.List, error)

	// FindByIDAndOwner returns nil, nil when the list is absent or owned by
	// another user
	FindByIDAndOwner(listID, ownerID string) (*domain.List, error)

	// UpdateFields applies the given columns in a single owner-scoped
	// UPDATE and reports whether a row matched
	UpdateFields(listID, ownerID string, fields map[string]interface{}) (bool, error)

	// Delete removes the list in a single owner-scoped DELETE and reports
	// whether a row matched
	Delete(listID, ownerID string) (bool, error)
}
