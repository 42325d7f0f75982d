package store

import (
	"context"

	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/google/uuid"
)

// SavedItemStore defines the interface for saved-item persistence.
// The generation core never touches this path; it exists solely so users can
// keep results they liked.
type SavedItemStore interface {
	// Create saves a new item to the store.
	// It handles domain validation internally and returns the domain
	// validation error wrapped in ErrInvalidEntity if the data is invalid.
	Create(ctx context.Context, item *domain.SavedItem) error

	// GetByID retrieves a saved item by its unique ID.
	// Returns ErrSavedItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedItem, error)

	// List retrieves saved items ordered by creation time, newest first.
	// Returns an empty slice when nothing is saved. Limit of zero or less
	// applies a default page size.
	List(ctx context.Context, limit, offset int) ([]*domain.SavedItem, error)

	// Delete removes a saved item.
	// Returns ErrSavedItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
