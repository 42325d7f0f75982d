package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SavedItem is a user-persisted generation result. Content is kept opaque:
// the service writes whatever JSON the client chose to keep and never reads
// it back for its own purposes.
type SavedItem struct {
	ID        uuid.UUID       `json:"id"`
	ItemType  string          `json:"item_type"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewSavedItem creates a new SavedItem with the given type and content.
// It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewSavedItem(itemType string, content json.RawMessage) (*SavedItem, error) {
	item := &SavedItem{
		ID:        uuid.New(),
		ItemType:  itemType,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the SavedItem has valid data.
// Returns an error if any field fails validation.
func (s *SavedItem) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptyItemID
	}

	if s.ItemType == "" {
		return ErrInvalidItemType
	}

	if len(s.Content) == 0 || !json.Valid(s.Content) {
		return ErrEmptyContent
	}

	return nil
}
