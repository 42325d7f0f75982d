package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/brandforge/brandforge-api/internal/platform/logger"
	"github.com/brandforge/brandforge-api/internal/store"
	"github.com/google/uuid"
)

// defaultListLimit is applied when a caller asks for a non-positive page size.
const defaultListLimit = 50

// PostgresSavedItemStore implements the store.SavedItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSavedItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSavedItemStore creates a new PostgreSQL implementation of the
// SavedItemStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresSavedItemStore(db store.DBTX, logger *slog.Logger) *PostgresSavedItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSavedItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "saved_item_store")),
	}
}

// Ensure PostgresSavedItemStore implements store.SavedItemStore interface
var _ store.SavedItemStore = (*PostgresSavedItemStore)(nil)

// Create implements store.SavedItemStore.Create
// It saves a new item to the database, handling domain validation.
func (s *PostgresSavedItemStore) Create(ctx context.Context, item *domain.SavedItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("saved item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO saved_items (id, item_type, content, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.ItemType,
		item.Content,
		item.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create saved item",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()),
			slog.String("item_type", item.ItemType))
		return MapError(err)
	}

	log.Info("saved item created successfully",
		slog.String("item_id", item.ID.String()),
		slog.String("item_type", item.ItemType))
	return nil
}

// GetByID implements store.SavedItemStore.GetByID
// Returns store.ErrSavedItemNotFound if the item does not exist.
func (s *PostgresSavedItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, item_type, content, created_at
		FROM saved_items
		WHERE id = $1
	`

	var item domain.SavedItem
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.ItemType,
		&item.Content,
		&item.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("saved item not found", slog.String("item_id", id.String()))
			return nil, store.ErrSavedItemNotFound
		}
		log.Error("failed to get saved item by ID",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return nil, MapError(err)
	}

	return &item, nil
}

// List implements store.SavedItemStore.List
// It retrieves saved items ordered by creation time, newest first.
func (s *PostgresSavedItemStore) List(ctx context.Context, limit, offset int) ([]*domain.SavedItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, item_type, content, created_at
		FROM saved_items
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to query saved items",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []*domain.SavedItem
	for rows.Next() {
		var item domain.SavedItem
		if err := rows.Scan(&item.ID, &item.ItemType, &item.Content, &item.CreatedAt); err != nil {
			log.Error("failed to scan saved item row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if nothing is saved
	if items == nil {
		items = []*domain.SavedItem{}
	}

	log.Debug("listed saved items", slog.Int("count", len(items)))
	return items, nil
}

// Delete implements store.SavedItemStore.Delete
// Returns store.ErrSavedItemNotFound if the item does not exist.
func (s *PostgresSavedItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM saved_items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete saved item",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return MapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("saved item not found for delete", slog.String("item_id", id.String()))
		return store.ErrSavedItemNotFound
	}

	log.Info("saved item deleted", slog.String("item_id", id.String()))
	return nil
}
