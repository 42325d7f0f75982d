package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brandforge/brandforge-api/internal/api/shared"
	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/brandforge/brandforge-api/internal/platform/logger"
	"github.com/brandforge/brandforge-api/internal/store"
)

// SavedItemHandler exposes the saved-items CRUD surface.
type SavedItemHandler struct {
	store  store.SavedItemStore
	logger *slog.Logger
}

// NewSavedItemHandler creates a new SavedItemHandler.
func NewSavedItemHandler(s store.SavedItemStore, log *slog.Logger) *SavedItemHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SavedItemHandler{
		store:  s,
		logger: log.With(slog.String("component", "saved_item_handler")),
	}
}

// SaveItemRequest is the create DTO. Content is any JSON document; the studio
// result the user wants to keep is stored verbatim.
type SaveItemRequest struct {
	ItemType string          `json:"item_type" validate:"required,min=1"`
	Content  json.RawMessage `json:"content"   validate:"required"`
}

// SavedItemResponse is the wire shape of one saved item.
type SavedItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ItemType  string          `json:"item_type"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

func toSavedItemResponse(item *domain.SavedItem) SavedItemResponse {
	return SavedItemResponse{
		ID:        item.ID,
		ItemType:  item.ItemType,
		Content:   item.Content,
		CreatedAt: item.CreatedAt,
	}
}

// Create handles POST /api/save-item.
func (h *SavedItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SaveItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := domain.NewSavedItem(req.ItemType, req.Content)
	if err != nil {
		log.Debug("saved item rejected", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item data")
		return
	}

	if err := h.store.Create(r.Context(), item); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toSavedItemResponse(item))
}

// List handles GET /api/saved-items. Optional limit and offset query
// parameters page through the results, newest first.
func (h *SavedItemHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	items, err := h.store.List(r.Context(), limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	responses := make([]SavedItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toSavedItemResponse(item))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetByID handles GET /api/saved-items/{id}.
func (h *SavedItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, toSavedItemResponse(item))
}

// Delete handles DELETE /api/saved-items/{id}.
func (h *SavedItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
