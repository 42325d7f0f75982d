package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/brandforge/brandforge-api/internal/store"
)

// memoryItemStore is an in-memory store.SavedItemStore for handler tests.
type memoryItemStore struct {
	items []*domain.SavedItem
	err   error
}

func (m *memoryItemStore) Create(ctx context.Context, item *domain.SavedItem) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, item)
	return nil
}

func (m *memoryItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, store.ErrSavedItemNotFound
}

func (m *memoryItemStore) List(ctx context.Context, limit, offset int) ([]*domain.SavedItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *memoryItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return store.ErrSavedItemNotFound
}

func newSavedItemRouter(s store.SavedItemStore) http.Handler {
	h := NewSavedItemHandler(s, slog.Default())
	r := chi.NewRouter()
	r.Post("/api/save-item", h.Create)
	r.Get("/api/saved-items", h.List)
	r.Get("/api/saved-items/{id}", h.GetByID)
	r.Delete("/api/saved-items/{id}", h.Delete)
	return r
}

func TestSavedItemCreate(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		s := &memoryItemStore{}
		router := newSavedItemRouter(s)

		body := `{"item_type": "tagline", "content": {"tagline": "Wake up better."}}`
		r := httptest.NewRequest(http.MethodPost, "/api/save-item", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp SavedItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, "tagline", resp.ItemType)
		assert.JSONEq(t, `{"tagline": "Wake up better."}`, string(resp.Content))
		assert.WithinDuration(t, time.Now().UTC(), resp.CreatedAt, time.Minute)
		assert.Len(t, s.items, 1)
	})

	t.Run("missing item_type", func(t *testing.T) {
		router := newSavedItemRouter(&memoryItemStore{})

		r := httptest.NewRequest(http.MethodPost, "/api/save-item", strings.NewReader(`{"content": {}}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		router := newSavedItemRouter(&memoryItemStore{err: assertAnError()})

		body := `{"item_type": "tagline", "content": {"a": 1}}`
		r := httptest.NewRequest(http.MethodPost, "/api/save-item", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSavedItemList(t *testing.T) {
	t.Parallel()

	item, err := domain.NewSavedItem("colors", json.RawMessage(`{"colors": ["#111111"]}`))
	require.NoError(t, err)
	router := newSavedItemRouter(&memoryItemStore{items: []*domain.SavedItem{item}})

	r := httptest.NewRequest(http.MethodGet, "/api/saved-items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []SavedItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, item.ID, resp[0].ID)
}

func TestSavedItemGetByID(t *testing.T) {
	t.Parallel()

	item, err := domain.NewSavedItem("brand", json.RawMessage(`{"brand_names": ["Brewline"]}`))
	require.NoError(t, err)
	router := newSavedItemRouter(&memoryItemStore{items: []*domain.SavedItem{item}})

	t.Run("found", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/saved-items/"+item.ID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown ID maps to 404", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/saved-items/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("garbage ID maps to 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/saved-items/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSavedItemDelete(t *testing.T) {
	t.Parallel()

	item, err := domain.NewSavedItem("logo", json.RawMessage(`{"file_url": "/static/generated_logos/x.png"}`))
	require.NoError(t, err)
	s := &memoryItemStore{items: []*domain.SavedItem{item}}
	router := newSavedItemRouter(s)

	r := httptest.NewRequest(http.MethodDelete, "/api/saved-items/"+item.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, s.items)
}

// assertAnError returns a generic error for store-failure scenarios.
func assertAnError() error {
	return errors.New("store blew up")
}
