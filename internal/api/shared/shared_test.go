package shared

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		ctx := SetTraceID(context.Background())
		id := GetTraceID(ctx)
		assert.Len(t, id, TraceIDLength*2, "trace ID is hex encoded")
	})

	t.Run("absent returns empty", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("unique per call", func(t *testing.T) {
		a := GetTraceID(SetTraceID(context.Background()))
		b := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, a, b)
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Brewline"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "Brewline", p.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{broken`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type dto struct {
		Description string `validate:"required,min=1"`
	}

	assert.Error(t, ValidateRequest(dto{}))
	assert.NoError(t, ValidateRequest(dto{Description: "a coffee shop"}))
}

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	RespondWithJSON(w, r, 200, map[string]string{"status": "ok"})

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(SetTraceID(r.Context()))

	RespondWithError(w, r, 400, "bad input")

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "bad input")
	assert.Contains(t, w.Body.String(), GetTraceID(r.Context()))
}
