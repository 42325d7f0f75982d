package pollinations

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brandforge/brandforge-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *Backend {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	b, err := NewBackend(slog.Default(), 5*time.Second,
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithSeedFunc(func() int { return 42 }))
	require.NoError(t, err)
	return b
}

func TestGenerateImage_Success(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "logo of a coffee shop")
		assert.Contains(t, r.URL.Path, "vector art, centered, no text")

		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("nologo"))
		assert.Equal(t, "512", q.Get("width"))
		assert.Equal(t, "512", q.Get("height"))
		assert.Equal(t, "42", q.Get("seed"))
		assert.Equal(t, "flux", q.Get("model"))

		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xFF, 0xD8, 0xFF})
	})

	img, err := b.GenerateImage(context.Background(), "logo of a coffee shop")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, img)
}

func TestGenerateImage_UpstreamError(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusBadGateway)
	})

	_, err := b.GenerateImage(context.Background(), "logo of a gym")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrUpstreamHTTP)
}

func TestGenerateImage_EmptyPrompt(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty prompt")
	})

	_, err := b.GenerateImage(context.Background(), "")
	assert.ErrorIs(t, err, generation.ErrEmptyPrompt)
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("appends style suffix", func(t *testing.T) {
		got := BuildPrompt("logo of a bakery")
		assert.Equal(t, "logo of a bakery, vector art, centered, no text", got)
	})

	t.Run("truncates long prompts", func(t *testing.T) {
		got := BuildPrompt(strings.Repeat("a", 500))
		assert.Len(t, got, 400)
	})
}
