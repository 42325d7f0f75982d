package gemini

import (
	"context"
	"log/slog"
	"testing"

	"github.com/brandforge/brandforge-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("nil logger", func(t *testing.T) {
		_, err := New(context.Background(), nil, "key", "gemini-2.0-flash-lite")
		assert.Error(t, err)
	})

	t.Run("empty model", func(t *testing.T) {
		_, err := New(context.Background(), slog.Default(), "key", "")
		assert.Error(t, err)
	})

	t.Run("empty API key yields unconfigured provider", func(t *testing.T) {
		p, err := New(context.Background(), slog.Default(), "", "gemini-2.0-flash-lite")
		require.NoError(t, err)
		assert.False(t, p.Configured())
		assert.Equal(t, "gemini", p.Name())
	})
}

func TestGenerateText_Unconfigured(t *testing.T) {
	t.Parallel()

	p, err := New(context.Background(), slog.Default(), "", "gemini-2.0-flash-lite")
	require.NoError(t, err)

	_, err = p.GenerateText(context.Background(), generation.TextRequest{Prompt: "hello"})
	assert.Error(t, err)
}

func TestFlattenRequest(t *testing.T) {
	t.Parallel()

	t.Run("prompt only", func(t *testing.T) {
		got := FlattenRequest(generation.TextRequest{Prompt: "Suggest a tagline."})
		assert.Equal(t, "Suggest a tagline.", got)
	})

	t.Run("system and prompt", func(t *testing.T) {
		got := FlattenRequest(generation.TextRequest{
			System: "You are a branding assistant.",
			Prompt: "Suggest a tagline.",
		})
		assert.Equal(t, "You are a branding assistant.\n\nSuggest a tagline.", got)
	})

	t.Run("history turns are labelled", func(t *testing.T) {
		got := FlattenRequest(generation.TextRequest{
			System: "You are a branding assistant.",
			History: []generation.Message{
				{Role: "user", Content: "Hi"},
				{Role: "assistant", Content: "Hello! How can I help?"},
			},
			Prompt: "Name my coffee shop.",
		})
		want := "You are a branding assistant.\n\n" +
			"User: Hi\n" +
			"Assistant: Hello! How can I help?\n\n" +
			"Name my coffee shop."
		assert.Equal(t, want, got)
	})

	t.Run("unknown role falls back to assistant", func(t *testing.T) {
		got := FlattenRequest(generation.TextRequest{
			History: []generation.Message{{Role: "system", Content: "x"}},
			Prompt:  "y",
		})
		assert.Contains(t, got, "Assistant: x")
	})
}
