package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brandforge/brandforge-api/internal/generation"
	"github.com/brandforge/brandforge-api/internal/imagestore"
	"github.com/brandforge/brandforge-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGenerator returns a fixed reply or error.
type scriptedGenerator struct {
	reply string
	err   error
}

func (s *scriptedGenerator) GenerateText(ctx context.Context, req generation.TextRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// scriptedTranscriber returns a fixed transcript or error.
type scriptedTranscriber struct {
	transcript string
	err        error
	filename   string
}

func (s *scriptedTranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	s.filename = filename
	if s.err != nil {
		return "", s.err
	}
	return s.transcript, nil
}

func newHandler(t *testing.T, gen generation.TextGenerator, tr Transcriber) *StudioHandler {
	t.Helper()

	studio, err := service.NewStudioService(slog.Default(), gen)
	require.NoError(t, err)

	imgStore, err := imagestore.New(slog.Default(), t.TempDir())
	require.NoError(t, err)
	logos, err := service.NewLogoService(slog.Default(), gen, nil, nil, imgStore)
	require.NoError(t, err)

	return NewStudioHandler(studio, logos, tr, slog.Default())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func TestGenerateBrandHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		h := newHandler(t, &scriptedGenerator{reply: `["Brewline", "Cuppa"]`}, nil)
		w := postJSON(t, h.GenerateBrand, `{"description": "an artisan coffee shop"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"brand_names": ["Brewline", "Cuppa"]}`, w.Body.String())
	})

	t.Run("missing description", func(t *testing.T) {
		h := newHandler(t, &scriptedGenerator{reply: `[]`}, nil)
		w := postJSON(t, h.GenerateBrand, `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Description")
	})

	t.Run("malformed body", func(t *testing.T) {
		h := newHandler(t, &scriptedGenerator{reply: `[]`}, nil)
		w := postJSON(t, h.GenerateBrand, `{broken`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request format")
	})

	t.Run("all providers failed maps to 502", func(t *testing.T) {
		h := newHandler(t, &scriptedGenerator{err: generation.ErrAllProvidersFailed}, nil)
		w := postJSON(t, h.GenerateBrand, `{"description": "a coffee shop"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "All text generation providers failed")
	})
}

func TestGenerateTaglineHandler(t *testing.T) {
	t.Parallel()

	h := newHandler(t, &scriptedGenerator{reply: `[{"tagline": "Wake up better.", "logic": "Aspirational."}]`}, nil)
	w := postJSON(t, h.GenerateTagline, `{"brand_name": "Brewline", "description": "artisan coffee"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Wake up better.")
}

func TestGenerateContentHandler(t *testing.T) {
	t.Parallel()

	h := newHandler(t, &scriptedGenerator{reply: "Coffee culture is thriving."}, nil)
	w := postJSON(t, h.GenerateContent, `{"topic": "coffee culture"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"content": "Coffee culture is thriving."}`, w.Body.String())
}

func TestAnalyzeSentimentHandler_FallbackShape(t *testing.T) {
	t.Parallel()

	h := newHandler(t, &scriptedGenerator{reply: "no json here"}, nil)
	w := postJSON(t, h.AnalyzeSentiment, `{"text": "late delivery, good product"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sentiment":"Neutral"`)
	assert.Contains(t, w.Body.String(), "Could not parse detailed analysis.")
}

func TestGetColorsHandler(t *testing.T) {
	t.Parallel()

	h := newHandler(t, &scriptedGenerator{reply: "#111111, #222222, nope"}, nil)
	w := postJSON(t, h.GetColors, `{"description": "a surf shop"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"colors": ["#111111", "#222222"]}`, w.Body.String())
}

func TestChatHandler(t *testing.T) {
	t.Parallel()

	h := newHandler(t, &scriptedGenerator{reply: "Here are some ideas."}, nil)
	w := postJSON(t, h.Chat, `{"message": "Name my gym.", "history": [{"role": "user", "content": "Hi"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply": "Here are some ideas."}`, w.Body.String())
}

func TestGenerateLogoHandler_Unavailable(t *testing.T) {
	t.Parallel()

	// Handler built with no image backends at all.
	h := newHandler(t, &scriptedGenerator{reply: "keywords"}, nil)
	w := postJSON(t, h.GenerateLogo, `{"description": "a coffee shop"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Image generation is not available")
}

func multipartAudio(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-audio"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestTranscribeVoiceHandler(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		tr := &scriptedTranscriber{transcript: "make me a tagline"}
		h := newHandler(t, &scriptedGenerator{}, tr)

		body, contentType := multipartAudio(t, "file", "memo.wav")
		r := httptest.NewRequest(http.MethodPost, "/", body)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.TranscribeVoice(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"transcription": "make me a tagline"}`, w.Body.String())
		assert.Equal(t, "memo.wav", tr.filename)
	})

	t.Run("missing file field", func(t *testing.T) {
		h := newHandler(t, &scriptedGenerator{}, &scriptedTranscriber{})

		body, contentType := multipartAudio(t, "wrong", "memo.wav")
		r := httptest.NewRequest(http.MethodPost, "/", body)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.TranscribeVoice(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("transcriber not configured", func(t *testing.T) {
		h := newHandler(t, &scriptedGenerator{}, nil)

		body, contentType := multipartAudio(t, "file", "memo.wav")
		r := httptest.NewRequest(http.MethodPost, "/", body)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.TranscribeVoice(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		tr := &scriptedTranscriber{err: errors.New("upstream exploded")}
		h := newHandler(t, &scriptedGenerator{}, tr)

		body, contentType := multipartAudio(t, "file", "memo.wav")
		r := httptest.NewRequest(http.MethodPost, "/", body)
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.TranscribeVoice(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Transcription failed")
		assert.NotContains(t, w.Body.String(), "exploded", "raw error must not leak")
	})
}
