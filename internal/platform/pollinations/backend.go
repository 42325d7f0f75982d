package pollinations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/brandforge/brandforge-api/internal/generation"
)

// DefaultBaseURL is the public prompt endpoint. Tests override it.
const DefaultBaseURL = "https://image.pollinations.ai/prompt"

// maxPromptLen caps the prompt embedded in the URL path. The service rejects
// very long paths, so anything beyond this is truncated.
const maxPromptLen = 400

// Backend implements generation.ImageBackend using pollinations.ai.
type Backend struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	seedFn     func() int
}

// Option customizes a Backend.
type Option func(*Backend)

// WithBaseURL points the backend at a different host. Used by tests.
func WithBaseURL(u string) Option {
	return func(b *Backend) { b.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Backend) { b.httpClient = c }
}

// WithSeedFunc replaces the random seed source. Used by tests.
func WithSeedFunc(fn func() int) Option {
	return func(b *Backend) { b.seedFn = fn }
}

// NewBackend creates the keyless image backend.
func NewBackend(logger *slog.Logger, timeout time.Duration, opts ...Option) (*Backend, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	b := &Backend{
		logger:     logger.With(slog.String("component", "pollinations_backend")),
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    DefaultBaseURL,
		seedFn:     func() int { return rand.Intn(10000) },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

var _ generation.ImageBackend = (*Backend)(nil)

// Name implements generation.ImageBackend.
func (b *Backend) Name() string { return "pollinations" }

// GenerateImage implements generation.ImageBackend. The prompt gets a flat
// vector-art suffix, is truncated to the service's path limit, and rides in
// the URL path. A random seed varies the output between retries.
func (b *Backend) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, generation.ErrEmptyPrompt
	}

	full := BuildPrompt(prompt)

	q := url.Values{}
	q.Set("nologo", "true")
	q.Set("width", "512")
	q.Set("height", "512")
	q.Set("seed", strconv.Itoa(b.seedFn()))
	q.Set("model", "flux")

	endpoint := b.baseURL + "/" + url.PathEscape(full) + "?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("pollinations request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: pollinations returned status %d: %s",
			generation.ErrUpstreamHTTP, resp.StatusCode,
			strings.TrimSpace(string(snippet)))
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image response: %w", err)
	}
	if len(image) == 0 {
		return nil, errors.New("pollinations returned an empty body")
	}

	b.logger.Debug("image rendered", slog.Int("bytes", len(image)))
	return image, nil
}

// BuildPrompt appends the flat-logo style suffix and truncates to the path
// limit the service tolerates.
func BuildPrompt(prompt string) string {
	full := strings.TrimSpace(prompt) + ", vector art, centered, no text"
	if len(full) > maxPromptLen {
		full = full[:maxPromptLen]
	}
	return full
}
