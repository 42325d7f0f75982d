package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/brandforge/brandforge-api/internal/generation"
)

// DefaultBaseURL is the serverless inference endpoint. Tests override it.
const DefaultBaseURL = "https://api-inference.huggingface.co/models"

// ModelParams describes one hosted text-to-image model and its tuning knobs.
type ModelParams struct {
	Model         string
	Steps         int
	GuidanceScale float64
	Width         int
	Height        int
}

// DefaultModels is the cascade order. The SDXL-Lightning distilled model goes
// first because it renders in 8 steps; the rest are 20-step fallbacks.
func DefaultModels() []ModelParams {
	return []ModelParams{
		{Model: "ByteDance/SDXL-Lightning", Steps: 8, GuidanceScale: 7.5, Width: 512, Height: 512},
		{Model: "runwayml/stable-diffusion-v1-5", Steps: 20, GuidanceScale: 7.5, Width: 512, Height: 512},
		{Model: "segmind/SSD-1B", Steps: 20, GuidanceScale: 7.5, Width: 512, Height: 512},
		{Model: "prompthero/openjourney", Steps: 20, GuidanceScale: 7.5, Width: 512, Height: 512},
	}
}

// Backend implements generation.ImageBackend for a single model.
type Backend struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
	params     ModelParams
}

// Option customizes a Backend.
type Option func(*Backend)

// WithBaseURL points the backend at a different API host. Used by tests.
func WithBaseURL(url string) Option {
	return func(b *Backend) { b.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Backend) { b.httpClient = c }
}

// NewBackend creates an image backend for one hosted model.
func NewBackend(logger *slog.Logger, apiKey string, params ModelParams, timeout time.Duration, opts ...Option) (*Backend, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if params.Model == "" {
		return nil, errors.New("model name cannot be empty")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	b := &Backend{
		logger:     logger.With(slog.String("component", "huggingface_backend"), slog.String("model", params.Model)),
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		params:     params,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

var _ generation.ImageBackend = (*Backend)(nil)

// Name implements generation.ImageBackend.
func (b *Backend) Name() string { return "huggingface/" + b.params.Model }

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
}

// GenerateImage implements generation.ImageBackend. The inference API returns
// the encoded image directly in the response body on success and a JSON error
// document otherwise, so the status code decides how the body is read.
func (b *Backend) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if b.apiKey == "" {
		return nil, errors.New("huggingface backend is not configured")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, generation.ErrEmptyPrompt
	}

	payload, err := json.Marshal(inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			NumInferenceSteps: b.params.Steps,
			GuidanceScale:     b.params.GuidanceScale,
			Width:             b.params.Width,
			Height:            b.params.Height,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.baseURL+"/"+b.params.Model, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: model %s returned status %d: %s",
			generation.ErrUpstreamHTTP, b.params.Model, resp.StatusCode,
			strings.TrimSpace(string(snippet)))
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image response: %w", err)
	}
	if len(image) == 0 {
		return nil, errors.New("inference API returned an empty body")
	}

	b.logger.Debug("image rendered",
		slog.Int("bytes", len(image)),
		slog.Int("steps", b.params.Steps))
	return image, nil
}
