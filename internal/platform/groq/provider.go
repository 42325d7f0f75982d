package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/brandforge/brandforge-api/internal/generation"
)

// DefaultBaseURL is the production Groq API endpoint. Tests override it.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Provider implements generation.TextProvider using Groq's chat completions
// endpoint. Unlike the completion-style providers it sends the conversation
// as structured messages, so chat history survives the trip intact.
type Provider struct {
	logger       *slog.Logger
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	model        string
	whisperModel string
}

// Option customizes a Provider.
type Option func(*Provider)

// WithBaseURL points the provider at a different API host. Used by tests.
func WithBaseURL(url string) Option {
	return func(p *Provider) { p.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) { p.httpClient = c }
}

// New creates a Groq provider. An empty API key is not an error: the provider
// reports itself as unconfigured and the fallback chain skips it.
func New(logger *slog.Logger, apiKey, model, whisperModel string, timeout time.Duration, opts ...Option) (*Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if model == "" {
		return nil, errors.New("model name cannot be empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	p := &Provider{
		logger:       logger.With(slog.String("component", "groq_provider")),
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      DefaultBaseURL,
		apiKey:       apiKey,
		model:        model,
		whisperModel: whisperModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

var _ generation.TextProvider = (*Provider)(nil)

// Name implements generation.TextProvider.
func (p *Provider) Name() string { return "groq" }

// Configured implements generation.TextProvider.
func (p *Provider) Configured() bool { return p.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int32         `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateText implements generation.TextProvider.
func (p *Provider) GenerateText(ctx context.Context, req generation.TextRequest) (string, error) {
	if p.apiKey == "" {
		return "", errors.New("groq provider is not configured")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", generation.ErrEmptyPrompt
	}

	body := chatCompletionRequest{
		Model:       p.model,
		Messages:    buildMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq chat request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := readSnippet(resp.Body)
		return "", fmt.Errorf("%w: groq chat returned status %d: %s",
			generation.ErrUpstreamHTTP, resp.StatusCode, snippet)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode groq chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("groq returned no choices")
	}

	text := parsed.Choices[0].Message.Content
	if text == "" {
		return "", errors.New("groq returned an empty message")
	}

	p.logger.Debug("groq completion succeeded",
		slog.String("model", p.model),
		slog.Int("response_chars", len(text)))
	return text, nil
}

// Transcribe sends an audio file to the Whisper transcription endpoint and
// returns the plain-text transcript. filename is passed through so the API
// can infer the container format.
func (p *Provider) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	if p.apiKey == "" {
		return "", errors.New("groq provider is not configured")
	}
	if p.whisperModel == "" {
		return "", errors.New("whisper model is not configured")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("failed to read audio payload: %w", err)
	}
	if err := mw.WriteField("model", p.whisperModel); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := mw.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq transcription request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := readSnippet(resp.Body)
		return "", fmt.Errorf("%w: groq transcription returned status %d: %s",
			generation.ErrUpstreamHTTP, resp.StatusCode, snippet)
	}

	transcript, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transcription response: %w", err)
	}

	text := strings.TrimSpace(string(transcript))
	p.logger.Debug("transcription succeeded",
		slog.String("model", p.whisperModel),
		slog.Int("transcript_chars", len(text)))
	return text, nil
}

// buildMessages converts a request into the OpenAI-style messages array.
func buildMessages(req generation.TextRequest) []chatMessage {
	messages := make([]chatMessage, 0, len(req.History)+2)

	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	for _, msg := range req.History {
		role := msg.Role
		if role != "user" {
			role = "assistant"
		}
		messages = append(messages, chatMessage{Role: role, Content: msg.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})
	return messages
}

// readSnippet reads at most 512 bytes of an error body for log context.
func readSnippet(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
