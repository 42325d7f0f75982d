package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/brandforge/brandforge-api/internal/generation"
	"google.golang.org/genai"
)

// Provider implements generation.TextProvider using Google's Gemini API.
type Provider struct {
	logger *slog.Logger
	client *genai.Client
	model  string
	apiKey string
}

// New creates a Gemini text provider. An empty API key is not an error: the
// provider reports itself as unconfigured and the fallback chain skips it.
func New(ctx context.Context, logger *slog.Logger, apiKey, model string) (*Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if model == "" {
		return nil, errors.New("model name cannot be empty")
	}

	p := &Provider{
		logger: logger.With(slog.String("component", "gemini_provider")),
		model:  model,
		apiKey: apiKey,
	}

	if apiKey == "" {
		return p, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	p.client = client

	return p, nil
}

var _ generation.TextProvider = (*Provider)(nil)

// Name implements generation.TextProvider.
func (p *Provider) Name() string { return "gemini" }

// Configured implements generation.TextProvider.
func (p *Provider) Configured() bool { return p.client != nil }

// GenerateText implements generation.TextProvider. Gemini is driven as a
// completion model here, so system instruction and history are flattened
// into a single prompt before the call.
func (p *Provider) GenerateText(ctx context.Context, req generation.TextRequest) (string, error) {
	if p.client == nil {
		return "", errors.New("gemini provider is not configured")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", generation.ErrEmptyPrompt
	}

	prompt := FlattenRequest(req)

	cfg := &genai.GenerateContentConfig{}
	temp := req.Temperature
	cfg.Temperature = &temp
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = req.MaxTokens
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}

	p.logger.Debug("gemini completion succeeded",
		slog.String("model", p.model),
		slog.Int("response_chars", len(text)))
	return text, nil
}

// FlattenRequest converts a structured request into one completion prompt.
// System text comes first, then each history turn prefixed with its speaker,
// then the current user prompt. Blank lines separate the sections.
func FlattenRequest(req generation.TextRequest) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, msg := range req.History {
		switch msg.Role {
		case "user":
			b.WriteString("User: ")
		default:
			b.WriteString("Assistant: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	if len(req.History) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(req.Prompt)
	return b.String()
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
