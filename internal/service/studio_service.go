package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/brandforge/brandforge-api/internal/generation"
	"github.com/brandforge/brandforge-api/internal/generation/prompts"
)

// Sampling temperatures. Palette generation runs cooler so the reply stays a
// parseable comma list; everything else uses the creative default.
const (
	defaultTemperature float32 = 0.7
	colorsTemperature  float32 = 0.5
	chatMaxTokens      int32   = 1000
)

// StudioService implements the text-based studio operations. Every operation
// builds its prompt, runs the fallback chain once, and coerces the reply into
// the operation's result shape. Malformed provider output never becomes an
// error: each structured operation has a fixed default that masks it.
type StudioService struct {
	logger    *slog.Logger
	generator generation.TextGenerator
}

// NewStudioService creates a StudioService.
func NewStudioService(logger *slog.Logger, generator generation.TextGenerator) (*StudioService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	return &StudioService{
		logger:    logger.With(slog.String("component", "studio_service")),
		generator: generator,
	}, nil
}

// GenerateBrand produces brand name suggestions. The reply is expected to be
// a JSON array of strings; a comma-separated plain-text reply is accepted as
// a fallback, and objects shaped like {"name": ...} are coerced to strings.
func (s *StudioService) GenerateBrand(ctx context.Context, req domain.BrandRequest) (*BrandResult, error) {
	raw, err := s.generator.GenerateText(ctx, generation.TextRequest{
		System:      prompts.BrandSystem,
		Prompt:      prompts.Brand(req),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("brand generation failed: %w", err)
	}

	extracted, ok := generation.ExtractJSON(raw)
	if !ok && strings.Contains(raw, ",") {
		return &BrandResult{BrandNames: generation.SplitCommaList(raw)}, nil
	}

	names := coerceBrandNames(extracted)
	if names == nil {
		s.logger.Warn("brand reply was not a usable list", slog.Int("reply_chars", len(raw)))
		names = []string{}
	}
	return &BrandResult{BrandNames: names}, nil
}

// GenerateTagline produces tagline suggestions with rationale. When the reply
// cannot be parsed, a single generic suggestion built from the brand name is
// returned instead.
func (s *StudioService) GenerateTagline(ctx context.Context, req domain.TaglineRequest) (*TaglineResult, error) {
	req.ApplyDefaults()

	raw, err := s.generator.GenerateText(ctx, generation.TextRequest{
		System:      prompts.TaglineSystem,
		Prompt:      prompts.Tagline(req),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("tagline generation failed: %w", err)
	}

	var suggestions []TaglineSuggestion
	if !coerceExtracted(raw, &suggestions) || len(suggestions) == 0 {
		s.logger.Warn("tagline reply was not parseable, using fallback")
		suggestions = []TaglineSuggestion{{
			Tagline: fmt.Sprintf("%s: The best choice.", req.BrandName),
			Logic:   "Generic fallback",
		}}
	}
	return &TaglineResult{Taglines: suggestions}, nil
}

// GenerateContent produces a piece of marketing copy. The reply is used
// verbatim; no extraction is involved.
func (s *StudioService) GenerateContent(ctx context.Context, req domain.ContentRequest) (*ContentResult, error) {
	req.ApplyDefaults()

	raw, err := s.generator.GenerateText(ctx, generation.TextRequest{
		Prompt:      prompts.Content(req),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}
	return &ContentResult{Content: raw}, nil
}

// GenerateProductDescription produces layered product copy.
func (s *StudioService) GenerateProductDescription(ctx context.Context, req domain.ProductDescriptionRequest) (*ProductDescriptionResult, error) {
	req.ApplyDefaults()

	raw, err := s.generator.GenerateText(ctx, generation.TextRequest{
		System:      prompts.ProductSystem,
		Prompt:      prompts.ProductDescription(req),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("product description generation failed: %w", err)
	}

	var result ProductDescriptionResult
	if !coerceExtracted(raw, &result) {
		s.logger.Warn("product description reply was not parseable, using fallback")
		return &ProductDescriptionResult{
			ShortDescription: "Failed to generate description.",
			LongDescription:  "Please try again.",
			MarketingBlurb:   "",
			Bullets:          []string{},
		}, nil
	}
	if result.Bullets == nil {
		result.Bullets = []string{}
	}
	return &result, nil
}

// AnalyzeSentiment analyzes customer feedback.
func (s *StudioService) AnalyzeSentiment(ctx context.Context, req domain.SentimentRequest) (*SentimentResult, error) {
	raw, err := s.generator.GenerateText(ctx, generation.TextRequest{
		System:      prompts.SentimentSystem,
		Prompt:      prompts.Sentiment(req),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("sentiment analysis failed: %w", err)
	}

	var result SentimentResult
	if !coerceExtracted(raw, &result) {
		s.logger.Warn("sentiment reply was not parseable, using fallback")
		return &SentimentResult{
			Sentiment:   "Neutral",
			Score:       50,
			Summary:     "Could not parse detailed analysis.",
			KeyIssues:   []string{"Analysis format error"},
			Suggestions: []string{"Please try again with different text."},
		}, nil
	}
	if result.KeyIssues == nil {
		result.KeyIssues = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return &result, nil
}

// AnalyzeTagline assesses a tagline's marketing impact.
func (s *StudioService) AnalyzeTagline(ctx context.Context, req domain.TaglineAnalysisRequest) (*TaglineAnalysisResult, error) {
	raw, err := s.generator.GenerateText(ctx, generation.TextRequest{
		System:      prompts.TaglineAnalysisSystem,
		Prompt:      prompts.TaglineAnalysis(req),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("tagline analysis failed: %w", err)
	}

	var result TaglineAnalysisResult
	if !coerceExtracted(raw, &result) {
		s.logger.Warn("tagline analysis reply was not parseable, using fallback")
		return &TaglineAnalysisResult{
			Sentiment:          "Unknown",
			ImpactScore:        0,
			ReachPotential:     "Low",
			Analysis:           "Could not analyze tagline.",
			Suggestions:        []string{},
			BetterAlternatives: []string{},
		}, nil
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	if result.BetterAlternatives == nil {
		result.BetterAlternatives = []string{}
	}
	return &result, nil
}

// GetColors produces a hex color palette. The reply is parsed as a comma
// list; entries that are not hex codes are dropped rather than erroring.
func (s *StudioService) GetColors(ctx context.Context, req domain.ColorsRequest) (*ColorsResult, error) {
	raw, err := s.generator.GenerateText(ctx, generation.TextRequest{
		Prompt:      prompts.Colors(req),
		Temperature: colorsTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("color palette generation failed: %w", err)
	}
	return &ColorsResult{Colors: generation.FilterHexColors(raw)}, nil
}

// Chat produces the next assistant reply in an ongoing conversation. The raw
// reply is returned as-is.
func (s *StudioService) Chat(ctx context.Context, req domain.ChatRequest) (*ChatResult, error) {
	history := make([]generation.Message, 0, len(req.History))
	for _, msg := range req.History {
		role := msg.Role
		if role != "user" {
			role = "assistant"
		}
		history = append(history, generation.Message{Role: role, Content: msg.Content})
	}

	raw, err := s.generator.GenerateText(ctx, generation.TextRequest{
		Prompt:      req.Message,
		History:     history,
		Temperature: defaultTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat failed: %w", err)
	}
	return &ChatResult{Reply: raw}, nil
}

// coerceExtracted runs the JSON extractor over a provider reply and remarshals
// the recovered value into the operation's result type. Returns false when
// nothing parseable was found or the value does not fit the target shape.
func coerceExtracted(raw string, target any) bool {
	extracted, ok := generation.ExtractJSON(raw)
	if !ok {
		return false
	}
	payload, err := json.Marshal(extracted)
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, target) == nil
}

// coerceBrandNames flattens an extracted value into a string list. Entries
// that are objects with a "name" key are unwrapped; anything else non-string
// is dropped. Returns nil when the value is not a list at all.
func coerceBrandNames(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(list))
	for _, entry := range list {
		switch e := entry.(type) {
		case string:
			names = append(names, e)
		case map[string]any:
			if name, ok := e["name"].(string); ok {
				names = append(names, name)
			}
		}
	}
	return names
}
