package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brandforge/brandforge-api/internal/domain"
	"github.com/brandforge/brandforge-api/internal/generation"
	"github.com/brandforge/brandforge-api/internal/generation/prompts"
	"github.com/brandforge/brandforge-api/internal/imagestore"
)

// staticLogoPath is the public URL prefix under which saved logos are served.
const staticLogoPath = "/static/generated_logos/"

// LogoService implements the logo generation cascade: the text chain writes a
// diffusion prompt, the primary image backends are tried in order, and the
// keyless fallback backend gets exactly one attempt after they are exhausted.
type LogoService struct {
	logger    *slog.Logger
	generator generation.TextGenerator
	backends  []generation.ImageBackend
	fallback  generation.ImageBackend
	store     *imagestore.Store
}

// NewLogoService creates a LogoService. backends may be empty (no primary
// provider configured) and fallback may be nil (fallback disabled), but not
// both: with no way to render at all the constructor still succeeds and every
// generation attempt returns ErrImageGenerationUnavailable.
func NewLogoService(
	logger *slog.Logger,
	generator generation.TextGenerator,
	backends []generation.ImageBackend,
	fallback generation.ImageBackend,
	store *imagestore.Store,
) (*LogoService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if store == nil {
		return nil, errors.New("image store cannot be nil")
	}
	return &LogoService{
		logger:    logger.With(slog.String("component", "logo_service")),
		generator: generator,
		backends:  backends,
		fallback:  fallback,
		store:     store,
	}, nil
}

// GenerateLogo runs the full cascade and persists the winning image. The
// returned data URI and the file on disk hold identical bytes.
func (s *LogoService) GenerateLogo(ctx context.Context, req domain.LogoRequest) (*LogoResult, error) {
	req.ApplyDefaults()

	if len(s.backends) == 0 && s.fallback == nil {
		return nil, generation.ErrImageGenerationUnavailable
	}

	fragment, err := s.generator.GenerateText(ctx, generation.TextRequest{
		Prompt:      prompts.LogoConcept(req),
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("logo prompt generation failed: %w", err)
	}
	fragment = generation.StripPromptLabel(fragment)

	imagePrompt := fmt.Sprintf(
		"logo of %s, %s, vector, flattened, minimal, white background, high quality, 4k",
		req.Description, fragment)

	s.logger.Info("rendering logo", slog.String("prompt", imagePrompt))

	raw, err := s.renderCascade(ctx, imagePrompt)
	if err != nil {
		return nil, err
	}

	saved, err := s.store.Save(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to persist logo: %w", err)
	}

	return &LogoResult{
		Prompt:  imagePrompt,
		Image:   imagestore.DataURI(saved.PNG),
		FileURL: staticLogoPath + saved.FileName,
	}, nil
}

// renderCascade walks the primary backends in order, then gives the fallback
// a single attempt. Per-backend failures are logged and swallowed.
func (s *LogoService) renderCascade(ctx context.Context, prompt string) ([]byte, error) {
	var lastErr error

	for _, backend := range s.backends {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := backend.GenerateImage(ctx, prompt)
		if err == nil {
			s.logger.Info("image backend succeeded", slog.String("backend", backend.Name()))
			return raw, nil
		}

		s.logger.Warn("image backend failed",
			slog.String("backend", backend.Name()),
			slog.String("error", err.Error()))
		lastErr = err
	}

	if s.fallback != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := s.fallback.GenerateImage(ctx, prompt)
		if err == nil {
			s.logger.Info("fallback image backend succeeded",
				slog.String("backend", s.fallback.Name()))
			return raw, nil
		}

		s.logger.Warn("fallback image backend failed",
			slog.String("backend", s.fallback.Name()),
			slog.String("error", err.Error()))
		lastErr = err
	}

	return nil, fmt.Errorf("%w: last error: %v", generation.ErrAllImageBackendsFailed, lastErr)
}
