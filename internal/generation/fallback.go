package generation

import (
	"context"
	"fmt"
	"log/slog"
)

// FallbackChain tries a fixed, statically ordered list of text providers and
// returns the first successful response. Provider order is priority order: the
// light generative model comes first, the general chat-completion model second.
// A provider failure is logged and swallowed so the next provider gets a turn;
// only exhaustion of the whole chain is surfaced to the caller. A single
// provider is never retried.
type FallbackChain struct {
	providers []TextProvider
	logger    *slog.Logger
}

// NewFallbackChain creates a chain over the given providers, in priority order.
// Unconfigured providers may be included; they are skipped at call time.
// If logger is nil, the default logger is used.
func NewFallbackChain(logger *slog.Logger, providers ...TextProvider) *FallbackChain {
	if logger == nil {
		logger = slog.Default()
	}

	return &FallbackChain{
		providers: providers,
		logger:    logger.With(slog.String("component", "fallback_chain")),
	}
}

// Ensure FallbackChain implements the TextGenerator contract.
var _ TextGenerator = (*FallbackChain)(nil)

// GenerateText walks the provider list and returns the first successful text.
// It returns ErrNoProviderAvailable without any network activity when no
// provider is configured, and ErrAllProvidersFailed wrapping the last
// provider error when every configured provider fails.
func (c *FallbackChain) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	var lastErr error
	attempted := 0

	for _, p := range c.providers {
		if !p.Configured() {
			c.logger.Debug("skipping unconfigured provider",
				slog.String("provider", p.Name()))
			continue
		}

		attempted++
		text, err := p.GenerateText(ctx, req)
		if err == nil {
			c.logger.Debug("provider succeeded",
				slog.String("provider", p.Name()),
				slog.Int("response_length", len(text)))
			return text, nil
		}

		c.logger.Warn("provider failed, falling through",
			slog.String("provider", p.Name()),
			slog.String("error", err.Error()))
		lastErr = err

		// A cancelled or expired context would fail every remaining provider
		// the same way, so stop early.
		if ctx.Err() != nil {
			break
		}
	}

	if attempted == 0 {
		return "", ErrNoProviderAvailable
	}

	return "", fmt.Errorf("%w: last error: %v", ErrAllProvidersFailed, lastErr)
}
