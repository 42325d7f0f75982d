package generation

import "context"

// Message is a single turn of a conversation passed to a chat-capable provider.
// Role is either "user" or "assistant"; anything unrecognized is treated as
// "assistant" by the providers.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TextRequest describes one text-generation call. System is an optional
// instruction; History is an optional conversation prefix (used by the chat
// operation only). Temperature is the sampling temperature; MaxTokens of zero
// means provider default.
type TextRequest struct {
	System      string
	Prompt      string
	History     []Message
	Temperature float32
	MaxTokens   int32
}

// TextProvider defines the interface for a single text-generation backend.
// This interface is the boundary between the application core and the external
// LLM services; implementations live under internal/platform.
type TextProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// Configured reports whether the provider has a usable credential.
	// Unconfigured providers are skipped by the fallback chain without any
	// network activity.
	Configured() bool

	// GenerateText performs a single non-streaming completion. A provider call
	// is atomic from the caller's perspective: it either returns the full text
	// or an error, never a partial result.
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}

// ImageBackend defines the interface for a single image-generation backend.
// Backends are tried in order by the logo cascade; each owns its model
// parameters (step count, guidance scale, resolution).
type ImageBackend interface {
	// Name identifies the backend in logs.
	Name() string

	// GenerateImage renders the prompt and returns the raw encoded image bytes.
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// TextGenerator is the application-facing contract of the fallback chain.
// Services depend on this rather than on FallbackChain directly so tests can
// substitute a stub.
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}
