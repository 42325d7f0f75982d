// Package groq implements the generation.TextProvider interface against the
// Groq OpenAI-compatible API. It is the second hop of the text fallback chain
// and also exposes Whisper audio transcription, which has no fallback.
package groq
