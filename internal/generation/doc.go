// Package generation provides the provider-facing ports and the fallback
// pipeline for interacting with external text-generation services. It abstracts
// the details of the individual LLM integrations (Gemini, Groq), allowing the
// application to generate marketing copy without coupling to a specific
// external service, and it hosts the output-normalization heuristics that
// recover structured JSON from free-form model replies.
package generation
