// Package gemini implements the generation.TextProvider interface on top of
// Google's Gemini API. It is the first, cheapest hop of the text fallback
// chain and treats every request as a single-shot completion: conversation
// history and system instructions are flattened into one prompt.
package gemini
