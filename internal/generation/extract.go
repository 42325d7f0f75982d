package generation

import (
	"encoding/json"
	"strings"
)

// ExtractJSON attempts to recover a JSON value (object or array) from a
// provider's free-form text reply. It first tries a direct parse; if that
// fails it scans for a bracket-delimited span and parses that. Absence of JSON
// is a normal outcome, signaled by the second return value; this function
// never returns an error.
//
// The span heuristic deliberately runs from the first opening bracket to the
// LAST matching closer anywhere in the text, even when that captures trailing
// unrelated content between multiple JSON-like fragments. Call sites depend on
// this exact success/failure boundary; do not tighten it.
func ExtractJSON(text string) (any, bool) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err == nil {
		return value, true
	}

	candidate, ok := bracketSpan(text)
	if !ok {
		return nil, false
	}

	if err := json.Unmarshal([]byte(candidate), &value); err != nil {
		return nil, false
	}
	return value, true
}

// bracketSpan finds the first position holding '[' with a ']' somewhere after
// it, or '{' with a '}' somewhere after it, and returns the greedy span ending
// at the last such closer in the whole text.
func bracketSpan(text string) (string, bool) {
	lastSquare := strings.LastIndexByte(text, ']')
	lastCurly := strings.LastIndexByte(text, '}')

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			if lastSquare > i {
				return text[i : lastSquare+1], true
			}
		case '{':
			if lastCurly > i {
				return text[i : lastCurly+1], true
			}
		}
	}
	return "", false
}

// SplitCommaList is the caller-level fallback for list-shaped operations whose
// reply came back as plain comma-separated text instead of JSON. It splits on
// commas, trims whitespace, and drops empty entries.
func SplitCommaList(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// FilterHexColors extracts hex color codes from a comma-separated reply,
// dropping anything that does not start with '#'. Newlines are stripped before
// splitting because some models wrap the list.
func FilterHexColors(text string) []string {
	flat := strings.ReplaceAll(text, "\n", "")
	colors := make([]string, 0, 5)
	for _, part := range strings.Split(flat, ",") {
		c := strings.TrimSpace(part)
		if strings.HasPrefix(c, "#") {
			colors = append(colors, c)
		}
	}
	return colors
}

// StripPromptLabel cleans up a model-written image prompt fragment: it removes
// a leading "Prompt:" label and any double quotes, then trims whitespace.
func StripPromptLabel(text string) string {
	cleaned := strings.ReplaceAll(text, "Prompt:", "")
	cleaned = strings.ReplaceAll(cleaned, `"`, "")
	return strings.TrimSpace(cleaned)
}
