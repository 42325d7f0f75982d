// Package redact scrubs sensitive material from strings before they reach
// logs or error responses. The main leak vectors in this service are provider
// API keys (carried in Authorization headers and query strings) and database
// connection strings.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

var (
	// Connection strings with inline credentials, e.g. postgres://user:pw@host.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Bearer tokens forwarded to upstream providers.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)

	// Key-value styled credentials in error strings or query params.
	apiKeyRegex = regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := dbConnRegex.ReplaceAllString(input, RedactedCredentialPlaceholder)
	result = bearerRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	result = apiKeyRegex.ReplaceAllString(result, RedactedKeyPlaceholder)
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
