// Package config handles configuration loading, parsing, and validation from
// the process environment. It provides type-safe access to server, database,
// and provider-credential settings while keeping configuration details
// separate from business logic. Provider API keys are deliberately optional:
// absence disables the corresponding backend instead of failing startup.
package config
