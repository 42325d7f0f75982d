// Package service contains the application-specific use cases. It orchestrates
// the generation ports (text fallback chain, image backends) and the stores to
// fulfill the studio operations, keeping provider and persistence details out
// of the HTTP layer.
//
// Services receive their dependencies through constructor injection and never
// touch infrastructure implementations directly; they depend on the interfaces
// in internal/generation and internal/store so tests can substitute stubs.
package service
