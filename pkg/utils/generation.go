package utils

import "context"

// GenerationClientInterface is the single-shot text generation boundary.
// Implementations perform exactly one call per invocation; any transport,
// auth or provider rejection surfaces as an opaque error the caller maps to
// ErrGenerationFailed.
type GenerationClientInterface interface {
	GenerateTrip(ctx context.Context, prompt string) (string, error)
}
