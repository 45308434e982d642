// Package genai wraps the generative-text provider behind a small interface
// so the orchestrator and its tests never depend on a concrete SDK.
package genai

import "context"

// Client is the contract the orchestrator consumes: one prompt in, raw text
// out. Implementations return provider errors (timeout, auth, rate limit,
// malformed response) as-is and do not retry; the caller decides how to
// recover.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
