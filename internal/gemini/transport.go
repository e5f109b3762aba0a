// Package gemini provides transports for the remote text-generation API.
// A transport turns one prompt into one block of generated text; batching,
// retries and response alignment live above this layer so any binding (raw
// REST, official SDK, a fake in tests) can be swapped in.
package gemini

import "context"

// Transport generates text for a single prompt. Implementations classify
// failures through the apperrors kinds so callers can tell transient
// transport failures from unusable responses.
type Transport interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
