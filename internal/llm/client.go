package llm

import (
	"context"
)

// Client is the minimal surface the validation engine needs from a model
// provider: one prompt in, one text completion out.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
