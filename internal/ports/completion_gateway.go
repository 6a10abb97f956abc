package ports

import "context"

// CompletionGateway sends a free-text prompt to an external generative
// model and returns its text response. One blocking round trip per call;
// no retry or streaming.
type CompletionGateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
