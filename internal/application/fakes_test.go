package application

import (
	"context"
	"time"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// echoGateway returns the prompt it was given, so tests can assert the
// round trip without a live backend.
type echoGateway struct{}

func (echoGateway) Complete(_ context.Context, prompt string) (string, error) {
	return prompt, nil
}

type failingGateway struct {
	err error
}

func (g failingGateway) Complete(context.Context, string) (string, error) {
	return "", g.err
}
