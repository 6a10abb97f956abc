package domain

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrEmptyField          = errors.New("required field is empty")
	ErrPostIndexOutOfRange = errors.New("post index out of range")
	ErrSecretNotFound      = errors.New("secret not found")
)

// GatewayError wraps any transport, authentication, or service-side
// failure from the completion backend. The cause is surfaced verbatim to
// the user; the interaction can only be retried manually.
type GatewayError struct {
	Cause error
}

func (e *GatewayError) Error() string {
	return "completion gateway: " + e.Cause.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}
