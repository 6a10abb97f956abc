package ports

import "context"

// SecretStore resolves injected secrets such as the Gemini API key, so
// credentials never live in source or in the main config file.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
