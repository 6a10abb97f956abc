package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/ports"
)

var ErrReadOnly = errors.New("environment secret store is read-only")

// Store resolves secrets from environment variables. A key such as
// "gemini/api_key" maps to ROOFTOP_GEMINI_API_KEY. The store never
// writes; Put and Delete fail so a chained fallback takes over.
type Store struct {
	prefix string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	if strings.TrimSpace(prefix) == "" {
		prefix = "ROOFTOP"
	}
	return &Store{prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := s.varForKey(key)
	if err != nil {
		return "", err
	}

	value := os.Getenv(name)
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("env secret %q (%s): %w", key, name, domain.ErrSecretNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("put env secret %q: %w", key, ErrReadOnly)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("delete env secret %q: %w", key, ErrReadOnly)
}

func (s *Store) varForKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	name := strings.ToUpper(trimmed)
	name = strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(name)

	return s.prefix + "_" + name, nil
}
