package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rooftop/internal/domain"
)

func TestStorePutGetDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "gemini/api_key", "test-key-123"))

	value, err := store.Get(ctx, "gemini/api_key")
	require.NoError(t, err)
	assert.Equal(t, "test-key-123", value)

	require.NoError(t, store.Delete(ctx, "gemini/api_key"))

	_, err = store.Get(ctx, "gemini/api_key")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "gemini/api_key", "test-key\n"))

	value, err := store.Get(ctx, "gemini/api_key")
	require.NoError(t, err)
	assert.Equal(t, "test-key", value)
}

func TestStoreRejectsPathEscapes(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: "  "},
		{name: "absolute", key: "/etc/passwd"},
		{name: "parent traversal", key: "../outside"},
		{name: "dot", key: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, store.Put(ctx, tt.key, "x"))
			_, err := store.Get(ctx, tt.key)
			require.Error(t, err)
		})
	}
}

func TestStoreDeleteMissingKeyIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	require.NoError(t, store.Delete(context.Background(), "gemini/api_key"))
}
