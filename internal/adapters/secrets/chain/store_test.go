package chain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainPrefersEnvOverFile(t *testing.T) {
	t.Setenv("ROOFTOP_GEMINI_API_KEY", "env-wins")

	store, err := NewEnvFirstWithFileFallback("ROOFTOP", t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "gemini/api_key", "file-value"))

	value, err := store.Get(ctx, "gemini/api_key")
	require.NoError(t, err)
	assert.Equal(t, "env-wins", value)
}

func TestChainFallsBackToFile(t *testing.T) {
	store, err := NewEnvFirstWithFileFallback("ROOFTOP_TEST_UNSET", t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "gemini/api_key", "file-value"))

	value, err := store.Get(ctx, "gemini/api_key")
	require.NoError(t, err)
	assert.Equal(t, "file-value", value)
}

func TestChainGetMissingEverywhere(t *testing.T) {
	store, err := NewEnvFirstWithFileFallback("ROOFTOP_TEST_UNSET", t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "gemini/api_key")
	require.Error(t, err)
}

func TestChainWritesLandInFallback(t *testing.T) {
	root := t.TempDir()
	store, err := NewEnvFirstWithFileFallback("ROOFTOP_TEST_UNSET", root)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "gemini/api_key", "stored"))
	require.NoError(t, store.Delete(ctx, "gemini/api_key"))

	_, err = store.Get(ctx, "gemini/api_key")
	require.Error(t, err)
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	_, err := NewStore(nil, nil)
	require.Error(t, err)
}

func TestChainSkipsFallbackOnCancelledContext(t *testing.T) {
	store, err := NewEnvFirstWithFileFallback("ROOFTOP_TEST_UNSET", t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Get(ctx, "gemini/api_key")
	require.ErrorIs(t, err, context.Canceled)
}
