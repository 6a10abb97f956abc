package env

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rooftop/internal/domain"
)

func TestStoreGetMapsKeyToVariable(t *testing.T) {
	t.Setenv("ROOFTOP_GEMINI_API_KEY", "from-env")

	store := NewStore("ROOFTOP")

	value, err := store.Get(context.Background(), "gemini/api_key")
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
}

func TestStoreGetMissingVariable(t *testing.T) {
	store := NewStore("ROOFTOP_TEST_EMPTY")

	_, err := store.Get(context.Background(), "gemini/api_key")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreIsReadOnly(t *testing.T) {
	store := NewStore("ROOFTOP")
	ctx := context.Background()

	require.ErrorIs(t, store.Put(ctx, "gemini/api_key", "x"), ErrReadOnly)
	require.ErrorIs(t, store.Delete(ctx, "gemini/api_key"), ErrReadOnly)
}
