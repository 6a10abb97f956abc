package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/rooftop/internal/domain"
)

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(stdout))
}

func TestKeySetThenShowRoundTrip(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "key", "set", "test-api-key-123")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "key", "show")
	require.NoError(t, err)
	assert.Equal(t, "test-api-key-123", strings.TrimSpace(stdout))

	secretPath := filepath.Join(home, ".config", "rooftop", "secrets", "gemini", "api_key")
	assert.FileExists(t, secretPath)
}

func TestKeyShowPrefersEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ROOFTOP_GEMINI_API_KEY", "env-wins")

	_, _, err := executeCLI(t, home, "key", "set", "file-value")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "key", "show")
	require.NoError(t, err)
	assert.Equal(t, "env-wins", strings.TrimSpace(stdout))
}

func TestKeyShowWithoutKeyFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "key", "show")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestKeyUnsetRemovesStoredKey(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "key", "set", "short-lived")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "key", "unset")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "key", "show")
	require.Error(t, err)
}

func TestPromptsCommandPrintsLibrary(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "prompts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RoofTop Gardening Prompts")
	assert.Contains(t, stdout, "rooftop garden")
}

func TestInvalidReminderConfigFailsWiring(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ROOFTOP_REMINDERS_WATERING", "0s")

	_, _, err := executeCLI(t, home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reminders.watering")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
