package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys from the environment for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	unsetEnv(t, "GB_A", "GB_B", "GB_C")

	path := writeDotEnv(t, `
# comment

GB_A=one
export GB_B=two
GB_C="three"
`)

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "one", os.Getenv("GB_A"))
	assert.Equal(t, "two", os.Getenv("GB_B"))
	assert.Equal(t, "three", os.Getenv("GB_C"))
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("GB_KEEP", "already")

	path := writeDotEnv(t, "GB_KEEP=fromfile\n")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "already", os.Getenv("GB_KEEP"))
}

func TestLoadDotEnv_StripsSingleQuotes(t *testing.T) {
	unsetEnv(t, "GB_Q")

	path := writeDotEnv(t, "GB_Q='hello world'\n")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "hello world", os.Getenv("GB_Q"))
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	assert.NoError(t, loadDotEnv(""))
}
