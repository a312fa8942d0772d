package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CURRENCY_SYMBOL", "")
	t.Setenv("SUGGESTIONS", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "тг", cfg.CurrencySymbol)
	assert.True(t, cfg.Suggestions)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CURRENCY_SYMBOL", "$")
	t.Setenv("SUGGESTIONS", "0")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.False(t, cfg.Suggestions)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set, so clear them first.
	for _, key := range []string{"LOG_LEVEL", "CURRENCY_SYMBOL", "SUGGESTIONS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), "test.env")
	content := "LOG_LEVEL=warn\nCURRENCY_SYMBOL=KZT\nSUGGESTIONS=maybe\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "KZT", cfg.CurrencySymbol)
	assert.True(t, cfg.Suggestions, "unparsable booleans fall back to the default")
}
