package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NANOBANANA_API_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ProviderMultipart, cfg.Provider.Kind)
	assert.Equal(t, 90*time.Second, cfg.Provider.Timeout)
	assert.False(t, cfg.Provider.Configured())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "NANOBANANA_API_URL=https://provider.test/generate\nNANOBANANA_API_NEGATIVE_PROMPT=blurry\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("NANOBANANA_API_KEY", "secret")
	t.Cleanup(func() {
		os.Unsetenv("NANOBANANA_API_URL")
		os.Unsetenv("NANOBANANA_API_NEGATIVE_PROMPT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Provider.Configured())
	assert.Equal(t, "https://provider.test/generate", cfg.Provider.URL)
	assert.Equal(t, "secret", cfg.Provider.APIKey)
	assert.Equal(t, "blurry", cfg.Provider.NegativePrompt)
}

func TestLoadRejectsUnknownProviderKind(t *testing.T) {
	t.Setenv("PROVIDER_KIND", "carrier-pigeon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
