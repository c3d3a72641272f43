package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, PolicyWarn, cfg.UnknownClassPolicy)
	assert.Equal(t, DarkModeMedia, cfg.DarkMode)
	assert.Equal(t, "768px", cfg.Theme.Screens["md"])
	assert.True(t, cfg.Variants.DataAria)
}

func TestLoadConfigForFile(t *testing.T) {
	t.Run("no config falls back to defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg := LoadConfigForFile(filepath.Join(dir, "app.volki"))
		assert.Equal(t, PolicyWarn, cfg.UnknownClassPolicy)
	})

	t.Run("json with comments", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "volki.config.json"), `{
			// strict mode
			"unknownClassPolicy": "error",
			"darkMode": "class",
			"safelist": ["grid"],
			"theme": {"screens": {"md": "700px"}},
		}`)
		cfg := LoadConfigForFile(filepath.Join(dir, "src", "app.volki"))
		assert.Equal(t, PolicyError, cfg.UnknownClassPolicy)
		assert.Equal(t, DarkModeClass, cfg.DarkMode)
		assert.Equal(t, []string{"grid"}, cfg.Safelist)
		assert.Equal(t, "700px", cfg.Theme.Screens["md"])
		// Untouched screens keep their defaults.
		assert.Equal(t, "640px", cfg.Theme.Screens["sm"])
	})

	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "volki.config.yaml"), `
unknownClassPolicy: silent
blocklist:
  - flex
variants:
  dataAria: false
`)
		cfg := LoadConfigForFile(filepath.Join(dir, "app.volki"))
		assert.Equal(t, PolicySilent, cfg.UnknownClassPolicy)
		assert.Equal(t, []string{"flex"}, cfg.Blocklist)
		assert.False(t, cfg.Variants.DataAria)
		assert.True(t, cfg.Variants.Supports)
	})

	t.Run("upward discovery", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "volki.config.json"), `{"darkMode": "class"}`)
		nested := filepath.Join(dir, "a", "b", "c")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		cfg := LoadConfigForFile(filepath.Join(nested, "app.volki"))
		assert.Equal(t, DarkModeClass, cfg.DarkMode)
	})

	t.Run("broken config falls back to defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "volki.config.json"), `{not json`)
		cfg := LoadConfigForFile(filepath.Join(dir, "app.volki"))
		assert.Equal(t, PolicyWarn, cfg.UnknownClassPolicy)
	})

	t.Run("strict env override", func(t *testing.T) {
		t.Setenv(StrictClassesEnv, "1")
		dir := t.TempDir()
		cfg := LoadConfigForFile(filepath.Join(dir, "app.volki"))
		assert.Equal(t, PolicyError, cfg.UnknownClassPolicy)
	})
}
