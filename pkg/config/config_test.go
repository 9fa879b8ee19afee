package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "", cfg.Schema)
	assert.Equal(t, "GAP-*", cfg.Pattern)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "root: proposals\npattern: \"PROP-*\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gaplint.yaml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "proposals", cfg.Root)
	assert.Equal(t, "PROP-*", cfg.Pattern)
	// Unset keys keep their defaults
	assert.Equal(t, "", cfg.Schema)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GAPLINT_PATTERN", "SIP-*")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "SIP-*", cfg.Pattern)
}
