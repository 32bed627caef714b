package cmd

import (
	"path/filepath"
	"testing"

	"github.com/ssargent/ghosthex/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	dataDir := filepath.Join(tmpDir, "data")

	t.Run("creates config", func(t *testing.T) {
		out, _, err := runCmd(t, "", "init", "--config", configPath, "--data-dir", dataDir)
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration written to "+configPath)

		cfg, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, dataDir, cfg.Storage.DataDir)
		assert.Len(t, cfg.Server.APIKey, 64)
		assert.Contains(t, out, cfg.Server.APIKey[:8]+"...")
		assert.NotContains(t, out, cfg.Server.APIKey)
	})

	t.Run("keeps existing config without force", func(t *testing.T) {
		before, err := config.LoadConfig(configPath)
		require.NoError(t, err)

		out, _, err := runCmd(t, "", "init", "--config", configPath)
		require.NoError(t, err)
		assert.Contains(t, out, "already exists")

		after, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, before.Server.APIKey, after.Server.APIKey)
	})

	t.Run("force regenerates key", func(t *testing.T) {
		before, err := config.LoadConfig(configPath)
		require.NoError(t, err)

		out, _, err := runCmd(t, "", "init", "--config", configPath, "--force", "--print-key")
		require.NoError(t, err)

		after, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.NotEqual(t, before.Server.APIKey, after.Server.APIKey)
		assert.Contains(t, out, "API key: "+after.Server.APIKey)
	})
}
