package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/ssargent/ghosthex/pkg/codec"
	"github.com/ssargent/ghosthex/pkg/config"
	"github.com/ssargent/ghosthex/pkg/di"
	"github.com/ssargent/ghosthex/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDropContainer(t *testing.T) {
	t.Helper()
	SetContainer(di.NewContainer())
	t.Cleanup(func() { SetContainer(nil) })
}

func createDrop(t *testing.T, dataDir, carrier, payload string) ksuid.KSUID {
	t.Helper()

	out, _, err := runCmd(t, "", "drop", "create", "--data-dir", dataDir, "--carrier", carrier, "--payload", payload)
	require.NoError(t, err)

	id, err := ksuid.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	return id
}

func TestDropCommands(t *testing.T) {
	setupDropContainer(t)
	dataDir := filepath.Join(t.TempDir(), "data")

	first := createDrop(t, dataDir, "see you tomorrow", "pier 4")
	second := createDrop(t, dataDir, "lunch?", "noon")

	t.Run("get decodes the drop", func(t *testing.T) {
		out, _, err := runCmd(t, "", "drop", "get", first.String(), "--data-dir", dataDir)
		require.NoError(t, err)
		assert.Contains(t, out, "id: "+first.String())
		assert.Contains(t, out, "carrier:\nsee you tomorrow\n\npayload:\npier 4\n")
	})

	t.Run("get raw prints the stored text", func(t *testing.T) {
		out, _, err := runCmd(t, "", "drop", "get", first.String(), "--raw", "--data-dir", dataDir)
		require.NoError(t, err)
		assert.Equal(t, "see you tomorrow"+codec.Encode("pier 4").Sequence, out)
	})

	t.Run("ls lists newest first", func(t *testing.T) {
		out, _, err := runCmd(t, "", "drop", "ls", "--data-dir", dataDir)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
		assert.True(t, strings.HasPrefix(lines[1], second.String()))
		assert.Contains(t, lines[1], `"lunch?"`)
		assert.True(t, strings.HasPrefix(lines[2], first.String()))
	})

	t.Run("ls limit", func(t *testing.T) {
		out, _, err := runCmd(t, "", "drop", "list", "--limit", "1", "--data-dir", dataDir)
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
	})

	t.Run("rm deletes the drop", func(t *testing.T) {
		out, _, err := runCmd(t, "", "drop", "rm", first.String(), "--data-dir", dataDir)
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted drop "+first.String())

		_, _, err = runCmd(t, "", "drop", "get", first.String(), "--data-dir", dataDir)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, _, err = runCmd(t, "", "drop", "delete", first.String(), "--data-dir", dataDir)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, _, err := runCmd(t, "", "drop", "get", "not-an-id", "--data-dir", dataDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid drop id")
	})
}

func TestDropCreateErrors(t *testing.T) {
	setupDropContainer(t)
	dataDir := filepath.Join(t.TempDir(), "data")

	_, _, err := runCmd(t, "", "drop", "create", "--data-dir", dataDir, "--carrier", "", "--payload", "x")
	assert.ErrorIs(t, err, codec.ErrCarrierRequired)

	_, _, err = runCmd(t, "", "drop", "create", "--data-dir", dataDir, "--carrier", "c", "--payload", "é", "--strict")
	assert.ErrorIs(t, err, codec.ErrNonASCII)

	out, errOut, err := runCmd(t, "", "drop", "create", "--data-dir", dataDir, "--carrier", "c", "--payload", "aé")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
	assert.Contains(t, errOut, "warning: omitted non-ascii: é.")
}

func TestDropUsesConfigDataDir(t *testing.T) {
	setupDropContainer(t)
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	cfg := config.DefaultConfig()
	cfg.Storage.DataDir = filepath.Join(tmpDir, "from-config")
	require.NoError(t, config.SaveConfig(cfg, configPath))

	_, _, err := runCmd(t, "", "drop", "create", "--config", configPath, "--carrier", "c", "--payload", "p")
	require.NoError(t, err)

	assert.DirExists(t, cfg.Storage.DataDir)

	out, _, err := runCmd(t, "", "drop", "ls", "--data-dir", cfg.Storage.DataDir)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestDropWithoutContainer(t *testing.T) {
	SetContainer(nil)

	_, _, err := runCmd(t, "", "drop", "ls", "--data-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container not initialized")
}
