package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ssargent/ghosthex/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordCommands replaces commandRunner and returns the invocations it sees
func recordCommands(t *testing.T, failOn string) *[]string {
	t.Helper()

	var calls []string
	orig := commandRunner
	commandRunner = func(w io.Writer, name string, args ...string) error {
		call := strings.Join(append([]string{name}, args...), " ")
		calls = append(calls, call)
		if failOn != "" && strings.Contains(call, failOn) {
			return fmt.Errorf("%s failed", call)
		}
		return nil
	}
	t.Cleanup(func() { commandRunner = orig })

	return &calls
}

func TestRenderSystemdUnit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.DataDir = "/var/lib/ghosthex"

	unit := renderSystemdUnit(cfg, "/etc/ghosthex/config.yaml", "svc", "/opt/ghosthex")

	assert.Contains(t, unit, "User=svc")
	assert.Contains(t, unit, "Group=svc")
	assert.Contains(t, unit, "ExecStart=/opt/ghosthex serve --config /etc/ghosthex/config.yaml")
	assert.Contains(t, unit, "ReadWritePaths=/etc/ghosthex\n")
	assert.Contains(t, unit, "ReadWritePaths=/var/lib/ghosthex\n")

	cfg.Storage.Enabled = false
	unit = renderSystemdUnit(cfg, "/etc/ghosthex/config.yaml", "svc", "/opt/ghosthex")
	assert.NotContains(t, unit, "/var/lib/ghosthex")
}

func TestServiceInstall(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	dataDir := filepath.Join(tmpDir, "data")
	unitPath := filepath.Join(tmpDir, "ghosthex.service")

	t.Run("writes unit and enables service", func(t *testing.T) {
		calls := recordCommands(t, "")

		out, _, err := runCmd(t, "", "service", "install",
			"--config", configPath,
			"--data-dir", dataDir,
			"--unit-path", unitPath,
			"--user", "svc",
			"--port", "9001",
		)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"chown -R svc:svc " + dataDir,
			"chown svc:svc " + configPath,
			"systemctl daemon-reload",
			"systemctl enable ghosthex.service",
			"systemctl start ghosthex.service",
		}, *calls)
		assert.Contains(t, out, "Port: 9001")
		assert.DirExists(t, dataDir)

		unit, err := os.ReadFile(unitPath)
		require.NoError(t, err)
		assert.Contains(t, string(unit), "--config "+configPath)
		assert.Contains(t, string(unit), "ReadWritePaths="+dataDir)

		cfg, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, 9001, cfg.Server.Port)
		assert.Equal(t, dataDir, cfg.Storage.DataDir)
	})

	t.Run("keeps existing config and skips start", func(t *testing.T) {
		before, err := config.LoadConfig(configPath)
		require.NoError(t, err)

		calls := recordCommands(t, "")
		out, _, err := runCmd(t, "", "service", "install",
			"--config", configPath,
			"--unit-path", unitPath,
			"--start=false",
		)
		require.NoError(t, err)

		assert.NotContains(t, *calls, "systemctl start ghosthex.service")
		assert.Contains(t, out, "Loaded existing configuration")
		assert.Contains(t, out, "To start the service")

		after, err := config.LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("enable failure is returned", func(t *testing.T) {
		recordCommands(t, "enable")

		_, _, err := runCmd(t, "", "service", "install",
			"--config", configPath,
			"--unit-path", unitPath,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to enable service")
	})

	t.Run("default unit path needs root", func(t *testing.T) {
		recordCommands(t, "")
		orig := geteuid
		geteuid = func() int { return 1000 }
		t.Cleanup(func() { geteuid = orig })

		_, _, err := runCmd(t, "", "service", "install", "--config", configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires root privileges")
	})
}

func TestServiceInstallPreparesPaths(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "etc", "ghosthex", "config.yaml")
	dataDir := filepath.Join(tmpDir, "var", "lib", "ghosthex")
	unitPath := filepath.Join(tmpDir, "ghosthex.service")

	t.Run("creates data dir and chowns new config dir", func(t *testing.T) {
		calls := recordCommands(t, "")

		_, _, err := runCmd(t, "", "service", "install",
			"--config", configPath,
			"--data-dir", dataDir,
			"--unit-path", unitPath,
			"--start=false",
		)
		require.NoError(t, err)

		assert.DirExists(t, dataDir)
		assert.Equal(t, []string{
			"chown -R ghosthex:ghosthex " + dataDir,
			"chown ghosthex:ghosthex " + filepath.Dir(configPath),
			"chown ghosthex:ghosthex " + configPath,
			"systemctl daemon-reload",
			"systemctl enable ghosthex.service",
		}, *calls)
	})

	t.Run("existing config dir keeps its owner", func(t *testing.T) {
		calls := recordCommands(t, "")

		_, _, err := runCmd(t, "", "service", "install",
			"--config", configPath,
			"--unit-path", unitPath,
			"--start=false",
		)
		require.NoError(t, err)
		assert.NotContains(t, *calls, "chown ghosthex:ghosthex "+filepath.Dir(configPath))
		assert.Contains(t, *calls, "chown ghosthex:ghosthex "+configPath)
	})

	t.Run("chown failure only warns", func(t *testing.T) {
		recordCommands(t, "chown")

		_, errOut, err := runCmd(t, "", "service", "install",
			"--config", configPath,
			"--unit-path", unitPath,
			"--start=false",
		)
		require.NoError(t, err)
		assert.Contains(t, errOut, "warning: could not change ownership of "+dataDir)
	})

	t.Run("drops disabled skips data dir", func(t *testing.T) {
		noDropsConfig := filepath.Join(tmpDir, "nodrops.yaml")
		cfg := config.DefaultConfig()
		cfg.Server.APIKey = "k"
		cfg.Storage.Enabled = false
		cfg.Storage.DataDir = filepath.Join(tmpDir, "unused")
		require.NoError(t, config.SaveConfig(cfg, noDropsConfig))

		calls := recordCommands(t, "")
		_, _, err := runCmd(t, "", "service", "install",
			"--config", noDropsConfig,
			"--unit-path", unitPath,
			"--start=false",
		)
		require.NoError(t, err)

		assert.NoDirExists(t, cfg.Storage.DataDir)
		assert.Equal(t, "chown ghosthex:ghosthex "+noDropsConfig, (*calls)[0])
	})
}

func TestServiceInstallDefaultConfigPath(t *testing.T) {
	cmd := newServiceInstallCmd()
	assert.Equal(t, "/etc/ghosthex/config.yaml", cmd.Flags().Lookup("config").DefValue)
}

func TestServiceUninstall(t *testing.T) {
	unitPath := filepath.Join(t.TempDir(), "ghosthex.service")
	require.NoError(t, os.WriteFile(unitPath, []byte("[Unit]\n"), 0600))

	calls := recordCommands(t, "stop")

	out, _, err := runCmd(t, "", "service", "uninstall", "--unit-path", unitPath)
	require.NoError(t, err)
	assert.Contains(t, out, "uninstalled")

	assert.Equal(t, []string{
		"systemctl stop ghosthex.service",
		"systemctl disable ghosthex.service",
		"systemctl daemon-reload",
	}, *calls)

	_, err = os.Stat(unitPath)
	assert.True(t, os.IsNotExist(err))

	// Removing an absent unit is not an error
	_, _, err = runCmd(t, "", "service", "uninstall", "--unit-path", unitPath)
	assert.NoError(t, err)
}

func TestSystemctlCommands(t *testing.T) {
	for _, action := range []string{"start", "stop", "restart", "status"} {
		t.Run(action, func(t *testing.T) {
			calls := recordCommands(t, "")

			_, _, err := runCmd(t, "", "service", action)
			require.NoError(t, err)
			assert.Equal(t, []string{"systemctl " + action + " ghosthex.service"}, *calls)
		})
	}

	t.Run("failure", func(t *testing.T) {
		recordCommands(t, "restart")

		_, _, err := runCmd(t, "", "service", "restart")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "systemctl restart failed")
	})
}

func TestServiceLogs(t *testing.T) {
	calls := recordCommands(t, "")

	_, _, err := runCmd(t, "", "service", "logs", "-f", "-n", "50")
	require.NoError(t, err)
	assert.Equal(t, []string{"journalctl -u ghosthex.service -f -n50"}, *calls)
}
