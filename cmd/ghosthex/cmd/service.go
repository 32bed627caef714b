package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/config"
)

const (
	serviceName       = "ghosthex.service"
	defaultUnitPath   = "/etc/systemd/system/" + serviceName
	serviceConfigPath = "/etc/ghosthex/config.yaml"
)

// commandRunner runs an external command, streaming its output to w.
// Tests replace it to avoid touching systemd.
var commandRunner = func(w io.Writer, name string, args ...string) error {
	c := exec.Command(name, args...)
	c.Stdout = w
	c.Stderr = w
	return c.Run()
}

// geteuid is swapped in tests
var geteuid = os.Geteuid

func newServiceCmd() *cobra.Command {
	serviceCmd := &cobra.Command{
		Use:   "service",
		Short: "Manage ghosthex serve as a systemd service",
		Long: `Manage the ghosthex REST API as a systemd service.

The unit runs 'ghosthex serve' with a hardened sandbox and restarts it on failure.`,
	}

	serviceCmd.AddCommand(
		newServiceInstallCmd(),
		newServiceUninstallCmd(),
		newSystemctlCmd("start", "Start the ghosthex service"),
		newSystemctlCmd("stop", "Stop the ghosthex service"),
		newSystemctlCmd("restart", "Restart the ghosthex service"),
		newSystemctlCmd("status", "Show ghosthex service status"),
		newServiceLogsCmd(),
	)

	return serviceCmd
}

func newServiceInstallCmd() *cobra.Command {
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install ghosthex as a systemd service",
		Long: `Install ghosthex as a systemd service.

This will:
- Create or load the configuration
- Write the systemd unit file
- Enable and optionally start the service

Examples:
  ghosthex service install
  ghosthex service install --data-dir /var/lib/ghosthex --user ghosthex --port 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			configPath, _ := cmd.Flags().GetString("config")
			user, _ := cmd.Flags().GetString("user")
			port, _ := cmd.Flags().GetInt("port")
			binary, _ := cmd.Flags().GetString("binary")
			unitPath, _ := cmd.Flags().GetString("unit-path")
			startNow, _ := cmd.Flags().GetBool("start")

			if err := requireRoot(unitPath, "install"); err != nil {
				return err
			}

			configDir := filepath.Dir(configPath)
			_, statErr := os.Stat(configDir)
			createdConfigDir := os.IsNotExist(statErr)

			var cfg *config.Config
			var err error
			if config.ConfigExists(configPath) {
				cfg, err = config.LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cmd.Printf("Loaded existing configuration from %s\n", configPath)
			} else {
				cfg, err = config.BootstrapConfig(configPath, dataDir)
				if err != nil {
					return fmt.Errorf("failed to bootstrap config: %w", err)
				}
				cmd.Printf("Created new configuration at %s\n", configPath)
			}

			if cmd.Flags().Changed("data-dir") {
				cfg.Storage.DataDir = dataDir
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if err := config.SaveConfig(cfg, configPath); err != nil {
				return err
			}

			if err := prepareServicePaths(cmd, cfg, configPath, createdConfigDir, user); err != nil {
				return err
			}

			unit := renderSystemdUnit(cfg, configPath, user, binary)
			if err := os.WriteFile(unitPath, []byte(unit), 0600); err != nil {
				return fmt.Errorf("failed to write unit file: %w", err)
			}

			out := cmd.OutOrStdout()
			if err := commandRunner(out, "systemctl", "daemon-reload"); err != nil {
				return fmt.Errorf("failed to reload systemd: %w", err)
			}
			if err := commandRunner(out, "systemctl", "enable", serviceName); err != nil {
				return fmt.Errorf("failed to enable service: %w", err)
			}
			if startNow {
				if err := commandRunner(out, "systemctl", "start", serviceName); err != nil {
					return fmt.Errorf("failed to start service: %w", err)
				}
			}

			cmd.Printf("Service: %s\n", serviceName)
			cmd.Printf("Unit: %s\n", unitPath)
			cmd.Printf("Config: %s\n", configPath)
			cmd.Printf("Data: %s\n", cfg.Storage.DataDir)
			cmd.Printf("Port: %d\n", cfg.Server.Port)
			if !startNow {
				cmd.Printf("To start the service: sudo systemctl start %s\n", serviceName)
			}
			return nil
		},
	}

	installCmd.Flags().String("data-dir", "/var/lib/ghosthex", "Data directory for the service")
	installCmd.Flags().String("config", serviceConfigPath, "Path to config file")
	installCmd.Flags().String("user", "ghosthex", "User to run the service as")
	installCmd.Flags().Int("port", 8080, "Port for the service")
	installCmd.Flags().String("binary", "/usr/local/bin/ghosthex", "Path to the ghosthex binary")
	installCmd.Flags().String("unit-path", defaultUnitPath, "Where to write the systemd unit")
	installCmd.Flags().Bool("start", true, "Start the service after installation")

	return installCmd
}

func newServiceUninstallCmd() *cobra.Command {
	uninstallCmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Uninstall the ghosthex service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unitPath, _ := cmd.Flags().GetString("unit-path")
			if err := requireRoot(unitPath, "uninstall"); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			// already stopped is fine
			_ = commandRunner(out, "systemctl", "stop", serviceName)
			if err := commandRunner(out, "systemctl", "disable", serviceName); err != nil {
				cmd.PrintErrf("warning: could not disable service: %v\n", err)
			}

			if err := os.Remove(unitPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove unit file: %w", err)
			}
			if err := commandRunner(out, "systemctl", "daemon-reload"); err != nil {
				return fmt.Errorf("failed to reload systemd: %w", err)
			}

			cmd.Printf("Service %s uninstalled. Configuration and data files were kept.\n", serviceName)
			return nil
		},
	}

	uninstallCmd.Flags().String("unit-path", defaultUnitPath, "Location of the systemd unit")

	return uninstallCmd
}

func newSystemctlCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commandRunner(cmd.OutOrStdout(), "systemctl", action, serviceName); err != nil {
				return fmt.Errorf("systemctl %s failed: %w", action, err)
			}
			return nil
		},
	}
}

func newServiceLogsCmd() *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Show ghosthex service logs",
		Long: `Show ghosthex service logs using journalctl.

Examples:
  ghosthex service logs
  ghosthex service logs -f -n 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			follow, _ := cmd.Flags().GetBool("follow")
			lines, _ := cmd.Flags().GetInt("lines")

			journalArgs := []string{"-u", serviceName}
			if follow {
				journalArgs = append(journalArgs, "-f")
			}
			if lines > 0 {
				journalArgs = append(journalArgs, fmt.Sprintf("-n%d", lines))
			}

			return commandRunner(cmd.OutOrStdout(), "journalctl", journalArgs...)
		},
	}

	logsCmd.Flags().BoolP("follow", "f", false, "Follow log output")
	logsCmd.Flags().IntP("lines", "n", 0, "Number of lines to show")

	return logsCmd
}

// prepareServicePaths creates the data directory and hands it, together with
// the config file, to the service user. The config directory is only chowned
// when install created it. A failed chown is a warning, as the user may not exist yet.
func prepareServicePaths(cmd *cobra.Command, cfg *config.Config, configPath string, createdConfigDir bool, user string) error {
	owner := user + ":" + user
	out := cmd.OutOrStdout()

	var chownTargets [][]string
	if cfg.Storage.Enabled {
		if err := os.MkdirAll(cfg.Storage.DataDir, 0750); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", cfg.Storage.DataDir, err)
		}
		chownTargets = append(chownTargets, []string{"-R", owner, cfg.Storage.DataDir})
	}
	if createdConfigDir {
		chownTargets = append(chownTargets, []string{owner, filepath.Dir(configPath)})
	}
	chownTargets = append(chownTargets, []string{owner, configPath})

	for _, args := range chownTargets {
		if err := commandRunner(out, "chown", args...); err != nil {
			cmd.PrintErrf("warning: could not change ownership of %s to %s: %v\n", args[len(args)-1], owner, err)
		}
	}
	return nil
}

// requireRoot refuses to touch the system unit directory without root
func requireRoot(unitPath, action string) error {
	if unitPath == defaultUnitPath && geteuid() != 0 {
		return fmt.Errorf("service %s requires root privileges (run with: sudo ghosthex service %s)", action, action)
	}
	return nil
}

func renderSystemdUnit(cfg *config.Config, configPath, user, binary string) string {
	readWrite := fmt.Sprintf("ReadWritePaths=%s\n", filepath.Dir(configPath))
	if cfg.Storage.Enabled {
		readWrite += fmt.Sprintf("ReadWritePaths=%s\n", cfg.Storage.DataDir)
	}

	return fmt.Sprintf(`[Unit]
Description=ghosthex REST API
After=network-online.target
Wants=network-online.target

[Service]
User=%s
Group=%s
ExecStart=%s serve --config %s
Restart=on-failure
NoNewPrivileges=true
UMask=0077
%s
[Install]
WantedBy=multi-user.target
`, user, user, binary, configPath, readWrite)
}
