package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/config"
)

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a ghosthex configuration file",
		Long: `Create a configuration file with a freshly generated API key.

This command will:
- Create the configuration directory
- Generate a random API key for the REST API
- Write the configuration with 0600 permissions

Examples:
  ghosthex init
  ghosthex init --config ./ghosthex.yaml --data-dir ./data --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			force, _ := cmd.Flags().GetBool("force")
			printKey, _ := cmd.Flags().GetBool("print-key")

			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}

			if config.ConfigExists(configPath) && !force {
				cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", configPath)
				return nil
			}

			cfg, err := config.BootstrapConfig(configPath, dataDir)
			if err != nil {
				return fmt.Errorf("failed to bootstrap config: %w", err)
			}

			cmd.Printf("Configuration written to %s\n", configPath)
			cmd.Printf("Data directory: %s\n", cfg.Storage.DataDir)
			if printKey {
				cmd.Printf("API key: %s\n", cfg.Server.APIKey)
			} else {
				cmd.Printf("API key: %s...\n", cfg.Server.APIKey[:8])
			}
			return nil
		},
	}

	initCmd.Flags().String("config", "", "Path to the configuration file (default: ~/.config/ghosthex/config.yaml)")
	initCmd.Flags().String("data-dir", "", "Data directory for the drop store (default: ./data)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
	initCmd.Flags().Bool("print-key", false, "Print the full API key")

	return initCmd
}
