package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/api"
	"github.com/ssargent/ghosthex/pkg/config"
	"github.com/ssargent/ghosthex/pkg/logging"
	"github.com/ssargent/ghosthex/pkg/storage"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the ghosthex REST API server.

The configuration is loaded from --config, or bootstrapped with a generated
API key when the file does not exist yet. Flags override file values.

Examples:
  ghosthex serve
  ghosthex serve --config ./ghosthex.yaml --port 9000
  ghosthex serve --api-key mysecretkey --no-drops`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveServeConfig(cmd)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, logger)
		},
	}

	serveCmd.Flags().String("config", "", "Path to the configuration file (default: ~/.config/ghosthex/config.yaml)")
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Address to bind (overrides config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (overrides config)")
	serveCmd.Flags().String("data-dir", "", "Data directory for the drop store (overrides config)")
	serveCmd.Flags().Bool("no-drops", false, "Disable the drop store")
	serveCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	return serveCmd
}

// resolveServeConfig loads or bootstraps the config file and applies flag overrides
func resolveServeConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	dataDir, _ := cmd.Flags().GetString("data-dir")

	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	var cfg *config.Config
	var err error
	if config.ConfigExists(configPath) {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cmd.Printf("First run detected. Writing configuration to %s\n", configPath)
		cfg, err = config.BootstrapConfig(configPath, dataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to bootstrap config: %w", err)
		}
	}

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
		cfg.Server.Bind = bind
	}
	if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
		cfg.Server.APIKey = apiKey
	}
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	if noDrops, _ := cmd.Flags().GetBool("no-drops"); noDrops {
		cfg.Storage.Enabled = false
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	if cfg.Server.APIKey == "" || cfg.Server.APIKey == "auto" {
		return nil, fmt.Errorf("no API key configured (run 'ghosthex init' or pass --api-key)")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// runServer opens the drop store and runs the API server until ctx is done
func runServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}

	var store storage.DropStore
	if cfg.Storage.Enabled {
		if err := os.MkdirAll(cfg.Storage.DataDir, 0750); err != nil {
			return fmt.Errorf("failed to create data dir: %w", err)
		}
		s, err := container.GetStorageFactory().OpenStorage(cfg.Storage.DataDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := s.Close(); err != nil {
				logger.Error("failed to close drop store", zap.Error(err))
			}
		}()
		store = s
	}

	serverConfig := api.ServerConfig{
		Bind:              cfg.Server.Bind,
		Port:              cfg.Server.Port,
		APIKey:            cfg.Server.APIKey,
		AllowEmptyCarrier: cfg.Codec.AllowEmptyCarrier,
		Strict:            cfg.Codec.Strict,
	}

	starter := container.GetServerFactory().CreateServerStarter()
	return starter.StartServer(ctx, store, serverConfig, logger)
}
