package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/codec"
	"github.com/ssargent/ghosthex/pkg/config"
	"github.com/ssargent/ghosthex/pkg/storage"
)

const defaultDropDir = "./data"

func newDropCmd() *cobra.Command {
	dropCmd := &cobra.Command{
		Use:   "drop",
		Short: "Manage stored drops in a local data directory",
		Long: `Create, read, list and delete drops in the local drop store without
running the server. The data directory comes from --data-dir, otherwise from
the storage.data_dir of the configuration file, otherwise ./data.

The server keeps the store open while it runs, so stop it first.`,
	}

	dropCmd.PersistentFlags().String("config", "", "Path to the configuration file (default: ~/.config/ghosthex/config.yaml)")
	dropCmd.PersistentFlags().String("data-dir", "", "Data directory of the drop store")

	dropCmd.AddCommand(
		newDropCreateCmd(),
		newDropGetCmd(),
		newDropListCmd(),
		newDropRemoveCmd(),
	)

	return dropCmd
}

func newDropCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Hide a payload and store the result",
		Long: `Hide the payload in the carrier and store the text as a new drop.
The new drop id is printed on stdout.

Example:
  ghosthex drop create --carrier "see you tomorrow" --payload "pier 4"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hidden, err := hideFromFlags(cmd)
			if err != nil {
				return err
			}

			return withDropStore(cmd, func(store storage.DropStore) error {
				drop, err := store.Create(hidden)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), drop.ID)
				return err
			})
		},
	}

	addHideFlags(createCmd)

	return createCmd
}

func newDropGetCmd() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a drop with its decoded payload",
		Long: `Show the carrier and payload of a stored drop, or with --raw the stored
text itself.

Example:
  ghosthex drop get 2X5Kt1nVNoC8Ejj6UBCxpOqgNhl --raw > message.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withDropStore(cmd, func(store storage.DropStore) error {
				drop, err := store.Read(id)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if raw {
					_, err = fmt.Fprint(out, drop.Text)
					return err
				}

				res := codec.Decode(drop.Text)
				_, err = fmt.Fprintf(out, "id: %s\ncreated: %s\n\ncarrier:\n%s\n\npayload:\n%s\n",
					drop.ID, drop.CreatedAt.Format(time.RFC3339), res.Carrier, res.Payload)
				return err
			})
		},
	}

	getCmd.Flags().Bool("raw", false, "Print the stored text, payload still hidden")

	return getCmd
}

func newDropListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List drops, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			return withDropStore(cmd, func(store storage.DropStore) error {
				drops, err := store.List(limit)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tCREATED\tBYTES\tCARRIER")
				for _, d := range drops {
					res := codec.Decode(d.Text)
					fmt.Fprintf(w, "%s\t%s\t%d\t%q\n", d.ID, d.CreatedAt.Format(time.RFC3339), res.Count, res.Carrier)
				}
				return w.Flush()
			})
		},
	}

	listCmd.Flags().Int("limit", 0, "Maximum number of drops (0 lists all)")

	return listCmd
}

func newDropRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a drop",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withDropStore(cmd, func(store storage.DropStore) error {
				if err := store.Delete(id); err != nil {
					return err
				}
				cmd.Printf("Deleted drop %s\n", id)
				return nil
			})
		},
	}
}

func parseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("invalid drop id %q: %w", s, err)
	}
	return id, nil
}

// resolveDropDir picks the data directory for the drop commands
func resolveDropDir(cmd *cobra.Command) (string, error) {
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		return dataDir, nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}
	if !config.ConfigExists(configPath) {
		return defaultDropDir, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Storage.DataDir == "" {
		return defaultDropDir, nil
	}
	return cfg.Storage.DataDir, nil
}

// withDropStore opens the drop store through the container and closes it after fn
func withDropStore(cmd *cobra.Command, fn func(storage.DropStore) error) (err error) {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}

	dataDir, err := resolveDropDir(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	store, err := container.GetStorageFactory().OpenStorage(dataDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close drop store: %w", cerr)
		}
	}()

	return fn(store)
}
