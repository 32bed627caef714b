package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

// NewRootCmd builds the ghosthex command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ghosthex",
		Short: "ghosthex - ASCII <-> VS17-VS144 trailing variation selectors",
		Long: `ghosthex hides an ASCII payload inside ordinary text by appending it as
invisible Unicode variation selectors (VS17-VS144), and recovers it again
from the trailing run of those code points.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newInspectCmd(),
		newStylizeCmd(),
		newInitCmd(),
		newServeCmd(),
		newServiceCmd(),
		newDropCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
		os.Exit(1)
	}
}

// readText returns the --text flag, or stdin when the flag was not given.
// A single trailing line break from stdin is dropped so piped input decodes.
func readText(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("text") {
		return cmd.Flags().GetString("text")
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	text := string(data)
	if strings.HasSuffix(text, "\r\n") {
		return strings.TrimSuffix(text, "\r\n"), nil
	}
	return strings.TrimSuffix(text, "\n"), nil
}
