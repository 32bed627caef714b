package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/codec"
)

func newStylizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stylize <text>...",
		Short: "Render text with styled glyphs",
		Long: `Replace ASCII letters with mathematical styled glyphs, as the ghosthex UI does
for its own labels. Arguments are joined with spaces.

Example:
  ghosthex stylize hidden in plain sight`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), codec.Stylize(strings.Join(args, " ")))
			return err
		},
	}
}
