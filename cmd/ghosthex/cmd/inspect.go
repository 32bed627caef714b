package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/codec"
)

func newInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the code points of a carrier and its payload",
		Long: `Decode text and list the code points on each side of the payload boundary.

Examples:
  ghosthex inspect --text "$(cat message.txt)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd)
			if err != nil {
				return err
			}

			res := codec.Decode(text)
			status := codec.DescribeDecode(res)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Carrier:\t%s\n", codec.FormatCodePoints(res.Carrier))
			fmt.Fprintf(w, "Payload:\t%s\n", codec.FormatCodePoints(codec.Encode(res.Payload).Sequence))
			fmt.Fprintf(w, "Decoded:\t%q\n", res.Payload)
			fmt.Fprintf(w, "Status:\t%s\n", status.Message)
			return w.Flush()
		},
	}

	inspectCmd.Flags().String("text", "", "Text to inspect (default: read stdin)")

	return inspectCmd
}
