package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/codec"
)

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode trailing variation selectors",
		Long: `Split text into its visible carrier and the payload held in its trailing
variation selectors. Text is taken from --text or, when absent, from stdin.

Examples:
  ghosthex decode --text "$(cat message.txt)"
  ghosthex decode --only-payload < message.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			onlyPayload, _ := cmd.Flags().GetBool("only-payload")
			onlyCarrier, _ := cmd.Flags().GetBool("only-carrier")

			text, err := readText(cmd)
			if err != nil {
				return err
			}

			res := codec.Decode(text)
			out := cmd.OutOrStdout()

			switch {
			case onlyPayload:
				_, err = fmt.Fprint(out, res.Payload)
			case onlyCarrier:
				_, err = fmt.Fprint(out, res.Carrier)
			default:
				_, err = fmt.Fprintf(out, "carrier:\n%s\n\npayload:\n%s", res.Carrier, res.Payload)
			}
			return err
		},
	}

	decodeCmd.Flags().String("text", "", "Text containing a trailing payload (default: read stdin)")
	decodeCmd.Flags().Bool("only-payload", false, "Output only the decoded payload")
	decodeCmd.Flags().Bool("only-carrier", false, "Output only the carrier text")
	decodeCmd.MarkFlagsMutuallyExclusive("only-payload", "only-carrier")

	return decodeCmd
}
