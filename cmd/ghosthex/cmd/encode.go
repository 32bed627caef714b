package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/ghosthex/pkg/codec"
)

func newEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a payload into trailing variation selectors",
		Long: `Append an ASCII payload to the carrier text as invisible variation selectors.

The result is written to stdout without a trailing newline. Non-ASCII payload
characters are skipped with a warning on stderr, or rejected with --strict.

Examples:
  ghosthex encode --carrier "nothing to see here" --payload "meet at 6"
  ghosthex encode --carrier "" --payload secret --allow-empty-carrier`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hidden, err := hideFromFlags(cmd)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), hidden)
			return err
		},
	}

	addHideFlags(encodeCmd)

	return encodeCmd
}

func addHideFlags(cmd *cobra.Command) {
	cmd.Flags().String("carrier", "", "Visible carrier text (required)")
	cmd.Flags().String("payload", "", "ASCII payload to hide (required)")
	cmd.Flags().Bool("allow-empty-carrier", false, "Allow encoding with an empty carrier")
	cmd.Flags().Bool("strict", false, "Reject non-ASCII payload characters instead of skipping them")
	_ = cmd.MarkFlagRequired("carrier")
	_ = cmd.MarkFlagRequired("payload")
}

// hideFromFlags runs Hide with the codec flags of cmd, warning on stderr about
// skipped characters
func hideFromFlags(cmd *cobra.Command) (string, error) {
	carrier, _ := cmd.Flags().GetString("carrier")
	payload, _ := cmd.Flags().GetString("payload")
	allowEmpty, _ := cmd.Flags().GetBool("allow-empty-carrier")
	strict, _ := cmd.Flags().GetBool("strict")

	var opts []codec.Option
	if allowEmpty {
		opts = append(opts, codec.WithAllowEmptyCarrier())
	}
	if strict {
		opts = append(opts, codec.WithStrict())
	}

	hidden, res, err := codec.NewCodec(opts...).Hide(carrier, payload)
	if err != nil {
		return "", err
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", codec.Describe(res).Message)
	}
	return hidden, nil
}
