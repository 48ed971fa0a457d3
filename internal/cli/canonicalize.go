package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/crypto-api/internal/crypto"
)

func newCanonicalizeCmd(app *cliApp) *cobra.Command {
	var rfc8785 bool

	cmd := &cobra.Command{
		Use:   "canonicalize",
		Short: "Print the canonical form of a JSON value",
		Long: `Prints the bytes that sign and verify compute the HMAC over:
keys sorted, no whitespace, integers written exactly and floats normalised with a fraction.

--rfc8785 prints the RFC 8785 (JCS) form instead. That form converts numbers to
float64, so it is useful for comparing with other JCS tools but is not what gets signed.

Example:
  echo '{"b":1,"a":1.50}' | cryptoctl canonicalize`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.readInput(cmd)
			if err != nil {
				return err
			}

			var canonical []byte
			if rfc8785 {
				data, err := json.Marshal(value)
				if err != nil {
					return err
				}
				canonical, err = crypto.CanonicalizeJSON(data)
				if err != nil {
					return fmt.Errorf("failed to canonicalize: %w", err)
				}
			} else {
				canonical, err = crypto.Canonicalize(value)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(canonical))
			return err
		},
	}

	cmd.Flags().BoolVar(&rfc8785, "rfc8785", false, "print the RFC 8785 form (numbers as float64)")
	return cmd
}
