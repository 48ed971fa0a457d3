package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// ErrInvalidSignature is returned by verify when the signature does not match the input
var ErrInvalidSignature = errors.New("invalid signature")

func newVerifyCmd(app *cliApp) *cobra.Command {
	var (
		signature  string
		secretFile string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the signature of a JSON object",
		Long: `Checks a signature produced by sign or POST /sign against the input object.

The command exits 0 when the signature is valid and 1 otherwise.

Example:
  cryptoctl verify --signature 4771e9f0... -f payload.json --secret-file ./hmac.secret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(signature) == "" {
				return errors.New("--signature must be a non-empty string")
			}

			signer, err := app.newSigner(secretFile)
			if err != nil {
				return err
			}

			data, err := app.readObjectInput(cmd)
			if err != nil {
				return err
			}

			if !signer.Verify(signature, data) {
				fmt.Fprintln(cmd.OutOrStdout(), "signature is not valid")
				return ErrInvalidSignature
			}

			app.logger.Debug("signature verified", slog.String("algorithm", signer.Algorithm()))
			fmt.Fprintln(cmd.OutOrStdout(), "signature is valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "hex signature to verify (required)")
	cmd.Flags().StringVar(&secretFile, "secret-file", "", "file containing the HMAC secret (default $HMAC_SECRET)")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
