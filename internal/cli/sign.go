package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/crypto-api/internal/api"
	"github.com/information-sharing-networks/crypto-api/internal/crypto"
)

// newSigner returns a signer using the --secret-file contents or HMAC_SECRET.
// A trailing newline in the file is not part of the secret.
func (a *cliApp) newSigner(secretFile string) (crypto.Signer, error) {
	secret := a.cfg.HMACSecret

	if secretFile != "" {
		data, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read secret file: %w", err)
		}
		secret = strings.TrimRight(string(data), "\r\n")
	}

	signer, err := crypto.NewHMACSHA256Signer([]byte(secret))
	if err != nil {
		if crypto.IsConfigError(err) {
			return nil, errors.New("HMAC secret missing: set HMAC_SECRET or use --secret-file")
		}
		return nil, err
	}
	return signer, nil
}

func newSignCmd(app *cliApp) *cobra.Command {
	var secretFile string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a JSON value",
		Long: `Prints {"signature": "<hex>"} for the input, as POST /sign does.
The input can be any JSON value.

Example:
  HMAC_SECRET=secret cryptoctl sign -f payload.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := app.newSigner(secretFile)
			if err != nil {
				return err
			}

			value, err := app.readInput(cmd)
			if err != nil {
				return err
			}

			signature, err := signer.Sign(value)
			if err != nil {
				return err
			}
			return app.writeJSON(cmd, api.SignResponse{Signature: signature})
		},
	}

	cmd.Flags().StringVar(&secretFile, "secret-file", "", "file containing the HMAC secret (default $HMAC_SECRET)")
	return cmd
}
