package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/crypto-api/internal/crypto"
)

func newEncryptCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt the top-level properties of a JSON object",
		Long: `Replaces every top-level value with its token, as POST /encrypt does.

Example:
  echo '{"name":"John Doe","age":30}' | cryptoctl encrypt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := app.readObjectInput(cmd)
			if err != nil {
				return err
			}

			result, err := crypto.EncryptProperties(crypto.NewBase64JSONCodec(), obj)
			if err != nil {
				return err
			}

			app.logger.Debug("encrypted properties", slog.Int("properties", result.Len()))
			return app.writeJSON(cmd, result)
		},
	}
}

func newDecryptCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt the top-level properties of a JSON object",
		Long: `Decodes every top-level string that is a token, as POST /decrypt does.
Other values are written unchanged.

Example:
  cryptoctl decrypt -f encrypted.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := app.readObjectInput(cmd)
			if err != nil {
				return err
			}

			result, unchanged := crypto.DecryptProperties(crypto.NewBase64JSONCodec(), obj)

			app.logger.Debug("decrypted properties",
				slog.Int("properties", result.Len()),
				slog.Int("unchanged", unchanged))
			return app.writeJSON(cmd, result)
		},
	}
}
