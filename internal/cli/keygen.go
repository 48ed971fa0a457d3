package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// minSecretSize is the smallest secret keygen will create, in bytes
const minSecretSize = 16

func newKeygenCmd(app *cliApp) *cobra.Command {
	var (
		size       int
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random HMAC secret",
		Long: `Generate a random secret for HMAC_SECRET or --secret-file.

The secret is hex encoded. It is written to --output (mode 0600) or stdout.

Example:
  cryptoctl keygen --output ./hmac.secret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < minSecretSize {
				return fmt.Errorf("--size must be at least %d bytes, got %d", minSecretSize, size)
			}

			key := make([]byte, size)
			if _, err := rand.Read(key); err != nil {
				return fmt.Errorf("failed to generate secret: %w", err)
			}
			secret := hex.EncodeToString(key)

			if outputPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), secret)
				return nil
			}

			if !force {
				if _, err := os.Stat(outputPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
				}
			}

			if err := os.WriteFile(outputPath, []byte(secret+"\n"), 0o600); err != nil {
				return fmt.Errorf("failed to write secret: %w", err)
			}

			app.logger.Info("secret written",
				slog.String("path", outputPath),
				slog.Int("bytes", size))
			fmt.Fprintf(cmd.OutOrStdout(), "HMAC secret written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 32, "secret size in bytes")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "file to write the secret to (default stdout)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing output file")
	return cmd
}
