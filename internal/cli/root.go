// Package cli implements cryptoctl, the offline counterpart of the crypto API.
//
// The commands run the same codec and signer as the server against a JSON document
// read from a file or stdin, so tokens and signatures produced here are accepted by the API and vice versa.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/crypto-api/internal/config"
	"github.com/information-sharing-networks/crypto-api/internal/logger"
	"github.com/information-sharing-networks/crypto-api/internal/version"
)

// cliApp holds the state shared by the subcommands
type cliApp struct {
	cfg    *config.CLIEnvironment
	logger *slog.Logger

	// persistent flags
	inputFile string
	pretty    bool
}

// NewRootCmd builds the cryptoctl command tree
func NewRootCmd() *cobra.Command {
	app := &cliApp{}

	rootCmd := &cobra.Command{
		Use:               "cryptoctl",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Encrypt, decrypt, sign and verify JSON documents",
		Long: `cryptoctl runs the crypto API operations locally.

Input is read from --file, or from stdin when --file is not set or is "-".
sign and verify use the secret in HMAC_SECRET unless --secret-file is given.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app.cfg, err = config.NewCLIConfig()
			if err != nil {
				return err
			}

			// results go to stdout, logs to stderr
			app.logger = logger.InitLoggerWithWriter(cmd.ErrOrStderr(), logger.ParseLogLevel(app.cfg.LogLevel), app.cfg.Environment)
			return nil
		},
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	rootCmd.PersistentFlags().StringVarP(&app.inputFile, "file", "f", "", `JSON input file ("-" or unset reads stdin)`)
	rootCmd.PersistentFlags().BoolVar(&app.pretty, "pretty", false, "indent JSON output")

	rootCmd.AddCommand(newEncryptCmd(app))
	rootCmd.AddCommand(newDecryptCmd(app))
	rootCmd.AddCommand(newSignCmd(app))
	rootCmd.AddCommand(newVerifyCmd(app))
	rootCmd.AddCommand(newCanonicalizeCmd(app))
	rootCmd.AddCommand(newKeygenCmd(app))

	return rootCmd
}

func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// an invalid signature is a normal outcome, the message has already been printed
		if !errors.Is(err, ErrInvalidSignature) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
