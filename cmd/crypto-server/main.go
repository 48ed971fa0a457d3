package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/crypto-api/internal/config"
	_ "github.com/information-sharing-networks/crypto-api/internal/docs"
	"github.com/information-sharing-networks/crypto-api/internal/logger"
	"github.com/information-sharing-networks/crypto-api/internal/server"
	"github.com/information-sharing-networks/crypto-api/internal/version"
)

//	@title			Crypto API
//	@description	Encrypts, decrypts, signs and verifies JSON payloads.
//	@description
//	@description	## Encryption
//	@description	/encrypt replaces each top-level value of an object with base64(JSON(value)), /decrypt reverses it.
//	@description	This is an encoding: it hides values from casual inspection but provides no confidentiality.
//	@description
//	@description	## Signatures
//	@description	/sign returns the HMAC-SHA256 of the canonical form of the payload, /verify checks it.
//	@description	Signatures do not depend on property order or whitespace.
//	@description
//	@description	## Common Error Responses
//	@description	All endpoints may return:
//	@description	- `413` Request body exceeds size limit
//	@description	- `429` Rate limit exceeded
//	@description	- `500` Internal server error
//	@description
//	@description	/sign and /verify return `503` when the server has no HMAC secret.
//	@description
//	@description	Check the X-Max-Request-Size response header for the configured limit on request bodies.
//	@license.name	MIT

//	@servers.url			http://localhost:8080
//	@servers.description	Development server

//	@accept		json
//	@produce	json

//	@tag.name			Crypto
//	@tag.description	Encrypt, decrypt, sign and verify

//	@tag.name			Common
//	@tag.description	Server API endpoints (health, readiness, version, etc.)

func main() {
	cmd := &cobra.Command{
		Use:   "crypto-server",
		Short: "Crypto API server",
		Long:  `crypto-server serves the /encrypt, /decrypt, /sign and /verify endpoints. It is configured with environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	// the secret itself is never logged
	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.Int64("MAX_REQUEST_SIZE", cfg.MaxRequestSize),
		slog.Int("RATE_LIMIT_RPS", int(cfg.RateLimitRPS)),
		slog.Int("RATE_LIMIT_BURST", int(cfg.RateLimitBurst)),
		slog.Bool("HMAC_SECRET_SET", cfg.HasSecret()),
	)

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := server.NewServer(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := server.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
