package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults
type ServerEnvironment struct {

	// http server settings
	Environment           string        `env:"ENVIRONMENT,default=dev"`
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=8080"`
	LogLevel              string        `env:"LOG_LEVEL,default=info"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=10s"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=60s"`

	// request limits
	MaxRequestSize int64 `env:"MAX_REQUEST_SIZE,default=2097152"`
	RateLimitRPS   int32 `env:"RATE_LIMIT_RPS,default=100"`
	RateLimitBurst int32 `env:"RATE_LIMIT_BURST,default=200"`

	// HMACSecret is the signing key for /sign and /verify.
	// It is not required at startup: without it the service reports not ready
	// and the signing endpoints return 503.
	HMACSecret string `env:"HMAC_SECRET"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil

}

// Secret returns the HMAC secret as bytes (nil when not configured).
func (c *ServerEnvironment) Secret() []byte {
	if c.HMACSecret == "" {
		return nil
	}
	return []byte(c.HMACSecret)
}

// HasSecret reports whether an HMAC secret is configured.
func (c *ServerEnvironment) HasSecret() bool {
	return c.HMACSecret != ""
}

// validateConfig checks for required env variables
func validateConfig(cfg *ServerEnvironment) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	if cfg.MaxRequestSize < 1 {
		return fmt.Errorf("MAX_REQUEST_SIZE must be at least 1, got %d", cfg.MaxRequestSize)
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	return nil
}

// CLIEnvironment is the configuration read by cryptoctl.
// The secret can also be given with --secret-file, which takes precedence.
type CLIEnvironment struct {
	Environment string `env:"ENVIRONMENT,default=dev"`
	LogLevel    string `env:"LOG_LEVEL,default=warn"`
	HMACSecret  string `env:"HMAC_SECRET"`
}

// NewCLIConfig loads the cryptoctl configuration from the environment
func NewCLIConfig() (*CLIEnvironment, error) {
	var cfg CLIEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if !validEnvs[cfg.Environment] {
		return nil, fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	return &cfg, nil
}
