package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apihandlers "github.com/information-sharing-networks/crypto-api/internal/api/handlers"
	"github.com/information-sharing-networks/crypto-api/internal/config"
	"github.com/information-sharing-networks/crypto-api/internal/crypto"
	"github.com/information-sharing-networks/crypto-api/internal/metrics"
	"github.com/information-sharing-networks/crypto-api/internal/server/handlers"
	"github.com/information-sharing-networks/crypto-api/internal/server/middleware"
	"github.com/information-sharing-networks/crypto-api/internal/version"
)

type Server struct {
	config *config.ServerEnvironment
	logger *slog.Logger
	router *chi.Mux
	codec  crypto.ValueCodec

	// signer is nil when no HMAC secret is configured
	signer crypto.Signer
}

func NewServer(
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) (*Server, error) {
	server := &Server{
		config: cfg,
		logger: logger,
		router: chi.NewRouter(),
		codec:  crypto.NewBase64JSONCodec(),
	}

	if err := server.initSigner(); err != nil {
		return nil, fmt.Errorf("failed to initialize signer: %w", err)
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server, nil
}

// initSigner creates the HMAC signer.
//
// A missing secret is not fatal: the service starts, reports not ready and
// /sign and /verify return 503 until it is restarted with HMAC_SECRET set.
func (s *Server) initSigner() error {
	signer, err := crypto.NewHMACSHA256Signer(s.config.Secret())
	if err != nil {
		if crypto.IsConfigError(err) {
			s.logger.Warn("HMAC_SECRET is not set, /sign and /verify are unavailable")
			return nil
		}
		return err
	}

	s.signer = signer
	s.logger.Info("signer initialized",
		slog.String("algorithm", signer.Algorithm()))

	return nil
}

// Router returns the configured router (used by tests to serve requests without a listener)
func (s *Server) Router() http.Handler {
	return s.router
}

// Ready reports whether every endpoint can be served
func (s *Server) Ready() bool {
	return s.signer != nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.RequestLogging(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
}

func (s *Server) registerRoutes() {
	s.router.Route("/health", func(r chi.Router) {
		r.Get("/live", handlers.HandleHealth)
		r.Get("/ready", handlers.HandleReadiness(s.Ready()))
	})
	s.router.Get("/version", handlers.HandleVersion(version.Get()))
	s.router.Handle("/metrics", metrics.Handler())
	s.router.Get("/swagger/doc.json", handlers.HandleOpenAPIDoc)

	encryptHandler := apihandlers.NewEncryptHandler(s.codec)
	decryptHandler := apihandlers.NewDecryptHandler(s.codec)
	signHandler := apihandlers.NewSignHandler(s.signer)
	verifyHandler := apihandlers.NewVerifyHandler(s.signer)

	s.router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
		r.Use(middleware.RequestSizeLimit(s.config.MaxRequestSize))

		r.Post("/encrypt", encryptHandler.HandleEncrypt)
		r.Post("/decrypt", decryptHandler.HandleDecrypt)
		r.Post("/sign", signHandler.HandleSign)
		r.Post("/verify", verifyHandler.HandleVerify)
	})
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr),
			slog.Bool("ready", s.Ready()))

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
