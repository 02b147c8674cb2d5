package main

import (
	"context"
	crypto_rand "crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fisiodesk/fisiodesk/internal/config"
	"github.com/fisiodesk/fisiodesk/internal/domain/authn"
	"github.com/fisiodesk/fisiodesk/internal/domain/consultation"
	"github.com/fisiodesk/fisiodesk/internal/domain/dashboard"
	"github.com/fisiodesk/fisiodesk/internal/domain/patient"
	"github.com/fisiodesk/fisiodesk/internal/domain/therapist"
	"github.com/fisiodesk/fisiodesk/internal/domain/treatment"
	"github.com/fisiodesk/fisiodesk/internal/platform/middleware"
	"github.com/fisiodesk/fisiodesk/internal/platform/session"
	"github.com/fisiodesk/fisiodesk/internal/platform/upstream"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fisiodesk-server",
		Short: "Clinic admin gateway",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gateway server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Session cookies need a signing secret even in development; a random one
	// just means sessions do not survive a restart.
	secret := cfg.SessionSecret
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := crypto_rand.Read(buf); err != nil {
			logger.Fatal().Err(err).Msg("failed to generate session secret")
		}
		secret = hex.EncodeToString(buf)
		logger.Warn().Msg("SESSION_SECRET not set, sessions reset on restart")
	}
	sessions := session.NewManager(secret)

	// Upstream client
	client := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout, logger)
	logger.Info().Str("upstream", cfg.UpstreamURL).Msg("upstream configured")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	e.Use(sessions.Middleware())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API groups
	api := e.Group("/api")
	guarded := e.Group("/api", session.RequireAuth())

	// Auth
	authnSvc := authn.NewService(authn.NewRESTRepository(client))
	authn.NewHandler(authnSvc, sessions).RegisterRoutes(api, guarded)

	// Patients
	patientSvc := patient.NewService(patient.NewRESTRepository(client))
	patient.NewHandler(patientSvc).RegisterRoutes(guarded)

	// Consultations
	consultationSvc := consultation.NewService(consultation.NewRESTRepository(client))
	consultation.NewHandler(consultationSvc).RegisterRoutes(guarded)

	// Treatment sessions
	treatmentSvc := treatment.NewService(treatment.NewRESTRepository(client))
	treatment.NewHandler(treatmentSvc).RegisterRoutes(guarded)

	// Therapists
	therapistSvc := therapist.NewService(therapist.NewRESTRepository(client))
	therapist.NewHandler(therapistSvc).RegisterRoutes(guarded)

	// Dashboard
	dashboardSvc := dashboard.NewService(dashboard.NewRESTRepository(client))
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(guarded)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
