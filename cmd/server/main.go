// Package main is the entry point for the accommodation search service.
//
//	@title						Accommodation Search Aggregation API
//	@version					1.0.0
//	@description				An accommodation search service that resolves lodging options through an ordered provider chain and enriches trip itineraries with live options.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-planner/accommodation-aggregation-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/trip-planner/accommodation-aggregation-system/docs"

	accomhttp "github.com/trip-planner/accommodation-aggregation-system/internal/adapter/http"
	"github.com/trip-planner/accommodation-aggregation-system/internal/adapter/http/middleware"
	"github.com/trip-planner/accommodation-aggregation-system/internal/adapter/provider/amadeus"
	"github.com/trip-planner/accommodation-aggregation-system/internal/adapter/provider/catalogue"
	"github.com/trip-planner/accommodation-aggregation-system/internal/adapter/provider/opentripmap"
	"github.com/trip-planner/accommodation-aggregation-system/internal/config"
	"github.com/trip-planner/accommodation-aggregation-system/internal/domain"
	"github.com/trip-planner/accommodation-aggregation-system/internal/infrastructure/logger"
	"github.com/trip-planner/accommodation-aggregation-system/internal/infrastructure/timeutil"
	"github.com/trip-planner/accommodation-aggregation-system/internal/obs"
	"github.com/trip-planner/accommodation-aggregation-system/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "accommodation-search",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	metrics := obs.New(prometheus.NewRegistry())

	setupRoutes(e, cfg, log, metrics)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the provider chain, use case, and HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, metrics *obs.Metrics) {
	chain := buildChain(cfg, log)

	uc := usecase.New(chain, &usecase.Config{
		CacheTTL: cfg.Cache.TTL,
		Logger:   log.Logger,
		Metrics:  metrics,
	})

	handler := accomhttp.NewAccommodationHandler(uc)
	accomhttp.RegisterRoutes(e, handler)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// buildChain assembles the provider chain in priority order. Providers
// without credentials report themselves unavailable and are skipped at
// search time, so all three are always registered.
func buildChain(cfg *config.Config, log *logger.Logger) *domain.Chain {
	amadeusAdapter := amadeus.New(amadeus.Config{
		ClientID:     cfg.Providers.AmadeusClientID,
		ClientSecret: cfg.Providers.AmadeusClientSecret,
		BaseURL:      cfg.Providers.AmadeusBaseURL,
		Timeout:      cfg.Timeouts.PerProvider,
	}, log.WithProvider(amadeus.ProviderName).Logger, timeutil.NewRealClock())

	otmAdapter := opentripmap.New(opentripmap.Config{
		APIKey:  cfg.Providers.OpenTripMapAPIKey,
		BaseURL: cfg.Providers.OpenTripMapBaseURL,
		Timeout: cfg.Timeouts.PerProvider,
	}, log.WithProvider(opentripmap.ProviderName).Logger)

	catalogueAdapter := catalogue.New(log.WithProvider("catalogue").Logger)

	return domain.NewChain(amadeusAdapter, otmAdapter, catalogueAdapter)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
