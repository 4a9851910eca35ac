package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kdduha/apple-portrait/backend/internal/config"
	"github.com/kdduha/apple-portrait/backend/internal/logger"
	"github.com/kdduha/apple-portrait/backend/internal/service"
	"github.com/rs/zerolog/log"
)

// @title Apple Portrait API
// @version 1.0
// @description Turns an uploaded photo into an Apple executive style studio portrait.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	logger := logger.New(cfg.AppEnv, cfg.LogLevel)
	generateService := service.NewGenerateService(logger, cfg.Provider)
	if !cfg.Provider.Configured() {
		logger.Warn().Msg("NANOBANANA_API_URL is not set, serving placeholder images")
	} else {
		logger.Info().Str("provider", cfg.Provider.Kind).Dur("timeout", cfg.Provider.Timeout).Msg("provider configured")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: newRouter(cfg, logger, generateService),
	}

	go func() {
		logger.Info().Msgf("server started on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server stopped")
}
