package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kdduha/apple-portrait/backend/internal/config"
	"github.com/kdduha/apple-portrait/backend/internal/handler"
	"github.com/kdduha/apple-portrait/backend/internal/metrics"
	appmw "github.com/kdduha/apple-portrait/backend/internal/middleware"
	"github.com/kdduha/apple-portrait/backend/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	_ "github.com/kdduha/apple-portrait/backend/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

func newRouter(cfg *config.Config, logger zerolog.Logger, generateService *service.GenerateService) http.Handler {
	g := handler.NewGenerateHandler(generateService, logger)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		appmw.Logger(logger),
		middleware.Recoverer,
		metrics.Middleware,
	}...)

	r.Route("/api", func(r chi.Router) {
		r.Use(
			appmw.CORS,
			middleware.Throttle(cfg.Server.ThrottleLimit),
			middleware.Timeout(cfg.Server.Timeout),
		)
		r.Post("/generate", g.Generate)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	if cfg.Server.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.Server.StaticDir)))
	}
	return r
}
