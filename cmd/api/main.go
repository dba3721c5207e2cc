package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/adapters/gemini"
	server "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/adapters/places"
	"trip_planner/internal/adapters/redisstore"
	"trip_planner/internal/adapters/weather"
	"trip_planner/internal/app"
	"trip_planner/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.GeminiAPIKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY is not set; cannot generate itineraries")
	}

	ctx := context.Background()

	// deps
	model, err := gemini.New(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client failed")
	}
	forecast := weather.New(cfg.WeatherBase, cfg.WeatherKey, cfg.OutboundRPS)
	recs := places.New(cfg.PlacesBase, cfg.PlacesKey, cfg.OutboundRPS)
	store := redisstore.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.PlanTTL)

	planner := app.NewPlanner(model, forecast, recs, store, cfg.MapsKey)
	booking := app.NewBookingService(store)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Planner: planner, Booking: booking})

	if cfg.MetricsAddr != "" {
		observability.Serve(cfg.MetricsAddr, reg)
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
