package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"trip_planner/internal/adapters/gemini"
	"trip_planner/internal/adapters/mcpserver"
	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/adapters/weather"
	"trip_planner/internal/shared"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// stdout carries the wire protocol, so logs go to stderr
	log.Logger = observability.NewStderrLogger(cfg.AppEnv)

	if cfg.GeminiAPIKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY is not set; cannot generate itineraries")
	}

	ctx := context.Background()

	model, err := gemini.New(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client failed")
	}
	forecast := weather.New(cfg.WeatherBase, cfg.WeatherKey, cfg.OutboundRPS)

	_, srv := mcpserver.New(model, forecast, "")

	log.Info().Msg("MCP server listening on stdio")
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal().Err(err).Msg("mcp server failed")
	}
}
