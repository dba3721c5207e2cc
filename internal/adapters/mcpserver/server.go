// Package mcpserver exposes the planner's building blocks as stateless MCP
// tools over stdio. Each tool is an independent request/response call; no
// tool observes another tool's state.
package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"trip_planner/internal/adapters/pdfdoc"
	"trip_planner/internal/domain"
)

type Server struct {
	model   domain.TextModel
	weather domain.WeatherProvider
	outDir  string
}

// New wires the four trip tools onto an MCP server. outDir is where
// export_itinerary_pdf writes its file; empty means the OS temp dir.
func New(model domain.TextModel, weather domain.WeatherProvider, outDir string) (*Server, *mcp.Server) {
	if outDir == "" {
		outDir = os.TempDir()
	}
	s := &Server{model: model, weather: weather, outDir: outDir}

	srv := mcp.NewServer(&mcp.Implementation{Name: "trip-planner", Version: "1.0.0"}, nil)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_itinerary",
		Description: "Generate a day-wise trip itinerary for a destination, number of days and total budget.",
	}, s.GenerateItinerary)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "weather_forecast",
		Description: "Fetch a daily weather forecast for a destination as one summary line per day.",
	}, s.WeatherForecast)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "translate_itinerary",
		Description: "Translate an itinerary into the given language, preserving its line structure.",
	}, s.TranslateItinerary)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "export_itinerary_pdf",
		Description: "Render an itinerary to a PDF file and return the written filename.",
	}, s.ExportItineraryPDF)
	return s, srv
}

type GenerateInput struct {
	Destination string  `json:"destination" jsonschema:"trip destination"`
	Days        int     `json:"days" jsonschema:"trip length in days (1-30)"`
	Budget      float64 `json:"budget" jsonschema:"total budget, must be positive"`
}

type TextOutput struct {
	Text string `json:"text"`
}

func (s *Server) GenerateItinerary(ctx context.Context, req *mcp.CallToolRequest, in GenerateInput) (*mcp.CallToolResult, TextOutput, error) {
	tr := domain.TripRequest{Destination: in.Destination, Days: in.Days, Budget: in.Budget}
	if err := tr.Validate(); err != nil {
		return nil, TextOutput{}, err
	}
	text, err := s.model.Generate(ctx, in.Destination, in.Days, in.Budget)
	if err != nil {
		return nil, TextOutput{}, fmt.Errorf("itinerary generation: %w", err)
	}
	return textResult(text), TextOutput{Text: text}, nil
}

type ForecastInput struct {
	Destination string `json:"destination" jsonschema:"trip destination"`
	Days        int    `json:"days" jsonschema:"number of days to forecast (1-30)"`
}

type ForecastOutput struct {
	Summaries []string `json:"summaries"`
}

func (s *Server) WeatherForecast(ctx context.Context, req *mcp.CallToolRequest, in ForecastInput) (*mcp.CallToolResult, ForecastOutput, error) {
	if in.Destination == "" {
		return nil, ForecastOutput{}, domain.ErrEmptyDestination
	}
	if in.Days < domain.MinDays || in.Days > domain.MaxDays {
		return nil, ForecastOutput{}, domain.ErrDaysOutOfRange
	}
	days := s.weather.Forecast(ctx, in.Destination, in.Days)
	out := ForecastOutput{Summaries: make([]string, 0, len(days))}
	for _, d := range days {
		out.Summaries = append(out.Summaries, d.Summary())
	}
	return nil, out, nil
}

type TranslateInput struct {
	Itinerary string `json:"itinerary" jsonschema:"itinerary text to translate"`
	Language  string `json:"language" jsonschema:"target language, e.g. French"`
}

func (s *Server) TranslateItinerary(ctx context.Context, req *mcp.CallToolRequest, in TranslateInput) (*mcp.CallToolResult, TextOutput, error) {
	if isSourceLanguage(in.Language) {
		return textResult(in.Itinerary), TextOutput{Text: in.Itinerary}, nil
	}
	text, err := s.model.Translate(ctx, in.Itinerary, in.Language)
	if err != nil {
		return nil, TextOutput{}, fmt.Errorf("translation: %w", err)
	}
	return textResult(text), TextOutput{Text: text}, nil
}

type ExportInput struct {
	Itinerary   string `json:"itinerary" jsonschema:"itinerary text to render"`
	Destination string `json:"destination,omitempty" jsonschema:"destination used in the document title and filename"`
}

type ExportOutput struct {
	Filename string `json:"filename"`
}

func (s *Server) ExportItineraryPDF(ctx context.Context, req *mcp.CallToolRequest, in ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
	data, name, err := pdfdoc.Export(in.Destination, in.Itinerary)
	if err != nil {
		return nil, ExportOutput{}, fmt.Errorf("pdf export: %w", err)
	}
	path := filepath.Join(s.outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, ExportOutput{}, fmt.Errorf("pdf export: write %s: %w", path, err)
	}
	return nil, ExportOutput{Filename: path}, nil
}

func isSourceLanguage(language string) bool {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "none", "en", "english":
		return true
	}
	return false
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: text}}}
}
