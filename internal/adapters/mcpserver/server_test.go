package mcpserver_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"trip_planner/internal/adapters/mcpserver"
	"trip_planner/internal/domain"
)

type fakeModel struct {
	itinerary      string
	generateErr    error
	translated     string
	translateErr   error
	generateCalls  int
	translateCalls int
}

func (f *fakeModel) Generate(ctx context.Context, destination string, days int, budget float64) (string, error) {
	f.generateCalls++
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.itinerary, nil
}

func (f *fakeModel) Translate(ctx context.Context, text, language string) (string, error) {
	f.translateCalls++
	if f.translateErr != nil {
		return "", f.translateErr
	}
	return f.translated, nil
}

type fakeWeather struct {
	days []domain.WeatherDay
}

func (f *fakeWeather) Forecast(ctx context.Context, destination string, days int) []domain.WeatherDay {
	return f.days
}

func newServer(t *testing.T, m *fakeModel, w *fakeWeather) *mcpserver.Server {
	t.Helper()
	s, _ := mcpserver.New(m, w, t.TempDir())
	return s
}

func TestGenerateItinerary(t *testing.T) {
	m := &fakeModel{itinerary: "Day 1: Arrive\nDay 2: Explore"}
	s := newServer(t, m, &fakeWeather{})

	res, out, err := s.GenerateItinerary(context.Background(), nil, mcpserver.GenerateInput{
		Destination: "Goa", Days: 2, Budget: 20000,
	})
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if out.Text != m.itinerary {
		t.Errorf("text = %q, want %q", out.Text, m.itinerary)
	}
	if res == nil || len(res.Content) == 0 {
		t.Error("expected text content in result")
	}
	if m.generateCalls != 1 {
		t.Errorf("generate calls = %d, want 1", m.generateCalls)
	}
}

func TestGenerateItineraryRejectsInvalidRequest(t *testing.T) {
	m := &fakeModel{itinerary: "Day 1: Arrive"}
	s := newServer(t, m, &fakeWeather{})

	_, _, err := s.GenerateItinerary(context.Background(), nil, mcpserver.GenerateInput{
		Destination: "", Days: 2, Budget: 20000,
	})
	if !errors.Is(err, domain.ErrEmptyDestination) {
		t.Fatalf("err = %v, want ErrEmptyDestination", err)
	}
	if m.generateCalls != 0 {
		t.Errorf("generate calls = %d, want 0", m.generateCalls)
	}
}

func TestWeatherForecastSummaries(t *testing.T) {
	w := &fakeWeather{days: []domain.WeatherDay{
		{Day: 1, Description: "clear sky", TempC: 29.8},
		{Day: 2, Description: "light rain", TempC: 24},
	}}
	s := newServer(t, &fakeModel{}, w)

	_, out, err := s.WeatherForecast(context.Background(), nil, mcpserver.ForecastInput{Destination: "Goa", Days: 2})
	if err != nil {
		t.Fatalf("WeatherForecast: %v", err)
	}
	want := []string{
		"Weather: clear sky, 29.8°C",
		"Weather: light rain, 24.0°C",
	}
	if len(out.Summaries) != len(want) {
		t.Fatalf("summaries = %v, want %v", out.Summaries, want)
	}
	for i := range want {
		if out.Summaries[i] != want[i] {
			t.Errorf("summary[%d] = %q, want %q", i, out.Summaries[i], want[i])
		}
	}
}

func TestWeatherForecastValidatesInput(t *testing.T) {
	s := newServer(t, &fakeModel{}, &fakeWeather{})

	if _, _, err := s.WeatherForecast(context.Background(), nil, mcpserver.ForecastInput{Destination: "", Days: 2}); !errors.Is(err, domain.ErrEmptyDestination) {
		t.Errorf("blank destination: err = %v, want ErrEmptyDestination", err)
	}
	if _, _, err := s.WeatherForecast(context.Background(), nil, mcpserver.ForecastInput{Destination: "Goa", Days: 0}); !errors.Is(err, domain.ErrDaysOutOfRange) {
		t.Errorf("zero days: err = %v, want ErrDaysOutOfRange", err)
	}
}

func TestTranslateItinerarySkipsSourceLanguage(t *testing.T) {
	m := &fakeModel{translated: "should not be used"}
	s := newServer(t, m, &fakeWeather{})

	for _, lang := range []string{"", "English", "en", "none"} {
		_, out, err := s.TranslateItinerary(context.Background(), nil, mcpserver.TranslateInput{
			Itinerary: "Day 1: Arrive", Language: lang,
		})
		if err != nil {
			t.Fatalf("TranslateItinerary(%q): %v", lang, err)
		}
		if out.Text != "Day 1: Arrive" {
			t.Errorf("lang %q: text = %q, want original", lang, out.Text)
		}
	}
	if m.translateCalls != 0 {
		t.Errorf("translate calls = %d, want 0", m.translateCalls)
	}
}

func TestTranslateItinerary(t *testing.T) {
	m := &fakeModel{translated: "Jour 1: Arrivée"}
	s := newServer(t, m, &fakeWeather{})

	_, out, err := s.TranslateItinerary(context.Background(), nil, mcpserver.TranslateInput{
		Itinerary: "Day 1: Arrive", Language: "French",
	})
	if err != nil {
		t.Fatalf("TranslateItinerary: %v", err)
	}
	if out.Text != "Jour 1: Arrivée" {
		t.Errorf("text = %q, want translated text", out.Text)
	}
}

func TestExportItineraryPDFWritesFile(t *testing.T) {
	s, _ := mcpserver.New(&fakeModel{}, &fakeWeather{}, t.TempDir())

	_, out, err := s.ExportItineraryPDF(context.Background(), nil, mcpserver.ExportInput{
		Itinerary: "Day 1: Arrive", Destination: "Goa",
	})
	if err != nil {
		t.Fatalf("ExportItineraryPDF: %v", err)
	}
	if !strings.HasSuffix(out.Filename, "itinerary_goa.pdf") {
		t.Errorf("filename = %q, want itinerary_goa.pdf suffix", out.Filename)
	}
	data, err := os.ReadFile(out.Filename)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("exported file is not a PDF")
	}
}
