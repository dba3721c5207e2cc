package app

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"trip_planner/internal/domain"
)

// Planner runs one full generation cycle: itinerary text first, then the two
// enrichment adapters in parallel (both fail soft), then the merge, then the
// optional translation, then the budget split. The finished plan is saved to
// the session store so the PDF and booking endpoints can replay it.
type Planner struct {
	model   domain.TextModel
	weather domain.WeatherProvider
	places  domain.PlacesProvider
	store   domain.PlanStore
	mapsKey string
}

func NewPlanner(m domain.TextModel, w domain.WeatherProvider, p domain.PlacesProvider, s domain.PlanStore, mapsKey string) *Planner {
	return &Planner{model: m, weather: w, places: p, store: s, mapsKey: mapsKey}
}

func (p *Planner) Generate(ctx context.Context, req domain.TripRequest) (domain.TripPlan, error) {
	if err := req.Validate(); err != nil {
		return domain.TripPlan{}, err
	}

	text, err := p.model.Generate(ctx, req.Destination, req.Days, req.Budget)
	if err != nil {
		// GenerationFailure aborts the cycle; nothing is stored.
		return domain.TripPlan{}, fmt.Errorf("itinerary generation: %w", err)
	}

	var (
		weather []domain.WeatherDay
		places  []domain.PlaceRecommendation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		weather = p.weather.Forecast(gctx, req.Destination, req.Days)
		return nil
	})
	g.Go(func() error {
		places = p.places.Recommendations(gctx, req.Destination)
		return nil
	})
	_ = g.Wait() // adapters fail soft, never an error

	plan := domain.TripPlan{
		ID:      newPlanID(),
		Request: req,
		Weather: weather,
		Places:  places,
		Budget:  domain.SplitBudget(req.Budget),
		MapURL:  p.mapEmbedURL(req.Destination),
	}
	if len(weather) == 0 {
		plan.Warnings = append(plan.Warnings, "weather forecast unavailable")
	}
	if len(places) == 0 {
		plan.Warnings = append(plan.Warnings, "place recommendations unavailable")
	}

	merged := MergeEnrichment(text, weather, places)
	plan.Itinerary = p.translate(ctx, merged, req.Language, &plan.Warnings)

	if err := p.store.Save(ctx, plan); err != nil {
		return domain.TripPlan{}, fmt.Errorf("save plan: %w", err)
	}
	log.Info().
		Str("plan", plan.ID).
		Str("destination", req.Destination).
		Int("days", req.Days).
		Int("weather_days", len(weather)).
		Int("places", len(places)).
		Msg("plan generated")
	return plan, nil
}

// Get replays a stored plan for the given ID.
func (p *Planner) Get(ctx context.Context, id string) (domain.TripPlan, error) {
	return p.store.Get(ctx, id)
}

// translate applies the all-or-nothing translation step. A failed translation
// never aborts the cycle: the original text comes back with a trailing
// warning annotation.
func (p *Planner) translate(ctx context.Context, text, language string, warnings *[]string) string {
	if isSourceLanguage(language) {
		return text
	}
	translated, err := p.model.Translate(ctx, text, language)
	if err != nil {
		log.Warn().Err(err).Str("language", language).Msg("translation failed, keeping original text")
		*warnings = append(*warnings, fmt.Sprintf("translation to %s failed", language))
		return text + fmt.Sprintf("\n[Translation to %s unavailable - original text shown.]\n", language)
	}
	return translated
}

func isSourceLanguage(language string) bool {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "none", "en", "english":
		return true
	}
	return false
}

func (p *Planner) mapEmbedURL(destination string) string {
	if p.mapsKey == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/embed/v1/place?key=%s&q=%s",
		url.QueryEscape(p.mapsKey), url.QueryEscape(destination))
}

func newPlanID() string {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand is assumed available; a zero ID still round-trips.
		return "00000000"
	}
	return hex.EncodeToString(b[:])
}
