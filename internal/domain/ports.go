package domain

import "context"

// TextModel is the generative text service. Generate errors propagate to the
// caller (the cycle aborts); Translate failures are handled by the planner's
// fail-soft policy instead.
type TextModel interface {
	Generate(ctx context.Context, destination string, days int, budget float64) (string, error)
	Translate(ctx context.Context, text, language string) (string, error)
}

// WeatherProvider returns at most days entries, one per calendar day, in day
// order. Implementations fail soft: missing credentials, upstream errors and
// malformed payloads all yield an empty slice and a nil error.
type WeatherProvider interface {
	Forecast(ctx context.Context, destination string, days int) []WeatherDay
}

// PlacesProvider returns the top recommendations for a destination, at most
// five, in upstream rank order. Same fail-soft contract as WeatherProvider.
type PlacesProvider interface {
	Recommendations(ctx context.Context, destination string) []PlaceRecommendation
}

// PlanStore keeps generated plans for the lifetime of an interactive session.
type PlanStore interface {
	Save(ctx context.Context, plan TripPlan) error
	Get(ctx context.Context, id string) (TripPlan, error) // ErrPlanNotFound when absent or expired
	Update(ctx context.Context, plan TripPlan) error
}
