package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinDays = 1
	MaxDays = 30
)

var (
	ErrEmptyDestination  = errors.New("destination is required")
	ErrDaysOutOfRange    = fmt.Errorf("days must be between %d and %d", MinDays, MaxDays)
	ErrBudgetNotPositive = errors.New("budget must be positive")
	ErrPlanNotFound      = errors.New("plan not found")
)

// TripRequest is one form submission. Immutable for the duration of a
// generation cycle.
type TripRequest struct {
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget"`
	Language    string  `json:"language,omitempty"` // empty means source language
}

func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return ErrEmptyDestination
	}
	if r.Days < MinDays || r.Days > MaxDays {
		return ErrDaysOutOfRange
	}
	if r.Budget <= 0 {
		return ErrBudgetNotPositive
	}
	return nil
}

// WeatherDay is one day of forecast, 1-based and contiguous within a plan.
type WeatherDay struct {
	Day         int     `json:"day"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"` // rounded to one decimal
}

// Summary renders the line the merger inserts under a day boundary.
func (w WeatherDay) Summary() string {
	return fmt.Sprintf("Weather: %s, %.1f°C", w.Description, w.TempC)
}

// PlaceRecommendation is one upstream-ranked point of interest.
type PlaceRecommendation struct {
	Name    string   `json:"name"`
	Rating  *float64 `json:"rating,omitempty"` // nil when upstream doesn't rate it
	Address string   `json:"address,omitempty"`
}

// BookingState lives on a plan: false at creation, flipped at most once.
type BookingState struct {
	Confirmed bool   `json:"confirmed"`
	Traveller string `json:"traveller,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// TripPlan is the full result of one generation cycle, held in the session
// store until its TTL lapses. A new generation always starts a fresh plan
// with a cleared BookingState.
type TripPlan struct {
	ID        string                `json:"id"`
	Request   TripRequest           `json:"request"`
	Itinerary string                `json:"itinerary"` // enriched (and possibly translated) text
	Weather   []WeatherDay          `json:"weather,omitempty"`
	Places    []PlaceRecommendation `json:"places,omitempty"`
	Budget    []BudgetLine          `json:"budget"`
	MapURL    string                `json:"map_url,omitempty"`
	Warnings  []string              `json:"warnings,omitempty"`
	Booking   BookingState          `json:"booking"`
}
