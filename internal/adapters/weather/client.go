// internal/adapters/weather/client.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

const DefaultBase = "https://api.openweathermap.org/data/2.5"

// Client talks to the OpenWeather 5-day/3-hour forecast endpoint. Every
// failure mode (no credential, transport error, non-2xx, shape mismatch)
// degrades to an empty forecast; the planner renders the plan without
// weather annotations. One request, no retries.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) *Client {
	if base == "" {
		base = DefaultBase
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: 15 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Upstream entries arrive at 3-hour resolution. We keep the first entry seen
// per calendar date (per dt_txt), which is deterministic regardless of where
// in the day the series starts.
type forecastPayload struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

func (c *Client) Forecast(ctx context.Context, destination string, days int) []domain.WeatherDay {
	if c.key == "" {
		log.Warn().Msg("weather: no API key configured, skipping forecast")
		return nil
	}
	if days <= 0 {
		return nil
	}
	if err := c.rl.Wait(ctx); err != nil {
		return nil
	}

	u := fmt.Sprintf("%s/forecast?q=%s&units=metric&appid=%s",
		c.base, url.QueryEscape(destination), url.QueryEscape(c.key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("openweather", "forecast", 0, time.Since(start))
		log.Warn().Err(err).Str("destination", destination).Msg("weather: request failed")
		return nil
	}
	defer resp.Body.Close()
	observability.ObserveExternal("openweather", "forecast", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("destination", destination).Msg("weather: non-success status")
		return nil
	}

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn().Err(err).Msg("weather: malformed payload")
		return nil
	}

	return sampleDaily(payload, days)
}

// sampleDaily reduces the 3-hourly series to one WeatherDay per calendar
// date, preserving upstream order and capping at days entries.
func sampleDaily(payload forecastPayload, days int) []domain.WeatherDay {
	var out []domain.WeatherDay
	lastDate := ""
	for _, e := range payload.List {
		if len(e.DtTxt) < 10 || len(e.Weather) == 0 {
			continue
		}
		date := e.DtTxt[:10]
		if date == lastDate {
			continue
		}
		lastDate = date
		out = append(out, domain.WeatherDay{
			Day:         len(out) + 1,
			Description: e.Weather[0].Description,
			TempC:       math.Round(e.Main.Temp*10) / 10,
		})
		if len(out) == days {
			break
		}
	}
	return out
}
