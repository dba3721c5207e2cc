// internal/adapters/places/client.go
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
)

const (
	DefaultBase = "https://maps.googleapis.com/maps/api/place"

	// maxRecommendations caps the list at the upstream top entries, in
	// upstream rank order. No re-ranking.
	maxRecommendations = 5
)

// Client queries the Places text-search endpoint for top attractions. Same
// fail-soft contract as the weather adapter: any failure yields an empty
// list and never an error.
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

type searchPayload struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string   `json:"name"`
		Rating           *float64 `json:"rating"`
		FormattedAddress string   `json:"formatted_address"`
	} `json:"results"`
}

func (c *Client) Recommendations(ctx context.Context, destination string) []domain.PlaceRecommendation {
	if c.key == "" {
		log.Warn().Msg("places: no API key configured, skipping recommendations")
		return nil
	}
	if err := c.rl.Wait(ctx); err != nil {
		return nil
	}

	query := "top attractions in " + destination
	u := fmt.Sprintf("%s/textsearch/json?query=%s&key=%s",
		c.base, url.QueryEscape(query), url.QueryEscape(c.key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("places", "textsearch", 0, time.Since(start))
		log.Warn().Err(err).Str("destination", destination).Msg("places: request failed")
		return nil
	}
	defer resp.Body.Close()
	observability.ObserveExternal("places", "textsearch", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("destination", destination).Msg("places: non-success status")
		return nil
	}

	var payload searchPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn().Err(err).Msg("places: malformed payload")
		return nil
	}
	if payload.Status != "OK" {
		log.Warn().Str("upstream_status", payload.Status).Msg("places: upstream rejected query")
		return nil
	}

	var out []domain.PlaceRecommendation
	for _, r := range payload.Results {
		out = append(out, domain.PlaceRecommendation{
			Name:    r.Name,
			Rating:  r.Rating,
			Address: r.FormattedAddress,
		})
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}
