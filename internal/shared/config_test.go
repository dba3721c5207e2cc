package shared_test

import (
	"testing"
	"time"

	"trip_planner/internal/shared"
)

func TestLoadDefaults(t *testing.T) {
	c, err := shared.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTPAddr != ":8080" {
		t.Fatalf("http addr default: %s", c.HTTPAddr)
	}
	if c.PlanTTL != time.Hour {
		t.Fatalf("plan ttl default: %s", c.PlanTTL)
	}
	if c.OutboundRPS != 5 {
		t.Fatalf("rps default: %d", c.OutboundRPS)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("PLAN_TTL", "15m")
	t.Setenv("GEMINI_API_KEY", "key-a")

	c, err := shared.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTPAddr != ":9999" || c.PlanTTL != 15*time.Minute || c.GeminiAPIKey != "key-a" {
		t.Fatalf("overrides not applied: %+v", c)
	}
}

func TestGoogleAPIKeyAlias(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "alias-key")

	c, err := shared.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.GeminiAPIKey != "alias-key" {
		t.Fatalf("alias ignored: %q", c.GeminiAPIKey)
	}

	// the dedicated variable wins when both are present
	t.Setenv("GEMINI_API_KEY", "primary-key")
	c, err = shared.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.GeminiAPIKey != "primary-key" {
		t.Fatalf("precedence broken: %q", c.GeminiAPIKey)
	}
}
