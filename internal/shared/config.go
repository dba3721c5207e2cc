package shared

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"prod"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`

	// Generative text service. The key is the one hard requirement: both
	// binaries refuse to start without it.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`

	// Enrichment services; each degrades to an empty result when its key
	// is absent.
	WeatherBase string `envconfig:"OPENWEATHER_BASE_URL"`
	WeatherKey  string `envconfig:"OPENWEATHER_API_KEY"`
	PlacesBase  string `envconfig:"PLACES_BASE_URL"`
	PlacesKey   string `envconfig:"PLACES_API_KEY"`
	MapsKey     string `envconfig:"GOOGLE_MAPS_KEY"`

	RedisAddr string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPass string        `envconfig:"REDIS_PASSWORD"`
	RedisDB   int           `envconfig:"REDIS_DB" default:"0"`
	PlanTTL   time.Duration `envconfig:"PLAN_TTL" default:"1h"`

	OutboundRPS int `envconfig:"OUTBOUND_RPS" default:"5"`
}

// Load reads configuration from the environment. A .env file is applied
// best-effort first; godotenv never overwrites variables that are already
// set, so the process environment always takes precedence over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}

	// genai-style alias: accept GOOGLE_API_KEY when GEMINI_API_KEY is unset.
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
	}
	return c, nil
}
