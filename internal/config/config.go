package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	LogLevel string `mapstructure:"LOG_LEVEL"`

	DBPath      string `mapstructure:"DB_PATH"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	SeedPath    string `mapstructure:"SEED_PATH"`

	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	GeocodeCacheTTL time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`

	Geocoder      string `mapstructure:"GEOCODER"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`
	GeocodeRegion string `mapstructure:"GEOCODE_REGION"`
	ORSAPIKey     string `mapstructure:"ORS_API_KEY"`
	ORSCountry    string `mapstructure:"ORS_COUNTRY"`

	DefaultRadiusKm float64 `mapstructure:"DEFAULT_RADIUS_KM"`
	TopN            int     `mapstructure:"TOP_N"`
	SuggestionLimit int     `mapstructure:"SUGGESTION_LIMIT"`
}

var defaults = map[string]any{
	"PORT":              "8080",
	"ENV":               "development",
	"LOG_LEVEL":         "info",
	"DB_PATH":           "data/app.db",
	"DATABASE_URL":      "",
	"SEED_PATH":         "data/seeds/locations.json",
	"REDIS_ADDR":        "",
	"REDIS_PASSWORD":    "",
	"REDIS_DB":          0,
	"GEOCODE_CACHE_TTL": "720h",
	"GEOCODER":          "gemini",
	"GEMINI_API_KEY":    "",
	"GEMINI_MODEL":      "gemini-2.5-flash",
	"GEOCODE_REGION":    "South Korea",
	"ORS_API_KEY":       "",
	"ORS_COUNTRY":       "KR",
	"DEFAULT_RADIUS_KM": 3.0,
	"TOP_N":             3,
	"SUGGESTION_LIMIT":  7,
}

// Load reads .env (when present) and the process environment.
// Environment variables win over .env values.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load config: read .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: unmarshal: %w", err)
	}

	// The original app read a bare API_KEY.
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("API_KEY")
	}
	cfg.Geocoder = strings.ToLower(strings.TrimSpace(cfg.Geocoder))

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Geocoder {
	case "gemini", "ors", "none":
	default:
		return fmt.Errorf("GEOCODER must be one of gemini, ors, none; got %q", c.Geocoder)
	}
	if c.DefaultRadiusKm < 1 || c.DefaultRadiusKm > 10 {
		return fmt.Errorf("DEFAULT_RADIUS_KM must be between 1 and 10; got %v", c.DefaultRadiusKm)
	}
	if c.TopN < 1 {
		return fmt.Errorf("TOP_N must be positive; got %d", c.TopN)
	}
	if c.SuggestionLimit < 1 {
		return fmt.Errorf("SUGGESTION_LIMIT must be positive; got %d", c.SuggestionLimit)
	}
	return nil
}

// ErrDatabaseURLRequired is returned by RequireDatabaseURL when DATABASE_URL is unset.
var ErrDatabaseURLRequired = errors.New("DATABASE_URL is required")

// RequireDatabaseURL returns the Postgres DSN for tools that only run against Postgres.
func (c Config) RequireDatabaseURL() (string, error) {
	dsn := strings.TrimSpace(c.DatabaseURL)
	if dsn == "" {
		return "", ErrDatabaseURLRequired
	}
	return dsn, nil
}
