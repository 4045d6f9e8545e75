package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Run modes.
const (
	ModeTUI    = "tui"
	ModeServer = "server"
)

type AppConfig struct {
	// Mode selects the terminal UI or the HTTP session bridge.
	Mode string `envconfig:"MODE" default:"tui" validate:"oneof=tui server"`

	WeatherProvider string `envconfig:"WEATHER_PROVIDER" default:"openweather" validate:"oneof=openweather weatherapi openmeteo"`
	PlacesProvider  string `envconfig:"PLACES_PROVIDER" default:"openweather" validate:"oneof=openweather weatherapi openmeteo"`

	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`
	WeatherAPIKey     string `envconfig:"WEATHERAPI_API_KEY"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"sqlite" validate:"oneof=sqlite memory"`
	StorePath   string `envconfig:"STORE_PATH" default:"weather-orbit.db" validate:"required_if=StoreDriver sqlite"`

	MaxHistory      int           `envconfig:"MAX_HISTORY" default:"5" validate:"min=1,max=50"`
	SuggestionLimit int           `envconfig:"SUGGESTION_LIMIT" default:"5" validate:"min=1,max=20"`
	DebounceDelay   time.Duration `envconfig:"DEBOUNCE_DELAY" default:"300ms" validate:"gt=0"`
	BannerDelay     time.Duration `envconfig:"BANNER_DELAY" default:"1s" validate:"gt=0"`
	ScrollDelay     time.Duration `envconfig:"SCROLL_DELAY" default:"50ms" validate:"gte=0"`

	// RefreshInterval re-fetches the current snapshot in the background (0 = off).
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"15m" validate:"gte=0"`

	Port    string `envconfig:"PORT" default:"8080" validate:"numeric"`
	LogFile string `envconfig:"LOG_FILE" default:"weather-orbit.log"`
}

// Load reads configuration from .env and the environment, applying defaults
// and validating the result.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return FromEnv()
}

// FromEnv is Load without the .env file.
func FromEnv() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	validate := validator.New()
	validate.RegisterStructValidation(validateKeys, AppConfig{})
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// validateKeys requires the API key of every keyed provider in use.
func validateKeys(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(AppConfig)
	uses := func(name string) bool {
		return cfg.WeatherProvider == name || cfg.PlacesProvider == name
	}
	if uses("openweather") && cfg.OpenWeatherAPIKey == "" {
		sl.ReportError(cfg.OpenWeatherAPIKey, "OpenWeatherAPIKey", "OpenWeatherAPIKey", "required_for_provider", "openweather")
	}
	if uses("weatherapi") && cfg.WeatherAPIKey == "" {
		sl.ReportError(cfg.WeatherAPIKey, "WeatherAPIKey", "WeatherAPIKey", "required_for_provider", "weatherapi")
	}
}
