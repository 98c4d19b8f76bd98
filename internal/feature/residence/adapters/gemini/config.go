package gemini

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"

	"climaseguro_backend/internal/feature/residence/usecase"
)

// Config holds configuration for the Gemini API client.
type Config struct {
	APIKey       string        `env:"GEMINI_API_KEY"`                                    // empty selects offline mode
	CounterModel string        `env:"GEMINI_COUNTER_MODEL" envDefault:"gemini-1.5-flash"` // fixed model for residence counting
	BaseURL      string        `env:"GEMINI_BASE_URL"`                                   // overrides the API endpoint (tests, proxies)
	Timeout      time.Duration `env:"GEMINI_TIMEOUT" envDefault:"0s"`                    // 0 means no request deadline
}

// LoadConfig loads Gemini configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse gemini config: %w", err)
	}
	return cfg, nil
}

// Settings converts the configuration into usecase settings.
func (c Config) Settings() usecase.Settings {
	return usecase.Settings{APIKey: c.APIKey, CounterModel: c.CounterModel}
}
