// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"time"

	"climaseguro_backend/internal/feature/residence/adapters/gemini"
	"climaseguro_backend/internal/feature/residence/adapters/satellite"
	"climaseguro_backend/internal/feature/residence/usecase"
	infrahttp "climaseguro_backend/internal/platform/http"
	"climaseguro_backend/internal/shared/ratelimiter"
)

// ResidenceServices groups the residence usecases built from one configuration.
type ResidenceServices struct {
	Describer *usecase.Describer
	Counter   *usecase.Counter
	Zones     *usecase.ZoneUsecase
	AILive    bool // false when GEMINI_API_KEY is unset and offline estimates are served
}

// NewDescriber creates a batch describer from the GEMINI_* environment.
func NewDescriber(logger *slog.Logger) (*usecase.Describer, bool, error) {
	cfg, err := gemini.LoadConfig()
	if err != nil {
		return nil, false, err
	}
	return usecase.NewDescriber(cfg.Settings(), gemini.NewClientFactory(cfg), logger), cfg.APIKey != "", nil
}

// NewSatelliteSource creates a rate-limited ArcGIS image source.
func NewSatelliteSource(cfg satellite.Config) *satellite.ArcGISSource {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute)
	return satellite.NewArcGISSource(cfg, httpClient, limiter)
}

// NewResidenceServices wires the describer, counter and zone analyzer.
func NewResidenceServices(logger *slog.Logger) (*ResidenceServices, error) {
	geminiCfg, err := gemini.LoadConfig()
	if err != nil {
		return nil, err
	}
	satelliteCfg, err := satellite.LoadConfig()
	if err != nil {
		return nil, err
	}

	settings := geminiCfg.Settings()
	factory := gemini.NewClientFactory(geminiCfg)
	counter := usecase.NewCounter(settings, factory, logger)

	return &ResidenceServices{
		Describer: usecase.NewDescriber(settings, factory, logger),
		Counter:   counter,
		Zones:     usecase.NewZoneUsecase(NewSatelliteSource(satelliteCfg), counter),
		AILive:    settings.APIKey != "",
	}, nil
}
