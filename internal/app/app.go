package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sportsfeed/external/espn"
	"github.com/riskibarqy/sportsfeed/internal/config"
	"github.com/riskibarqy/sportsfeed/internal/interfaces/httpapi"
	"github.com/riskibarqy/sportsfeed/internal/platform/logging"
	"github.com/riskibarqy/sportsfeed/internal/platform/resilience"
	"github.com/riskibarqy/sportsfeed/internal/usecase"
)

// NewSportsDataClient builds the ESPN provider from config.
func NewSportsDataClient(cfg config.Config, logger *logging.Logger) *espn.Client {
	return espn.NewClient(espn.ClientConfig{
		CoreBaseURL:      cfg.ESPNCoreBaseURL,
		SiteBaseURL:      cfg.ESPNSiteBaseURL,
		StandingsBaseURL: cfg.ESPNStandingsBaseURL,
		CommonBaseURL:    cfg.ESPNCommonBaseURL,
		CDNBaseURL:       cfg.ESPNCDNBaseURL,
		Lang:             cfg.ESPNLang,
		Region:           cfg.ESPNRegion,
		Timeout:          cfg.ESPNTimeout,
		MaxConcurrency:   cfg.ESPNMaxConcurrency,
		PageLimit:        cfg.ESPNPageLimit,
		Logger:           logger.With("component", "espn"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
		},
	})
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	provider := NewSportsDataClient(cfg, logger)
	sportsData := usecase.NewSportsDataService(provider, logger.With("component", "usecase"))

	handler := httpapi.NewHandler(sportsData, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}
