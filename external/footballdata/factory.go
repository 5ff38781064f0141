package footballdata

import (
	"strings"
	"time"

	"github.com/myteamshq/sports-hub/internal/platform/logging"
	"github.com/myteamshq/sports-hub/internal/platform/resilience"
	"github.com/myteamshq/sports-hub/internal/usecase"
)

const ProviderAPIFootball = "api_football"

type FactoryConfig struct {
	Provider       string
	APIKey         string
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RequestsPerSec float64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// NewFromConfig selects the provider adapter. The live API client is used only
// when api_football is requested and an API key is present; anything else
// falls back to the offline mock dataset.
func NewFromConfig(cfg FactoryConfig) usecase.FootballDataProvider {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	apiKey := strings.TrimSpace(cfg.APIKey)

	if provider == ProviderAPIFootball && apiKey != "" {
		return NewClient(ClientConfig{
			BaseURL:        cfg.BaseURL,
			APIKey:         apiKey,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RequestsPerSec: cfg.RequestsPerSec,
			Logger:         cfg.Logger,
			CircuitBreaker: cfg.CircuitBreaker,
		})
	}
	return NewMock()
}
