package config

import "time"

// APIConfig contains backend API client configuration.
type APIConfig struct {
	// BaseURL is the root of the portal backend.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000"`

	// Timeout is the per-request timeout. The backend contract assumes 15s.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
	// Clamp absurd timeouts; the UI suspends on every call.
	if a.Timeout > 2*time.Minute {
		a.Timeout = 2 * time.Minute
	}
}
