// ABOUTME: Configuration options for the portal library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package portal

import (
	"time"

	"barangay-app-client/core/interfaces"
	stdhttp "barangay-app-client/infrastructure/http/standard"
	stdlogger "barangay-app-client/infrastructure/logger/standard"
	"barangay-app-client/infrastructure/storage/memory"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithOrigin sets the portal server origin.
func WithOrigin(origin string) Option {
	return func(c *Config) error {
		c.Origin = origin
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithStore sets a custom key-value store for session persistence.
func WithStore(store interfaces.KeyValueStore) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Config) error {
		if rps <= 0 || burst <= 0 {
			return NewError(ErrorTypeValidation, "rate limit values must be positive")
		}
		c.RateLimitRPS = rps
		c.RateLimitBurst = burst
		return nil
	}
}

// WithUploadMaxWait bounds how long a form submit waits on a pending upload.
func WithUploadMaxWait(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return NewError(ErrorTypeValidation, "upload max wait must be positive")
		}
		c.UploadMaxWait = d
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Origin:     "http://localhost:8080",
		HTTPClient: stdhttp.NewStandardHTTPClient(0),
		Store:      memory.NewMemoryStore(),
		Logger:     stdlogger.NewStandardLogger(),
	}
}
