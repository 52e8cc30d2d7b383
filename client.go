// ABOUTME: Main client for the barangay portal library tying the core services together
// ABOUTME: Offers a clean API for session, content, interaction, and upload operations

package portal

import (
	"context"
	"time"

	"barangay-app-client/core/content"
	"barangay-app-client/core/domain"
	"barangay-app-client/core/gateway"
	"barangay-app-client/core/interaction"
	"barangay-app-client/core/interfaces"
	"barangay-app-client/core/session"
	"barangay-app-client/core/upload"
)

// Client is the main entry point for the portal library.
type Client struct {
	// Core services
	session      *session.Store
	gateway      *gateway.Gateway
	interactions *interaction.Synchronizer
	content      *content.Service

	// Dependencies
	deps interfaces.Dependencies

	// Configuration
	config Config
}

// Config holds the configuration for the client
type Config struct {
	// Origin is the portal server origin
	Origin string

	// HTTPClient executes the outgoing requests
	HTTPClient interfaces.HTTPClient

	// Store persists session state locally
	Store interfaces.KeyValueStore

	// Logger configuration
	Logger interfaces.Logger

	// RateLimitRPS throttles outgoing requests when positive
	RateLimitRPS   float64
	RateLimitBurst int

	// UploadMaxWait bounds the submit-when-ready poll (0 = default)
	UploadMaxWait time.Duration
}

// NewClient creates a new portal client with the given options.
func NewClient(options ...Option) (*Client, error) {
	// Start with default config
	config := defaultConfig()

	// Apply options
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Store:      config.Store,
		Logger:     config.Logger,
	}

	// The session store supplies the gateway's bearer token; the gateway in
	// turn serves the store's profile refreshes, so wiring happens in two steps.
	sess := session.NewStore(deps)

	gwOpts := []gateway.Option{gateway.WithTokenSource(sess)}
	if config.RateLimitRPS > 0 {
		gwOpts = append(gwOpts, gateway.WithRateLimit(config.RateLimitRPS, config.RateLimitBurst))
	}
	gw := gateway.New(config.Origin, deps, gwOpts...)
	sess.BindProfileSource(gw)

	return &Client{
		session:      sess,
		gateway:      gw,
		interactions: interaction.NewSynchronizer(gw, sess, deps.Logger),
		content:      content.NewService(gw, sess, deps.Logger),
		deps:         deps,
		config:       config,
	}, nil
}

// Session returns the session store.
func (c *Client) Session() *session.Store {
	return c.session
}

// Gateway returns the request gateway.
func (c *Client) Gateway() *gateway.Gateway {
	return c.gateway
}

// Interactions returns the like/comment synchronizer.
func (c *Client) Interactions() *interaction.Synchronizer {
	return c.interactions
}

// Content returns the content feature services.
func (c *Client) Content() *content.Service {
	return c.content
}

// NewUpload creates a deferred-upload coordinator for one form.
func (c *Client) NewUpload() *upload.Coordinator {
	return upload.NewCoordinator(c.gateway, c.deps.Logger, c.config.UploadMaxWait)
}

// Login authenticates and persists the resulting session. One auth-change
// signal is emitted on success.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	auth, err := c.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.session.SaveAuth(ctx, auth.Token, auth.Profile())
	return auth, nil
}

// Signup registers an account and persists the resulting session. A failed
// signup clears any lingering auth state so the client never holds a token
// from a half-finished registration.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (*domain.AuthResponse, error) {
	auth, err := c.gateway.Signup(ctx, req)
	if err != nil {
		c.session.SaveAuth(ctx, "", nil)
		return nil, err
	}
	c.session.SaveAuth(ctx, auth.Token, auth.Profile())
	return auth, nil
}

// Logout clears the session and its persisted entries.
func (c *Client) Logout(ctx context.Context) {
	c.session.Logout(ctx)
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.Origin == "" {
		return NewError(ErrorTypeConfiguration, "origin is required")
	}

	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Store == nil {
		return NewError(ErrorTypeConfiguration, "key-value store is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	return nil
}
