// ABOUTME: Request gateway executing HTTP verbs against the portal origin
// ABOUTME: Attaches the bearer token and funnels every failure through normalization

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	coreerrors "barangay-app-client/core/errors"
	"barangay-app-client/core/interfaces"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenSource supplies the current bearer token, empty when logged out.
// The session store implements this.
type TokenSource interface {
	Token() string
}

// Gateway executes requests against a single configured origin. Successes
// pass the parsed body through unchanged; every failure surfaces as a
// *errors.NormalizedError.
type Gateway struct {
	origin  string
	client  interfaces.HTTPClient
	logger  interfaces.Logger
	tokens  TokenSource
	limiter *rate.Limiter
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTokenSource sets the source of the bearer token attached to requests.
func WithTokenSource(src TokenSource) Option {
	return func(g *Gateway) {
		g.tokens = src
	}
}

// WithRateLimit throttles outgoing requests to rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(g *Gateway) {
		g.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New creates a gateway for the given origin.
func New(origin string, deps interfaces.Dependencies, opts ...Option) *Gateway {
	g := &Gateway{
		origin: origin,
		client: deps.HTTPClient,
		logger: deps.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Origin returns the configured server origin.
func (g *Gateway) Origin() string {
	return g.origin
}

// Get performs a GET against origin+path.
func (g *Gateway) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return g.doJSON(ctx, http.MethodGet, path, nil)
}

// Post performs a POST with a JSON body against origin+path.
func (g *Gateway) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return g.doJSON(ctx, http.MethodPost, path, body)
}

// Put performs a PUT with a JSON body against origin+path.
func (g *Gateway) Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return g.doJSON(ctx, http.MethodPut, path, body)
}

// Delete performs a DELETE against origin+path.
func (g *Gateway) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return g.doJSON(ctx, http.MethodDelete, path, nil)
}

func (g *Gateway) doJSON(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	header := make(http.Header)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, coreerrors.FromTransport(err, g.origin)
		}
		reader = bytes.NewReader(payload)
		header.Set("Content-Type", "application/json")
	}
	return g.do(ctx, method, path, header, reader)
}

// do executes one request. The bearer token is attached iff one is currently
// held; a fresh request ID travels with every call for server-side tracing.
func (g *Gateway) do(ctx context.Context, method, path string, header http.Header, body io.Reader) (json.RawMessage, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, coreerrors.FromTransport(err, g.origin)
		}
	}

	if header == nil {
		header = make(http.Header)
	}
	if g.tokens != nil {
		if token := g.tokens.Token(); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}
	header.Set("X-Request-ID", uuid.NewString())

	resp, err := g.client.Do(ctx, method, g.origin+path, header, body)
	if err != nil {
		nerr := coreerrors.FromTransport(err, g.origin)
		g.logger.Warn("Request failed", map[string]interface{}{
			"method": method,
			"path":   path,
			"error":  nerr.Message,
		})
		return nil, nerr
	}

	raw, err := io.ReadAll(resp.Body())
	resp.Body().Close()
	if err != nil {
		return nil, coreerrors.FromTransport(err, g.origin)
	}

	if resp.StatusCode() >= 400 {
		nerr := coreerrors.FromResponse(resp.StatusCode(), raw)
		g.logger.Debug("Server rejected request", map[string]interface{}{
			"method": method,
			"path":   path,
			"status": resp.StatusCode(),
		})
		return nil, nerr
	}

	return json.RawMessage(raw), nil
}

// decode unmarshals a gateway success body into dest, normalizing decode
// failures so callers only ever see NormalizedError.
func decode(raw json.RawMessage, dest interface{}, origin string) error {
	if err := json.Unmarshal(raw, dest); err != nil {
		return coreerrors.FromTransport(err, origin)
	}
	return nil
}
