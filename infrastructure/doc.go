// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as local persistence, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - storage/memory: In-memory key-value store using go-cache
// - storage/sqlite: File-backed store that survives process restarts
// - storage/redis: Redis-based store for shared deployments
// - http/standard: Standard library HTTP client with retry logic
// - logger/standard: Simple structured logger implementation
// - logger/logrus: JSON structured logging via logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Store Implementations
//
// Memory Store Example:
//
//	store := memory.NewMemoryStore()
//	err := store.Set(ctx, "auth_token", []byte("tok"))
//	value, err := store.Get(ctx, "auth_token")
//
// SQLite Store Example:
//
//	store, err := sqlite.NewSQLiteStore("portal.db")
//	defer store.Close()
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient GET failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Do(ctx, "GET", "http://localhost:8080/api/public/events", nil, nil)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Info("Session restored", map[string]interface{}{
//	    "user_id": 123,
//	})
//
package infrastructure
