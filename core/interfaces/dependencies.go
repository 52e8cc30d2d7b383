// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core session layer

package interfaces

// Dependencies holds all external dependencies required by the core session
// and content layers.
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Store provides the local key-value persistence for session state
	Store KeyValueStore

	// Logger provides structured logging
	Logger Logger
}
