// Package core contains the business logic for the barangay portal client.
// It is designed to be framework-agnostic and can be used independently
// of any UI framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Profile, Announcement, Comment, etc.)
// - session: Persisted session state and the auth-change signal
// - gateway: HTTP request execution with token attachment and normalization
// - interaction: Like and comment synchronization for content items
// - upload: Deferred image upload coordination for create/edit forms
// - content: Announcements, events, programs, officials, services, feedback
// - errors: Normalized error type every failure surfaces as
// - interfaces: Contracts for external dependencies (store, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "barangay-app-client/core/gateway"
//	    "barangay-app-client/core/interfaces"
//	    "barangay-app-client/core/session"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Store:      myStore,      // implements interfaces.KeyValueStore
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create services
//	sess := session.NewStore(deps)
//	gw := gateway.New("http://localhost:8080", deps, gateway.WithTokenSource(sess))
//	sess.BindProfileSource(gw)
//
//	// Authenticate
//	auth, err := gw.Login(ctx, "resident@example.com", "secret")
//
package core
