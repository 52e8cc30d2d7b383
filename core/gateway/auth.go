// ABOUTME: Authentication operations - login, signup, profile, forgot-password
// ABOUTME: Login and signup race the network call against a fixed 15 second timer

package gateway

import (
	"context"
	"net/url"
	"time"

	"barangay-app-client/core/domain"
)

// entryTimeout bounds login and signup only. These are the two no-session-yet
// entry points blocking a visible loading state with no other recovery path;
// all other calls deliberately carry no client-side deadline.
const entryTimeout = 15 * time.Second

// Login authenticates with email and password. The call races a 15 second
// timer; if the timer wins the caller gets the normalized timeout error.
func (g *Gateway) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, entryTimeout)
	defer cancel()

	raw, err := g.Post(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var auth domain.AuthResponse
	if err := decode(raw, &auth, g.origin); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Signup registers a new account. Same 15 second race as Login.
func (g *Gateway) Signup(ctx context.Context, req domain.SignupRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, entryTimeout)
	defer cancel()

	raw, err := g.Post(ctx, "/api/auth/signup", req)
	if err != nil {
		return nil, err
	}

	var auth domain.AuthResponse
	if err := decode(raw, &auth, g.origin); err != nil {
		return nil, err
	}
	return &auth, nil
}

// FetchProfile retrieves the authoritative profile for the current session.
// Implements the session store's ProfileSource.
func (g *Gateway) FetchProfile(ctx context.Context) (*domain.Profile, error) {
	raw, err := g.Get(ctx, "/api/user/profile")
	if err != nil {
		return nil, err
	}

	var profile domain.Profile
	if err := decode(raw, &profile, g.origin); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SecurityQuestion fetches the account-recovery question for an email.
// The server returns an empty question for unknown addresses rather than
// revealing whether the account exists.
func (g *Gateway) SecurityQuestion(ctx context.Context, email string) (string, error) {
	raw, err := g.Get(ctx, "/api/auth/forgot-password/question?email="+url.QueryEscape(email))
	if err != nil {
		return "", err
	}

	var resp struct {
		SecurityQuestion string `json:"securityQuestion"`
	}
	if err := decode(raw, &resp, g.origin); err != nil {
		return "", err
	}
	return resp.SecurityQuestion, nil
}

// VerifySecurityAnswer checks the recovery answer ahead of a password reset.
func (g *Gateway) VerifySecurityAnswer(ctx context.Context, email, answer string) error {
	_, err := g.Post(ctx, "/api/auth/forgot-password/verify", map[string]string{
		"email":          email,
		"securityAnswer": answer,
	})
	return err
}

// ResetPassword sets a new password after a verified recovery answer.
func (g *Gateway) ResetPassword(ctx context.Context, email, answer, newPassword string) error {
	_, err := g.Post(ctx, "/api/auth/forgot-password/reset", map[string]string{
		"email":          email,
		"securityAnswer": answer,
		"newPassword":    newPassword,
	})
	return err
}
