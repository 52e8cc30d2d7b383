// ABOUTME: Service applications and membership - apply, join, leave, moderate
// ABOUTME: Read paths absorb auth rejections into empty lists for regular users

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"barangay-app-client/core/domain"
	coreerrors "barangay-app-client/core/errors"
)

// ApplyForService submits a service application. Requires an active session;
// callers detect the login case with errors.IsAuthRequired. Returns the
// server's confirmation message.
func (s *Service) ApplyForService(ctx context.Context, serviceType, additionalInfo string) (string, error) {
	if !s.auth.IsLoggedIn() {
		return "", &coreerrors.NormalizedError{Message: "login required", Status: 401}
	}
	if strings.TrimSpace(serviceType) == "" {
		return "", &coreerrors.NormalizedError{Message: "Please select a service"}
	}

	raw, err := s.gw.Post(ctx, "/api/services/apply", map[string]string{
		"serviceType":    serviceType,
		"additionalInfo": additionalInfo,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
	}
	if unmarshalErr := json.Unmarshal(raw, &resp); unmarshalErr == nil && resp.Message != "" {
		return resp.Message, nil
	}
	return "Application submitted successfully! You will be notified via email.", nil
}

// MyApplications fetches the caller's own service applications. Logged-out
// callers and auth rejections yield an empty list, never an error.
func (s *Service) MyApplications(ctx context.Context) ([]domain.ServiceApplication, error) {
	if !s.auth.IsLoggedIn() {
		return []domain.ServiceApplication{}, nil
	}
	var list []domain.ServiceApplication
	if err := s.list(ctx, "/api/services/my-applications", &list); err != nil {
		if coreerrors.IsAuthRequired(err) {
			return []domain.ServiceApplication{}, nil
		}
		s.logger.Warn("Failed to load applications", map[string]interface{}{
			"error": err.Error(),
		})
		return []domain.ServiceApplication{}, nil
	}
	return list, nil
}

// AllApplications fetches every application (admin view); auth rejections
// are absorbed into an empty list.
func (s *Service) AllApplications(ctx context.Context) ([]domain.ServiceApplication, error) {
	var list []domain.ServiceApplication
	if err := s.list(ctx, "/api/admin/services/applications", &list); err != nil {
		if coreerrors.IsAuthRequired(err) {
			return []domain.ServiceApplication{}, nil
		}
		return nil, err
	}
	return list, nil
}

// UpdateApplicationStatus sets an application's status (admin only).
func (s *Service) UpdateApplicationStatus(ctx context.Context, applicationID int64, status string) error {
	_, err := s.gw.Put(ctx, fmt.Sprintf("/api/admin/services/applications/%d/status", applicationID), map[string]string{
		"status": status,
	})
	return err
}

// JoinService enrolls the current user in a service. Callers detect the
// login case with errors.IsAuthRequired.
func (s *Service) JoinService(ctx context.Context, serviceID int64) error {
	if !s.auth.IsLoggedIn() {
		return &coreerrors.NormalizedError{Message: "login required", Status: 401}
	}
	_, err := s.gw.Post(ctx, fmt.Sprintf("/api/services/%d/join", serviceID), map[string]string{})
	return err
}

// LeaveService removes the current user from a service after the
// caller-supplied confirmation; declined or logged out is a no-op.
func (s *Service) LeaveService(ctx context.Context, serviceID int64, confirm func() bool) error {
	if !s.auth.IsLoggedIn() {
		return nil
	}
	if confirm != nil && !confirm() {
		return nil
	}
	_, err := s.gw.Post(ctx, fmt.Sprintf("/api/services/%d/leave", serviceID), map[string]string{})
	return err
}

// RemoveParticipant removes a user from a service (admin only), after the
// caller-supplied confirmation.
func (s *Service) RemoveParticipant(ctx context.Context, serviceID, userID int64, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	_, err := s.gw.Delete(ctx, fmt.Sprintf("/api/admin/services/%d/participants/%d", serviceID, userID))
	return err
}
