// ABOUTME: Content feature services - announcements, events, programs, officials, services
// ABOUTME: Thin consumers wiring the gateway primitives to each portal resource

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"barangay-app-client/core/domain"
	coreerrors "barangay-app-client/core/errors"
	"barangay-app-client/core/interfaces"
	timeutil "barangay-app-client/pkg/utils/time"
)

// Requester is the slice of the gateway the content services need.
type Requester interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Put(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}

// Authenticator reports whether an active session exists.
type Authenticator interface {
	IsLoggedIn() bool
}

// Service exposes the portal's content resources.
type Service struct {
	gw     Requester
	auth   Authenticator
	logger interfaces.Logger
}

// NewService creates a content service instance.
func NewService(gw Requester, auth Authenticator, logger interfaces.Logger) *Service {
	return &Service{
		gw:     gw,
		auth:   auth,
		logger: logger,
	}
}

func (s *Service) list(ctx context.Context, path string, dest interface{}) error {
	raw, err := s.gw.Get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return coreerrors.FromTransport(err, "")
	}
	return nil
}

// ListAnnouncements fetches the public announcement list, de-duplicated by id
// and sorted newest first.
func (s *Service) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	var list []domain.Announcement
	if err := s.list(ctx, "/api/public/announcements", &list); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(list))
	unique := make([]domain.Announcement, 0, len(list))
	for _, a := range list {
		if !seen[a.ID] {
			seen[a.ID] = true
			unique = append(unique, a)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		a := timeutil.ParseFlexibleTime(unique[i].CreatedAt)
		b := timeutil.ParseFlexibleTime(unique[j].CreatedAt)
		return a.After(b)
	})
	return unique, nil
}

// ListEvents fetches the public event list.
func (s *Service) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var list []domain.Event
	if err := s.list(ctx, "/api/public/events", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListPrograms fetches the public program list.
func (s *Service) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	var list []domain.Program
	if err := s.list(ctx, "/api/public/programs", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListOfficials fetches the public roster of officials.
func (s *Service) ListOfficials(ctx context.Context) ([]domain.Official, error) {
	var list []domain.Official
	if err := s.list(ctx, "/api/public/officials", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListServices fetches the public service list.
func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	var list []domain.Service
	if err := s.list(ctx, "/api/public/services", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create posts a new entity of the given resource to the admin API.
// resource is the path segment, e.g. "announcements".
func (s *Service) Create(ctx context.Context, resource string, body interface{}) error {
	_, err := s.gw.Post(ctx, "/api/admin/"+resource, body)
	return err
}

// Update replaces an existing entity via the admin API.
func (s *Service) Update(ctx context.Context, resource string, id int64, body interface{}) error {
	_, err := s.gw.Put(ctx, fmt.Sprintf("/api/admin/%s/%d", resource, id), body)
	return err
}

// Delete removes an entity via the admin API.
func (s *Service) Delete(ctx context.Context, resource string, id int64) error {
	_, err := s.gw.Delete(ctx, fmt.Sprintf("/api/admin/%s/%d", resource, id))
	return err
}
