// ABOUTME: Synchronizes per-item like and comment state with the server
// ABOUTME: Best-effort decoration loads, login gating, and the moderation hard block

package interaction

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"barangay-app-client/core/domain"
	coreerrors "barangay-app-client/core/errors"
	"barangay-app-client/core/interfaces"
)

// Requester is the slice of the gateway the synchronizer needs.
type Requester interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}

// Authenticator reports whether an active session exists.
// The session store implements this.
type Authenticator interface {
	IsLoggedIn() bool
}

// LikeOutcome is the result of a like toggle.
type LikeOutcome int

const (
	// LikeApplied means the toggle succeeded and state was re-fetched.
	LikeApplied LikeOutcome = iota
	// LikeLoginRequired means the caller should offer a redirect to login.
	LikeLoginRequired
	// LikeFailed means the toggle failed for another reason.
	LikeFailed
)

// CommentStatus is the terminal state of one comment submission.
type CommentStatus int

const (
	// CommentAccepted means the comment was stored and the list reloaded.
	CommentAccepted CommentStatus = iota
	// CommentSkippedEmpty means the trimmed draft was empty; nothing was sent.
	CommentSkippedEmpty
	// CommentRejectedAuth means the caller should offer a redirect to login.
	CommentRejectedAuth
	// CommentRejectedProfanity is the moderation hard block: the server's
	// message is surfaced, the draft is kept, and no retry path is offered.
	CommentRejectedProfanity
	// CommentRejectedOther covers every remaining failure.
	CommentRejectedOther
)

// CommentResult reports how a comment submission ended. Message carries the
// user-facing text for the rejected states.
type CommentResult struct {
	Status  CommentStatus
	Message string
}

// Synchronizer owns the like/comment decoration for content items, keyed by
// entity reference. Callers look state up rather than having fields written
// onto their own objects.
type Synchronizer struct {
	gw     Requester
	auth   Authenticator
	logger interfaces.Logger

	mu     sync.Mutex
	states map[domain.EntityRef]*domain.InteractionState
}

// NewSynchronizer creates a synchronizer on top of the gateway and session.
func NewSynchronizer(gw Requester, auth Authenticator, logger interfaces.Logger) *Synchronizer {
	return &Synchronizer{
		gw:     gw,
		auth:   auth,
		logger: logger,
		states: make(map[domain.EntityRef]*domain.InteractionState),
	}
}

// State returns a copy of the current interaction state for ref. A ref that
// was never loaded yields the zero decoration {0, false, nil}.
func (s *Synchronizer) State(ref domain.EntityRef) domain.InteractionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[ref]; ok {
		return *st
	}
	return domain.InteractionState{}
}

// Load refreshes like count, like check, and the comment thread for ref with
// three concurrent requests. Interaction state is decoration: every failure
// is absorbed into a default (0, false, empty) and never propagates, so
// content stays viewable regardless. Completion order is unspecified; each
// fetch writes only its own field.
func (s *Synchronizer) Load(ctx context.Context, ref domain.EntityRef) domain.InteractionState {
	s.ensure(ref)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.loadLikeCount(ctx, ref)
	}()
	go func() {
		defer wg.Done()
		s.loadLikeCheck(ctx, ref)
	}()
	go func() {
		defer wg.Done()
		s.loadComments(ctx, ref)
	}()
	wg.Wait()

	return s.State(ref)
}

func (s *Synchronizer) ensure(ref domain.EntityRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[ref]; !ok {
		s.states[ref] = &domain.InteractionState{Comments: []domain.Comment{}}
	}
}

func (s *Synchronizer) loadLikeCount(ctx context.Context, ref domain.EntityRef) {
	count := 0
	raw, err := s.gw.Get(ctx, fmt.Sprintf("/api/likes/%s/%d", ref.Type, ref.ID))
	if err == nil {
		var resp struct {
			Count int `json:"count"`
		}
		if json.Unmarshal(raw, &resp) == nil {
			count = resp.Count
		}
	}

	s.mu.Lock()
	s.states[ref].LikeCount = count
	s.mu.Unlock()
}

func (s *Synchronizer) loadLikeCheck(ctx context.Context, ref domain.EntityRef) {
	liked := false
	// Anonymous visitors can never have liked anything; skip the round trip.
	if s.auth.IsLoggedIn() {
		raw, err := s.gw.Get(ctx, fmt.Sprintf("/api/likes/%s/%d/check", ref.Type, ref.ID))
		if err == nil {
			var resp struct {
				Liked bool `json:"liked"`
			}
			if json.Unmarshal(raw, &resp) == nil {
				liked = resp.Liked
			}
		}
	}

	s.mu.Lock()
	s.states[ref].IsLiked = liked
	s.mu.Unlock()
}

func (s *Synchronizer) loadComments(ctx context.Context, ref domain.EntityRef) {
	comments := []domain.Comment{}
	raw, err := s.gw.Get(ctx, fmt.Sprintf("/api/comments/%s/%d", ref.Type, ref.ID))
	if err == nil {
		var list []domain.Comment
		if json.Unmarshal(raw, &list) == nil && list != nil {
			comments = list
		}
	}

	s.mu.Lock()
	s.states[ref].Comments = comments
	s.mu.Unlock()
}

// reloadLikes re-runs only the like portion of Load.
func (s *Synchronizer) reloadLikes(ctx context.Context, ref domain.EntityRef) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.loadLikeCount(ctx, ref)
	}()
	go func() {
		defer wg.Done()
		s.loadLikeCheck(ctx, ref)
	}()
	wg.Wait()
}

// ToggleLike posts a like toggle for ref. Without an active session no
// request is made and LikeLoginRequired signals the redirect choice. On
// success the server is re-queried for the new state; the toggle response
// body itself is never trusted.
func (s *Synchronizer) ToggleLike(ctx context.Context, ref domain.EntityRef) (LikeOutcome, error) {
	if !s.auth.IsLoggedIn() {
		return LikeLoginRequired, nil
	}

	s.ensure(ref)
	_, err := s.gw.Post(ctx, "/api/likes", map[string]string{
		"entityType": ref.Type,
		"entityId":   strconv.FormatInt(ref.ID, 10),
	})
	if err != nil {
		if coreerrors.IsAuthRequired(err) {
			return LikeLoginRequired, err
		}
		return LikeFailed, err
	}

	s.reloadLikes(ctx, ref)
	return LikeApplied, nil
}

// AddComment submits a comment draft for ref. The submission moves from
// Submitting into exactly one terminal state:
//
//   - CommentAccepted: list reloaded, caller clears its draft
//   - CommentRejectedProfanity: hard block, server message shown, draft kept,
//     no retry and no further network call
//   - CommentRejectedAuth: caller offers the login redirect
//   - CommentRejectedOther: message shown, draft kept
func (s *Synchronizer) AddComment(ctx context.Context, ref domain.EntityRef, draft string) CommentResult {
	if !s.auth.IsLoggedIn() {
		return CommentResult{Status: CommentRejectedAuth}
	}

	content := strings.TrimSpace(draft)
	if content == "" {
		return CommentResult{Status: CommentSkippedEmpty}
	}

	s.ensure(ref)
	_, err := s.gw.Post(ctx, "/api/comments", map[string]string{
		"entityType": ref.Type,
		"entityId":   strconv.FormatInt(ref.ID, 10),
		"content":    content,
	})
	if err != nil {
		switch {
		case coreerrors.IsModerationRejected(err):
			return CommentResult{Status: CommentRejectedProfanity, Message: err.Error()}
		case coreerrors.IsAuthRequired(err):
			return CommentResult{Status: CommentRejectedAuth}
		default:
			return CommentResult{Status: CommentRejectedOther, Message: err.Error()}
		}
	}

	s.loadComments(ctx, ref)
	return CommentResult{Status: CommentAccepted}
}

// DeleteComment removes a comment after the caller-supplied confirmation.
// A nil confirm counts as already confirmed; a declined confirmation is a
// no-op. Success reloads the comment thread.
func (s *Synchronizer) DeleteComment(ctx context.Context, ref domain.EntityRef, commentID int64, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}

	s.ensure(ref)
	if _, err := s.gw.Delete(ctx, fmt.Sprintf("/api/comments/%d", commentID)); err != nil {
		return err
	}

	s.loadComments(ctx, ref)
	return nil
}
