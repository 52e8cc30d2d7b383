// ABOUTME: Feedback submission and admin moderation of feedback entries
// ABOUTME: Shares the comment pipeline's moderation hard block and auth mapping

package content

import (
	"context"
	"fmt"
	"strings"

	"barangay-app-client/core/domain"
	coreerrors "barangay-app-client/core/errors"
)

// FeedbackStatus is the terminal state of one feedback submission.
type FeedbackStatus int

const (
	// FeedbackAccepted means the feedback was stored.
	FeedbackAccepted FeedbackStatus = iota
	// FeedbackRejectedShort means the trimmed message was under 10 characters.
	FeedbackRejectedShort
	// FeedbackRejectedAuth means the caller should offer a redirect to login.
	FeedbackRejectedAuth
	// FeedbackRejectedProfanity is the moderation hard block: message shown,
	// draft kept, no retry offered.
	FeedbackRejectedProfanity
	// FeedbackRejectedOther covers every remaining failure.
	FeedbackRejectedOther
)

// FeedbackResult reports how a feedback submission ended.
type FeedbackResult struct {
	Status  FeedbackStatus
	Message string
}

// SubmitFeedback posts a resident feedback message. The same moderation hard
// block as comments applies: a profanity rejection is terminal and the draft
// stays with the caller.
func (s *Service) SubmitFeedback(ctx context.Context, message string) FeedbackResult {
	if !s.auth.IsLoggedIn() {
		return FeedbackResult{Status: FeedbackRejectedAuth}
	}

	if len(strings.TrimSpace(message)) < 10 {
		return FeedbackResult{
			Status:  FeedbackRejectedShort,
			Message: "Feedback must be at least 10 characters",
		}
	}

	_, err := s.gw.Post(ctx, "/api/feedback", map[string]string{"message": message})
	if err != nil {
		switch {
		case coreerrors.IsModerationRejected(err):
			return FeedbackResult{Status: FeedbackRejectedProfanity, Message: err.Error()}
		case coreerrors.IsAuthRequired(err):
			return FeedbackResult{Status: FeedbackRejectedAuth}
		default:
			return FeedbackResult{Status: FeedbackRejectedOther, Message: err.Error()}
		}
	}
	return FeedbackResult{Status: FeedbackAccepted}
}

// ListFeedback fetches all feedback entries (admin view). Auth rejections are
// absorbed into an empty list: a regular user simply sees nothing rather
// than an error.
func (s *Service) ListFeedback(ctx context.Context) ([]domain.FeedbackItem, error) {
	var list []domain.FeedbackItem
	if err := s.list(ctx, "/api/admin/feedback", &list); err != nil {
		if coreerrors.IsAuthRequired(err) {
			return []domain.FeedbackItem{}, nil
		}
		return nil, err
	}
	return list, nil
}

// ReplyFeedback posts an admin reply to a feedback entry.
func (s *Service) ReplyFeedback(ctx context.Context, feedbackID int64, reply string) error {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return &coreerrors.NormalizedError{Message: "Reply cannot be empty"}
	}
	_, err := s.gw.Post(ctx, fmt.Sprintf("/api/admin/feedback/%d/reply", feedbackID), map[string]string{
		"reply": reply,
	})
	return err
}

// DeleteFeedback removes a feedback entry (admin only).
func (s *Service) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	_, err := s.gw.Delete(ctx, fmt.Sprintf("/api/admin/feedback/%d", feedbackID))
	return err
}
