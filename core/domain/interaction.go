// ABOUTME: Interaction domain models for per-item like and comment decoration
// ABOUTME: Defines the typed association key and the composite interaction state

package domain

import "fmt"

// EntityRef identifies a piece of content that can be liked and commented on.
// Type is the server-side entity discriminator (e.g. "ANNOUNCEMENT", "EVENT").
type EntityRef struct {
	Type string
	ID   int64
}

// String returns the "TYPE/id" form used in like and comment paths.
func (r EntityRef) String() string {
	return fmt.Sprintf("%s/%d", r.Type, r.ID)
}

// CommentAuthor is the subset of user identity attached to a comment.
type CommentAuthor struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Comment is a single entry in a content item's comment thread.
type Comment struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	CreatedAt string         `json:"createdAt"`
	User      *CommentAuthor `json:"user,omitempty"`
}

// InteractionState is the like/comment decoration for one content item.
// It is always a concrete value: failed fetches leave zero-value defaults
// rather than propagating errors, so viewing content never blocks on it.
type InteractionState struct {
	LikeCount int
	IsLiked   bool
	Comments  []Comment
}
