// ABOUTME: Content domain models for the community portal features
// ABOUTME: Announcements, events, programs, officials, services, and feedback

package domain

// Announcement is a portal-wide notice posted by an admin.
type Announcement struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// Event is a scheduled community event.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"`
	Location    string `json:"location,omitempty"`
	CreatedAt   string `json:"createdAt"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Program is an ongoing community program.
type Program struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Official is a listed community official.
type Official struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Participant is a user enrolled in a service.
type Participant struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Service is an offered community service residents can join or apply for.
type Service struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	IsActive     bool          `json:"isActive"`
	Participants []Participant `json:"participants,omitempty"`
}

// ServiceApplication is a resident's application for a service.
type ServiceApplication struct {
	ID             int64          `json:"id"`
	ServiceType    string         `json:"serviceType"`
	AdditionalInfo string         `json:"additionalInfo"`
	Status         string         `json:"status"`
	SubmittedAt    string         `json:"submittedAt"`
	User           *CommentAuthor `json:"user,omitempty"`
}

// FeedbackItem is a resident feedback entry, optionally with an admin reply.
type FeedbackItem struct {
	ID          int64          `json:"id"`
	Message     string         `json:"message"`
	SubmittedAt string         `json:"submittedAt"`
	AdminReply  string         `json:"adminReply,omitempty"`
	RepliedAt   string         `json:"repliedAt,omitempty"`
	User        *CommentAuthor `json:"user,omitempty"`
}

// UploadResult is the body returned by the image upload endpoint.
type UploadResult struct {
	ImageURL string `json:"imageUrl"`
}
