package notification

import "time"

// Kind classifies a notification for the UI.
type Kind string

const (
	KindMessage   Kind = "message"
	KindSubmitted Kind = "submitted"
	KindApproved  Kind = "approved"
	KindRejected  Kind = "rejected"
	KindLock      Kind = "lock"
)

type Notification struct {
	ID     string
	UserID string
	// SenderID is empty for system-generated notifications.
	SenderID  string
	Kind      Kind
	Message   string
	Read      bool
	CreatedAt time.Time
}
