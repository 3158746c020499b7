package slack

import "context"

// Service provides the Slack API surface used by notifications and the member
// directory refresh.
type Service interface {
	// GetUserInfo retrieves user information for the given user ID
	GetUserInfo(ctx context.Context, userID string) (*User, error)

	// ListUsers retrieves all non-deleted, non-bot users in the workspace
	ListUsers(ctx context.Context) ([]*User, error)

	// PostDirectMessage opens a DM conversation with the user and posts the
	// message. Returns the message timestamp.
	PostDirectMessage(ctx context.Context, userID string, text string) (string, error)
}

// User represents a Slack user
type User struct {
	ID       string
	Name     string
	RealName string
	Email    string
	Title    string
	ImageURL string
}
