package model

import (
	"time"

	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// Member represents a workspace member stored in the directory snapshot.
// Entity records denormalize the Name at write time; a later rename leaves old
// records with the name they were created under.
type Member struct {
	ID        types.UserID
	Name      string // login name (e.g. "john.doe")
	RealName  string // display name (e.g. "John Doe")
	Email     string
	Position  string
	ImageURL  string // avatar URL (empty string = no image)
	UpdatedAt time.Time
}

// DisplayName prefers the real name and falls back to the login name
func (m *Member) DisplayName() string {
	if m.RealName != "" {
		return m.RealName
	}
	return m.Name
}

// DirectoryMetadata tracks the health of member directory synchronization
type DirectoryMetadata struct {
	LastRefreshSuccess time.Time
	LastRefreshAttempt time.Time
	MemberCount        int
}
