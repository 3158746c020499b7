package model

import (
	"strings"
	"time"

	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// Filler is one append-only entry in a disposition's fill log. Entries are
// immutable once created; removal is positional.
type Filler struct {
	UserID   types.UserID
	UserName string
	FilledAt time.Time
	Content  string
}

// Disposition represents a directive issued by one or more named givers to one
// or more recipients, tracked to completion. Deletion is soft: the Active flag
// is flipped and list operations filter on it.
type Disposition struct {
	ID            types.DispositionID
	Title         string
	Description   string
	GiverNames    []string // free text, not directory references
	ReceiverIDs   []types.UserID
	ReceiverNames []string
	Status        types.DispositionStatus
	Link          string // pipe-delimited URL pair
	Notes         string
	Fillers       []Filler
	ReceivedDate  time.Time
	Active        bool
	LastEditedBy  types.UserID
	LastEditedAt  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Rev           int64
}

// LinkPair splits the pipe-delimited link field into its two URLs. A missing
// separator yields the whole value as the first URL.
func (d *Disposition) LinkPair() (string, string) {
	before, after, _ := strings.Cut(d.Link, "|")
	return before, after
}

// StampEdit records who made a semantic edit and when
func (d *Disposition) StampEdit(userID types.UserID, now time.Time) {
	d.LastEditedBy = userID
	editedAt := now
	d.LastEditedAt = &editedAt
}
