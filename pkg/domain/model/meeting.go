package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// Meeting represents a scheduled time-boxed event
type Meeting struct {
	ID                    types.MeetingID
	Title                 string
	Description           string
	StartTime             time.Time
	EndTime               time.Time
	ParticipantIDs        []types.UserID
	Location              string
	MeetingLink           string
	CreatedBy             types.UserID
	CreatedAt             time.Time
	UpdatedAt             time.Time
	EmailNotificationSent bool
	Rev                   int64
}

var ErrInvalidTimeRange = goerr.New("meeting end time must be after start time")

// ValidateTimeRange enforces the EndTime > StartTime invariant
func (m *Meeting) ValidateTimeRange() error {
	if !m.EndTime.After(m.StartTime) {
		return goerr.Wrap(ErrInvalidTimeRange, "invalid meeting time range",
			goerr.V("start_time", m.StartTime),
			goerr.V("end_time", m.EndTime))
	}
	return nil
}
