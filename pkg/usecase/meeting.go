package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/utils/async"
)

type MeetingUseCase struct {
	repo      interfaces.Repository
	sink      interfaces.NotificationSink
	directory interfaces.UserDirectory
	mailer    interfaces.EmailGateway
}

func NewMeetingUseCase(repo interfaces.Repository, sink interfaces.NotificationSink, directory interfaces.UserDirectory, mailer interfaces.EmailGateway) *MeetingUseCase {
	return &MeetingUseCase{
		repo:      repo,
		sink:      sink,
		directory: directory,
		mailer:    mailer,
	}
}

// CreateMeetingInput carries the caller-supplied fields for a new meeting
type CreateMeetingInput struct {
	Title          string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	ParticipantIDs []types.UserID
	Location       string
	MeetingLink    string
	CreatedBy      types.UserID
	SendEmail      bool
}

func (uc *MeetingUseCase) Create(ctx context.Context, workspaceID string, input CreateMeetingInput) (*model.Meeting, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "meeting title is required")
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() {
		return nil, goerr.Wrap(ErrValidation, "meeting start and end times are required")
	}
	if len(input.ParticipantIDs) == 0 {
		return nil, goerr.Wrap(ErrValidation, "meeting needs at least one participant")
	}

	meeting := &model.Meeting{
		Title:          input.Title,
		Description:    input.Description,
		StartTime:      input.StartTime.UTC(),
		EndTime:        input.EndTime.UTC(),
		ParticipantIDs: input.ParticipantIDs,
		Location:       input.Location,
		MeetingLink:    input.MeetingLink,
		CreatedBy:      input.CreatedBy,
	}
	if err := meeting.ValidateTimeRange(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid meeting time range",
			goerr.V("start_time", input.StartTime),
			goerr.V("end_time", input.EndTime))
	}

	if input.SendEmail && uc.mailer != nil {
		meeting.EmailNotificationSent = true
	}

	created, err := uc.repo.Meeting().Create(ctx, workspaceID, meeting)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create meeting")
	}

	for _, id := range created.ParticipantIDs {
		uc.emit(ctx, workspaceID, id, types.NotificationMeetingScheduled,
			"Meeting scheduled: "+created.Title, string(created.ID))
	}

	if input.SendEmail && uc.mailer != nil {
		uc.sendInvitations(ctx, workspaceID, created)
	}

	return created, nil
}

func (uc *MeetingUseCase) Get(ctx context.Context, workspaceID string, id types.MeetingID) (*model.Meeting, error) {
	meeting, err := uc.repo.Meeting().Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrMeetingNotFound, "meeting not found", goerr.V("meeting_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get meeting", goerr.V("meeting_id", id))
	}
	return meeting, nil
}

func (uc *MeetingUseCase) List(ctx context.Context, workspaceID string) ([]*model.Meeting, error) {
	meetings, err := uc.repo.Meeting().List(ctx, workspaceID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list meetings")
	}
	return meetings, nil
}

func (uc *MeetingUseCase) Delete(ctx context.Context, workspaceID string, id types.MeetingID) error {
	if err := uc.repo.Meeting().Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrMeetingNotFound, "meeting not found", goerr.V("meeting_id", id))
		}
		return goerr.Wrap(err, "failed to delete meeting", goerr.V("meeting_id", id))
	}
	return nil
}

// sendInvitations emails every participant with a known address. Delivery is
// fire-and-forget; EmailNotificationSent records intent, not outcome.
func (uc *MeetingUseCase) sendInvitations(ctx context.Context, workspaceID string, meeting *model.Meeting) {
	var recipients []string
	for _, id := range meeting.ParticipantIDs {
		if uc.directory == nil {
			continue
		}
		member, err := uc.directory.Lookup(ctx, workspaceID, id)
		if err != nil || member.Email == "" {
			continue
		}
		recipients = append(recipients, member.Email)
	}
	if len(recipients) == 0 {
		return
	}

	subject := "Meeting invitation: " + meeting.Title
	body := fmt.Sprintf("%s\n\nStart: %s\nEnd: %s\nLocation: %s\n%s",
		meeting.Description,
		meeting.StartTime.Format(time.RFC3339),
		meeting.EndTime.Format(time.RFC3339),
		meeting.Location,
		meeting.MeetingLink)

	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.mailer.Send(ctx, recipients, subject, body)
	})
}

func (uc *MeetingUseCase) emit(ctx context.Context, workspaceID string, userID types.UserID, eventType types.NotificationType, message, relatedID string) {
	if uc.sink != nil {
		uc.sink.Emit(ctx, workspaceID, userID, eventType, message, relatedID)
	}
}
