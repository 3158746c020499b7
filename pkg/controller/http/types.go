package http

import (
	"time"

	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// Wire representations. Domain models stay tag-free; the JSON shape lives here.

type taskResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	SenderID       string     `json:"senderID"`
	SenderName     string     `json:"senderName"`
	ReceiverID     string     `json:"receiverID"`
	ReceiverName   string     `json:"receiverName"`
	Deadline       time.Time  `json:"deadline"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	Progress       int        `json:"progress"`
	Notes          string     `json:"notes,omitempty"`
	RevisionReason string     `json:"revisionReason,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

func toTaskResponse(t *model.Task) taskResponse {
	return taskResponse{
		ID:             string(t.ID),
		Title:          t.Title,
		Description:    t.Description,
		SenderID:       string(t.SenderID),
		SenderName:     t.SenderName,
		ReceiverID:     string(t.ReceiverID),
		ReceiverName:   t.ReceiverName,
		Deadline:       t.Deadline,
		Priority:       t.Priority.String(),
		Status:         t.Status.String(),
		Progress:       t.Progress,
		Notes:          t.Notes,
		RevisionReason: t.RevisionReason,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		CompletedAt:    t.CompletedAt,
	}
}

func toTaskResponses(tasks []*model.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

type responseEntry struct {
	UserID      string     `json:"userID"`
	UserName    string     `json:"userName"`
	Decision    string     `json:"decision"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}

type requestResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	RequesterID   string          `json:"requesterID"`
	RequesterName string          `json:"requesterName"`
	AssigneeIDs   []string        `json:"assigneeIDs"`
	AssigneeNames []string        `json:"assigneeNames"`
	Responses     []responseEntry `json:"responses"`
	Status        string          `json:"status"`
	Progress      int             `json:"progress"`
	Priority      string          `json:"priority"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	AcceptedAt    *time.Time      `json:"acceptedAt,omitempty"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
}

func toRequestResponse(r *model.RequestTask) requestResponse {
	assigneeIDs := make([]string, len(r.AssigneeIDs))
	for i, id := range r.AssigneeIDs {
		assigneeIDs[i] = string(id)
	}
	responses := make([]responseEntry, len(r.Responses))
	for i, resp := range r.Responses {
		responses[i] = responseEntry{
			UserID:      string(resp.UserID),
			UserName:    resp.UserName,
			Decision:    resp.Decision.String(),
			RespondedAt: resp.RespondedAt,
		}
	}

	return requestResponse{
		ID:            string(r.ID),
		Title:         r.Title,
		Description:   r.Description,
		RequesterID:   string(r.RequesterID),
		RequesterName: r.RequesterName,
		AssigneeIDs:   assigneeIDs,
		AssigneeNames: r.AssigneeNames,
		Responses:     responses,
		Status:        r.Status.String(),
		Progress:      r.Progress,
		Priority:      r.Priority.String(),
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		AcceptedAt:    r.AcceptedAt,
		CompletedAt:   r.CompletedAt,
	}
}

func toRequestResponses(reqs []*model.RequestTask) []requestResponse {
	out := make([]requestResponse, len(reqs))
	for i, r := range reqs {
		out[i] = toRequestResponse(r)
	}
	return out
}

type fillerEntry struct {
	UserID   string    `json:"userID"`
	UserName string    `json:"userName"`
	FilledAt time.Time `json:"filledAt"`
	Content  string    `json:"content"`
}

type dispositionResponse struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	GiverNames    []string      `json:"giverNames"`
	ReceiverIDs   []string      `json:"receiverIDs"`
	ReceiverNames []string      `json:"receiverNames"`
	Status        string        `json:"status"`
	Link          string        `json:"link,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Fillers       []fillerEntry `json:"fillers"`
	ReceivedDate  time.Time     `json:"receivedDate"`
	Active        bool          `json:"active"`
	LastEditedBy  string        `json:"lastEditedBy,omitempty"`
	LastEditedAt  *time.Time    `json:"lastEditedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func toDispositionResponse(d *model.Disposition) dispositionResponse {
	receiverIDs := make([]string, len(d.ReceiverIDs))
	for i, id := range d.ReceiverIDs {
		receiverIDs[i] = string(id)
	}
	fillers := make([]fillerEntry, len(d.Fillers))
	for i, f := range d.Fillers {
		fillers[i] = fillerEntry{
			UserID:   string(f.UserID),
			UserName: f.UserName,
			FilledAt: f.FilledAt,
			Content:  f.Content,
		}
	}

	return dispositionResponse{
		ID:            string(d.ID),
		Title:         d.Title,
		Description:   d.Description,
		GiverNames:    d.GiverNames,
		ReceiverIDs:   receiverIDs,
		ReceiverNames: d.ReceiverNames,
		Status:        d.Status.String(),
		Link:          d.Link,
		Notes:         d.Notes,
		Fillers:       fillers,
		ReceivedDate:  d.ReceivedDate,
		Active:        d.Active,
		LastEditedBy:  string(d.LastEditedBy),
		LastEditedAt:  d.LastEditedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDispositionResponses(list []*model.Disposition) []dispositionResponse {
	out := make([]dispositionResponse, len(list))
	for i, d := range list {
		out[i] = toDispositionResponse(d)
	}
	return out
}

type meetingResponse struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	StartTime             time.Time `json:"startTime"`
	EndTime               time.Time `json:"endTime"`
	ParticipantIDs        []string  `json:"participantIDs"`
	Location              string    `json:"location,omitempty"`
	MeetingLink           string    `json:"meetingLink,omitempty"`
	CreatedBy             string    `json:"createdBy"`
	EmailNotificationSent bool      `json:"emailNotificationSent"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func toMeetingResponse(m *model.Meeting) meetingResponse {
	participantIDs := make([]string, len(m.ParticipantIDs))
	for i, id := range m.ParticipantIDs {
		participantIDs[i] = string(id)
	}

	return meetingResponse{
		ID:                    string(m.ID),
		Title:                 m.Title,
		Description:           m.Description,
		StartTime:             m.StartTime,
		EndTime:               m.EndTime,
		ParticipantIDs:        participantIDs,
		Location:              m.Location,
		MeetingLink:           m.MeetingLink,
		CreatedBy:             string(m.CreatedBy),
		EmailNotificationSent: m.EmailNotificationSent,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func toMeetingResponses(list []*model.Meeting) []meetingResponse {
	out := make([]meetingResponse, len(list))
	for i, m := range list {
		out[i] = toMeetingResponse(m)
	}
	return out
}

type notificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userID"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	RelatedID string    `json:"relatedID,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNotificationResponses(list []*model.Notification) []notificationResponse {
	out := make([]notificationResponse, len(list))
	for i, n := range list {
		out[i] = notificationResponse{
			ID:        string(n.ID),
			UserID:    string(n.UserID),
			Type:      n.Type.String(),
			Message:   n.Message,
			RelatedID: n.RelatedID,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return out
}

type memberResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RealName string `json:"realName,omitempty"`
	Email    string `json:"email,omitempty"`
	Position string `json:"position,omitempty"`
	ImageURL string `json:"imageURL,omitempty"`
}

func toMemberResponses(list []*model.Member) []memberResponse {
	out := make([]memberResponse, len(list))
	for i, m := range list {
		out[i] = memberResponse{
			ID:       string(m.ID),
			Name:     m.Name,
			RealName: m.RealName,
			Email:    m.Email,
			Position: m.Position,
			ImageURL: m.ImageURL,
		}
	}
	return out
}

func toUserIDs(ids []string) []types.UserID {
	out := make([]types.UserID, len(ids))
	for i, id := range ids {
		out[i] = types.UserID(id)
	}
	return out
}
