package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
)

func (s *Server) listMeetings(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	meetings, err := s.uc.Meeting.List(r.Context(), workspaceID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toMeetingResponses(meetings))
}

func (s *Server) createMeeting(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	var body struct {
		Title          string    `json:"title"`
		Description    string    `json:"description"`
		StartTime      time.Time `json:"startTime"`
		EndTime        time.Time `json:"endTime"`
		ParticipantIDs []string  `json:"participantIDs"`
		Location       string    `json:"location"`
		MeetingLink    string    `json:"meetingLink"`
		CreatedBy      string    `json:"createdBy"`
		SendEmail      bool      `json:"sendEmail"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	meeting, err := s.uc.Meeting.Create(r.Context(), workspaceID, usecase.CreateMeetingInput{
		Title:          body.Title,
		Description:    body.Description,
		StartTime:      body.StartTime,
		EndTime:        body.EndTime,
		ParticipantIDs: toUserIDs(body.ParticipantIDs),
		Location:       body.Location,
		MeetingLink:    body.MeetingLink,
		CreatedBy:      types.UserID(body.CreatedBy),
		SendEmail:      body.SendEmail,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toMeetingResponse(meeting))
}

func (s *Server) getMeeting(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	meetingID := types.MeetingID(chi.URLParam(r, "meetingID"))

	meeting, err := s.uc.Meeting.Get(r.Context(), workspaceID, meetingID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toMeetingResponse(meeting))
}

func (s *Server) deleteMeeting(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	meetingID := types.MeetingID(chi.URLParam(r, "meetingID"))

	if err := s.uc.Meeting.Delete(r.Context(), workspaceID, meetingID); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
