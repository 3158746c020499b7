package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
)

func (s *Server) listRequests(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	if assignee := r.URL.Query().Get("assignee"); assignee != "" {
		reqs, err := s.uc.Request.ListByAssignee(r.Context(), workspaceID, types.UserID(assignee))
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		respondJSON(w, r, http.StatusOK, toRequestResponses(reqs))
		return
	}

	reqs, err := s.uc.Request.List(r.Context(), workspaceID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toRequestResponses(reqs))
}

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	var body struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		RequesterID string   `json:"requesterID"`
		AssigneeIDs []string `json:"assigneeIDs"`
		Priority    string   `json:"priority"`
		Notes       string   `json:"notes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	req, err := s.uc.Request.Create(r.Context(), workspaceID, usecase.CreateRequestInput{
		Title:       body.Title,
		Description: body.Description,
		RequesterID: types.UserID(body.RequesterID),
		AssigneeIDs: toUserIDs(body.AssigneeIDs),
		Priority:    types.Priority(body.Priority),
		Notes:       body.Notes,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toRequestResponse(req))
}

func (s *Server) getRequest(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	requestID := types.RequestID(chi.URLParam(r, "requestID"))

	req, err := s.uc.Request.Get(r.Context(), workspaceID, requestID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toRequestResponse(req))
}

func (s *Server) respondRequest(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	requestID := types.RequestID(chi.URLParam(r, "requestID"))

	var body struct {
		UserID   string `json:"userID"`
		Decision string `json:"decision"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	req, err := s.uc.Request.Respond(r.Context(), workspaceID, requestID,
		types.UserID(body.UserID), types.ResponseDecision(body.Decision))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toRequestResponse(req))
}

func (s *Server) updateRequestProgress(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	requestID := types.RequestID(chi.URLParam(r, "requestID"))

	var body struct {
		Progress int `json:"progress"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	req, err := s.uc.Request.UpdateProgress(r.Context(), workspaceID, requestID, body.Progress)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toRequestResponse(req))
}

func (s *Server) holdRequest(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	requestID := types.RequestID(chi.URLParam(r, "requestID"))

	req, err := s.uc.Request.Hold(r.Context(), workspaceID, requestID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toRequestResponse(req))
}

func (s *Server) deleteRequest(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	requestID := types.RequestID(chi.URLParam(r, "requestID"))

	if err := s.uc.Request.Delete(r.Context(), workspaceID, requestID); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
