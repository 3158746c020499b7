package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
)

func (s *Server) listDispositions(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	list, err := s.uc.Disposition.List(r.Context(), workspaceID, includeInactive)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toDispositionResponses(list))
}

func (s *Server) createDisposition(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	var body struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		GiverNames   []string  `json:"giverNames"`
		ReceiverIDs  []string  `json:"receiverIDs"`
		Status       string    `json:"status"`
		Link         string    `json:"link"`
		Notes        string    `json:"notes"`
		ReceivedDate time.Time `json:"receivedDate"`
		CreatedBy    string    `json:"createdBy"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	d, err := s.uc.Disposition.Create(r.Context(), workspaceID, usecase.CreateDispositionInput{
		Title:        body.Title,
		Description:  body.Description,
		GiverNames:   body.GiverNames,
		ReceiverIDs:  toUserIDs(body.ReceiverIDs),
		Status:       types.DispositionStatus(body.Status),
		Link:         body.Link,
		Notes:        body.Notes,
		ReceivedDate: body.ReceivedDate,
		CreatedBy:    types.UserID(body.CreatedBy),
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toDispositionResponse(d))
}

func (s *Server) getDisposition(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	dispositionID := types.DispositionID(chi.URLParam(r, "dispositionID"))

	d, err := s.uc.Disposition.Get(r.Context(), workspaceID, dispositionID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toDispositionResponse(d))
}

func (s *Server) updateDisposition(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	dispositionID := types.DispositionID(chi.URLParam(r, "dispositionID"))

	var body struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		GiverNames  []string `json:"giverNames"`
		Status      *string  `json:"status"`
		Link        *string  `json:"link"`
		Notes       *string  `json:"notes"`
		EditorID    string   `json:"editorID"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	input := usecase.UpdateDispositionInput{
		Title:       body.Title,
		Description: body.Description,
		GiverNames:  body.GiverNames,
		Link:        body.Link,
		Notes:       body.Notes,
	}
	if body.Status != nil {
		status := types.DispositionStatus(*body.Status)
		input.Status = &status
	}

	d, err := s.uc.Disposition.Update(r.Context(), workspaceID, dispositionID,
		types.UserID(body.EditorID), input)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toDispositionResponse(d))
}

func (s *Server) deleteDisposition(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	dispositionID := types.DispositionID(chi.URLParam(r, "dispositionID"))
	editorID := types.UserID(r.URL.Query().Get("editorID"))

	if err := s.uc.Disposition.Delete(r.Context(), workspaceID, dispositionID, editorID); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addFiller(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	dispositionID := types.DispositionID(chi.URLParam(r, "dispositionID"))

	var body struct {
		UserID  string `json:"userID"`
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	d, err := s.uc.Disposition.AddFiller(r.Context(), workspaceID, dispositionID,
		types.UserID(body.UserID), body.Content)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toDispositionResponse(d))
}

func (s *Server) removeFiller(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	dispositionID := types.DispositionID(chi.URLParam(r, "dispositionID"))
	editorID := types.UserID(r.URL.Query().Get("editorID"))

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.handleError(w, r, goerr.Wrap(usecase.ErrValidation, "filler index must be an integer"))
		return
	}

	d, err := s.uc.Disposition.RemoveFiller(r.Context(), workspaceID, dispositionID, editorID, index)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toDispositionResponse(d))
}
