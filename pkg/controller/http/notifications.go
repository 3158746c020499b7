package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
)

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	userID := r.URL.Query().Get("userID")
	if userID == "" {
		s.handleError(w, r, goerr.Wrap(usecase.ErrValidation, "userID query parameter is required"))
		return
	}

	list, err := s.uc.Notification.ListByUser(r.Context(), workspaceID, types.UserID(userID))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toNotificationResponses(list))
}

func (s *Server) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	notificationID := types.NotificationID(chi.URLParam(r, "notificationID"))

	if err := s.uc.Notification.MarkRead(r.Context(), workspaceID, notificationID); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	userID := r.URL.Query().Get("userID")
	if userID == "" {
		s.handleError(w, r, goerr.Wrap(usecase.ErrValidation, "userID query parameter is required"))
		return
	}

	if err := s.uc.Notification.MarkAllRead(r.Context(), workspaceID, types.UserID(userID)); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	if s.directory == nil {
		respondJSON(w, r, http.StatusOK, []memberResponse{})
		return
	}

	members, err := s.directory.List(r.Context(), workspaceID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toMemberResponses(members))
}
