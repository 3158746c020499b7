package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
)

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	if receiver := r.URL.Query().Get("receiver"); receiver != "" {
		tasks, err := s.uc.Task.ListByReceiver(r.Context(), workspaceID, types.UserID(receiver))
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		respondJSON(w, r, http.StatusOK, toTaskResponses(tasks))
		return
	}

	tasks, err := s.uc.Task.List(r.Context(), workspaceID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toTaskResponses(tasks))
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")

	var body struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		SenderID    string    `json:"senderID"`
		ReceiverID  string    `json:"receiverID"`
		Deadline    time.Time `json:"deadline"`
		Priority    string    `json:"priority"`
		Notes       string    `json:"notes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	task, err := s.uc.Task.Create(r.Context(), workspaceID, usecase.CreateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		SenderID:    types.UserID(body.SenderID),
		ReceiverID:  types.UserID(body.ReceiverID),
		Deadline:    body.Deadline,
		Priority:    types.Priority(body.Priority),
		Notes:       body.Notes,
	})
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toTaskResponse(task))
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	task, err := s.uc.Task.Get(r.Context(), workspaceID, taskID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toTaskResponse(task))
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	var body struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Deadline    *time.Time `json:"deadline"`
		Priority    *string    `json:"priority"`
		Notes       *string    `json:"notes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	input := usecase.UpdateTaskInput{
		Title:       body.Title,
		Description: body.Description,
		Deadline:    body.Deadline,
		Notes:       body.Notes,
	}
	if body.Priority != nil {
		priority := types.Priority(*body.Priority)
		input.Priority = &priority
	}

	task, err := s.uc.Task.Update(r.Context(), workspaceID, taskID, input)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toTaskResponse(task))
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	if err := s.uc.Task.Delete(r.Context(), workspaceID, taskID); err != nil {
		s.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) acceptTask(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	task, err := s.uc.Task.Accept(r.Context(), workspaceID, taskID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toTaskResponse(task))
}

func (s *Server) declineTask(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	task, err := s.uc.Task.Decline(r.Context(), workspaceID, taskID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toTaskResponse(task))
}

func (s *Server) requestTaskRevision(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	var body struct {
		Reason string `json:"reason"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	task, err := s.uc.Task.RequestRevision(r.Context(), workspaceID, taskID, body.Reason)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toTaskResponse(task))
}

func (s *Server) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	task, err := s.uc.Task.UpdateStatus(r.Context(), workspaceID, taskID, types.TaskStatus(body.Status))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toTaskResponse(task))
}

func (s *Server) updateTaskProgress(w http.ResponseWriter, r *http.Request) {
	workspaceID := chi.URLParam(r, "workspaceID")
	taskID := types.TaskID(chi.URLParam(r, "taskID"))

	var body struct {
		Progress int `json:"progress"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	task, err := s.uc.Task.UpdateProgress(r.Context(), workspaceID, taskID, body.Progress)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toTaskResponse(task))
}
