package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
	"github.com/opsdesk-lab/teamboard/pkg/utils/errutil"
	"github.com/opsdesk-lab/teamboard/pkg/utils/logging"
)

type Server struct {
	router            *chi.Mux
	uc                *usecase.UseCases
	directory         interfaces.UserDirectory
	workspaceRegistry *model.WorkspaceRegistry
}

type Options func(*Server)

func WithWorkspaceRegistry(registry *model.WorkspaceRegistry) Options {
	return func(s *Server) {
		s.workspaceRegistry = registry
	}
}

func WithUserDirectory(dir interfaces.UserDirectory) Options {
	return func(s *Server) {
		s.directory = dir
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	if s.workspaceRegistry != nil {
		r.Get("/api/workspaces", workspacesHandler(s.workspaceRegistry))
	}

	r.Route("/api/workspaces/{workspaceID}", func(r chi.Router) {
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.listTasks)
			r.Post("/", s.createTask)
			r.Route("/{taskID}", func(r chi.Router) {
				r.Get("/", s.getTask)
				r.Patch("/", s.updateTask)
				r.Delete("/", s.deleteTask)
				r.Post("/accept", s.acceptTask)
				r.Post("/decline", s.declineTask)
				r.Post("/revision", s.requestTaskRevision)
				r.Post("/status", s.updateTaskStatus)
				r.Post("/progress", s.updateTaskProgress)
			})
		})

		r.Route("/requests", func(r chi.Router) {
			r.Get("/", s.listRequests)
			r.Post("/", s.createRequest)
			r.Route("/{requestID}", func(r chi.Router) {
				r.Get("/", s.getRequest)
				r.Delete("/", s.deleteRequest)
				r.Post("/respond", s.respondRequest)
				r.Post("/progress", s.updateRequestProgress)
				r.Post("/hold", s.holdRequest)
			})
		})

		r.Route("/dispositions", func(r chi.Router) {
			r.Get("/", s.listDispositions)
			r.Post("/", s.createDisposition)
			r.Route("/{dispositionID}", func(r chi.Router) {
				r.Get("/", s.getDisposition)
				r.Patch("/", s.updateDisposition)
				r.Delete("/", s.deleteDisposition)
				r.Post("/fillers", s.addFiller)
				r.Delete("/fillers/{index}", s.removeFiller)
			})
		})

		r.Route("/meetings", func(r chi.Router) {
			r.Get("/", s.listMeetings)
			r.Post("/", s.createMeeting)
			r.Route("/{meetingID}", func(r chi.Router) {
				r.Get("/", s.getMeeting)
				r.Delete("/", s.deleteMeeting)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", s.listNotifications)
			r.Post("/read-all", s.markAllNotificationsRead)
			r.Post("/{notificationID}/read", s.markNotificationRead)
		})

		r.Get("/members", s.listMembers)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// workspacesHandler returns a handler that serves the workspace list as JSON
func workspacesHandler(registry *model.WorkspaceRegistry) http.HandlerFunc {
	type workspaceResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	type response struct {
		Workspaces []workspaceResponse `json:"workspaces"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		workspaces := registry.Workspaces()
		resp := response{
			Workspaces: make([]workspaceResponse, len(workspaces)),
		}
		for i, ws := range workspaces {
			resp.Workspaces[i] = workspaceResponse{
				ID:   ws.ID,
				Name: ws.Name,
			}
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(usecase.ErrValidation, "invalid request body", goerr.V("decode_error", err.Error()))
	}
	return nil
}

// handleError maps use case sentinels to HTTP status codes
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrFillerIndexOutOfRange),
		errors.Is(err, model.ErrNotAssignee):
		return http.StatusBadRequest

	case errors.Is(err, usecase.ErrTaskNotFound),
		errors.Is(err, usecase.ErrRequestNotFound),
		errors.Is(err, usecase.ErrDispositionNotFound),
		errors.Is(err, usecase.ErrMeetingNotFound),
		errors.Is(err, usecase.ErrNotificationNotFound),
		errors.Is(err, model.ErrWorkspaceNotFound):
		return http.StatusNotFound

	case errors.Is(err, interfaces.ErrRevisionMismatch),
		errors.Is(err, usecase.ErrRequestNotPending),
		errors.Is(err, usecase.ErrRequestCompleted),
		errors.Is(err, usecase.ErrProgressNotTracked),
		errors.Is(err, usecase.ErrTaskTerminal):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
