package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

type createTaskRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Deadline    time.Time `json:"deadline" validate:"required"`
	AssignedTo  []string  `json:"assigned_to"`
	Project     string    `json:"project"`
	Tags        []string  `json:"tags"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	task, err := s.uc.Task.Create(r.Context(), auth.SessionFrom(r.Context()), &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      types.TaskStatus(req.Status),
		Priority:    types.TaskPriority(req.Priority),
		Deadline:    req.Deadline,
		AssignedTo:  toUserIDs(req.AssignedTo),
		Project:     req.Project,
		Tags:        req.Tags,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusCreated, task)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	ctx := r.Context()

	switch {
	case r.URL.Query().Get("status") != "":
		tasks, err := s.uc.Task.ListByStatus(ctx, types.TaskStatus(r.URL.Query().Get("status")))
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, tasks)
	case r.URL.Query().Get("upcoming") == "true":
		tasks, err := s.uc.Task.ListUpcoming(ctx, sess.UserID, 0)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, tasks)
	default:
		tasks, err := s.uc.Task.ListForUser(ctx, sess.UserID)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, tasks)
	}
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.uc.Task.Get(r.Context(), model.TaskID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, task)
}

type patchTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	AssignedTo  []string   `json:"assigned_to"`
	Project     *string    `json:"project"`
	Tags        []string   `json:"tags"`
}

func (s *Server) handlePatchTask(w http.ResponseWriter, r *http.Request) {
	var req patchTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	patch := &usecase.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		AssignedTo:  toUserIDs(req.AssignedTo),
		Project:     req.Project,
		Tags:        req.Tags,
	}
	if req.Status != nil {
		status := types.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := types.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}
	task, err := s.uc.Task.Patch(r.Context(), model.TaskID(chi.URLParam(r, "id")), patch)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	err := s.uc.Task.Delete(r.Context(), auth.SessionFrom(r.Context()), model.TaskID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondMessage(r.Context(), w, http.StatusOK, "task deleted")
}

func toUserIDs(ids []string) []model.UserID {
	if ids == nil {
		return nil
	}
	out := make([]model.UserID, len(ids))
	for i, id := range ids {
		out[i] = model.UserID(id)
	}
	return out
}
