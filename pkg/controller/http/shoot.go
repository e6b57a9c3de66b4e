package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

type createShootRequest struct {
	ClientID  string    `json:"clientId" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Location  string    `json:"location"`
	Details   string    `json:"details"`
	Equipment []string  `json:"equipment"`
	Notes     string    `json:"notes"`
}

func (s *Server) handleCreateShoot(w http.ResponseWriter, r *http.Request) {
	var req createShootRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	shoot, err := s.uc.Shoot.Create(r.Context(), auth.SessionFrom(r.Context()), &usecase.CreateShootInput{
		ClientID:  model.ClientID(req.ClientID),
		Title:     req.Title,
		Date:      req.Date,
		Location:  req.Location,
		Details:   req.Details,
		Equipment: req.Equipment,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusCreated, shoot)
}

func (s *Server) handleListShoots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if clientID := r.URL.Query().Get("clientId"); clientID != "" {
		shoots, err := s.uc.Shoot.ListByClient(ctx, model.ClientID(clientID))
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, shoots)
		return
	}

	shoots, err := s.uc.Shoot.ListUpcoming(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondData(ctx, w, http.StatusOK, shoots)
}

type assignShootRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required"`
}

func (s *Server) handleAssignShoot(w http.ResponseWriter, r *http.Request) {
	var req assignShootRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	assignment, err := s.uc.Shoot.Assign(r.Context(),
		model.ShootID(chi.URLParam(r, "id")),
		model.UserID(req.UserID),
		req.Role,
	)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusCreated, assignment)
}
