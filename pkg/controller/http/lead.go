package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

type createLeadRequest struct {
	ClientName   string  `json:"client_name" validate:"required"`
	Company      string  `json:"company"`
	ContactEmail string  `json:"contact_email" validate:"required,email"`
	ContactPhone string  `json:"contact_phone"`
	Source       string  `json:"source"`
	Demands      string  `json:"demands"`
	Budget       float64 `json:"budget"`
	Notes        string  `json:"notes"`
}

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	lead, err := s.uc.Lead.Create(r.Context(), &usecase.CreateLeadInput{
		ClientName:   req.ClientName,
		Company:      req.Company,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Source:       req.Source,
		Demands:      req.Demands,
		Budget:       req.Budget,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusCreated, lead)
}

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	newOnly := r.URL.Query().Get("new") == "true"
	leads, err := s.uc.Lead.List(r.Context(), newOnly)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, leads)
}

type updateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

func (s *Server) handleUpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	var req updateLeadStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	sess := auth.SessionFrom(r.Context())
	lead, err := s.uc.Lead.UpdateStatus(r.Context(),
		model.LeadID(chi.URLParam(r, "id")),
		types.LeadStatus(req.Status),
		req.Reason,
		sess.UserID,
	)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, lead)
}
