package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

type generateScriptRequest struct {
	Title          string   `json:"title" validate:"required"`
	Topic          string   `json:"topic" validate:"required"`
	Tone           string   `json:"tone"`
	TargetAudience string   `json:"target_audience"`
	Duration       int      `json:"duration" validate:"gte=0"`
	KeyPoints      []string `json:"key_points"`
	Tags           []string `json:"tags"`
}

func (s *Server) handleGenerateScript(w http.ResponseWriter, r *http.Request) {
	var req generateScriptRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	result, err := s.uc.Script.Generate(r.Context(), auth.SessionFrom(r.Context()), &usecase.GenerateScriptInput{
		Title:          req.Title,
		Topic:          req.Topic,
		Tone:           req.Tone,
		TargetAudience: req.TargetAudience,
		Duration:       req.Duration,
		KeyPoints:      req.KeyPoints,
		Tags:           req.Tags,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusCreated, result)
}

func (s *Server) handleGetScript(w http.ResponseWriter, r *http.Request) {
	script, err := s.uc.Script.Get(r.Context(), model.ScriptID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, script)
}

func (s *Server) handleListScriptVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := s.uc.Script.ListVersions(r.Context(), model.ScriptID(chi.URLParam(r, "id")))
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, versions)
}
