package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

// handleInsights serves the analytics endpoint. The type parameter selects
// one aggregate; omitting it returns the default bundle.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	switch query.Get("type") {
	case "", "default":
		insights, err := s.uc.Analytics.DefaultInsights(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, insights)

	case "weekly-tasks":
		stats, err := s.uc.Analytics.WeeklyTasks(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, stats)

	case "team-workload":
		workload, err := s.uc.Analytics.TeamWorkload(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, workload)

	case "revenue-growth":
		months := 0
		if raw := query.Get("months"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				respondError(ctx, w, goerr.Wrap(usecase.ErrValidation, "months must be an integer"))
				return
			}
			months = parsed
		}
		growth, err := s.uc.Analytics.RevenueGrowth(ctx, months)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, growth)

	case "productivity":
		userID := model.UserID(query.Get("userId"))
		if userID == "" {
			userID = auth.SessionFrom(ctx).UserID
		}
		score, err := s.uc.Analytics.ProductivityScore(ctx, userID)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, map[string]int{"score": score})

	case "lead-conversion":
		rate, err := s.uc.Analytics.LeadConversionRate(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, map[string]float64{"conversionRate": rate})

	case "monthly-revenue":
		total, err := s.uc.Invoice.RevenueByMonth(ctx, query.Get("month"))
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, map[string]float64{"revenue": total})

	default:
		respondError(ctx, w, goerr.Wrap(usecase.ErrValidation, "unknown insight type",
			goerr.V("type", query.Get("type"))))
	}
}
