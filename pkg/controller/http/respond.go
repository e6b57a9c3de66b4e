package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lensworks/crewdesk/pkg/repository"
	"github.com/lensworks/crewdesk/pkg/usecase"
	"github.com/lensworks/crewdesk/pkg/utils/errutil"
	"github.com/lensworks/crewdesk/pkg/utils/logging"
)

type successEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// respondData writes the `{success:true,data}` envelope
func respondData(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	writeJSON(ctx, w, statusCode, successEnvelope{Success: true, Data: data})
}

// respondMessage writes the envelope with a message and no data
func respondMessage(ctx context.Context, w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(ctx, w, statusCode, successEnvelope{Success: true, Message: msg})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(ctx).Error("failed to encode JSON response", "error", err.Error())
	}
}

// respondError maps domain errors onto HTTP status codes. Internal details
// stay in the log; the client only ever sees a category message.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidToken):
		errutil.HandleHTTP(ctx, w, err, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, usecase.ErrForbidden):
		errutil.HandleHTTP(ctx, w, err, http.StatusForbidden, "insufficient role")
	case errors.Is(err, repository.ErrNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound, "resource not found")
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError, "internal server error")
	}
}
