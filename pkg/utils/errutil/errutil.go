package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/utils/logging"
)

// Handle logs the error with a message and reports it to Sentry when a DSN
// is configured. The error is returned as-is so callers can keep
// propagating it.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	sentry.CaptureException(err)

	return err
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HandleHTTP logs the error and writes the `{code, message}` error body.
// The message is the user-facing text; internal error details are only
// logged, never sent to the client.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int, msg string) {
	if err != nil {
		logger := logging.From(ctx)

		var ge *goerr.Error
		if errors.As(err, &ge) {
			logger.Error("HTTP error",
				"status", statusCode,
				"error", err.Error(),
				"values", ge.Values(),
				"stack", ge.Stacks(),
			)
		} else {
			logger.Error("HTTP error",
				"status", statusCode,
				"error", err.Error(),
			)
		}

		if statusCode >= http.StatusInternalServerError {
			sentry.CaptureException(err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encErr := json.NewEncoder(w).Encode(errorBody{Code: statusCode, Message: msg}); encErr != nil {
		logging.From(ctx).Error("failed to encode error response", "error", encErr.Error())
	}
}
