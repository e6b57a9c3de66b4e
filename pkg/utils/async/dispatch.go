package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/utils/logging"
)

// Dispatch executes a handler function asynchronously in a new goroutine.
// It creates a background context and handles errors and panics. Used for
// best-effort work such as audit-log writes and notification fan-out.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	// New background context, but keep the request logger
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}
