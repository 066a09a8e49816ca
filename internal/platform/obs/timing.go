package obs

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID attaches a request id that Time reports with each op.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation when the returned func runs.
// Pass the address of the caller's named error to log failures. Errors
// matching one of expected are outcomes, not failures, and log at debug.
func Time(ctx context.Context, name string, expected ...error) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start).Round(time.Microsecond)

		if errp == nil || *errp == nil {
			log.Debug("op", "req_id", reqID, "op", name, "dur", dur)
			return
		}

		for _, e := range expected {
			if errors.Is(*errp, e) {
				log.Debug("op", "req_id", reqID, "op", name, "dur", dur, "result", *errp)
				return
			}
		}
		log.Warn("op failed", "req_id", reqID, "op", name, "dur", dur, "err", *errp)
	}
}
