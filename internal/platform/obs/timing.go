package obs

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores id on ctx for later timing and log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs the duration of op on the global zap logger. Use as
//
//	defer obs.Time(ctx, "op")(&err)
//
// Failures matching one of expected (via errors.Is) are ordinary outcomes
// and are logged at Debug instead of Warn.
func Time(ctx context.Context, name string, expected ...error) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		}
		if errp != nil && *errp != nil {
			fields = append(fields, zap.Error(*errp))
			if isExpected(*errp, expected) {
				zap.L().Debug("op done", fields...)
				return
			}
			zap.L().Warn("op failed", fields...)
			return
		}
		zap.L().Debug("op done", fields...)
	}
}

func isExpected(err error, expected []error) bool {
	for _, e := range expected {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
