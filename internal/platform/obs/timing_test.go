package obs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestID(ctx))

	func() (err error) {
		defer Time(ctx, "ok.op")(&err)
		return nil
	}()
	func() (err error) {
		defer Time(ctx, "bad.op")(&err)
		return errors.New("boom")
	}()

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "ok.op", entries[0].ContextMap()["op"])

		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, "bad.op", entries[1].ContextMap()["op"])
		assert.Equal(t, "abc", entries[1].ContextMap()["req_id"])
		assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	}
}

func TestTimeLogsExpectedFailuresAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	errNotFound := errors.New("not found")

	func() (err error) {
		defer Time(context.Background(), "lookup", errNotFound)(&err)
		return fmt.Errorf("lookup %q: %w", "x", errNotFound)
	}()
	func() (err error) {
		defer Time(context.Background(), "lookup", errNotFound)(&err)
		return errors.New("db down")
	}()

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Contains(t, entries[0].ContextMap()["error"], "not found")

		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, "db down", entries[1].ContextMap()["error"])
	}
}
