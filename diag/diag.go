// Package diag provides the structured logging seam used when decoding
// needs to be observed in production: which kind of Value was decoded,
// whether it succeeded, and what the formatted error was on failure. It is deliberately
// small, the same shape as a leveled-logger adapter interface, so callers
// can plug in whatever logging stack their service already uses.
package diag

import (
	mp "github.com/unkn0wn-root/packmsg"
	"github.com/unkn0wn-root/packmsg/codec"
)

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger. Adapters in diag/zap, diag/slog, and
// diag/logrus bind it to the corresponding third-party logging library. A
// nil Logger is never passed to Trace; use NopLogger to disable logging.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything. Passing it to Trace disables logging.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// Trace decodes v through c, logging the outcome at Debug on success and
// Error (with the formatted error path) on failure. It changes nothing
// about decode semantics; it exists purely to give a caller visibility into
// decode failures without threading a logger through every Codec.
func Trace[T any](c codec.Codec[T], v mp.Value, log Logger) (T, error) {
	t, err := c.Decode(v)
	if err != nil {
		log.Error("decode failed", Fields{
			"kind":  v.Kind().String(),
			"error": mp.FormatError(err),
		})
		return t, err
	}
	log.Debug("decode ok", Fields{"kind": v.Kind().String()})
	return t, nil
}
