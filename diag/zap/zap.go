// Package zap adapts *zap.Logger to diag.Logger.
package zap

import (
	"github.com/unkn0wn-root/packmsg/diag"
	"go.uber.org/zap"
)

type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f diag.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f diag.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f diag.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f diag.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f diag.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
