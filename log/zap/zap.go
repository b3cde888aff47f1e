// Package zap adapts a *zap.Logger to the recmap.Logger interface.
package zap

import (
	"github.com/unkn0wn-root/recmap"
	"go.uber.org/zap"
)

type Logger struct{ L *zap.Logger }

var _ recmap.Logger = Logger{}

func (z Logger) Debug(msg string, f recmap.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f recmap.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f recmap.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f recmap.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f recmap.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
