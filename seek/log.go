package seek

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records; Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() { loggerPtr.Store(slog.New(nopHandler{})) }

// SetLogger sets the logger used by all controls.
// By default nothing is logged; pass nil to restore that.
//
// Gesture decisions (rejected presses, locks taken and released) are logged at
// debug level, rejected configuration at warn.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger { return loggerPtr.Load() }

func attrValue(v int) slog.Attr { return slog.Int("value", v) }
func attrAngle(deg float64) slog.Attr { return slog.Float64("angle", deg) }
func attrRadius(r float64) slog.Attr { return slog.Float64("radius", r) }
func attrPhase(p Phase) slog.Attr { return slog.String("phase", p.String()) }
func attrError(err error) slog.Attr { return slog.String("error", err.Error()) }
func attrUser(b bool) slog.Attr { return slog.Bool("user", b) }
func attrLock(name string) slog.Attr { return slog.String("lock", name) }
