package diag

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is a Handler that writes diagnostics through zerolog.
type LogHandler struct {
	// Logger is the destination logger.
	Logger zerolog.Logger
	// Verbose enables stack traces on recovered panics.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to stderr.
func NewLogHandler() *LogHandler {
	return &LogHandler{
		Logger: zerolog.New(os.Stderr).With().Timestamp().Str("app", "vane").Logger(),
	}
}

// HandleWarning logs a usage warning at warn level.
func (h *LogHandler) HandleWarning(w *Warning) {
	if w == nil {
		return
	}
	ev := h.Logger.Warn().Str("op", w.Op).Stringer("code", w.Code)
	if w.App != 0 {
		ev = ev.Uint64("uid", w.App)
	}
	ev.Msg(w.Message)
}

// HandlePanic logs a recovered panic at error level.
func (h *LogHandler) HandlePanic(p *PanicReport) {
	if p == nil {
		return
	}
	ev := h.Logger.Error().Str("op", p.Op).Interface("value", p.Value)
	if h.Verbose && p.StackTrace != "" {
		ev = ev.Str("stack", p.StackTrace)
	}
	ev.Msg("recovered panic")
}
