package diag

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Handler receives diagnostics reported by the framework.
type Handler interface {
	// HandleWarning is called for every usage diagnostic.
	HandleWarning(w *Warning)
	// HandlePanic is called when a panic is recovered inside an
	// observational hook that must not affect framework control flow.
	HandlePanic(p *PanicReport)
}

var (
	// defaultHandler is the global diagnostic handler.
	// It defaults to a LogHandler writing to stderr.
	defaultHandler Handler = NewLogHandler()

	handlerMu sync.RWMutex
)

// SetHandler configures the global diagnostic handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = NewLogHandler()
	} else {
		defaultHandler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Report sends a warning to the global handler.
// If w.Timestamp is zero, it is set to the current time.
func Report(w *Warning) {
	if w == nil {
		return
	}
	if w.Timestamp.IsZero() {
		w.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleWarning(w)
	}
}

// Warnf builds and reports a warning in one call.
func Warnf(op string, code Code, app uint64, format string, args ...any) {
	Report(&Warning{
		Op:      op,
		Code:    code,
		App:     app,
		Message: fmt.Sprintf(format, args...),
	})
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(p *PanicReport) {
	if p == nil {
		return
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(p)
	}
}

// Recover is a helper for deferred panic recovery inside observational hooks.
// Usage: defer diag.Recover("app.devtools")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicReport{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
