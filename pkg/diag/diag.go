// Package diag provides the non-fatal diagnostic channel for the Vane framework.
//
// Diagnostics report development-time usage issues (duplicate registrations,
// lifecycle misuse) without altering control flow. They never panic and are
// never required for correct operation; production builds may install a
// silent handler.
package diag

import (
	"fmt"
	"time"
)

// Code identifies the category of a usage diagnostic.
type Code int

const (
	// CodeUnknown indicates a diagnostic of unknown category.
	CodeUnknown Code = iota
	// CodeDuplicatePlugin indicates a plugin was installed more than once.
	CodeDuplicatePlugin
	// CodeInvalidPlugin indicates a value with no installable shape was passed to Use.
	CodeInvalidPlugin
	// CodeDuplicateMixin indicates the same mixin bundle was applied twice.
	CodeDuplicateMixin
	// CodeMixinsUnsupported indicates mixin usage in a build without the options API.
	CodeMixinsUnsupported
	// CodeDuplicateRegistration indicates a component or directive name was re-registered.
	CodeDuplicateRegistration
	// CodeReservedName indicates a registration under a built-in or native tag name.
	CodeReservedName
	// CodeDuplicateProvide indicates an injection key was provided twice.
	CodeDuplicateProvide
	// CodeInvalidRootProps indicates root props that are not a key-value object.
	CodeInvalidRootProps
	// CodeAlreadyMounted indicates a mount call on an already mounted application.
	CodeAlreadyMounted
	// CodeNotMounted indicates an unmount call before any mount.
	CodeNotMounted
	// CodeConfigReplaced indicates an attempt to replace the whole config block.
	CodeConfigReplaced
	// CodeForeignContainer indicates mounting onto a container owned by another application.
	CodeForeignContainer
)

func (c Code) String() string {
	switch c {
	case CodeDuplicatePlugin:
		return "duplicate-plugin"
	case CodeInvalidPlugin:
		return "invalid-plugin"
	case CodeDuplicateMixin:
		return "duplicate-mixin"
	case CodeMixinsUnsupported:
		return "mixins-unsupported"
	case CodeDuplicateRegistration:
		return "duplicate-registration"
	case CodeReservedName:
		return "reserved-name"
	case CodeDuplicateProvide:
		return "duplicate-provide"
	case CodeInvalidRootProps:
		return "invalid-root-props"
	case CodeAlreadyMounted:
		return "already-mounted"
	case CodeNotMounted:
		return "not-mounted"
	case CodeConfigReplaced:
		return "config-replaced"
	case CodeForeignContainer:
		return "foreign-container"
	default:
		return "unknown"
	}
}

// Warning is a single non-fatal usage report.
type Warning struct {
	// Op is the operation that produced the report (e.g., "app.Use").
	Op string
	// Code categorizes the report.
	Code Code
	// Message is the human-readable description.
	Message string
	// App is the numeric id of the reporting application, 0 when not app-scoped.
	App uint64
	// Timestamp is when the report was produced.
	Timestamp time.Time
}

func (w *Warning) String() string {
	if w.App != 0 {
		return fmt.Sprintf("%s [%s] app=%d: %s", w.Op, w.Code, w.App, w.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", w.Op, w.Code, w.Message)
}

// PanicReport describes a panic recovered inside an observational hook.
type PanicReport struct {
	// Op is the operation that panicked (e.g., "app.devtools").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (p *PanicReport) String() string {
	if p.Op != "" {
		return fmt.Sprintf("panic in %s: %v", p.Op, p.Value)
	}
	return fmt.Sprintf("panic: %v", p.Value)
}
