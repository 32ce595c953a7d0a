package app

// activeApp is the process-wide single-slot tracker identifying the
// application currently executing a context-scoped callback. It is set only
// by RunWithContext and, like all App state, is confined to the host's UI
// goroutine. Nested RunWithContext calls are the only legal overlap and they
// nest correctly: the innermost application wins, restored to the outer one
// on return.
var activeApp *App

// CurrentApp returns the application whose RunWithContext callback is
// executing, or nil. The injection-resolution collaborator uses it as a
// fallback context when no instantiation-tree context is reachable.
func CurrentApp() *App {
	return activeApp
}

// RunWithContext marks this application as active, synchronously invokes fn,
// and returns whatever fn produced. The tracker is restored on every exit
// path, including a panicking fn; the panic itself propagates unmodified.
//
// This is the only sanctioned way to perform injection lookups from outside
// the normal instantiation tree.
func (a *App) RunWithContext(fn func() any) any {
	prev := activeApp
	activeApp = a
	defer func() { activeApp = prev }()
	return fn()
}

// Inject returns the value provided under key by the currently active
// application. It is the fallback lookup path the tracker exists for; inside
// the instantiation tree, resolution walks ancestor scopes instead.
func Inject(key any) (any, bool) {
	if activeApp == nil {
		return nil, false
	}
	return activeApp.ctx.Provided(key)
}
