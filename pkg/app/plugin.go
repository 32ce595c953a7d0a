package app

import "reflect"

// Plugin is a reusable installable unit of setup logic. An application
// installs each plugin at most once.
type Plugin interface {
	// Install is invoked with the installing application and any options
	// forwarded from Use.
	Install(app *App, options ...any)
}

// PluginFunc adapts a bare function to the Plugin interface, covering the
// callable variant of the plugin shape.
type PluginFunc func(app *App, options ...any)

// Install implements Plugin.
func (f PluginFunc) Install(app *App, options ...any) {
	f(app, options...)
}

// isNilPlugin reports whether p wraps a nil function or pointer, a shape
// that cannot be installed.
func isNilPlugin(p Plugin) bool {
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// pluginIdentity returns a comparable key identifying a plugin in the
// installed set. Function-backed plugins are keyed by their code pointer so
// the same function value installed twice is recognized as a duplicate.
func pluginIdentity(p Plugin) any {
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return v.Pointer()
	default:
		if v.Comparable() {
			return p
		}
		// No stable identity; such plugins are never deduplicated.
		return new(struct{})
	}
}
