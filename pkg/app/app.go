package app

import (
	"fmt"
	"sync/atomic"

	"github.com/go-vane/vane/pkg/diag"
)

// appUID issues process-wide application ids. Ids increase monotonically and
// are never reused.
var appUID atomic.Uint64

// Factory builds applications around externally supplied rendering
// collaborators. One factory typically exists per host platform.
type Factory struct {
	renderer Renderer
	devtools Devtools
}

// NewFactory returns a factory bound to the given renderer.
func NewFactory(renderer Renderer) *Factory {
	return &Factory{renderer: renderer}
}

// WithDevtools attaches a developer-tooling notifier to every application the
// factory creates. Returns the factory for chaining.
func (f *Factory) WithDevtools(dt Devtools) *Factory {
	f.devtools = dt
	return f
}

// App is one isolated instance of the framework: its own context, registries,
// and mount state. Applications share no mutable state with each other.
//
// All App methods are confined to the host's UI goroutine, matching the
// single-threaded cooperative execution model of the surrounding framework.
type App struct {
	uid     uint64
	version string

	ctx      *Context
	renderer Renderer
	devtools Devtools

	root      Component
	rootProps Props

	// installed tracks plugin identities; membership is recorded before a
	// plugin's Install runs so recursive self-installation is a duplicate.
	installed map[any]struct{}

	// mounted never resets; an application mounts at most once in its
	// lifetime. Remounting requires a new application around the same root.
	mounted   bool
	container Container
	instance  Instance
}

// CreateApp produces an application around a root component definition and
// optional root props. Data-bundle roots are shallow-copied; behavioral roots
// are used as-is. Root props that are not a key-value object are discarded
// with a diagnostic and mounting proceeds without them.
func (f *Factory) CreateApp(root Component, rootProps any) *App {
	if opts, ok := root.(*ComponentOptions); ok {
		root = opts.clone()
	}

	app := &App{
		uid:       appUID.Add(1),
		version:   Version,
		ctx:       newContext(),
		renderer:  f.renderer,
		devtools:  f.devtools,
		root:      root,
		installed: map[any]struct{}{},
	}
	app.ctx.app = app
	app.rootProps = app.coerceRootProps(rootProps)
	return app
}

// coerceRootProps validates the optional root-props value. Anything that is
// not a key-value object is discarded with a diagnostic.
func (a *App) coerceRootProps(rootProps any) Props {
	switch p := rootProps.(type) {
	case nil:
		return nil
	case Props:
		return p
	case map[string]any:
		return Props(p)
	default:
		a.warn("app.CreateApp", diag.CodeInvalidRootProps,
			"root props must be a key-value object, got %T; ignoring", rootProps)
		return nil
	}
}

// ID returns the application's numeric identity.
func (a *App) ID() uint64 {
	return a.uid
}

// Version returns the framework version the application was built with.
func (a *App) Version() string {
	return a.version
}

// Context returns the application's context.
func (a *App) Context() *Context {
	return a.ctx
}

// Root returns the captured root component definition.
func (a *App) Root() Component {
	return a.root
}

// RootProps returns the root props captured at construction.
func (a *App) RootProps() Props {
	return a.rootProps
}

// Container returns the host container, nil before mounting.
func (a *App) Container() Container {
	return a.container
}

// Instance returns the captured root instance, nil before mounting or when
// instance introspection is disabled.
func (a *App) Instance() Instance {
	return a.instance
}

// Config returns the settings block. Individual fields are mutated in place;
// the block itself is never replaced.
func (a *App) Config() *Config {
	return a.ctx.config
}

// SetConfig rejects replacement of the whole config block. The attempt is
// reported and not applied; the block's identity never changes after
// construction.
func (a *App) SetConfig(*Config) {
	a.warn("app.SetConfig", diag.CodeConfigReplaced,
		"the config block cannot be replaced; mutate individual fields instead")
}

// Use installs a plugin exactly once. The plugin is recorded as installed
// before its Install routine runs, so attempts to re-install from within
// Install are duplicates. Failures inside Install propagate to the caller
// unmodified. Returns the application for chaining.
func (a *App) Use(plugin Plugin, options ...any) *App {
	if plugin == nil || isNilPlugin(plugin) {
		a.warn("app.Use", diag.CodeInvalidPlugin,
			"plugin must be a function or expose an Install method")
		return a
	}
	key := pluginIdentity(plugin)
	if _, dup := a.installed[key]; dup {
		a.warn("app.Use", diag.CodeDuplicatePlugin,
			"plugin already installed on this application")
		return a
	}
	a.installed[key] = struct{}{}
	plugin.Install(a, options...)
	return a
}

// Mixin appends an option bundle to the context's mixin sequence. Bundles are
// order-significant: later mixins override earlier ones when merged
// downstream. Re-applying the same bundle is a reported no-op, as is any
// mixin usage in builds compiled without the options API.
func (a *App) Mixin(m *ComponentOptions) *App {
	if !optionsAPIEnabled {
		a.warn("app.Mixin", diag.CodeMixinsUnsupported,
			"mixins are not supported in builds without the options API")
		return a
	}
	for _, existing := range a.ctx.mixins {
		if existing == m {
			a.warn("app.Mixin", diag.CodeDuplicateMixin, "mixin already applied")
			return a
		}
	}
	a.ctx.mixins = append(a.ctx.mixins, m)
	return a
}

// Component returns the definition registered under name.
func (a *App) Component(name string) (Component, bool) {
	return a.ctx.Component(name)
}

// RegisterComponent stores a component definition under name. Reserved names
// are reported but registration proceeds; re-registration overwrites the
// previous definition with a diagnostic (last write wins). Returns the
// application for chaining.
func (a *App) RegisterComponent(name string, def Component) *App {
	if !validComponentName(name, a.ctx.config) {
		a.warn("app.RegisterComponent", diag.CodeReservedName,
			"component name %q conflicts with a built-in or native tag", name)
	}
	if _, dup := a.ctx.components[name]; dup {
		a.warn("app.RegisterComponent", diag.CodeDuplicateRegistration,
			"component %q already registered; overwriting", name)
	}
	a.ctx.components[name] = def
	return a
}

// Directive returns the directive registered under name.
func (a *App) Directive(name string) (*Directive, bool) {
	return a.ctx.Directive(name)
}

// RegisterDirective stores a directive under name, symmetric to
// RegisterComponent with its own reserved-name set and registry.
func (a *App) RegisterDirective(name string, def *Directive) *App {
	if !validDirectiveName(name) {
		a.warn("app.RegisterDirective", diag.CodeReservedName,
			"directive name %q conflicts with a built-in directive", name)
	}
	if _, dup := a.ctx.directives[name]; dup {
		a.warn("app.RegisterDirective", diag.CodeDuplicateRegistration,
			"directive %q already registered; overwriting", name)
	}
	a.ctx.directives[name] = def
	return a
}

// Provide stores value under an injection key, readable by descendant units
// of work created under this application. Keys must be comparable; providing
// the same key twice overwrites with a diagnostic.
func (a *App) Provide(key, value any) *App {
	if _, dup := a.ctx.provides[key]; dup {
		a.warn("app.Provide", diag.CodeDuplicateProvide,
			"injection key %v already provided; overwriting", key)
	}
	a.ctx.provides[key] = value
	return a
}

// warn routes a usage diagnostic to the config's WarnHandler when one is set,
// falling back to the global diag channel. Diagnostics never alter control
// flow.
func (a *App) warn(op string, code diag.Code, format string, args ...any) {
	w := &diag.Warning{Op: op, Code: code, App: a.uid}
	w.Message = fmt.Sprintf(format, args...)
	if h := a.ctx.config.WarnHandler; h != nil {
		h(w.Message, nil, op)
		return
	}
	diag.Report(w)
}
