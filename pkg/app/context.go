package app

// Context is the shared configuration and registry bundle owned by exactly
// one application. Every downstream subsystem (reconciliation, instantiation,
// injection resolution) reads shared state through it; none of them own it.
// The rendering layer borrows it for the duration of a mount or unmount call
// and stores a non-owning back-reference on the root node it creates.
type Context struct {
	config *Config

	// app is the owning application, nil until the application exists.
	app *App

	mixins     []*ComponentOptions
	components map[string]Component
	directives map[string]*Directive
	provides   map[any]any

	// Per-application memo caches, keyed by component identity.
	// Invalidated only by discarding the context with its application.
	optionsCache map[*ComponentOptions]*ComponentOptions
	propsCache   map[*ComponentOptions][]string
}

// newContext builds a fresh, self-contained context: all registries empty,
// config defaults fixed, owning application unset. It always succeeds and has
// no side effects outside the returned value.
func newContext() *Context {
	return &Context{
		config:       defaultConfig(),
		components:   map[string]Component{},
		directives:   map[string]*Directive{},
		provides:     map[any]any{},
		optionsCache: map[*ComponentOptions]*ComponentOptions{},
		propsCache:   map[*ComponentOptions][]string{},
	}
}

// App returns the owning application.
func (c *Context) App() *App {
	return c.app
}

// Config returns the settings block for in-place field mutation.
func (c *Context) Config() *Config {
	return c.config
}

// Mixins returns the applied mixin bundles in application order.
// Later bundles override earlier ones when merged downstream.
func (c *Context) Mixins() []*ComponentOptions {
	return c.mixins
}

// Component returns the definition registered under name.
func (c *Context) Component(name string) (Component, bool) {
	def, ok := c.components[name]
	return def, ok
}

// Directive returns the directive registered under name.
func (c *Context) Directive(name string) (*Directive, bool) {
	def, ok := c.directives[name]
	return def, ok
}

// Provided returns the value stored under an injection key. This is storage
// lookup only; resolution across the instantiation tree belongs to the
// injection collaborator.
func (c *Context) Provided(key any) (any, bool) {
	v, ok := c.provides[key]
	return v, ok
}
