package app

// Node is the root unit of work handed to the rendering layer. It carries a
// non-owning back-reference to the application context so descendant units of
// work created under it can reach shared registries and provided values.
type Node struct {
	// Component is the definition this node materializes.
	Component Component
	// Props are the values captured at application construction.
	Props Props
	// AppContext is the borrowed context of the owning application.
	AppContext *Context
	// Instance is the instantiated root, filled in by the rendering layer
	// during materialization. Nil until then.
	Instance Instance
}

// Instance is the externally visible shape of an instantiated root component.
// Implementations belong to the instantiation layer.
type Instance interface {
	// Exposed returns the restricted surface the component declared, or nil
	// when the component exposes everything.
	Exposed() any
	// Proxy returns the full public instance surface.
	Proxy() any
}

// Container is the host surface a root node is materialized into.
// Implementations belong to the host platform; this core only reads and
// writes the ownership marker.
type Container interface {
	// Owner returns the application currently mounted on the container,
	// nil when unclaimed.
	Owner() *App
	// SetOwner records or clears the mounting application.
	SetOwner(owner *App)
}

// Renderer materializes and tears down root nodes against a container.
// It is supplied at factory construction and treated as opaque: this core
// consumes no return values from it and never suppresses its failures.
type Renderer interface {
	// Render materializes node into container, or removes the previously
	// rendered subtree when node is nil.
	Render(node *Node, container Container, svg bool)
	// CreateNode builds a root node from a component definition and props.
	CreateNode(comp Component, props Props) *Node
}

// Hydrator is an optional Renderer capability: attaching to pre-existing
// host markup on the initial mount instead of materializing from scratch.
type Hydrator interface {
	Hydrate(node *Node, container Container)
}

// Devtools observes application lifecycle for developer tooling. It is purely
// observational: failures inside a notifier never affect mount or unmount
// outcomes.
type Devtools interface {
	// AppInit announces a newly mounted application and the framework version.
	AppInit(app *App, version string)
	// AppUnmount announces application teardown.
	AppUnmount(app *App)
}
