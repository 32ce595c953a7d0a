// Package app provides the application context and lifecycle core of the
// Vane framework.
//
// An [App] is one isolated framework instance. It owns a [Context] holding
// the per-application config block, global registries (mixins, named
// components, named directives), and the provide/inject value store, and it
// drives the single-use mount/unmount lifecycle that hands a root [Node] to
// an external rendering layer.
//
// # Construction
//
// Applications are built by a [Factory] bound to a [Renderer]:
//
//	factory := app.NewFactory(renderer)
//	a := factory.CreateApp(&app.ComponentOptions{Name: "root"}, nil)
//	a.Use(router).Provide(themeKey, dark).RegisterComponent("button", button)
//	a.Mount(container)
//
// Registration methods return the application so calls chain.
//
// # Lifecycle
//
// Mounting is one-shot. After Unmount the application cannot be mounted
// again; remounting requires creating a new application around the same root
// definition.
//
// # Collaborators
//
// Tree reconciliation, reactive state, component instantiation, and hydration
// live outside this package, reached through the narrow [Renderer],
// [Hydrator], [Instance], [Container], and [Devtools] interfaces. This core
// never renders, diffs, or mutates a visual tree.
//
// # Diagnostics
//
// Usage mistakes (duplicate registrations, double mounts, reserved names) are
// non-fatal: they are reported through Config.WarnHandler or the global
// channel in package diag, and the offending call becomes a no-op or proceeds
// with a safe fallback. Failures raised by plugins or the renderer propagate
// to the caller unmodified.
package app
