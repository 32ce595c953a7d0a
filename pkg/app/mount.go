package app

import "github.com/go-vane/vane/pkg/diag"

// MountOptions selects how the initial mount materializes the root.
type MountOptions struct {
	// Hydrate attaches to pre-existing host content instead of rendering
	// from scratch. Ignored when the renderer has no hydration capability.
	Hydrate bool
	// SVG renders the root inside an SVG namespace.
	SVG bool
}

// Mount materializes the root component into container and returns the root
// instance's exposed surface. See MountWithOptions.
func (a *App) Mount(container Container) any {
	return a.MountWithOptions(container, MountOptions{})
}

// MountWithOptions binds the application's root to a host container through
// the renderer supplied at factory construction.
//
// Mounting is one-shot: an application mounts at most once in its lifetime,
// and a second call is a reported no-op that leaves the mounted root
// untouched. Failures inside the renderer propagate to the caller unmodified.
//
// The returned value is the restricted surface the root declared, or the full
// public instance when it declared none. Nil when the renderer produced no
// instance.
func (a *App) MountWithOptions(container Container, opts MountOptions) any {
	if a.mounted {
		a.warn("app.Mount", diag.CodeAlreadyMounted,
			"application already mounted; create a new application to remount")
		return nil
	}
	if owner := container.Owner(); owner != nil && owner != a {
		// Detected, reported, and the new mount proceeds anyway. The previous
		// application keeps its own state; the host content is replaced.
		a.warn("app.Mount", diag.CodeForeignContainer,
			"container already hosts application %d; unmount it first", owner.ID())
	}

	node := a.renderer.CreateNode(a.root, a.rootProps)
	// The node borrows the context; ownership stays with the application.
	node.AppContext = a.ctx

	if h, ok := a.renderer.(Hydrator); ok && opts.Hydrate {
		h.Hydrate(node, container)
	} else {
		a.renderer.Render(node, container, opts.SVG)
	}

	a.container = container
	container.SetOwner(a)
	a.mounted = true

	if DebugMode {
		a.instance = node.Instance
		a.notifyDevtoolsInit()
	}

	if node.Instance == nil {
		return nil
	}
	if exposed := node.Instance.Exposed(); exposed != nil {
		return exposed
	}
	return node.Instance.Proxy()
}

// Unmount tears down the mounted root: the renderer receives a nil node for
// the stored container, the captured root instance is cleared, devtools is
// notified, and the container's ownership marker is removed. Calling Unmount
// before any mount is a reported no-op that never reaches the renderer.
//
// Unmount does not make the application mountable again.
func (a *App) Unmount() {
	if !a.mounted {
		a.warn("app.Unmount", diag.CodeNotMounted,
			"cannot unmount an application that is not mounted")
		return
	}
	a.renderer.Render(nil, a.container, false)
	a.instance = nil
	if DebugMode {
		a.notifyDevtoolsUnmount()
	}
	a.container.SetOwner(nil)
}

// notifyDevtoolsInit announces the mount to developer tooling. Notifier
// failures are isolated; they must not affect mount outcomes.
func (a *App) notifyDevtoolsInit() {
	if a.devtools == nil {
		return
	}
	defer diag.Recover("app.devtools")
	a.devtools.AppInit(a, a.version)
}

// notifyDevtoolsUnmount announces the teardown to developer tooling.
func (a *App) notifyDevtoolsUnmount() {
	if a.devtools == nil {
		return
	}
	defer diag.Recover("app.devtools")
	a.devtools.AppUnmount(a)
}
