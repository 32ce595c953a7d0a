package app

import "strings"

// Props carries named values passed to a component.
type Props map[string]any

// Component describes a unit of work the rendering layer can materialize.
// It is either a *ComponentOptions data bundle or a FuncComponent.
type Component interface {
	component()
}

// FuncComponent is a behavioral component: a function that produces the
// component's subtree description from its props. It is stored as-is by the
// application; the framework never copies it.
type FuncComponent func(props Props) any

func (FuncComponent) component() {}

// ComponentOptions is a data-bundle component definition. Bundles passed as
// an application root are shallow-copied at construction so later mutation of
// the caller's original cannot retroactively change the running application.
type ComponentOptions struct {
	// Name identifies the component in diagnostics and devtools.
	Name string
	// Props lists the declared prop names, in source form (kebab or camel case).
	Props []string
	// Data holds the initial state values.
	Data map[string]any
	// Methods holds the component's named behaviors.
	Methods map[string]any
	// Setup is invoked by the instantiation layer before first render.
	Setup func(props Props) any
	// Render produces the component's subtree description.
	Render func(props Props) any
	// Mixins are option bundles folded into this component, in order.
	Mixins []*ComponentOptions
	// Expose restricts the instance surface returned from mounting to the
	// named members. Empty means the full public instance is exposed.
	Expose []string
	// Custom carries options merged through Config.OptionMergeStrategies.
	Custom map[string]any
}

func (*ComponentOptions) component() {}

// clone returns a shallow copy of the bundle.
func (o *ComponentOptions) clone() *ComponentOptions {
	if o == nil {
		return nil
	}
	dup := *o
	return &dup
}

// Directive bundles the lifecycle hooks applied to a host node.
type Directive struct {
	Created       DirectiveHook
	BeforeMount   DirectiveHook
	Mounted       DirectiveHook
	BeforeUpdate  DirectiveHook
	Updated       DirectiveHook
	BeforeUnmount DirectiveHook
	Unmounted     DirectiveHook
}

// DirectiveHook is invoked by the rendering layer at a directive lifecycle point.
type DirectiveHook func(node *Node, value any)

// builtInTags are component names reserved by the framework itself.
var builtInTags = map[string]struct{}{
	"component": {},
	"slot":      {},
	"template":  {},
}

// builtInDirectives are directive names reserved by the framework itself.
var builtInDirectives = map[string]struct{}{
	"bind": {}, "cloak": {}, "else": {}, "else-if": {}, "for": {},
	"html": {}, "if": {}, "memo": {}, "model": {}, "on": {},
	"once": {}, "pre": {}, "show": {}, "slot": {}, "text": {},
}

// validComponentName reports whether name collides with a built-in tag or a
// host-native tag per the application's config.
func validComponentName(name string, cfg *Config) bool {
	if _, reserved := builtInTags[strings.ToLower(name)]; reserved {
		return false
	}
	if cfg != nil && cfg.IsNativeTag != nil && cfg.IsNativeTag(name) {
		return false
	}
	return true
}

// validDirectiveName reports whether name collides with a built-in directive.
func validDirectiveName(name string) bool {
	_, reserved := builtInDirectives[strings.ToLower(name)]
	return !reserved
}
