package app

// MergeStrategy combines two values registered under the same custom option
// key. The returned value replaces both.
type MergeStrategy func(to, from any) any

// CompilerOptions carries settings forwarded to the template compiler.
// This core stores them; it never validates templating syntax.
type CompilerOptions struct {
	// Whitespace selects the compiler's whitespace handling ("preserve" or "condense").
	Whitespace string `yaml:"whitespace,omitempty"`
	// Delimiters overrides the interpolation delimiters.
	Delimiters [2]string `yaml:"delimiters,omitempty"`
	// Comments keeps host comments in production output.
	Comments bool `yaml:"comments,omitempty"`
}

// Config is the per-application settings block. Exactly one exists per
// application and its identity never changes after construction; callers
// mutate individual fields in place.
type Config struct {
	// ErrorHandler receives errors thrown by descendant units of work.
	// Resolution is performed by the instantiation layer, not this core.
	ErrorHandler func(err error, instance any, info string)
	// WarnHandler receives usage diagnostics instead of the global diag
	// channel when set.
	WarnHandler func(msg string, instance any, trace string)
	// Performance enables init/render tracing in supporting hosts.
	Performance bool
	// GlobalProperties are made available on every instance surface.
	GlobalProperties Props
	// OptionMergeStrategies customizes merging of same-named custom options.
	OptionMergeStrategies map[string]MergeStrategy
	// Compiler is forwarded to the template compiler when one is present.
	Compiler CompilerOptions
	// IsNativeTag reports whether a tag name belongs to the host platform.
	// Used to reject component registrations that would shadow native tags.
	IsNativeTag func(name string) bool
}

// defaultConfig returns a fresh config block with fixed defaults: no native
// tags, no performance tracing, no global properties, empty merge-strategy
// table, zero compiler options.
func defaultConfig() *Config {
	return &Config{
		GlobalProperties:      Props{},
		OptionMergeStrategies: map[string]MergeStrategy{},
	}
}
