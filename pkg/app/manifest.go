package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest represents the optional vane.yaml application manifest. Hosts use
// it to configure an application at startup without code changes.
type Manifest struct {
	// Performance enables init/render tracing.
	Performance bool `yaml:"performance,omitempty"`
	// Globals are copied into Config.GlobalProperties.
	Globals map[string]any `yaml:"globals,omitempty"`
	// Compiler overrides template compiler settings.
	Compiler CompilerOptions `yaml:"compiler,omitempty"`
}

// LoadManifest reads vane.yaml from dir if present. A missing file yields an
// empty manifest, not an error.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "vane.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("failed to read vane.yaml: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse vane.yaml: %w", err)
	}
	return &m, nil
}

// ApplyManifest copies manifest settings onto the config block, mutating
// individual fields in place. The block itself is never replaced. Returns the
// application for chaining.
func (a *App) ApplyManifest(m *Manifest) *App {
	if m == nil {
		return a
	}
	cfg := a.ctx.config
	if m.Performance {
		cfg.Performance = true
	}
	for k, v := range m.Globals {
		cfg.GlobalProperties[k] = v
	}
	if m.Compiler.Whitespace != "" {
		cfg.Compiler.Whitespace = m.Compiler.Whitespace
	}
	if m.Compiler.Delimiters != ([2]string{}) {
		cfg.Compiler.Delimiters = m.Compiler.Delimiters
	}
	if m.Compiler.Comments {
		cfg.Compiler.Comments = true
	}
	return a
}
