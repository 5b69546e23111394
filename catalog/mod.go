package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/loomgen/go-loom/debug"
)

// ErrUnknownMod marks lookups of module names never registered.
var ErrUnknownMod = errors.New("unknown module")

// Mod extends a Project with scaffolding for one language or framework.
// Pipe mutates the project tree through its hook nodes.
type Mod interface {
	Name() string
	Pipe(p *Project) error
}

var mods = map[string]Mod{}

// Register adds a module to the global table. Registering the same name
// twice is a programming error.
func Register(m Mod) {
	if _, dup := mods[m.Name()]; dup {
		panic(fmt.Sprintf("module registered twice: %s", m.Name()))
	}
	mods[m.Name()] = m
}

// Lookup resolves a module by name.
func Lookup(name string) (Mod, error) {
	m, ok := mods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMod, name)
	}
	return m, nil
}

// Names lists the registered module names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(mods))
}

// Apply pipes the named modules through the project in order. A module
// already applied is skipped, so manifests may list overlapping stacks.
func (p *Project) Apply(names ...string) error {
	for _, name := range names {
		m, err := Lookup(name)
		if err != nil {
			return err
		}
		if slices.Contains(p.applied, name) {
			continue
		}
		if debug.Pipe() {
			debug.Logf("pipe %s -> %s\n", name, p.Manifest.Name)
		}
		if err := m.Pipe(p); err != nil {
			return fmt.Errorf("module %s: %w", name, err)
		}
		p.applied = append(p.applied, name)
	}
	return nil
}

// Applied reports the modules piped so far, in application order.
func (p *Project) Applied() []string {
	return slices.Clone(p.applied)
}
