package dirbuild

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/loomgen/go-loom/eval"
)

// ErrManifest marks manifest load and validation failures.
var ErrManifest = errors.New("bad manifest")

// Manifest describes one project to generate: identity fields, the
// modules to apply, and user variables. String fields and variable
// values may interpolate ${...} expressions; see eval.ExpandString.
type Manifest struct {
	Name    string            `yaml:"name"`
	Title   string            `yaml:"title"`
	About   string            `yaml:"about"`
	Author  string            `yaml:"author"`
	Email   string            `yaml:"email"`
	License string            `yaml:"license"`
	Mods    []string          `yaml:"mods"`
	Vars    map[string]string `yaml:"vars"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return ParseManifest(b)
}

// ParseManifest parses manifest bytes, expands interpolations, and
// applies defaults. Vars expand against each other first; the identity
// fields then expand against the vars plus "name".
func ParseManifest(b []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrManifest)
	}
	if m.Vars == nil {
		m.Vars = map[string]string{}
	}
	if err := eval.ExpandAll(m.Vars); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	env := eval.Env{"name": m.Name}
	for k, v := range m.Vars {
		env[k] = v
	}
	for _, f := range []*string{&m.Title, &m.About, &m.Author, &m.Email, &m.License} {
		out, err := eval.ExpandString(*f, env)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrManifest, err)
		}
		*f = out
	}
	if m.Title == "" {
		m.Title = m.Name
	}
	return m, nil
}
