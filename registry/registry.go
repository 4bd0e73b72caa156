package registry

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrTemplateNotFound is returned by Resolve for unknown template ids.
var ErrTemplateNotFound = errors.New("template not found")

//go:embed assets
var embedded embed.FS

// Placeholder binds a symbolic key to the literal token that appears in the
// template asset.
type Placeholder struct {
	Key      string `yaml:"key" json:"key"`
	Selector string `yaml:"selector" json:"selector"`
}

// Template is a named binding between an asset location and its placeholders.
type Template struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Asset        string        `yaml:"asset" json:"asset"`
	Placeholders []Placeholder `yaml:"placeholders" json:"placeholders"`
}

// Registry is a read-only table of templates.
type Registry struct {
	templates map[string]Template
	ids       []string
}

type file struct {
	Templates []Template `yaml:"templates"`
}

// New builds a registry from templates after validating them.
func New(templates ...Template) (*Registry, error) {
	r := &Registry{templates: make(map[string]Template, len(templates))}
	for i, tpl := range templates {
		if err := validate(tpl); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		if _, dup := r.templates[tpl.ID]; dup {
			return nil, fmt.Errorf("template %d: duplicate id %q", i, tpl.ID)
		}
		tpl.Placeholders = append([]Placeholder(nil), tpl.Placeholders...)
		r.templates[tpl.ID] = tpl
		r.ids = append(r.ids, tpl.ID)
	}
	sort.Strings(r.ids)
	return r, nil
}

// Load parses a YAML registry.
func Load(rd io.Reader) (*Registry, error) {
	var f file
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("registry is empty")
		}
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	return New(f.Templates...)
}

// LoadFile parses the YAML registry at path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer f.Close()

	r, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	f, err := embedded.Open("assets/registry.yaml")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
})

// Default returns the built-in registry.
func Default() *Registry {
	r, err := defaultRegistry()
	if err != nil {
		// The embedded registry is part of the build.
		panic("registry: invalid built-in registry: " + err.Error())
	}
	return r
}

// Assets returns the filesystem holding the built-in template assets. Paths
// are relative to the asset root, e.g. "basic.html".
func Assets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic("registry: " + err.Error())
	}
	return sub
}

// Resolve returns the template registered under id.
func (r *Registry) Resolve(id string) (Template, error) {
	tpl, ok := r.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	tpl.Placeholders = append([]Placeholder(nil), tpl.Placeholders...)
	return tpl, nil
}

// IDs returns the registered template ids in sorted order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// Templates returns every template ordered by id.
func (r *Registry) Templates() []Template {
	out := make([]Template, 0, len(r.ids))
	for _, id := range r.ids {
		tpl, _ := r.Resolve(id)
		out = append(out, tpl)
	}
	return out
}

// Len returns the number of templates.
func (r *Registry) Len() int {
	return len(r.ids)
}

func validate(tpl Template) error {
	if strings.TrimSpace(tpl.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(tpl.Asset) == "" {
		return fmt.Errorf("%q: asset is required", tpl.ID)
	}
	keys := make(map[string]bool, len(tpl.Placeholders))
	selectors := make(map[string]bool, len(tpl.Placeholders))
	for _, p := range tpl.Placeholders {
		if p.Key == "" {
			return fmt.Errorf("%q: placeholder key is required", tpl.ID)
		}
		if p.Selector == "" {
			return fmt.Errorf("%q: placeholder %q has no selector", tpl.ID, p.Key)
		}
		if keys[p.Key] {
			return fmt.Errorf("%q: duplicate placeholder key %q", tpl.ID, p.Key)
		}
		if selectors[p.Selector] {
			return fmt.Errorf("%q: duplicate selector %q", tpl.ID, p.Selector)
		}
		keys[p.Key] = true
		selectors[p.Selector] = true
	}
	return nil
}
