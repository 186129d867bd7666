package gw2

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Registry indexes endpoint descriptors by name. Populate it at start-up;
// Register is not safe for concurrent use, lookups are.
type Registry struct {
	byName map[string]Descriptor
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Descriptor)}
}

// Register validates desc and adds it under desc.Name.
func (r *Registry) Register(desc Descriptor) error {
	err := desc.Validate()
	if err != nil {
		return err
	}

	if _, exists := r.byName[desc.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEndpoint, desc.Name)
	}

	r.byName[desc.Name] = desc.Clone()
	r.order = append(r.order, desc.Name)

	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	desc, ok := r.byName[name]
	if !ok {
		return Descriptor{}, false
	}

	return desc.Clone(), true
}

// MustLookup is like Lookup but panics when name is not registered. It is
// meant for package-level endpoint variables built from a static table.
func (r *Registry) MustLookup(name string) Descriptor {
	desc, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("%v: %s", ErrEndpointNotRegistered, name))
	}

	return desc
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Descriptors returns the registered descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	descs := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		descs = append(descs, r.byName[name].Clone())
	}

	return descs
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	return len(r.order)
}

// catalogFile is the YAML layout accepted by LoadRegistry.
type catalogFile struct {
	Endpoints []catalogEntry `yaml:"endpoints"`
}

type catalogEntry struct {
	Name      string `yaml:"name"`
	Endpoint  string `yaml:"endpoint"`
	Kind      Kind   `yaml:"kind"`
	Auth      bool   `yaml:"auth"`
	Localized bool   `yaml:"localized"`
}

// LoadRegistry builds a registry from a YAML endpoint table:
//
//	endpoints:
//	  - name: worlds
//	    endpoint: /v2/worlds?ids={}
//	    kind: id-list
//	    localized: true
func LoadRegistry(data []byte) (*Registry, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file catalogFile

	err := decoder.Decode(&file)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing endpoint catalogue: %w", err)
	}

	registry := NewRegistry()

	for _, entry := range file.Endpoints {
		path, params, err := ParseTemplate(entry.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", entry.Name, err)
		}

		err = registry.Register(Descriptor{
			Name:      entry.Name,
			Path:      path,
			Kind:      entry.Kind,
			Params:    params,
			Auth:      entry.Auth,
			Localized: entry.Localized,
		})
		if err != nil {
			return nil, fmt.Errorf("registering endpoint: %w", err)
		}
	}

	return registry, nil
}
