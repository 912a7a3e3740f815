package ontology

import (
	"fmt"
	"sort"
)

type registeredNode struct {
	node   NodeMapping
	module string
}

// Registry resolves a node schema's label to the ontology mapping its
// source module contributed.
//
// A registry is populated once at startup and read-only afterwards, which
// is what makes concurrent lookups from the compiler safe without locking.
type Registry struct {
	byLabel  map[string]registeredNode
	mappings []Mapping
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byLabel: make(map[string]registeredNode)}
}

// Register adds a module's mapping. A node label claimed by two mappings is
// an authoring error and fails loudly.
func (r *Registry) Register(m Mapping) error {
	if m.ModuleName == "" {
		return fmt.Errorf("ontology mapping has no module name")
	}
	for _, node := range m.Nodes {
		if existing, taken := r.byLabel[node.NodeLabel]; taken {
			return fmt.Errorf("node label %s already mapped by module %s; cannot register it again for module %s",
				node.NodeLabel, existing.module, m.ModuleName)
		}
	}
	for _, node := range m.Nodes {
		r.byLabel[node.NodeLabel] = registeredNode{node: node, module: m.ModuleName}
	}
	r.mappings = append(r.mappings, m)
	return nil
}

// ForNodeLabel returns the node mapping registered for label and the name
// of the module that contributed it.
func (r *Registry) ForNodeLabel(label string) (NodeMapping, string, bool) {
	entry, ok := r.byLabel[label]
	if !ok {
		return NodeMapping{}, "", false
	}
	return entry.node, entry.module, true
}

// Mappings returns every registered mapping in registration order.
func (r *Registry) Mappings() []Mapping {
	return r.mappings
}

// Modules returns the registered module names, sorted.
func (r *Registry) Modules() []string {
	names := make([]string, 0, len(r.mappings))
	for _, m := range r.mappings {
		names = append(names, m.ModuleName)
	}
	sort.Strings(names)
	return names
}
