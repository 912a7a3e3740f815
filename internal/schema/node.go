package schema

import "fmt"

// Reserved property names on ingested nodes.
const (
	// IDProperty is the MERGE key. Every node schema must declare it, and
	// the compiler never re-sets it in the property SET clause.
	IDProperty = "id"

	// FirstSeenProperty is stamped by the compiler itself on node and
	// relationship creation, so schemas may not declare it.
	FirstSeenProperty = "firstseen"
)

// Property is one named entry in an ordered property map.
type Property struct {
	Name string
	Ref  PropertyRef
}

// P builds a Property entry. Schema definitions read better with a short
// constructor:
//
//	Properties: schema.PropertyMap{
//		schema.P("id", schema.FromRecord("Arn")),
//		schema.P("name", schema.FromRecord("UserName")),
//	}
func P(name string, ref PropertyRef) Property {
	return Property{Name: name, Ref: ref}
}

// PropertyMap is an ordered mapping of attribute names to PropertyRefs.
// Order is declaration order and is preserved verbatim in generated query
// text; two compilations of the same map yield byte-identical output.
//
// A Go map would lose this ordering, so the type is a slice of entries.
type PropertyMap []Property

// Get returns the ref declared for name.
func (m PropertyMap) Get(name string) (PropertyRef, bool) {
	for _, p := range m {
		if p.Name == name {
			return p.Ref, true
		}
	}
	return PropertyRef{}, false
}

// Has reports whether name is declared in the map.
func (m PropertyMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// NodeSchema declares one ingestable node type: its label, where each of
// its properties comes from at runtime, and which relationships attach it
// to the rest of the graph.
//
// NodeSchemas are constructed once at process start and never mutated, so
// they are safe to share across goroutines without synchronization.
type NodeSchema struct {
	// Label is the primary node label used in the MERGE clause.
	Label string

	// Module identifies the source module that owns this schema (for
	// example "aws" or "github"); it feeds the provenance properties
	// stamped on every node and relationship.
	Module string

	// Properties maps node attribute names to value references. Must
	// contain an "id" entry; must not contain "firstseen".
	Properties PropertyMap

	// ExtraLabels are additional labels set on the node after MERGE.
	ExtraLabels []string

	// SubResourceRelationship attaches the node to its billing/ownership
	// scope (an account, tenant, project, ...). Optional.
	SubResourceRelationship *RelSchema

	// OtherRelationships are any additional declared edge types, attached
	// in declaration order.
	OtherRelationships []RelSchema
}

// Validate checks the schema's structural invariants. It is called by the
// query assemblers before any text is produced, so an invalid schema never
// yields a partial query.
func (s NodeSchema) Validate() error {
	if s.Label == "" {
		return fmt.Errorf("node schema has no label")
	}
	if !s.Properties.Has(IDProperty) {
		return fmt.Errorf("node schema %s has no %q property; the compiler needs it as the MERGE key", s.Label, IDProperty)
	}
	if s.Properties.Has(FirstSeenProperty) {
		return fmt.Errorf("node schema %s declares reserved property %q; it is stamped automatically on creation", s.Label, FirstSeenProperty)
	}
	return nil
}

// DeclaredRelationships returns the sub-resource relationship (if any)
// followed by the other relationships in declaration order.
func (s NodeSchema) DeclaredRelationships() []RelSchema {
	var rels []RelSchema
	if s.SubResourceRelationship != nil {
		rels = append(rels, *s.SubResourceRelationship)
	}
	rels = append(rels, s.OtherRelationships...)
	return rels
}
