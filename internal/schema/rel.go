package schema

import "reflect"

// LinkDirection orients a relationship relative to the node schema that
// declares it.
type LinkDirection int

const (
	// DirectionOutward draws (node)-[:REL]->(target).
	DirectionOutward LinkDirection = iota

	// DirectionInward draws (node)<-[:REL]-(target).
	DirectionInward
)

// String returns the direction name for logs and error messages.
func (d LinkDirection) String() string {
	if d == DirectionInward {
		return "INWARD"
	}
	return "OUTWARD"
}

// RelProperties holds the ordered property map of a relationship. The zero
// value is detectably unconstructed: a schema author who declares a
// relationship but forgets to call NewRelProperties gets a build-time error
// naming the relationship, instead of a silently empty SET clause.
type RelProperties struct {
	props       PropertyMap
	constructed bool
}

// NewRelProperties builds a RelProperties from ordered entries. Calling it
// with no entries is valid and yields an empty SET clause.
func NewRelProperties(props ...Property) RelProperties {
	return RelProperties{props: PropertyMap(props), constructed: true}
}

// Constructed reports whether the value came from NewRelProperties.
func (p RelProperties) Constructed() bool {
	return p.constructed
}

// Map returns the ordered property entries.
func (p RelProperties) Map() PropertyMap {
	return p.props
}

// Get returns the ref declared for name.
func (p RelProperties) Get(name string) (PropertyRef, bool) {
	return p.props.Get(name)
}

// RelSchema declares one relationship type.
//
// On a NodeSchema, only the target side is described: the source is the
// node being ingested. A matchlink RelSchema additionally carries
// SourceNodeLabel and SourceMatcher and connects two pre-existing nodes
// without creating either.
type RelSchema struct {
	// RelLabel is the relationship type label used in the MERGE clause.
	RelLabel string

	// Direction orients the MERGE pattern.
	Direction LinkDirection

	// TargetNodeLabel is the label of the node on the far side.
	TargetNodeLabel string

	// TargetMatcher selects the target node. Matching semantics per key
	// follow the ref's flags (exact, ignore-case, fuzzy, one-to-many).
	TargetMatcher PropertyMap

	// SourceNodeLabel and SourceMatcher identify the near side for
	// matchlink relationships. Empty on node-schema relationships.
	SourceNodeLabel string
	SourceMatcher   PropertyMap

	// Properties set on the relationship itself.
	Properties RelProperties

	// Module identifies the owning source module for provenance. May be
	// empty on relationships declared inside a NodeSchema, in which case
	// the node's module applies.
	Module string
}

// Equal reports structural equality. Relationship selection uses this to
// decide membership against a schema's declared relationships.
func (r RelSchema) Equal(other RelSchema) bool {
	return reflect.DeepEqual(r, other)
}
