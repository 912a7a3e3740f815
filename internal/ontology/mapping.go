package ontology

// Keys recognized inside FieldMapping.Extra, per derivation strategy.
const (
	extraValuesKey = "values" // equal_boolean: literal value list
	extraFieldsKey = "fields" // or_boolean / nor_boolean: additional source fields
	extraValueKey  = "value"  // static_value: the literal to set
)

// FieldMapping derives one normalized ontology field from a node's raw
// properties.
type FieldMapping struct {
	// OntologyField is the normalized field name; the compiler prefixes
	// it before setting it on the node.
	OntologyField string `yaml:"ontology_field"`

	// NodeField is the raw source property on the owning node schema.
	// Unused by static_value.
	NodeField string `yaml:"node_field"`

	// Required marks fields downstream consumers treat as mandatory.
	Required bool `yaml:"required"`

	// Derivation selects how the value is computed. Defaults to
	// DerivationNone (direct copy).
	Derivation Derivation `yaml:"derivation"`

	// Extra carries derivation-specific parameters; see the extra*Key
	// constants.
	Extra map[string]any `yaml:"extra"`
}

// ExtraValues returns the literal value list for equal_boolean. ok is false
// when the key is missing, not a list, or empty.
func (f FieldMapping) ExtraValues() ([]any, bool) {
	raw, present := f.Extra[extraValuesKey]
	if !present {
		return nil, false
	}
	values, isList := raw.([]any)
	if !isList || len(values) == 0 {
		return nil, false
	}
	return values, true
}

// ExtraFields returns the additional source field names for or_boolean and
// nor_boolean. ok is false when the key is missing or any entry is not a
// string.
func (f FieldMapping) ExtraFields() ([]string, bool) {
	raw, present := f.Extra[extraFieldsKey]
	if !present {
		return nil, false
	}
	list, isList := raw.([]any)
	if !isList {
		return nil, false
	}
	fields := make([]string, 0, len(list))
	for _, entry := range list {
		s, isString := entry.(string)
		if !isString {
			return nil, false
		}
		fields = append(fields, s)
	}
	return fields, true
}

// ExtraValue returns the literal for static_value. ok is false when the key
// is missing.
func (f FieldMapping) ExtraValue() (any, bool) {
	v, present := f.Extra[extraValueKey]
	return v, present
}

// NodeMapping describes the ontology layer of one node label.
type NodeMapping struct {
	// NodeLabel is the primary label of the node schema the mapping
	// applies to.
	NodeLabel string `yaml:"node_label"`

	// Fields are the derived ontology fields, in declaration order.
	Fields []FieldMapping `yaml:"fields"`

	// EligibleAsSource marks node types whose records may seed canonical
	// ontology entities downstream.
	EligibleAsSource bool `yaml:"eligible_as_source"`
}

// RelMapping is a relationship-propagation rule: a downstream query run
// after ingestion to draw ontology-level edges from module-level ones.
type RelMapping struct {
	// Comment documents what the rule links.
	Comment string `yaml:"comment"`

	// Query is the propagation query text, executed by the sync engine.
	Query string `yaml:"query"`

	// Iterative marks rules that must run in batched/iterative mode
	// because they touch too many rows for a single transaction.
	Iterative bool `yaml:"iterative"`
}

// Mapping is the full ontology mapping contributed by one source module.
type Mapping struct {
	ModuleName string        `yaml:"module"`
	Nodes      []NodeMapping `yaml:"nodes"`
	Rels       []RelMapping  `yaml:"rels"`
}
