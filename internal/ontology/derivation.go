package ontology

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Derivation names the strategy used to compute a normalized ontology field
// from a node's raw properties.
//
// The set is closed. Parsing an unknown name is an error at load time
// rather than a silent fall-through to direct assignment: a misspelled
// strategy must never quietly change meaning.
type Derivation string

const (
	// DerivationNone copies the source field directly. It is the zero
	// value, so a mapping field that omits the derivation key gets a
	// direct copy.
	DerivationNone Derivation = ""

	// DerivationInvertBool negates a null-safe boolean coercion of the
	// source field. Absent or unparseable values coerce to false and
	// therefore invert to true.
	DerivationInvertBool Derivation = "invert_boolean"

	// DerivationToBool coerces the source field to a boolean; a present
	// but unparseable value counts as true, an absent value as false.
	DerivationToBool Derivation = "to_boolean"

	// DerivationEqualBool is true when the source value is in the literal
	// list carried in extra["values"].
	DerivationEqualBool Derivation = "equal_boolean"

	// DerivationOrBool ORs the null-safe boolean coercion of the source
	// field and every field named in extra["fields"].
	DerivationOrBool Derivation = "or_boolean"

	// DerivationNorBool ANDs the negated coercions of the source field
	// and every field named in extra["fields"].
	DerivationNorBool Derivation = "nor_boolean"

	// DerivationStaticValue sets the literal carried in extra["value"];
	// the only strategy that needs no source field.
	DerivationStaticValue Derivation = "static_value"
)

var validDerivations = map[Derivation]bool{
	DerivationInvertBool:  true,
	DerivationToBool:      true,
	DerivationEqualBool:   true,
	DerivationOrBool:      true,
	DerivationNorBool:     true,
	DerivationStaticValue: true,
}

// ParseDerivation validates a derivation name. The empty string and "none"
// both mean DerivationNone so that mapping documents may omit the key or
// spell the default out.
func ParseDerivation(s string) (Derivation, error) {
	if s == "" || s == "none" {
		return DerivationNone, nil
	}
	d := Derivation(s)
	if !validDerivations[d] {
		return "", fmt.Errorf("unknown derivation %q", s)
	}
	return d, nil
}

// UnmarshalYAML decodes a derivation through ParseDerivation so that
// mapping documents with unknown strategy names fail to load.
func (d *Derivation) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDerivation(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
