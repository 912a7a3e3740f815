package ontology

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// mappingSchema constrains ontology mapping documents before decoding.
// The derivation disjunction mirrors the Derivation constants; keeping the
// constraint in the schema means authoring mistakes are reported against
// the document, with CUE's field-level positions, rather than surfacing as
// decode errors.
const mappingSchema = `
#Derivation: "none" | "invert_boolean" | "to_boolean" | "equal_boolean" | "or_boolean" | "nor_boolean" | "static_value"

#FieldMapping: {
	ontology_field: string & !=""
	node_field?:    string
	required?:      bool
	derivation?:    #Derivation
	extra?: {...}
}

#NodeMapping: {
	node_label:          string & !=""
	eligible_as_source?: bool
	fields: [...#FieldMapping]
}

#RelMapping: {
	comment?:   string
	query:      string & !=""
	iterative?: bool
}

module: string & !=""
nodes?: [...#NodeMapping]
rels?: [...#RelMapping]
`

var (
	schemaOnce  sync.Once
	schemaValue cue.Value
	schemaErr   error
)

func compiledSchema() (cue.Value, error) {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		v := ctx.CompileString(mappingSchema)
		if err := v.Err(); err != nil {
			schemaErr = fmt.Errorf("compile mapping schema: %w", err)
			return
		}
		schemaValue = v
	})
	return schemaValue, schemaErr
}

// ValidateDocument checks one YAML mapping document against the embedded
// CUE schema. It does not decode; callers follow up with yaml.Unmarshal.
func ValidateDocument(data []byte) error {
	v, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := cueyaml.Validate(data, v); err != nil {
		return fmt.Errorf("invalid mapping document: %w", err)
	}
	return nil
}
