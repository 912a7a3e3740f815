package querybuild

import (
	"fmt"

	"github.com/surveyorhq/surveyor/internal/schema"
)

// FilterSelectedRelationships validates a relationship selection against a
// node schema and splits it into the schema's two attachment slots.
//
// A nil selection is not accepted here; callers wanting "everything" pass
// the schema's declared relationships. An empty selection means "attach
// nothing" and returns (nil, nil, nil). Every selected relationship must be
// structurally equal to one the schema declares, otherwise the whole call
// fails with ErrCodeUndeclaredRelationship.
//
// The returned others preserve the schema's declaration order, not the
// selection's order, so the generated query text is independent of how the
// caller assembled the selection.
func FilterSelectedRelationships(
	node schema.NodeSchema,
	selected []schema.RelSchema,
) (*schema.RelSchema, []schema.RelSchema, error) {
	if len(selected) == 0 {
		return nil, nil, nil
	}

	declared := node.DeclaredRelationships()
	for _, sel := range selected {
		if !containsRel(declared, sel) {
			return nil, nil, &BuildError{
				Code: ErrCodeUndeclaredRelationship,
				Message: fmt.Sprintf(
					"selected relationship %s to %s is not declared on node schema %s; "+
						"check the selection passed to BuildIngestionQuery",
					sel.RelLabel, sel.TargetNodeLabel, node.Label),
				SchemaLabel: node.Label,
				RelLabel:    sel.RelLabel,
				TargetLabel: sel.TargetNodeLabel,
			}
		}
	}

	var subRel *schema.RelSchema
	if node.SubResourceRelationship != nil && containsRel(selected, *node.SubResourceRelationship) {
		sub := *node.SubResourceRelationship
		subRel = &sub
	}

	var others []schema.RelSchema
	for _, rel := range node.OtherRelationships {
		if containsRel(selected, rel) {
			others = append(others, rel)
		}
	}
	return subRel, others, nil
}

// RelPresentOnNodeSchema reports whether the node schema declares the given
// relationship, as either its sub-resource relationship or one of its other
// relationships.
func RelPresentOnNodeSchema(node schema.NodeSchema, rel schema.RelSchema) bool {
	sub, others, err := FilterSelectedRelationships(node, []schema.RelSchema{rel})
	if err != nil {
		return false
	}
	return sub != nil || len(others) > 0
}

func containsRel(rels []schema.RelSchema, rel schema.RelSchema) bool {
	for _, r := range rels {
		if r.Equal(rel) {
			return true
		}
	}
	return false
}
