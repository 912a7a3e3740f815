package querybuild

import (
	"log/slog"
	"strings"

	"github.com/surveyorhq/surveyor/internal/ontology"
	"github.com/surveyorhq/surveyor/internal/schema"
)

// ontologyPropertyLines renders the SET lines for the node's derived
// ontology layer, or nil when no mapping is registered for the node's
// label.
//
// Mapping problems here degrade the single field with a warning instead of
// failing the build: ontology documents ship separately from schema code,
// and one bad field must not block ingestion of the raw properties.
func (b *Builder) ontologyPropertyLines(node schema.NodeSchema) []string {
	if b.registry == nil {
		return nil
	}
	mapping, module, ok := b.registry.ForNodeLabel(node.Label)
	if !ok {
		return nil
	}

	lines := []string{"i." + OntologySourceProperty + ` = "` + EscapeString(module) + `"`}
	for _, field := range mapping.Fields {
		prop := "i." + OntologyPrefix + field.OntologyField

		// static_value needs no node field; handle it before the lookup.
		if field.Derivation == ontology.DerivationStaticValue {
			value, ok := field.ExtraValue()
			if !ok {
				slog.Warn("static_value derivation requires extra.value",
					"ontology_field", field.OntologyField, "node_label", node.Label)
				continue
			}
			lines = append(lines, prop+" = "+renderLiteral(value))
			continue
		}

		ref, ok := node.Properties.Get(field.NodeField)
		if !ok {
			slog.Warn("mapped node field not declared on node schema",
				"node_field", field.NodeField,
				"ontology_field", field.OntologyField,
				"node_label", node.Label)
			continue
		}

		switch field.Derivation {
		case ontology.DerivationInvertBool:
			// Unconvertible or absent values invert to true.
			lines = append(lines, prop+" = (NOT(coalesce(toBooleanOrNull("+ref.Render()+"), false)))")
		case ontology.DerivationToBool:
			// Unconvertible non-null values count as true, absent as false.
			lines = append(lines, prop+" = coalesce(toBooleanOrNull("+ref.Render()+"), ("+ref.Render()+" IS NOT NULL))")
		case ontology.DerivationEqualBool:
			values, ok := field.ExtraValues()
			if !ok {
				slog.Warn("equal_boolean derivation requires extra.values as a non-empty list",
					"ontology_field", field.OntologyField, "node_label", node.Label)
				continue
			}
			lines = append(lines, prop+" = ("+ref.Render()+" IN "+renderLiteralList(values)+")")
		case ontology.DerivationOrBool:
			cond, ok := b.combinedBoolCondition(node, field, ref, orBoolTerm, " OR ")
			if !ok {
				continue
			}
			lines = append(lines, prop+" = ("+cond+")")
		case ontology.DerivationNorBool:
			cond, ok := b.combinedBoolCondition(node, field, ref, norBoolTerm, " AND ")
			if !ok {
				continue
			}
			lines = append(lines, prop+" = ("+cond+")")
		default:
			lines = append(lines, prop+" = "+ref.Render())
		}
	}
	return lines
}

func orBoolTerm(ref schema.PropertyRef) string {
	return "coalesce(toBooleanOrNull(" + ref.Render() + "), false)"
}

// norBoolTerm negates per term; the terms join with AND, so the whole
// condition is true only when every field is falsy.
func norBoolTerm(ref schema.PropertyRef) string {
	return "NOT(coalesce(toBooleanOrNull(" + ref.Render() + "), false))"
}

// combinedBoolCondition builds the multi-field condition shared by the
// or_boolean and nor_boolean derivations: the mapped node field first, then
// each extra field in document order. Extra fields missing from the node
// schema degrade individually with a warning.
func (b *Builder) combinedBoolCondition(
	node schema.NodeSchema,
	field ontology.FieldMapping,
	ref schema.PropertyRef,
	term func(schema.PropertyRef) string,
	joiner string,
) (string, bool) {
	extraFields, ok := field.ExtraFields()
	if !ok {
		slog.Warn("boolean combination derivation requires extra.fields as a list of strings",
			"derivation", field.Derivation,
			"ontology_field", field.OntologyField,
			"node_label", node.Label)
		return "", false
	}

	terms := []string{term(ref)}
	for _, name := range extraFields {
		extraRef, ok := node.Properties.Get(name)
		if !ok {
			slog.Warn("extra field not declared on node schema",
				"extra_field", name,
				"ontology_field", field.OntologyField,
				"node_label", node.Label)
			continue
		}
		terms = append(terms, term(extraRef))
	}
	return strings.Join(terms, joiner), true
}
