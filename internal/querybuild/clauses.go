package querybuild

import (
	"strings"

	"github.com/surveyorhq/surveyor/internal/schema"
)

// nodePropertyLines renders the SET lines for a node's declared properties.
// The id property is skipped: the MERGE clause already set it. Extra labels
// become one trailing "i:Label1:Label2" line.
func nodePropertyLines(node schema.NodeSchema) []string {
	var lines []string
	for _, p := range node.Properties {
		if p.Name == schema.IDProperty {
			continue
		}
		lines = append(lines, "i."+p.Name+" = "+p.Ref.Render())
	}
	if len(node.ExtraLabels) > 0 {
		lines = append(lines, "i:"+strings.Join(node.ExtraLabels, ":"))
	}
	return lines
}

// relPropertyLines renders the SET lines for a relationship's properties,
// using relVar as the relationship variable. Unconstructed properties are a
// build error naming the relationship, not a silently empty clause.
func relPropertyLines(relVar string, rel schema.RelSchema) ([]string, error) {
	if !rel.Properties.Constructed() {
		return nil, newUnconstructedRelPropertiesError(rel.RelLabel, rel.TargetNodeLabel)
	}
	var lines []string
	for _, p := range rel.Properties.Map() {
		lines = append(lines, relVar+"."+p.Name+" = "+p.Ref.Render())
	}
	return lines, nil
}

// buildMatchClause renders an inline node match, "key: ref" pairs joined by
// ", ", for use inside MATCH (x:Label{...}) patterns. Inline matches are
// always exact; matcher flags only apply in WHERE clauses.
func buildMatchClause(matcher schema.PropertyMap) string {
	parts := make([]string, len(matcher))
	for i, p := range matcher {
		parts[i] = p.Name + ": " + p.Ref.Render()
	}
	return strings.Join(parts, ", ")
}

// buildRelMatchWhereClause renders the WHERE conditions matching a
// relationship's target node. Each matcher entry picks one matching mode
// from its ref's flags, checked in a fixed priority order so that a ref
// carrying several flags behaves deterministically.
func buildRelMatchWhereClause(nodeVar string, matcher schema.PropertyMap) string {
	conds := make([]string, len(matcher))
	for i, p := range matcher {
		ref := p.Ref.Render()
		switch {
		case p.Ref.IgnoreCase:
			conds[i] = "toLower(" + nodeVar + "." + p.Name + ") = toLower(" + ref + ")"
		case p.Ref.FuzzyIgnoreCase:
			conds[i] = "toLower(" + nodeVar + "." + p.Name + ") CONTAINS toLower(" + ref + ")"
		case p.Ref.OneToMany:
			// The ref must point to a list on the record.
			conds[i] = nodeVar + "." + p.Name + " IN " + ref
		default:
			conds[i] = nodeVar + "." + p.Name + " = " + ref
		}
	}
	return strings.Join(conds, " AND\n")
}

// indentLines prefixes every non-empty line of s with the given indent.
func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
