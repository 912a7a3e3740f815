package querybuild

import (
	"fmt"
	"strings"

	"github.com/surveyorhq/surveyor/internal/schema"
)

// BuildIngestionQuery compiles a node schema into one batched upsert query.
//
// The query UNWINDs the BatchParameter list, MERGEs each node on its id,
// stamps firstseen on creation, and SETs the declared properties, extra
// labels, provenance, and any registered ontology layer. Declared
// relationships attach in UNION-joined subqueries after the node SET.
//
// selected narrows which declared relationships the query attaches: nil
// means all of them, an empty non-nil slice means none, and any member not
// declared on the schema fails the build. The same schema always compiles
// to byte-identical text.
func (b *Builder) BuildIngestionQuery(node schema.NodeSchema, selected []schema.RelSchema) (string, error) {
	if err := node.Validate(); err != nil {
		return "", &BuildError{
			Code:        ErrCodeInvalidSchema,
			Message:     err.Error(),
			SchemaLabel: node.Label,
		}
	}

	subRel := node.SubResourceRelationship
	others := node.OtherRelationships
	if selected != nil {
		var err error
		subRel, others, err = FilterSelectedRelationships(node, selected)
		if err != nil {
			return "", err
		}
	}

	idRef, _ := node.Properties.Get(schema.IDProperty)
	prov := b.resolver.Resolve(node.Module)

	setLines := []string{
		"i." + ModuleNameProperty + ` = "` + EscapeString(prov.ModuleName) + `"`,
		"i." + ModuleVersionProperty + ` = "` + EscapeString(prov.ModuleVersion) + `"`,
	}
	setLines = append(setLines, nodePropertyLines(node)...)
	setLines = append(setLines, b.ontologyPropertyLines(node)...)

	attach, err := b.buildAttachRelationshipsStatement(node, subRel, others)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "UNWIND %s AS item\n", BatchParameter)
	fmt.Fprintf(&sb, "    MERGE (i:%s{%s: %s})\n", node.Label, schema.IDProperty, idRef.Render())
	sb.WriteString("    ON CREATE SET i.firstseen = timestamp()\n")
	sb.WriteString("    SET\n        ")
	sb.WriteString(strings.Join(setLines, ",\n        "))
	if attach != "" {
		sb.WriteString("\n")
		sb.WriteString(indentLines(attach, "    "))
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

// BuildMatchLinkQuery compiles a standalone relationship schema into a query
// that links two kinds of pre-existing nodes, creating neither. Both sides
// MATCH on their declared matchers, so records whose endpoints are absent
// simply produce no rows.
//
// The schema must carry a source matcher and source label, and its
// properties must include the parameter-sourced sub-resource scope pair
// that the cleanup machinery keys on.
func (b *Builder) BuildMatchLinkQuery(rel schema.RelSchema) (string, error) {
	if len(rel.SourceMatcher) == 0 || rel.SourceNodeLabel == "" {
		return "", &BuildError{
			Code: ErrCodeInvalidMatchLink,
			Message: "matchlink relationships need a source matcher and source node label; " +
				"this schema describes only the target side",
			RelLabel:    rel.RelLabel,
			TargetLabel: rel.TargetNodeLabel,
		}
	}
	if !rel.Properties.Constructed() {
		return "", newUnconstructedRelPropertiesError(rel.RelLabel, rel.TargetNodeLabel)
	}
	for _, name := range []string{SubResourceLabelProperty, SubResourceIDProperty} {
		ref, ok := rel.Properties.Get(name)
		if !ok {
			return "", &BuildError{
				Code: ErrCodeInvalidMatchLink,
				Message: fmt.Sprintf(
					"matchlink properties must declare %q so scoped cleanup can find the relationship; "+
						"add it as schema.FromParameter(%q)", name, name),
				RelLabel:    rel.RelLabel,
				TargetLabel: rel.TargetNodeLabel,
			}
		}
		if ref.Source != schema.SourceParameter {
			return "", &BuildError{
				Code: ErrCodeInvalidMatchLink,
				Message: fmt.Sprintf(
					"matchlink property %q must be parameter-sourced; the scope is fixed per call, not per record", name),
				RelLabel:    rel.RelLabel,
				TargetLabel: rel.TargetNodeLabel,
			}
		}
	}

	propLines, err := relPropertyLines("r", rel)
	if err != nil {
		return "", err
	}
	prov := b.resolver.Resolve(rel.Module)
	setLines := []string{
		"r." + ModuleNameProperty + ` = "` + EscapeString(prov.ModuleName) + `"`,
		"r." + ModuleVersionProperty + ` = "` + EscapeString(prov.ModuleVersion) + `"`,
	}
	setLines = append(setLines, propLines...)

	var pattern string
	if rel.Direction == schema.DirectionInward {
		pattern = fmt.Sprintf("(from)<-[r:%s]-(to)", rel.RelLabel)
	} else {
		pattern = fmt.Sprintf("(from)-[r:%s]->(to)", rel.RelLabel)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "UNWIND %s as item\n", BatchParameter)
	fmt.Fprintf(&sb, "    MATCH (from:%s{%s})\n", rel.SourceNodeLabel, buildMatchClause(rel.SourceMatcher))
	fmt.Fprintf(&sb, "    MATCH (to:%s{%s})\n", rel.TargetNodeLabel, buildMatchClause(rel.TargetMatcher))
	fmt.Fprintf(&sb, "    MERGE %s\n", pattern)
	sb.WriteString("    ON CREATE SET r.firstseen = timestamp()\n")
	sb.WriteString("    SET\n        ")
	sb.WriteString(strings.Join(setLines, ",\n        "))
	sb.WriteString(";\n")
	return sb.String(), nil
}
