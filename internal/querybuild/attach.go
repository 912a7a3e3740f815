package querybuild

import (
	"fmt"
	"strings"

	"github.com/surveyorhq/surveyor/internal/schema"
)

// relModule returns the module charged with a relationship's provenance.
// Relationships declared inside a node schema usually leave Module empty
// and inherit the node's.
func relModule(rel schema.RelSchema, node schema.NodeSchema) string {
	if rel.Module != "" {
		return rel.Module
	}
	return node.Module
}

// relMergePattern renders the MERGE pattern between the ingested node i and
// a matched neighbor, honoring the declared direction.
func relMergePattern(relVar, nodeVar string, rel schema.RelSchema) string {
	if rel.Direction == schema.DirectionInward {
		return fmt.Sprintf("MERGE (i)<-[%s:%s]-(%s)", relVar, rel.RelLabel, nodeVar)
	}
	return fmt.Sprintf("MERGE (i)-[%s:%s]->(%s)", relVar, rel.RelLabel, nodeVar)
}

// relSetBlock renders the SET block stamped on every created relationship:
// provenance first, then the schema's declared properties.
func (b *Builder) relSetBlock(relVar string, rel schema.RelSchema, node schema.NodeSchema) (string, error) {
	propLines, err := relPropertyLines(relVar, rel)
	if err != nil {
		return "", err
	}
	prov := b.resolver.Resolve(relModule(rel, node))
	lines := []string{
		relVar + "." + ModuleNameProperty + ` = "` + EscapeString(prov.ModuleName) + `"`,
		relVar + "." + ModuleVersionProperty + ` = "` + EscapeString(prov.ModuleVersion) + `"`,
	}
	lines = append(lines, propLines...)
	return "SET\n    " + strings.Join(lines, ",\n    "), nil
}

// buildAttachSubResourceStatement renders the subquery fragment attaching
// the ingested node to its sub-resource scope. The OPTIONAL MATCH plus null
// filter lets records without sub-resource data pass through untouched.
func (b *Builder) buildAttachSubResourceStatement(rel schema.RelSchema, node schema.NodeSchema) (string, error) {
	setBlock, err := b.relSetBlock("r", rel, node)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`WITH i, item
OPTIONAL MATCH (j:%s{%s})
WITH i, item, j WHERE j IS NOT NULL
%s
ON CREATE SET r.firstseen = timestamp()
%s`,
		rel.TargetNodeLabel,
		buildMatchClause(rel.TargetMatcher),
		relMergePattern("r", "j", rel),
		setBlock,
	), nil
}

// buildAttachAdditionalLinkStatement renders the subquery fragment for one
// additional relationship, using numbered variables so fragments never
// collide inside the UNION.
func (b *Builder) buildAttachAdditionalLinkStatement(num int, rel schema.RelSchema, node schema.NodeSchema) (string, error) {
	nodeVar := fmt.Sprintf("n%d", num)
	relVar := fmt.Sprintf("r%d", num)

	setBlock, err := b.relSetBlock(relVar, rel, node)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`WITH i, item
OPTIONAL MATCH (%s:%s)
WHERE
%s
WITH i, item, %s WHERE %s IS NOT NULL
%s
ON CREATE SET %s.firstseen = timestamp()
%s`,
		nodeVar, rel.TargetNodeLabel,
		indentLines(buildRelMatchWhereClause(nodeVar, rel.TargetMatcher), "    "),
		nodeVar, nodeVar,
		relMergePattern(relVar, nodeVar, rel),
		relVar,
		setBlock,
	), nil
}

// buildAttachRelationshipsStatement renders the relationship attachment
// block of an ingestion query: every attachment as its own UNION-joined
// fragment inside one CALL subquery. Subqueries keep the query running when
// only some of the declared neighbors exist in the data, so the present
// relationships still MERGE while the absent ones fall out at the null
// filter. Returns "" when there is nothing to attach.
func (b *Builder) buildAttachRelationshipsStatement(
	node schema.NodeSchema,
	subRel *schema.RelSchema,
	others []schema.RelSchema,
) (string, error) {
	if subRel == nil && len(others) == 0 {
		return "", nil
	}

	var fragments []string
	if subRel != nil {
		frag, err := b.buildAttachSubResourceStatement(*subRel, node)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, frag)
	}
	for num, rel := range others {
		frag, err := b.buildAttachAdditionalLinkStatement(num, rel, node)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, frag)
	}

	body := strings.Join(fragments, "\nUNION\n")
	return "WITH i, item\nCALL {\n" + indentLines(body, "    ") + "\n}", nil
}
