package querybuild

import (
	"fmt"
	"log/slog"

	"github.com/surveyorhq/surveyor/internal/schema"
)

const nodeIndexTemplate = "CREATE INDEX IF NOT EXISTS FOR (n:%s) ON (n.%s);"

// BuildCreateIndexQueries generates the index DDL backing a node schema's
// ingestion query: id and lastupdated on the primary label, id on every
// extra label, every target matcher key of every declared relationship, and
// any property the schema flags with ExtraIndex. Order follows declaration
// order, so the output is stable across runs.
func BuildCreateIndexQueries(node schema.NodeSchema) []string {
	queries := []string{
		fmt.Sprintf(nodeIndexTemplate, node.Label, schema.IDProperty),
		fmt.Sprintf(nodeIndexTemplate, node.Label, LastUpdatedProperty),
	}
	for _, label := range node.ExtraLabels {
		queries = append(queries, fmt.Sprintf(nodeIndexTemplate, label, schema.IDProperty))
	}
	for _, rel := range node.DeclaredRelationships() {
		for _, p := range rel.TargetMatcher {
			queries = append(queries, fmt.Sprintf(nodeIndexTemplate, rel.TargetNodeLabel, p.Name))
		}
	}
	for _, p := range node.Properties {
		if p.Ref.ExtraIndex {
			queries = append(queries, fmt.Sprintf(nodeIndexTemplate, node.Label, p.Name))
		}
	}
	return queries
}

// BuildCreateIndexQueriesForMatchLink generates the index DDL backing a
// matchlink query: every source matcher key on the source label, every
// target matcher key on the target label, and one composite relationship
// index over the staleness and scope properties used by cleanup.
//
// A schema without a source matcher cannot be a matchlink; the function
// warns and returns nothing rather than emitting indexes that no query
// would use.
func BuildCreateIndexQueriesForMatchLink(rel schema.RelSchema) []string {
	if len(rel.SourceMatcher) == 0 {
		slog.Warn("relationship schema has no source matcher; skipping matchlink index generation",
			"rel_label", rel.RelLabel)
		return nil
	}

	var queries []string
	for _, p := range rel.SourceMatcher {
		queries = append(queries, fmt.Sprintf(nodeIndexTemplate, rel.SourceNodeLabel, p.Name))
	}
	for _, p := range rel.TargetMatcher {
		queries = append(queries, fmt.Sprintf(nodeIndexTemplate, rel.TargetNodeLabel, p.Name))
	}

	relIndexTemplate := "CREATE INDEX IF NOT EXISTS FOR ()-[r:%s]->() ON (r.%s, r.%s, r.%s);"
	if rel.Direction == schema.DirectionInward {
		relIndexTemplate = "CREATE INDEX IF NOT EXISTS FOR ()<-[r:%s]-() ON (r.%s, r.%s, r.%s);"
	}
	queries = append(queries, fmt.Sprintf(relIndexTemplate,
		rel.RelLabel, LastUpdatedProperty, SubResourceLabelProperty, SubResourceIDProperty))
	return queries
}
