package querybuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyorhq/surveyor/internal/schema"
)

func TestBuildCreateIndexQueries(t *testing.T) {
	sub := schema.RelSchema{
		RelLabel:        "RESOURCE",
		Direction:       schema.DirectionInward,
		TargetNodeLabel: "CloudAccount",
		TargetMatcher: schema.PropertyMap{
			schema.P("id", schema.FromParameter("AccountId")),
			schema.P("region", schema.FromParameter("Region")),
		},
		Properties: schema.NewRelProperties(),
	}
	node := schema.NodeSchema{
		Label:  "Widget",
		Module: "demo",
		Properties: schema.PropertyMap{
			schema.P("id", schema.FromRecord("Id")),
			schema.P("arn", schema.FromRecord("Arn").WithExtraIndex()),
			schema.P("name", schema.FromRecord("Name")),
		},
		ExtraLabels:             []string{"Asset"},
		SubResourceRelationship: &sub,
	}

	queries := BuildCreateIndexQueries(node)
	want := []string{
		"CREATE INDEX IF NOT EXISTS FOR (n:Widget) ON (n.id);",
		"CREATE INDEX IF NOT EXISTS FOR (n:Widget) ON (n.lastupdated);",
		"CREATE INDEX IF NOT EXISTS FOR (n:Asset) ON (n.id);",
		"CREATE INDEX IF NOT EXISTS FOR (n:CloudAccount) ON (n.id);",
		"CREATE INDEX IF NOT EXISTS FOR (n:CloudAccount) ON (n.region);",
		"CREATE INDEX IF NOT EXISTS FOR (n:Widget) ON (n.arn);",
	}
	assert.Equal(t, want, queries)
}

func TestBuildCreateIndexQueries_AllDeclaredRelationships(t *testing.T) {
	queries := BuildCreateIndexQueries(instanceSchema())

	// Baseline pair plus one per matcher key of each declared relationship.
	require.Len(t, queries, 5)
	assert.Contains(t, queries, "CREATE INDEX IF NOT EXISTS FOR (n:CloudAccount) ON (n.id);")
	assert.Contains(t, queries, "CREATE INDEX IF NOT EXISTS FOR (n:SecurityGroup) ON (n.id);")
	assert.Contains(t, queries, "CREATE INDEX IF NOT EXISTS FOR (n:NetworkInterface) ON (n.id);")
}

func TestBuildCreateIndexQueriesForMatchLink(t *testing.T) {
	queries := BuildCreateIndexQueriesForMatchLink(matchLinkSchema())

	want := []string{
		"CREATE INDEX IF NOT EXISTS FOR (n:DuoUser) ON (n.id);",
		"CREATE INDEX IF NOT EXISTS FOR (n:DuoGroup) ON (n.id);",
		"CREATE INDEX IF NOT EXISTS FOR ()-[r:MEMBER_OF]->() ON (r.lastupdated, r._sub_resource_label, r._sub_resource_id);",
	}
	assert.Equal(t, want, queries)
}

func TestBuildCreateIndexQueriesForMatchLink_Inward(t *testing.T) {
	rel := matchLinkSchema()
	rel.Direction = schema.DirectionInward

	queries := BuildCreateIndexQueriesForMatchLink(rel)
	require.NotEmpty(t, queries)
	assert.Equal(t,
		"CREATE INDEX IF NOT EXISTS FOR ()<-[r:MEMBER_OF]-() ON (r.lastupdated, r._sub_resource_label, r._sub_resource_id);",
		queries[len(queries)-1])
}

func TestBuildCreateIndexQueriesForMatchLink_NoSourceMatcher(t *testing.T) {
	rel := matchLinkSchema()
	rel.SourceMatcher = nil

	assert.Empty(t, BuildCreateIndexQueriesForMatchLink(rel))
}
