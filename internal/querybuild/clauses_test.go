package querybuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyorhq/surveyor/internal/schema"
)

func TestNodePropertyLines_SkipsID(t *testing.T) {
	node := schema.NodeSchema{
		Label: "Widget",
		Properties: schema.PropertyMap{
			schema.P("id", schema.FromRecord("Id")),
			schema.P("name", schema.FromRecord("Name")),
			schema.P("lastupdated", schema.FromParameter("lastupdated")),
		},
	}

	lines := nodePropertyLines(node)
	assert.Equal(t, []string{
		"i.name = item.Name",
		"i.lastupdated = $lastupdated",
	}, lines)
}

func TestNodePropertyLines_ExtraLabels(t *testing.T) {
	node := schema.NodeSchema{
		Label: "Widget",
		Properties: schema.PropertyMap{
			schema.P("id", schema.FromRecord("Id")),
		},
		ExtraLabels: []string{"Asset", "Inventory"},
	}

	lines := nodePropertyLines(node)
	assert.Equal(t, []string{"i:Asset:Inventory"}, lines)
}

func TestRelPropertyLines(t *testing.T) {
	rel := schema.RelSchema{
		RelLabel:        "OWNED_BY",
		TargetNodeLabel: "Account",
		Properties: schema.NewRelProperties(
			schema.P("lastupdated", schema.FromParameter("lastupdated")),
			schema.P("level", schema.FromRecord("Level")),
		),
	}

	lines, err := relPropertyLines("r0", rel)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"r0.lastupdated = $lastupdated",
		"r0.level = item.Level",
	}, lines)
}

func TestRelPropertyLines_EmptyConstructed(t *testing.T) {
	rel := schema.RelSchema{
		RelLabel:        "OWNED_BY",
		TargetNodeLabel: "Account",
		Properties:      schema.NewRelProperties(),
	}

	lines, err := relPropertyLines("r", rel)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRelPropertyLines_Unconstructed(t *testing.T) {
	rel := schema.RelSchema{
		RelLabel:        "OWNED_BY",
		TargetNodeLabel: "Account",
	}

	_, err := relPropertyLines("r", rel)
	require.Error(t, err)
	assert.True(t, IsBuildError(err, ErrCodeUnconstructedRelProperties))
	assert.Contains(t, err.Error(), "OWNED_BY")
	assert.Contains(t, err.Error(), "Account")
	assert.Contains(t, err.Error(), "NewRelProperties")
}

func TestBuildMatchClause(t *testing.T) {
	matcher := schema.PropertyMap{
		schema.P("id", schema.FromRecord("AccountId")),
		schema.P("region", schema.FromParameter("Region")),
	}

	assert.Equal(t, "id: item.AccountId, region: $Region", buildMatchClause(matcher))
}

func TestBuildRelMatchWhereClause(t *testing.T) {
	tests := []struct {
		name    string
		matcher schema.PropertyMap
		want    string
	}{
		{
			name:    "exact",
			matcher: schema.PropertyMap{schema.P("id", schema.FromRecord("AccountId"))},
			want:    "n0.id = item.AccountId",
		},
		{
			name:    "ignore case",
			matcher: schema.PropertyMap{schema.P("email", schema.FromRecord("Email").WithIgnoreCase())},
			want:    "toLower(n0.email) = toLower(item.Email)",
		},
		{
			name:    "fuzzy ignore case",
			matcher: schema.PropertyMap{schema.P("name", schema.FromRecord("Name").WithFuzzyIgnoreCase())},
			want:    "toLower(n0.name) CONTAINS toLower(item.Name)",
		},
		{
			name:    "one to many",
			matcher: schema.PropertyMap{schema.P("id", schema.FromRecord("MemberIds").WithOneToMany())},
			want:    "n0.id IN item.MemberIds",
		},
		{
			name: "multiple keys joined with AND",
			matcher: schema.PropertyMap{
				schema.P("id", schema.FromRecord("AccountId")),
				schema.P("email", schema.FromRecord("Email").WithIgnoreCase()),
			},
			want: "n0.id = item.AccountId AND\ntoLower(n0.email) = toLower(item.Email)",
		},
		{
			name: "ignore case wins over fuzzy",
			matcher: schema.PropertyMap{
				schema.P("email", schema.FromRecord("Email").WithIgnoreCase().WithFuzzyIgnoreCase()),
			},
			want: "toLower(n0.email) = toLower(item.Email)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildRelMatchWhereClause("n0", tt.matcher))
		})
	}
}
