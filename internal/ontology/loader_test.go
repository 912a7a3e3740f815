package ontology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMappingDoc = `module: duo
nodes:
  - node_label: DuoUser
    eligible_as_source: true
    fields:
      - ontology_field: email
        node_field: email
        required: true
      - ontology_field: is_active
        node_field: inactive
        derivation: invert_boolean
      - ontology_field: is_admin
        node_field: role
        derivation: equal_boolean
        extra:
          values: ["admin", "superuser"]
rels:
  - comment: Link Device to User through DuoPhone
    query: MATCH (u:User)-[:HAS_ACCOUNT]->(:DuoUser) RETURN u
    iterative: false
`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "duo.yaml", validMappingDoc)

	m, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "duo", m.ModuleName)
	require.Len(t, m.Nodes, 1)
	node := m.Nodes[0]
	assert.Equal(t, "DuoUser", node.NodeLabel)
	assert.True(t, node.EligibleAsSource)
	require.Len(t, node.Fields, 3)
	assert.Equal(t, DerivationNone, node.Fields[0].Derivation)
	assert.True(t, node.Fields[0].Required)
	assert.Equal(t, DerivationInvertBool, node.Fields[1].Derivation)
	assert.Equal(t, DerivationEqualBool, node.Fields[2].Derivation)
	values, ok := node.Fields[2].ExtraValues()
	require.True(t, ok)
	assert.Equal(t, []any{"admin", "superuser"}, values)
	require.Len(t, m.Rels, 1)
	assert.False(t, m.Rels[0].Iterative)
}

func TestLoadFile_MissingModuleFailsValidation(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "bad.yaml", "nodes:\n  - node_label: X\n    fields: []\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mapping document")
}

func TestLoadFile_UnknownDerivationFails(t *testing.T) {
	dir := t.TempDir()
	doc := `module: duo
nodes:
  - node_label: DuoUser
    fields:
      - ontology_field: x
        derivation: invented_strategy
`
	path := writeDoc(t, dir, "bad.yaml", doc)

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.NotEmpty(t, loadErr.Path)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b_okta.yaml", "module: okta\n")
	writeDoc(t, dir, "a_duo.yaml", validMappingDoc)
	writeDoc(t, dir, "ignored.txt", "not a mapping")

	result, errs := LoadDir(dir)
	require.Empty(t, errs)
	require.NotNil(t, result)
	require.Len(t, result.Mappings, 2)

	// Sorted filename order.
	assert.Equal(t, "duo", result.Mappings[0].ModuleName)
	assert.Equal(t, "okta", result.Mappings[1].ModuleName)
	assert.Len(t, result.Files, 2)
}

func TestLoadDir_CollectsPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "good.yaml", validMappingDoc)
	writeDoc(t, dir, "bad.yaml", "nodes: []\n") // missing module

	result, errs := LoadDir(dir)
	require.NotNil(t, result)
	assert.Len(t, result.Mappings, 1)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "bad.yaml")
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	result, errs := LoadDir(filepath.Join(t.TempDir(), "missing"))
	assert.Nil(t, result)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "not found")
}

func TestLoadDir_EmptyDirectory(t *testing.T) {
	result, errs := LoadDir(t.TempDir())
	assert.Nil(t, result)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no mapping documents")
}

func TestValidateDocument_AcceptsValid(t *testing.T) {
	require.NoError(t, ValidateDocument([]byte(validMappingDoc)))
}

func TestValidateDocument_RejectsWrongShape(t *testing.T) {
	doc := `module: duo
nodes:
  - node_label: 42
    fields: []
`
	err := ValidateDocument([]byte(doc))
	require.Error(t, err)
}
