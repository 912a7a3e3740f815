package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args and returns stdout,
// stderr, and the execution error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeMappingDir writes the given documents into a fresh temp directory.
func writeMappingDir(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

const validDuoDoc = `module: duo
nodes:
  - node_label: DuoUser
    eligible_as_source: true
    fields:
      - ontology_field: display_name
        node_field: name
      - ontology_field: disabled
        node_field: status
        derivation: invert_boolean
rels:
  - comment: propagate user identity
    query: MATCH (u:DuoUser) RETURN u
    iterative: true
`

func TestRootCommand_InvalidFormat(t *testing.T) {
	dir := writeMappingDir(t, map[string]string{"duo.yaml": validDuoDoc})

	_, _, err := execute(t, "--format", "xml", "validate", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "show")
}
