package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintCmd_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
rules:
  - name: net-has-driver
    kind: net
    expr: "drivers >= 1"
    severity: warning
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	root := NewRootCmd()
	root.SetArgs([]string{"lint", path, "--no-color"})
	assert.NoError(t, root.Execute())
}

func TestLintCmd_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - name: broken\n    kind: net\n    expr: \"drivers >=\"\n"), 0644))

	root := NewRootCmd()
	root.SetArgs([]string{"lint", path, "--no-color"})
	assert.Error(t, root.Execute())
}

func TestCheckCmd_RequiresRuleFiles(t *testing.T) {
	design := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, os.WriteFile(design, []byte("name: empty\n"), 0644))

	root := NewRootCmd()
	root.SetArgs([]string{"check", design, "--no-color"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rule files")
}
