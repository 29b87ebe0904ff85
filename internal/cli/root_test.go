package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["generate"])
	assert.True(t, names["inspect"])
	assert.True(t, names["version"])
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bulkcopy-generator")
}

func TestGenerateCmd_DryRun(t *testing.T) {
	out, _, err := execute(t, "generate", "--dry-run", "bulkcopy-generator/examples/store")
	require.NoError(t, err)

	assert.Contains(t, out, "would write")
	assert.Contains(t, out, "product_copyfrom.go")
	assert.Contains(t, out, "customer_copyfrom.go")
	assert.Contains(t, out, "signup_copyfrom.go")
}

func TestGenerateCmd_NoCandidates(t *testing.T) {
	out, _, err := execute(t, "generate", "bulkcopy-generator/internal/gen")
	require.NoError(t, err)

	assert.Contains(t, out, "no marked types found")
}

func TestInspectCmd_Summary(t *testing.T) {
	out, _, err := execute(t, "inspect", "bulkcopy-generator/examples/store")
	require.NoError(t, err)

	assert.Contains(t, out, "Product -> products (7 columns)")
	assert.Contains(t, out, "Customer -> customers (6 columns)")
	assert.Contains(t, out, "*string null")
}

func TestGenerateCmd_MissingConfig(t *testing.T) {
	_, _, err := execute(t, "generate", "--config", "does-not-exist.yaml", "bulkcopy-generator/examples/store")
	require.Error(t, err)
}
