package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// TestRoot_Table runs the default table report.
func TestRoot_Table(t *testing.T) {
	out, _, err := execute(t, "--log-level=error", "200", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Query keys")
	assert.Contains(t, out, "200 (100.00%)")
}

// TestRoot_YAML decodes the machine-readable report.
func TestRoot_YAML(t *testing.T) {
	out, _, err := execute(t, "--format=yaml", "--sorted", "--repeat=2", "--log-level=warn", "50", "60")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, 50, report["query"])
	assert.Equal(t, true, report["sorted"])
	assert.Len(t, report["runs"], 2)
}

// TestRoot_ConfigFile applies a YAML file under explicit flags.
func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\nrepeat: 3\n"), 0o600))

	out, _, err := execute(t, "--config", path, "--repeat=1", "--log-level=error", "10", "10")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Len(t, report["runs"], 1, "explicit --repeat overrides the file")
}

// TestRoot_Errors covers argument and configuration failures.
func TestRoot_Errors(t *testing.T) {
	cases := [][]string{
		{"10"},
		{"ten", "10"},
		{"10", "-1"},
		{"20", "10"},
		{"--log-level=loud", "1", "1"},
		{"--tie-break=last", "1", "1"},
		{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "1", "1"},
	}
	for _, args := range cases {
		_, _, err := execute(t, args...)
		assert.Error(t, err, "args %v", args)
	}
}

// TestRoot_Logging writes structured logs to stderr.
func TestRoot_Logging(t *testing.T) {
	_, errOut, err := execute(t, "--log-level=debug", "5", "5")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Generating workload")
	assert.Contains(t, errOut, "Run finished")
}

// TestRoot_Quiet prints nothing on success and still fails on bad input.
func TestRoot_Quiet(t *testing.T) {
	out, _, err := execute(t, "--quiet", "--log-level=error", "100", "100")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, _, err = execute(t, "--quiet", "--log-level=error", "100", "10")
	assert.Error(t, err)
}

// TestRoot_NoVerify reports timing without match counts.
func TestRoot_NoVerify(t *testing.T) {
	out, _, err := execute(t, "--verify=false", "--format=yaml", "--log-level=error", "30", "40")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, false, report["verified"])
	assert.Equal(t, 0, report["matched"])
}
