package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %T: %v", err, err)
	assert.Equal(t, code, exitErr.Code)
	return exitErr
}

func TestHelp(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "selfcheck")
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := execute(t, "kinds", "--this-is-not-a-valid-flag")
	exitErr := requireExitCode(t, err, 2)
	assert.Contains(t, exitErr.Message, "unknown flag: --this-is-not-a-valid-flag")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "kinds")
	exitErr := requireExitCode(t, err, 2)
	assert.Contains(t, exitErr.Message, "log.level")
}

func TestKinds(t *testing.T) {
	out, _, err := execute(t, "kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Element", lines[0])
	assert.Contains(t, lines, "PartUsage")

	out, _, err = execute(t, "kinds", "--category", "Relationship")
	require.NoError(t, err)
	assert.Contains(t, out, "FeatureTyping\n")
	assert.NotContains(t, out, "PartUsage\n")

	_, _, err = execute(t, "kinds", "--category", "bogus")
	requireExitCode(t, err, 2)
}

func TestKind(t *testing.T) {
	out, _, err := execute(t, "kind", "PartDefinition")
	require.NoError(t, err)
	assert.Contains(t, out, "Kind: PartDefinition\n")
	assert.Contains(t, out, "Direct supertypes: ItemDefinition\n")
	assert.Contains(t, out, "Usage: PartUsage\n")
	assert.Contains(t, out, "definition")

	out, _, err = execute(t, "kind", "FeatureTyping")
	require.NoError(t, err)
	assert.Contains(t, out, "Source: Feature\n")
	assert.Contains(t, out, "Target: Type\n")

	_, _, err = execute(t, "kind", "Widget")
	exitErr := requireExitCode(t, err, 2)
	assert.Contains(t, exitErr.Message, `"Widget"`)
}

func TestProps(t *testing.T) {
	out, _, err := execute(t, "props", "Comment")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "declaredShortName")

	out, _, err = execute(t, "props", "RequirementConstraintMembership")
	require.NoError(t, err)
	assert.Contains(t, out, "RequirementConstraintKind(assumption|requirement)")
}

func TestPropsWithManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.hcl"), []byte(`
kind "PartDefinition" {
  property "supplier" {
    type = string
  }
}
`), 0o600))
	cfg := filepath.Join(dir, "sysmlgraph.hcl")
	require.NoError(t, os.WriteFile(cfg, []byte(`
schema {
  manifests = ["extra.hcl"]
}
`), 0o600))

	out, _, err := execute(t, "--config", cfg, "props", "PartDefinition")
	require.NoError(t, err)
	assert.Contains(t, out, "supplier")
}

func TestSelfCheck(t *testing.T) {
	out, _, err := execute(t, "selfcheck")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Diagnostics: 0\n")
	assert.Contains(t, out, "Fingerprint: ")
	assert.Contains(t, out, "Satisfaction:\n")

	out, _, err = execute(t, "demo", "--defects", "--metrics")
	exitErr := requireExitCode(t, err, 1)
	assert.Equal(t, "model has validation errors", exitErr.Message)
	assert.Contains(t, out, "Diagnostics: 4\n")
	assert.Contains(t, out, "sysmlgraph_validation_passes_total 1\n")
}

func TestDemoMatch(t *testing.T) {
	out, _, err := execute(t, "demo", "--match", "VehicleModel::Requirements::*::*")
	require.NoError(t, err)
	assert.Equal(t,
		"VehicleModel::Requirements::VehicleSpec::massReq\nVehicleModel::Requirements::VehicleSpec::brakingReq\n",
		out)

	_, _, err = execute(t, "demo", "--match", "[")
	requireExitCode(t, err, 2)
}

func TestLogsGoToErrorStream(t *testing.T) {
	out, logs, err := execute(t, "--log-level", "debug", "--log-format", "json", "selfcheck")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)
	assert.Contains(t, logs, `"msg":"Self-check passed."`)
}
