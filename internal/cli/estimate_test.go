package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func runEstimate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmdEstimate()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateJSONKeys(t *testing.T) {
	out, err := runEstimate(t, "--style", "zama", "--fhe", "--multi-chain", "-o", "json")
	require.NoError(t, err)

	var plan map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &plan))

	keys := make([]string, 0, len(plan))
	for k := range plan {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{
		"hasBridge", "hasGovernance", "maturity", "multiChain", "style", "styleDescription",
		"styleName", "suggestedOrder", "teamSize", "totalEstimatedDays", "tracks", "usesFhe", "usesZk",
	}, keys)

	tracks, ok := plan["tracks"].([]interface{})
	require.True(t, ok)
	require.Len(t, tracks, 5)
	first, ok := tracks[0].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, first, 4)
	assert.Equal(t, "protocol", first["key"])
	assert.Contains(t, first, "name")
	assert.Contains(t, first, "description")
	assert.Contains(t, first, "estimatedDays")
}

func TestEstimateJSONAlias(t *testing.T) {
	viaFlag, err := runEstimate(t, "--style", "soundness", "--governance", "--json")
	require.NoError(t, err)
	viaOutput, err := runEstimate(t, "--style", "soundness", "--governance", "-o", "json")
	require.NoError(t, err)

	assert.JSONEq(t, viaOutput, viaFlag)
}

func TestEstimateJSONConflictsWithOutput(t *testing.T) {
	_, err := runEstimate(t, "--json", "-o", "yaml")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
}

func TestEstimateYAML(t *testing.T) {
	out, err := runEstimate(t, "--style", "soundness", "-o", "yaml")
	require.NoError(t, err)

	plan := estimation.Plan{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &plan))
	assert.Equal(t, estimation.StyleSoundness, plan.Style)
	assert.Equal(t, 51, plan.TotalEstimatedDays)
	assert.Equal(t, estimation.TrackKeys(), plan.SuggestedOrder)
}

func TestEstimateNormalizesInput(t *testing.T) {
	out, err := runEstimate(t, "--style", " Zama ", "--maturity", "MAINNET", "--json")
	require.NoError(t, err)

	plan := estimation.Plan{}
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, estimation.StyleZama, plan.Style)
	assert.Equal(t, estimation.MaturityMainnet, plan.Maturity)
}

func TestEstimateText(t *testing.T) {
	out, err := runEstimate(t, "--style", "soundness")
	require.NoError(t, err)

	assert.Contains(t, out, "Web3 Audit Scope Plan")
	assert.Contains(t, out, "Style: ")
	assert.Contains(t, out, "(soundness)")
	assert.Contains(t, out, "Total estimated effort: 51 person-days")
	assert.Contains(t, out, "Protocol & Soundness Review (protocol): 17 days")
	assert.Contains(t, out, "1. Protocol & Soundness Review (protocol)")
	assert.Contains(t, out, "5. Governance & Upgradeability Review (governance)")
	assert.NotContains(t, out, "Style Emphasis")
}

func TestEstimateExplain(t *testing.T) {
	out, err := runEstimate(t, "--style", "aztec", "--zk", "--team-size", "4", "--explain")
	require.NoError(t, err)

	for _, name := range []string{"Style Emphasis", "Feature Flags", "Team Size", "Maturity"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "rounded to")
}

func TestEstimateInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown style", args: []string{"--style", "starknet"}},
		{name: "unknown maturity", args: []string{"--maturity", "beta"}},
		{name: "zero team size", args: []string{"--team-size", "0"}},
		{name: "negative team size", args: []string{"--team-size", "-3"}},
		{name: "unknown output", args: []string{"-o", "xml"}},
		{name: "positional argument", args: []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runEstimate(t, tt.args...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Equal(t, ExitInvalidInput, ExitCode(err))
		})
	}
}

func TestEstimateInvalidConfigurationIsTyped(t *testing.T) {
	_, err := runEstimate(t, "--team-size", "0")
	require.Error(t, err)
	assert.True(t, estimation.IsInvalidConfiguration(err))
	assert.Contains(t, err.Error(), "teamSize")
}

func TestEstimateTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baseDays:\n  governance: 40\n"), 0o600))

	out, err := runEstimate(t, "--tuning", path, "--json")
	require.NoError(t, err)

	plan := estimation.Plan{}
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	governance, ok := plan.Track(estimation.TrackGovernance)
	require.True(t, ok)
	assert.Equal(t, 40, governance.EstimatedDays)
	assert.Equal(t, estimation.TrackGovernance, plan.SuggestedOrder[0])
}

func TestEstimateBadTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maturity:\n  idea: 2\n"), 0o600))

	_, err := runEstimate(t, "--tuning", path)
	require.Error(t, err)
	assert.Equal(t, ExitError, ExitCode(err))

	_, err = runEstimate(t, "--tuning", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitError, ExitCode(err))
}
