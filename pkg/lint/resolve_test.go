package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func resolvedIDs(rs []lint.ResolvedCheck) []string {
	ids := make([]string, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.Definition.ID)
	}
	return ids
}

func newTestRegistry(t *testing.T) *lint.Registry {
	t.Helper()

	reg := lint.NewRegistry()
	require.NoError(t, reg.Register(mockDefinition("RP001", "first", "")))
	require.NoError(t, reg.Register(mockDefinition("RP002", "second", "")))
	require.NoError(t, reg.Register(mockDefinition("RP003", "third", "")))
	return reg
}

func TestResolveChecks_Defaults(t *testing.T) {
	t.Parallel()

	resolved := lint.ResolveChecks(newTestRegistry(t), nil)
	assert.Equal(t, []string{"RP001", "RP002", "RP003"}, resolvedIDs(resolved))
	for _, rc := range resolved {
		assert.Equal(t, config.SeverityError, rc.Severity)
	}
}

func TestResolveChecks_ConfigByNameAndID(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Checks["second"] = config.CheckConfig{Enabled: boolPtr(false)}
	cfg.Checks["RP003"] = config.CheckConfig{
		Severity: strPtr("warning"),
		Options:  map[string]any{"limit": 80},
	}

	resolved := lint.ResolveChecks(newTestRegistry(t), cfg)
	require.Equal(t, []string{"RP001", "RP003"}, resolvedIDs(resolved))
	assert.Equal(t, config.SeverityWarning, resolved[1].Severity)
	assert.Equal(t, 80, resolved[1].Options["limit"])
}

func TestResolveChecks_IDOverridesName(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Checks["first"] = config.CheckConfig{Enabled: boolPtr(false), Severity: strPtr("info")}
	cfg.Checks["RP001"] = config.CheckConfig{Enabled: boolPtr(true)}

	resolved := lint.ResolveChecks(newTestRegistry(t), cfg)
	require.Contains(t, resolvedIDs(resolved), "RP001")
	assert.Equal(t, config.SeverityInfo, resolved[0].Severity)
}

func TestResolveChecks_InvalidSeverityIgnored(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Checks["RP001"] = config.CheckConfig{Severity: strPtr("fatal")}

	resolved := lint.ResolveChecks(newTestRegistry(t), cfg)
	assert.Equal(t, config.SeverityError, resolved[0].Severity)
}

func TestResolveChecks_CLIOverridesConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Checks["RP001"] = config.CheckConfig{Enabled: boolPtr(false)}
	cfg.EnableChecks = []string{"first"}
	cfg.DisableChecks = []string{"RP002", "third"}

	resolved := lint.ResolveChecks(newTestRegistry(t), cfg)
	assert.Equal(t, []string{"RP001"}, resolvedIDs(resolved))
}
