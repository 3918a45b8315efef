package lint

import (
	"maps"
	"slices"

	"github.com/yaklabco/mdprose/pkg/config"
)

// ResolvedCheck pairs a Definition with its resolved configuration.
type ResolvedCheck struct {
	// Definition describes the check.
	Definition Definition

	// Enabled indicates whether the check should be run.
	Enabled bool

	// Severity is the resolved severity for findings from this check.
	Severity config.Severity

	// Options are the check-specific options (may be nil).
	Options map[string]any
}

// ResolveChecks determines which checks to run based on registry and config.
// Returns only enabled checks, in declaration order.
func ResolveChecks(registry *Registry, cfg *config.Config) []ResolvedCheck {
	var resolved []ResolvedCheck

	for _, def := range registry.Definitions() {
		rc := resolveCheck(def, cfg)
		if rc.Enabled {
			resolved = append(resolved, rc)
		}
	}

	return resolved
}

// resolveCheck resolves the configuration for a single check.
// File configuration is applied first, keyed by name and then by ID, and the
// CLI enable/disable lists override it.
func resolveCheck(def Definition, cfg *config.Config) ResolvedCheck {
	severity := def.DefaultSeverity
	if severity == "" {
		severity = config.SeverityError
	}

	rc := ResolvedCheck{
		Definition: def,
		Enabled:    true,
		Severity:   severity,
	}

	if cfg == nil {
		return rc
	}

	for _, key := range []string{def.Name, def.ID} {
		checkCfg, ok := cfg.Checks[key]
		if !ok {
			continue
		}
		if checkCfg.Enabled != nil {
			rc.Enabled = *checkCfg.Enabled
		}
		if checkCfg.Severity != nil && config.Severity(*checkCfg.Severity).IsValid() {
			rc.Severity = config.Severity(*checkCfg.Severity)
		}
		if checkCfg.Options != nil {
			if rc.Options == nil {
				rc.Options = make(map[string]any, len(checkCfg.Options))
			}
			maps.Copy(rc.Options, checkCfg.Options)
		}
	}

	matches := func(key string) bool {
		return key == def.ID || key == def.Name
	}
	if slices.ContainsFunc(cfg.EnableChecks, matches) {
		rc.Enabled = true
	}
	if slices.ContainsFunc(cfg.DisableChecks, matches) {
		rc.Enabled = false
	}

	return rc
}
