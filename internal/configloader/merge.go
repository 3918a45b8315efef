package configloader

import (
	"cmp"
	"maps"

	"github.com/yaklabco/mdprose/pkg/config"
)

// merge layers override on top of base and returns a new Config.
// Zero scalars and nil slices in override leave base alone. Check entries
// are merged per key, their options per option name. Extended can only be
// switched on by a later layer.
func merge(base, override *config.Config) *config.Config {
	switch {
	case base == nil:
		return override
	case override == nil:
		return base
	}

	out := *base
	out.LineLength = cmp.Or(override.LineLength, base.LineLength)
	out.WarnLength = cmp.Or(override.WarnLength, base.WarnLength)
	out.DictDir = cmp.Or(override.DictDir, base.DictDir)
	out.Format = cmp.Or(override.Format, base.Format)
	out.CheckFormat = cmp.Or(override.CheckFormat, base.CheckFormat)
	out.Jobs = cmp.Or(override.Jobs, base.Jobs)
	out.Extended = base.Extended || override.Extended

	out.Ignore = replaceIfSet(base.Ignore, override.Ignore)
	out.EnableChecks = replaceIfSet(base.EnableChecks, override.EnableChecks)
	out.DisableChecks = replaceIfSet(base.DisableChecks, override.DisableChecks)

	out.Checks = mergeChecks(base.Checks, override.Checks)
	return &out
}

func replaceIfSet(base, override []string) []string {
	if override != nil {
		return override
	}
	return base
}

func mergeChecks(base, override map[string]config.CheckConfig) map[string]config.CheckConfig {
	if base == nil && override == nil {
		return nil
	}

	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]config.CheckConfig, len(override))
	}
	for key, layer := range override {
		entry := out[key]
		if layer.Enabled != nil {
			entry.Enabled = layer.Enabled
		}
		if layer.Severity != nil {
			entry.Severity = layer.Severity
		}
		if layer.Options != nil {
			options := maps.Clone(entry.Options)
			if options == nil {
				options = make(map[string]any, len(layer.Options))
			}
			maps.Copy(options, layer.Options)
			entry.Options = options
		}
		out[key] = entry
	}
	return out
}

// MergeAll folds configs left to right; later ones win.
func MergeAll(configs ...*config.Config) *config.Config {
	var out *config.Config
	for _, cfg := range configs {
		out = merge(out, cfg)
	}
	return out
}
