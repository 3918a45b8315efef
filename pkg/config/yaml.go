package config

import (
	"bytes"
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToTOML serializes the configuration to TOML format.
func (c *Config) ToTOML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Checks == nil {
		cfg.Checks = make(map[string]CheckConfig)
	}

	return cfg, nil
}

// FromTOML parses a configuration from TOML bytes.
// Keys not known to Config are returned so callers can warn about them.
func FromTOML(data []byte) (*Config, []string, error) {
	cfg := &Config{}
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("parse toml: %w", err)
	}

	if cfg.Checks == nil {
		cfg.Checks = make(map[string]CheckConfig)
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		// Check options are free-form.
		if len(key) > 2 && key[0] == "checks" && key[2] == "options" {
			continue
		}
		unknown = append(unknown, key.String())
	}

	return cfg, unknown, nil
}

// FromFile parses configuration bytes, choosing the codec by file extension.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func FromFile(path string, data []byte) (*Config, []string, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FromTOML(data)
	}
	cfg, err := FromYAML(data)
	return cfg, nil, err
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		LineLength:  c.LineLength,
		WarnLength:  c.WarnLength,
		Extended:    c.Extended,
		DictDir:     c.DictDir,
		Format:      c.Format,
		CheckFormat: c.CheckFormat,
		Jobs:        c.Jobs,
	}

	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}

	if c.Checks != nil {
		clone.Checks = make(map[string]CheckConfig, len(c.Checks))
		for k, v := range c.Checks {
			clone.Checks[k] = v.clone()
		}
	}

	if c.EnableChecks != nil {
		clone.EnableChecks = make([]string, len(c.EnableChecks))
		copy(clone.EnableChecks, c.EnableChecks)
	}

	if c.DisableChecks != nil {
		clone.DisableChecks = make([]string, len(c.DisableChecks))
		copy(clone.DisableChecks, c.DisableChecks)
	}

	return clone
}

// clone creates a deep copy of a CheckConfig.
func (cc CheckConfig) clone() CheckConfig {
	clone := CheckConfig{}

	if cc.Enabled != nil {
		enabled := *cc.Enabled
		clone.Enabled = &enabled
	}

	if cc.Severity != nil {
		severity := *cc.Severity
		clone.Severity = &severity
	}

	if cc.Options != nil {
		clone.Options = make(map[string]any, len(cc.Options))
		maps.Copy(clone.Options, cc.Options) // Note: nested maps/slices in Options are not deep copied
	}

	return clone
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
