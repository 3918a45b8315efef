package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdprose/pkg/config"
)

// newProject creates a directory that stops the upward config search.
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("create .git: %v", err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(newProject(t)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.LineLength != config.DefaultLineLength {
		t.Errorf("expected line length %d, got %d", config.DefaultLineLength, result.Config.LineLength)
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, result.Config.Format)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".mdprose.yml"), `
line_length: 120
warn_length: 100
extended: true
checks:
  bad-words:
    enabled: false
  RP007:
    options:
      filler: ["^<!--"]
`)

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.LineLength != 120 || cfg.WarnLength != 100 || !cfg.Extended {
		t.Errorf("unexpected scalars: line=%d warn=%d extended=%v", cfg.LineLength, cfg.WarnLength, cfg.Extended)
	}
	if enabled := cfg.Checks["bad-words"].Enabled; enabled == nil || *enabled {
		t.Error("expected bad-words to be disabled")
	}
	if _, ok := cfg.Checks["RP007"].Options["filler"]; !ok {
		t.Error("expected RP007 filler option to be loaded")
	}
	if len(result.LoadedFrom) != 1 || result.Paths.Project == "" {
		t.Errorf("expected project config to be loaded, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".mdprose.toml"), "line_length = 80\n")
	sub := filepath.Join(dir, "docs", "guides")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), isolated(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LineLength != 80 {
		t.Errorf("expected line length 80 from TOML, got %d", result.Config.LineLength)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, ".mdprose.yml"), "line_length: 80\n")
	repo := filepath.Join(outer, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	path, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected search to stop at VCS root, found %s", path)
	}
}

func TestFindProjectConfig_Preference(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".mdprose.toml"), "")
	writeFile(t, filepath.Join(dir, ".mdprose.yml"), "")

	path, err := FindProjectConfig(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != ".mdprose.yml" {
		t.Errorf("expected .mdprose.yml to win, got %s", path)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".mdprose.yml"), "line_length: 120\nwarn_length: 90\n")
	explicit := filepath.Join(dir, "ci", "strict.yaml")
	writeFile(t, explicit, "line_length: 100\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LineLength != 100 {
		t.Errorf("expected explicit line length 100, got %d", result.Config.LineLength)
	}
	if result.Config.WarnLength != 90 {
		t.Errorf("expected project warn length 90 to survive, got %d", result.Config.WarnLength)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("unexpected load order %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverridesAll(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".mdprose.yml"), "line_length: 120\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		LineLength:    60,
		Format:        config.FormatJSON,
		DisableChecks: []string{"bad-phrases"},
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LineLength != 60 {
		t.Errorf("expected CLI line length 60, got %d", result.Config.LineLength)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected CLI format json, got %q", result.Config.Format)
	}
	if len(result.Config.DisableChecks) != 1 {
		t.Errorf("expected disable list to carry through, got %v", result.Config.DisableChecks)
	}
}

func TestLoad_Env(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".mdprose.yml"), "line_length: 120\n")
	t.Setenv("MDPROSE_LINE_LENGTH", "90")
	t.Setenv("MDPROSE_EXTENDED", "true")
	t.Setenv("MDPROSE_IGNORE", "vendor/**, CHANGELOG.md")

	opts := isolated(dir)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{LineLength: 70}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.LineLength != 70 {
		t.Errorf("expected CLI to beat environment, got %d", result.Config.LineLength)
	}
	if !result.Config.Extended {
		t.Error("expected MDPROSE_EXTENDED to enable the extended list")
	}
	if strings.Join(result.Config.Ignore, "|") != "vendor/**|CHANGELOG.md" {
		t.Errorf("unexpected ignore patterns %v", result.Config.Ignore)
	}
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "bad integer", env: "MDPROSE_LINE_LENGTH", value: "long"},
		{name: "bad boolean", env: "MDPROSE_EXTENDED", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			err := LoadFromEnv(config.NewConfig())
			if err == nil || !strings.Contains(err.Error(), tt.env) {
				t.Errorf("expected error naming %s, got %v", tt.env, err)
			}
		})
	}
}

func TestLoad_InvalidConfigNamesFile(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	path := filepath.Join(dir, ".mdprose.yml")
	writeFile(t, path, "checks:\n  bad-words:\n    severity: fatal\n")

	_, err := Load(context.Background(), isolated(dir))
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.FilePath != path || validationErr.Field != "checks.bad-words.severity" {
		t.Errorf("unexpected error location %q %q", validationErr.FilePath, validationErr.Field)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".mdprose.yml"), "line_length: [\n")

	if _, err := Load(context.Background(), isolated(dir)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_Warnings(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".mdprose.toml"), `
line_length = 100
warn_length = 150
colour = "red"

[checks.no-such-check]
enabled = false
`)

	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	joined := strings.Join(result.Warnings, "\n")
	for _, want := range []string{`unknown key "colour"`, `unknown check "no-such-check"`, "warn_length 150"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected warning containing %q in:\n%s", want, joined)
		}
	}
}

func TestLoad_DictDirRelativeToConfig(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	if err := os.Mkdir(filepath.Join(dir, "dicts"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, ".mdprose.yml"), "dict_dir: dicts\n")
	sub := filepath.Join(dir, "docs")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), isolated(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.DictDir != filepath.Join(dir, "dicts") {
		t.Errorf("expected dict dir resolved against config file, got %s", result.Config.DictDir)
	}
}
