package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const appName = "mdprose"

// ConfigPaths holds the configuration files found for a run. Empty fields
// mean no file.
type ConfigPaths struct {
	User     string // $XDG_CONFIG_HOME/mdprose/config.yaml and friends
	Project  string // nearest .mdprose.yml at or above the working directory
	Explicit string // --config
}

//nolint:gochecknoglobals // read-only lookup tables
var (
	projectConfigNames = []string{".mdprose.yml", ".mdprose.yaml", ".mdprose.toml"}
	userConfigNames    = []string{"config.yaml", "config.yml", "config.toml"}
	repoMarkers        = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths locates the user and project configuration files.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	paths := &ConfigPaths{Project: project}
	if dir := UserConfigDir(); dir != "" {
		paths.User = firstFile(dir, userConfigNames)
	}
	return paths, nil
}

// UserConfigDir returns the mdprose directory under $XDG_CONFIG_HOME,
// falling back to ~/.config. It returns "" when neither is known.
func UserConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName)
}

// FindProjectConfig walks up from startDir looking for .mdprose.yml,
// .mdprose.yaml or .mdprose.toml, in that order within a directory. The
// search ends after a repository root, the home directory, or the
// filesystem root; finding nothing returns "".
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if found := firstFile(dir, projectConfigNames); found != "" {
			return found, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == home || isRepoRoot(dir) {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func isRepoRoot(dir string) bool {
	for _, marker := range repoMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
