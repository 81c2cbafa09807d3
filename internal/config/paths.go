package config

import (
	"os"
	"path/filepath"
	"strings"
)

func findUserConfigFile() string {
	var candidates []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "daylist", "daylist.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "daylist", "daylist.toml"),
			filepath.Join(home, ".daylist", "daylist.toml"),
		)
	}
	return firstExisting(candidates)
}

func findProjectConfigFile(workDir string) string {
	if workDir == "" {
		workDir = "."
	}
	return firstExisting([]string{
		filepath.Join(workDir, "daylist.toml"),
		filepath.Join(workDir, ".daylist.toml"),
	})
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
