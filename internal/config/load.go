package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "fdb.yaml"

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*File, error) {
	// #nosec G304 - path comes from --config or the documented search locations
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return parseFile(data)
}

// LoadFromBytes parses a configuration document from memory.
func LoadFromBytes(data []byte) (*File, error) {
	return parseFile(data)
}

func parseFile(data []byte) (*File, error) {
	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}

// Discover locates and loads fdb.yaml. It checks the explicit path
// first, then the current directory and its parents, then
// ~/.fdb/fdb.yaml. A missing config file is not an error; nil is
// returned and defaults apply.
func Discover(explicitPath string) (*File, error) {
	if explicitPath != "" {
		return LoadFile(explicitPath)
	}

	if path, err := findConfigFile(); err == nil && path != "" {
		return LoadFile(path)
	}

	global := ExpandTilde(filepath.Join("~", ".fdb", DefaultConfigFilename))
	if _, err := os.Stat(global); err == nil {
		return LoadFile(global)
	}

	return nil, nil
}

// findConfigFile searches for fdb.yaml in the current directory, then
// walks up the directory tree.
func findConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ExpandTilde resolves a leading ~ against $HOME.
func ExpandTilde(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if len(path) > 1 && path[0] == '~' && os.IsPathSeparator(path[1]) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
