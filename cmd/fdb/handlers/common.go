// Package handlers implements the command logic for the fdb CLI.
//
// Handlers are plain functions taking option structs. External touch
// points (prerequisite checks, config discovery, process execution,
// terminal detection) are factory variables so tests can replace them.
package handlers

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/fdb/internal/config"
	"github.com/imamik/fdb/internal/runner"
	"github.com/imamik/fdb/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// checkDefaultPrereqs runs prerequisite checks.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// discoverConfig locates and loads fdb.yaml.
	discoverConfig = config.Discover

	// newRunner creates the process runner used for kbcli and kubectl.
	newRunner = func() runner.Runner { return runner.NewExec() }

	// isInteractiveTTY reports whether stdout is a terminal.
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// toolchain bundles the resolved tool paths and cluster coordinates
// every handler needs.
type toolchain struct {
	Kbcli      string
	Kubectl    string
	Kubeconfig string
	Namespace  string
}

// setup loads fdb.yaml, verifies prerequisites, and resolves tool
// paths. kubeconfigFlag wins over the config file.
func setup(configPath, kubeconfigFlag string) (*toolchain, *config.File, error) {
	file, err := discoverConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	checks := checkDefaultPrereqs()
	if checks.HasErrors() {
		return nil, nil, fmt.Errorf("prerequisites check failed: %w", checks.Error())
	}

	return &toolchain{
		Kbcli:      checks.Path("kbcli"),
		Kubectl:    checks.Path("kubectl"),
		Kubeconfig: config.ResolveKubeconfig(file, kubeconfigFlag),
		Namespace:  config.ResolveNamespace(file),
	}, file, nil
}
