package handlers

import (
	"github.com/imamik/fdb/internal/config"
	"github.com/imamik/fdb/internal/runner"
	"github.com/imamik/fdb/internal/util/prerequisites"
)

// stubSetup replaces the shared factory vars with deterministic fakes
// and returns a restore func plus the fake runner every handler will
// use.
func stubSetup(run func(runner.Call) (runner.Result, error)) (restore func(), fake *runner.Fake) {
	origPrereqs := checkDefaultPrereqs
	origDiscover := discoverConfig
	origRunner := newRunner
	origTTY := isInteractiveTTY

	fake = &runner.Fake{RunFunc: run}

	checkDefaultPrereqs = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{
				{Tool: prerequisites.Tool{Name: "kbcli", Required: true}, Found: true, Path: "/usr/local/bin/kbcli", Version: "kbcli 0.9.0"},
				{Tool: prerequisites.Tool{Name: "kubectl", Required: true}, Found: true, Path: "/usr/local/bin/kubectl", Version: "v1.31.0"},
			},
		}
	}
	discoverConfig = func(string) (*config.File, error) { return nil, nil }
	newRunner = func() runner.Runner { return fake }
	isInteractiveTTY = func() bool { return false }

	restore = func() {
		checkDefaultPrereqs = origPrereqs
		discoverConfig = origDiscover
		newRunner = origRunner
		isInteractiveTTY = origTTY
	}
	return restore, fake
}
