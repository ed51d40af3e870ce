// Package runner executes external CLI tools (kbcli, kubectl) as
// blocking child processes.
//
// All fdb interactions with the cluster go through the [Runner]
// interface so workflow packages can be tested without spawning
// processes.
package runner

import (
	"bytes"
	"context"
	"os/exec"
)

// Result captures the output of a finished invocation.
type Result struct {
	Stdout string
	Stderr string
}

// Runner runs an external tool to completion and returns its output.
// A nonzero exit status is returned as an error alongside whatever
// output was captured.
type Runner interface {
	Run(ctx context.Context, tool string, args ...string) (Result, error)
	RunWithStdin(ctx context.Context, stdin []byte, tool string, args ...string) (Result, error)
}

// Exec is the production Runner backed by os/exec.
type Exec struct{}

// NewExec returns a Runner that spawns real child processes.
func NewExec() *Exec {
	return &Exec{}
}

// Run implements Runner.
func (e *Exec) Run(ctx context.Context, tool string, args ...string) (Result, error) {
	return e.RunWithStdin(ctx, nil, tool, args...)
}

// RunWithStdin implements Runner. A non-nil stdin is piped to the child.
func (e *Exec) RunWithStdin(ctx context.Context, stdin []byte, tool string, args ...string) (Result, error) {
	// #nosec G204 - tool paths come from prerequisite resolution, args from internal config
	cmd := exec.CommandContext(ctx, tool, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	err := cmd.Run()
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
