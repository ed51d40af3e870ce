package runner

import (
	"context"
	"strings"
)

// Call records a single invocation observed by a Fake.
type Call struct {
	Tool  string
	Args  []string
	Stdin []byte
}

// Line renders the call as a shell-like line for matching in tests.
func (c Call) Line() string {
	return c.Tool + " " + strings.Join(c.Args, " ")
}

// Fake is a scripted Runner for tests. RunFunc decides the response for
// each invocation; every call is recorded in Calls.
type Fake struct {
	RunFunc func(call Call) (Result, error)
	Calls   []Call
}

// Run implements Runner.
func (f *Fake) Run(ctx context.Context, tool string, args ...string) (Result, error) {
	return f.RunWithStdin(ctx, nil, tool, args...)
}

// RunWithStdin implements Runner.
func (f *Fake) RunWithStdin(_ context.Context, stdin []byte, tool string, args ...string) (Result, error) {
	call := Call{Tool: tool, Args: args, Stdin: stdin}
	f.Calls = append(f.Calls, call)
	if f.RunFunc == nil {
		return Result{}, nil
	}
	return f.RunFunc(call)
}
