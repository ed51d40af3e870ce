package cluster

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/imamik/fdb/internal/errdefs"
	"github.com/imamik/fdb/internal/runner"
	"github.com/imamik/fdb/internal/service"
	"github.com/imamik/fdb/internal/util/naming"
)

const (
	// DefaultPollInterval is the cadence of status polls while waiting.
	DefaultPollInterval = 3 * time.Second

	// DefaultTimeout bounds the wait for a cluster to become Running.
	DefaultTimeout = 5 * time.Minute
)

// Spec describes one cluster create request. Quantities keep their
// unit suffix until Create normalizes them for kbcli.
type Spec struct {
	Service  service.Type
	Name     string
	Replicas int
	Storage  string
	CPU      string
	Memory   string
}

// Lifecycle drives create, wait, delete, and list against kbcli.
// The zero interval/timeout/parser/clock fields fall back to defaults
// in New.
type Lifecycle struct {
	Kbcli      string
	Kubectl    string
	Kubeconfig string
	Namespace  string
	Runner     runner.Runner

	PollInterval time.Duration
	Timeout      time.Duration
	ParseStatus  StatusParser

	// Now and Sleep are overridable for tests.
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// New returns a Lifecycle with default polling behavior.
func New(kbcli, kubectl, kubeconfig, namespace string, r runner.Runner) *Lifecycle {
	return &Lifecycle{
		Kbcli:        kbcli,
		Kubectl:      kubectl,
		Kubeconfig:   kubeconfig,
		Namespace:    namespace,
		Runner:       r,
		PollInterval: DefaultPollInterval,
		Timeout:      DefaultTimeout,
		ParseStatus:  ParseStatusColumn,
		Now:          time.Now,
		Sleep:        sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (l *Lifecycle) kbcliArgs(args ...string) []string {
	return append([]string{"--kubeconfig", l.Kubeconfig}, args...)
}

// Create runs kbcli cluster create with the spec's sizing converted to
// bare numeric strings.
func (l *Lifecycle) Create(ctx context.Context, spec Spec) error {
	if spec.Replicas <= 0 {
		return fmt.Errorf("%w: replicas must be positive, got %d", errdefs.ErrInvalidInput, spec.Replicas)
	}
	storage, err := NormalizeQuantity(spec.Storage)
	if err != nil {
		return err
	}
	memory, err := NormalizeQuantity(spec.Memory)
	if err != nil {
		return err
	}
	cpu, err := NormalizeQuantity(spec.CPU)
	if err != nil {
		return err
	}

	args := l.kbcliArgs(
		"cluster", "create", spec.Service.Name(), spec.Name,
		"--replicas", strconv.Itoa(spec.Replicas),
		"--storage", storage,
		"--cpu", cpu,
		"--memory", memory,
	)
	result, err := l.Runner.Run(ctx, l.Kbcli, args...)
	if err != nil {
		return errdefs.NewToolError(l.Kbcli, args, result.Stderr, err)
	}
	return nil
}

// WaitUntilRunning polls cluster status on a fixed interval until it
// reports Running or the timeout elapses. The onPoll callback, when
// set, receives the raw status of every poll for progress display.
//
// A kbcli binary that cannot be invoked at all aborts the wait; a
// nonzero exit or unparsable table means the cluster is not listed yet
// and polling continues.
func (l *Lifecycle) WaitUntilRunning(ctx context.Context, name string, onPoll func(status string)) error {
	deadline := l.Now().Add(l.Timeout)
	args := l.kbcliArgs("cluster", "list", name)

	for {
		if !l.Now().Before(deadline) {
			return fmt.Errorf("%w: cluster %q did not become Running within %s", errdefs.ErrTimeout, name, l.Timeout)
		}

		result, err := l.Runner.Run(ctx, l.Kbcli, args...)
		if err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				return errdefs.NewToolError(l.Kbcli, args, result.Stderr, err)
			}
		}

		status, ok := l.ParseStatus(result.Stdout)
		if onPoll != nil {
			onPoll(status)
		}
		if ok && status == StatusRunning {
			return nil
		}

		if err := l.Sleep(ctx, l.PollInterval); err != nil {
			return err
		}
	}
}

// Delete tears down a cluster. Without autoApprove it calls confirm
// and proceeds only on an affirmative answer. After a successful
// primary delete it removes fdb-owned exposure services for every
// known service component; those cleanup failures are swallowed.
func (l *Lifecycle) Delete(ctx context.Context, name string, autoApprove bool, confirm func(ctx context.Context) (string, error)) error {
	if !autoApprove {
		answer, err := confirm(ctx)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !Affirmative(answer) {
			return fmt.Errorf("%w: cluster %q not deleted", errdefs.ErrAborted, name)
		}
	}

	args := l.kbcliArgs("cluster", "delete", name)
	if autoApprove {
		args = append(args, "--auto-approve")
	}
	result, err := l.Runner.Run(ctx, l.Kbcli, args...)
	if err != nil {
		return errdefs.NewToolError(l.Kbcli, args, result.Stderr, err)
	}

	l.cleanupExposureServices(ctx, name)
	return nil
}

// cleanupExposureServices deletes the deterministic {cluster}-{svc}-external
// services with ignore-not-found semantics. Best effort only.
func (l *Lifecycle) cleanupExposureServices(ctx context.Context, name string) {
	for _, svc := range service.All() {
		external := naming.ExternalService(name, svc.Name())
		args := []string{
			"--kubeconfig", l.Kubeconfig,
			"delete", "svc", external,
			"-n", l.Namespace,
			"--ignore-not-found=true",
		}
		_, _ = l.Runner.Run(ctx, l.Kubectl, args...)
	}
}

// List returns the kbcli cluster listing verbatim. An empty or
// header-only table becomes an explicit "no clusters" line.
func (l *Lifecycle) List(ctx context.Context) (string, error) {
	args := l.kbcliArgs("cluster", "list")
	result, err := l.Runner.Run(ctx, l.Kbcli, args...)
	if err != nil {
		return "", errdefs.NewToolError(l.Kbcli, args, result.Stderr, err)
	}

	if !hasDataRow(result.Stdout) {
		return "No clusters found.\n", nil
	}
	return result.Stdout, nil
}
