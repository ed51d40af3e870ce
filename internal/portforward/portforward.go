// Package portforward starts a background kubectl port-forward to a
// cluster's PostgreSQL service and reports the local port kubectl
// chose.
//
// The child process must outlive the fdb invocation: the caller owns
// keeping it alive and reaping it. Only the startup banner is read
// here, with a bounded number of short waits and a byte cap.
package portforward

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/imamik/fdb/internal/util/naming"
)

const (
	// RemotePort is the cluster-side PostgreSQL port.
	RemotePort = 5432

	// bannerWaitLimit and bannerWaitDelay bound how long Start waits
	// for the forwarding banner.
	bannerWaitLimit = 50
	bannerWaitDelay = 50 * time.Millisecond

	// bannerByteCap stops banner collection once this much output has
	// been read without a match.
	bannerByteCap = 512
)

// Forward is a running port-forward child process.
type Forward struct {
	Cmd       *exec.Cmd
	LocalPort int32
}

// newCommand is a factory var so tests can substitute the child
// process.
var newCommand = func(kubectl, kubeconfig, target string) *exec.Cmd {
	// #nosec G204 - kubectl path comes from prerequisite resolution
	return exec.Command(kubectl,
		"port-forward", target, fmt.Sprintf(":%d", RemotePort),
		"--kubeconfig", kubeconfig,
	)
}

// Start spawns kubectl port-forward svc/{cluster}-postgresql :5432 and
// parses the chosen local port from the banner. The child is killed
// only when no banner arrives in time; on success it is left running.
func Start(kubectl, kubeconfig, clusterName string) (*Forward, error) {
	target := "svc/" + naming.ComponentService(clusterName, "postgresql")
	cmd := newCommand(kubectl, kubeconfig, target)

	// kubectl writes "Forwarding from 127.0.0.1:XXXXX -> 5432" to its
	// diagnostic stream.
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("port-forward stderr not captured: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("kubectl port-forward failed: %w", err)
	}

	portCh := make(chan int32, 1)
	go func() {
		defer close(portCh)
		buf := make([]byte, 256)
		var banner strings.Builder
		for banner.Len() < bannerByteCap {
			n, err := stderr.Read(buf)
			if n > 0 {
				banner.Write(buf[:n])
				if port, ok := ParseForwardingPort(banner.String()); ok {
					portCh <- port
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	for i := 0; i < bannerWaitLimit; i++ {
		select {
		case port, ok := <-portCh:
			if ok {
				return &Forward{Cmd: cmd, LocalPort: port}, nil
			}
			i = bannerWaitLimit // reader gave up, fall through to kill
		case <-time.After(bannerWaitDelay):
		}
	}

	_ = cmd.Process.Kill()
	_ = cmd.Wait()
	return nil, fmt.Errorf("could not determine local port from kubectl port-forward output")
}

// ParseForwardingPort extracts the local port from a banner like
// "Forwarding from 127.0.0.1:12345 -> 5432".
func ParseForwardingPort(banner string) (int32, bool) {
	const marker = "127.0.0.1:"
	idx := strings.Index(banner, marker)
	if idx < 0 {
		return 0, false
	}
	rest := banner[idx+len(marker):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 || end == len(rest) {
		// A digit run cut off at the end of the buffer may still be
		// partial; wait for more output.
		return 0, false
	}
	port, err := strconv.ParseInt(rest[:end], 10, 32)
	if err != nil || port <= 0 || port > 65535 {
		return 0, false
	}
	return int32(port), true
}
