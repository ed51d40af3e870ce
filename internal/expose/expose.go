// Package expose makes a cluster's primary replica externally
// reachable through an fdb-owned NodePort service.
//
// KubeBlocks reverts patches to the services it owns, so fdb applies
// its own Service selecting the primary replica by label and lets the
// platform allocate the external port. The assigned port is then
// discovered by probing several jsonpath shapes with a short retry,
// because the allocation is asynchronous and the successful query
// shape is not stable across kubectl versions.
package expose

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/yaml"

	"github.com/imamik/fdb/internal/errdefs"
	"github.com/imamik/fdb/internal/runner"
	"github.com/imamik/fdb/internal/service"
	"github.com/imamik/fdb/internal/util/naming"
	"github.com/imamik/fdb/internal/util/retry"
)

const (
	// settleDelay gives the platform a moment to allocate the NodePort
	// after a fresh apply before discovery starts.
	settleDelay = 800 * time.Millisecond

	// discoveryRetries and discoveryDelay bound the port probing:
	// three attempts total, a fixed half second apart.
	discoveryRetries = 2
	discoveryDelay   = 500 * time.Millisecond
)

// errPortNotAssigned signals one failed discovery attempt.
var errPortNotAssigned = errors.New("nodePort not assigned yet")

// Manager idempotently ensures external endpoints for clusters.
type Manager struct {
	Kubectl    string
	Kubeconfig string
	Namespace  string
	Runner     runner.Runner

	// Sleep is overridable for tests.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewManager returns a Manager with default timing.
func NewManager(kubectl, kubeconfig, namespace string, r runner.Runner) *Manager {
	return &Manager{
		Kubectl:    kubectl,
		Kubeconfig: kubeconfig,
		Namespace:  namespace,
		Runner:     r,
		Sleep:      sleepCtx,
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

func (m *Manager) kubectlArgs(args ...string) []string {
	return append([]string{"--kubeconfig", m.Kubeconfig}, args...)
}

// EnsureExternalEndpoint creates the {cluster}-{service}-external
// NodePort service when it does not exist yet and returns the port the
// platform assigned. Two sequential calls for the same cluster return
// the same port and create no duplicate resource.
func (m *Manager) EnsureExternalEndpoint(ctx context.Context, svc service.Type, clusterName string) (int32, error) {
	external := naming.ExternalService(clusterName, svc.Name())

	exists, err := m.serviceExists(ctx, external)
	if err != nil {
		return 0, err
	}
	if !exists {
		if err := m.applyExternalService(ctx, svc, clusterName, external); err != nil {
			return 0, err
		}
		if err := m.Sleep(ctx, settleDelay); err != nil {
			return 0, err
		}
	}

	return m.discoverNodePort(ctx, external, svc.DefaultPort())
}

// serviceExists checks for the service with kubectl get -o name. A get
// that fails or prints no service token means absent.
func (m *Manager) serviceExists(ctx context.Context, name string) (bool, error) {
	args := m.kubectlArgs("get", "svc", name, "-n", m.Namespace, "-o", "name")
	result, err := m.Runner.Run(ctx, m.Kubectl, args...)
	if err != nil {
		return false, nil
	}
	return strings.Contains(strings.TrimSpace(result.Stdout), "service/"), nil
}

// applyExternalService declaratively applies the NodePort manifest via
// kubectl apply -f - on stdin.
func (m *Manager) applyExternalService(ctx context.Context, svc service.Type, clusterName, external string) error {
	manifest, err := m.buildManifest(svc, clusterName, external)
	if err != nil {
		return err
	}

	args := m.kubectlArgs("apply", "-f", "-")
	result, err := m.Runner.RunWithStdin(ctx, manifest, m.Kubectl, args...)
	if err != nil {
		return errdefs.NewToolError(m.Kubectl, args, result.Stderr, err)
	}
	return nil
}

// buildManifest renders the external Service selecting the cluster's
// running primary replica, exposing the well-known port as both
// service and target port. NodePort allocation is left to the platform.
func (m *Manager) buildManifest(svc service.Type, clusterName, external string) ([]byte, error) {
	port := svc.DefaultPort()
	obj := corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      external,
			Namespace: m.Namespace,
			Labels: map[string]string{
				"app.kubernetes.io/managed-by": "fdb",
			},
		},
		Spec: corev1.ServiceSpec{
			Type: corev1.ServiceTypeNodePort,
			Selector: map[string]string{
				"app.kubernetes.io/instance":        clusterName,
				"apps.kubeblocks.io/component-name": svc.Name(),
				"kubeblocks.io/role":                "primary",
			},
			Ports: []corev1.ServicePort{
				{
					Name:       svc.PortName(),
					Protocol:   corev1.ProtocolTCP,
					Port:       port,
					TargetPort: intstr.FromInt32(port),
				},
			},
		},
	}

	manifest, err := yaml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal service manifest: %w", err)
	}
	return manifest, nil
}

// discoverNodePort retries the port query on a fixed cadence. Each
// attempt probes three jsonpath shapes, narrow to broad, and the first
// syntactically valid nonzero port wins.
func (m *Manager) discoverNodePort(ctx context.Context, external string, targetPort int32) (int32, error) {
	shapes := []string{
		fmt.Sprintf("{.spec.ports[?(@.port==%d)].nodePort}", targetPort),
		"{.spec.ports[*].nodePort}",
		"{.spec.ports[0].nodePort}",
	}

	var port int32
	err := retry.WithBackoff(ctx, func() error {
		for _, shape := range shapes {
			args := m.kubectlArgs("get", "svc", external, "-n", m.Namespace, "-o", "jsonpath="+shape)
			result, err := m.Runner.Run(ctx, m.Kubectl, args...)
			if err != nil {
				continue
			}
			if p, ok := parsePort(result.Stdout); ok {
				port = p
				return nil
			}
		}
		return errPortNotAssigned
	},
		retry.WithMaxRetries(discoveryRetries),
		retry.WithInitialDelay(discoveryDelay),
		retry.WithMultiplier(1.0),
		retry.WithSleep(m.Sleep),
	)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: nodePort not assigned for service %s; run: kubectl get svc %s -n %s -o yaml",
			errdefs.ErrNotReady, external, external, m.Namespace)
	}
	return port, nil
}

// parsePort scans whitespace-separated jsonpath output for the first
// nonzero port.
func parsePort(stdout string) (int32, bool) {
	for _, tok := range strings.Fields(strings.TrimSpace(stdout)) {
		p, err := strconv.ParseInt(tok, 10, 32)
		if err != nil || p <= 0 || p > 65535 {
			continue
		}
		return int32(p), true
	}
	return 0, false
}
