package expose

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/fdb/internal/errdefs"
)

// ServerHost reads the API server host of the current kubeconfig
// context, without scheme or port, e.g. "api.cluster.example.com" or
// "1.2.3.4". NodePort services are reachable on the same nodes the API
// endpoint fronts in the single-node and managed setups fdb targets.
func (m *Manager) ServerHost(ctx context.Context) (string, error) {
	args := m.kubectlArgs("config", "view", "--minify", "-o", "jsonpath={.clusters[0].cluster.server}")
	result, err := m.Runner.Run(ctx, m.Kubectl, args...)
	if err != nil {
		return "", errdefs.NewToolError(m.Kubectl, args, result.Stderr, err)
	}

	url := strings.TrimSpace(result.Stdout)
	host, ok := parseURLHost(url)
	if !ok {
		return "", fmt.Errorf("could not parse server URL %q", url)
	}
	return host, nil
}

// parseURLHost strips the scheme, path, and port from a server URL.
func parseURLHost(url string) (string, bool) {
	rest, found := strings.CutPrefix(url, "https://")
	if !found {
		rest, found = strings.CutPrefix(url, "http://")
	}
	if !found {
		return "", false
	}
	host := rest
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	if host == "" {
		return "", false
	}
	return host, true
}
