package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/fdb/internal/portforward"
)

// PortForwardOptions carries the port-forward command's arguments and
// flags.
type PortForwardOptions struct {
	Name       string
	ConfigPath string
	Kubeconfig string
}

// startPortForward spawns the background kubectl port-forward. Factory
// var so tests can avoid real child processes.
var startPortForward = portforward.Start

// PortForward starts a background port-forward to the cluster's
// PostgreSQL service and prints the local port.
func PortForward(ctx context.Context, opts PortForwardOptions) error {
	tc, _, err := setup(opts.ConfigPath, opts.Kubeconfig)
	if err != nil {
		return err
	}

	fwd, err := startPortForward(tc.Kubectl, tc.Kubeconfig, opts.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Forwarding localhost:%d -> %s-postgresql:%d\n", fwd.LocalPort, opts.Name, portforward.RemotePort)
	fmt.Printf("  connection: postgresql://postgres:<password>@localhost:%d/postgres\n", fwd.LocalPort)
	fmt.Println("The forward keeps running in the background; stop it with kill.")
	return nil
}
