package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fdb/cmd/fdb/handlers"
)

// PortForward returns the port-forward command.
//
// The command starts a background kubectl port-forward to the cluster's
// PostgreSQL service and prints the local port kubectl picked.
func PortForward() *cobra.Command {
	var opts handlers.PortForwardOptions

	cmd := &cobra.Command{
		Use:   "port-forward <name>",
		Short: "Forward a local port to a cluster's PostgreSQL service",
		Long: `Port-forward starts kubectl port-forward svc/{name}-postgresql :5432
in the background and prints the local port.

The forward keeps running after fdb exits; stop it with kill or by
closing the terminal.

Example:
  fdb port-forward mydb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.PortForward(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to fdb.yaml (default: discovered)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig (default: from fdb.yaml or ~/.kube/config)")

	return cmd
}
