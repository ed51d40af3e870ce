package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fdb/cmd/fdb/handlers"
)

// Create returns the create command.
//
// The create command provisions a database cluster via kbcli, waits for
// it to reach Running, exposes it on a NodePort, and prints a
// connection descriptor.
func Create() *cobra.Command {
	var opts handlers.CreateOptions

	cmd := &cobra.Command{
		Use:   "create <service> <name>",
		Short: "Create a database cluster and print its connection details",
		Long: `Create provisions a database cluster with KubeBlocks.

Supported services:
  postgresql (aliases: postgres, pg)
  redis
  rabbitmq   (alias: rabbit)
  qdrant

The command waits until the cluster reports Running, resolves the
generated credentials, exposes the primary on a NodePort, and prints
host, port, user, password, and a connection string.

Sizing defaults come from the service catalog and can be overridden in
fdb.yaml or with flags (flags win).

Example:
  fdb create pg mydb --storage 10Gi --replicas 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Service = args[0]
			opts.Name = args[1]
			return handlers.Create(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to fdb.yaml (default: discovered)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig (default: from fdb.yaml or ~/.kube/config)")
	cmd.Flags().IntVar(&opts.Replicas, "replicas", 0, "Number of replicas (default: per service)")
	cmd.Flags().StringVar(&opts.Storage, "storage", "", "Storage size, e.g. 10Gi (default: per service)")
	cmd.Flags().StringVar(&opts.CPU, "cpu", "", "CPU request, e.g. 0.5 (default: per service)")
	cmd.Flags().StringVar(&opts.Memory, "memory", "", "Memory size, e.g. 2Gi (default: per service)")

	return cmd
}
