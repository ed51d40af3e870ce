package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fdb/cmd/fdb/handlers"
)

// List returns the list command.
func List() *cobra.Command {
	var opts handlers.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List database clusters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to fdb.yaml (default: discovered)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig (default: from fdb.yaml or ~/.kube/config)")

	return cmd
}
