package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fdb/cmd/fdb/handlers"
)

// Delete returns the delete command.
//
// The delete command tears down a database cluster via kbcli and cleans
// up any exposure Services fdb created for it.
func Delete() *cobra.Command {
	var opts handlers.DeleteOptions

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a database cluster and its exposure services",
		Long: `Delete removes a database cluster.

The cluster is deleted through kbcli and any NodePort Services fdb
created for it ({name}-{service}-external) are removed afterwards.

A confirmation prompt is shown unless --yes is given.

Example:
  fdb delete mydb -y

WARNING: This operation is irreversible. All cluster data will be lost.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.Delete(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to fdb.yaml (default: discovered)")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig (default: from fdb.yaml or ~/.kube/config)")
	cmd.Flags().BoolVarP(&opts.AutoApprove, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
