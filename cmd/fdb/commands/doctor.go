package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/fdb/cmd/fdb/handlers"
)

// Doctor returns the doctor command.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that required client tools are installed",
		Long: `Doctor verifies the client tools fdb drives (kbcli, kubectl) are
available in PATH and reports their versions. Missing tools are listed
with installation instructions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context())
		},
	}
}
