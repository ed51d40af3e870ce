package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/fdb/internal/cluster"
)

// ListOptions carries the list command's flags.
type ListOptions struct {
	ConfigPath string
	Kubeconfig string
}

// List prints the kbcli cluster table.
func List(ctx context.Context, opts ListOptions) error {
	tc, _, err := setup(opts.ConfigPath, opts.Kubeconfig)
	if err != nil {
		return err
	}

	lc := cluster.New(tc.Kbcli, tc.Kubectl, tc.Kubeconfig, tc.Namespace, newRunner())

	out, err := lc.List(ctx)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
