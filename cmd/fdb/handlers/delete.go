package handlers

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/fdb/internal/cluster"
)

// DeleteOptions carries the delete command's arguments and flags.
type DeleteOptions struct {
	Name        string
	ConfigPath  string
	Kubeconfig  string
	AutoApprove bool
}

// confirmDelete asks for confirmation before destroying a cluster.
// Factory var so tests can script the answer.
var confirmDelete = func(ctx context.Context, name string) (string, error) {
	if isInteractiveTTY() {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete cluster %q?", name)).
				Description("All cluster data will be lost.").
				Value(&confirmed),
		))
		if err := form.RunWithContext(ctx); err != nil {
			return "", err
		}
		if confirmed {
			return "y", nil
		}
		return "n", nil
	}

	fmt.Printf("Delete cluster %q? All cluster data will be lost. [y/N]: ", name)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Delete removes a database cluster and the exposure services fdb
// created for it.
func Delete(ctx context.Context, opts DeleteOptions) error {
	tc, _, err := setup(opts.ConfigPath, opts.Kubeconfig)
	if err != nil {
		return err
	}

	lc := cluster.New(tc.Kbcli, tc.Kubectl, tc.Kubeconfig, tc.Namespace, newRunner())

	confirm := func(ctx context.Context) (string, error) {
		return confirmDelete(ctx, opts.Name)
	}
	if err := lc.Delete(ctx, opts.Name, opts.AutoApprove, confirm); err != nil {
		return err
	}

	log.Printf("Cluster %s deleted", opts.Name)
	return nil
}
