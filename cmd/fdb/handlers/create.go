package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/imamik/fdb/internal/cluster"
	"github.com/imamik/fdb/internal/config"
	"github.com/imamik/fdb/internal/connection"
	"github.com/imamik/fdb/internal/credentials"
	"github.com/imamik/fdb/internal/expose"
	"github.com/imamik/fdb/internal/service"
	"github.com/imamik/fdb/internal/ui/tui"
)

// CreateOptions carries the create command's arguments and flags.
type CreateOptions struct {
	Service    string
	Name       string
	ConfigPath string
	Kubeconfig string
	Replicas   int
	Storage    string
	CPU        string
	Memory     string
}

// runCreateTUI wraps the provisioning flow with the dashboard. Factory
// var so tests can run the flow headless.
var runCreateTUI = tui.RunCreateTUI

// Create provisions a database cluster and prints its connection
// details.
//
// The workflow:
//  1. Resolve sizing from catalog defaults, fdb.yaml, and flags.
//  2. Verify kbcli and kubectl are installed.
//  3. Create the cluster and wait until it reports Running.
//  4. Resolve the generated credentials from the account secret.
//  5. Expose the primary on a NodePort and determine the node host.
//  6. Print the connection descriptor.
//
// Host and NodePort resolution are best effort: when either fails the
// descriptor degrades to credentials only and the command still
// succeeds.
func Create(ctx context.Context, opts CreateOptions) error {
	svc, err := service.Parse(opts.Service)
	if err != nil {
		return err
	}

	tc, file, err := setup(opts.ConfigPath, opts.Kubeconfig)
	if err != nil {
		return err
	}
	resolved := config.Resolve(svc, file, config.Overrides{
		Kubeconfig: opts.Kubeconfig,
		Replicas:   opts.Replicas,
		Storage:    opts.Storage,
		CPU:        opts.CPU,
		Memory:     opts.Memory,
	})
	tc.Kubeconfig = resolved.Kubeconfig
	tc.Namespace = resolved.Namespace

	r := newRunner()
	lc := cluster.New(tc.Kbcli, tc.Kubectl, tc.Kubeconfig, tc.Namespace, r)
	resolver := credentials.NewResolver(tc.Kubectl, tc.Kubeconfig, tc.Namespace, r)
	exposer := expose.NewManager(tc.Kubectl, tc.Kubeconfig, tc.Namespace, r)

	log.Printf("Creating %s cluster %q (replicas=%d storage=%s cpu=%s memory=%s, kubeconfig=%s)",
		svc.Name(), opts.Name, resolved.Replicas, resolved.Storage, resolved.CPU, resolved.Memory, tc.Kubeconfig)
	started := time.Now()

	var cred *credentials.Credential
	var host string
	var nodePort int32

	provision := func(report func(tui.PhaseMsg), status func(string), warn func(format string, args ...any)) error {
		report(tui.PhaseMsg{Phase: tui.PhaseCreate})
		spec := cluster.Spec{
			Service:  svc,
			Name:     opts.Name,
			Replicas: resolved.Replicas,
			Storage:  resolved.Storage,
			CPU:      resolved.CPU,
			Memory:   resolved.Memory,
		}
		if err := lc.Create(ctx, spec); err != nil {
			return err
		}
		report(tui.PhaseMsg{Phase: tui.PhaseCreate, Done: true})

		report(tui.PhaseMsg{Phase: tui.PhaseWait})
		if err := lc.WaitUntilRunning(ctx, opts.Name, status); err != nil {
			return err
		}
		report(tui.PhaseMsg{Phase: tui.PhaseWait, Done: true})

		report(tui.PhaseMsg{Phase: tui.PhaseCredentials})
		c, err := resolver.Resolve(ctx, svc, opts.Name)
		if err != nil {
			return err
		}
		cred = c
		report(tui.PhaseMsg{Phase: tui.PhaseCredentials, Done: true})

		// Exposure is best effort: the cluster is usable without it.
		report(tui.PhaseMsg{Phase: tui.PhaseExpose})
		h, err := exposer.ServerHost(ctx)
		if err != nil {
			warn("could not determine node host: %v", err)
		} else {
			host = h
		}
		p, err := exposer.EnsureExternalEndpoint(ctx, svc, opts.Name)
		if err != nil {
			warn("could not expose %s externally: %v", opts.Name, err)
			host = ""
		} else {
			nodePort = p
		}
		report(tui.PhaseMsg{Phase: tui.PhaseExpose, Done: true})
		return nil
	}

	if isInteractiveTTY() {
		// The dashboard owns the terminal; warnings are held back and
		// logged once it has closed.
		var warnings []string
		err = runCreateTUI(opts.Name, svc.Name(), lc.Timeout, func(ch chan<- tui.PhaseMsg, status func(string)) error {
			return provision(func(m tui.PhaseMsg) { ch <- m }, status, func(format string, args ...any) {
				warnings = append(warnings, fmt.Sprintf(format, args...))
			})
		})
		for _, w := range warnings {
			log.Printf("Warning: %s", w)
		}
	} else {
		err = provision(logPhase, func(s string) { log.Printf("  status: %s", s) }, func(format string, args ...any) {
			log.Printf("Warning: "+format, args...)
		})
	}
	if err != nil {
		return err
	}

	log.Printf("Cluster %s is ready (%s)", opts.Name, time.Since(started).Round(time.Second))
	printDescriptor(svc, opts.Name, connection.Assemble(svc, cred, host, nodePort))
	return nil
}

// logPhase renders phase transitions as plain log lines for
// non-interactive terminals.
func logPhase(m tui.PhaseMsg) {
	names := map[string]string{
		tui.PhaseCreate:      "Creating cluster",
		tui.PhaseWait:        "Waiting for Running",
		tui.PhaseCredentials: "Resolving credentials",
		tui.PhaseExpose:      "Exposing endpoint",
	}
	name, ok := names[m.Phase]
	if !ok {
		return
	}
	if m.Done {
		log.Printf("%s: done", name)
	} else {
		log.Printf("%s...", name)
	}
}

// printDescriptor writes the final connection details to stdout.
func printDescriptor(svc service.Type, name string, desc connection.Descriptor) {
	fmt.Printf("\n%s cluster %q\n", svc.Name(), name)
	if desc.Host != "" {
		fmt.Printf("  host: %s\n", desc.Host)
	}
	if desc.Port != 0 {
		fmt.Printf("  port: %d\n", desc.Port)
	}
	if desc.User != "" {
		fmt.Printf("  user: %s\n", desc.User)
	}
	if desc.HasPassword {
		fmt.Printf("  password: %s\n", desc.Password)
	}
	if desc.ConnectionString != "" {
		fmt.Printf("  connection: %s\n", desc.ConnectionString)
	}
	if desc.Degraded() {
		fmt.Printf("  note: external endpoint unavailable, use 'fdb port-forward %s' for local access\n", name)
	}
}
