// Package main is the entry point for the fdb CLI.
//
// fdb is a command-line tool for provisioning databases on Kubernetes
// using KubeBlocks. It drives kbcli and kubectl to create a cluster,
// wait for it to become Running, expose it on a NodePort, and print a
// ready-to-use connection string.
//
// Commands: create, delete, list, port-forward, doctor.
//
// For detailed usage information, run:
//
//	fdb --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/fdb/cmd/fdb/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
