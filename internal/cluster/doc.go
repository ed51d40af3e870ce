// Package cluster drives the KubeBlocks cluster lifecycle through the
// kbcli command surface.
//
// # Lifecycle
//
//   - Create: kbcli cluster create with normalized sizing quantities
//   - WaitUntilRunning: fixed-interval polling of kbcli cluster list
//     until the status column reports Running, bounded by a timeout
//   - Delete: confirmed teardown plus best-effort cleanup of fdb-owned
//     exposure services
//   - List: verbatim pass-through of the kbcli listing table
//
// # Key Design Principles
//
//   - The orchestration plane is the sole source of truth: no status is
//     cached between operations
//   - The status-line parser is a pluggable function because kbcli's
//     tabular output carries no schema guarantee
//   - Clock and sleep are injectable so wait behavior is testable
package cluster
