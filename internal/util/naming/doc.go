// Package naming provides consistent naming functions for the
// Kubernetes resources fdb creates alongside a KubeBlocks cluster.
//
// Names are derived purely from the cluster name and service component
// so deletion can locate every owned resource without persisted
// bookkeeping.
package naming
