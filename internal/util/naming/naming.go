package naming

import "fmt"

// Naming functions for cluster-adjacent resources.
// All fdb-owned resources follow deterministic patterns to enable
// lookup and cleanup from the cluster name alone.

// ExternalService is the NodePort service fdb creates to expose a
// cluster's primary replica, e.g. mydb-postgresql-external.
func ExternalService(cluster, component string) string {
	return fmt.Sprintf("%s-%s-external", cluster, component)
}

// ComponentService is the KubeBlocks-owned service fronting a cluster
// component, used as the port-forward target.
func ComponentService(cluster, component string) string {
	return fmt.Sprintf("%s-%s", cluster, component)
}
