// Package service defines the catalog of database services fdb can
// provision through KubeBlocks.
//
// The catalog is static: each service type carries its kbcli component
// name, well-known port, account secret naming convention, default
// sizing, and connection string format. All functions are pure.
package service

import (
	"fmt"
	"strings"

	"github.com/imamik/fdb/internal/errdefs"
)

// Type identifies a supported database service.
type Type int

const (
	PostgreSQL Type = iota
	Redis
	RabbitMQ
	Qdrant
)

// All lists every supported service type in catalog order.
func All() []Type {
	return []Type{PostgreSQL, Redis, RabbitMQ, Qdrant}
}

// Defaults holds the default sizing for a service type.
// Storage and memory are quantities with a Gi unit suffix.
type Defaults struct {
	Replicas int
	Storage  string
	CPU      string
	Memory   string
}

// Parse resolves a user-supplied service name, accepting common aliases.
func Parse(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "postgresql", "postgres", "pg":
		return PostgreSQL, nil
	case "redis":
		return Redis, nil
	case "rabbitmq", "rabbit":
		return RabbitMQ, nil
	case "qdrant":
		return Qdrant, nil
	default:
		return 0, fmt.Errorf("%w: unknown service type %q (supported: postgresql, redis, rabbitmq, qdrant)", errdefs.ErrInvalidInput, s)
	}
}

// Name returns the canonical name used with kbcli cluster create.
func (t Type) Name() string {
	switch t {
	case PostgreSQL:
		return "postgresql"
	case Redis:
		return "redis"
	case RabbitMQ:
		return "rabbitmq"
	case Qdrant:
		return "qdrant"
	}
	return "unknown"
}

func (t Type) String() string {
	return t.Name()
}

// DefaultPort returns the well-known port the service listens on.
func (t Type) DefaultPort() int32 {
	switch t {
	case PostgreSQL:
		return 5432
	case Redis:
		return 6379
	case RabbitMQ:
		return 5672
	case Qdrant:
		return 6333
	}
	return 0
}

// PortName is the name given to the port in generated Service manifests.
func (t Type) PortName() string {
	return t.Name()
}

// SecretName returns the KubeBlocks account secret for a cluster,
// e.g. mydb-postgresql-account-postgres.
func (t Type) SecretName(clusterName string) string {
	switch t {
	case PostgreSQL:
		return fmt.Sprintf("%s-postgresql-account-postgres", clusterName)
	case Redis:
		return fmt.Sprintf("%s-redis-account-default", clusterName)
	case RabbitMQ:
		return fmt.Sprintf("%s-rabbitmq-account-root", clusterName)
	case Qdrant:
		return fmt.Sprintf("%s-qdrant-account-root", clusterName)
	}
	return ""
}

// DefaultUser returns the account user for connection strings.
func (t Type) DefaultUser() string {
	switch t {
	case PostgreSQL:
		return "postgres"
	case Redis:
		return "default"
	default:
		return "root"
	}
}

// HasCredentials reports whether KubeBlocks generates an account
// password secret for this service type.
func (t Type) HasCredentials() bool {
	return t != Qdrant
}

// SizingDefaults returns the default sizing used when neither the
// config file nor CLI flags override it.
func (t Type) SizingDefaults() Defaults {
	switch t {
	case PostgreSQL:
		return Defaults{Replicas: 1, Storage: "2Gi", CPU: "0.5", Memory: "0.8Gi"}
	case Redis:
		return Defaults{Replicas: 1, Storage: "1Gi", CPU: "0.5", Memory: "0.5Gi"}
	case RabbitMQ:
		return Defaults{Replicas: 1, Storage: "2Gi", CPU: "0.5", Memory: "1Gi"}
	case Qdrant:
		return Defaults{Replicas: 1, Storage: "5Gi", CPU: "0.5", Memory: "1Gi"}
	}
	return Defaults{}
}

// ConnectionString builds the display connection string for the service.
// The password segment is omitted where the scheme has no use for it.
func (t Type) ConnectionString(user, password, host string, port int32) string {
	switch t {
	case PostgreSQL:
		return fmt.Sprintf("postgresql://%s:%s@%s:%d/postgres", user, password, host, port)
	case Redis:
		if password == "" {
			return fmt.Sprintf("redis://%s:%d", host, port)
		}
		return fmt.Sprintf("redis://:%s@%s:%d", password, host, port)
	case RabbitMQ:
		return fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	case Qdrant:
		return fmt.Sprintf("http://%s:%d", host, port)
	}
	return ""
}
