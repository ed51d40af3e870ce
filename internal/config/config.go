// Package config loads fdb.yaml and merges it with per-service
// defaults and CLI overrides.
//
// Precedence, later wins: catalog defaults, config file, CLI flags.
// The resolved configuration is handed to the create workflow once;
// nothing in here talks to the cluster.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/imamik/fdb/internal/service"
)

// DefaultNamespace is where KubeBlocks clusters and fdb-owned
// exposure services live.
const DefaultNamespace = "default"

// defaultKubeconfig is used when neither fdb.yaml nor --kubeconfig set one.
const defaultKubeconfig = "~/.kube/config"

// Quantity is a sizing value from YAML. Bare numbers (2, 0.8) and
// suffixed strings ("2Gi") are both kept as their literal text so the
// lifecycle layer can normalize them in one place.
type Quantity string

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("quantity must be a scalar, got %v", node.Kind)
	}
	*q = Quantity(node.Value)
	return nil
}

// ServiceSection holds per-service sizing overrides from fdb.yaml.
// Zero values mean "not set".
type ServiceSection struct {
	Replicas int      `yaml:"replicas"`
	Storage  Quantity `yaml:"storage"`
	CPU      Quantity `yaml:"cpu"`
	Memory   Quantity `yaml:"memory"`
}

// File is the parsed fdb.yaml document.
type File struct {
	Kubeconfig string          `yaml:"kubeconfig"`
	Namespace  string          `yaml:"namespace"`
	PostgreSQL *ServiceSection `yaml:"postgresql"`
	Redis      *ServiceSection `yaml:"redis"`
	RabbitMQ   *ServiceSection `yaml:"rabbitmq"`
	Qdrant     *ServiceSection `yaml:"qdrant"`
}

func (f *File) section(svc service.Type) *ServiceSection {
	switch svc {
	case service.PostgreSQL:
		return f.PostgreSQL
	case service.Redis:
		return f.Redis
	case service.RabbitMQ:
		return f.RabbitMQ
	case service.Qdrant:
		return f.Qdrant
	}
	return nil
}

// Overrides carries CLI flag values. Zero values mean "not set".
type Overrides struct {
	Kubeconfig string
	Replicas   int
	Storage    string
	CPU        string
	Memory     string
}

// Resolved is the merged configuration consumed once by create.
type Resolved struct {
	Kubeconfig string
	Namespace  string
	Replicas   int
	Storage    string
	CPU        string
	Memory     string
}

// Resolve merges catalog defaults, the config file, and CLI overrides
// for one service type. file may be nil when no fdb.yaml was found.
func Resolve(svc service.Type, file *File, overrides Overrides) Resolved {
	defaults := svc.SizingDefaults()
	resolved := Resolved{
		Kubeconfig: ExpandTilde(defaultKubeconfig),
		Namespace:  DefaultNamespace,
		Replicas:   defaults.Replicas,
		Storage:    defaults.Storage,
		CPU:        defaults.CPU,
		Memory:     defaults.Memory,
	}

	if file != nil {
		if file.Kubeconfig != "" {
			resolved.Kubeconfig = ExpandTilde(file.Kubeconfig)
		}
		if file.Namespace != "" {
			resolved.Namespace = file.Namespace
		}
		if section := file.section(svc); section != nil {
			if section.Replicas != 0 {
				resolved.Replicas = section.Replicas
			}
			if section.Storage != "" {
				resolved.Storage = string(section.Storage)
			}
			if section.CPU != "" {
				resolved.CPU = string(section.CPU)
			}
			if section.Memory != "" {
				resolved.Memory = string(section.Memory)
			}
		}
	}

	if overrides.Kubeconfig != "" {
		resolved.Kubeconfig = overrides.Kubeconfig
	}
	if overrides.Replicas != 0 {
		resolved.Replicas = overrides.Replicas
	}
	if overrides.Storage != "" {
		resolved.Storage = overrides.Storage
	}
	if overrides.CPU != "" {
		resolved.CPU = overrides.CPU
	}
	if overrides.Memory != "" {
		resolved.Memory = overrides.Memory
	}

	return resolved
}

// ResolveKubeconfig merges only the kubeconfig path, for commands that
// need no service section (delete, list, port-forward).
func ResolveKubeconfig(file *File, override string) string {
	if override != "" {
		return override
	}
	if file != nil && file.Kubeconfig != "" {
		return ExpandTilde(file.Kubeconfig)
	}
	return ExpandTilde(defaultKubeconfig)
}

// ResolveNamespace merges only the namespace.
func ResolveNamespace(file *File) string {
	if file != nil && file.Namespace != "" {
		return file.Namespace
	}
	return DefaultNamespace
}
