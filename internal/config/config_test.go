package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fdb/internal/service"
)

func TestResolveDefaults(t *testing.T) {
	tests := []struct {
		name     string
		svc      service.Type
		expected Resolved
	}{
		{
			name: "postgresql defaults",
			svc:  service.PostgreSQL,
			expected: Resolved{
				Namespace: "default",
				Replicas:  1,
				Storage:   "2Gi",
				CPU:       "0.5",
				Memory:    "0.8Gi",
			},
		},
		{
			name: "redis defaults",
			svc:  service.Redis,
			expected: Resolved{
				Namespace: "default",
				Replicas:  1,
				Storage:   "1Gi",
				CPU:       "0.5",
				Memory:    "0.5Gi",
			},
		},
		{
			name: "qdrant defaults",
			svc:  service.Qdrant,
			expected: Resolved{
				Namespace: "default",
				Replicas:  1,
				Storage:   "5Gi",
				CPU:       "0.5",
				Memory:    "1Gi",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Resolve(tt.svc, nil, Overrides{})
			assert.NotEmpty(t, resolved.Kubeconfig)
			assert.Equal(t, tt.expected.Namespace, resolved.Namespace)
			assert.Equal(t, tt.expected.Replicas, resolved.Replicas)
			assert.Equal(t, tt.expected.Storage, resolved.Storage)
			assert.Equal(t, tt.expected.CPU, resolved.CPU)
			assert.Equal(t, tt.expected.Memory, resolved.Memory)
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	file := &File{
		Kubeconfig: "/tmp/from-file",
		PostgreSQL: &ServiceSection{
			Replicas: 3,
			Storage:  "10Gi",
		},
	}

	t.Run("file overrides defaults", func(t *testing.T) {
		resolved := Resolve(service.PostgreSQL, file, Overrides{})
		assert.Equal(t, "/tmp/from-file", resolved.Kubeconfig)
		assert.Equal(t, 3, resolved.Replicas)
		assert.Equal(t, "10Gi", resolved.Storage)
		// Untouched fields keep their defaults
		assert.Equal(t, "0.5", resolved.CPU)
		assert.Equal(t, "0.8Gi", resolved.Memory)
	})

	t.Run("flags override file", func(t *testing.T) {
		resolved := Resolve(service.PostgreSQL, file, Overrides{
			Kubeconfig: "/tmp/from-flag",
			Replicas:   5,
			Memory:     "2Gi",
		})
		assert.Equal(t, "/tmp/from-flag", resolved.Kubeconfig)
		assert.Equal(t, 5, resolved.Replicas)
		assert.Equal(t, "10Gi", resolved.Storage)
		assert.Equal(t, "2Gi", resolved.Memory)
	})

	t.Run("other service sections ignored", func(t *testing.T) {
		resolved := Resolve(service.Redis, file, Overrides{})
		assert.Equal(t, 1, resolved.Replicas)
		assert.Equal(t, "1Gi", resolved.Storage)
	})
}

func TestLoadFromBytes(t *testing.T) {
	data := []byte(`
kubeconfig: ~/work/kubeconfig
namespace: databases
postgresql:
  replicas: 2
  storage: 2Gi
  cpu: 0.5
  memory: 0.8
redis:
  storage: 4
`)

	cfg, err := LoadFromBytes(data)
	require.NoError(t, err)

	assert.Equal(t, "~/work/kubeconfig", cfg.Kubeconfig)
	assert.Equal(t, "databases", cfg.Namespace)
	require.NotNil(t, cfg.PostgreSQL)
	assert.Equal(t, 2, cfg.PostgreSQL.Replicas)
	assert.Equal(t, Quantity("2Gi"), cfg.PostgreSQL.Storage)
	// Bare YAML numbers survive as their literal text
	assert.Equal(t, Quantity("0.8"), cfg.PostgreSQL.Memory)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, Quantity("4"), cfg.Redis.Storage)
	assert.Nil(t, cfg.RabbitMQ)
}

func TestLoadFromBytesInvalid(t *testing.T) {
	_, err := LoadFromBytes([]byte("postgresql: [not, a, mapping]"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fdb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: staging\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Namespace)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestResolveKubeconfig(t *testing.T) {
	assert.Equal(t, "/override", ResolveKubeconfig(&File{Kubeconfig: "/file"}, "/override"))
	assert.Equal(t, "/file", ResolveKubeconfig(&File{Kubeconfig: "/file"}, ""))
	assert.NotEmpty(t, ResolveKubeconfig(nil, ""))
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".kube", "config"), ExpandTilde("~/.kube/config"))
	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, "/absolute/path", ExpandTilde("/absolute/path"))
	assert.Equal(t, "relative", ExpandTilde("relative"))
}
