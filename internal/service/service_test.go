package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fdb/internal/errdefs"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"postgresql", PostgreSQL},
		{"postgres", PostgreSQL},
		{"pg", PostgreSQL},
		{"PG", PostgreSQL},
		{"redis", Redis},
		{"rabbitmq", RabbitMQ},
		{"rabbit", RabbitMQ},
		{"qdrant", Qdrant},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnknown(t *testing.T) {
	for _, in := range []string{"", "mongodb", "postgresql ", "mysql"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, errdefs.ErrInvalidInput)
	}
}

func TestCatalog(t *testing.T) {
	tests := []struct {
		svc    Type
		name   string
		port   int32
		secret string
		user   string
		auth   bool
	}{
		{PostgreSQL, "postgresql", 5432, "mydb-postgresql-account-postgres", "postgres", true},
		{Redis, "redis", 6379, "mydb-redis-account-default", "default", true},
		{RabbitMQ, "rabbitmq", 5672, "mydb-rabbitmq-account-root", "root", true},
		{Qdrant, "qdrant", 6333, "mydb-qdrant-account-root", "root", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.svc.Name())
			assert.Equal(t, tt.port, tt.svc.DefaultPort())
			assert.Equal(t, tt.secret, tt.svc.SecretName("mydb"))
			assert.Equal(t, tt.user, tt.svc.DefaultUser())
			assert.Equal(t, tt.auth, tt.svc.HasCredentials())
		})
	}
}

func TestSizingDefaultsPositive(t *testing.T) {
	for _, svc := range All() {
		t.Run(svc.Name(), func(t *testing.T) {
			d := svc.SizingDefaults()
			assert.Greater(t, d.Replicas, 0)
			for field, q := range map[string]string{"storage": d.Storage, "cpu": d.CPU, "memory": d.Memory} {
				trimmed, _ := strconvFloat(q)
				assert.Greater(t, trimmed, 0.0, "%s default %q must be positive", field, q)
			}
		})
	}
}

// strconvFloat parses a quantity literal with an optional Gi suffix.
func strconvFloat(q string) (float64, error) {
	if len(q) > 2 && q[len(q)-2:] == "Gi" {
		q = q[:len(q)-2]
	}
	return strconv.ParseFloat(q, 64)
}

func TestConnectionStringFormats(t *testing.T) {
	tests := []struct {
		name string
		svc  Type
		user string
		pass string
		want string
	}{
		{"postgresql", PostgreSQL, "postgres", "pw", "postgresql://postgres:pw@h:5432/postgres"},
		{"redis no password", Redis, "default", "", "redis://h:6379"},
		{"redis with password", Redis, "default", "pw", "redis://:pw@h:6379"},
		{"rabbitmq", RabbitMQ, "root", "pw", "amqp://root:pw@h:5672/"},
		{"qdrant ignores password", Qdrant, "root", "pw", "http://h:6333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.svc.ConnectionString(tt.user, tt.pass, "h", tt.svc.DefaultPort())
			assert.Equal(t, tt.want, got)
		})
	}
}
