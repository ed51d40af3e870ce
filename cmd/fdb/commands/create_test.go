package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	cmd := Create()

	require.NotNil(t, cmd)
	assert.Equal(t, "create <service> <name>", cmd.Use)
}

func TestCreate_Flags(t *testing.T) {
	cmd := Create()

	for _, name := range []string{"config", "kubeconfig", "replicas", "storage", "cpu", "memory"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "Expected flag %s", name)
	}
}

func TestCreate_RequiresTwoArgs(t *testing.T) {
	cmd := Create()
	require.NotNil(t, cmd.Args)

	assert.Error(t, cmd.Args(cmd, []string{"pg"}))
	assert.NoError(t, cmd.Args(cmd, []string{"pg", "mydb"}))
	assert.Error(t, cmd.Args(cmd, []string{"pg", "mydb", "extra"}))
}

func TestDelete_Flags(t *testing.T) {
	cmd := Delete()

	assert.NotNil(t, cmd.Flags().Lookup("yes"))
	assert.NotNil(t, cmd.Flags().ShorthandLookup("y"))
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"mydb"}))
}
