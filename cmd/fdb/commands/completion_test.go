package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	cmd := Completion()

	require.NotNil(t, cmd)
	assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
}

func TestCompletion_RejectsUnknownShell(t *testing.T) {
	cmd := Completion()
	require.NotNil(t, cmd.Args)

	assert.Error(t, cmd.Args(cmd, []string{"tcsh"}))
	assert.NoError(t, cmd.Args(cmd, []string{"zsh"}))
}
