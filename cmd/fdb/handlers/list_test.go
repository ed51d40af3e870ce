package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fdb/internal/errdefs"
	"github.com/imamik/fdb/internal/runner"
)

func TestList(t *testing.T) {
	restore, fake := stubSetup(func(runner.Call) (runner.Result, error) {
		return runner.Result{Stdout: "NAME   STATUS\nmydb   Running\n"}, nil
	})
	defer restore()

	err := List(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, fake.Calls, 1)
	assert.Contains(t, fake.Calls[0].Line(), "cluster list")
}

func TestListToolFailure(t *testing.T) {
	restore, _ := stubSetup(func(runner.Call) (runner.Result, error) {
		return runner.Result{Stderr: "no route to host"}, errors.New("exit status 1")
	})
	defer restore()

	err := List(context.Background(), ListOptions{})
	require.Error(t, err)
	assert.True(t, errdefs.IsToolError(err))
	assert.True(t, strings.Contains(err.Error(), "no route to host"))
}
