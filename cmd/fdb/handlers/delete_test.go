package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fdb/internal/errdefs"
)

func TestDeleteConfirmed(t *testing.T) {
	restore, fake := stubSetup(nil)
	defer restore()
	origConfirm := confirmDelete
	defer func() { confirmDelete = origConfirm }()
	confirmDelete = func(context.Context, string) (string, error) { return "y", nil }

	err := Delete(context.Background(), DeleteOptions{Name: "mydb"})
	require.NoError(t, err)

	require.NotEmpty(t, fake.Calls)
	assert.Contains(t, fake.Calls[0].Line(), "cluster delete mydb")

	// Exposure cleanup for every service follows the delete.
	var cleanups int
	for _, call := range fake.Calls[1:] {
		if strings.Contains(call.Line(), "-external") {
			cleanups++
		}
	}
	assert.Equal(t, 4, cleanups)
}

func TestDeleteDeclinedAborts(t *testing.T) {
	restore, fake := stubSetup(nil)
	defer restore()
	origConfirm := confirmDelete
	defer func() { confirmDelete = origConfirm }()
	confirmDelete = func(context.Context, string) (string, error) { return "n", nil }

	err := Delete(context.Background(), DeleteOptions{Name: "mydb"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrAborted)
	assert.Empty(t, fake.Calls)
}

func TestDeleteAutoApproveSkipsPrompt(t *testing.T) {
	restore, fake := stubSetup(nil)
	defer restore()
	origConfirm := confirmDelete
	defer func() { confirmDelete = origConfirm }()
	confirmDelete = func(context.Context, string) (string, error) {
		t.Error("confirm should not be called with --yes")
		return "n", nil
	}

	err := Delete(context.Background(), DeleteOptions{Name: "mydb", AutoApprove: true})
	require.NoError(t, err)
	require.NotEmpty(t, fake.Calls)
	assert.Contains(t, fake.Calls[0].Line(), "--auto-approve")
}
