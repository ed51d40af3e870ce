package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fdb/internal/util/prerequisites"
)

func TestDoctorAllToolsPresent(t *testing.T) {
	restore, _ := stubSetup(nil)
	defer restore()

	err := Doctor(context.Background())
	require.NoError(t, err)
}

func TestDoctorMissingTool(t *testing.T) {
	orig := checkDefaultPrereqs
	defer func() { checkDefaultPrereqs = orig }()

	missing := prerequisites.Tool{Name: "kbcli", Required: true, InstallURL: "https://kubeblocks.io"}
	checkDefaultPrereqs = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{
				{Tool: missing},
				{Tool: prerequisites.Tool{Name: "kubectl", Required: true}, Found: true, Path: "/usr/bin/kubectl"},
			},
			Missing: []prerequisites.Tool{missing},
		}
	}

	err := Doctor(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kbcli")
}
