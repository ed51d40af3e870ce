package cluster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fdb/internal/errdefs"
)

func TestParseStatusColumn(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		expected string
		ok       bool
	}{
		{
			name: "running cluster",
			stdout: "NAME   NAMESPACE   CLUSTER-DEFINITION   TERMINATION-POLICY   STATUS    CREATED-TIME\n" +
				"mydb   default     postgresql           Delete               Running   Feb 06,2026 15:01 UTC+0100\n",
			expected: "Running",
			ok:       true,
		},
		{
			name: "creating cluster",
			stdout: "NAME   NAMESPACE   CLUSTER-DEFINITION   TERMINATION-POLICY   STATUS     CREATED-TIME\n" +
				"mydb   default     redis                Delete               Creating   Feb 06,2026 15:01 UTC+0100\n",
			expected: "Creating",
			ok:       true,
		},
		{
			name:   "header only",
			stdout: "NAME   NAMESPACE   CLUSTER-DEFINITION   TERMINATION-POLICY   STATUS   CREATED-TIME\n",
			ok:     false,
		},
		{
			name:   "empty output",
			stdout: "",
			ok:     false,
		},
		{
			name:   "short data row",
			stdout: "NAME  STATUS\nmydb  Running\n",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := ParseStatusColumn(tt.stdout)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "2Gi", expected: "2"},
		{input: "0.8Gi", expected: "0.8"},
		{input: "3", expected: "3"},
		{input: "5gi", expected: "5"},
		{input: " 2Gi ", expected: "2"},
		{input: "abc", wantErr: true},
		{input: "Gi", wantErr: true},
		{input: "", wantErr: true},
		{input: "-1Gi", wantErr: true},
		{input: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeQuantity(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errdefs.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAffirmative(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", "YES", "Yes", " y "} {
		assert.True(t, Affirmative(answer), "answer %q should proceed", answer)
	}
	for _, answer := range []string{"", "n", "no", "maybe", "yess", "ye"} {
		assert.False(t, Affirmative(answer), "answer %q should abort", answer)
	}
}
