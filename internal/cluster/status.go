package cluster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/imamik/fdb/internal/errdefs"
)

// StatusRunning is the kbcli status value that ends the wait loop.
const StatusRunning = "Running"

// StatusParser extracts a cluster status from kbcli cluster list
// output. ok is false when no data row is present.
type StatusParser func(stdout string) (status string, ok bool)

// ParseStatusColumn reads the STATUS column from kbcli cluster list
// output: a header row followed by one whitespace-separated data row,
// status in the fifth column.
func ParseStatusColumn(stdout string) (string, bool) {
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) < 2 {
		return "", false
	}
	cols := strings.Fields(lines[1])
	if len(cols) < 5 {
		return "", false
	}
	return cols[4], true
}

// hasDataRow reports whether tabular output contains at least one
// non-empty row beyond the header.
func hasDataRow(stdout string) bool {
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	return len(lines) >= 2 && strings.TrimSpace(lines[1]) != ""
}

// NormalizeQuantity converts a sizing value for kbcli: "2Gi" or
// "0.8Gi" become the bare number, unit is Gi. The numeric text is
// preserved verbatim so "0.8" does not pick up float formatting.
func NormalizeQuantity(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	num := trimmed
	if cut, found := strings.CutSuffix(trimmed, "Gi"); found {
		num = cut
	} else if cut, found := strings.CutSuffix(trimmed, "gi"); found {
		num = cut
	}
	num = strings.TrimSpace(num)

	parsed, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", fmt.Errorf("%w: invalid quantity %q (expected number or e.g. 2Gi)", errdefs.ErrInvalidInput, s)
	}
	if parsed <= 0 {
		return "", fmt.Errorf("%w: quantity %q must be positive", errdefs.ErrInvalidInput, s)
	}
	return num, nil
}

// Affirmative reports whether a confirmation answer means yes.
// Only "y" and "yes" (case-insensitive) proceed.
func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
