package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/fdb/internal/cluster"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderPhases(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("fdb: %s", m.ClusterName)
	if m.Service != "" {
		title += fmt.Sprintf(" (%s)", m.Service)
	}
	b.WriteString(titleStyle.Render(title))

	status := " "
	switch {
	case m.Done:
		status += readyStyle.Render(cluster.StatusRunning)
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Status == cluster.StatusRunning:
		status += readyStyle.Render(cluster.StatusRunning)
	case m.Status != "":
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + warningStyle.Render(m.Status)
	default:
		status += dimStyle.Render("Provisioning...")
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	progress := calculateProgress(m)
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = m.Width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	filled := int(float64(barWidth) * progress)
	if filled > barWidth {
		filled = barWidth
	}

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	pct := int(progress * 100)
	fmt.Fprintf(b, "  %s %d%%\n", bar, pct)
}

func renderPhases(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Provisioning"))
	b.WriteString("\n")
	for _, phase := range m.Phases {
		var icon string
		var style styleFunc
		switch {
		case phase.Err != nil:
			icon = crossMark
			style = sf(failedStyle)
		case phase.Done:
			icon = checkMark
			style = sf(readyStyle)
		case phase.Active:
			icon = currentSpinner(m.SpinnerFrame)
			style = sf(activeStyle)
		default:
			icon = pending
			style = sf(dimStyle)
		}
		name := phase.Name
		if phase.Key == PhaseWait && phase.Active && m.Status != "" {
			name += fmt.Sprintf(" (%s)", m.Status)
		}
		fmt.Fprintf(b, "    %s %s\n", style(icon), style(name))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	parts := []string{
		fmt.Sprintf("elapsed %s", formatDuration(time.Since(m.StartTime))),
	}
	if m.Timeout > 0 && !m.Done {
		parts = append(parts, fmt.Sprintf("timeout %s", formatDuration(m.Timeout)))
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("  %s  |  q: quit", strings.Join(parts, "  |  "))))
	b.WriteString("\n")
}

// Helper functions

func currentSpinner(frame int) string {
	if len(spinnerFrames) == 0 {
		return spinner
	}
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func calculateProgress(m Model) float64 {
	if m.Done {
		return 1.0
	}

	done := 0
	active := -1
	for i, p := range m.Phases {
		if p.Done {
			done++
		}
		if p.Active {
			active = i
		}
	}
	progress := float64(done) / float64(len(m.Phases))

	// The wait phase dominates wall-clock time, so blend in the
	// elapsed fraction of the wait budget while it is active.
	if active >= 0 && m.Phases[active].Key == PhaseWait && m.Timeout > 0 {
		frac := float64(time.Since(m.StartTime)) / float64(m.Timeout)
		if frac > 1 {
			frac = 1
		}
		progress += frac / float64(len(m.Phases))
	}

	if progress > 1.0 {
		progress = 1.0
	}
	return progress
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
