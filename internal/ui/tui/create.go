package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RunCreateTUI wraps the provisioning flow with a Bubble Tea TUI.
// run executes the actual provisioning, sending phase updates on the
// channel and reporting observed cluster statuses through status.
func RunCreateTUI(
	clusterName, service string,
	timeout time.Duration,
	run func(ch chan<- PhaseMsg, status func(string)) error,
) error {
	m := NewCreateModel(clusterName, service, timeout)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Run provisioning in a background goroutine
	go func() {
		ch := make(chan PhaseMsg, 10)
		done := make(chan error, 1)
		go func() {
			defer close(ch)
			done <- run(ch, func(status string) {
				p.Send(StatusMsg{Status: status})
			})
		}()

		for msg := range ch {
			p.Send(msg)
		}

		if err := <-done; err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	return nil
}
