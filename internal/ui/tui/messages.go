// Package tui provides a Bubble Tea-based terminal UI for database
// cluster provisioning.
package tui

// PhaseMsg reports progress of a provisioning phase.
type PhaseMsg struct {
	Phase string
	Done  bool
	Err   error
}

// StatusMsg carries the latest cluster status observed by the wait
// loop.
type StatusMsg struct {
	Status string
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the operation is complete.
type DoneMsg struct{}
