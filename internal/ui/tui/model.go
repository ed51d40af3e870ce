package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Phase represents a provisioning phase for display.
type Phase struct {
	Name   string
	Key    string
	Done   bool
	Active bool
	Err    error
}

// Provisioning phase keys in order.
const (
	PhaseCreate      = "create"
	PhaseWait        = "wait"
	PhaseCredentials = "credentials"
	PhaseExpose      = "expose"
)

// Model is the Bubble Tea model for the provisioning dashboard.
type Model struct {
	// Cluster info
	ClusterName string
	Service     string

	// Provisioning phases
	Phases []Phase

	// Latest status reported by the wait loop
	Status string

	// Wait budget, used for the progress estimate
	StartTime time.Time
	Timeout   time.Duration

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool
}

// NewCreateModel creates a model for the create command dashboard.
func NewCreateModel(clusterName, service string, timeout time.Duration) Model {
	return Model{
		ClusterName: clusterName,
		Service:     service,
		StartTime:   time.Now(),
		Timeout:     timeout,
		Phases: []Phase{
			{Name: "Create cluster", Key: PhaseCreate},
			{Name: "Wait for Running", Key: PhaseWait},
			{Name: "Resolve credentials", Key: PhaseCredentials},
			{Name: "Expose endpoint", Key: PhaseExpose},
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}

	case StatusMsg:
		m.Status = msg.Status

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updatePhase(msg PhaseMsg) {
	idx := -1
	for i, phase := range m.Phases {
		if phase.Key == msg.Phase {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Mark previous phases as done
	for i := 0; i < idx; i++ {
		m.Phases[i].Done = true
		m.Phases[i].Active = false
	}

	if msg.Done {
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
	} else {
		m.Phases[idx].Active = true
	}

	if msg.Err != nil {
		m.Phases[idx].Err = msg.Err
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
