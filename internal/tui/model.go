package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusCached    = "cached"
)

// PhaseState represents the current state of a reconciliation phase in the TUI.
type PhaseState struct {
	ID     string
	Name   string
	Status string // statusRunning, statusCompleted, statusFailed, statusCached
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	cached    lipgloss.Style
}

// Model is the Bubble Tea model for the TUI, tracking reconciliation phases
// as they appear on the status stream.
type Model struct {
	source  Source
	phases  []PhaseState
	width   int
	height  int
	spinner spinner.Model
	styles  styles
}

// NewModel creates a new TUI model reading from the given source.
func NewModel(src Source) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		source:  src,
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init initializes the model and starts reading from the stream.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForUpdate(m.source),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case MsgUpdate:
		return m.handleUpdate(msg)
	case MsgStreamEnded:
		return m, tea.Quit
	}
	return m, nil
}

// handleKeyMsg handles keyboard input messages.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	return m, nil
}

// handleWindowSizeMsg handles window resize messages.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

// handleSpinnerTick handles spinner animation tick messages.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleUpdate applies a status update and schedules the next read.
func (m *Model) handleUpdate(msg MsgUpdate) (tea.Model, tea.Cmd) {
	for _, v := range msg.Update.Vertexes {
		m.updateOrAddPhase(v)
	}
	return m, WaitForUpdate(m.source)
}

// updateOrAddPhase updates an existing phase or adds a new one.
func (m *Model) updateOrAddPhase(v *progrock.Vertex) {
	for i, existing := range m.phases {
		if existing.ID == v.Id {
			m.phases[i].Status = phaseStatus(v)
			return
		}
	}
	m.phases = append(m.phases, PhaseState{
		ID:     v.Id,
		Name:   v.Name,
		Status: phaseStatus(v),
	})
}

func phaseStatus(v *progrock.Vertex) string {
	switch {
	case v.Cached:
		return statusCached
	case v.Completed == nil:
		return statusRunning
	case v.Error != nil:
		return statusFailed
	default:
		return statusCompleted
	}
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	// Determine start index to handle overflow
	start := 0
	if len(m.phases) > m.height && m.height > 0 {
		start = len(m.phases) - m.height
	}

	for i := start; i < len(m.phases); i++ {
		p := m.phases[i]

		var icon string
		var style lipgloss.Style
		switch p.Status {
		case statusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusFailed:
			icon = "✗"
			style = m.styles.failed
		default:
			icon = "≡"
			style = m.styles.cached
		}

		line := fmt.Sprintf("%s %s\n", style.Render(icon), p.Name)
		s.WriteString(line)
	}

	return s.String()
}
