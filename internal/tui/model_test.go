//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/vito/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// stubSource is a Source that never produces an update.
type stubSource struct{}

func (s *stubSource) Read() (*progrock.StatusUpdate, error) {
	return nil, nil
}

func TestModel_Update_AddsRunningPhase(t *testing.T) {
	m := NewModel(&stubSource{})

	update := &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "install missing packages"},
		},
	}

	_, cmd := m.Update(MsgUpdate{Update: update})

	assert.Len(t, m.phases, 1)
	assert.Equal(t, "1", m.phases[0].ID)
	assert.Equal(t, statusRunning, m.phases[0].Status)
	// The model keeps reading from the stream
	assert.NotNil(t, cmd)
}

func TestModel_Update_CompletesPhase(t *testing.T) {
	m := NewModel(&stubSource{})
	m.phases = []PhaseState{
		{ID: "1", Name: "install missing packages", Status: statusRunning},
	}

	now := timestamppb.New(time.Now())
	update := &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "install missing packages", Completed: now},
		},
	}

	m.Update(MsgUpdate{Update: update})

	assert.Equal(t, statusCompleted, m.phases[0].Status)
}

func TestModel_Update_FailsPhase(t *testing.T) {
	m := NewModel(&stubSource{})
	m.phases = []PhaseState{
		{ID: "1", Name: "remove extra packages (pass 1)", Status: statusRunning},
	}

	now := timestamppb.New(time.Now())
	errMsg := "pip command failed"
	update := &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "remove extra packages (pass 1)", Completed: now, Error: &errMsg},
		},
	}

	m.Update(MsgUpdate{Update: update})

	assert.Equal(t, statusFailed, m.phases[0].Status)
}

func TestModel_Update_CachedPhase(t *testing.T) {
	m := NewModel(&stubSource{})

	update := &progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "install missing packages", Cached: true},
		},
	}

	m.Update(MsgUpdate{Update: update})

	assert.Equal(t, statusCached, m.phases[0].Status)
}

func TestModel_Update_StreamEndedQuits(t *testing.T) {
	m := NewModel(&stubSource{})

	_, cmd := m.Update(MsgStreamEnded{})

	assert.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Update_CtrlCQuits(t *testing.T) {
	m := NewModel(&stubSource{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_View_RendersPhases(t *testing.T) {
	m := NewModel(&stubSource{})
	m.phases = []PhaseState{
		{ID: "1", Name: "install missing packages", Status: statusCompleted},
		{ID: "2", Name: "remove extra packages (pass 1)", Status: statusRunning},
	}

	output := m.View()

	assert.Contains(t, output, "install missing packages")
	assert.Contains(t, output, "remove extra packages (pass 1)")
	assert.Contains(t, output, "✓")
}

func TestModel_View_OverflowShowsTail(t *testing.T) {
	m := NewModel(&stubSource{})
	m.height = 2
	m.phases = []PhaseState{
		{ID: "1", Name: "phase one", Status: statusCompleted},
		{ID: "2", Name: "phase two", Status: statusCompleted},
		{ID: "3", Name: "phase three", Status: statusRunning},
	}

	output := m.View()

	assert.NotContains(t, output, "phase one")
	assert.Contains(t, output, "phase two")
	assert.Contains(t, output, "phase three")
}
