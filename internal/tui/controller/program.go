package controller

import (
	"principles/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the deck. Mouse cell motion
// is enabled so that drags arrive as press, motion and release events.
func NewProgram(m *model.Model, opts ...tea.ProgramOption) *tea.Program {
	app := NewAppModel(m)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(app, opts...)
}
