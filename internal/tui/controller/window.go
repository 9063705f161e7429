package controller

import (
	"principles/internal/tui/model"
	"principles/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions when the window is resized.
// An in-progress drag is dropped because the card bounds it was measured against have moved.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	m.LogViewport.Width, m.LogViewport.Height = view.LogViewportSize(msg.Width, msg.Height)
	m.ActivityLogDirty = true

	if m.Drag.Active {
		m.Deck.EndGesture(m.Units(m.Drag.StartX), m.Now())
		m.Drag = model.DragState{}
	}
	return m, nil
}
