package controller

import (
	"principles/internal/tui/model"
	"principles/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg turns left-button drags on the card into deck gestures.
// A release without horizontal movement is a tap.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLogOverlay {
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}
	if m.CurrentAppMode != model.ModeDeck {
		return m, nil
	}

	bounds := view.CardBounds(m.Width, m.Height)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !bounds.Contains(msg.X, msg.Y) {
			return m, nil
		}
		m.Drag = model.DragState{Active: true, StartX: msg.X, LastX: msg.X}
		m.Deck.BeginGesture(m.Units(msg.X), m.Now())

	case tea.MouseActionMotion:
		if !m.Drag.Active {
			return m, nil
		}
		m.Drag.LastX = msg.X
		if msg.X != m.Drag.StartX {
			m.Drag.Moved = true
		}
		m.Deck.UpdateGesture(m.Units(msg.X))

	case tea.MouseActionRelease:
		if !m.Drag.Active {
			return m, nil
		}
		drag := m.Drag
		m.Drag = model.DragState{}
		m.Deck.EndGesture(m.Units(msg.X), m.Now())

		if !drag.Moved && msg.X == drag.StartX {
			localX := float64(msg.X-bounds.X) + 0.5
			m.Deck.TapNavigate(localX, float64(bounds.W))
		}
	}
	return m, nil
}
