package controller

import (
	"strconv"

	"principles/internal/haptics"
	"principles/internal/tip"
	"principles/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgTip handles keys while the tip overlay is open. With the custom
// amount field focused, keys other than tab, enter and esc go to the field.
func handleKeyMsgTip(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Esc):
		if m.TipInput.Focused() {
			m.TipInput.Blur()
			return m, nil
		}
		closeTipOverlay(m)
		return m, nil

	case key.Matches(msg, m.Keys.Tab):
		if m.TipInput.Focused() {
			m.TipInput.Blur()
			return m, nil
		}
		return m, m.TipInput.Focus()

	case key.Matches(msg, m.Keys.Enter):
		return submitTip(m)
	}

	if m.TipInput.Focused() {
		var cmd tea.Cmd
		m.TipInput, cmd = m.TipInput.Update(msg)
		m.TipSelection.SetCustom(m.TipInput.Value())
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Prev):
		m.TipSelection.Cycle(-1)
		m.TipInput.SetValue("")
		haptics.Safe(m.Haptics.Selection())
	case key.Matches(msg, m.Keys.Next):
		m.TipSelection.Cycle(1)
		m.TipInput.SetValue("")
		haptics.Safe(m.Haptics.Selection())
	case msg.String() == "q":
		closeTipOverlay(m)
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.TipSelection.Presets()) {
			m.TipSelection.Select(n - 1)
			m.TipInput.SetValue("")
			haptics.Safe(m.Haptics.Selection())
		}
	}
	return m, nil
}

// submitTip sends the selected amount. Ignored while a tip is in flight.
func submitTip(m *model.Model) (*model.Model, tea.Cmd) {
	if m.TipState == model.ActionProcessing || m.Tip == nil {
		return m, nil
	}
	p := tip.Payload{
		RecipientAddress: m.TipTarget.Address,
		RecipientFID:     m.TipTarget.FID,
		Amount:           m.TipSelection.Final(),
	}
	m.TipState = model.ActionProcessing
	haptics.Safe(m.Haptics.Selection())
	return m, tea.Batch(model.TipCmd(m.Tip, p), m.Spinner.Tick)
}
