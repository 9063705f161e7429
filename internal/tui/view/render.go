package view

import (
	"strings"

	"principles/internal/tui/design"
	"principles/internal/tui/model"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeTipOverlay:
		return renderTipOverlay(m)
	}

	if m.Width == 0 || m.Height == 0 {
		return "Loading…"
	}
	return renderDeck(m)
}

func renderDeck(m *model.Model) string {
	header := renderHeader(m)
	cardArea := renderCardArea(m)
	hints := renderHints(m)
	status := renderStatusBar(m)

	used := 1 + strings.Count(cardArea, "\n") + 1 + 1 + 1
	fill := ""
	if n := m.Height - used; n > 0 {
		fill = strings.Repeat("\n", n)
	}
	return header + "\n" + cardArea + fill + "\n" + hints + "\n" + status
}
