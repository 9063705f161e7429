package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"principles/internal/tui/design"
	"principles/internal/tui/model"
)

func renderHeader(m *model.Model) string {
	title := "Builder Principles"
	if m.Author != "" {
		title = fmt.Sprintf("%s (%s)", title, m.Author)
	}
	return design.CenterHorizontal(m.Width, design.TextSecondaryStyle.Render(title))
}

func renderHints(m *model.Model) string {
	return design.CenterHorizontal(m.Width, m.Help.ShortHelpView(m.Keys.ShortHelp()))
}

// shareLabel mirrors the share button: idle, in flight, done or failed.
func shareLabel(m *model.Model) string {
	switch m.ShareState {
	case model.ActionProcessing:
		return m.Spinner.View() + " sharing"
	case model.ActionSuccess:
		return design.TextSuccessStyle.Render("✓ shared")
	case model.ActionError:
		return design.TextErrorStyle.Render("try again")
	default:
		return ""
	}
}

func statusStyle(t model.MessageType) lipgloss.Style {
	switch t {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}

func renderStatusBar(m *model.Model) string {
	style := design.StatusBarStyle
	left := "swipe, tap the edges, or use ←/→"
	if m.StatusBarMessage != "" {
		style = statusStyle(m.StatusBarMessageType)
		left = m.StatusBarMessage
	} else if m.Deck.State().Terminal() {
		left = "that's all of them"
	}

	right := shareLabel(m)
	if m.TipState == model.ActionProcessing {
		right = m.Spinner.View() + " tipping"
	}

	inner := m.Width - style.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return style.Width(m.Width).MaxWidth(m.Width).Render(line)
}
