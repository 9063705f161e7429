package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"principles/internal/tui/design"
	"principles/internal/tui/model"
)

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("Keys")
	body := m.Help.FullHelpView(m.Keys.FullHelp())
	mouse := design.DimStyle.Render("mouse: drag to swipe, click the left or right edge to step")
	content := lipgloss.JoinVertical(lipgloss.Center, title, body, "", mouse)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		design.CenteredOverlayContainerStyle.Render(content))
}

func renderTipOverlay(m *model.Model) string {
	sel := m.TipSelection
	custom := sel.UsingCustom()

	var presets []string
	for i, a := range sel.Presets() {
		label := fmt.Sprintf("%d: $%s", i+1, a)
		style := design.ButtonSecondaryStyle
		if i == sel.Selected() && !custom {
			style = design.ButtonStyle
		}
		presets = append(presets, style.Render(label))
	}
	presetRow := lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(presets, " ")...)

	inputStyle := design.InputStyle
	if m.TipInput.Focused() {
		inputStyle = design.InputFocusedStyle
	}
	input := inputStyle.Render(m.TipInput.View())

	summary := []string{
		fmt.Sprintf("Amount:   %s USDC", sel.Final()),
		"Network:  Base",
	}
	if m.TipTarget.FID > 0 {
		summary = append(summary, fmt.Sprintf("To:       fid %d", m.TipTarget.FID))
	}

	footer := design.DimStyle.Render("←/→ preset · tab custom · enter send · esc close")
	if m.TipState == model.ActionProcessing {
		footer = m.Spinner.View() + " opening wallet…"
	}

	title := "Tip the author"
	if m.Author != "" {
		title = "Tip " + m.Author
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		design.HelpTitleStyle.Render(title),
		presetRow,
		"",
		input,
		"",
		design.TextStyle.Render(strings.Join(summary, "\n")),
		"",
		footer,
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		design.CenteredOverlayContainerStyle.Render(content))
}

func joinWithGap(items []string, gap string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(items)-1)
	for i, it := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, it)
	}
	return out
}

func renderLogOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("Activity Log  (↑/↓ scroll  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.LogOverlayStyle.
		Width(maxInt(0, m.Width-design.LogOverlayStyle.GetHorizontalBorderSize())).
		Height(maxInt(0, m.Height-design.LogOverlayStyle.GetVerticalBorderSize())).
		Render(content)
}

// LogViewportSize is the viewport size that fits the log overlay.
func LogViewportSize(width, height int) (int, int) {
	w := width - design.LogOverlayStyle.GetHorizontalFrameSize()
	h := height - design.LogOverlayStyle.GetVerticalFrameSize() - 2 // title + margin
	return maxInt(0, w), maxInt(0, h)
}

// PrepareLogContent styles lines by level and truncates them to maxWidth cells.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if maxWidth > 0 {
			l = runewidth.Truncate(l, maxWidth, "…")
		}
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
