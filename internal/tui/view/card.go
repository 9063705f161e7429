package view

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"principles/internal/card"
	"principles/internal/tui/design"
	"principles/internal/tui/model"
)

// fadedOpacity is where the card switches to its faint style while dragging.
const fadedOpacity = 0.75

// renderCardArea draws the card inside a block of the given width whose
// height is the card's bounds plus vertical centering.
func renderCardArea(m *model.Model) string {
	bounds := CardBounds(m.Width, m.Height)
	if bounds.W <= 4 || bounds.H <= 2 {
		return ""
	}

	st := m.Deck.State()
	unit := m.Renderer.Project(st.Index)
	visual := card.Transform(st.Offset, st.Animating())

	style := design.CardStyle
	switch {
	case visual.Opacity == 0:
		style = design.CardHiddenStyle
	case unit.Kind == card.KindEnd:
		style = design.CardEndStyle
	case visual.Opacity < fadedOpacity:
		style = design.CardDraggingStyle
	}

	innerW := bounds.W - style.GetHorizontalFrameSize()
	innerH := bounds.H - style.GetVerticalFrameSize()
	content := ""
	if visual.Opacity > 0 {
		content = cardContent(m, unit, innerW, innerH)
	}
	rendered := style.
		Width(bounds.W - style.GetHorizontalBorderSize()).
		Height(bounds.H - style.GetVerticalBorderSize()).
		MaxHeight(bounds.H).
		Render(content)

	shift := 0
	if m.UnitsPerCell > 0 {
		shift = int(math.Round(visual.TranslateX / m.UnitsPerCell))
	}
	left := clampInt(bounds.X+shift, 0, maxInt(0, m.Width-bounds.W))

	pad := strings.Repeat(" ", left)
	lines := strings.Split(rendered, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	top := strings.Repeat("\n", maxInt(0, bounds.Y-1))
	return top + strings.Join(lines, "\n")
}

func cardContent(m *model.Model, unit card.Unit, width, height int) string {
	var lines []string
	if unit.Kind == card.KindEnd {
		lines = append(lines, design.HeadlineStyle.Render(unit.Headline()), "")
		lines = append(lines, design.TextSecondaryStyle.Render("r back to #1 · s share · t tip"))
		if m.Author != "" {
			lines = append(lines, "", design.AttributionStyle.Render("by "+m.Author))
		}
		return clipLines(centerLines(lines, width), height)
	}

	lines = append(lines, design.ProgressStyle.Render(unit.ProgressLabel()), "")
	for _, l := range WrapText(unit.Headline(), width) {
		lines = append(lines, design.HeadlineStyle.Render(l))
	}
	return clipLines(lines, height)
}

func centerLines(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, l)
	}
	return out
}

func clipLines(lines []string, height int) string {
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
