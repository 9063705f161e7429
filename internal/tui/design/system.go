// Package design holds the colours and lipgloss styles of the deck.
package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Card size limits in terminal cells, border included.
const (
	CardMaxWidth  = 64
	CardMinWidth  = 24
	CardMaxHeight = 14
	CardMinHeight = 7
)

// Palette. Every colour adapts to light and dark terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#4338CA", Dark: "#818CF8"}
	ColorEnd     = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

	ColorSuccess = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}

	ColorInk      = lipgloss.AdaptiveColor{Light: "#1C1917", Dark: "#F5F5F4"}
	ColorInkSoft  = lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#A8A29E"}
	ColorInkFaint = lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#57534E"}
	ColorPaper    = lipgloss.AdaptiveColor{Light: "#FAFAF9", Dark: "#1C1917"}
	ColorRule     = lipgloss.AdaptiveColor{Light: "#D6D3D1", Dark: "#44403C"}
	ColorShelf    = lipgloss.AdaptiveColor{Light: "#E7E5E4", Dark: "#292524"}
)

// Text
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorInk)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorInkSoft)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	DimStyle           = lipgloss.NewStyle().Foreground(ColorInkFaint)
)

// Card
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Foreground(ColorInk).
			Padding(1, 2)

	// CardDraggingStyle is used once a dragged card has faded below three quarters.
	CardDraggingStyle = CardStyle.
				BorderForeground(ColorRule).
				Faint(true)

	// CardHiddenStyle keeps the frame but no content while a card animates out.
	CardHiddenStyle = CardStyle.
			BorderForeground(ColorRule).
			Foreground(ColorPaper)

	CardEndStyle = CardStyle.
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(ColorEnd)

	ProgressStyle    = lipgloss.NewStyle().Foreground(ColorInkSoft)
	HeadlineStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorInk)
	AttributionStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Underline(true)
)

// Status bar
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorShelf).
			Foreground(ColorInk).
			Padding(0, 1).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.Background(ColorSuccess).Foreground(ColorPaper)
	StatusBarErrorStyle   = StatusBarStyle.Background(ColorError).Foreground(ColorPaper)
	StatusBarWarningStyle = StatusBarStyle.Background(ColorWarning).Foreground(ColorPaper)
	StatusBarInfoStyle    = StatusBarStyle.Background(ColorPrimary).Foreground(ColorPaper)
)

// Tip dialog controls
var (
	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorPrimary).
			Foreground(ColorPaper).
			Bold(true)

	ButtonSecondaryStyle = ButtonStyle.
				Background(ColorShelf).
				Foreground(ColorInk).
				Bold(false)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorRule).
			Padding(0, 1)

	InputFocusedStyle = InputStyle.BorderForeground(ColorPrimary)
)

// Overlays
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Foreground(ColorInk)

	overlayFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorRule).
			Background(ColorPaper).
			Foreground(ColorInk)

	CenteredOverlayContainerStyle = overlayFrame.Padding(1, 3)
	LogOverlayStyle               = overlayFrame.Padding(0, 1)
)

// Log lines by level
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorInk)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorInkFaint).Italic(true)
)

// CenterHorizontal pads content so that it sits in the middle of width.
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	return lipgloss.NewStyle().
		PaddingLeft((width - contentWidth) / 2).
		Width(width).
		Render(content)
}

// Initialize tells lipgloss which variant of the adaptive colours to use.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
