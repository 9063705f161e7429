package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"principles/internal/card"
	"principles/internal/deck"
	"principles/internal/haptics"
	"principles/internal/opener"
	"principles/internal/session"
	"principles/internal/share"
	"principles/internal/tip"
	"principles/internal/tui/design"
	"principles/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "back to #1"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Tip: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tip"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy share text"),
		),
		Attribution: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "open author profile"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "custom amount"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// Deps are the collaborators the TUI drives. Deck must be built with
// Scheduler so that transitions settle on the event loop.
type Deps struct {
	Deck           *deck.Controller
	Scheduler      *TickScheduler
	Renderer       *card.Renderer
	Session        *session.Session
	Share          *share.Gateway
	Templates      *share.Templates
	Tip            *tip.Gateway
	TipTarget      TipTarget
	TipSelection   *tip.Selection
	Haptics        haptics.Dispatcher
	Links          opener.Opener
	AttributionURL string
	Author         string
	UnitsPerCell   float64
	StatusDuration time.Duration
	DebugMode      bool
	LogChannel     <-chan logging.LogEntry
}

// InitialModel constructs the initial model with sensible defaults.
func InitialModel(d Deps) *Model {
	ti := textinput.New()
	ti.Placeholder = "custom amount"
	ti.CharLimit = 12
	ti.Width = 14
	ti.Prompt = "$ "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(design.ColorPrimary)

	units := d.UnitsPerCell
	if units <= 0 {
		units = DefaultUnitsPerCell
	}
	h := d.Haptics
	if h == nil {
		h = haptics.Off{}
	}
	sel := d.TipSelection
	if sel == nil {
		sel = tip.NewSelection(nil, tip.DefaultPresetIndex)
	}

	return &Model{
		CurrentAppMode: ModeDeck,
		LastAppMode:    ModeDeck,
		DebugMode:      d.DebugMode,

		Deck:         d.Deck,
		Scheduler:    d.Scheduler,
		Renderer:     d.Renderer,
		Session:      d.Session,
		UnitsPerCell: units,
		Now:          time.Now,

		Share:          d.Share,
		Templates:      d.Templates,
		Tip:            d.Tip,
		TipTarget:      d.TipTarget,
		TipSelection:   sel,
		TipInput:       ti,
		Haptics:        h,
		Links:          d.Links,
		AttributionURL: d.AttributionURL,
		Author:         d.Author,

		LogViewport:    viewport.New(0, 0),
		Spinner:        s,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		StatusDuration: d.StatusDuration,
		LogChannel:     d.LogChannel,
	}
}

// Init starts listening for log entries.
func (m *Model) Init() tea.Cmd {
	return ListenForLogEntriesCmd(m.LogChannel)
}
