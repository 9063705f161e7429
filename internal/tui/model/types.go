package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"principles/internal/card"
	"principles/internal/deck"
	"principles/internal/haptics"
	"principles/internal/opener"
	"principles/internal/session"
	"principles/internal/share"
	"principles/internal/tip"
	"principles/pkg/logging"
)

// AppMode is what the screen is showing.
type AppMode int

const (
	ModeDeck AppMode = iota
	ModeTipOverlay
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String names the mode for debug logs.
func (m AppMode) String() string {
	switch m {
	case ModeDeck:
		return "Deck"
	case ModeTipOverlay:
		return "TipOverlay"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType picks the status bar colour.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// ActionState tracks an in-flight share or tip.
type ActionState int

const (
	ActionIdle ActionState = iota
	ActionProcessing
	ActionSuccess
	ActionError
)

// Constants for UI
const (
	MaxActivityLogLines   = 1000
	DefaultStatusDuration = 2 * time.Second
	DefaultUnitsPerCell   = 8
)

// KeyMap holds the deck key bindings.
type KeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	Restart     key.Binding
	Share       key.Binding
	Tip         key.Binding
	Copy        key.Binding
	Attribution key.Binding
	Help        key.Binding
	ToggleLog   key.Binding
	Tab         key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Share, k.Tip, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Restart},
		{k.Share, k.Copy, k.Tip, k.Attribution},
		{k.ToggleLog, k.Help, k.Quit},
	}
}

// TipTarget is who receives tips.
type TipTarget struct {
	Address string
	FID     int
}

// DragState is the mouse gesture in progress, in terminal cells.
type DragState struct {
	Active bool
	StartX int
	LastX  int
	Moved  bool
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	// Deck
	Deck         *deck.Controller
	Scheduler    *TickScheduler
	Renderer     *card.Renderer
	Session      *session.Session
	UnitsPerCell float64
	Drag         DragState
	Now          func() time.Time

	// Share and tip
	Share          *share.Gateway
	Templates      *share.Templates
	ShareState     ActionState
	Tip            *tip.Gateway
	TipTarget      TipTarget
	TipSelection   *tip.Selection
	TipInput       textinput.Model
	TipState       ActionState
	Haptics        haptics.Dispatcher
	Links          opener.Opener
	AttributionURL string
	Author         string

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusDuration       time.Duration
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// CurrentUnit projects the deck's current index.
func (m *Model) CurrentUnit() card.Unit {
	return m.Renderer.Project(m.Deck.State().Index)
}

// Units converts a terminal column to deck gesture units.
func (m *Model) Units(col int) float64 {
	return float64(col) * m.UnitsPerCell
}

// Busy reports whether a share or tip is in flight.
func (m *Model) Busy() bool {
	return m.ShareState == ActionProcessing || m.TipState == ActionProcessing
}

// SetStatusMessage shows message and returns a command that clears it after clearAfter.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// SetTransientStatus sets a status message that clears after StatusDuration.
func (m *Model) SetTransientStatus(message string, msgType MessageType) tea.Cmd {
	d := m.StatusDuration
	if d <= 0 {
		d = DefaultStatusDuration
	}
	return m.SetStatusMessage(message, msgType, d)
}
