package controller

import (
	"fmt"

	"principles/internal/tui/model"
	"principles/internal/tui/view"
	"principles/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update runs one message through the dispatcher and then collects the ticks
// the deck scheduled while handling it.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	m, cmd := mainControllerDispatch(m, msg)
	if m.Scheduler == nil {
		return m, cmd
	}
	ticks := m.Scheduler.Drain()
	if len(ticks) == 0 {
		return m, cmd
	}
	return m, tea.Batch(append([]tea.Cmd{cmd}, ticks...)...)
}

// mainControllerDispatch is the central message routing function for the TUI application.
// It receives all Bubble Tea messages and directs them to the appropriate handler functions
// based on the message type and current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg, model.ScheduledTaskMsg:
		// No log for these frequent or self-referential messages
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T -- Value: %v", msg, msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return quit(m)
		}
		if m.CurrentAppMode == model.ModeTipOverlay {
			return handleKeyMsgTip(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ScheduledTaskMsg:
		if m.Scheduler != nil && !m.Scheduler.Fire(msg.ID) {
			LogDebug(m, controllerDispatchSubsystem, "Scheduled task %d already stopped", msg.ID)
		}
		return m, nil

	case model.ShareResultMsg:
		return handleShareResult(m, msg)
	case model.TipResultMsg:
		return handleTipResult(m, msg)
	case model.LinkOpenedMsg:
		return handleLinkOpened(m, msg)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		if m.ShareState == model.ActionSuccess || m.ShareState == model.ActionError {
			m.ShareState = model.ActionIdle
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Busy() {
			return m, nil
		}
		var spinCmd tea.Cmd
		m.Spinner, spinCmd = m.Spinner.Update(msg)
		return m, spinCmd

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		if m.CurrentAppMode == model.ModeTipOverlay && m.TipInput.Focused() {
			var cmd tea.Cmd
			m.TipInput, cmd = m.TipInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ActivityLogDirty {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Keep building."
	m.Deck.Close()
	return m, tea.Quit
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// Debug entries only reach the log overlay in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}
