package controller

import (
	"context"
	"strings"

	"principles/internal/deck"
	"principles/internal/haptics"
	"principles/internal/session"
	"principles/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// handleKeyMsgGlobal handles keys in deck mode and in the help and log overlays.
func handleKeyMsgGlobal(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		switch {
		case key.Matches(msg, m.Keys.Quit) && msg.String() == "q":
			return quit(m)
		case key.Matches(msg, m.Keys.Help), key.Matches(msg, m.Keys.Esc):
			m.CurrentAppMode = m.LastAppMode
		}
		return m, nil

	case model.ModeLogOverlay:
		switch {
		case key.Matches(msg, m.Keys.ToggleLog), key.Matches(msg, m.Keys.Esc):
			m.CurrentAppMode = m.LastAppMode
			return m, nil
		case key.Matches(msg, m.Keys.Copy):
			return copyLogs(m)
		}
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)

	case key.Matches(msg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(msg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.Keys.Prev):
		m.Deck.Navigate(deck.MovePrev, deck.SourceKeyboard)
		return m, nil

	case key.Matches(msg, m.Keys.Next):
		m.Deck.Navigate(deck.MoveNext, deck.SourceKeyboard)
		return m, nil

	case key.Matches(msg, m.Keys.Restart):
		if m.Deck.Restart() {
			LogDebug(m, controllerSubsystem, "restarted deck")
		}
		return m, nil

	case key.Matches(msg, m.Keys.Share):
		return startShare(m)

	case key.Matches(msg, m.Keys.Copy):
		return copyShareText(m)

	case key.Matches(msg, m.Keys.Tip):
		return openTipOverlay(m)

	case key.Matches(msg, m.Keys.Attribution):
		if m.Links == nil || m.AttributionURL == "" {
			return m, nil
		}
		return m, model.OpenLinkCmd(m.Links, m.AttributionURL)
	}

	return m, nil
}

// startShare composes a cast for the current card. Ignored while a share is in flight.
func startShare(m *model.Model) (*model.Model, tea.Cmd) {
	if m.ShareState == model.ActionProcessing || m.Share == nil || m.Templates == nil {
		return m, nil
	}
	haptics.Safe(m.Haptics.Selection())

	req, err := m.Templates.ForUnit(m.CurrentUnit())
	if err != nil {
		LogError(controllerSubsystem, err, "failed to build share text")
		m.ShareState = model.ActionError
		return m, m.SetTransientStatus("Share failed: "+err.Error(), model.StatusBarError)
	}

	m.ShareState = model.ActionProcessing
	return m, tea.Batch(model.ShareCmd(m.Share, req), m.Spinner.Tick)
}

// copyShareText puts the cast for the current card on the clipboard. Friend
// mentions are not resolved so that this never blocks on the network.
func copyShareText(m *model.Model) (*model.Model, tea.Cmd) {
	if m.Share == nil || m.Templates == nil {
		return m, nil
	}
	req, err := m.Templates.ForUnit(m.CurrentUnit())
	if err != nil {
		LogError(controllerSubsystem, err, "failed to build share text")
		return m, m.SetTransientStatus("Copy failed: "+err.Error(), model.StatusBarError)
	}

	offline := *m.Share
	offline.Friends = nil
	cast := offline.Prepare(context.Background(), req)

	text := strings.Join(append([]string{cast.Text}, cast.Embeds...), "\n")
	if err := clipboardWriteAll(text); err != nil {
		LogError(controllerSubsystem, err, "failed to copy share text")
		return m, m.SetTransientStatus("Failed to copy to clipboard", model.StatusBarError)
	}
	haptics.Safe(m.Haptics.Selection())
	return m, m.SetTransientStatus("Share text copied to clipboard", model.StatusBarSuccess)
}

func copyLogs(m *model.Model) (*model.Model, tea.Cmd) {
	if err := clipboardWriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
		LogError(controllerSubsystem, err, "failed to copy logs")
		return m, m.SetTransientStatus("Failed to copy logs", model.StatusBarError)
	}
	return m, m.SetTransientStatus("Logs copied to clipboard", model.StatusBarSuccess)
}

func openTipOverlay(m *model.Model) (*model.Model, tea.Cmd) {
	if m.Tip == nil {
		return m, m.SetTransientStatus("Tipping is not configured", model.StatusBarWarning)
	}
	haptics.Safe(m.Haptics.Selection())
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = model.ModeTipOverlay
	m.TipInput.Blur()
	m.TipInput.SetValue(m.TipSelection.Custom())
	if m.Session != nil {
		m.Session.SetTab(session.TabWallet)
	}
	return m, nil
}

func closeTipOverlay(m *model.Model) {
	m.TipInput.Blur()
	m.CurrentAppMode = model.ModeDeck
	if m.Session != nil {
		m.Session.SetTab(session.TabHome)
	}
}
