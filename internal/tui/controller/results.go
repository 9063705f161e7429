package controller

import (
	"errors"
	"fmt"

	"principles/internal/haptics"
	"principles/internal/share"
	"principles/internal/tip"
	"principles/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

func handleShareResult(m *model.Model, msg model.ShareResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		m.ShareState = model.ActionError
		haptics.Safe(m.Haptics.Notify(haptics.NotifyError))
		text := "Share failed: " + msg.Err.Error()
		if errors.Is(msg.Err, share.ErrNoComposer) {
			text = "Sharing is not available here"
		}
		return m, m.SetTransientStatus(text, model.StatusBarError)
	}

	m.ShareState = model.ActionSuccess
	haptics.Safe(m.Haptics.Notify(haptics.NotifySuccess))
	return m, m.SetTransientStatus("✓ Cast ready to post", model.StatusBarSuccess)
}

// handleTipResult closes the overlay on success. On failure the overlay stays
// open so the amount can be corrected.
func handleTipResult(m *model.Model, msg model.TipResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		m.TipState = model.ActionError
		haptics.Safe(m.Haptics.Notify(haptics.NotifyError))
		LogError(controllerSubsystem, msg.Err, "tip failed")

		text := "Tip failed: " + msg.Err.Error()
		switch {
		case errors.Is(msg.Err, tip.ErrInvalidAmount):
			text = "Enter an amount greater than 0"
		case errors.Is(msg.Err, tip.ErrInvalidRecipient):
			text = "Tip recipient is misconfigured"
		}
		return m, m.SetTransientStatus(text, model.StatusBarError)
	}

	m.TipState = model.ActionSuccess
	haptics.Safe(m.Haptics.Notify(haptics.NotifySuccess))
	m.TipSelection.SetCustom("")
	m.TipInput.SetValue("")
	if m.CurrentAppMode == model.ModeTipOverlay {
		closeTipOverlay(m)
	}
	m.TipState = model.ActionIdle
	return m, m.SetTransientStatus(
		fmt.Sprintf("Payment request for %s USDC opened", msg.Receipt.Payload.Amount),
		model.StatusBarSuccess,
	)
}

func handleLinkOpened(m *model.Model, msg model.LinkOpenedMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "failed to open %s", msg.Target)
		return m, m.SetTransientStatus("Could not open link", model.StatusBarError)
	}
	LogInfo(controllerSubsystem, "opened %s", msg.Target)
	return m, nil
}
