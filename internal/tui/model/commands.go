package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"principles/internal/opener"
	"principles/internal/share"
	"principles/internal/tip"
	"principles/pkg/logging"
)

const actionTimeout = 30 * time.Second

// ShareCmd composes req in the background.
func ShareCmd(gw *share.Gateway, req share.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		cast, err := gw.Share(ctx, req)
		return ShareResultMsg{Cast: cast, Err: err}
	}
}

// TipCmd sends p in the background.
func TipCmd(gw *tip.Gateway, p tip.Payload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		r, err := gw.Tip(ctx, p)
		return TipResultMsg{Receipt: r, Err: err}
	}
}

// OpenLinkCmd hands target to o in the background.
func OpenLinkCmd(o opener.Opener, target string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		return LinkOpenedMsg{Target: target, Err: o.Open(ctx, target)}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once the
// channel is closed so the listener stops re-arming.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
