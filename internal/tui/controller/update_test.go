package controller

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"principles/internal/card"
	"principles/internal/deck"
	"principles/internal/haptics"
	"principles/internal/share"
	"principles/internal/tui/model"
	"principles/pkg/logging"
)

func TestKeyboardNavigationSettlesOnTick(t *testing.T) {
	env := newTestEnv(t)

	cmd := env.send(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, env.m.Deck.State().Animating())
	assert.Equal(t, 0, env.m.Deck.State().Index)

	env.settle(t, cmd)
	assert.Equal(t, 1, env.m.Deck.State().Index)
	assert.False(t, env.m.Deck.State().Animating())
	assert.Equal(t, []deck.Intensity{deck.IntensityLight}, env.haptics.impacts)

	env.settle(t, env.send(keyRunes("h")))
	assert.Equal(t, 0, env.m.Deck.State().Index)
}

func TestPrevOnFirstCardIsNoop(t *testing.T) {
	env := newTestEnv(t)

	cmd := env.send(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	assert.False(t, env.m.Deck.State().Animating())
	assert.Empty(t, env.haptics.impacts)
}

func TestRestartFromLaterCard(t *testing.T) {
	env := newTestEnv(t)
	env.settle(t, env.send(tea.KeyMsg{Type: tea.KeyRight}))
	env.settle(t, env.send(tea.KeyMsg{Type: tea.KeyRight}))
	require.Equal(t, 2, env.m.Deck.State().Index)

	env.settle(t, env.send(keyRunes("r")))
	assert.Equal(t, 0, env.m.Deck.State().Index)
	assert.Equal(t, deck.IntensityHeavy, env.haptics.impacts[len(env.haptics.impacts)-1])
}

func TestScheduledTaskForUnknownID(t *testing.T) {
	env := newTestEnv(t)
	assert.NotPanics(t, func() { env.send(model.ScheduledTaskMsg{ID: 999}) })
}

func TestHelpAndLogOverlays(t *testing.T) {
	env := newTestEnv(t)

	env.send(keyRunes("?"))
	assert.Equal(t, model.ModeHelpOverlay, env.m.CurrentAppMode)
	env.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeDeck, env.m.CurrentAppMode)

	env.send(keyRunes("L"))
	assert.Equal(t, model.ModeLogOverlay, env.m.CurrentAppMode)
	// Deck keys do not reach the deck while the log is open.
	env.send(tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, env.m.Deck.State().Animating())
	env.send(keyRunes("L"))
	assert.Equal(t, model.ModeDeck, env.m.CurrentAppMode)
}

func TestQuit(t *testing.T) {
	env := newTestEnv(t)
	cmd := env.send(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, model.ModeQuitting, env.m.CurrentAppMode)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestShareCurrentCard(t *testing.T) {
	env := newTestEnv(t)

	cmd := env.send(keyRunes("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, model.ActionProcessing, env.m.ShareState)
	assert.Equal(t, 1, env.haptics.selections)

	// A second press while in flight is ignored.
	assert.Nil(t, env.send(keyRunes("s")))

	result, ok := find[model.ShareResultMsg](collect(cmd))
	require.True(t, ok)
	require.NoError(t, result.Err)
	require.Len(t, env.composer.casts, 1)
	first := env.m.CurrentUnit().Principle
	assert.Contains(t, env.composer.casts[0].Text, first.Text)
	assert.Equal(t, []string{"https://principles.test/share/1?utm_source=share-cast-unknown"}, env.composer.casts[0].Embeds)

	env.send(result)
	assert.Equal(t, model.ActionSuccess, env.m.ShareState)
	assert.Equal(t, model.StatusBarSuccess, env.m.StatusBarMessageType)
	assert.Equal(t, []haptics.Notification{haptics.NotifySuccess}, env.haptics.notes)

	env.send(model.ClearStatusBarMsg{})
	assert.Equal(t, model.ActionIdle, env.m.ShareState)
	assert.Empty(t, env.m.StatusBarMessage)
}

func TestShareFromEndCard(t *testing.T) {
	env := newTestEnv(t)
	env.m.Deck.Initialize(env.m.Renderer.Total() - 1)
	env.settle(t, env.send(tea.KeyMsg{Type: tea.KeyRight}))
	require.Equal(t, card.KindEnd, env.m.CurrentUnit().Kind)

	result, ok := find[model.ShareResultMsg](collect(env.send(keyRunes("s"))))
	require.True(t, ok)
	require.Len(t, env.composer.casts, 1)
	assert.Contains(t, env.composer.casts[0].Text, "I just read all")
	assert.Equal(t, []string{"https://principles.test"}, result.Cast.Embeds)
}

func TestShareFailure(t *testing.T) {
	env := newTestEnv(t)

	env.send(model.ShareResultMsg{Err: share.ErrNoComposer})
	assert.Equal(t, model.ActionError, env.m.ShareState)
	assert.Equal(t, "Sharing is not available here", env.m.StatusBarMessage)
	assert.Equal(t, []haptics.Notification{haptics.NotifyError}, env.haptics.notes)

	env.send(model.ShareResultMsg{Err: errors.New("boom")})
	assert.Contains(t, env.m.StatusBarMessage, "boom")
}

func TestCopyShareText(t *testing.T) {
	env := newTestEnv(t)
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error { copied = s; return nil }
	defer func() { clipboardWriteAll = orig }()

	env.send(keyRunes("y"))
	assert.Contains(t, copied, "https://principles.test/share/1?utm_source=share-cast-unknown")
	assert.Equal(t, model.StatusBarSuccess, env.m.StatusBarMessageType)
	assert.Empty(t, env.composer.casts)

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	env.send(keyRunes("y"))
	assert.Equal(t, model.StatusBarError, env.m.StatusBarMessageType)
}

func TestWindowResizeCancelsDrag(t *testing.T) {
	env := newTestEnv(t)
	env.send(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, env.m.Drag.Active)

	env.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, env.m.Width)
	assert.Equal(t, 24, env.m.Height)
	assert.False(t, env.m.Drag.Active)
	assert.Equal(t, deck.PhaseIdle, env.m.Deck.State().Phase)
	assert.Positive(t, env.m.LogViewport.Width)
}

func TestNewLogEntryAppendsToActivityLog(t *testing.T) {
	env := newTestEnv(t)
	env.send(model.NewLogEntryMsg{Entry: logging.LogEntry{
		Timestamp: time.Now(),
		Level:     logging.LevelInfo,
		Subsystem: "Test",
		Message:   "hello",
	}})
	require.Len(t, env.m.ActivityLog, 1)
	assert.Contains(t, env.m.ActivityLog[0], "[Test] hello")

	env.send(model.NewLogEntryMsg{Entry: logging.LogEntry{Level: logging.LevelDebug, Message: "quiet"}})
	assert.Len(t, env.m.ActivityLog, 1, "debug entries are hidden outside debug mode")
}
