package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"principles/internal/card"
	"principles/internal/deck"
	"principles/internal/haptics"
	"principles/internal/principles"
	"principles/pkg/logging"
)

func TestSetStatusMessage(t *testing.T) {
	m := &Model{Width: 100}

	cmd1 := m.SetStatusMessage("First message", StatusBarSuccess, time.Second)
	if m.StatusBarMessage != "First message" {
		t.Errorf("Expected StatusBarMessage 'First message', got '%s'", m.StatusBarMessage)
	}
	if m.StatusBarMessageType != StatusBarSuccess {
		t.Errorf("Expected StatusBarMessageType Success, got %v", m.StatusBarMessageType)
	}
	if cmd1 == nil {
		t.Error("Expected a non-nil tea.Cmd from SetStatusMessage")
	}
	cancelChan1 := m.StatusBarClearCancel

	cmd2 := m.SetStatusMessage("Second message", StatusBarError, time.Second)
	if m.StatusBarMessage != "Second message" {
		t.Errorf("Expected StatusBarMessage 'Second message', got '%s'", m.StatusBarMessage)
	}
	if m.StatusBarClearCancel == cancelChan1 {
		t.Error("Expected StatusBarClearCancel to be a new channel after second call")
	}
	select {
	case <-cancelChan1:
		// Expected: channel is closed
	default:
		t.Error("Expected first StatusBarClearCancel channel to be closed")
	}
	if cmd2 == nil {
		t.Error("Expected a non-nil tea.Cmd from second SetStatusMessage call")
	}
}

func TestSetTransientStatusClears(t *testing.T) {
	m := &Model{StatusDuration: time.Millisecond}

	cmd := m.SetTransientStatus("shared", StatusBarSuccess)
	require.NotNil(t, cmd)
	assert.Equal(t, ClearStatusBarMsg{}, cmd())
}

func TestSetTransientStatusSuperseded(t *testing.T) {
	m := &Model{StatusDuration: time.Millisecond}

	first := m.SetTransientStatus("one", StatusBarInfo)
	m.SetTransientStatus("two", StatusBarInfo)
	assert.Nil(t, first(), "a superseded clear must not wipe the newer message")
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "Deck", ModeDeck.String())
	assert.Equal(t, "TipOverlay", ModeTipOverlay.String())
	assert.Equal(t, "Unknown", AppMode(99).String())
}

func TestAddRawLineToActivityLogCaps(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hi"}
	msg := ListenForLogEntriesCmd(ch)()
	assert.Equal(t, "hi", msg.(NewLogEntryMsg).Entry.Message)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestInitialModelDefaults(t *testing.T) {
	sched := NewTickScheduler()
	d, err := deck.New(principles.Default().Len(), deck.WithScheduler(sched))
	require.NoError(t, err)

	m := InitialModel(Deps{
		Deck:      d,
		Scheduler: sched,
		Renderer:  card.NewRenderer(principles.Default()),
	})
	assert.Equal(t, ModeDeck, m.CurrentAppMode)
	assert.Equal(t, float64(DefaultUnitsPerCell), m.UnitsPerCell)
	assert.IsType(t, haptics.Off{}, m.Haptics)
	assert.Equal(t, card.KindPrinciple, m.CurrentUnit().Kind)
	assert.Equal(t, "1 / 44", m.CurrentUnit().ProgressLabel())
	assert.False(t, m.Busy())
}
