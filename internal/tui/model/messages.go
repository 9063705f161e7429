package model

import (
	"principles/internal/share"
	"principles/internal/tip"
	"principles/pkg/logging"
)

// ScheduledTaskMsg fires a task queued on the TickScheduler.
type ScheduledTaskMsg struct {
	ID uint64
}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ShareResultMsg reports the outcome of a share command.
type ShareResultMsg struct {
	Cast share.Cast
	Err  error
}

// TipResultMsg reports the outcome of a tip command.
type TipResultMsg struct {
	Receipt tip.Receipt
	Err     error
}

// LinkOpenedMsg reports the outcome of opening an external link.
type LinkOpenedMsg struct {
	Target string
	Err    error
}

type ClearStatusBarMsg struct{}
